/*
 * @Description: 孤儿对象清理任务：重试删除远端删除失败时登记的存储对象
 * @Author: 安知鱼
 * @Date: 2025-12-20 14:52:37
 * @LastEditTime: 2026-03-16 10:08:25
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/service/mediahost"
)

const (
	// 单次运行最多处理的登记条数，避免一次任务占用过长时间。
	orphanCleanupBatchSize = 200
	// 超过该次数仍失败的登记不再自动重试，留给人工排查。
	orphanMaxAttempts = 10
)

// OrphanCleanupJob 扫描孤儿对象登记表，逐条重试远端删除。
// 删除成功（或对象已不存在）则移除登记；仍然失败则累加尝试次数并记录错误。
type OrphanCleanupJob struct {
	orphanRepo repository.OrphanObjectRepository
	gateway    *mediahost.Gateway
	logger     *slog.Logger
}

func NewOrphanCleanupJob(orphanRepo repository.OrphanObjectRepository, gateway *mediahost.Gateway, logger *slog.Logger) *OrphanCleanupJob {
	return &OrphanCleanupJob{
		orphanRepo: orphanRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

// Name 返回任务的可读名称，供日志装饰器使用。
func (j *OrphanCleanupJob) Name() string {
	return "OrphanCleanupJob"
}

// Run 实现 cron.Job 接口。
func (j *OrphanCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pending, err := j.orphanRepo.ListPending(ctx, orphanCleanupBatchSize)
	if err != nil {
		j.logger.Error("拉取孤儿对象登记失败", slog.Any("error", err))
		return
	}
	if len(pending) == 0 {
		return
	}

	var cleaned, failed, parked int
	for _, orphan := range pending {
		if orphan.Attempts >= orphanMaxAttempts {
			parked++
			continue
		}

		if err := j.deleteWithRetry(ctx, orphan.StorageKey); err != nil {
			failed++
			if markErr := j.orphanRepo.MarkAttempt(ctx, orphan.ID, err.Error()); markErr != nil {
				j.logger.Error("记录孤儿对象重试失败", slog.String("storage_key", orphan.StorageKey), slog.Any("error", markErr))
			}
			continue
		}

		cleaned++
		if removeErr := j.orphanRepo.Remove(ctx, orphan.ID); removeErr != nil {
			j.logger.Error("移除孤儿对象登记失败", slog.String("storage_key", orphan.StorageKey), slog.Any("error", removeErr))
		}
	}

	j.logger.Info("孤儿对象清理完成",
		slog.Int("pending", len(pending)),
		slog.Int("cleaned", cleaned),
		slog.Int("failed", failed),
		slog.Int("parked", parked),
	)
}

// deleteWithRetry 对单个存储键做指数退避重试。
// 网关层会把"对象不存在"视为删除成功，这里只会收到真实的远端错误。
func (j *OrphanCleanupJob) deleteWithRetry(ctx context.Context, storageKey string) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 10 * time.Second
	policy.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		return j.gateway.Delete(ctx, storageKey)
	}
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}
