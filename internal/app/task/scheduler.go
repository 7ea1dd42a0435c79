/*
 * @Description: 定时任务调度器
 * @Author: 安知鱼
 * @Date: 2025-12-20 14:30:12
 * @LastEditTime: 2026-03-16 10:15:48
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"

	"github.com/robfig/cron/v3"

	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/service/mediahost"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger

	orphanRepo repository.OrphanObjectRepository
	gateway    *mediahost.Gateway
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(orphanRepo repository.OrphanObjectRepository, gateway *mediahost.Gateway) *Scheduler {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:       c,
		logger:     logger,
		orphanRepo: orphanRepo,
		gateway:    gateway,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	orphanJob := NewOrphanCleanupJob(s.orphanRepo, s.gateway, s.logger)
	if _, err := s.cron.AddJob("0 30 3 * * *", orphanJob); err != nil {
		s.logger.Error("Failed to add 'OrphanCleanupJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'OrphanCleanupJob'", "schedule", "every day at 3:30:00 AM")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started.")
}

// Stop 优雅地停止 cron 调度器，等待执行中的任务结束。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
