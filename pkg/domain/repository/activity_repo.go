/*
 * @Description: 操作日志仓库接口
 * @Author: 安知鱼
 * @Date: 2025-11-04 11:08:33
 * @LastEditTime: 2026-01-19 18:02:27
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/behark/autoanikw-sub000/pkg/domain/model"
)

// ActivityLogRepository 定义了操作日志的持久化操作。只增不改。
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	List(ctx context.Context, page PageQuery) (*PageResult[model.ActivityLog], error)
}
