/*
 * @Description: 孤儿对象仓库接口
 * @Author: 安知鱼
 * @Date: 2025-11-04 11:15:27
 * @LastEditTime: 2026-03-15 21:44:12
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/behark/autoanikw-sub000/pkg/domain/model"
)

// OrphanObjectRepository 登记远端删除失败的存储键，供清理任务重试。
type OrphanObjectRepository interface {
	// Create 登记一个待清理的存储键。重复登记同一个键不报错。
	Create(ctx context.Context, storageKey, lastError string) error
	// ListPending 返回最多 limit 条待清理记录，按创建时间正序。
	ListPending(ctx context.Context, limit int) ([]*model.OrphanObject, error)
	// MarkAttempt 记录一次失败的重试。
	MarkAttempt(ctx context.Context, id uint, lastError string) error
	// Remove 清理成功后移除登记。
	Remove(ctx context.Context, id uint) error
}
