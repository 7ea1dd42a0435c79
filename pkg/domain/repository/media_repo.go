/*
 * @Description: 媒体资产仓库接口
 * @Author: 安知鱼
 * @Date: 2025-11-04 10:42:17
 * @LastEditTime: 2026-03-15 21:40:08
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
)

// MediaListOptions 是媒体资产列表查询的筛选与排序条件。
type MediaListOptions struct {
	PageQuery
	Category  constant.MediaCategory // 为空表示不过滤
	VehicleID *uint                  // 按关联车辆过滤
	Search    string                 // 对文件名/alt/caption/标签做大小写不敏感的子串匹配
	SortBy    string                 // created_at / size / original_name，默认 created_at
	SortOrder string                 // asc / desc，默认 desc（最新在前）
}

// MediaAssetRepository 定义了媒体资产记录的持久化操作。
// 所有返回单条记录的方法在未找到时返回 constant.ErrNotFound。
type MediaAssetRepository interface {
	// Create 持久化一条新的媒体资产记录，回填 ID 和时间戳。
	Create(ctx context.Context, asset *model.MediaAsset) error
	// FindByID 根据数据库ID查找资产。
	FindByID(ctx context.Context, id uint) (*model.MediaAsset, error)
	// FindBatchByIDs 批量查找，不存在的ID被静默跳过。
	FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.MediaAsset, error)
	// List 按条件分页查询。
	List(ctx context.Context, opts MediaListOptions) (*PageResult[model.MediaAsset], error)
	// Update 保存资产的当前状态（仅元数据字段会变化）。
	Update(ctx context.Context, asset *model.MediaAsset) error
	// Delete 物理删除一条记录。
	Delete(ctx context.Context, id uint) error
	// DeleteBatch 物理删除多条记录，返回实际删除的行数。
	DeleteBatch(ctx context.Context, ids []uint) (int, error)
	// ListByVehicle 返回某辆车关联的全部媒体，按创建时间倒序。
	ListByVehicle(ctx context.Context, vehicleID uint) ([]*model.MediaAsset, error)
}
