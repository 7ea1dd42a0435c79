/*
 * @Description: 车辆仓库接口
 * @Author: 安知鱼
 * @Date: 2025-11-04 10:55:40
 * @LastEditTime: 2026-02-11 15:40:55
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/behark/autoanikw-sub000/pkg/domain/model"
)

// VehicleListOptions 是车辆列表查询条件。
type VehicleListOptions struct {
	PageQuery
	Status   model.VehicleStatus // 为空表示不过滤
	Make     string
	Search   string // 对品牌/型号做大小写不敏感的子串匹配
	Featured *bool
}

// VehicleRepository 定义了车辆记录的持久化操作。
type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByID(ctx context.Context, id uint) (*model.Vehicle, error)
	List(ctx context.Context, opts VehicleListOptions) (*PageResult[model.Vehicle], error)
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id uint) error
}
