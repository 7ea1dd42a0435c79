/*
 * @Description: 用户仓库接口
 * @Author: 安知鱼
 * @Date: 2025-11-04 11:02:08
 * @LastEditTime: 2025-12-28 11:50:14
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/behark/autoanikw-sub000/pkg/domain/model"
)

// UserRepository 定义了后台用户的持久化操作。
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Count(ctx context.Context) (int, error)
}
