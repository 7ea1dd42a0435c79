/*
 * @Description: 用户仓库的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-11-11 11:48:02
 * @LastEditTime: 2025-12-28 12:30:19
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/behark/autoanikw-sub000/ent"
	"github.com/behark/autoanikw-sub000/ent/user"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
)

type userRepo struct {
	client *ent.Client
}

func NewUserRepo(client *ent.Client) repository.UserRepository {
	return &userRepo{client: client}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	saved, err := r.client.User.Create().
		SetUsername(u.Username).
		SetPasswordHash(u.PasswordHash).
		SetNickname(u.Nickname).
		SetRole(string(u.Role)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return constant.ErrConflict
		}
		return err
	}
	u.ID = saved.ID
	u.CreatedAt = saved.CreatedAt
	u.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	row, err := r.client.User.Query().
		Where(user.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return mapEntUser(row), nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	row, err := r.client.User.Query().
		Where(user.UsernameEQ(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return mapEntUser(row), nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	return r.client.User.Query().Count(ctx)
}

func mapEntUser(row *ent.User) *model.User {
	return &model.User{
		ID:           row.ID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Nickname:     row.Nickname,
		Role:         model.UserRole(row.Role),
	}
}
