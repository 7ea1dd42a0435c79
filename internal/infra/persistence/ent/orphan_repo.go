/*
 * @Description: 孤儿对象仓库的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-11-11 12:22:08
 * @LastEditTime: 2026-03-15 22:01:36
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/behark/autoanikw-sub000/ent"
	"github.com/behark/autoanikw-sub000/ent/orphanobject"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
)

type orphanObjectRepo struct {
	client *ent.Client
}

func NewOrphanObjectRepo(client *ent.Client) repository.OrphanObjectRepository {
	return &orphanObjectRepo{client: client}
}

// Create 登记一个待清理的存储键。storage_key 上有唯一约束，
// 重复登记视为成功，保持幂等。
func (r *orphanObjectRepo) Create(ctx context.Context, storageKey, lastError string) error {
	err := r.client.OrphanObject.Create().
		SetStorageKey(storageKey).
		SetLastError(lastError).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return err
	}
	return nil
}

func (r *orphanObjectRepo) ListPending(ctx context.Context, limit int) ([]*model.OrphanObject, error) {
	rows, err := r.client.OrphanObject.Query().
		Order(ent.Asc(orphanobject.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*model.OrphanObject, 0, len(rows))
	for _, row := range rows {
		items = append(items, &model.OrphanObject{
			ID:         row.ID,
			CreatedAt:  row.CreatedAt,
			StorageKey: row.StorageKey,
			Attempts:   row.Attempts,
			LastError:  row.LastError,
		})
	}
	return items, nil
}

func (r *orphanObjectRepo) MarkAttempt(ctx context.Context, id uint, lastError string) error {
	err := r.client.OrphanObject.UpdateOneID(id).
		AddAttempts(1).
		SetLastError(lastError).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *orphanObjectRepo) Remove(ctx context.Context, id uint) error {
	err := r.client.OrphanObject.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}
	return nil
}
