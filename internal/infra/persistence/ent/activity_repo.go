/*
 * @Description: 操作日志仓库的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-11-11 12:05:33
 * @LastEditTime: 2026-01-19 18:44:57
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/behark/autoanikw-sub000/ent"
	"github.com/behark/autoanikw-sub000/ent/activitylog"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
)

type activityLogRepo struct {
	client *ent.Client
}

func NewActivityLogRepo(client *ent.Client) repository.ActivityLogRepository {
	return &activityLogRepo{client: client}
}

func (r *activityLogRepo) Create(ctx context.Context, entry *model.ActivityLog) error {
	saved, err := r.client.ActivityLog.Create().
		SetUserID(entry.UserID).
		SetAction(entry.Action).
		SetEntityType(entry.EntityType).
		SetEntityID(entry.EntityID).
		SetDetail(entry.Detail).
		Save(ctx)
	if err != nil {
		return err
	}
	entry.ID = saved.ID
	entry.CreatedAt = saved.CreatedAt
	return nil
}

func (r *activityLogRepo) List(ctx context.Context, page repository.PageQuery) (*repository.PageResult[model.ActivityLog], error) {
	query := r.client.ActivityLog.Query()

	total, err := query.Count(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := query.
		Order(ent.Desc(activitylog.FieldCreatedAt)).
		Offset(page.Offset()).
		Limit(page.PageSize).
		All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*model.ActivityLog, 0, len(rows))
	for _, row := range rows {
		items = append(items, &model.ActivityLog{
			ID:         row.ID,
			CreatedAt:  row.CreatedAt,
			UserID:     row.UserID,
			Action:     row.Action,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Detail:     row.Detail,
		})
	}
	return &repository.PageResult[model.ActivityLog]{
		Items: items,
		Total: int64(total),
	}, nil
}
