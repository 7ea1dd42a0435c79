/*
 * @Description: 操作日志服务（异步写入、分页查询）
 * @Author: 安知鱼
 * @Date: 2025-11-10 20:14:55
 * @LastEditTime: 2026-01-19 18:20:40
 * @LastEditors: 安知鱼
 */
package activity

import (
	"context"
	"log"

	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
)

// ListResult 是操作日志分页查询的响应形态。
type ListResult struct {
	Items      []*model.ActivityLog `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

// Service 负责操作日志的写入与查询。
type Service struct {
	repo repository.ActivityLogRepository
}

func NewService(repo repository.ActivityLogRepository) *Service {
	return &Service{repo: repo}
}

// Record 写入一条操作日志。写入失败只记日志，绝不向调用方冒泡：
// 审计是主流程的旁路，不允许拖垮业务操作。
func (s *Service) Record(ctx context.Context, entry *model.ActivityLog) {
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("[操作日志] WARN: 写入失败: action=%s, err=%v", entry.Action, err)
	}
}

// List 分页查询操作日志，最新在前。
func (s *Service) List(ctx context.Context, page repository.PageQuery) (*ListResult, error) {
	page = page.Normalize()
	result, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	for _, entry := range result.Items {
		publicID, gerr := idgen.GeneratePublicID(entry.ID, idgen.EntityTypeActivityLog)
		if gerr != nil {
			continue
		}
		entry.PublicID = publicID
	}
	return &ListResult{
		Items:      result.Items,
		Total:      result.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: repository.TotalPages(result.Total, page.PageSize),
	}, nil
}
