/*
 * @Description: 媒体库查询（单个、分页列表、按车辆）
 * @Author: 安知鱼
 * @Date: 2025-11-07 15:33:09
 * @LastEditTime: 2026-03-01 20:14:53
 * @LastEditors: 安知鱼
 */
package media

import (
	"context"

	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
)

// ListResult 是媒体库分页查询的响应形态。
type ListResult struct {
	Items      []*model.MediaAsset `json:"media"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

// Get 根据公共ID返回一个媒体资产。
func (s *Service) Get(ctx context.Context, publicID string) (*model.MediaAsset, error) {
	id, err := s.resolveMediaID(publicID)
	if err != nil {
		return nil, err
	}
	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(asset)
	return asset, nil
}

// List 分页查询媒体库。非法分页参数回落到默认值。
func (s *Service) List(ctx context.Context, opts repository.MediaListOptions) (*ListResult, error) {
	opts.PageQuery = opts.PageQuery.Normalize()
	if opts.Category != "" && !constant.ValidCategories[opts.Category] {
		// 未知分类匹配不到任何东西
		return &ListResult{
			Items:    []*model.MediaAsset{},
			Page:     opts.Page,
			PageSize: opts.PageSize,
		}, nil
	}

	page, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	for _, asset := range page.Items {
		s.decorate(asset)
	}

	return &ListResult{
		Items:      page.Items,
		Total:      page.Total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: repository.TotalPages(page.Total, opts.PageSize),
	}, nil
}

// ListByVehicle 返回某辆车关联的全部媒体。
func (s *Service) ListByVehicle(ctx context.Context, vehiclePublicID string) ([]*model.MediaAsset, error) {
	dbID, entityType, err := idgen.DecodePublicID(vehiclePublicID)
	if err != nil || entityType != idgen.EntityTypeVehicle {
		return nil, constant.ErrInvalidPublicID
	}
	assets, err := s.repo.ListByVehicle(ctx, dbID)
	if err != nil {
		return nil, err
	}
	for _, asset := range assets {
		s.decorate(asset)
	}
	return assets, nil
}
