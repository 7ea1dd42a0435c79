/*
 * @Description: 车辆业务服务（增删改查、Markdown 渲染、前台列表缓存）
 * @Author: 安知鱼
 * @Date: 2025-11-09 16:40:22
 * @LastEditTime: 2026-03-20 14:26:18
 * @LastEditors: 安知鱼
 */
package vehicle

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/behark/autoanikw-sub000/internal/pkg/event"
	"github.com/behark/autoanikw-sub000/internal/pkg/parser"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
	"github.com/behark/autoanikw-sub000/pkg/service/utility"
)

const (
	// 前台已上架列表的缓存键前缀，变更时按前缀整体失效
	publicListCachePrefix = "vehicle:public:"
	publicListCacheTTL    = 5 * time.Minute
)

// Input 是创建/更新车辆时接收的全部字段。
type Input struct {
	Make               string              `json:"make" binding:"required"`
	Model              string              `json:"model" binding:"required"`
	Year               int                 `json:"year" binding:"required"`
	PriceCents         int64               `json:"price_cents"`
	Mileage            int                 `json:"mileage"`
	FuelType           string              `json:"fuel_type"`
	Transmission       string              `json:"transmission"`
	Status             model.VehicleStatus `json:"status"`
	Featured           bool                `json:"featured"`
	Description        string              `json:"description"` // Markdown 原文
	CoverMediaPublicID string              `json:"cover_media_id"`
}

// ListResult 是车辆分页查询的响应形态。
type ListResult struct {
	Items      []*model.Vehicle `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// Service 承载车辆的全部业务逻辑。
type Service struct {
	repo      repository.VehicleRepository
	mediaRepo repository.MediaAssetRepository
	cache     utility.CacheService
	bus       *event.EventBus
}

func NewService(
	repo repository.VehicleRepository,
	mediaRepo repository.MediaAssetRepository,
	cache utility.CacheService,
	bus *event.EventBus,
) *Service {
	return &Service{
		repo:      repo,
		mediaRepo: mediaRepo,
		cache:     cache,
		bus:       bus,
	}
}

func (s *Service) decorate(v *model.Vehicle) {
	publicID, err := idgen.GeneratePublicID(v.ID, idgen.EntityTypeVehicle)
	if err != nil {
		log.Printf("[车辆服务] WARN: 生成公共ID失败: id=%d, err=%v", v.ID, err)
		return
	}
	v.PublicID = publicID
}

func (s *Service) resolveID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeVehicle {
		return 0, fmt.Errorf("%w: '%s'", constant.ErrInvalidPublicID, publicID)
	}
	return dbID, nil
}

// applyInput 把输入写到车辆模型上，渲染描述并解析封面图。
func (s *Service) applyInput(ctx context.Context, v *model.Vehicle, input Input) error {
	if input.Status == "" {
		input.Status = model.VehicleStatusDraft
	}
	switch input.Status {
	case model.VehicleStatusDraft, model.VehicleStatusPublished, model.VehicleStatusReserved, model.VehicleStatusSold:
	default:
		return fmt.Errorf("%w: 未知的车辆状态 '%s'", constant.ErrValidation, input.Status)
	}

	descriptionHTML := ""
	if input.Description != "" {
		html, err := parser.MarkdownToHTML(input.Description)
		if err != nil {
			return fmt.Errorf("渲染车辆描述失败: %w", err)
		}
		descriptionHTML = html
	}

	var coverMediaID *uint
	if input.CoverMediaPublicID != "" {
		mediaID, entityType, err := idgen.DecodePublicID(input.CoverMediaPublicID)
		if err != nil || entityType != idgen.EntityTypeMediaAsset {
			return fmt.Errorf("%w: 无效的封面图ID '%s'", constant.ErrInvalidPublicID, input.CoverMediaPublicID)
		}
		if _, err := s.mediaRepo.FindByID(ctx, mediaID); err != nil {
			return fmt.Errorf("封面图不存在: %w", err)
		}
		coverMediaID = &mediaID
	}

	v.Make = input.Make
	v.Model = input.Model
	v.Year = input.Year
	v.PriceCents = input.PriceCents
	v.Mileage = input.Mileage
	v.FuelType = input.FuelType
	v.Transmission = input.Transmission
	v.Status = input.Status
	v.Featured = input.Featured
	v.Description = input.Description
	v.DescriptionHTML = descriptionHTML
	v.CoverMediaID = coverMediaID
	return nil
}

// Create 新建一辆车。
func (s *Service) Create(ctx context.Context, input Input, userID uint) (*model.Vehicle, error) {
	v := &model.Vehicle{}
	if err := s.applyInput(ctx, v, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("保存车辆失败: %w", err)
	}

	s.decorate(v)
	s.invalidatePublicCache(ctx)
	s.publish(event.VehicleCreated, userID, "vehicle.create", v)
	return v, nil
}

// Update 全量更新一辆车。
func (s *Service) Update(ctx context.Context, publicID string, input Input, userID uint) (*model.Vehicle, error) {
	id, err := s.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyInput(ctx, v, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("更新车辆失败: %w", err)
	}

	s.decorate(v)
	s.invalidatePublicCache(ctx)
	s.publish(event.VehicleUpdated, userID, "vehicle.update", v)
	return v, nil
}

// Get 根据公共ID返回一辆车。
func (s *Service) Get(ctx context.Context, publicID string) (*model.Vehicle, error) {
	id, err := s.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(v)
	return v, nil
}

// List 后台分页查询，不走缓存。
func (s *Service) List(ctx context.Context, opts repository.VehicleListOptions) (*ListResult, error) {
	opts.PageQuery = opts.PageQuery.Normalize()
	page, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	for _, v := range page.Items {
		s.decorate(v)
	}
	return &ListResult{
		Items:      page.Items,
		Total:      page.Total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: repository.TotalPages(page.Total, opts.PageSize),
	}, nil
}

// ListPublished 前台已上架列表，带短 TTL 缓存。
// 缓存读写失败都只记日志，回落到直查数据库。
func (s *Service) ListPublished(ctx context.Context, page repository.PageQuery) (*ListResult, error) {
	page = page.Normalize()
	cacheKey := fmt.Sprintf("%sp%d_s%d", publicListCachePrefix, page.Page, page.PageSize)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var result ListResult
			if jerr := json.Unmarshal([]byte(cached), &result); jerr == nil {
				return &result, nil
			}
		}
	}

	result, err := s.List(ctx, repository.VehicleListOptions{
		PageQuery: page,
		Status:    model.VehicleStatusPublished,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, jerr := json.Marshal(result); jerr == nil {
			if cerr := s.cache.Set(ctx, cacheKey, string(data), publicListCacheTTL); cerr != nil {
				log.Printf("[车辆服务] WARN: 写入列表缓存失败: %v", cerr)
			}
		}
	}
	return result, nil
}

// Delete 删除一辆车。关联媒体保留在媒体库里，只是解除归属。
func (s *Service) Delete(ctx context.Context, publicID string, userID uint) error {
	id, err := s.resolveID(publicID)
	if err != nil {
		return err
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除车辆失败: %w", err)
	}

	s.invalidatePublicCache(ctx)
	s.publish(event.VehicleDeleted, userID, "vehicle.delete", v)
	return nil
}

// invalidatePublicCache 按前缀失效前台列表缓存。
func (s *Service) invalidatePublicCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys, err := s.cache.Scan(ctx, publicListCachePrefix+"*")
	if err != nil {
		log.Printf("[车辆服务] WARN: 扫描列表缓存失败: %v", err)
		return
	}
	if len(keys) > 0 {
		if err := s.cache.Delete(ctx, keys...); err != nil {
			log.Printf("[车辆服务] WARN: 清理列表缓存失败: %v", err)
		}
	}
}

func (s *Service) publish(topic event.Topic, userID uint, action string, v *model.Vehicle) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(topic, event.AuditPayload{
		UserID:     userID,
		Action:     action,
		EntityType: "vehicle",
		EntityID:   v.ID,
		Detail:     fmt.Sprintf("%s %d %s %s", action, v.Year, v.Make, v.Model),
	})
}
