/*
 * @Description: 媒体资产仓库的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-11-11 10:08:40
 * @LastEditTime: 2026-03-20 15:42:10
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/behark/autoanikw-sub000/ent"
	"github.com/behark/autoanikw-sub000/ent/mediaasset"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
)

type mediaAssetRepo struct {
	client *ent.Client
}

func NewMediaAssetRepo(client *ent.Client) repository.MediaAssetRepository {
	return &mediaAssetRepo{client: client}
}

func (r *mediaAssetRepo) Create(ctx context.Context, asset *model.MediaAsset) error {
	create := r.client.MediaAsset.Create().
		SetStorageKey(asset.StorageKey).
		SetOriginalName(asset.OriginalName).
		SetMimeType(asset.MimeType).
		SetSize(asset.Size).
		SetURL(asset.URL).
		SetAltText(asset.AltText).
		SetCaption(asset.Caption).
		SetCategory(string(asset.Category)).
		SetUploadedBy(asset.UploadedBy).
		SetNillableVehicleID(asset.VehicleID).
		SetWidth(asset.Width).
		SetHeight(asset.Height).
		SetFormat(asset.Format).
		SetDominantColor(asset.DominantColor)

	if len(asset.Renditions) > 0 {
		data, err := json.Marshal(asset.Renditions)
		if err != nil {
			return fmt.Errorf("序列化衍生图列表失败: %w", err)
		}
		create.SetRenditions(string(data))
	}
	if len(asset.Tags) > 0 {
		data, err := json.Marshal(asset.Tags)
		if err != nil {
			return fmt.Errorf("序列化标签失败: %w", err)
		}
		create.SetTags(string(data))
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return err
	}
	asset.ID = saved.ID
	asset.CreatedAt = saved.CreatedAt
	asset.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *mediaAssetRepo) FindByID(ctx context.Context, id uint) (*model.MediaAsset, error) {
	m, err := r.client.MediaAsset.Query().
		Where(mediaasset.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return mapEntMediaAsset(m), nil
}

func (r *mediaAssetRepo) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.MediaAsset, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.MediaAsset.Query().
		Where(mediaasset.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	assets := make([]*model.MediaAsset, 0, len(rows))
	for _, m := range rows {
		assets = append(assets, mapEntMediaAsset(m))
	}
	return assets, nil
}

func (r *mediaAssetRepo) List(ctx context.Context, opts repository.MediaListOptions) (*repository.PageResult[model.MediaAsset], error) {
	query := r.client.MediaAsset.Query()

	if opts.Category != "" {
		query = query.Where(mediaasset.CategoryEQ(string(opts.Category)))
	}
	if opts.VehicleID != nil {
		query = query.Where(mediaasset.VehicleIDEQ(*opts.VehicleID))
	}
	if opts.Search != "" {
		query = query.Where(mediaasset.Or(
			mediaasset.OriginalNameContainsFold(opts.Search),
			mediaasset.AltTextContainsFold(opts.Search),
			mediaasset.CaptionContainsFold(opts.Search),
			mediaasset.TagsContainsFold(opts.Search),
		))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, err
	}

	sortField := mediaasset.FieldCreatedAt
	switch opts.SortBy {
	case "size":
		sortField = mediaasset.FieldSize
	case "original_name":
		sortField = mediaasset.FieldOriginalName
	}
	order := ent.Desc(sortField)
	if opts.SortOrder == "asc" {
		order = ent.Asc(sortField)
	}

	rows, err := query.
		Order(order).
		Offset(opts.Offset()).
		Limit(opts.PageSize).
		All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*model.MediaAsset, 0, len(rows))
	for _, m := range rows {
		items = append(items, mapEntMediaAsset(m))
	}
	return &repository.PageResult[model.MediaAsset]{
		Items: items,
		Total: int64(total),
	}, nil
}

func (r *mediaAssetRepo) Update(ctx context.Context, asset *model.MediaAsset) error {
	update := r.client.MediaAsset.UpdateOneID(asset.ID).
		SetAltText(asset.AltText).
		SetCaption(asset.Caption).
		SetCategory(string(asset.Category))

	if len(asset.Tags) > 0 {
		data, err := json.Marshal(asset.Tags)
		if err != nil {
			return fmt.Errorf("序列化标签失败: %w", err)
		}
		update.SetTags(string(data))
	} else {
		update.ClearTags()
	}

	saved, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return err
	}
	asset.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *mediaAssetRepo) Delete(ctx context.Context, id uint) error {
	err := r.client.MediaAsset.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *mediaAssetRepo) DeleteBatch(ctx context.Context, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.client.MediaAsset.Delete().
		Where(mediaasset.IDIn(ids...)).
		Exec(ctx)
}

func (r *mediaAssetRepo) ListByVehicle(ctx context.Context, vehicleID uint) ([]*model.MediaAsset, error) {
	rows, err := r.client.MediaAsset.Query().
		Where(mediaasset.VehicleIDEQ(vehicleID)).
		Order(ent.Desc(mediaasset.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	assets := make([]*model.MediaAsset, 0, len(rows))
	for _, m := range rows {
		assets = append(assets, mapEntMediaAsset(m))
	}
	return assets, nil
}

// mapEntMediaAsset 把 Ent 实体映射为领域模型，JSON 列解码失败时只记日志。
func mapEntMediaAsset(m *ent.MediaAsset) *model.MediaAsset {
	asset := &model.MediaAsset{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		StorageKey:    m.StorageKey,
		OriginalName:  m.OriginalName,
		MimeType:      m.MimeType,
		Size:          m.Size,
		URL:           m.URL,
		AltText:       m.AltText,
		Caption:       m.Caption,
		Category:      constant.MediaCategory(m.Category),
		UploadedBy:    m.UploadedBy,
		VehicleID:     m.VehicleID,
		Width:         m.Width,
		Height:        m.Height,
		Format:        m.Format,
		DominantColor: m.DominantColor,
	}
	if m.Renditions != nil && *m.Renditions != "" {
		if err := json.Unmarshal([]byte(*m.Renditions), &asset.Renditions); err != nil {
			log.Printf("[媒体仓库] WARN: 解码衍生图列表失败: id=%d, err=%v", m.ID, err)
		}
	}
	if m.Tags != nil && *m.Tags != "" {
		if err := json.Unmarshal([]byte(*m.Tags), &asset.Tags); err != nil {
			log.Printf("[媒体仓库] WARN: 解码标签失败: id=%d, err=%v", m.ID, err)
		}
	}
	return asset
}
