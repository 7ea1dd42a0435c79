/*
 * @Description: 媒体元数据更新与删除（单个、批量）
 * @Author: 安知鱼
 * @Date: 2025-11-07 16:20:35
 * @LastEditTime: 2026-03-22 14:25:51
 * @LastEditors: 安知鱼
 *
 * 删除的顺序是先远端后记录，但远端失败不阻止记录删除：
 * 宁可留下远端孤儿对象（有清理任务兜底），也不留下悬空的数据库行。
 */
package media

import (
	"context"
	"fmt"
	"log"

	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
)

// UpdateMeta 应用元数据补丁。只触碰元数据字段，存储的字节和URL永不改变。
func (s *Service) UpdateMeta(ctx context.Context, publicID string, patch model.MediaAssetPatch, userID uint) (*model.MediaAsset, error) {
	id, err := s.resolveMediaID(publicID)
	if err != nil {
		return nil, err
	}
	if patch.Category != nil && !constant.ValidCategories[*patch.Category] {
		return nil, fmt.Errorf("%w: 未知的媒体分类 '%s'", constant.ErrValidation, *patch.Category)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := model.ApplyMediaPatch(*existing, patch)
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("更新媒体记录失败: %w", err)
	}

	s.decorate(&updated)
	s.audit(userID, "media.update", updated.ID, fmt.Sprintf("更新媒体元数据 %s", updated.OriginalName))
	return &updated, nil
}

// Delete 删除一个媒体资产：先尽力删除远端对象，然后无条件删除记录。
// 资产不存在时返回 constant.ErrNotFound。
func (s *Service) Delete(ctx context.Context, publicID string, userID uint) error {
	id, err := s.resolveMediaID(publicID)
	if err != nil {
		return err
	}
	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// 远端删除失败只登记孤儿，不中断记录删除
	s.reclaimObjects(ctx, s.remoteKeys(asset), "删除媒体时远端清理失败")

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除媒体记录失败: %w", err)
	}

	s.audit(userID, "media.delete", id, fmt.Sprintf("删除媒体 %s", asset.OriginalName))
	return nil
}

// DeleteBulk 批量删除：先解析全部存储键做一次批量远端删除，再批量删除记录。
// 返回尝试数与实际移除数，不存在的ID被跳过而不是报错。
func (s *Service) DeleteBulk(ctx context.Context, publicIDs []string, userID uint) (*model.BulkDeleteResult, error) {
	if len(publicIDs) == 0 {
		return nil, fmt.Errorf("%w: 没有收到任何ID", constant.ErrBadRequest)
	}

	ids := make([]uint, 0, len(publicIDs))
	for _, publicID := range publicIDs {
		id, err := s.resolveMediaID(publicID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	assets, err := s.repo.FindBatchByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("查询待删除媒体失败: %w", err)
	}

	var keys []string
	foundIDs := make([]uint, 0, len(assets))
	for _, asset := range assets {
		keys = append(keys, s.remoteKeys(asset)...)
		foundIDs = append(foundIDs, asset.ID)
	}
	s.reclaimObjects(ctx, keys, "批量删除媒体时远端清理失败")

	removed := 0
	if len(foundIDs) > 0 {
		removed, err = s.repo.DeleteBatch(ctx, foundIDs)
		if err != nil {
			return nil, fmt.Errorf("批量删除媒体记录失败: %w", err)
		}
	}

	s.audit(userID, "media.bulk_delete", 0, fmt.Sprintf("批量删除媒体 %d/%d", removed, len(publicIDs)))
	return &model.BulkDeleteResult{
		Attempted: len(publicIDs),
		Removed:   removed,
	}, nil
}

// remoteKeys 返回一个资产在远端占用的全部对象键。
// 衍生图走URL参数变换时不占独立对象，只有主键一个。
func (s *Service) remoteKeys(asset *model.MediaAsset) []string {
	keys := []string{asset.StorageKey}
	if s.gateway.SupportsTransformURL() {
		return keys
	}
	for _, r := range asset.Renditions {
		keys = append(keys, s.gateway.RenditionKey(asset.StorageKey, r.Name))
	}
	return keys
}

// reclaimObjects 尽力删除远端对象，把真正失败的键登记为孤儿等待清理任务重试。
func (s *Service) reclaimObjects(ctx context.Context, keys []string, reason string) {
	failed := s.gateway.BulkDelete(ctx, keys)
	for _, key := range failed {
		if s.orphanRepo == nil {
			continue
		}
		if err := s.orphanRepo.Create(ctx, key, reason); err != nil {
			log.Printf("[媒体服务] WARN: 登记孤儿对象失败: key=%s, err=%v", key, err)
		}
	}
}
