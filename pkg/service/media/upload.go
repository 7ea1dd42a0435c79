/*
 * @Description: 媒体上传管道（单文件与批量）
 * @Author: 安知鱼
 * @Date: 2025-11-07 14:40:11
 * @LastEditTime: 2026-03-22 14:18:09
 * @LastEditors: 安知鱼
 *
 * 管道顺序：校验 → 转码 → 远端上传 → 落库 → 审计事件。
 * 远端上传失败时绝不落库；落库失败时远端对象已存在，
 * 会尽力回收并登记孤儿，等待清理任务兜底。
 */
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/behark/autoanikw-sub000/internal/infra/storage"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
)

// UploadFile 是一次上传的文件名和完整内容。
// 上传上限只有 10MiB，整体读入内存换取转码和校验的简单性。
type UploadFile struct {
	Filename string
	Data     []byte
	ReadErr  error // 表单读取阶段的失败，进入管道后直接作为该项的失败原因
}

// renditionSpec 描述上传时生成的一种衍生图。
type renditionSpec struct {
	name  string
	bound int
}

var uploadRenditions = []renditionSpec{
	{constant.RenditionThumbnail, constant.ThumbnailBoundSize},
	{constant.RenditionPreview, constant.PreviewBoundSize},
}

// Upload 执行单文件上传管道，成功返回已落库的媒体资产。
func (s *Service) Upload(ctx context.Context, file UploadFile, meta model.UploadMeta, uploaderID uint) (*model.MediaAsset, error) {
	// 1. 前置校验。任何失败都发生在副作用之前。
	if file.ReadErr != nil {
		return nil, file.ReadErr
	}
	mimeType, err := ValidateUpload(file.Filename, file.Data, meta.Category)
	if err != nil {
		return nil, err
	}

	vehicleID, err := s.resolveVehicle(ctx, meta.VehiclePublicID)
	if err != nil {
		return nil, err
	}

	// 2. 图片归一化。失败时回退为原始字节，不阻断上传。
	data := file.Data
	storedName := file.Filename
	format := ""
	width, height := 0, 0
	isImage := constant.AllowedImageMimeTypes[mimeType]

	if isImage {
		result := s.transcoder.Normalize(file.Data)
		width, height, format = result.Width, result.Height, result.Format
		if result.Transcoded {
			data = result.Data
			mimeType = "image/jpeg"
			ext := filepath.Ext(storedName)
			storedName = strings.TrimSuffix(storedName, ext) + ".jpg"
		}
	}

	// 3. 远端上传。失败时直接返回，不会留下任何记录。
	objectKey := s.gateway.BuildObjectKey(meta.Category, storedName)
	uploadResult, err := s.gateway.Upload(ctx, bytes.NewReader(data), objectKey, mimeType)
	if err != nil {
		return nil, err
	}

	var renditions []model.Rendition
	if isImage {
		renditions = s.buildRenditions(ctx, uploadResult.StorageKey, data)
	}

	dominantColor := ""
	if isImage {
		color, cerr := s.colorSvc.GetPrimaryColor(bytes.NewReader(data))
		if cerr != nil {
			log.Printf("[媒体服务] WARN: 提取主色调失败: file=%s, err=%v", file.Filename, cerr)
		} else {
			dominantColor = color
		}
	}

	// 4. 落库。
	asset := &model.MediaAsset{
		StorageKey:    uploadResult.StorageKey,
		OriginalName:  file.Filename,
		MimeType:      mimeType,
		Size:          uploadResult.Size,
		URL:           s.gateway.BuildURL(uploadResult.StorageKey),
		Renditions:    renditions,
		AltText:       meta.AltText,
		Caption:       meta.Caption,
		Tags:          model.NormalizeTags(meta.TagsCSV),
		Category:      meta.Category,
		UploadedBy:    uploaderID,
		VehicleID:     vehicleID,
		Width:         width,
		Height:        height,
		Format:        format,
		DominantColor: dominantColor,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		// 远端对象已经存在，回收失败的键登记为孤儿
		s.reclaimObjects(ctx, s.remoteKeys(asset), "落库失败后回收")
		return nil, fmt.Errorf("保存媒体记录失败: %w", err)
	}

	s.decorate(asset)
	s.audit(uploaderID, "media.upload", asset.ID, fmt.Sprintf("上传媒体 %s (%s)", asset.OriginalName, asset.Category))
	return asset, nil
}

// UploadBulk 批量上传：逐个文件跑完整管道，单个失败不中断批次。
// 部分失败是一等结果形态，只有数量校验失败才会整体报错。
func (s *Service) UploadBulk(ctx context.Context, files []UploadFile, meta model.UploadMeta, uploaderID uint) (*model.BulkUploadResult, error) {
	if err := ValidateBulkCount(len(files)); err != nil {
		return nil, err
	}

	result := &model.BulkUploadResult{
		Successful: make([]*model.MediaAsset, 0, len(files)),
		Failed:     make([]model.BulkUploadItemFailure, 0),
	}
	for _, file := range files {
		asset, err := s.Upload(ctx, file, meta, uploaderID)
		if err != nil {
			log.Printf("[媒体服务] 批量上传单项失败: file=%s, err=%v", file.Filename, err)
			result.Failed = append(result.Failed, model.BulkUploadItemFailure{
				Filename: file.Filename,
				Error:    err.Error(),
			})
			continue
		}
		result.Successful = append(result.Successful, asset)
	}
	result.TotalUploaded = len(result.Successful)
	result.TotalFailed = len(result.Failed)
	return result, nil
}

// resolveVehicle 解析可选的车辆公共ID，并确认车辆存在。
func (s *Service) resolveVehicle(ctx context.Context, vehiclePublicID string) (*uint, error) {
	if vehiclePublicID == "" {
		return nil, nil
	}
	dbID, entityType, err := idgen.DecodePublicID(vehiclePublicID)
	if err != nil || entityType != idgen.EntityTypeVehicle {
		return nil, fmt.Errorf("%w: 无效的车辆ID '%s'", constant.ErrInvalidPublicID, vehiclePublicID)
	}
	if _, err := s.vehicleRepo.FindByID(ctx, dbID); err != nil {
		return nil, fmt.Errorf("关联车辆不存在: %w", err)
	}
	return &dbID, nil
}

// buildRenditions 为已上传的主对象生成衍生图描述。
// 支持URL参数变换的存储直接构造变换URL；否则在本地渲染衍生对象后上传。
// 任何一种衍生图失败都只记告警，主上传不受影响。
func (s *Service) buildRenditions(ctx context.Context, storageKey string, data []byte) []model.Rendition {
	renditions := make([]model.Rendition, 0, len(uploadRenditions))
	for _, spec := range uploadRenditions {
		url, err := s.gateway.TransformURL(storageKey, storage.TransformSpec{
			Width:   spec.bound,
			Height:  spec.bound,
			Quality: constant.TranscodeJPEGQuality,
			Format:  "jpg",
		})
		if errors.Is(err, storage.ErrFeatureNotSupported) {
			derived, rerr := s.transcoder.RenderRendition(data, spec.bound)
			if rerr != nil {
				log.Printf("[媒体服务] WARN: 渲染衍生图失败: key=%s, rendition=%s, err=%v", storageKey, spec.name, rerr)
				continue
			}
			derivedKey := s.gateway.RenditionKey(storageKey, spec.name)
			if _, uerr := s.gateway.Upload(ctx, bytes.NewReader(derived), derivedKey, "image/jpeg"); uerr != nil {
				log.Printf("[媒体服务] WARN: 上传衍生图失败: key=%s, rendition=%s, err=%v", derivedKey, spec.name, uerr)
				continue
			}
			url = s.gateway.BuildURL(derivedKey)
		} else if err != nil {
			log.Printf("[媒体服务] WARN: 构建衍生图URL失败: key=%s, rendition=%s, err=%v", storageKey, spec.name, err)
			continue
		}
		renditions = append(renditions, model.Rendition{
			Name:   spec.name,
			URL:    url,
			Width:  spec.bound,
			Height: spec.bound,
		})
	}
	return renditions
}
