/*
 * @Description: 媒体资产领域模型
 * @Author: 安知鱼
 * @Date: 2025-11-04 09:20:13
 * @LastEditTime: 2026-03-15 21:02:44
 * @LastEditors: 安知鱼
 */
package model

import (
	"strings"
	"time"

	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// Rendition 是一张衍生图（如缩略图）的描述：名称、访问 URL 和可选的边界尺寸。
type Rendition struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// MediaAsset 是持久化的媒体资产记录。
// StorageKey 当且仅当远端上传成功后才会被设置；上传失败绝不落库。
type MediaAsset struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"` // 对外暴露的混淆ID，由服务层填充
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StorageKey   string                 `json:"storage_key"`   // 远端对象存储返回的标识，删除时使用
	OriginalName string                 `json:"original_name"` // 上传时的原始文件名
	MimeType     string                 `json:"mime_type"`
	Size         int64                  `json:"size"` // 实际入库对象的字节数
	URL          string                 `json:"url"`  // 主访问 URL
	Renditions   []Rendition            `json:"renditions,omitempty"`
	AltText      string                 `json:"alt_text,omitempty"`
	Caption      string                 `json:"caption,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
	Category     constant.MediaCategory `json:"category"`
	UploadedBy   uint                   `json:"-"`                  // 上传者用户ID（审计归属）
	VehicleID    *uint                  `json:"-"`                  // 关联车辆ID（可选）
	Width        int                    `json:"width,omitempty"`    // 仅图片类型有值
	Height       int                    `json:"height,omitempty"`   // 仅图片类型有值
	Format       string                 `json:"format,omitempty"`   // 编码格式，如 jpeg
	DominantColor string                `json:"dominant_color,omitempty"` // 主色调，如 #aabbcc
}

// MediaAssetPatch 是元数据更新的补丁。nil 字段表示不修改。
// 补丁只允许触碰元数据，永远不会改动已存储的字节。
type MediaAssetPatch struct {
	AltText  *string                 `json:"alt_text"`
	Caption  *string                 `json:"caption"`
	Tags     *string                 `json:"tags"` // 逗号分隔，与上传入参保持一致
	Category *constant.MediaCategory `json:"category"`
}

// ApplyMediaPatch 将补丁应用到现有资产上，返回新值而不修改入参。
// StorageKey、URL、Size 等存储相关字段保持不变。
func ApplyMediaPatch(existing MediaAsset, patch MediaAssetPatch) MediaAsset {
	updated := existing
	if patch.AltText != nil {
		updated.AltText = *patch.AltText
	}
	if patch.Caption != nil {
		updated.Caption = *patch.Caption
	}
	if patch.Tags != nil {
		updated.Tags = NormalizeTags(*patch.Tags)
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	return updated
}

// NormalizeTags 将逗号分隔的标签串规范化为去除空白的字符串切片。
// 顺序保留用于展示，空项丢弃。
func NormalizeTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// UploadMeta 是上传入口接收的表单元数据。
type UploadMeta struct {
	Category        constant.MediaCategory
	AltText         string
	Caption         string
	TagsCSV         string
	VehiclePublicID string // 可选，关联的车辆公共ID
}

// BulkUploadItemFailure 记录批量上传中单个文件的失败信息。
type BulkUploadItemFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BulkUploadResult 是批量上传的一等结果形态：部分失败不是异常。
type BulkUploadResult struct {
	Successful    []*MediaAsset           `json:"successful"`
	Failed        []BulkUploadItemFailure `json:"failed"`
	TotalUploaded int                     `json:"total_uploaded"`
	TotalFailed   int                     `json:"total_failed"`
}

// BulkDeleteResult 返回批量删除的尝试数与实际移除数，非严格全有或全无。
type BulkDeleteResult struct {
	Attempted int `json:"attempted"`
	Removed   int `json:"removed"`
}
