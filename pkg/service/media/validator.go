/*
 * @Description: 上传前置校验（类型嗅探、大小、数量、分类）
 * @Author: 安知鱼
 * @Date: 2025-11-07 10:05:33
 * @LastEditTime: 2026-02-26 14:11:40
 * @LastEditors: 安知鱼
 */
package media

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// ValidateUpload 在产生任何副作用之前校验一次上传。
// MIME 类型从文件内容嗅探而非信任客户端声明，返回嗅探出的类型。
func ValidateUpload(filename string, data []byte, category constant.MediaCategory) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("%w: 文件名不能为空", constant.ErrValidation)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: 文件内容为空", constant.ErrValidation)
	}
	if !constant.ValidCategories[category] {
		return "", fmt.Errorf("%w: 未知的媒体分类 '%s'", constant.ErrValidation, category)
	}
	if int64(len(data)) > constant.MaxUploadSize {
		return "", fmt.Errorf("%w: 文件大小 %d 超过上限 %d", constant.ErrValidation, len(data), constant.MaxUploadSize)
	}

	detected := mimetype.Detect(data)
	mimeType := detected.String()
	// mimetype 带字符集参数（如 text/plain; charset=utf-8），只取主类型
	if idx := strings.Index(mimeType, ";"); idx > 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	if !constant.IsAllowedMimeType(mimeType) {
		return "", fmt.Errorf("%w: 不支持的文件类型 '%s'，允许的类型: %s",
			constant.ErrValidation, mimeType, strings.Join(constant.AllowedMimeTypeList(), ", "))
	}

	isImage := constant.AllowedImageMimeTypes[mimeType]
	if isImage && int64(len(data)) > constant.MaxImageUploadSize {
		return "", fmt.Errorf("%w: 图片大小 %d 超过上限 %d", constant.ErrValidation, len(data), constant.MaxImageUploadSize)
	}
	if category.IsImageOnly() && !isImage {
		return "", fmt.Errorf("%w: 分类 '%s' 只接受图片类型，实际为 '%s'", constant.ErrValidation, category, mimeType)
	}

	return mimeType, nil
}

// ValidateBulkCount 校验批量上传的文件数量。
func ValidateBulkCount(count int) error {
	if count == 0 {
		return fmt.Errorf("%w: 没有收到任何文件", constant.ErrValidation)
	}
	if count > constant.MaxBulkUploadFiles {
		return fmt.Errorf("%w: 单次最多上传 %d 个文件，实际 %d 个", constant.ErrValidation, constant.MaxBulkUploadFiles, count)
	}
	return nil
}
