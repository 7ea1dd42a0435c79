/*
 * @Description: 本地磁盘媒体存储驱动，用于开发环境和单机部署
 * @Author: 安知鱼
 * @Date: 2025-11-05 11:02:33
 * @LastEditTime: 2026-02-09 16:40:18
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// LocalProvider 实现了 IMediaProvider 接口，把对象写到 policy.LocalDir 下。
// 对象键即相对路径，访问URL由静态文件路由提供。
type LocalProvider struct {
}

// NewLocalProvider 是 LocalProvider 的构造函数。
func NewLocalProvider() IMediaProvider {
	return &LocalProvider{}
}

// physicalPath 把对象键映射为磁盘上的绝对路径，并拒绝越出根目录的键。
func (p *LocalProvider) physicalPath(policy *MediaPolicy, storageKey string) (string, error) {
	if policy.LocalDir == "" {
		return "", fmt.Errorf("本地存储配置缺少根目录")
	}
	cleaned := filepath.Clean(strings.TrimPrefix(storageKey, "/"))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("非法的对象键: %s", storageKey)
	}
	return filepath.Join(policy.LocalDir, cleaned), nil
}

// Upload 把文件流写入本地磁盘，必要时创建父目录。
func (p *LocalProvider) Upload(ctx context.Context, file io.Reader, policy *MediaPolicy, objectKey string, mimeType string) (*UploadResult, error) {
	physical, err := p.physicalPath(policy, objectKey)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(physical), 0755); err != nil {
		return nil, fmt.Errorf("创建本地目录失败: %w", err)
	}

	destFile, err := os.Create(physical)
	if err != nil {
		return nil, fmt.Errorf("无法创建目标文件: %w", err)
	}
	defer destFile.Close()

	size, err := io.Copy(destFile, file)
	if err != nil {
		// 写入失败时清理半成品文件
		os.Remove(physical)
		return nil, fmt.Errorf("写入本地文件失败: %w", err)
	}

	// 确保数据写入磁盘
	if err := destFile.Sync(); err != nil {
		return nil, fmt.Errorf("同步文件到磁盘失败: %w", err)
	}

	log.Printf("[本地存储] 写入成功: %s (%d bytes)", physical, size)

	return &UploadResult{
		StorageKey: objectKey,
		Size:       size,
		MimeType:   mimeType,
	}, nil
}

// Delete 删除本地文件。文件不存在时返回 ErrObjectNotFound。
func (p *LocalProvider) Delete(ctx context.Context, policy *MediaPolicy, storageKey string) error {
	physical, err := p.physicalPath(policy, storageKey)
	if err != nil {
		return err
	}

	if err := os.Remove(physical); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("删除本地文件 '%s' 失败: %w", physical, err)
	}
	return nil
}

// BuildURL 构建对象的访问URL。CDNDomain 在本地模式下是应用自身的静态文件前缀。
func (p *LocalProvider) BuildURL(policy *MediaPolicy, storageKey string) string {
	domain := normalizeCDNDomain(policy.CDNDomain)
	if domain == "" {
		return constant.LocalMediaURLPrefix + "/" + strings.TrimPrefix(storageKey, "/")
	}
	return fmt.Sprintf("%s/%s", domain, strings.TrimPrefix(storageKey, "/"))
}

// BuildTransformURL 本地驱动不支持URL参数式图片变换。
func (p *LocalProvider) BuildTransformURL(policy *MediaPolicy, storageKey string, spec TransformSpec) (string, error) {
	return "", ErrFeatureNotSupported
}

// IsExist 检查本地文件是否存在。
func (p *LocalProvider) IsExist(ctx context.Context, policy *MediaPolicy, storageKey string) (bool, error) {
	physical, err := p.physicalPath(policy, storageKey)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(physical); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
