/*
 * @Description: 媒体对象存储网关，封装具体存储驱动的差异
 * @Author: 安知鱼
 * @Date: 2025-11-06 10:15:40
 * @LastEditTime: 2026-03-19 15:08:33
 * @LastEditors: 安知鱼
 *
 * 上层业务只跟网关打交道：网关负责生成对象键、选择驱动、归一化
 * "对象不存在"这类非致命错误。换存储只需要改配置，不动业务代码。
 */
package mediahost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/behark/autoanikw-sub000/internal/infra/storage"
	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// Gateway 是媒体对象存储的统一入口。
type Gateway struct {
	policy    *storage.MediaPolicy
	providers map[constant.MediaProviderType]storage.IMediaProvider
}

// NewGateway 创建存储网关。providers 在应用启动时构建一次。
func NewGateway(policy *storage.MediaPolicy, providers map[constant.MediaProviderType]storage.IMediaProvider) (*Gateway, error) {
	if policy == nil {
		return nil, errors.New("媒体存储配置不能为空")
	}
	if _, ok := providers[policy.Type]; !ok {
		return nil, fmt.Errorf("未知的媒体存储类型: %s", policy.Type)
	}
	return &Gateway{
		policy:    policy,
		providers: providers,
	}, nil
}

// provider 返回当前策略对应的驱动。
func (g *Gateway) provider() storage.IMediaProvider {
	return g.providers[g.policy.Type]
}

// BuildObjectKey 为一次上传生成唯一对象键。
// 格式: {basePath}/{category}/{uuid}{ext}，uuid保证并发上传互不覆盖。
func (g *Gateway) BuildObjectKey(category constant.MediaCategory, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	basePath := strings.Trim(g.policy.BasePath, "/")

	key := fmt.Sprintf("%s/%s%s", category, uuid.New().String(), ext)
	if basePath != "" {
		key = basePath + "/" + key
	}
	return key
}

// RenditionKey 为衍生图生成对象键，在扩展名前插入变体名。
// 例如 media/vehicle_image/abc.jpg -> media/vehicle_image/abc_thumbnail.jpg
func (g *Gateway) RenditionKey(storageKey, renditionName string) string {
	ext := filepath.Ext(storageKey)
	base := strings.TrimSuffix(storageKey, ext)
	return fmt.Sprintf("%s_%s%s", base, renditionName, ext)
}

// Upload 上传对象到当前配置的存储。
func (g *Gateway) Upload(ctx context.Context, file io.Reader, objectKey string, mimeType string) (*storage.UploadResult, error) {
	result, err := g.provider().Upload(ctx, file, g.policy, objectKey, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrUpload, err)
	}
	return result, nil
}

// Delete 删除远端对象。
// 对象不存在只打印警告并返回 nil：删除已经不存在的东西不算失败。
// 其它错误原样返回，由调用方决定是否登记重试。
func (g *Gateway) Delete(ctx context.Context, storageKey string) error {
	err := g.provider().Delete(ctx, g.policy, storageKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			log.Printf("[媒体网关] WARN: 远端对象已不存在，跳过删除: %s", storageKey)
			return nil
		}
		return err
	}
	return nil
}

// BulkDelete 批量删除远端对象，语义同 Delete。
// 单个对象的失败只记录告警不中断批次，返回真正删除失败（非不存在）的键，
// 供调用方登记孤儿对象等待后台重试。
func (g *Gateway) BulkDelete(ctx context.Context, storageKeys []string) []string {
	var failed []string
	for _, key := range storageKeys {
		if key == "" {
			continue
		}
		if err := g.Delete(ctx, key); err != nil {
			log.Printf("[媒体网关] WARN: 删除远端对象失败: key=%s, err=%v", key, err)
			failed = append(failed, key)
		}
	}
	return failed
}

// BuildURL 构建对象的公开访问URL。
func (g *Gateway) BuildURL(storageKey string) string {
	return g.provider().BuildURL(g.policy, storageKey)
}

// SupportsTransformURL 报告当前驱动是否支持URL参数式图片变换。
func (g *Gateway) SupportsTransformURL() bool {
	_, err := g.provider().BuildTransformURL(g.policy, "probe.jpg", storage.TransformSpec{Width: 1})
	return !errors.Is(err, storage.ErrFeatureNotSupported)
}

// TransformURL 构建带变换参数的URL。
// 驱动不支持时返回 storage.ErrFeatureNotSupported，调用方应改用衍生对象。
func (g *Gateway) TransformURL(storageKey string, spec storage.TransformSpec) (string, error) {
	return g.provider().BuildTransformURL(g.policy, storageKey, spec)
}

// Exists 检查远端对象是否存在。
func (g *Gateway) Exists(ctx context.Context, storageKey string) (bool, error) {
	return g.provider().IsExist(ctx, g.policy, storageKey)
}
