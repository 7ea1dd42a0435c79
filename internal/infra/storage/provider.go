/*
 * @Description: 定义了所有媒体存储驱动需要遵守的接口和公共结构
 * @Author: 安知鱼
 * @Date: 2025-11-05 09:12:40
 * @LastEditTime: 2026-03-18 10:44:27
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// MediaPolicy 是媒体存储的连接配置。
// 应用启动时从配置构建一次，之后以引用注入各组件（不使用隐藏单例），
// 测试可以用假的 Provider 替换驱动。
type MediaPolicy struct {
	Type       constant.MediaProviderType
	BucketName string
	AccessKey  string
	SecretKey  string
	// CDNDomain 是对外访问域名（如 https://cdn.example.com）。
	CDNDomain string
	// BasePath 是远端存储上的基础目录（如 "media"）。
	BasePath string
	// Server 是区域/端点信息：七牛为上传域名，S3 为区域名或自定义 endpoint。
	Server string
	// LocalDir 仅本地驱动使用，是文件落盘的根目录。
	LocalDir string
}

// UploadResult 封装了上传操作成功后的对象信息。
type UploadResult struct {
	// StorageKey 是远端返回的对象键，后续删除和构建URL都使用它。
	StorageKey string
	Size       int64
	MimeType   string
}

// TransformSpec 描述一次按需图片变换（宽/高/质量/格式）。
type TransformSpec struct {
	Width   int
	Height  int
	Quality int
	Format  string
}

// ErrFeatureNotSupported 表示某个功能不被当前驱动支持。
// 例如本地驱动和 S3 不支持 URL 参数式的图片变换。
var ErrFeatureNotSupported = errors.New("feature not supported by this provider")

// ErrObjectNotFound 表示远端对象不存在。
// 删除流程把它视为非致命警告：删除已经不存在的东西不算失败。
var ErrObjectNotFound = errors.New("object not found in remote storage")

// IMediaProvider 定义了所有媒体存储驱动必须实现的接口。
type IMediaProvider interface {
	// Upload 将文件流上传为指定对象键。
	Upload(ctx context.Context, file io.Reader, policy *MediaPolicy, objectKey string, mimeType string) (*UploadResult, error)
	// Delete 删除一个远端对象。对象不存在时返回 ErrObjectNotFound。
	Delete(ctx context.Context, policy *MediaPolicy, storageKey string) error
	// BuildURL 为对象构建公开访问URL。纯函数，不产生网络调用。
	BuildURL(policy *MediaPolicy, storageKey string) string
	// BuildTransformURL 构建带图片变换参数的URL。
	// 不支持 URL 变换的驱动返回 ErrFeatureNotSupported。纯函数。
	BuildTransformURL(policy *MediaPolicy, storageKey string, spec TransformSpec) (string, error)
	// IsExist 检查对象是否存在。
	IsExist(ctx context.Context, policy *MediaPolicy, storageKey string) (bool, error)
}

// NewProviders 构建全部可用驱动的集合，按类型索引。
func NewProviders() map[constant.MediaProviderType]IMediaProvider {
	return map[constant.MediaProviderType]IMediaProvider{
		constant.ProviderTypeLocal: NewLocalProvider(),
		constant.ProviderTypeQiniu: NewQiniuKodoProvider(),
		constant.ProviderTypeS3:    NewAWSS3Provider(),
	}
}
