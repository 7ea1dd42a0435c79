/*
 * @Description: 媒体存储提供者类型
 * @Author: 安知鱼
 * @Date: 2025-11-03 10:41:32
 * @LastEditTime: 2025-12-20 22:07:10
 * @LastEditors: 安知鱼
 */
package constant

// MediaProviderType 标识媒体文件最终落地的远端存储类型。
type MediaProviderType string

const (
	ProviderTypeLocal MediaProviderType = "local" // 本地磁盘（开发与测试）
	ProviderTypeQiniu MediaProviderType = "qiniu" // 七牛云 Kodo
	ProviderTypeS3    MediaProviderType = "s3"    // AWS S3 及兼容服务（MinIO 等）
)

// LocalMediaURLPrefix 是本地存储驱动下媒体文件的静态路由前缀。
const LocalMediaURLPrefix = "/media-files"

// ValidProviderTypes 是所有受支持的提供者类型集合。
var ValidProviderTypes = map[MediaProviderType]bool{
	ProviderTypeLocal: true,
	ProviderTypeQiniu: true,
	ProviderTypeS3:    true,
}
