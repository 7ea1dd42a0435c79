/*
 * @Description: 媒体资产相关的常量定义（分类、允许的类型、大小限制、衍生图规格）
 * @Author: 安知鱼
 * @Date: 2025-11-03 10:30:08
 * @LastEditTime: 2026-03-02 09:14:55
 * @LastEditors: 安知鱼
 */
package constant

// MediaCategory 是媒体资产的固定分类，用于远端存储的目录划分和列表筛选。
type MediaCategory string

const (
	CategoryVehicleImage    MediaCategory = "vehicle_image"    // 车辆图片
	CategoryVehicleDocument MediaCategory = "vehicle_document" // 车辆文档（合同、检测报告等）
	CategoryAvatar          MediaCategory = "avatar"           // 用户头像
	CategorySiteContent     MediaCategory = "site_content"     // 站点内容图
	CategoryBanner          MediaCategory = "banner"           // 首页横幅
	CategoryLogo            MediaCategory = "logo"             // 站点/品牌 Logo
	CategoryOther           MediaCategory = "other"            // 其他
)

// ValidCategories 是所有合法分类的集合，供校验使用。
var ValidCategories = map[MediaCategory]bool{
	CategoryVehicleImage:    true,
	CategoryVehicleDocument: true,
	CategoryAvatar:          true,
	CategorySiteContent:     true,
	CategoryBanner:          true,
	CategoryLogo:            true,
	CategoryOther:           true,
}

// IsImageOnly 返回该分类是否只允许图片类型。
func (c MediaCategory) IsImageOnly() bool {
	switch c {
	case CategoryVehicleImage, CategoryAvatar, CategoryBanner, CategoryLogo:
		return true
	}
	return false
}

// 上传准入策略。全局上限在传输层兜底，图片另有更小的应用层上限。
const (
	MaxUploadSize      = 10 << 20 // 所有文件的全局上限 10MiB
	MaxImageUploadSize = 5 << 20  // 图片类型的应用层上限 5MiB
	MaxBulkUploadFiles = 10       // 批量上传单次最大文件数
)

// AllowedImageMimeTypes 是允许上传的图片 MIME 类型集合。
var AllowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// AllowedDocumentMimeTypes 是允许上传的文档 MIME 类型集合。
var AllowedDocumentMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// IsAllowedMimeType 返回该 MIME 类型是否在受支持的集合内。
func IsAllowedMimeType(mimeType string) bool {
	return AllowedImageMimeTypes[mimeType] || AllowedDocumentMimeTypes[mimeType]
}

// AllowedMimeTypeList 返回受支持类型的列表，用于拼接校验错误信息。
func AllowedMimeTypeList() []string {
	list := make([]string, 0, len(AllowedImageMimeTypes)+len(AllowedDocumentMimeTypes))
	for m := range AllowedImageMimeTypes {
		list = append(list, m)
	}
	for m := range AllowedDocumentMimeTypes {
		list = append(list, m)
	}
	return list
}

// 图片归一化参数：入库前统一缩放到边界框内并重编码。
const (
	TranscodeBoundWidth  = 2000
	TranscodeBoundHeight = 2000
	TranscodeJPEGQuality = 85
)

// 上传时请求远端生成的衍生图规格名称。
const (
	RenditionThumbnail = "thumbnail"
	RenditionPreview   = "preview"
)

const (
	ThumbnailBoundSize = 300 // thumbnail 衍生图边界
	PreviewBoundSize   = 800 // preview 衍生图边界
)
