/*
 * @Description: 媒体上传接口（单文件、批量）
 * @Author: 安知鱼
 * @Date: 2025-11-12 14:30:08
 * @LastEditTime: 2026-03-22 14:40:33
 * @LastEditors: 安知鱼
 */
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/internal/app/middleware"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/response"
	media_service "github.com/behark/autoanikw-sub000/pkg/service/media"
)

// readUploadMeta 从表单字段里读上传元数据。
func readUploadMeta(c *gin.Context) model.UploadMeta {
	return model.UploadMeta{
		Category:        constant.MediaCategory(c.PostForm("category")),
		AltText:         c.PostForm("alt"),
		Caption:         c.PostForm("caption"),
		TagsCSV:         c.PostForm("tags"),
		VehiclePublicID: c.PostForm("relatedEntityId"),
	}
}

// readFormFile 把一个 multipart 文件完整读入内存。
func readFormFile(fh *multipart.FileHeader) (media_service.UploadFile, error) {
	if fh.Size > constant.MaxUploadSize {
		return media_service.UploadFile{}, fmt.Errorf("%w: 文件 %s 大小超过上限", constant.ErrValidation, fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return media_service.UploadFile{}, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return media_service.UploadFile{}, fmt.Errorf("读取上传文件失败: %w", err)
	}
	return media_service.UploadFile{Filename: fh.Filename, Data: data}, nil
}

// Upload 处理单文件上传。multipart 字段名为 file。
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少上传文件字段 'file'")
		return
	}

	file, err := readFormFile(fh)
	if err != nil {
		fail(c, err)
		return
	}

	asset, err := h.mediaSvc.Upload(c.Request.Context(), file, readUploadMeta(c), middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, asset, "上传成功")
}

// UploadBulk 处理批量上传。multipart 字段名为 files，单次最多10个。
// 部分失败不是错误：只要数量校验通过就返回 201 和逐项结果。
func (h *Handler) UploadBulk(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "解析 multipart 表单失败: "+err.Error())
		return
	}
	headers := form.File["files"]
	if err := media_service.ValidateBulkCount(len(headers)); err != nil {
		fail(c, err)
		return
	}

	files := make([]media_service.UploadFile, 0, len(headers))
	meta := readUploadMeta(c)
	for _, fh := range headers {
		file, rerr := readFormFile(fh)
		if rerr != nil {
			// 读失败的文件作为批次内失败项处理，不中断其它文件
			files = append(files, media_service.UploadFile{Filename: fh.Filename, ReadErr: rerr})
			continue
		}
		files = append(files, file)
	}

	result, err := h.mediaSvc.UploadBulk(c.Request.Context(), files, meta, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, result, "批量上传完成")
}
