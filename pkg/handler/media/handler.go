/*
 * @Description: 媒体库 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-11-12 14:02:55
 * @LastEditTime: 2026-03-20 16:10:33
 * @LastEditors: 安知鱼
 */
package media

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/response"
	media_service "github.com/behark/autoanikw-sub000/pkg/service/media"
)

// Handler 负责处理媒体库相关的 API 请求。
type Handler struct {
	mediaSvc *media_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(mediaSvc *media_service.Service) *Handler {
	return &Handler{mediaSvc: mediaSvc}
}

// fail 把业务错误翻译成HTTP状态码后返回。
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrValidation),
		errors.Is(err, constant.ErrBadRequest),
		errors.Is(err, constant.ErrInvalidPublicID):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrForbidden):
		response.Fail(c, http.StatusForbidden, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
