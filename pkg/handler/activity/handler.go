/*
 * @Description: 操作日志 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-12-03 10:27:51
 * @LastEditTime: 2026-01-19 15:44:20
 * @LastEditors: 安知鱼
 */
package activity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/response"
	activity_service "github.com/behark/autoanikw-sub000/pkg/service/activity"
)

// Handler 负责处理操作日志的查询请求。
type Handler struct {
	activitySvc *activity_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(activitySvc *activity_service.Service) *Handler {
	return &Handler{activitySvc: activitySvc}
}

// List 分页查询操作日志，按时间倒序。
func (h *Handler) List(c *gin.Context) {
	var page repository.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Fail(c, http.StatusBadRequest, "分页参数无效: "+err.Error())
		return
	}

	result, err := h.activitySvc.List(c.Request.Context(), page)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, result, "获取成功")
}
