/*
 * @Description: 媒体元数据更新与删除接口
 * @Author: 安知鱼
 * @Date: 2025-11-12 15:40:17
 * @LastEditTime: 2026-03-22 14:42:07
 * @LastEditors: 安知鱼
 */
package media

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/internal/app/middleware"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/response"
)

// Update 处理元数据更新。请求体里省略的字段保持原值。
func (h *Handler) Update(c *gin.Context) {
	var patch model.MediaAssetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	asset, err := h.mediaSvc.UpdateMeta(c.Request.Context(), c.Param("id"), patch, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, asset, "更新成功")
}

// Delete 删除单个媒体资产（远端清理 + 记录删除），不存在时返回404。
func (h *Handler) Delete(c *gin.Context) {
	if err := h.mediaSvc.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil, "删除成功")
}

// bulkDeleteRequest 是批量删除的请求体。
type bulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// DeleteBulk 批量删除，返回尝试数与实际移除数。
func (h *Handler) DeleteBulk(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	result, err := h.mediaSvc.DeleteBulk(c.Request.Context(), req.IDs, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result, "批量删除完成")
}
