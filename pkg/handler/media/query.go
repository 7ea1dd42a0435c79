/*
 * @Description: 媒体库查询接口
 * @Author: 安知鱼
 * @Date: 2025-11-12 15:10:40
 * @LastEditTime: 2026-03-01 20:40:12
 * @LastEditors: 安知鱼
 */
package media

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
	"github.com/behark/autoanikw-sub000/pkg/response"
)

// List 处理媒体库分页查询。
// 查询参数: page, limit, category, relatedEntityId, search, sortBy, sortOrder
func (h *Handler) List(c *gin.Context) {
	var opts repository.MediaListOptions
	if err := c.ShouldBindQuery(&opts.PageQuery); err != nil {
		response.Fail(c, http.StatusBadRequest, "分页参数无效: "+err.Error())
		return
	}
	opts.Category = constant.MediaCategory(c.Query("category"))
	opts.Search = c.Query("search")
	opts.SortBy = c.Query("sortBy")
	opts.SortOrder = c.Query("sortOrder")

	if related := c.Query("relatedEntityId"); related != "" {
		vehicleID, entityType, err := idgen.DecodePublicID(related)
		if err != nil || entityType != idgen.EntityTypeVehicle {
			response.Fail(c, http.StatusBadRequest, "无效的关联车辆ID")
			return
		}
		opts.VehicleID = &vehicleID
	}

	result, err := h.mediaSvc.List(c.Request.Context(), opts)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// Get 返回单个媒体资产，不存在时返回404。
func (h *Handler) Get(c *gin.Context) {
	asset, err := h.mediaSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, asset, "获取成功")
}
