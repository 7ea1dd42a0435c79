/*
 * @Description: 车辆 API 处理器（后台管理 + 前台公开）
 * @Author: 安知鱼
 * @Date: 2025-11-12 16:20:33
 * @LastEditTime: 2026-03-20 17:05:52
 * @LastEditors: 安知鱼
 */
package vehicle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/internal/app/middleware"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/response"
	media_service "github.com/behark/autoanikw-sub000/pkg/service/media"
	vehicle_service "github.com/behark/autoanikw-sub000/pkg/service/vehicle"
)

// Handler 负责处理车辆相关的 API 请求。
type Handler struct {
	vehicleSvc *vehicle_service.Service
	mediaSvc   *media_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(vehicleSvc *vehicle_service.Service, mediaSvc *media_service.Service) *Handler {
	return &Handler{
		vehicleSvc: vehicleSvc,
		mediaSvc:   mediaSvc,
	}
}

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrValidation),
		errors.Is(err, constant.ErrBadRequest),
		errors.Is(err, constant.ErrInvalidPublicID):
		response.Fail(c, http.StatusBadRequest, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, err.Error())
	}
}

// Create 新建车辆。
func (h *Handler) Create(c *gin.Context) {
	var input vehicle_service.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	v, err := h.vehicleSvc.Create(c.Request.Context(), input, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, v, "创建成功")
}

// Update 全量更新车辆。
func (h *Handler) Update(c *gin.Context) {
	var input vehicle_service.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	v, err := h.vehicleSvc.Update(c.Request.Context(), c.Param("id"), input, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, v, "更新成功")
}

// Get 返回单辆车，不存在时返回404。
func (h *Handler) Get(c *gin.Context) {
	v, err := h.vehicleSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, v, "获取成功")
}

// List 后台分页查询车辆。
func (h *Handler) List(c *gin.Context) {
	var opts repository.VehicleListOptions
	if err := c.ShouldBindQuery(&opts.PageQuery); err != nil {
		response.Fail(c, http.StatusBadRequest, "分页参数无效: "+err.Error())
		return
	}
	opts.Status = model.VehicleStatus(c.Query("status"))
	opts.Make = c.Query("make")
	opts.Search = c.Query("search")
	if featured := c.Query("featured"); featured != "" {
		value := featured == "true" || featured == "1"
		opts.Featured = &value
	}

	result, err := h.vehicleSvc.List(c.Request.Context(), opts)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// Delete 删除车辆。
func (h *Handler) Delete(c *gin.Context) {
	if err := h.vehicleSvc.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil, "删除成功")
}

// ListMedia 返回某辆车关联的全部媒体。
func (h *Handler) ListMedia(c *gin.Context) {
	assets, err := h.mediaSvc.ListByVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, assets, "获取成功")
}

// ListPublished 前台已上架车辆列表，走缓存。
func (h *Handler) ListPublished(c *gin.Context) {
	var page repository.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Fail(c, http.StatusBadRequest, "分页参数无效: "+err.Error())
		return
	}

	result, err := h.vehicleSvc.ListPublished(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// GetPublished 前台车辆详情，未上架的车对外视同不存在。
func (h *Handler) GetPublished(c *gin.Context) {
	v, err := h.vehicleSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if v.Status != model.VehicleStatusPublished {
		response.Fail(c, http.StatusNotFound, constant.ErrNotFound.Error())
		return
	}
	response.Success(c, v, "获取成功")
}
