/*
 * @Description: 认证 API 处理器（登录、刷新令牌）
 * @Author: 安知鱼
 * @Date: 2025-11-10 11:42:08
 * @LastEditTime: 2026-02-27 20:14:36
 * @LastEditors: 安知鱼
 */
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/response"
	auth_service "github.com/behark/autoanikw-sub000/pkg/service/auth"
)

// Handler 负责处理认证相关的 API 请求。
type Handler struct {
	authSvc *auth_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(authSvc *auth_service.Service) *Handler {
	return &Handler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Login 用户名密码登录，成功后签发令牌对。
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	tokens, user, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, constant.ErrUnauthorized) {
			response.Fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user": gin.H{
			"id":       user.PublicID,
			"username": user.Username,
			"role":     user.Role,
		},
	}, "登录成功")
}

// Refresh 使用刷新令牌换取新的令牌对。
func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, constant.ErrUnauthorized) || errors.Is(err, constant.ErrInvalidToken) {
			response.Fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	}, "刷新成功")
}
