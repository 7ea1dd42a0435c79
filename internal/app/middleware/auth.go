/*
 * @Description: JWT 认证与角色检查中间件
 * @Author: 安知鱼
 * @Date: 2025-11-12 10:10:25
 * @LastEditTime: 2026-02-18 17:02:44
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/internal/pkg/auth"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
	"github.com/behark/autoanikw-sub000/pkg/response"
)

type Middleware struct {
	jwtSecret []byte
}

func NewMiddleware(jwtSecret []byte) *Middleware {
	return &Middleware{jwtSecret: jwtSecret}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1], m.jwtSecret)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// AdminOnly 要求当前用户是管理员，必须挂在 JWTAuth 之后。
func (m *Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil || claims.Role != string(model.RoleAdmin) {
			response.Fail(c, http.StatusForbidden, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentClaims 从上下文取出已解析的JWT声明，没有时返回 nil。
func CurrentClaims(c *gin.Context) *auth.CustomClaims {
	value, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.CustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUserID 返回当前登录用户的数据库ID，未登录或解码失败返回 0。
func CurrentUserID(c *gin.Context) uint {
	claims := CurrentClaims(c)
	if claims == nil {
		return 0
	}
	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return 0
	}
	return userID
}
