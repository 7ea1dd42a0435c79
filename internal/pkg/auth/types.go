/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-11-10 18:38:27
 * @LastEditTime: 2025-12-28 12:02:19
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索用户信息结构体的键。
const ClaimsKey = "user_claims"

// CustomClaims 定义了 JWT 的自定义 Claims 结构体。
// UserID 存储的是公共 ID 字符串表示，绝不携带数据库自增主键。
type CustomClaims struct {
	UserID string `json:"user_id"` // 用户公共ID
	Role   string `json:"role"`    // 用户角色 admin/editor
	jwt.RegisteredClaims
}
