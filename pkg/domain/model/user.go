/*
 * @Description: 用户领域模型
 * @Author: 安知鱼
 * @Date: 2025-11-04 10:05:12
 * @LastEditTime: 2025-12-28 11:39:50
 * @LastEditors: 安知鱼
 */
package model

import "time"

// UserRole 标识用户的权限级别。
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)

// User 是后台用户的领域模型。前台访客无账号体系。
type User struct {
	ID           uint      `json:"-"`
	PublicID     string    `json:"id"` // 对外暴露的混淆ID，由服务层填充
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Nickname     string    `json:"nickname"`
	Role         UserRole  `json:"role"`
}
