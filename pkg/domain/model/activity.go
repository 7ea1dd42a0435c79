/*
 * @Description: 操作日志领域模型
 * @Author: 安知鱼
 * @Date: 2025-11-04 10:11:45
 * @LastEditTime: 2026-01-19 17:55:03
 * @LastEditors: 安知鱼
 */
package model

import "time"

// ActivityLog 记录后台的一次操作，仅用于审计展示。
// 写入由事件总线的监听器异步完成，写入失败只记日志，绝不影响主流程。
type ActivityLog struct {
	ID         uint      `json:"-"`
	PublicID   string    `json:"id"` // 对外暴露的混淆ID，由服务层填充
	CreatedAt  time.Time `json:"created_at"`
	UserID     uint      `json:"-"`           // 操作者用户ID，0 表示系统
	Action     string    `json:"action"`      // 动作，如 media.upload / vehicle.update
	EntityType string    `json:"entity_type"` // 目标实体类型
	EntityID   uint      `json:"-"`           // 目标实体数据库ID
	Detail     string    `json:"detail"`      // 人类可读的描述
}
