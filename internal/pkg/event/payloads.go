/*
 * @Description: 事件总线上传递的负载结构
 * @Author: 安知鱼
 * @Date: 2025-11-08 15:30:19
 * @LastEditTime: 2026-01-22 18:24:40
 * @LastEditors: 安知鱼
 */
package event

// AuditPayload 是后台操作事件的统一负载，由监听器异步写入操作日志。
type AuditPayload struct {
	UserID     uint   // 操作者用户ID，0 表示系统
	Action     string // 如 media.upload / vehicle.update
	EntityType string
	EntityID   uint
	Detail     string
}
