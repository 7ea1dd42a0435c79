/*
 * @Description: 远端孤儿对象领域模型
 * @Author: 安知鱼
 * @Date: 2025-11-04 10:18:20
 * @LastEditTime: 2026-03-15 21:10:31
 * @LastEditors: 安知鱼
 */
package model

import "time"

// OrphanObject 记录一次失败的远端删除。
// 删除媒体资产时数据库记录总是优先移除（不让后台界面被远端故障阻塞），
// 真实失败（非"对象不存在"）的存储键会被登记到这里，由夜间任务重试清理。
type OrphanObject struct {
	ID         uint      `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	StorageKey string    `json:"storage_key"`
	Attempts   int       `json:"attempts"`
	LastError  string    `json:"last_error"`
}
