/*
 * @Description: 车辆领域模型
 * @Author: 安知鱼
 * @Date: 2025-11-04 09:48:30
 * @LastEditTime: 2026-02-11 15:26:18
 * @LastEditors: 安知鱼
 */
package model

import "time"

// VehicleStatus 是车辆在售卖流程中的状态。
type VehicleStatus string

const (
	VehicleStatusDraft     VehicleStatus = "draft"     // 草稿，仅后台可见
	VehicleStatusPublished VehicleStatus = "published" // 已上架，前台可见
	VehicleStatusReserved  VehicleStatus = "reserved"  // 已被预订
	VehicleStatusSold      VehicleStatus = "sold"      // 已售出
)

// Vehicle 是车辆信息的领域模型。
// Description 存储 Markdown 原文，DescriptionHTML 是渲染并消毒后的 HTML，
// 两者同时落库，前台只读 HTML。
type Vehicle struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"` // 对外暴露的混淆ID，由服务层填充
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Make            string        `json:"make"`  // 品牌
	Model           string        `json:"model"` // 型号
	Year            int           `json:"year"`
	PriceCents      int64         `json:"price_cents"` // 价格（分），避免浮点
	Mileage         int           `json:"mileage"`     // 里程（公里）
	FuelType        string        `json:"fuel_type"`
	Transmission    string        `json:"transmission"`
	Status          VehicleStatus `json:"status"`
	Featured        bool          `json:"featured"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html"`
	CoverMediaID    *uint         `json:"-"` // 封面图的媒体资产ID
}
