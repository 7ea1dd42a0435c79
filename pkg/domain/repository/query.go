/*
 * @Description: 列表查询通用的分页结构
 * @Author: 安知鱼
 * @Date: 2025-11-04 10:30:02
 * @LastEditTime: 2026-01-30 12:07:19
 * @LastEditors: 安知鱼
 */
package repository

// 分页默认值。page/limit 缺省或非法时回落到这里。
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery 包含了所有列表查询都通用的分页参数。
type PageQuery struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"limit" json:"limit"`
}

// Normalize 将非法的分页参数归一到默认值，并返回规范化后的副本。
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset 返回该页在结果集中的偏移量。
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PageResult 包含了所有分页查询返回的通用结构。
type PageResult[T any] struct {
	Items []*T  `json:"items"`
	Total int64 `json:"total"`
}

// TotalPages 根据总数和页大小计算总页数。
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
