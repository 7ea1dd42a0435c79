package repository

import "testing"

func TestPageQueryNormalize(t *testing.T) {
	tests := []struct {
		name         string
		input        PageQuery
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "零值回落默认",
			input:        PageQuery{},
			wantPage:     DefaultPage,
			wantPageSize: DefaultPageSize,
		},
		{
			name:         "负数回落默认",
			input:        PageQuery{Page: -3, PageSize: -10},
			wantPage:     DefaultPage,
			wantPageSize: DefaultPageSize,
		},
		{
			name:         "合法参数原样保留",
			input:        PageQuery{Page: 3, PageSize: 50},
			wantPage:     3,
			wantPageSize: 50,
		},
		{
			name:         "超过上限截断到最大页宽",
			input:        PageQuery{Page: 1, PageSize: 500},
			wantPage:     1,
			wantPageSize: MaxPageSize,
		},
		{
			name:         "恰好等于上限不截断",
			input:        PageQuery{Page: 2, PageSize: MaxPageSize},
			wantPage:     2,
			wantPageSize: MaxPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, 期望 %d", got.Page, tt.wantPage)
			}
			if got.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, 期望 %d", got.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageQueryOffset(t *testing.T) {
	tests := []struct {
		name  string
		query PageQuery
		want  int
	}{
		{"第一页偏移为零", PageQuery{Page: 1, PageSize: 20}, 0},
		{"第二页跳过一整页", PageQuery{Page: 2, PageSize: 20}, 20},
		{"第五页小页宽", PageQuery{Page: 5, PageSize: 7}, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, 期望 %d", got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"整除", 40, 20, 2},
		{"有余数向上取整", 25, 10, 3},
		{"总数为零", 0, 20, 0},
		{"不足一页算一页", 1, 20, 1},
		{"页宽为零返回零", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.pageSize); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, 期望 %d", tt.total, tt.pageSize, got, tt.want)
			}
		})
	}
}
