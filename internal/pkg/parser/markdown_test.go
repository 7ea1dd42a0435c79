package parser

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "基础语法",
			input:       "# 车况说明\n\n保养记录**齐全**，*无事故*。",
			wantContain: []string{"<h1", "车况说明", "<strong>齐全</strong>", "<em>无事故</em>"},
		},
		{
			name:        "GFM表格保留",
			input:       "| 配置 | 参数 |\n| --- | --- |\n| 排量 | 2.0T |",
			wantContain: []string{"<table", "<th", "排量", "2.0T"},
		},
		{
			name:        "删除线标注降价",
			input:       "原价 ~~30万~~ 现价 28万",
			wantContain: []string{"<del>30万</del>"},
		},
		{
			name:        "脚本标签被清理",
			input:       "正常内容<script>alert('xss')</script>",
			wantContain: []string{"正常内容"},
			wantAbsent:  []string{"<script", "alert"},
		},
		{
			name:        "内联事件被清理",
			input:       `<img src="x.jpg" onerror="alert(1)">`,
			wantAbsent:  []string{"onerror"},
		},
		{
			name:        "裸链接自动识别",
			input:       "详见 https://example.com/report",
			wantContain: []string{`<a href="https://example.com/report"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.input)
			if err != nil {
				t.Fatalf("渲染失败: %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("输出缺少 %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("输出不应包含 %q:\n%s", absent, got)
				}
			}
		})
	}
}
