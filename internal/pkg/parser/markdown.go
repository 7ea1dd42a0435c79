/*
 * @Description: 车辆描述的 Markdown 渲染与 HTML 消毒
 * @Author: 安知鱼
 * @Date: 2025-11-09 15:12:08
 * @LastEditTime: 2026-01-28 09:47:30
 * @LastEditors: 安知鱼
 */
package parser

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var mdParser goldmark.Markdown
var policy *bluemonday.Policy

func init() {
	mdParser = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,           // 车辆配置经常用表格和列表
			extension.Strikethrough, // 删除线，标注降价
			extension.Linkify,       // 自动识别链接
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(), // 信任原始 HTML，后续由 bluemonday 清理
		),
	)

	// UGCPolicy 适用于后台编辑生成的内容
	policy = bluemonday.UGCPolicy()
	// 允许车辆参数表格
	policy.AllowElements("table", "thead", "tbody", "tr", "th", "td")
}

// MarkdownToHTML 将 Markdown 渲染为消毒后的 HTML，防止 XSS。
func MarkdownToHTML(mdContent string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(mdContent), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
