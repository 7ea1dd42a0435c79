/*
 * @Description: 图片主色调提取服务
 * @Author: 安知鱼
 * @Date: 2025-11-08 11:20:47
 * @LastEditTime: 2026-02-26 15:03:12
 * @LastEditors: 安知鱼
 */
package utility

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp"
)

// ColorService 使用 prominentcolor (K-Means算法) 提取图片主色调。
// 车辆列表和媒体库用主色调做图片加载前的占位底色。
type ColorService struct {
}

func NewColorService() *ColorService {
	return &ColorService{}
}

// GetPrimaryColor 返回图片的主色调，格式为 #rrggbb。
func (s *ColorService) GetPrimaryColor(reader io.Reader) (string, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return "", fmt.Errorf("解码图片失败: %w", err)
	}

	colors, err := prominentcolor.KmeansWithArgs(1, img)
	if err != nil {
		return "", fmt.Errorf("使用 prominentcolor (K-Means) 提取主色调失败: %w", err)
	}
	if len(colors) == 0 {
		return "", fmt.Errorf("prominentcolor (K-Means) 未能找到任何主色调")
	}

	c := colors[0].Color
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}
