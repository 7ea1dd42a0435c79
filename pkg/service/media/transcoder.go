/*
 * @Description: 图片入库前的归一化转码与衍生图渲染
 * @Author: 安知鱼
 * @Date: 2025-11-07 09:40:12
 * @LastEditTime: 2026-03-19 16:22:50
 * @LastEditors: 安知鱼
 *
 * 归一化失败从不阻断上传：解码或重编码出错时原样保留用户字节，
 * 打印告警后继续走上传流程。宁可存一张没优化过的图，也不丢用户数据。
 */
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"log"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// TranscodeResult 是一次归一化的结果。
// Transcoded 为 false 时 Data 就是调用方传入的原始字节。
type TranscodeResult struct {
	Data       []byte
	Width      int
	Height     int
	Format     string // 实际编码格式，转码成功后固定为 jpeg
	Transcoded bool
}

// Transcoder 负责把上传图片缩放到边界框内并重编码为JPEG。
type Transcoder struct {
	boundWidth  int
	boundHeight int
	jpegQuality int
}

// NewTranscoder 使用默认的入库归一化参数创建转码器。
func NewTranscoder() *Transcoder {
	return &Transcoder{
		boundWidth:  constant.TranscodeBoundWidth,
		boundHeight: constant.TranscodeBoundHeight,
		jpegQuality: constant.TranscodeJPEGQuality,
	}
}

// Normalize 对图片字节做入库归一化：等比缩放到边界框内（不放大），
// 统一重编码为JPEG。任何一步失败都回退到原始字节并打印告警。
func (t *Transcoder) Normalize(data []byte) *TranscodeResult {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("[转码器] WARN: 解码图片失败，回退为原始字节: %v", err)
		return t.fallback(data)
	}

	bounds := img.Bounds()
	if bounds.Dx() > t.boundWidth || bounds.Dy() > t.boundHeight {
		// Fit 只缩不放，保持宽高比
		img = imaging.Fit(img, t.boundWidth, t.boundHeight, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(t.jpegQuality)); err != nil {
		log.Printf("[转码器] WARN: 重编码JPEG失败，回退为原始字节: %v", err)
		return t.fallback(data)
	}

	return &TranscodeResult{
		Data:       buf.Bytes(),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     "jpeg",
		Transcoded: true,
	}
}

// fallback 构建回退结果，尽量从原始字节里读出尺寸信息。
func (t *Transcoder) fallback(data []byte) *TranscodeResult {
	result := &TranscodeResult{Data: data}
	if cfg, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		result.Width = cfg.Width
		result.Height = cfg.Height
		result.Format = format
	}
	return result
}

// RenderRendition 把图片渲染为指定边界内的JPEG衍生图。
// 供不支持URL参数变换的存储驱动在上传时生成衍生对象。
func (t *Transcoder) RenderRendition(data []byte, boundSize int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("解码图片失败: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > boundSize || bounds.Dy() > boundSize {
		img = imaging.Fit(img, boundSize, boundSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(t.jpegQuality)); err != nil {
		return nil, fmt.Errorf("编码衍生图失败: %w", err)
	}
	return buf.Bytes(), nil
}
