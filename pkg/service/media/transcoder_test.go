package media

import (
	"bytes"
	"image"
	"testing"
)

func TestTranscoderNormalize(t *testing.T) {
	tr := NewTranscoder()

	t.Run("超出边界的大图被等比压入边界框", func(t *testing.T) {
		data := makePNG(t, 3000, 1200)
		result := tr.Normalize(data)

		if !result.Transcoded {
			t.Fatal("期望完成转码")
		}
		if result.Format != "jpeg" {
			t.Errorf("Format = %q, 期望 jpeg", result.Format)
		}
		if result.Width > tr.boundWidth || result.Height > tr.boundHeight {
			t.Errorf("尺寸 %dx%d 超出边界框 %dx%d", result.Width, result.Height, tr.boundWidth, tr.boundHeight)
		}
		// 等比缩放不应该改变宽高比的大小关系
		if result.Width <= result.Height {
			t.Errorf("宽图缩放后仍应保持宽大于高，实际 %dx%d", result.Width, result.Height)
		}

		img, format, err := image.Decode(bytes.NewReader(result.Data))
		if err != nil {
			t.Fatalf("转码产物无法解码: %v", err)
		}
		if format != "jpeg" {
			t.Errorf("产物实际格式 = %q, 期望 jpeg", format)
		}
		if img.Bounds().Dx() != result.Width {
			t.Errorf("产物宽度 %d 与结果记录 %d 不一致", img.Bounds().Dx(), result.Width)
		}
	})

	t.Run("小图不放大", func(t *testing.T) {
		data := makePNG(t, 10, 8)
		result := tr.Normalize(data)

		if !result.Transcoded {
			t.Fatal("期望完成转码")
		}
		if result.Width != 10 || result.Height != 8 {
			t.Errorf("尺寸 = %dx%d, 期望保持 10x8", result.Width, result.Height)
		}
	})

	t.Run("损坏的字节原样保留", func(t *testing.T) {
		data := []byte("这不是一张图片")
		result := tr.Normalize(data)

		if result.Transcoded {
			t.Fatal("损坏的输入不应该标记为已转码")
		}
		if !bytes.Equal(result.Data, data) {
			t.Error("回退时必须原样保留用户字节")
		}
	})
}

func TestTranscoderRenderRendition(t *testing.T) {
	tr := NewTranscoder()

	t.Run("衍生图压入指定边界", func(t *testing.T) {
		data := makePNG(t, 1200, 900)
		out, err := tr.RenderRendition(data, 300)
		if err != nil {
			t.Fatalf("渲染衍生图失败: %v", err)
		}

		img, format, err := image.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("衍生图无法解码: %v", err)
		}
		if format != "jpeg" {
			t.Errorf("衍生图格式 = %q, 期望 jpeg", format)
		}
		if img.Bounds().Dx() > 300 || img.Bounds().Dy() > 300 {
			t.Errorf("衍生图尺寸 %dx%d 超出边界 300", img.Bounds().Dx(), img.Bounds().Dy())
		}
	})

	t.Run("损坏的字节返回错误", func(t *testing.T) {
		if _, err := tr.RenderRendition([]byte("junk"), 300); err == nil {
			t.Fatal("期望返回解码错误")
		}
	})
}
