package media

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// makePNG 生成一张纯色PNG用于走真实的类型嗅探。
func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("生成测试PNG失败: %v", err)
	}
	return buf.Bytes()
}

func TestValidateUpload(t *testing.T) {
	pngData := makePNG(t, 4, 4)
	pdfData := []byte("%PDF-1.4\n%测试文档\n1 0 obj\n<<>>\nendobj\n")

	// PNG 魔数开头的超大字节串，让嗅探认成图片后触发图片大小上限
	bigImage := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, constant.MaxImageUploadSize)...)

	tests := []struct {
		name     string
		filename string
		data     []byte
		category constant.MediaCategory
		wantMime string
		wantErr  bool
	}{
		{
			name:     "文件名为空",
			filename: "   ",
			data:     pngData,
			category: constant.CategoryVehicleImage,
			wantErr:  true,
		},
		{
			name:     "内容为空",
			filename: "a.png",
			data:     nil,
			category: constant.CategoryVehicleImage,
			wantErr:  true,
		},
		{
			name:     "未知分类",
			filename: "a.png",
			data:     pngData,
			category: constant.MediaCategory("mystery"),
			wantErr:  true,
		},
		{
			name:     "合法PNG图片",
			filename: "cover.png",
			data:     pngData,
			category: constant.CategoryVehicleImage,
			wantMime: "image/png",
		},
		{
			name:     "合法PDF文档",
			filename: "manual.pdf",
			data:     pdfData,
			category: constant.CategoryVehicleDocument,
			wantMime: "application/pdf",
		},
		{
			name:     "纯图片分类拒绝文档",
			filename: "manual.pdf",
			data:     pdfData,
			category: constant.CategoryVehicleImage,
			wantErr:  true,
		},
		{
			name:     "不支持的类型被拒绝",
			filename: "archive.zip",
			data:     []byte("PK\x03\x04\x14\x00\x00\x00\x08\x00"),
			category: constant.CategoryOther,
			wantErr:  true,
		},
		{
			name:     "超过全局大小上限",
			filename: "huge.bin",
			data:     bytes.Repeat([]byte{'a'}, constant.MaxUploadSize+1),
			category: constant.CategoryOther,
			wantErr:  true,
		},
		{
			name:     "图片超过图片专属上限",
			filename: "huge.png",
			data:     bigImage,
			category: constant.CategoryVehicleImage,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := ValidateUpload(tt.filename, tt.data, tt.category)
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望校验失败，实际通过")
				}
				if !errors.Is(err, constant.ErrValidation) {
					t.Errorf("错误应该包裹 ErrValidation，实际: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("期望校验通过，实际失败: %v", err)
			}
			if mime != tt.wantMime {
				t.Errorf("嗅探类型 = %q, 期望 %q", mime, tt.wantMime)
			}
		})
	}
}

func TestValidateBulkCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"零个文件", 0, true},
		{"单个文件", 1, false},
		{"恰好达到上限", constant.MaxBulkUploadFiles, false},
		{"超过上限", constant.MaxBulkUploadFiles + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBulkCount(tt.count)
			if tt.wantErr && err == nil {
				t.Error("期望报错，实际通过")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("期望通过，实际报错: %v", err)
			}
		})
	}
}
