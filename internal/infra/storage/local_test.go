package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/behark/autoanikw-sub000/pkg/constant"
)

func newLocalPolicy(t *testing.T) *MediaPolicy {
	t.Helper()
	return &MediaPolicy{
		Type:     constant.ProviderTypeLocal,
		LocalDir: t.TempDir(),
	}
}

func TestLocalProviderUploadAndDelete(t *testing.T) {
	provider := NewLocalProvider()
	policy := newLocalPolicy(t)
	ctx := context.Background()

	content := []byte("测试文件内容")
	result, err := provider.Upload(ctx, bytes.NewReader(content), policy, "media/vehicle_image/car.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if result.StorageKey != "media/vehicle_image/car.jpg" {
		t.Errorf("StorageKey = %q", result.StorageKey)
	}
	if result.Size != int64(len(content)) {
		t.Errorf("Size = %d, 期望 %d", result.Size, len(content))
	}

	// 文件确实落盘
	onDisk, err := os.ReadFile(filepath.Join(policy.LocalDir, "media", "vehicle_image", "car.jpg"))
	if err != nil {
		t.Fatalf("读取落盘文件失败: %v", err)
	}
	if !bytes.Equal(onDisk, content) {
		t.Error("落盘内容与上传内容不一致")
	}

	exists, err := provider.IsExist(ctx, policy, "media/vehicle_image/car.jpg")
	if err != nil || !exists {
		t.Errorf("IsExist = (%v, %v), 期望 (true, nil)", exists, err)
	}

	if err := provider.Delete(ctx, policy, "media/vehicle_image/car.jpg"); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	// 第二次删除返回对象不存在
	if err := provider.Delete(ctx, policy, "media/vehicle_image/car.jpg"); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("重复删除应返回 ErrObjectNotFound，实际: %v", err)
	}
}

func TestLocalProviderRejectsTraversal(t *testing.T) {
	provider := NewLocalProvider()
	policy := newLocalPolicy(t)

	tests := []struct {
		name string
		key  string
	}{
		{"父目录逃逸", "../escape.txt"},
		{"深层逃逸", "../../etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Upload(context.Background(), strings.NewReader("x"), policy, tt.key, "text/plain")
			if err == nil {
				t.Fatal("越出根目录的键应该被拒绝")
			}
		})
	}
}

func TestLocalProviderBuildURL(t *testing.T) {
	provider := NewLocalProvider()

	tests := []struct {
		name      string
		cdnDomain string
		key       string
		want      string
	}{
		{"无CDN走本地静态前缀", "", "media/a.jpg", constant.LocalMediaURLPrefix + "/media/a.jpg"},
		{"配置了CDN域名", "https://cdn.example.com", "media/a.jpg", "https://cdn.example.com/media/a.jpg"},
		{"CDN域名带尾斜杠", "https://cdn.example.com/", "media/a.jpg", "https://cdn.example.com/media/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := &MediaPolicy{Type: constant.ProviderTypeLocal, CDNDomain: tt.cdnDomain}
			if got := provider.BuildURL(policy, tt.key); got != tt.want {
				t.Errorf("BuildURL() = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

func TestLocalProviderTransformURLNotSupported(t *testing.T) {
	provider := NewLocalProvider()
	policy := newLocalPolicy(t)

	_, err := provider.BuildTransformURL(policy, "media/a.jpg", TransformSpec{Width: 300})
	if !errors.Is(err, ErrFeatureNotSupported) {
		t.Errorf("本地驱动应返回 ErrFeatureNotSupported，实际: %v", err)
	}
}
