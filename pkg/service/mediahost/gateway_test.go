package mediahost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/behark/autoanikw-sub000/internal/infra/storage"
	"github.com/behark/autoanikw-sub000/pkg/constant"
)

// fakeProvider 是一个受控的存储驱动，按键返回预设的行为。
type fakeProvider struct {
	deleteErrs    map[string]error
	deleteCalls   []string
	supportsXform bool
}

func (f *fakeProvider) Upload(ctx context.Context, file io.Reader, policy *storage.MediaPolicy, objectKey string, mimeType string) (*storage.UploadResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &storage.UploadResult{StorageKey: objectKey, Size: int64(len(data)), MimeType: mimeType}, nil
}

func (f *fakeProvider) Delete(ctx context.Context, policy *storage.MediaPolicy, storageKey string) error {
	f.deleteCalls = append(f.deleteCalls, storageKey)
	return f.deleteErrs[storageKey]
}

func (f *fakeProvider) BuildURL(policy *storage.MediaPolicy, storageKey string) string {
	return "https://cdn.test/" + storageKey
}

func (f *fakeProvider) BuildTransformURL(policy *storage.MediaPolicy, storageKey string, spec storage.TransformSpec) (string, error) {
	if !f.supportsXform {
		return "", storage.ErrFeatureNotSupported
	}
	return fmt.Sprintf("https://cdn.test/%s?w=%d", storageKey, spec.Width), nil
}

func (f *fakeProvider) IsExist(ctx context.Context, policy *storage.MediaPolicy, storageKey string) (bool, error) {
	return true, nil
}

func newTestGateway(t *testing.T, fake *fakeProvider) *Gateway {
	t.Helper()
	gw, err := NewGateway(
		&storage.MediaPolicy{Type: constant.ProviderTypeLocal, BasePath: "media"},
		map[constant.MediaProviderType]storage.IMediaProvider{constant.ProviderTypeLocal: fake},
	)
	if err != nil {
		t.Fatalf("构建网关失败: %v", err)
	}
	return gw
}

func TestNewGatewayRejectsUnknownProvider(t *testing.T) {
	_, err := NewGateway(
		&storage.MediaPolicy{Type: constant.MediaProviderType("ftp")},
		map[constant.MediaProviderType]storage.IMediaProvider{constant.ProviderTypeLocal: &fakeProvider{}},
	)
	if err == nil {
		t.Fatal("未注册的存储类型应该在启动时报错")
	}
}

func TestBuildObjectKey(t *testing.T) {
	gw := newTestGateway(t, &fakeProvider{})

	key := gw.BuildObjectKey(constant.CategoryVehicleImage, "照片.JPG")
	if !strings.HasPrefix(key, "media/vehicle_image/") {
		t.Errorf("对象键 %q 应该以 basePath/分类 开头", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("对象键 %q 应该保留小写扩展名", key)
	}

	// 同名文件并发上传不允许互相覆盖
	other := gw.BuildObjectKey(constant.CategoryVehicleImage, "照片.JPG")
	if key == other {
		t.Error("两次上传同名文件生成了相同的对象键")
	}
}

func TestRenditionKey(t *testing.T) {
	gw := newTestGateway(t, &fakeProvider{})

	tests := []struct {
		name      string
		key       string
		rendition string
		want      string
	}{
		{"常规键", "media/vehicle_image/abc.jpg", "thumbnail", "media/vehicle_image/abc_thumbnail.jpg"},
		{"无扩展名", "media/other/blob", "preview", "media/other/blob_preview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gw.RenditionKey(tt.key, tt.rendition); got != tt.want {
				t.Errorf("RenditionKey() = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

func TestGatewayDelete(t *testing.T) {
	t.Run("对象不存在视为删除成功", func(t *testing.T) {
		fake := &fakeProvider{deleteErrs: map[string]error{
			"gone.jpg": storage.ErrObjectNotFound,
		}}
		gw := newTestGateway(t, fake)

		// 重复删除同一个键两次都应该成功
		if err := gw.Delete(context.Background(), "gone.jpg"); err != nil {
			t.Fatalf("第一次删除: %v", err)
		}
		if err := gw.Delete(context.Background(), "gone.jpg"); err != nil {
			t.Fatalf("第二次删除: %v", err)
		}
	})

	t.Run("真实错误原样返回", func(t *testing.T) {
		wantErr := errors.New("connection reset")
		fake := &fakeProvider{deleteErrs: map[string]error{"a.jpg": wantErr}}
		gw := newTestGateway(t, fake)

		if err := gw.Delete(context.Background(), "a.jpg"); !errors.Is(err, wantErr) {
			t.Errorf("期望透传远端错误，实际: %v", err)
		}
	})
}

func TestGatewayBulkDelete(t *testing.T) {
	fake := &fakeProvider{deleteErrs: map[string]error{
		"missing.jpg": storage.ErrObjectNotFound,
		"broken.jpg":  errors.New("503"),
	}}
	gw := newTestGateway(t, fake)

	failed := gw.BulkDelete(context.Background(), []string{"ok.jpg", "missing.jpg", "broken.jpg", ""})

	if len(failed) != 1 || failed[0] != "broken.jpg" {
		t.Errorf("失败键 = %v, 期望只有 broken.jpg", failed)
	}
	// 空键不应该产生远端调用
	for _, key := range fake.deleteCalls {
		if key == "" {
			t.Error("空键不应该下发到驱动")
		}
	}
}

func TestSupportsTransformURL(t *testing.T) {
	t.Run("驱动支持URL变换", func(t *testing.T) {
		gw := newTestGateway(t, &fakeProvider{supportsXform: true})
		if !gw.SupportsTransformURL() {
			t.Error("期望返回 true")
		}
	})

	t.Run("驱动不支持URL变换", func(t *testing.T) {
		gw := newTestGateway(t, &fakeProvider{})
		if gw.SupportsTransformURL() {
			t.Error("期望返回 false")
		}
	})
}
