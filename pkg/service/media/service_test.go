package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/behark/autoanikw-sub000/internal/infra/storage"
	"github.com/behark/autoanikw-sub000/internal/pkg/event"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
	"github.com/behark/autoanikw-sub000/pkg/service/mediahost"
	"github.com/behark/autoanikw-sub000/pkg/service/utility"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// ---- 受控的依赖替身 ----

type stubProvider struct {
	failUpload  bool
	deleteErrs  map[string]error
	uploadCalls []string
	deleteCalls []string
	uploaded    map[string][]byte
}

func (p *stubProvider) Upload(ctx context.Context, file io.Reader, policy *storage.MediaPolicy, objectKey string, mimeType string) (*storage.UploadResult, error) {
	if p.failUpload {
		return nil, errors.New("远端不可用")
	}
	data, _ := io.ReadAll(file)
	p.uploadCalls = append(p.uploadCalls, objectKey)
	if p.uploaded == nil {
		p.uploaded = make(map[string][]byte)
	}
	p.uploaded[objectKey] = data
	return &storage.UploadResult{StorageKey: objectKey, Size: int64(len(data)), MimeType: mimeType}, nil
}

func (p *stubProvider) Delete(ctx context.Context, policy *storage.MediaPolicy, storageKey string) error {
	p.deleteCalls = append(p.deleteCalls, storageKey)
	if p.deleteErrs != nil {
		return p.deleteErrs[storageKey]
	}
	return nil
}

func (p *stubProvider) BuildURL(policy *storage.MediaPolicy, storageKey string) string {
	return "https://cdn.test/" + storageKey
}

func (p *stubProvider) BuildTransformURL(policy *storage.MediaPolicy, storageKey string, spec storage.TransformSpec) (string, error) {
	return "", storage.ErrFeatureNotSupported
}

func (p *stubProvider) IsExist(ctx context.Context, policy *storage.MediaPolicy, storageKey string) (bool, error) {
	return true, nil
}

type fakeMediaRepo struct {
	assets    map[uint]*model.MediaAsset
	nextID    uint
	createErr error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{assets: make(map[uint]*model.MediaAsset), nextID: 1}
}

func (r *fakeMediaRepo) Create(ctx context.Context, asset *model.MediaAsset) error {
	if r.createErr != nil {
		return r.createErr
	}
	asset.ID = r.nextID
	r.nextID++
	stored := *asset
	r.assets[asset.ID] = &stored
	return nil
}

func (r *fakeMediaRepo) FindByID(ctx context.Context, id uint) (*model.MediaAsset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return nil, fmt.Errorf("%w: 媒体资产 %d", constant.ErrNotFound, id)
	}
	found := *asset
	return &found, nil
}

func (r *fakeMediaRepo) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.MediaAsset, error) {
	var found []*model.MediaAsset
	for _, id := range ids {
		if asset, ok := r.assets[id]; ok {
			copied := *asset
			found = append(found, &copied)
		}
	}
	return found, nil
}

func (r *fakeMediaRepo) List(ctx context.Context, opts repository.MediaListOptions) (*repository.PageResult[model.MediaAsset], error) {
	return &repository.PageResult[model.MediaAsset]{Items: []*model.MediaAsset{}}, nil
}

func (r *fakeMediaRepo) Update(ctx context.Context, asset *model.MediaAsset) error {
	if _, ok := r.assets[asset.ID]; !ok {
		return constant.ErrNotFound
	}
	stored := *asset
	r.assets[asset.ID] = &stored
	return nil
}

func (r *fakeMediaRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.assets[id]; !ok {
		return constant.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

func (r *fakeMediaRepo) DeleteBatch(ctx context.Context, ids []uint) (int, error) {
	removed := 0
	for _, id := range ids {
		if _, ok := r.assets[id]; ok {
			delete(r.assets, id)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeMediaRepo) ListByVehicle(ctx context.Context, vehicleID uint) ([]*model.MediaAsset, error) {
	var found []*model.MediaAsset
	for _, asset := range r.assets {
		if asset.VehicleID != nil && *asset.VehicleID == vehicleID {
			copied := *asset
			found = append(found, &copied)
		}
	}
	return found, nil
}

type fakeVehicleRepo struct {
	vehicles map[uint]*model.Vehicle
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *model.Vehicle) error { return nil }
func (r *fakeVehicleRepo) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	if v, ok := r.vehicles[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: 车辆 %d", constant.ErrNotFound, id)
}
func (r *fakeVehicleRepo) List(ctx context.Context, opts repository.VehicleListOptions) (*repository.PageResult[model.Vehicle], error) {
	return &repository.PageResult[model.Vehicle]{}, nil
}
func (r *fakeVehicleRepo) Update(ctx context.Context, v *model.Vehicle) error { return nil }
func (r *fakeVehicleRepo) Delete(ctx context.Context, id uint) error          { return nil }

type fakeOrphanRepo struct {
	keys []string
}

func (r *fakeOrphanRepo) Create(ctx context.Context, storageKey, lastError string) error {
	r.keys = append(r.keys, storageKey)
	return nil
}
func (r *fakeOrphanRepo) ListPending(ctx context.Context, limit int) ([]*model.OrphanObject, error) {
	return nil, nil
}
func (r *fakeOrphanRepo) MarkAttempt(ctx context.Context, id uint, lastError string) error {
	return nil
}
func (r *fakeOrphanRepo) Remove(ctx context.Context, id uint) error { return nil }

type serviceFixture struct {
	svc      *Service
	repo     *fakeMediaRepo
	vehicles *fakeVehicleRepo
	orphans  *fakeOrphanRepo
	provider *stubProvider
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	return newServiceFixtureWithBus(t, nil)
}

func newServiceFixtureWithBus(t *testing.T, bus *event.EventBus) *serviceFixture {
	t.Helper()
	provider := &stubProvider{}
	gateway, err := mediahost.NewGateway(
		&storage.MediaPolicy{Type: constant.ProviderTypeLocal, BasePath: "media"},
		map[constant.MediaProviderType]storage.IMediaProvider{constant.ProviderTypeLocal: provider},
	)
	if err != nil {
		t.Fatalf("构建网关失败: %v", err)
	}

	repo := newFakeMediaRepo()
	vehicles := &fakeVehicleRepo{vehicles: make(map[uint]*model.Vehicle)}
	orphans := &fakeOrphanRepo{}
	svc := NewService(repo, vehicles, orphans, gateway, NewTranscoder(), utility.NewColorService(), bus)
	return &serviceFixture{svc: svc, repo: repo, vehicles: vehicles, orphans: orphans, provider: provider}
}

func mediaPublicID(t *testing.T, id uint) string {
	t.Helper()
	publicID, err := idgen.GeneratePublicID(id, idgen.EntityTypeMediaAsset)
	if err != nil {
		t.Fatalf("生成公共ID失败: %v", err)
	}
	return publicID
}

// ---- 上传管道 ----

func TestUploadSuccess(t *testing.T) {
	f := newServiceFixture(t)
	pngData := makePNG(t, 64, 48)

	asset, err := f.svc.Upload(context.Background(), UploadFile{Filename: "car.png", Data: pngData},
		model.UploadMeta{Category: constant.CategoryVehicleImage, AltText: "正面", TagsCSV: "宝马, 轿车"}, 7)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	if asset.ID == 0 || asset.PublicID == "" {
		t.Error("落库后应该回填ID并生成公共ID")
	}
	if asset.StorageKey == "" || asset.URL == "" {
		t.Error("StorageKey 和 URL 不能为空")
	}
	if asset.MimeType != "image/jpeg" {
		t.Errorf("归一化后类型 = %q, 期望 image/jpeg", asset.MimeType)
	}
	if asset.OriginalName != "car.png" {
		t.Errorf("原始文件名应该保留，实际 %q", asset.OriginalName)
	}
	if asset.UploadedBy != 7 {
		t.Errorf("UploadedBy = %d", asset.UploadedBy)
	}
	if len(asset.Tags) != 2 {
		t.Errorf("标签 = %v, 期望切分出2个", asset.Tags)
	}

	// 本地驱动不支持URL变换，衍生图以独立对象落到远端
	if len(asset.Renditions) != 2 {
		t.Fatalf("衍生图数量 = %d, 期望 2", len(asset.Renditions))
	}
	if len(f.provider.uploadCalls) != 3 {
		t.Errorf("远端上传次数 = %d, 期望 主对象+2衍生图", len(f.provider.uploadCalls))
	}

	if _, err := f.repo.FindByID(context.Background(), asset.ID); err != nil {
		t.Errorf("记录未落库: %v", err)
	}
}

func TestUploadRemoteFailureLeavesNoRecord(t *testing.T) {
	f := newServiceFixture(t)
	f.provider.failUpload = true

	_, err := f.svc.Upload(context.Background(), UploadFile{Filename: "car.png", Data: makePNG(t, 8, 8)},
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
	if !errors.Is(err, constant.ErrUpload) {
		t.Fatalf("期望上传错误，实际: %v", err)
	}
	if len(f.repo.assets) != 0 {
		t.Error("远端上传失败时绝不能留下数据库记录")
	}
}

func TestUploadValidationFailureIsSideEffectFree(t *testing.T) {
	f := newServiceFixture(t)
	pdfData := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

	_, err := f.svc.Upload(context.Background(), UploadFile{Filename: "doc.pdf", Data: pdfData},
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
	if !errors.Is(err, constant.ErrValidation) {
		t.Fatalf("期望校验错误，实际: %v", err)
	}
	if len(f.provider.uploadCalls) != 0 {
		t.Error("校验失败不应该产生任何远端调用")
	}
	if len(f.repo.assets) != 0 {
		t.Error("校验失败不应该落库")
	}
}

func TestUploadPersistFailureReclaimsRemoteObjects(t *testing.T) {
	f := newServiceFixture(t)
	f.repo.createErr = errors.New("数据库写入失败")

	_, err := f.svc.Upload(context.Background(), UploadFile{Filename: "car.png", Data: makePNG(t, 8, 8)},
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
	if err == nil {
		t.Fatal("落库失败应该向上报错")
	}
	if len(f.provider.deleteCalls) == 0 {
		t.Error("落库失败后应该回收已上传的远端对象")
	}
}

func TestUploadUnknownVehicleRejected(t *testing.T) {
	f := newServiceFixture(t)
	vehicleID, _ := idgen.GeneratePublicID(42, idgen.EntityTypeVehicle)

	_, err := f.svc.Upload(context.Background(), UploadFile{Filename: "car.png", Data: makePNG(t, 8, 8)},
		model.UploadMeta{Category: constant.CategoryVehicleImage, VehiclePublicID: vehicleID}, 1)
	if err == nil {
		t.Fatal("关联不存在的车辆应该报错")
	}
	if len(f.provider.uploadCalls) != 0 {
		t.Error("车辆校验失败不应该产生远端调用")
	}
}

func TestUploadBulkPartialFailure(t *testing.T) {
	f := newServiceFixture(t)
	files := []UploadFile{
		{Filename: "ok.png", Data: makePNG(t, 8, 8)},
		{Filename: "bad.txt", Data: []byte("这不是图片")},
	}

	result, err := f.svc.UploadBulk(context.Background(), files,
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
	if err != nil {
		t.Fatalf("部分失败不应该整体报错: %v", err)
	}
	if result.TotalUploaded != 1 || result.TotalFailed != 1 {
		t.Errorf("统计 = %d成功/%d失败, 期望 1/1", result.TotalUploaded, result.TotalFailed)
	}
	if len(result.Failed) != 1 || result.Failed[0].Filename != "bad.txt" {
		t.Errorf("失败项 = %+v", result.Failed)
	}
	if result.Failed[0].Error == "" {
		t.Error("失败项必须带可读的错误信息")
	}
}

func TestUploadBulkCountLimit(t *testing.T) {
	f := newServiceFixture(t)
	files := make([]UploadFile, constant.MaxBulkUploadFiles+1)
	for i := range files {
		files[i] = UploadFile{Filename: fmt.Sprintf("f%d.png", i), Data: makePNG(t, 4, 4)}
	}

	if _, err := f.svc.UploadBulk(context.Background(), files, model.UploadMeta{Category: constant.CategoryVehicleImage}, 1); err == nil {
		t.Fatal("超出批量上限应该整体报错")
	}
	if len(f.provider.uploadCalls) != 0 {
		t.Error("数量校验失败不应该处理任何文件")
	}
}

// ---- 元数据更新 ----

// 转码失败的图片回退为原始字节上传，管道整体不失败。
func TestUploadKeepsOriginalBytesWhenTranscodeFails(t *testing.T) {
	f := newServiceFixture(t)

	// PNG 魔数开头但内容损坏：能通过类型嗅探，无法解码
	corrupt := append([]byte("\x89PNG\r\n\x1a\n"), []byte("not really a png body at all")...)

	asset, err := f.svc.Upload(context.Background(), UploadFile{Filename: "broken.png", Data: corrupt},
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
	if err != nil {
		t.Fatalf("转码失败不应该阻断上传: %v", err)
	}

	if asset.MimeType != "image/png" {
		t.Errorf("未转码的文件类型应保持原样，实际 %q", asset.MimeType)
	}
	stored, ok := f.provider.uploaded[asset.StorageKey]
	if !ok {
		t.Fatalf("远端没有主对象: key=%s", asset.StorageKey)
	}
	if !bytes.Equal(stored, corrupt) {
		t.Error("回退上传的字节应与原始内容完全一致")
	}
	if len(asset.Renditions) != 0 {
		t.Errorf("无法解码的图片不应产出衍生图，实际 %d 个", len(asset.Renditions))
	}
}

// 表单读取阶段就失败的文件，批量结果里要带上真实的失败原因。
func TestUploadBulkReportsReadFailure(t *testing.T) {
	f := newServiceFixture(t)
	readErr := fmt.Errorf("%w: 文件 huge.jpg 大小超过上限", constant.ErrValidation)

	files := []UploadFile{
		{Filename: "ok.png", Data: makePNG(t, 16, 16)},
		{Filename: "huge.jpg", ReadErr: readErr},
	}
	result, err := f.svc.UploadBulk(context.Background(), files,
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
	if err != nil {
		t.Fatalf("批量上传失败: %v", err)
	}

	if result.TotalUploaded != 1 || result.TotalFailed != 1 {
		t.Fatalf("uploaded=%d failed=%d, 期望 1/1", result.TotalUploaded, result.TotalFailed)
	}
	failure := result.Failed[0]
	if failure.Filename != "huge.jpg" {
		t.Errorf("失败项文件名 = %q", failure.Filename)
	}
	if failure.Error != readErr.Error() {
		t.Errorf("失败项应携带读取阶段的真实错误，实际 %q", failure.Error)
	}
}

// ---- 审计归属 ----

func TestMutationAuditCarriesActingUser(t *testing.T) {
	bus := event.NewEventBus()
	defer bus.Shutdown()
	f := newServiceFixtureWithBus(t, bus)

	payloads := make(chan event.AuditPayload, 8)
	record := func(payload interface{}) {
		if p, ok := payload.(event.AuditPayload); ok {
			payloads <- p
		}
	}
	bus.Subscribe(event.MediaUpdated, record)
	bus.Subscribe(event.MediaDeleted, record)

	asset, err := f.svc.Upload(context.Background(), UploadFile{Filename: "car.png", Data: makePNG(t, 8, 8)},
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 9)
	if err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	newAlt := "侧面"
	if _, err := f.svc.UpdateMeta(context.Background(), asset.PublicID, model.MediaAssetPatch{AltText: &newAlt}, 9); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if err := f.svc.Delete(context.Background(), asset.PublicID, 9); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	// worker池并发消费，不保证事件到达顺序
	seen := make(map[string]event.AuditPayload)
	for len(seen) < 2 {
		select {
		case p := <-payloads:
			seen[p.Action] = p
		case <-time.After(2 * time.Second):
			t.Fatalf("等待审计事件超时，已收到: %v", seen)
		}
	}
	for _, action := range []string{"media.update", "media.delete"} {
		p, ok := seen[action]
		if !ok {
			t.Errorf("缺少 %s 事件", action)
			continue
		}
		if p.UserID != 9 {
			t.Errorf("%s 事件的操作人 = %d, 期望 9", action, p.UserID)
		}
	}
}

func TestUpdateMetaNeverTouchesStorage(t *testing.T) {
	f := newServiceFixture(t)
	asset, err := f.svc.Upload(context.Background(), UploadFile{Filename: "car.png", Data: makePNG(t, 8, 8)},
		model.UploadMeta{Category: constant.CategoryVehicleImage, AltText: "旧描述"}, 1)
	if err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}
	uploadsBefore := len(f.provider.uploadCalls)

	newAlt := "新描述"
	newCategory := constant.CategoryBanner
	updated, err := f.svc.UpdateMeta(context.Background(), asset.PublicID, model.MediaAssetPatch{
		AltText:  &newAlt,
		Category: &newCategory,
	}, 0)
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	if updated.AltText != "新描述" || updated.Category != constant.CategoryBanner {
		t.Errorf("补丁未生效: alt=%q category=%q", updated.AltText, updated.Category)
	}
	if updated.StorageKey != asset.StorageKey || updated.URL != asset.URL {
		t.Error("元数据更新不允许改变 StorageKey 和 URL")
	}
	if len(f.provider.uploadCalls) != uploadsBefore || len(f.provider.deleteCalls) != 0 {
		t.Error("元数据更新不允许产生任何远端调用")
	}
}

func TestUpdateMetaRejectsUnknownCategory(t *testing.T) {
	f := newServiceFixture(t)
	bad := constant.MediaCategory("mystery")

	_, err := f.svc.UpdateMeta(context.Background(), mediaPublicID(t, 1), model.MediaAssetPatch{Category: &bad}, 0)
	if !errors.Is(err, constant.ErrValidation) {
		t.Errorf("期望校验错误，实际: %v", err)
	}
}

// ---- 删除 ----

func TestDeleteRemovesRecordDespiteRemoteFailure(t *testing.T) {
	f := newServiceFixture(t)
	asset, err := f.svc.Upload(context.Background(), UploadFile{Filename: "car.png", Data: makePNG(t, 8, 8)},
		model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
	if err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	f.provider.deleteErrs = map[string]error{asset.StorageKey: errors.New("503")}

	if err := f.svc.Delete(context.Background(), asset.PublicID, 0); err != nil {
		t.Fatalf("远端删除失败不应该阻止记录删除: %v", err)
	}
	if _, err := f.repo.FindByID(context.Background(), asset.ID); !errors.Is(err, constant.ErrNotFound) {
		t.Error("数据库记录应该已被删除")
	}

	// 真实失败的键要登记为孤儿等待清理任务
	foundOrphan := false
	for _, key := range f.orphans.keys {
		if key == asset.StorageKey {
			foundOrphan = true
		}
	}
	if !foundOrphan {
		t.Errorf("失败的存储键应该登记为孤儿，实际登记: %v", f.orphans.keys)
	}
}

func TestDeleteMissingAssetReturnsNotFound(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.Delete(context.Background(), mediaPublicID(t, 999), 0)
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
	if len(f.provider.deleteCalls) != 0 {
		t.Error("资产不存在时不应该产生远端调用")
	}
}

func TestDeleteInvalidPublicID(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.Delete(context.Background(), "%%%", 0)
	if !errors.Is(err, constant.ErrInvalidPublicID) {
		t.Errorf("期望 ErrInvalidPublicID，实际: %v", err)
	}
}

func TestDeleteBulkSkipsMissing(t *testing.T) {
	f := newServiceFixture(t)
	var publicIDs []string
	for i := 0; i < 2; i++ {
		asset, err := f.svc.Upload(context.Background(), UploadFile{Filename: fmt.Sprintf("car%d.png", i), Data: makePNG(t, 8, 8)},
			model.UploadMeta{Category: constant.CategoryVehicleImage}, 1)
		if err != nil {
			t.Fatalf("准备数据失败: %v", err)
		}
		publicIDs = append(publicIDs, asset.PublicID)
	}
	publicIDs = append(publicIDs, mediaPublicID(t, 888))

	result, err := f.svc.DeleteBulk(context.Background(), publicIDs, 0)
	if err != nil {
		t.Fatalf("批量删除失败: %v", err)
	}
	if result.Attempted != 3 || result.Removed != 2 {
		t.Errorf("结果 = %d尝试/%d移除, 期望 3/2", result.Attempted, result.Removed)
	}
	if len(f.repo.assets) != 0 {
		t.Error("存在的记录应该全部删除")
	}
}

func TestDeleteBulkRejectsEmptyAndInvalid(t *testing.T) {
	f := newServiceFixture(t)

	if _, err := f.svc.DeleteBulk(context.Background(), nil, 0); !errors.Is(err, constant.ErrBadRequest) {
		t.Errorf("空列表期望 ErrBadRequest，实际: %v", err)
	}
	if _, err := f.svc.DeleteBulk(context.Background(), []string{"%%%"}, 0); !errors.Is(err, constant.ErrInvalidPublicID) {
		t.Errorf("非法ID期望 ErrInvalidPublicID，实际: %v", err)
	}
}
