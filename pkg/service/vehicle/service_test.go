package vehicle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
	"github.com/behark/autoanikw-sub000/pkg/service/utility"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeVehicleRepo struct {
	vehicles  map[uint]*model.Vehicle
	nextID    uint
	listCalls int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uint]*model.Vehicle), nextID: 1}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	v.ID = r.nextID
	r.nextID++
	stored := *v
	r.vehicles[v.ID] = &stored
	return nil
}

func (r *fakeVehicleRepo) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("%w: 车辆 %d", constant.ErrNotFound, id)
	}
	found := *v
	return &found, nil
}

func (r *fakeVehicleRepo) List(ctx context.Context, opts repository.VehicleListOptions) (*repository.PageResult[model.Vehicle], error) {
	r.listCalls++
	var items []*model.Vehicle
	for _, v := range r.vehicles {
		if opts.Status != "" && v.Status != opts.Status {
			continue
		}
		copied := *v
		items = append(items, &copied)
	}
	return &repository.PageResult[model.Vehicle]{Items: items, Total: int64(len(items))}, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	if _, ok := r.vehicles[v.ID]; !ok {
		return constant.ErrNotFound
	}
	stored := *v
	r.vehicles[v.ID] = &stored
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.vehicles[id]; !ok {
		return constant.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

type fakeMediaRepo struct {
	assets map[uint]*model.MediaAsset
}

func (r *fakeMediaRepo) Create(ctx context.Context, asset *model.MediaAsset) error { return nil }
func (r *fakeMediaRepo) FindByID(ctx context.Context, id uint) (*model.MediaAsset, error) {
	if asset, ok := r.assets[id]; ok {
		return asset, nil
	}
	return nil, fmt.Errorf("%w: 媒体资产 %d", constant.ErrNotFound, id)
}
func (r *fakeMediaRepo) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.MediaAsset, error) {
	return nil, nil
}
func (r *fakeMediaRepo) List(ctx context.Context, opts repository.MediaListOptions) (*repository.PageResult[model.MediaAsset], error) {
	return &repository.PageResult[model.MediaAsset]{}, nil
}
func (r *fakeMediaRepo) Update(ctx context.Context, asset *model.MediaAsset) error { return nil }
func (r *fakeMediaRepo) Delete(ctx context.Context, id uint) error                 { return nil }
func (r *fakeMediaRepo) DeleteBatch(ctx context.Context, ids []uint) (int, error)  { return 0, nil }
func (r *fakeMediaRepo) ListByVehicle(ctx context.Context, vehicleID uint) ([]*model.MediaAsset, error) {
	return nil, nil
}

type fixture struct {
	svc   *Service
	repo  *fakeVehicleRepo
	media *fakeMediaRepo
}

func newFixture() *fixture {
	repo := newFakeVehicleRepo()
	media := &fakeMediaRepo{assets: make(map[uint]*model.MediaAsset)}
	svc := NewService(repo, media, utility.NewMemoryCacheService(), nil)
	return &fixture{svc: svc, repo: repo, media: media}
}

func validInput() Input {
	return Input{
		Make:       "BMW",
		Model:      "320i",
		Year:       2022,
		PriceCents: 2_890_000,
		Mileage:    42000,
	}
}

func TestCreateRendersMarkdown(t *testing.T) {
	f := newFixture()
	input := validInput()
	input.Description = "# 车况说明\n\n保养记录**齐全**。"

	v, err := f.svc.Create(context.Background(), input, 1)
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	if v.PublicID == "" {
		t.Error("创建后应该生成公共ID")
	}
	if v.Status != model.VehicleStatusDraft {
		t.Errorf("缺省状态 = %q, 期望 draft", v.Status)
	}
	if v.Description != input.Description {
		t.Error("Markdown 原文应该保留")
	}
	if !strings.Contains(v.DescriptionHTML, "<h1") || !strings.Contains(v.DescriptionHTML, "<strong>") {
		t.Errorf("描述未正确渲染为HTML: %q", v.DescriptionHTML)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	f := newFixture()
	input := validInput()
	input.Status = model.VehicleStatus("scrapped")

	_, err := f.svc.Create(context.Background(), input, 1)
	if !errors.Is(err, constant.ErrValidation) {
		t.Errorf("期望校验错误，实际: %v", err)
	}
}

func TestCreateCoverMediaValidation(t *testing.T) {
	f := newFixture()
	f.media.assets[5] = &model.MediaAsset{ID: 5}

	t.Run("封面图存在则记录归属", func(t *testing.T) {
		input := validInput()
		input.CoverMediaPublicID, _ = idgen.GeneratePublicID(5, idgen.EntityTypeMediaAsset)

		v, err := f.svc.Create(context.Background(), input, 1)
		if err != nil {
			t.Fatalf("创建失败: %v", err)
		}
		if v.CoverMediaID == nil || *v.CoverMediaID != 5 {
			t.Errorf("CoverMediaID = %v, 期望 5", v.CoverMediaID)
		}
	})

	t.Run("封面图不存在被拒绝", func(t *testing.T) {
		input := validInput()
		input.CoverMediaPublicID, _ = idgen.GeneratePublicID(99, idgen.EntityTypeMediaAsset)

		if _, err := f.svc.Create(context.Background(), input, 1); err == nil {
			t.Fatal("不存在的封面图应该报错")
		}
	})

	t.Run("封面图ID类型不符被拒绝", func(t *testing.T) {
		input := validInput()
		// 用车辆类型的ID冒充媒体ID
		input.CoverMediaPublicID, _ = idgen.GeneratePublicID(5, idgen.EntityTypeVehicle)

		if _, err := f.svc.Create(context.Background(), input, 1); !errors.Is(err, constant.ErrInvalidPublicID) {
			t.Errorf("期望 ErrInvalidPublicID，实际: %v", err)
		}
	})
}

func TestGetMissingVehicle(t *testing.T) {
	f := newFixture()
	publicID, _ := idgen.GeneratePublicID(404, idgen.EntityTypeVehicle)

	if _, err := f.svc.Get(context.Background(), publicID); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), "%%%"); !errors.Is(err, constant.ErrInvalidPublicID) {
		t.Errorf("期望 ErrInvalidPublicID，实际: %v", err)
	}
}

func TestListPublishedUsesCache(t *testing.T) {
	f := newFixture()
	input := validInput()
	input.Status = model.VehicleStatusPublished
	if _, err := f.svc.Create(context.Background(), input, 1); err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}
	callsAfterCreate := f.repo.listCalls

	page := repository.PageQuery{Page: 1, PageSize: 20}
	first, err := f.svc.ListPublished(context.Background(), page)
	if err != nil {
		t.Fatalf("第一次查询失败: %v", err)
	}
	second, err := f.svc.ListPublished(context.Background(), page)
	if err != nil {
		t.Fatalf("第二次查询失败: %v", err)
	}

	if f.repo.listCalls != callsAfterCreate+1 {
		t.Errorf("第二次查询应该命中缓存，实际仓库被调用 %d 次", f.repo.listCalls-callsAfterCreate)
	}
	if first.Total != 1 || second.Total != first.Total {
		t.Errorf("缓存结果与直查结果不一致: %d vs %d", first.Total, second.Total)
	}
}

func TestWriteOperationsInvalidateCache(t *testing.T) {
	f := newFixture()
	input := validInput()
	input.Status = model.VehicleStatusPublished
	v, err := f.svc.Create(context.Background(), input, 1)
	if err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	page := repository.PageQuery{Page: 1, PageSize: 20}
	if _, err := f.svc.ListPublished(context.Background(), page); err != nil {
		t.Fatalf("预热缓存失败: %v", err)
	}
	callsBefore := f.repo.listCalls

	// 删除车辆后缓存必须失效，下一次查询回源
	if err := f.svc.Delete(context.Background(), v.PublicID, 1); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	result, err := f.svc.ListPublished(context.Background(), page)
	if err != nil {
		t.Fatalf("删除后查询失败: %v", err)
	}

	if f.repo.listCalls != callsBefore+1 {
		t.Error("写操作后前台列表缓存应该失效")
	}
	if result.Total != 0 {
		t.Errorf("删除后列表应该为空，实际 Total = %d", result.Total)
	}
}

func TestUpdateMissingVehicle(t *testing.T) {
	f := newFixture()
	publicID, _ := idgen.GeneratePublicID(404, idgen.EntityTypeVehicle)

	if _, err := f.svc.Update(context.Background(), publicID, validInput(), 1); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}
