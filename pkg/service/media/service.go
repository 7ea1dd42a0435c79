/*
 * @Description: 媒体资产业务服务（上传、查询、元数据更新、删除）
 * @Author: 安知鱼
 * @Date: 2025-11-07 14:02:28
 * @LastEditTime: 2026-03-20 10:18:05
 * @LastEditors: 安知鱼
 */
package media

import (
	"fmt"
	"log"

	"github.com/behark/autoanikw-sub000/internal/pkg/event"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
	"github.com/behark/autoanikw-sub000/pkg/service/mediahost"
	"github.com/behark/autoanikw-sub000/pkg/service/utility"
)

// Service 编排媒体上传管道：校验 → 转码 → 上传 → 落库 → 事件通知。
type Service struct {
	repo        repository.MediaAssetRepository
	vehicleRepo repository.VehicleRepository
	orphanRepo  repository.OrphanObjectRepository
	gateway     *mediahost.Gateway
	transcoder  *Transcoder
	colorSvc    *utility.ColorService
	bus         *event.EventBus
}

// NewService 创建媒体服务。所有依赖由调用方注入。
func NewService(
	repo repository.MediaAssetRepository,
	vehicleRepo repository.VehicleRepository,
	orphanRepo repository.OrphanObjectRepository,
	gateway *mediahost.Gateway,
	transcoder *Transcoder,
	colorSvc *utility.ColorService,
	bus *event.EventBus,
) *Service {
	return &Service{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		orphanRepo:  orphanRepo,
		gateway:     gateway,
		transcoder:  transcoder,
		colorSvc:    colorSvc,
		bus:         bus,
	}
}

// decorate 填充对外暴露的公共ID。生成失败不阻断返回，只记日志。
func (s *Service) decorate(asset *model.MediaAsset) {
	publicID, err := idgen.GeneratePublicID(asset.ID, idgen.EntityTypeMediaAsset)
	if err != nil {
		log.Printf("[媒体服务] WARN: 生成公共ID失败: id=%d, err=%v", asset.ID, err)
		return
	}
	asset.PublicID = publicID
}

// resolveMediaID 解码媒体资产的公共ID并校验实体类型。
func (s *Service) resolveMediaID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeMediaAsset {
		return 0, fmt.Errorf("%w: '%s'", constant.ErrInvalidPublicID, publicID)
	}
	return dbID, nil
}

// audit 发布一条审计事件，由监听器异步写入操作日志。
func (s *Service) audit(userID uint, action string, entityID uint, detail string) {
	if s.bus == nil {
		return
	}
	topic := event.MediaUpdated
	switch action {
	case "media.upload":
		topic = event.MediaUploaded
	case "media.delete", "media.bulk_delete":
		topic = event.MediaDeleted
	}
	s.bus.Publish(topic, event.AuditPayload{
		UserID:     userID,
		Action:     action,
		EntityType: "media_asset",
		EntityID:   entityID,
		Detail:     detail,
	})
}
