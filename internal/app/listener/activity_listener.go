/*
 * @Description: 操作审计监听器，订阅业务事件并异步落库
 * @Author: 安知鱼
 * @Date: 2025-12-03 11:08:14
 * @LastEditTime: 2026-02-09 21:37:46
 * @LastEditors: 安知鱼
 */
package listener

import (
	"context"
	"log"

	"github.com/behark/autoanikw-sub000/internal/pkg/event"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	activity_service "github.com/behark/autoanikw-sub000/pkg/service/activity"
)

// RegisterActivityListener 把审计监听器挂到事件总线上。
// 所有后台写操作都会发出 AuditPayload 事件，这里统一转成操作日志落库。
// 监听器在总线的工作协程里执行，不阻塞业务请求。
func RegisterActivityListener(bus *event.EventBus, activitySvc *activity_service.Service) {
	handler := func(payload interface{}) {
		audit, ok := payload.(event.AuditPayload)
		if !ok {
			log.Printf("[EventBus] WARN: 审计监听器收到未知负载类型: %T", payload)
			return
		}
		// 事件处理与请求生命周期脱钩，这里用独立的 context。
		activitySvc.Record(context.Background(), &model.ActivityLog{
			UserID:     audit.UserID,
			Action:     audit.Action,
			EntityType: audit.EntityType,
			EntityID:   audit.EntityID,
			Detail:     audit.Detail,
		})
	}

	topics := []event.Topic{
		event.MediaUploaded,
		event.MediaUpdated,
		event.MediaDeleted,
		event.VehicleCreated,
		event.VehicleUpdated,
		event.VehicleDeleted,
	}
	for _, topic := range topics {
		bus.Subscribe(topic, handler)
	}
}
