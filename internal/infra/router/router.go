/*
 * @Description: 应用路由注册
 * @Author: 安知鱼
 * @Date: 2025-11-14 11:30:55
 * @LastEditTime: 2026-03-21 18:26:37
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/internal/app/middleware"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	activity_handler "github.com/behark/autoanikw-sub000/pkg/handler/activity"
	auth_handler "github.com/behark/autoanikw-sub000/pkg/handler/auth"
	media_handler "github.com/behark/autoanikw-sub000/pkg/handler/media"
	vehicle_handler "github.com/behark/autoanikw-sub000/pkg/handler/vehicle"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler     *auth_handler.Handler
	mediaHandler    *media_handler.Handler
	vehicleHandler  *vehicle_handler.Handler
	activityHandler *activity_handler.Handler
	middleware      *middleware.Middleware

	// 本地存储时，媒体文件的磁盘目录；为空表示非本地存储，不挂静态路由。
	localMediaDir string
}

// NewRouter 是 Router 的构造函数。
func NewRouter(
	authHandler *auth_handler.Handler,
	mediaHandler *media_handler.Handler,
	vehicleHandler *vehicle_handler.Handler,
	activityHandler *activity_handler.Handler,
	mw *middleware.Middleware,
	localMediaDir string,
) *Router {
	return &Router{
		authHandler:     authHandler,
		mediaHandler:    mediaHandler,
		vehicleHandler:  vehicleHandler,
		activityHandler: activityHandler,
		middleware:      mw,
		localMediaDir:   localMediaDir,
	}
}

// Register 把所有路由挂到 gin 引擎上。
func (r *Router) Register(engine *gin.Engine) {
	engine.Use(middleware.Cors())

	// 本地存储驱动下直接由应用进程伺服媒体文件。
	if r.localMediaDir != "" {
		engine.Static(constant.LocalMediaURLPrefix, r.localMediaDir)
	}

	api := engine.Group("/api")
	api.Use(NoCacheMiddleware())

	// 认证接口，登录带IP级限流。
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", middleware.LoginRateLimit(), r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// 前台公开接口，无需认证。
	publicGroup := api.Group("/public")
	{
		publicGroup.GET("/vehicles", r.vehicleHandler.ListPublished)
		publicGroup.GET("/vehicles/:id", r.vehicleHandler.GetPublished)
	}

	// 后台管理接口，需要登录。
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.middleware.JWTAuth())
	{
		mediaGroup := adminGroup.Group("/media")
		{
			mediaGroup.POST("/upload", middleware.UploadRateLimit(), r.mediaHandler.Upload)
			mediaGroup.POST("/bulk-upload", middleware.UploadRateLimit(), r.mediaHandler.UploadBulk)
			mediaGroup.POST("/bulk-delete", r.mediaHandler.DeleteBulk)
			mediaGroup.GET("", r.mediaHandler.List)
			mediaGroup.GET("/:id", r.mediaHandler.Get)
			mediaGroup.PUT("/:id", r.mediaHandler.Update)
			mediaGroup.DELETE("/:id", r.mediaHandler.Delete)
		}

		vehicleGroup := adminGroup.Group("/vehicles")
		{
			vehicleGroup.POST("", r.vehicleHandler.Create)
			vehicleGroup.GET("", r.vehicleHandler.List)
			vehicleGroup.GET("/:id", r.vehicleHandler.Get)
			vehicleGroup.GET("/:id/media", r.vehicleHandler.ListMedia)
			vehicleGroup.PUT("/:id", r.vehicleHandler.Update)
			vehicleGroup.DELETE("/:id", r.vehicleHandler.Delete)
		}

		// 操作日志仅管理员可见。
		adminGroup.GET("/activity-logs", r.middleware.AdminOnly(), r.activityHandler.List)
	}
}
