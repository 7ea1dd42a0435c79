/*
 * @Description: 应用组装与生命周期管理
 * @Author: 安知鱼
 * @Date: 2025-11-17 10:35:28
 * @LastEditTime: 2026-03-22 11:20:45
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/behark/autoanikw-sub000/internal/app/bootstrap"
	"github.com/behark/autoanikw-sub000/internal/app/listener"
	"github.com/behark/autoanikw-sub000/internal/app/middleware"
	"github.com/behark/autoanikw-sub000/internal/app/task"
	"github.com/behark/autoanikw-sub000/internal/infra/persistence/database"
	ent_impl "github.com/behark/autoanikw-sub000/internal/infra/persistence/ent"
	"github.com/behark/autoanikw-sub000/internal/infra/router"
	"github.com/behark/autoanikw-sub000/internal/infra/storage"
	"github.com/behark/autoanikw-sub000/internal/pkg/auth"
	"github.com/behark/autoanikw-sub000/internal/pkg/event"
	"github.com/behark/autoanikw-sub000/pkg/config"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	activity_handler "github.com/behark/autoanikw-sub000/pkg/handler/activity"
	auth_handler "github.com/behark/autoanikw-sub000/pkg/handler/auth"
	media_handler "github.com/behark/autoanikw-sub000/pkg/handler/media"
	vehicle_handler "github.com/behark/autoanikw-sub000/pkg/handler/vehicle"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
	activity_service "github.com/behark/autoanikw-sub000/pkg/service/activity"
	auth_service "github.com/behark/autoanikw-sub000/pkg/service/auth"
	media_service "github.com/behark/autoanikw-sub000/pkg/service/media"
	"github.com/behark/autoanikw-sub000/pkg/service/mediahost"
	"github.com/behark/autoanikw-sub000/pkg/service/utility"
	vehicle_service "github.com/behark/autoanikw-sub000/pkg/service/vehicle"
)

// App 持有组装完成的应用及需要随进程关闭的组件。
type App struct {
	cfg       *config.Config
	engine    *gin.Engine
	db        *sql.DB
	bus       *event.EventBus
	scheduler *task.Scheduler
	server    *http.Server
}

// NewApp 按依赖顺序组装整个应用，返回 App 和资源清理函数。
func NewApp() (*App, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, nil, fmt.Errorf("初始化ID编码器失败: %w", err)
	}

	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- 持久化层 ---
	db, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}
	entClient, err := database.NewEntClient(db, cfg)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("初始化 Ent 客户端失败: %w", err)
	}

	ctx := context.Background()
	redisClient, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Printf("⚠️ Redis 初始化失败，降级为内存缓存: %v", err)
	}
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	mediaRepo := ent_impl.NewMediaAssetRepo(entClient)
	vehicleRepo := ent_impl.NewVehicleRepo(entClient)
	userRepo := ent_impl.NewUserRepo(entClient)
	activityRepo := ent_impl.NewActivityLogRepo(entClient)
	orphanRepo := ent_impl.NewOrphanObjectRepo(entClient)

	// --- 媒体存储网关 ---
	policy := &storage.MediaPolicy{
		Type:       constant.MediaProviderType(cfg.GetString(config.KeyMediaProvider)),
		BucketName: cfg.GetString(config.KeyMediaBucket),
		AccessKey:  cfg.GetString(config.KeyMediaAccessKey),
		SecretKey:  cfg.GetString(config.KeyMediaSecretKey),
		CDNDomain:  cfg.GetString(config.KeyMediaCDNDomain),
		BasePath:   cfg.GetString(config.KeyMediaBasePath),
		Server:     cfg.GetString(config.KeyMediaServer),
		LocalDir:   cfg.GetString(config.KeyMediaLocalDir),
	}
	gateway, err := mediahost.NewGateway(policy, storage.NewProviders())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("初始化媒体网关失败: %w", err)
	}

	// --- 事件总线与业务服务 ---
	bus := event.NewEventBus()

	// JWTSecret 留空时按配置文件的约定随机生成一个临时密钥
	jwtSecret, err := auth.EnsureSecret([]byte(cfg.GetString(config.KeyJWTSecret)))
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	activitySvc := activity_service.NewService(activityRepo)
	authSvc := auth_service.NewService(userRepo, jwtSecret)
	mediaSvc := media_service.NewService(
		mediaRepo, vehicleRepo, orphanRepo,
		gateway, media_service.NewTranscoder(), utility.NewColorService(), bus,
	)
	vehicleSvc := vehicle_service.NewService(vehicleRepo, mediaRepo, cacheSvc, bus)

	listener.RegisterActivityListener(bus, activitySvc)

	// --- 初始化数据 ---
	if err := bootstrap.EnsureAdminUser(ctx, userRepo); err != nil {
		db.Close()
		return nil, nil, err
	}

	// --- HTTP 层 ---
	mw := middleware.NewMiddleware(jwtSecret)

	localDir := ""
	if policy.Type == constant.ProviderTypeLocal {
		localDir = policy.LocalDir
	}
	appRouter := router.NewRouter(
		auth_handler.NewHandler(authSvc),
		media_handler.NewHandler(mediaSvc),
		vehicle_handler.NewHandler(vehicleSvc, mediaSvc),
		activity_handler.NewHandler(activitySvc),
		mw,
		localDir,
	)

	engine := gin.Default()
	appRouter.Register(engine)

	// --- 定时任务 ---
	scheduler := task.NewScheduler(orphanRepo, gateway)
	scheduler.RegisterJobs()
	scheduler.Start()

	app := &App{
		cfg:       cfg,
		engine:    engine,
		db:        db,
		bus:       bus,
		scheduler: scheduler,
	}

	cleanup := func() {
		if redisClient != nil {
			redisClient.Close()
		}
		if err := entClient.Close(); err != nil {
			log.Printf("⚠️ 关闭 Ent 客户端失败: %v", err)
		}
	}
	return app, cleanup, nil
}

// Run 启动 HTTP 服务并阻塞，直到 Shutdown 被调用。
func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}

	a.server = &http.Server{
		Addr:    ":" + port,
		Handler: a.engine,
	}

	log.Printf("✅ HTTP 服务已启动，监听端口 %s", port)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 优雅关停：先停 HTTP，再停定时任务和事件总线。
func (a *App) Shutdown(ctx context.Context) {
	if a.server != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ HTTP 服务关停失败: %v", err)
		}
	}
	a.scheduler.Stop()
	a.bus.Shutdown()
	log.Println("✅ 应用已优雅退出")
}
