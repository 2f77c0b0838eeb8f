package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"curso_feedback_backend/internal/config"
	"curso_feedback_backend/internal/controller"
	"curso_feedback_backend/internal/repository"
	"curso_feedback_backend/internal/service"
	"curso_feedback_backend/pkg/configwatcher"
	"curso_feedback_backend/pkg/database"
	"curso_feedback_backend/pkg/logger"
	"curso_feedback_backend/pkg/monitoring"
	"curso_feedback_backend/pkg/security"
	"curso_feedback_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	configPath      string
	configCallbacks []func(*config.Config)
}

type repositories struct {
	feedback *repository.FeedbackRepository
}

type services struct {
	feedback *service.FeedbackService
	report   *service.ReportService
}

type controllers struct {
	feedback *controller.FeedbackController
	report   *controller.ReportController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		feedback: repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		feedback: service.NewFeedbackService(repos.feedback, cfg),
		report:   service.NewReportService(),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		feedback: controller.NewFeedbackController(s.feedback, s.report),
		report:   controller.NewReportController(s.feedback, s.report),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig 后台监听配置文件变更并分发给已注册的回调
func (a *App) watchConfig() {
	if a.configPath == "" {
		return
	}
	go configwatcher.WatchConfig(a.configPath, func(cfg *config.Config) {
		logger.Log.Info("Config reloaded", zap.String("path", a.configPath))
		a.Config = cfg
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config:     cfg,
		DB:         db,
		configPath: filepath.Join("configs", "config.yaml"),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("feedback-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)
	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
