package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"staffhub_backend/internal/cache"
	"staffhub_backend/internal/config"
	"staffhub_backend/internal/handlers"
	"staffhub_backend/internal/logger"
	"staffhub_backend/internal/middleware"
	"staffhub_backend/internal/queue"
	"staffhub_backend/internal/repositories"
	"staffhub_backend/internal/routes"
	"staffhub_backend/internal/services"
	"staffhub_backend/internal/validator"
	"staffhub_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	postingCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, time.Duration(cfg.Redis.TTL)*time.Second)
	publisher := queue.NewPublisher(cfg.Queue.URL, cfg.Queue.Exchange)
	defer publisher.Close()

	ginRouter := SetupRouter(cfg, gormDB, postingCache, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	postingWorker := workers.NewPostingWorker(gormDB, repositories.NewPostingRepository(), postingCache)
	postingWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, postingCache *cache.PostingCache, publisher *queue.Publisher) *gin.Engine {
	serviceContainer := initializeServices(gormDB, postingCache, publisher)
	appHandlers := initializeHandlers(serviceContainer, gormDB)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, postingCache *cache.PostingCache, publisher *queue.Publisher) *services.ServiceContainer {
	workerRepo := repositories.NewWorkerRepository()
	hotelRepo := repositories.NewHotelRepository()
	postingRepo := repositories.NewPostingRepository()
	applicationRepo := repositories.NewApplicationRepository()
	shiftRepo := repositories.NewShiftRepository()

	postingService := services.NewPostingService(gormDB, postingRepo, hotelRepo, workerRepo, postingCache)
	applicationService := services.NewApplicationService(gormDB, applicationRepo, postingRepo, workerRepo, shiftRepo, postingCache, publisher)
	shiftService := services.NewShiftService(gormDB, shiftRepo, workerRepo, hotelRepo, publisher)
	profileService := services.NewProfileService(gormDB, workerRepo, hotelRepo)

	return &services.ServiceContainer{
		PostingService:     postingService,
		ApplicationService: applicationService,
		ShiftService:       shiftService,
		ProfileService:     profileService,
	}
}

func initializeHandlers(services *services.ServiceContainer, gormDB *gorm.DB) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		PostingHandler:     handlers.NewPostingHandler(baseHandler, services.PostingService, services.ApplicationService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		ShiftHandler:       handlers.NewShiftHandler(baseHandler, services.ShiftService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, services.ProfileService),
		HealthHandler:      handlers.NewHealthHandler(gormDB),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
