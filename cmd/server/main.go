package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hostel-be-svc/docs"
	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/config"
	"hostel-be-svc/internal/database"
	"hostel-be-svc/internal/handler"
	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/reconcile"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/internal/scheduler"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/internal/session"
	"hostel-be-svc/pkg/logger"
)

// @title Hostel Backend Service API
// @version 1.0
// @description Backend-for-frontend over the hostel PHP API: session cache, reconciled dashboard and student resources
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Hostel Backend Service API"
	docs.SwaggerInfo.Description = "Backend-for-frontend over the hostel PHP API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Hostel Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize session storage
	var (
		db             *database.Database
		redisClient    *redis.Client
		persistence    session.Persistence
		refreshLogRepo repository.RefreshLogRepository
	)

	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		db, err = database.NewDatabase(&cfg.Database)
		if err != nil {
			appLogger.WithField("error", err).Fatal("Failed to connect to database")
		}
		appLogger.Info("Database connected successfully")

		if err := db.AutoMigrate(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to run database migrations")
		}
		appLogger.Info("Database migrations completed successfully")

		persistence = repository.NewSessionRepository(db.DB)
		refreshLogRepo = repository.NewRefreshLogRepository(db.DB)
	case config.SessionStoreRedis:
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			appLogger.WithField("error", err).Fatal("Failed to connect to redis")
		}
		appLogger.WithField("addr", cfg.Redis.Addr()).Info("Redis connected successfully")
		persistence = session.NewRedisPersistence(redisClient, "hostel:session:")
	case config.SessionStoreFile:
		persistence = session.NewFilePersistence(cfg.Session.Dir)
	default:
		persistence = session.NewMemoryPersistence()
	}
	appLogger.WithComponent("session").WithFields(map[string]interface{}{
		"store": cfg.Session.Store,
		"key":   cfg.Session.Key,
	}).Info("Session cache ready")

	// Initialize core components
	cache := session.NewCache(persistence, cfg.Session.Key, appLogger)
	notifier := session.NewNotifier(appLogger)
	client := backend.NewHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, appLogger)
	reconciler := reconcile.NewReconciler(client, cache, appLogger)

	// Initialize services
	authService := service.NewAuthService(client, cache, notifier, appLogger)
	dashboardService := service.NewDashboardService(client, cache, notifier, reconciler, cfg.Display.CurrencySymbol, appLogger)
	profileService := service.NewProfileService(cache, notifier, reconciler, cfg.Backend.BaseURL, appLogger)
	roomDetailsService := service.NewRoomDetailsService(cache, reconciler, cfg.Backend.BaseURL, appLogger)
	foodMenuService := service.NewFoodMenuService(client, appLogger)
	complaintService := service.NewComplaintService(client, cache, notifier, appLogger)
	laundryService := service.NewLaundryService(client, cache, notifier, appLogger)
	refreshLogService := service.NewRefreshLogService(refreshLogRepo, appLogger)

	// Initialize scheduler
	var refreshScheduler *scheduler.SessionRefreshScheduler
	if cfg.Scheduler.Enabled {
		refreshScheduler = scheduler.NewSessionRefreshScheduler(cache, reconciler, refreshLogRepo, appLogger, cfg.Scheduler.RefreshCronExpression)
		if err := refreshScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start session refresh scheduler")
		}
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOriginList()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(
		router,
		authService,
		dashboardService,
		profileService,
		roomDetailsService,
		foodMenuService,
		complaintService,
		laundryService,
		refreshLogService,
		appLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	if refreshScheduler != nil {
		refreshScheduler.Stop()
	}

	// Stop background view refreshes
	dashboardService.Close()
	profileService.Close()
	complaintService.Close()
	laundryService.Close()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.WithField("error", err).Error("Failed to close redis connection")
		}
	}

	// Close database connection
	if db != nil {
		if err := db.Close(); err != nil {
			appLogger.WithField("error", err).Error("Failed to close database connection")
		}
	}

	appLogger.Info("Server exited successfully")
}
