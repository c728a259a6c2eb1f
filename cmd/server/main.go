package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/routesketch/service-planner/internal/application"
	"github.com/routesketch/service-planner/internal/config"
	"github.com/routesketch/service-planner/internal/database"
	locationDomain "github.com/routesketch/service-planner/internal/domain/location"
	"github.com/routesketch/service-planner/internal/events"
	"github.com/routesketch/service-planner/internal/handler"
	"github.com/routesketch/service-planner/internal/health"
	"github.com/routesketch/service-planner/internal/logger"
	"github.com/routesketch/service-planner/internal/middleware"
	"github.com/routesketch/service-planner/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-planner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-planner",
		zap.String("port", cfg.Port),
	)

	registry := locationDomain.DefaultRegistry()

	// Location storage: Postgres when configured, in-memory otherwise.
	var locationRepo locationDomain.Repository
	var db *gorm.DB
	if cfg.DB.Enabled() {
		db, err = database.Connect(cfg.DB, log)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&repository.LocationModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}

		gormRepo := repository.NewGormLocationRepository(db)
		if err := gormRepo.Seed(context.Background(), registry); err != nil {
			log.Fatal("failed to seed location registry", zap.Error(err))
		}
		log.Info("location registry seeded", zap.Int("count", len(registry)))
		locationRepo = gormRepo
	} else {
		locationRepo = repository.NewMemoryLocationRepository(registry)
		log.Info("using in-memory location registry", zap.Int("count", len(registry)))
	}

	// Planner telemetry: Kafka when configured, no-op otherwise.
	var publisher events.Publisher
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaProducer(cfg.Kafka.Brokers, log)
	} else {
		publisher = events.NoopPublisher{}
		log.Info("kafka not configured, planner events disabled")
	}
	defer func() { _ = publisher.Close() }()

	// Initialize repositories
	sessionRepo := repository.NewMemorySessionRepository()

	// Initialize application services
	locationService := application.NewLocationService(locationRepo, log)
	plannerService := application.NewPlannerService(
		sessionRepo,
		locationRepo,
		publisher,
		cfg.RouteComputeDelay,
		log,
	)

	// Initialize HTTP handlers
	locationHandler := handler.NewLocationHandler(locationService)
	plannerHandler := handler.NewPlannerHandler(plannerService)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-planner")
	healthHandler.RegisterRoutes(router)

	// Register routes
	locationHandler.RegisterRoutes(&router.RouterGroup)
	plannerHandler.RegisterRoutes(&router.RouterGroup)

	// Serve the map page
	router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	router.Static("/static", cfg.StaticDir)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-planner...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-planner stopped")
}
