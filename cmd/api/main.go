// Package main is the entry point for the story service.
package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/septumca/story-service/internal/config"
	"github.com/septumca/story-service/internal/handlers"
	"github.com/septumca/story-service/internal/models"
	"github.com/septumca/story-service/internal/repository"
	"github.com/septumca/story-service/internal/routes"
	"github.com/septumca/story-service/internal/service"
	redispkg "github.com/septumca/story-service/pkg/redis"
	"github.com/septumca/story-service/web"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	// Initialize database
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to access connection pool", "error", err)
		os.Exit(1)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := db.AutoMigrate(&models.User{}, &models.Story{}); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	// Initialize Redis
	redisClient, err := redispkg.NewClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storyRepo := repository.NewStoryRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, logger)
	sessionService := service.NewSessionService(redisClient, cfg.SessionTTL)
	storyService := service.NewStoryService(storyRepo, userRepo, logger)

	// Initialize handlers
	cookieHelper := handlers.NewCookieHelper(cfg.Cookie)
	authHandler := handlers.NewAuthHandler(authService, sessionService, cookieHelper, logger)
	storyHandler := handlers.NewStoryHandler(storyService, logger)
	pageHandler := handlers.NewPageHandler(storyService, logger)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	router := gin.Default()
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))
	routes.Setup(router, pageHandler, authHandler, storyHandler, healthHandler, sessionService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting story service", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt or terminate, then drain in-flight requests
	// within the configured bound.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	stop()

	logger.Info("Signal received, starting graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Failed to close Redis client", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(handler)
}
