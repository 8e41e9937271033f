package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"electric-system-backend/config"
	_ "electric-system-backend/docs" // Important for Swagger
	"electric-system-backend/internal/delivery/http/middleware"
	v1 "electric-system-backend/internal/delivery/http/v1"
	"electric-system-backend/internal/usecase"
	"electric-system-backend/pkg/email"
	"electric-system-backend/pkg/logger"
	"electric-system-backend/pkg/redis"
)

// @title           ELECTRIC SYSTEM Website API
// @version         1.0
// @description     Backend for the ELECTRIC SYSTEM marketing site: site content and the contact form.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting website backend", "port", cfg.Port)

	// 3. Setup Redis (optional; limiter falls back to in-memory)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	}
	defer redis.Close()

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailService)

	// 6. Setup Rate Limiter (one per process, injected into the router)
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	rateLimitCfg := middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, window)
	var limiter middleware.Limiter
	if client := redis.Client(); client != nil {
		limiter = middleware.NewRedisLimiter(client, rateLimitCfg.Limit, rateLimitCfg.Window, rateLimitCfg.KeyPrefix)
	} else {
		limiter = middleware.NewMemoryLimiter(rateLimitCfg.Limit, rateLimitCfg.Window)
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:        contactUC,
		Limiter:          limiter,
		ContactRateLimit: rateLimitCfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
