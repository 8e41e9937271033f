package v1

import (
	"net/http"

	"electric-system-backend/internal/delivery/http/middleware"
	"electric-system-backend/internal/domain"
	"electric-system-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	// Limiter is built once per process (Redis-backed when available) and
	// injected so the store can change without touching handlers.
	Limiter          middleware.Limiter
	ContactRateLimit middleware.RateLimitConfig
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		if redis.Client() != nil {
			if err := redis.HealthCheck(c.Request.Context()); err != nil {
				status["redis"] = "unavailable"
			} else {
				status["redis"] = "ok"
			}
		}
		c.JSON(http.StatusOK, status)
	})

	// Public routes (the whole surface is public, no auth layer)
	NewContactHandler(v1, deps.ContactUC, deps.Limiter, deps.ContactRateLimit)
	NewContentHandler(v1)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
