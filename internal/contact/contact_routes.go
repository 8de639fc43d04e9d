package contact

import (
	"visionmines/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RouteConfig struct {
	Redis       *redis.Client
	SubmitLimit rate.Limit
	SubmitBurst int
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	cfg RouteConfig,
	logger *zap.Logger,
) {
	contact := r.Group("/contact")
	contact.Use(middleware.ContextLogger(logger))
	{
		contact.GET("/info", handler.Info)
		contact.POST("/views", middleware.RateLimitByIP(2, 10), handler.OpenView)
		contact.GET("/views/:id", handler.GetView)
		contact.POST("/views/:id/submit",
			middleware.RateLimitByIP(cfg.SubmitLimit, cfg.SubmitBurst),
			middleware.Idempotency(cfg.Redis, logger),
			handler.Submit,
		)
		contact.DELETE("/views/:id", handler.CloseView)
	}
}
