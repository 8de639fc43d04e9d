package enquiry

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
	enquiries := r.Group("/enquiries")
	enquiries.Use(middleware.ContextLogger(logger))
	enquiries.GET("/catalog", handler.Catalog)

	views := enquiries.Group("/views")
	{
		views.POST("", middleware.RateLimitByIP(2, 10), handler.OpenView)
		views.GET("/:id", handler.GetView)
		views.DELETE("/:id", handler.CloseView)

		views.PUT("/:id/employee", handler.UpdateEmployee)
		views.POST("/:id/items", handler.AddItem)
		views.PUT("/:id/items/:index", handler.UpdateItem)
		views.DELETE("/:id/items/:index", handler.RemoveItem)
		views.POST("/:id/documents", handler.AddDocuments)
		views.DELETE("/:id/documents/:index", handler.RemoveDocument)

		views.POST("/:id/submit",
			middleware.RateLimitByIP(cfg.SubmitLimit, cfg.SubmitBurst),
			middleware.Idempotency(cfg.Redis, logger),
			handler.Submit,
		)

		views.GET("/:id/admin", handler.ListActionable)
		views.POST("/:id/enquiries/:enquiryId/approve", handler.Approve)
		views.POST("/:id/enquiries/:enquiryId/reject", handler.Reject)
	}
}
