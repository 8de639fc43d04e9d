package roster

import (
	"visionmines/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	views := r.Group("/dashboard/views")
	views.Use(middleware.ContextLogger(logger))
	{
		views.POST("", middleware.RateLimitByIP(2, 10), handler.OpenView)
		views.GET("/:id", handler.GetView)
		views.PUT("/:id/filter", handler.UpdateFilter)
		views.GET("/:id/export.xlsx", middleware.RateLimitByIP(0.5, 2), handler.Export)
		views.DELETE("/:id", handler.CloseView)
	}
}
