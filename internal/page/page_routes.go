package page

import (
	"visionmines/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	pages := r.Group("/pages")
	pages.Use(middleware.ContextLogger(logger))
	pages.GET("/:slug", handler.GetBySlug)
}
