package web

import (
	"visionmines/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes installs the templates on the engine and mounts the
// server-rendered pages.
func RegisterRoutes(r *gin.Engine, handler *Handler, logger *zap.Logger) error {
	tpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tpl)

	pages := r.Group("/")
	pages.Use(middleware.ContextLogger(logger))
	{
		pages.GET("/", handler.Home)
		pages.GET("/dashboard", handler.Dashboard)
		pages.GET("/about", handler.About)
		pages.GET("/contact", handler.Contact)
		pages.GET("/ppe-enquiries", handler.Enquiries)
	}
	return nil
}
