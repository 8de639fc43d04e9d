package app

import (
	"visionmines/internal/config"
	"visionmines/internal/contact"
	"visionmines/internal/enquiry"
	"visionmines/internal/middleware"
	"visionmines/internal/page"
	"visionmines/internal/roster"
	"visionmines/internal/version"
	"visionmines/internal/web"

	goversion "github.com/caarlos0/go-version"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	a *App,
	cfg config.Config,
	info goversion.Info,
	logger *zap.Logger,
) error {
	router.Use(middleware.RequestID())

	// --- Services ---
	pageService := page.NewService(logger)
	rosterService := roster.NewService(a.Dashboards, roster.NewRandomGenerator, logger)
	enquiryService := enquiry.NewService(a.Enquiries, cfg.FormResetDelay, logger)
	contactService := contact.NewService(a.Contacts, cfg.FormResetDelay, logger)

	// --- Handlers ---
	pageHandler := page.NewHandler(pageService, logger)
	rosterHandler := roster.NewHandler(rosterService, logger)
	enquiryHandler := enquiry.NewHandler(enquiryService, logger)
	contactHandler := contact.NewHandler(contactService, logger)
	webHandler := web.NewHandler(pageService, rosterService, contactService, enquiryService, info.GitVersion, logger)

	// --- Routes Registration ---
	submitLimit := rate.Limit(cfg.SubmitRateLimit)
	api := router.Group("/api/v1")
	{
		version.RegisterRoutes(api, info)
		page.RegisterRoutes(api, pageHandler, logger)
		roster.RegisterRoutes(api, rosterHandler, logger)
		enquiry.RegisterRoutes(api, enquiryHandler, enquiry.RouteConfig{
			Redis:       a.Redis,
			SubmitLimit: submitLimit,
			SubmitBurst: cfg.SubmitRateBurst,
		}, logger)
		contact.RegisterRoutes(api, contactHandler, contact.RouteConfig{
			Redis:       a.Redis,
			SubmitLimit: submitLimit,
			SubmitBurst: cfg.SubmitRateBurst,
		}, logger)
	}

	return web.RegisterRoutes(router, webHandler, logger)
}
