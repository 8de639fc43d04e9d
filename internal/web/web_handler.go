package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"visionmines/internal/contact"
	"visionmines/internal/enquiry"
	"visionmines/internal/page"
	"visionmines/internal/roster"
	"visionmines/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

func pctWidth(p int) template.CSS {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return template.CSS(fmt.Sprintf("%d%%", p))
}

func statusClass(status string) string {
	if status == string(roster.StatusCompliant) {
		return "bg-green-900 text-green-300"
	}
	return "bg-red-900 text-red-300"
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"pctWidth":    pctWidth,
		"statusClass": statusClass,
		"safeCSS":     func(s string) template.CSS { return template.CSS(s) },
		"join":        strings.Join,
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
}

type viewData struct {
	Nav         []page.NavItemResponse
	Page        page.PageResponse
	Version     string
	Error       string
	Dashboard   *roster.DashboardResponse
	ContactInfo []contact.InfoCardResponse
	Catalog     enquiry.CatalogResponse
}

type Handler struct {
	pages     page.Service
	dashboard roster.Service
	contact   contact.Service
	enquiries enquiry.Service
	version   string
	logger    *zap.Logger
}

func NewHandler(
	pages page.Service,
	dashboard roster.Service,
	contactSvc contact.Service,
	enquiries enquiry.Service,
	version string,
	logger ...*zap.Logger,
) *Handler {
	l := zap.L().Named("web.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("web.handler")
	}
	return &Handler{
		pages:     pages,
		dashboard: dashboard,
		contact:   contactSvc,
		enquiries: enquiries,
		version:   version,
		logger:    l,
	}
}

func (h *Handler) base(ctx context.Context, slug string) (viewData, error) {
	p, err := h.pages.GetBySlug(ctx, slug)
	if err != nil {
		return viewData{}, err
	}
	return viewData{Nav: p.Nav, Page: p, Version: h.version}, nil
}

func (h *Handler) render(c *gin.Context, name, slug string, fill func(ctx context.Context, d *viewData) int) {
	ctx := c.Request.Context()

	data, err := h.base(ctx, slug)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("render page failed", zap.String("slug", slug), zap.Error(err))
		c.String(httpErr.Status, httpErr.Message)
		return
	}

	status := http.StatusOK
	if fill != nil {
		status = fill(ctx, &data)
	}
	c.HTML(status, name, data)
}

func (h *Handler) Home(c *gin.Context) {
	h.render(c, "home", page.SlugHome, nil)
}

func (h *Handler) About(c *gin.Context) {
	h.render(c, "about", page.SlugAbout, nil)
}

// Dashboard generates a fresh roster on every load and applies the q and
// lead query parameters to it.
func (h *Handler) Dashboard(c *gin.Context) {
	h.render(c, "dashboard", page.SlugDashboard, func(ctx context.Context, d *viewData) int {
		resp, err := h.dashboard.Render(ctx, c.Query("q"), c.Query("lead"))
		if err == nil {
			d.Dashboard = &resp
			return http.StatusOK
		}

		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("render dashboard rejected filter",
			zap.String("lead", c.Query("lead")),
			zap.String("code", httpErr.Code),
		)
		d.Error = httpErr.Message
		if fallback, ferr := h.dashboard.Render(ctx, c.Query("q"), roster.AllLeads); ferr == nil {
			d.Dashboard = &fallback
		}
		return httpErr.Status
	})
}

func (h *Handler) Contact(c *gin.Context) {
	h.render(c, "contact", page.SlugContact, func(ctx context.Context, d *viewData) int {
		d.ContactInfo = h.contact.Info(ctx)
		return http.StatusOK
	})
}

func (h *Handler) Enquiries(c *gin.Context) {
	h.render(c, "enquiries", page.SlugPPEEnquiries, func(ctx context.Context, d *viewData) int {
		d.Catalog = h.enquiries.Catalog(ctx)
		return http.StatusOK
	})
}
