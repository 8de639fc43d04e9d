package roster

import (
	"fmt"
	"net/http"

	"visionmines/internal/shared/apperror"
	"visionmines/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("roster.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func dashboardMeta(resp DashboardResponse) *response.ListMeta {
	meta := response.NewListMeta(resp.Summary.TotalEmployees, len(resp.Employees))
	return &meta
}

func (h *Handler) OpenView(c *gin.Context) {
	h.logger.Debug("http open dashboard view")

	resp, err := h.service.OpenView(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, dashboardMeta(resp))
}

func (h *Handler) GetView(c *gin.Context) {
	viewID := c.Param("id")
	h.logger.Debug("http get dashboard view", zap.String("view_id", viewID))

	resp, err := h.service.GetView(c.Request.Context(), viewID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, dashboardMeta(resp))
}

func (h *Handler) UpdateFilter(c *gin.Context) {
	viewID := c.Param("id")
	h.logger.Debug("http update dashboard filter", zap.String("view_id", viewID))

	var req UpdateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update dashboard filter validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateFilter(c.Request.Context(), viewID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, dashboardMeta(resp))
}

func (h *Handler) Export(c *gin.Context) {
	viewID := c.Param("id")
	h.logger.Debug("http export dashboard view", zap.String("view_id", viewID))

	data, err := h.service.Export(c.Request.Context(), viewID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ppe-roster-%s.xlsx"`, viewID))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) CloseView(c *gin.Context) {
	viewID := c.Param("id")
	h.logger.Debug("http close dashboard view", zap.String("view_id", viewID))

	if err := h.service.CloseView(c.Request.Context(), viewID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"closed": true}, nil)
}
