package page

import (
	"net/http"

	"visionmines/internal/shared/apperror"
	"visionmines/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("page.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("page.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	resp, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Debug("http get page failed", zap.String("slug", slug), zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
