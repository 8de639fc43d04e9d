package enquiry

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	enquiryerrors "visionmines/internal/enquiry/errors"
	"visionmines/internal/shared/apperror"
	"visionmines/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const documentsField = "files"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("enquiry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("enquiry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("enquiry request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeView(c *gin.Context, status int, resp ViewResponse, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) Catalog(c *gin.Context) {
	resp := h.service.Catalog(c.Request.Context())
	meta := response.NewListMeta(len(resp.Items), len(resp.Items))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) OpenView(c *gin.Context) {
	h.logger.Debug("http open enquiry view")
	resp, err := h.service.OpenView(c.Request.Context())
	h.writeView(c, http.StatusCreated, resp, err)
}

func (h *Handler) GetView(c *gin.Context) {
	viewID := c.Param("id")
	h.logger.Debug("http get enquiry view", zap.String("view_id", viewID))
	resp, err := h.service.GetView(c.Request.Context(), viewID)
	h.writeView(c, http.StatusOK, resp, err)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	viewID := c.Param("id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateEmployee(c.Request.Context(), viewID, req)
	h.writeView(c, http.StatusOK, resp, err)
}

func (h *Handler) AddItem(c *gin.Context) {
	viewID := c.Param("id")

	// An empty body, chunked or not, adds a default line.
	var req LineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("http add line item validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddItem(c.Request.Context(), viewID, req)
	h.writeView(c, http.StatusCreated, resp, err)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	viewID := c.Param("id")
	index, ok := h.indexParam(c)
	if !ok {
		return
	}

	var req LineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update line item validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateItem(c.Request.Context(), viewID, index, req)
	h.writeView(c, http.StatusOK, resp, err)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	index, ok := h.indexParam(c)
	if !ok {
		return
	}
	resp, err := h.service.RemoveItem(c.Request.Context(), c.Param("id"), index)
	h.writeView(c, http.StatusOK, resp, err)
}

// AddDocuments keeps the metadata of the uploaded files. Their contents
// are discarded with the multipart temp files.
func (h *Handler) AddDocuments(c *gin.Context) {
	viewID := c.Param("id")

	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warn("http add documents bad multipart body", zap.Error(err))
		h.writeServiceError(c, enquiryerrors.ErrNoDocuments)
		return
	}
	defer func() { _ = form.RemoveAll() }()

	headers := form.File[documentsField]
	docs := make([]Attachment, 0, len(headers))
	for _, fh := range headers {
		docs = append(docs, Attachment{
			Name:        filepath.Base(fh.Filename),
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}

	resp, err := h.service.AddDocuments(c.Request.Context(), viewID, docs)
	h.writeView(c, http.StatusCreated, resp, err)
}

func (h *Handler) RemoveDocument(c *gin.Context) {
	index, ok := h.indexParam(c)
	if !ok {
		return
	}
	resp, err := h.service.RemoveDocument(c.Request.Context(), c.Param("id"), index)
	h.writeView(c, http.StatusOK, resp, err)
}

func (h *Handler) Submit(c *gin.Context) {
	viewID := c.Param("id")
	h.logger.Debug("http submit enquiry", zap.String("view_id", viewID))

	resp, err := h.service.Submit(c.Request.Context(), viewID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListActionable(c *gin.Context) {
	resp, err := h.service.ListActionable(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewListMeta(len(resp), len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.Param("id"), c.Param("enquiryId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	resp, err := h.service.Reject(c.Request.Context(), c.Param("id"), c.Param("enquiryId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CloseView(c *gin.Context) {
	viewID := c.Param("id")
	h.logger.Debug("http close enquiry view", zap.String("view_id", viewID))

	if err := h.service.CloseView(c.Request.Context(), viewID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"closed": true}, nil)
}

func (h *Handler) indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		h.writeServiceError(c, apperror.InvalidField("index"))
		return 0, false
	}
	return index, true
}
