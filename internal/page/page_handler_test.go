package page_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"visionmines/internal/page"
	pageerrors "visionmines/internal/page/errors"
	pageMock "visionmines/internal/page/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestPageHandler_GetBySlug(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := pageMock.NewMockService(ctrl)
	h := page.NewHandler(svc, zap.NewNop())

	tests := []struct {
		name       string
		slug       string
		resp       page.PageResponse
		err        error
		wantStatus int
		wantBody   string
	}{
		{"found", "about", page.PageResponse{Slug: "about", Heading: "About Vision Mines"}, nil, http.StatusOK, "About Vision Mines"},
		{"missing", "nope", page.PageResponse{}, pageerrors.ErrPageNotFound, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.EXPECT().GetBySlug(gomock.Any(), tt.slug).Return(tt.resp, tt.err)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/pages/"+tt.slug, nil)
			c.Params = gin.Params{{Key: "slug", Value: tt.slug}}

			h.GetBySlug(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
