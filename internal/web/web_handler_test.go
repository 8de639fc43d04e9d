package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"visionmines/internal/contact"
	"visionmines/internal/enquiry"
	"visionmines/internal/page"
	"visionmines/internal/roster"
	"visionmines/internal/viewstore"
	"visionmines/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	h := web.NewHandler(
		page.NewService(logger),
		roster.NewService(viewstore.New[*roster.View]("dashboard", time.Hour, logger), nil, logger),
		contact.NewService(viewstore.New[*contact.View]("contact", time.Hour, logger), time.Second, logger),
		enquiry.NewService(viewstore.New[*enquiry.View]("enquiry", time.Hour, logger), time.Second, logger),
		"v-test",
		logger,
	)

	r := gin.New()
	require.NoError(t, web.RegisterRoutes(r, h, logger))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestTemplatesParse(t *testing.T) {
	tpl, err := web.Templates()
	require.NoError(t, err)
	for _, name := range []string{"home", "about", "dashboard", "contact", "enquiries"} {
		assert.NotNil(t, tpl.Lookup(name), name)
	}
}

func TestPages(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"PPE Management System", "Real-time Analytics", "v-test"}},
		{"/about", []string{"About Vision Mines", "Safety First", "Quality Standards"}},
		{"/contact", []string{"Contact Us", "contact@visionmines.com", "Monday - Friday: 8:00 AM - 6:00 PM"}},
		{"/ppe-enquiries", []string{"PPE Enquiries", "Hard Hat/Helmet", "Cut-Resistant Gloves", ".docx"}},
		{"/dashboard", []string{"Safety Dashboard", "John Mitchell", "EMP1001", "Team Compliance Rate"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			for _, s := range tt.want {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestInfoPages_NoDetachedInputs(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/ppe-enquiries", "/contact"} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)

			require.Equal(t, http.StatusOK, w.Code)
			for _, tag := range []string{"<input", "<select", "<textarea"} {
				assert.NotContains(t, w.Body.String(), tag)
			}
		})
	}

	w := get(r, "/ppe-enquiries")
	assert.Contains(t, w.Body.String(), "Hard Hat/Helmet</li>")
}

func TestDashboard_Filter(t *testing.T) {
	r := setupRouter(t)

	t.Run("search without matches", func(t *testing.T) {
		w := get(r, "/dashboard?q="+url.QueryEscape("zzz-no-such-employee"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No employees match")
	})

	t.Run("lead", func(t *testing.T) {
		w := get(r, "/dashboard?lead="+url.QueryEscape("John Mitchell"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<option value="John Mitchell" selected>`)
		assert.NotContains(t, w.Body.String(), ">EMP1010<", "second team is filtered out")
	})

	t.Run("unknown lead", func(t *testing.T) {
		w := get(r, "/dashboard?lead=Nobody")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "EMP1001", "falls back to the full roster")
	})
}
