package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visionmines/internal/app"
	"visionmines/internal/config"
	"visionmines/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testApp struct {
	t      *testing.T
	router *gin.Engine
	app    *app.App
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		FormResetDelay:    50 * time.Millisecond,
		ViewIdleTTL:       time.Hour,
		ViewSweepInterval: time.Minute,
		SubmitRateLimit:   100,
		SubmitRateBurst:   100,
	}
	r := gin.New()
	a, err := app.BuildApp(context.Background(), r, cfg, version.Build(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return &testApp{t: t, router: r, app: a}
}

func (ta *testApp) do(method, path, body string) (int, envelope) {
	ta.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(ta.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func TestApp_EnquiryLifecycle(t *testing.T) {
	ta := setupApp(t)

	status, env := ta.do(http.MethodPost, "/api/v1/enquiries/views", "")
	require.Equal(t, http.StatusCreated, status)
	var view struct {
		ViewID string `json:"view_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	base := "/api/v1/enquiries/views/" + view.ViewID

	status, env = ta.do(http.MethodPost, base+"/submit", "")
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	status, _ = ta.do(http.MethodPut, base+"/employee",
		`{"employee_id":"EMP1004","employee_name":"Grace Kim 03","team_lead":"John Mitchell","contact_number":"+1-555-3030"}`)
	require.Equal(t, http.StatusOK, status)
	status, _ = ta.do(http.MethodPost, base+"/items", `{"item":"Hard Hat/Helmet","quantity":2}`)
	require.Equal(t, http.StatusCreated, status)

	status, env = ta.do(http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusCreated, status)
	var submitted struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Items  []struct {
			Item     string `json:"item"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &submitted))
	assert.Equal(t, "pending", submitted.Status)
	require.Len(t, submitted.Items, 1)
	assert.Equal(t, "Hard Hat/Helmet", submitted.Items[0].Item)

	status, _ = ta.do(http.MethodPost, base+"/items", "")
	assert.Equal(t, http.StatusConflict, status, "form is locked until it resets")

	status, _ = ta.do(http.MethodPost, base+"/enquiries/"+submitted.ID+"/approve", "")
	require.Equal(t, http.StatusOK, status)
	status, env = ta.do(http.MethodPost, base+"/enquiries/"+submitted.ID+"/reject", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)

	status, env = ta.do(http.MethodGet, base+"/admin", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))

	assert.Eventually(t, func() bool {
		_, env := ta.do(http.MethodGet, base, "")
		return strings.Contains(string(env.Data), `"state":"idle"`)
	}, time.Second, 10*time.Millisecond)

	status, _ = ta.do(http.MethodDelete, base, "")
	require.Equal(t, http.StatusOK, status)
	status, _ = ta.do(http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestApp_Dashboard(t *testing.T) {
	ta := setupApp(t)

	status, env := ta.do(http.MethodPost, "/api/v1/dashboard/views", "")
	require.Equal(t, http.StatusCreated, status)
	var dash struct {
		ViewID  string `json:"view_id"`
		Summary struct {
			TotalEmployees int `json:"total_employees"`
			Compliant      int `json:"compliant"`
			NonCompliant   int `json:"non_compliant"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.LessOrEqual(t, dash.Summary.TotalEmployees, 60)
	assert.Equal(t, dash.Summary.TotalEmployees, dash.Summary.Compliant+dash.Summary.NonCompliant)

	base := "/api/v1/dashboard/views/" + dash.ViewID
	status, _ = ta.do(http.MethodPut, base+"/filter", `{"search":"EMP1001","lead":"All"}`)
	assert.Equal(t, http.StatusOK, status)
	status, _ = ta.do(http.MethodPut, base+"/filter", `{"lead":"Nobody"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"/export.xlsx", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, w.Body.Len())

	assert.Equal(t, 1, ta.app.Dashboards.Len())
}

func TestApp_ContactAndPages(t *testing.T) {
	ta := setupApp(t)

	status, env := ta.do(http.MethodGet, "/api/v1/contact/info", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "contact@visionmines.com")

	status, env = ta.do(http.MethodPost, "/api/v1/contact/views", "")
	require.Equal(t, http.StatusCreated, status)
	var view struct {
		ViewID string `json:"view_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))

	status, env = ta.do(http.MethodPost, "/api/v1/contact/views/"+view.ViewID+"/submit", `{"name":"Ann","email":"ann@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Message is required", env.Error.Message)

	status, _ = ta.do(http.MethodGet, "/api/v1/pages/about", "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = ta.do(http.MethodGet, "/api/v1/version", "")
	assert.Equal(t, http.StatusOK, status)

	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestApp_CloseTearsDownViews(t *testing.T) {
	ta := setupApp(t)
	status, _ := ta.do(http.MethodPost, "/api/v1/enquiries/views", "")
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, 1, ta.app.Enquiries.Len())

	ta.app.Close()

	assert.Equal(t, 0, ta.app.Enquiries.Len())
}
