package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlink/internal/metrics"
	"shortlink/internal/middleware"
	"shortlink/internal/middleware/mocks"
)

// recordOne serves req through e with the metrics middleware installed by
// register and returns the single recorded metric.
func recordOne(t *testing.T, req *http.Request, register func(e *echo.Echo, rec *mocks.MockHTTPRecorder)) metrics.HTTPMetric {
	t.Helper()

	rec := mocks.NewMockHTTPRecorder(t)
	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) { captured = m }).
		Return().Once()

	e := echo.New()
	register(e, rec)
	e.ServeHTTP(httptest.NewRecorder(), req)
	return captured
}

func TestMetrics_Redirect(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	m := recordOne(t, req, func(e *echo.Echo, rec *mocks.MockHTTPRecorder) {
		e.Use(middleware.Metrics(rec))
		e.GET("/:key", func(c echo.Context) error {
			return c.Redirect(http.StatusSeeOther, "https://example.com")
		})
	})

	assert.Equal(t, http.MethodGet, m.Method)
	assert.Equal(t, "/:key", m.Route)
	assert.Equal(t, http.StatusSeeOther, m.StatusCode)
	assert.Equal(t, "192.168.1.1", m.ClientIP)
	assert.GreaterOrEqual(t, m.DurationMs, 0.0)
	assert.Less(t, m.DurationMs, 1000.0)
	assert.Empty(t, m.Error)
}

func TestMetrics_AdminRouteHidesSecret(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/admin/abc_topsecret", nil)

			m := recordOne(t, req, func(e *echo.Echo, rec *mocks.MockHTTPRecorder) {
				e.Use(middleware.Metrics(rec))
				e.Match([]string{http.MethodGet, http.MethodPatch, http.MethodDelete}, "/admin/:secret",
					func(c echo.Context) error {
						return c.JSON(http.StatusOK, map[string]string{"secret": c.Param("secret")})
					})
			})

			assert.Equal(t, method, m.Method)
			assert.Equal(t, "/admin/:secret", m.Route)
			assert.NotContains(t, m.Route, "topsecret")
			assert.Equal(t, http.StatusOK, m.StatusCode)
		})
	}
}

func TestMetrics_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantStatus int
		wantError  string
	}{
		{"plain error", errors.New("db down"), http.StatusInternalServerError, "db down"},
		{"http error", echo.NewHTTPError(http.StatusNotFound, "url not found"), http.StatusNotFound, "url not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/url", nil)

			m := recordOne(t, req, func(e *echo.Echo, rec *mocks.MockHTTPRecorder) {
				e.Use(middleware.Metrics(rec))
				e.POST("/url", func(c echo.Context) error { return tt.handlerErr })
			})

			assert.Equal(t, "/url", m.Route)
			assert.Equal(t, tt.wantStatus, m.StatusCode)
			assert.Equal(t, tt.wantError, m.Error)
		})
	}
}

func TestMetrics_CommittedResponseKeepsStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/url", nil)

	m := recordOne(t, req, func(e *echo.Echo, rec *mocks.MockHTTPRecorder) {
		e.Use(middleware.Metrics(rec))
		e.POST("/url", func(c echo.Context) error {
			_ = c.JSON(http.StatusConflict, map[string]string{"error": "key pool exhausted"})
			return errors.New("late failure")
		})
	})

	assert.Equal(t, http.StatusConflict, m.StatusCode)
	assert.Equal(t, "late failure", m.Error)
}

func TestMetrics_CapturesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)

	m := recordOne(t, req, func(e *echo.Echo, rec *mocks.MockHTTPRecorder) {
		e.Use(middleware.RequestID())
		e.Use(middleware.Metrics(rec))
		e.GET("/api/v1/health", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	require.NotEmpty(t, m.RequestID)
	assert.Len(t, m.RequestID, 36)
}
