package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPingHandler(t *testing.T) {
	t.Run("Default ping handler", func(t *testing.T) {
		t.Setenv("VERSION", "")
		t.Setenv("GIT_COMMIT", "")
		t.Setenv("BUILD_TIME", "")

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

		require.NoError(t, NewPingHandler("dispatch-api")(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "dispatch-api", response.ServiceName)
		assert.Equal(t, "development", response.Version)
		assert.Equal(t, runtime.Version(), response.GoVersion)
		assert.False(t, response.ServerTime.IsZero())
	})

	t.Run("Ping handler with environment variables", func(t *testing.T) {
		t.Setenv("VERSION", "2.0.0")
		t.Setenv("GIT_COMMIT", "def456")
		t.Setenv("BUILD_TIME", "2023-06-01T12:00:00Z")

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

		require.NoError(t, NewPingHandler("dispatch-webhooks")(c))

		var response BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "2.0.0", response.Version)
		assert.Equal(t, "def456", response.GitCommit)
		assert.Equal(t, "2023-06-01T12:00:00Z", response.BuildTime)
	})
}

func TestService_Check(t *testing.T) {
	service := NewService()
	service.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
	service.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }))

	report := service.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.Equal(t, StatusHealthy, report.Dependencies["postgres"].Status)
	assert.Equal(t, "connection refused", report.Dependencies["redis"].Error)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	healthy := NewService()
	healthy.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))

	e := echo.New()
	RegisterHealthEndpoints(e, "dispatch-api", healthy)

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "dispatch-api", report.Service)
}

func TestRegisterHealthEndpoints_NotReady(t *testing.T) {
	broken := NewService()
	broken.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return errors.New("down") }))

	e := echo.New()
	RegisterHealthEndpoints(e, "dispatch-api", broken)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
