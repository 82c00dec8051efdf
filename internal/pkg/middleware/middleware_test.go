package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	companyID uuid.UUID
	err       error
	gotKey    string
}

func (f *fakeResolver) AuthenticateAPIKey(_ context.Context, apiKey string) (uuid.UUID, error) {
	f.gotKey = apiKey
	return f.companyID, f.err
}

type fakeValidator struct {
	identity models.AgentIdentity
	err      error
}

func (f *fakeValidator) ValidateSession(_ context.Context, _ string) (models.AgentIdentity, error) {
	return f.identity, f.err
}

type failingCounter struct{}

func (failingCounter) IncrWithExpire(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer tk_abc", "tk_abc", true},
		{"bearer tk_abc", "tk_abc", true},
		{"  Bearer   tk_abc  ", "tk_abc", true},
		{"Basic dXNlcg==", "", false},
		{"Bearer ", "", false},
		{"tk_abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	var ctxRequestID string
	e.GET("/", func(c echo.Context) error {
		ctxRequestID = appctx.GetRequestID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(echo.HeaderXRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, ctxRequestID)
	})

	t.Run("keeps the incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "req-123", ctxRequestID)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	companyID := uuid.New()

	tests := []struct {
		name       string
		header     string
		resolver   *fakeResolver
		wantStatus int
	}{
		{"missing header", "", &fakeResolver{companyID: companyID}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", &fakeResolver{companyID: companyID}, http.StatusUnauthorized},
		{"unknown key", "Bearer tk_nope", &fakeResolver{err: apperror.MissingAuth("Unauthorized")}, http.StatusUnauthorized},
		{"store failure", "Bearer tk_abc", &fakeResolver{err: apperror.Upstream("db down", errors.New("boom"))}, http.StatusInternalServerError},
		{"valid key", "Bearer tk_abc", &fakeResolver{companyID: companyID}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var seen uuid.UUID
			e.GET("/v1/orders", func(c echo.Context) error {
				seen, _ = appctx.CompanyIDFromEcho(c)
				fromCtx, _ := appctx.GetCompanyID(c.Request().Context())
				assert.Equal(t, seen, fromCtx)
				return c.NoContent(http.StatusOK)
			}, APIKeyAuth(tt.resolver))

			req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, companyID, seen)
				assert.Equal(t, "tk_abc", tt.resolver.gotKey)
			} else {
				assert.Equal(t, false, decodeBody(t, rec)["success"])
			}
		})
	}
}

func TestAgentSessionAuth(t *testing.T) {
	identity := models.AgentIdentity{
		SessionID: uuid.New(),
		RiderID:   uuid.New(),
		CompanyID: uuid.New(),
		DeviceID:  "device-1",
	}

	t.Run("valid session", func(t *testing.T) {
		e := echo.New()
		var got models.AgentIdentity
		e.GET("/agent/profile", func(c echo.Context) error {
			got, _ = appctx.AgentFromEcho(c)
			return c.NoContent(http.StatusOK)
		}, AgentSessionAuth(&fakeValidator{identity: identity}))

		req := httptest.NewRequest(http.MethodGet, "/agent/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, identity, got)
	})

	t.Run("expired session", func(t *testing.T) {
		e := echo.New()
		e.GET("/agent/profile", func(c echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		}, AgentSessionAuth(&fakeValidator{err: apperror.MissingAuth("Session expired")}))

		req := httptest.NewRequest(http.MethodGet, "/agent/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Session expired", decodeBody(t, rec)["error"])
	})

	t.Run("missing token", func(t *testing.T) {
		e := echo.New()
		e.GET("/agent/profile", func(c echo.Context) error { return nil }, AgentSessionAuth(&fakeValidator{}))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/agent/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer client.Close()

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(client, "company_login", 2, time.Minute))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:4321"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, send().Code)

	blocked := send()
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	assert.True(t, mr.Exists("rate:limit:company_login:10.0.0.1"))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, send().Code)
}

func TestRateLimiterMiddleware_FailsOpen(t *testing.T) {
	e := echo.New()
	e.POST("/agent/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(failingCounter{}, "agent_login", 1, time.Minute))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/agent/auth/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMiddleware_RateLimitDisabled(t *testing.T) {
	m := NewMiddleware(Config{
		Counter:   failingCounter{},
		RateLimit: models.RateLimitConfig{Enabled: false, Limit: 1, PeriodSeconds: 60},
	})

	e := echo.New()
	e.POST("/auth/signup", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.RateLimit("signup"))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}
