package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_Middleware(t *testing.T) {
	m := NewHTTPMetrics("metrics-test")
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/v1/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, errors.New("upstream"))
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/orders/"+string(rune('a'+i)), nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(RequestCounter.WithLabelValues("metrics-test", "GET", "/v1/orders/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(StatusCodeCategoryCounter.WithLabelValues("metrics-test", "5xx")))
}

func TestWebhookMetrics(t *testing.T) {
	Register()

	before := testutil.ToFloat64(WebhookAttempts.WithLabelValues("transport_error"))
	RecordWebhookAttempt(0, 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(WebhookAttempts.WithLabelValues("transport_error")))

	RecordWebhookOutcome("order.delivered", OutcomeDeadLetter)
	assert.Equal(t, float64(1), testutil.ToFloat64(WebhookDeliveries.WithLabelValues("order.delivered", OutcomeDeadLetter)))

	RecordInbound("shopify", "orders/create", "ok")
	assert.Equal(t, float64(1), testutil.ToFloat64(InboundWebhooks.WithLabelValues("shopify", "orders/create", "ok")))
}

func TestPrometheusHandler(t *testing.T) {
	Register()
	RecordWebhookOutcome("order.created", OutcomeDelivered)

	rec := httptest.NewRecorder()
	GetPrometheusHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "webhook_deliveries_total"))
}
