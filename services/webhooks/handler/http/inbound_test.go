package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/webhook"
	tenantmocks "github.com/piresc/dispatch/services/tenants/mocks"
	"github.com/piresc/dispatch/services/webhooks/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inboundBody = `{"event":"order_status_update","data":{"external_id":"ext-1","status":"delivered"}}`

func newInboundContext(target, body string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReceive(t *testing.T) {
	company := &models.Company{ID: uuid.New(), APIKey: "tk_abc", WebhookSecret: "whsec_test"}
	noSecret := &models.Company{ID: uuid.New(), APIKey: "tk_abc"}

	tests := []struct {
		name       string
		headers    map[string]string
		mockSetup  func(*mocks.MockWebhookUC, *tenantmocks.MockTenantUC)
		wantStatus int
	}{
		{
			name: "Signed event",
			headers: map[string]string{
				constants.HeaderAPIKey:           "tk_abc",
				constants.HeaderWebhookSignature: constants.SignaturePrefix + webhook.Sign("whsec_test", []byte(inboundBody)),
			},
			mockSetup: func(uc *mocks.MockWebhookUC, tenants *tenantmocks.MockTenantUC) {
				tenants.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_abc").Return(company, nil)
				uc.EXPECT().HandleEvent(gomock.Any(), company.ID, gomock.Any()).
					Return(&models.InboundResult{Event: models.InboundOrderStatusUpdate}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "Unsigned event is accepted",
			headers: map[string]string{constants.HeaderAPIKey: "tk_abc"},
			mockSetup: func(uc *mocks.MockWebhookUC, tenants *tenantmocks.MockTenantUC) {
				tenants.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_abc").Return(company, nil)
				uc.EXPECT().HandleEvent(gomock.Any(), company.ID, gomock.Any()).
					Return(&models.InboundResult{Event: models.InboundOrderStatusUpdate}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Signature without tenant secret is not checked",
			headers: map[string]string{
				constants.HeaderAPIKey:           "tk_abc",
				constants.HeaderWebhookSignature: "sha256=deadbeef",
			},
			mockSetup: func(uc *mocks.MockWebhookUC, tenants *tenantmocks.MockTenantUC) {
				tenants.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_abc").Return(noSecret, nil)
				uc.EXPECT().HandleEvent(gomock.Any(), noSecret.ID, gomock.Any()).
					Return(&models.InboundResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Bad signature",
			headers: map[string]string{
				constants.HeaderAPIKey:           "tk_abc",
				constants.HeaderWebhookSignature: "sha256=" + webhook.Sign("other", []byte(inboundBody)),
			},
			mockSetup: func(_ *mocks.MockWebhookUC, tenants *tenantmocks.MockTenantUC) {
				tenants.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_abc").Return(company, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Missing api key",
			headers:    map[string]string{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "Unknown api key",
			headers: map[string]string{constants.HeaderAPIKey: "tk_nope"},
			mockSetup: func(_ *mocks.MockWebhookUC, tenants *tenantmocks.MockTenantUC) {
				tenants.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_nope").Return(nil, apperror.MissingAuth("Unauthorized"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "Unknown event",
			headers: map[string]string{constants.HeaderAPIKey: "tk_abc"},
			mockSetup: func(uc *mocks.MockWebhookUC, tenants *tenantmocks.MockTenantUC) {
				tenants.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_abc").Return(company, nil)
				uc.EXPECT().HandleEvent(gomock.Any(), company.ID, gomock.Any()).
					Return(nil, apperror.Validation("unknown event: order.deleted"))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			webhookUC := mocks.NewMockWebhookUC(ctrl)
			tenantUC := tenantmocks.NewMockTenantUC(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(webhookUC, tenantUC)
			}
			h := NewInboundHandler(webhookUC, tenantUC)

			c, rec := newInboundContext("/webhooks", inboundBody, tt.headers)
			require.NoError(t, h.Receive(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestReceive_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenantUC := tenantmocks.NewMockTenantUC(ctrl)
	h := NewInboundHandler(mocks.NewMockWebhookUC(ctrl), tenantUC)
	tenantUC.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_abc").Return(&models.Company{ID: uuid.New()}, nil)

	c, rec := newInboundContext("/webhooks", `{"event":`, map[string]string{constants.HeaderAPIKey: "tk_abc"})
	require.NoError(t, h.Receive(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReceiveShopify(t *testing.T) {
	company := &models.Company{ID: uuid.New()}
	body := `{"id":1001,"total_price":"10.00","shipping_address":{"address1":"Jl. Sudirman 1"}}`

	t.Run("Bearer api key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		webhookUC := mocks.NewMockWebhookUC(ctrl)
		tenantUC := tenantmocks.NewMockTenantUC(ctrl)
		h := NewInboundHandler(webhookUC, tenantUC)

		tenantUC.EXPECT().GetCompanyByAPIKey(gomock.Any(), "tk_abc").Return(company, nil)
		webhookUC.EXPECT().ImportShopifyOrder(gomock.Any(), company.ID, gomock.Any()).
			Return(&models.InboundResult{Event: "shopify.order", Created: true}, nil)

		c, rec := newInboundContext("/webhooks/shopify", body, map[string]string{
			echo.HeaderAuthorization:    "Bearer tk_abc",
			constants.HeaderShopifyTopic: "orders/create",
		})
		require.NoError(t, h.ReceiveShopify(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["data"].(map[string]interface{})["created"])
	})

	t.Run("Missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewInboundHandler(mocks.NewMockWebhookUC(ctrl), tenantmocks.NewMockTenantUC(ctrl))

		c, rec := newInboundContext("/webhooks/shopify", body, nil)
		require.NoError(t, h.ReceiveShopify(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
