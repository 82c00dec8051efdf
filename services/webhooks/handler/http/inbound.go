package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/metrics"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/webhook"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/tenants"
	"github.com/piresc/dispatch/services/webhooks"
)

const maxInboundBody = 1 << 20

// Inbound metric sources and results
const (
	sourceGeneric = "generic"
	sourceShopify = "shopify"
	shopifyEvent  = "order"

	resultAccepted = "accepted"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

// InboundHandler receives partner and Shopify webhooks
type InboundHandler struct {
	webhookUC webhooks.WebhookUC
	tenantUC  tenants.TenantUC
}

// NewInboundHandler creates a new inbound webhook handler
func NewInboundHandler(webhookUC webhooks.WebhookUC, tenantUC tenants.TenantUC) *InboundHandler {
	return &InboundHandler{
		webhookUC: webhookUC,
		tenantUC:  tenantUC,
	}
}

// Receive handles POST /webhooks. The x-api-key header selects the tenant;
// a signature header is verified whenever the tenant has a secret.
func (h *InboundHandler) Receive(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.company(c, strings.TrimSpace(c.Request().Header.Get(constants.HeaderAPIKey)))
	if err != nil {
		metrics.RecordInbound(sourceGeneric, "", resultRejected)
		return utils.HandleError(c, err, "Unauthorized")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxInboundBody))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	signature := c.Request().Header.Get(constants.HeaderWebhookSignature)
	if signature != "" && company.WebhookSecret != "" && !webhook.Verify(company.WebhookSecret, body, signature) {
		logger.WarnCtx(ctx, "Inbound webhook signature mismatch", logger.String("company_id", company.ID.String()))
		metrics.RecordInbound(sourceGeneric, "", resultRejected)
		return utils.HandleError(c, apperror.MissingAuth("Invalid webhook signature"), "Unauthorized")
	}

	var event models.InboundEvent
	if err := json.Unmarshal(body, &event); err != nil {
		metrics.RecordInbound(sourceGeneric, "", resultRejected)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	eventName := models.CanonicalInboundEvent(event.Event)

	result, err := h.webhookUC.HandleEvent(ctx, company.ID, &event)
	if err != nil {
		metrics.RecordInbound(sourceGeneric, eventName, outcome(err))
		return utils.HandleError(c, err, "Failed to process webhook")
	}

	metrics.RecordInbound(sourceGeneric, eventName, resultAccepted)
	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed successfully", result)
}

// ReceiveShopify handles POST /webhooks/shopify. The Shopify headers are
// logged for tracing only.
func (h *InboundHandler) ReceiveShopify(c echo.Context) error {
	ctx := c.Request().Context()

	apiKey := strings.TrimSpace(c.Request().Header.Get(constants.HeaderAPIKey))
	if apiKey == "" {
		apiKey, _ = middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	}
	company, err := h.company(c, apiKey)
	if err != nil {
		metrics.RecordInbound(sourceShopify, "", resultRejected)
		return utils.HandleError(c, err, "Unauthorized")
	}

	logger.InfoCtx(ctx, "Shopify webhook received",
		logger.String("company_id", company.ID.String()),
		logger.String("topic", c.Request().Header.Get(constants.HeaderShopifyTopic)),
		logger.String("shop_domain", c.Request().Header.Get(constants.HeaderShopifyDomain)),
		logger.Bool("hmac_present", c.Request().Header.Get(constants.HeaderShopifyHmac) != ""))

	var order models.ShopifyOrder
	if err := c.Bind(&order); err != nil {
		metrics.RecordInbound(sourceShopify, shopifyEvent, resultRejected)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.webhookUC.ImportShopifyOrder(ctx, company.ID, &order)
	if err != nil {
		metrics.RecordInbound(sourceShopify, shopifyEvent, outcome(err))
		return utils.HandleError(c, err, "Failed to import Shopify order")
	}

	metrics.RecordInbound(sourceShopify, shopifyEvent, resultAccepted)
	return utils.SuccessResponse(c, http.StatusOK, "Shopify order imported successfully", result)
}

func (h *InboundHandler) company(c echo.Context, apiKey string) (*models.Company, error) {
	if apiKey == "" {
		return nil, apperror.MissingAuth("Unauthorized")
	}
	return h.tenantUC.GetCompanyByAPIKey(c.Request().Context(), apiKey)
}

func outcome(err error) string {
	if apperror.HTTPStatus(err) >= http.StatusInternalServerError {
		return resultFailed
	}
	return resultRejected
}
