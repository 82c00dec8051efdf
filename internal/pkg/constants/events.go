package constants

// Outbound webhook event names
const (
	EventOrderCreated   = "order.created"
	EventOrderAssigned  = "order.assigned"
	EventOrderPickedUp  = "order.picked_up"
	EventOrderInTransit = "order.in_transit"
	EventOrderDelivered = "order.delivered"
	EventOrderCancelled = "order.cancelled"
	EventOrderFailed    = "order.failed"
	EventOrderUpdated   = "order.updated"
)

// Webhook headers
const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookEvent     = "X-Webhook-Event"
	HeaderAPIKey           = "X-API-Key"

	HeaderShopifyHmac   = "X-Shopify-Hmac-Sha256"
	HeaderShopifyTopic  = "X-Shopify-Topic"
	HeaderShopifyDomain = "X-Shopify-Shop-Domain"

	// Prefix of inbound signatures
	SignaturePrefix = "sha256="
)

// Prefixes of generated credentials
const (
	APIKeyPrefix        = "tk_"
	WebhookSecretPrefix = "whsec_"
	ShopifyIDPrefix     = "shopify_"
)
