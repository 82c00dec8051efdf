package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/services/webhooks/handler/http"
	"github.com/piresc/dispatch/services/webhooks/handler/nats"
)

// Handler combines the inbound receivers and the outbound worker
type Handler struct {
	inbound  *http.InboundHandler
	outbound *nats.OutboundHandler
}

// NewHandler creates a new combined handler. Either side may be nil when
// the process only runs the other one.
func NewHandler(inbound *http.InboundHandler, outbound *nats.OutboundHandler) *Handler {
	return &Handler{
		inbound:  inbound,
		outbound: outbound,
	}
}

// RegisterRoutes registers the inbound webhook routes. They authenticate
// with the tenant API key themselves.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	if h.inbound == nil {
		return
	}
	e.POST("/webhooks", h.inbound.Receive)
	e.POST("/webhooks/shopify", h.inbound.ReceiveShopify)
}

// InitNATSConsumers starts the outbound webhook workers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	if h.outbound == nil {
		return nil
	}
	return h.outbound.InitNATSConsumers(ctx)
}

// Stop stops the outbound webhook workers
func (h *Handler) Stop() {
	if h.outbound != nil {
		h.outbound.Stop()
	}
}
