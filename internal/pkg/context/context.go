package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// CompanyIDKey is the key for the authenticated tenant in context
	CompanyIDKey ContextKey = "company_id"
	// AgentKey is the key for the authenticated rider session in context
	AgentKey ContextKey = "agent_identity"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithCompanyID adds the authenticated company to the context
func WithCompanyID(ctx context.Context, companyID uuid.UUID) context.Context {
	return context.WithValue(ctx, CompanyIDKey, companyID)
}

// GetCompanyID retrieves the authenticated company from context
func GetCompanyID(ctx context.Context) (uuid.UUID, bool) {
	companyID, ok := ctx.Value(CompanyIDKey).(uuid.UUID)
	return companyID, ok
}

// WithAgent adds the authenticated rider session to the context
func WithAgent(ctx context.Context, identity models.AgentIdentity) context.Context {
	return context.WithValue(ctx, AgentKey, identity)
}

// GetAgent retrieves the authenticated rider session from context
func GetAgent(ctx context.Context) (models.AgentIdentity, bool) {
	identity, ok := ctx.Value(AgentKey).(models.AgentIdentity)
	return identity, ok
}

// Detach returns a background context that keeps the request ID of ctx,
// for work that must outlive the request.
func Detach(ctx context.Context) context.Context {
	detached := context.Background()
	if id := GetRequestID(ctx); id != "" {
		detached = context.WithValue(detached, RequestIDKey, id)
	}
	return detached
}
