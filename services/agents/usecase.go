package agents

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/agents AgentUC

// AgentUC represents the rider session and rider-scoped usecase interface
type AgentUC interface {
	// session lifecycle
	Login(ctx context.Context, req *models.AgentLoginRequest) (*models.AgentLoginResponse, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (models.AgentIdentity, error)

	// rider-scoped operations
	GetProfile(ctx context.Context, identity models.AgentIdentity) (*models.Rider, error)
	UpdateProfile(ctx context.Context, identity models.AgentIdentity, req *models.UpdateRiderRequest) (*models.Rider, error)
	GetLocation(ctx context.Context, identity models.AgentIdentity) (*models.Position, error)
	UpdateLocation(ctx context.Context, identity models.AgentIdentity, req *models.LocationUpdate) (*models.Rider, error)
	ListOrders(ctx context.Context, identity models.AgentIdentity, status string) ([]*models.Order, error)
	GetOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID) (*models.Order, error)
	UpdateOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID, req *models.AgentOrderUpdate) (*models.Order, error)

	// dispatcher session management
	ListSessions(ctx context.Context, companyID, riderID uuid.UUID) ([]*models.AgentSession, error)
	SetPin(ctx context.Context, companyID, riderID uuid.UUID, pin string) error
	ForceLogout(ctx context.Context, companyID, riderID uuid.UUID, sessionID *uuid.UUID) (int64, error)
	ActiveRoster(ctx context.Context, companyID uuid.UUID) (*models.ActiveRoster, error)
}
