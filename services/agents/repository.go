package agents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/dispatch/services/agents AgentRepo

// AgentRepo defines the rider credential, session and audit store
type AgentRepo interface {
	// login lookups
	FindCompanyForLogin(ctx context.Context, code string) (*models.Company, error)
	FindRiderByPhone(ctx context.Context, companyID uuid.UUID, phone string) (*models.Rider, error)

	// credentials
	GetActiveCredential(ctx context.Context, riderID uuid.UUID) (*models.RiderCredential, error)
	CreateCredential(ctx context.Context, credential *models.RiderCredential) error
	UpsertCredential(ctx context.Context, credential *models.RiderCredential) error
	RecordFailedLogin(ctx context.Context, credentialID uuid.UUID, maxAttempts int, lockUntil, at time.Time) (*models.RiderCredential, error)
	RecordSuccessfulLogin(ctx context.Context, credentialID uuid.UUID, at time.Time) error

	// sessions
	CreateSession(ctx context.Context, session *models.AgentSession) error
	GetActiveSession(ctx context.Context, token string) (*models.AgentSession, error)
	TouchSession(ctx context.Context, sessionID uuid.UUID, at time.Time) error
	DeactivateSession(ctx context.Context, sessionID uuid.UUID) error
	DeactivateDeviceSessions(ctx context.Context, deviceID string) (int64, error)
	DeactivateRiderSessions(ctx context.Context, riderID uuid.UUID, sessionID *uuid.UUID) (int64, error)
	ListRiderSessions(ctx context.Context, riderID uuid.UUID) ([]*models.AgentSession, error)

	// secondary writes
	MarkRiderOnline(ctx context.Context, riderID uuid.UUID, at time.Time) error
	UpsertDevice(ctx context.Context, device *models.AgentDevice) error
	LogActivity(ctx context.Context, entry *models.ActivityLog) error
}
