package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// ListSessions returns the sessions of a rider of the company
func (uc *AgentUC) ListSessions(ctx context.Context, companyID, riderID uuid.UUID) ([]*models.AgentSession, error) {
	if _, err := uc.riderUC.GetRider(ctx, companyID, riderID); err != nil {
		return nil, err
	}
	return uc.agentRepo.ListRiderSessions(ctx, riderID)
}

// SetPin provisions or resets the PIN of a rider, clearing any lockout
func (uc *AgentUC) SetPin(ctx context.Context, companyID, riderID uuid.UUID, pin string) error {
	if !utils.IsValidPin(pin) {
		return apperror.Validation("pin_code must be 4 to 6 digits")
	}
	if _, err := uc.riderUC.GetRider(ctx, companyID, riderID); err != nil {
		return err
	}

	now := uc.now()
	credential := &models.RiderCredential{
		ID:        uuid.New(),
		RiderID:   riderID,
		PinCode:   pin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.agentRepo.UpsertCredential(ctx, credential); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Rider PIN reset",
		logger.String("company_id", companyID.String()),
		logger.String("rider_id", riderID.String()))
	return nil
}

// ForceLogout ends the rider's active sessions, or only sessionID when given,
// and takes the rider offline
func (uc *AgentUC) ForceLogout(ctx context.Context, companyID, riderID uuid.UUID, sessionID *uuid.UUID) (int64, error) {
	if _, err := uc.riderUC.GetRider(ctx, companyID, riderID); err != nil {
		return 0, err
	}

	n, err := uc.agentRepo.DeactivateRiderSessions(ctx, riderID, sessionID)
	if err != nil {
		return 0, err
	}

	if _, err := uc.riderUC.SetStatus(ctx, companyID, riderID, models.RiderStatusOffline); err != nil {
		logger.WarnCtx(ctx, "Failed to set rider offline on forced logout",
			logger.String("rider_id", riderID.String()), logger.Err(err))
	}
	uc.logActivity(ctx, riderID, companyID, models.ActivityLogout, models.JSONMap{
		"forced":   true,
		"sessions": n,
	})

	logger.InfoCtx(ctx, "Rider sessions revoked",
		logger.String("rider_id", riderID.String()),
		logger.Int("count", int(n)))
	return n, nil
}

// ActiveRoster returns the live rider roster of the company
func (uc *AgentUC) ActiveRoster(ctx context.Context, companyID uuid.UUID) (*models.ActiveRoster, error) {
	return uc.riderUC.ActiveRoster(ctx, companyID)
}
