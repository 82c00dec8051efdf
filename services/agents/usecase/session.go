package usecase

import (
	"context"
	"strings"

	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// ValidateSession resolves a bearer token into the rider identity. Expired
// sessions are deactivated on sight.
func (uc *AgentUC) ValidateSession(ctx context.Context, token string) (models.AgentIdentity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.AgentIdentity{}, apperror.MissingAuth("Missing session token")
	}

	session, err := uc.agentRepo.GetActiveSession(ctx, token)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return models.AgentIdentity{}, apperror.MissingAuth("Invalid or expired session")
		}
		return models.AgentIdentity{}, err
	}

	now := uc.now()
	if session.IsExpired(now) {
		if err := uc.agentRepo.DeactivateSession(ctx, session.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to deactivate expired session",
				logger.String("session_id", session.ID.String()), logger.Err(err))
		}
		return models.AgentIdentity{}, apperror.MissingAuth("Invalid or expired session")
	}

	if err := uc.agentRepo.TouchSession(ctx, session.ID, now); err != nil {
		logger.DebugCtx(ctx, "Failed to touch session", logger.String("session_id", session.ID.String()), logger.Err(err))
	}

	return models.AgentIdentity{
		SessionID: session.ID,
		RiderID:   session.RiderID,
		CompanyID: session.CompanyID,
		DeviceID:  session.DeviceID,
	}, nil
}

// Logout ends the session and takes the rider offline
func (uc *AgentUC) Logout(ctx context.Context, token string) error {
	identity, err := uc.ValidateSession(ctx, token)
	if err != nil {
		return err
	}

	if err := uc.agentRepo.DeactivateSession(ctx, identity.SessionID); err != nil {
		return err
	}

	if _, err := uc.riderUC.SetStatus(ctx, identity.CompanyID, identity.RiderID, models.RiderStatusOffline); err != nil {
		logger.WarnCtx(ctx, "Failed to set rider offline on logout",
			logger.String("rider_id", identity.RiderID.String()), logger.Err(err))
	}
	uc.logActivity(ctx, identity.RiderID, identity.CompanyID, models.ActivityLogout,
		models.JSONMap{"device_id": identity.DeviceID})

	logger.InfoCtx(ctx, "Agent logged out", logger.String("rider_id", identity.RiderID.String()))
	return nil
}
