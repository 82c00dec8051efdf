package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// Login authenticates a rider by company code, phone and PIN and issues a
// session bound to the device. Any earlier session on the same device is
// ended first.
func (uc *AgentUC) Login(ctx context.Context, req *models.AgentLoginRequest) (*models.AgentLoginResponse, error) {
	code := strings.TrimSpace(req.CompanyCode)
	phone := utils.NormalizePhone(req.Phone)
	deviceID := strings.TrimSpace(req.DeviceID)
	switch {
	case code == "":
		return nil, apperror.Validation("company_code is required")
	case phone == "":
		return nil, apperror.Validation("phone is required")
	case deviceID == "":
		return nil, apperror.Validation("device_id is required")
	case !utils.IsValidPin(req.PinCode):
		return nil, apperror.Validation("pin_code must be 4 to 6 digits")
	}

	company, err := uc.agentRepo.FindCompanyForLogin(ctx, code)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.InvalidCredentials("Invalid company code")
		}
		return nil, err
	}

	rider, err := uc.agentRepo.FindRiderByPhone(ctx, company.ID, phone)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			logger.WarnCtx(ctx, "Agent login for unknown rider",
				logger.String("company_id", company.ID.String()),
				logger.String("phone", utils.MaskPhoneNumber(phone)))
			return nil, apperror.InvalidCredentials("rider not found")
		}
		return nil, err
	}

	if err := uc.verifyPin(ctx, rider, req.PinCode); err != nil {
		return nil, err
	}

	now := uc.now()
	if n, err := uc.agentRepo.DeactivateDeviceSessions(ctx, deviceID); err != nil {
		return nil, err
	} else if n > 0 {
		logger.InfoCtx(ctx, "Replaced device sessions",
			logger.String("device_id", deviceID),
			logger.Int("count", int(n)))
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, apperror.Internal("failed to generate session token", err)
	}
	session := &models.AgentSession{
		ID:           uuid.New(),
		SessionToken: token,
		RiderID:      rider.ID,
		CompanyID:    company.ID,
		DeviceID:     deviceID,
		DeviceType:   req.DeviceType,
		DeviceModel:  req.DeviceModel,
		AppVersion:   req.AppVersion,
		PushToken:    req.PushToken,
		IsActive:     true,
		ExpiresAt:    now.Add(uc.sessionTTL()),
		LastActive:   now,
		CreatedAt:    now,
	}
	if err := uc.agentRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	if err := uc.agentRepo.MarkRiderOnline(ctx, rider.ID, now); err != nil {
		logger.WarnCtx(ctx, "Failed to mark rider online", logger.String("rider_id", rider.ID.String()), logger.Err(err))
	} else {
		rider.Status = models.RiderStatusActive
		rider.LastSeen = &now
	}
	device := &models.AgentDevice{
		RiderID:     rider.ID,
		DeviceID:    deviceID,
		DeviceType:  req.DeviceType,
		DeviceModel: req.DeviceModel,
		AppVersion:  req.AppVersion,
		PushToken:   req.PushToken,
		LastSeen:    now,
	}
	if err := uc.agentRepo.UpsertDevice(ctx, device); err != nil {
		logger.WarnCtx(ctx, "Failed to record device", logger.String("device_id", deviceID), logger.Err(err))
	}
	uc.logActivity(ctx, rider.ID, company.ID, models.ActivityLogin, models.JSONMap{"device_id": deviceID})

	logger.InfoCtx(ctx, "Agent logged in",
		logger.String("rider_id", rider.ID.String()),
		logger.String("company_id", company.ID.String()))

	return &models.AgentLoginResponse{
		SessionToken: token,
		ExpiresAt:    session.ExpiresAt,
		Rider:        rider.Summary(),
		Company:      company.Summary(),
	}, nil
}

// verifyPin checks the PIN against the rider's credential. A rider without
// one sets it on first login.
func (uc *AgentUC) verifyPin(ctx context.Context, rider *models.Rider, pin string) error {
	now := uc.now()

	credential, err := uc.agentRepo.GetActiveCredential(ctx, rider.ID)
	if apperror.Is(err, apperror.KindNotFound) {
		credential = &models.RiderCredential{
			ID:        uuid.New(),
			RiderID:   rider.ID,
			PinCode:   pin,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = uc.agentRepo.CreateCredential(ctx, credential)
		if err == nil {
			logger.InfoCtx(ctx, "Rider PIN set on first login", logger.String("rider_id", rider.ID.String()))
			return uc.agentRepo.RecordSuccessfulLogin(ctx, credential.ID, now)
		}
		if !apperror.Is(err, apperror.KindConflict) {
			return err
		}
		// another first login won the insert
		credential, err = uc.agentRepo.GetActiveCredential(ctx, rider.ID)
	}
	if err != nil {
		return err
	}

	if credential.IsLocked(now) {
		return apperror.AccountLocked("Account is locked. Try again later")
	}

	if subtle.ConstantTimeCompare([]byte(credential.PinCode), []byte(pin)) != 1 {
		maxAttempts := uc.maxLoginAttempts()
		updated, err := uc.agentRepo.RecordFailedLogin(ctx, credential.ID, maxAttempts, now.Add(uc.lockout()), now)
		if err != nil {
			return err
		}
		if updated.IsLocked(now) {
			logger.WarnCtx(ctx, "Rider locked out", logger.String("rider_id", rider.ID.String()))
			return apperror.InvalidPin(fmt.Sprintf("Invalid PIN. Account locked for %d minutes", int(uc.lockout().Minutes())))
		}
		return apperror.InvalidPin(fmt.Sprintf("Invalid PIN. %d attempts remaining", maxAttempts-updated.LoginAttempts))
	}

	return uc.agentRepo.RecordSuccessfulLogin(ctx, credential.ID, now)
}

func (uc *AgentUC) logActivity(ctx context.Context, riderID, companyID uuid.UUID, action string, details models.JSONMap) {
	entry := &models.ActivityLog{
		ID:        uuid.New(),
		RiderID:   riderID,
		CompanyID: companyID,
		Action:    action,
		Details:   details,
		CreatedAt: uc.now(),
	}
	if err := uc.agentRepo.LogActivity(ctx, entry); err != nil {
		logger.WarnCtx(ctx, "Failed to write activity log",
			logger.String("rider_id", riderID.String()),
			logger.String("action", action),
			logger.Err(err))
	}
}
