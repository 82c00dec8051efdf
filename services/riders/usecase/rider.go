package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// ListRiders returns the riders of the company
func (uc *RiderUC) ListRiders(ctx context.Context, companyID uuid.UUID, filter models.RiderFilter) ([]*models.Rider, error) {
	if filter.Status != "" {
		if !filter.Status.IsValid() {
			return nil, apperror.Validation("invalid rider status")
		}
		filter.Status = filter.Status.Normalize()
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}
	return uc.riderRepo.ListRiders(ctx, companyID, filter)
}

// CreateRider registers a rider. Phones are unique per company.
func (uc *RiderUC) CreateRider(ctx context.Context, companyID uuid.UUID, req *models.CreateRiderRequest) (*models.Rider, error) {
	rider, err := uc.newRider(companyID, req)
	if err != nil {
		return nil, err
	}
	if err := uc.riderRepo.CreateRider(ctx, rider); err != nil {
		if apperror.Is(err, apperror.KindConflict) {
			return nil, apperror.Conflict("a rider with this phone already exists")
		}
		return nil, err
	}
	return rider, nil
}

func (uc *RiderUC) newRider(companyID uuid.UUID, req *models.CreateRiderRequest) (*models.Rider, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if !utils.IsValidPhoneNumber(req.Phone) {
		return nil, apperror.Validation("a valid phone is required")
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		return nil, apperror.Validation("invalid email")
	}

	status := models.RiderStatusOffline
	if req.Status != "" {
		status = models.RiderStatus(strings.ToLower(req.Status))
		if !status.IsValid() {
			return nil, apperror.Validation("invalid rider status")
		}
		status = status.Normalize()
	}

	now := uc.now()
	return &models.Rider{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Name:        name,
		Phone:       utils.NormalizePhone(req.Phone),
		Email:       database.NullIfEmpty(req.Email),
		VehicleType: database.NullIfEmpty(req.VehicleType),
		Status:      status,
		ExternalID:  database.NullIfEmpty(req.ExternalID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetRider returns a rider of the company
func (uc *RiderUC) GetRider(ctx context.Context, companyID, riderID uuid.UUID) (*models.Rider, error) {
	return uc.riderRepo.GetRider(ctx, companyID, riderID)
}

// GetRiderByExternalID returns a rider by its partner id
func (uc *RiderUC) GetRiderByExternalID(ctx context.Context, companyID uuid.UUID, externalID string) (*models.Rider, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, apperror.Validation("external_id is required")
	}
	return uc.riderRepo.GetRiderByExternalID(ctx, companyID, externalID)
}

// UpdateRider applies a partial profile update
func (uc *RiderUC) UpdateRider(ctx context.Context, companyID, riderID uuid.UUID, req *models.UpdateRiderRequest) (*models.Rider, error) {
	rider, err := uc.riderRepo.GetRider(ctx, companyID, riderID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation("name cannot be empty")
		}
		rider.Name = name
	}
	if req.Phone != nil {
		if !utils.IsValidPhoneNumber(*req.Phone) {
			return nil, apperror.Validation("a valid phone is required")
		}
		rider.Phone = utils.NormalizePhone(*req.Phone)
	}
	if req.Email != nil {
		if *req.Email != "" && !utils.IsValidEmail(*req.Email) {
			return nil, apperror.Validation("invalid email")
		}
		rider.Email = database.NullIfEmpty(req.Email)
	}
	if req.VehicleType != nil {
		rider.VehicleType = database.NullIfEmpty(req.VehicleType)
	}
	wentOffline := false
	if req.Status != nil {
		status := models.RiderStatus(strings.ToLower(*req.Status))
		if !status.IsValid() {
			return nil, apperror.Validation("invalid rider status")
		}
		status = status.Normalize()
		wentOffline = status == models.RiderStatusOffline && rider.Status != models.RiderStatusOffline
		rider.Status = status
	}
	rider.UpdatedAt = uc.now()

	if err := uc.riderRepo.UpdateRider(ctx, rider); err != nil {
		if apperror.Is(err, apperror.KindConflict) {
			return nil, apperror.Conflict("a rider with this phone already exists")
		}
		return nil, err
	}
	if wentOffline {
		uc.removePosition(ctx, companyID, riderID)
	}
	return rider, nil
}

// DeleteRider removes a rider and its indexed position
func (uc *RiderUC) DeleteRider(ctx context.Context, companyID, riderID uuid.UUID) error {
	if err := uc.riderRepo.DeleteRider(ctx, companyID, riderID); err != nil {
		return err
	}
	uc.removePosition(ctx, companyID, riderID)
	return nil
}

// SetStatus changes the rider status
func (uc *RiderUC) SetStatus(ctx context.Context, companyID, riderID uuid.UUID, status models.RiderStatus) (*models.Rider, error) {
	if !status.IsValid() {
		return nil, apperror.Validation("invalid rider status")
	}
	rider, err := uc.riderRepo.UpdateStatus(ctx, companyID, riderID, status.Normalize())
	if err != nil {
		return nil, err
	}
	if rider.Status == models.RiderStatusOffline {
		uc.removePosition(ctx, companyID, riderID)
	}
	return rider, nil
}

func (uc *RiderUC) removePosition(ctx context.Context, companyID, riderID uuid.UUID) {
	if err := uc.riderGW.RemovePosition(ctx, companyID, riderID); err != nil {
		logger.WarnCtx(ctx, "Failed to remove rider from position index",
			logger.String("rider_id", riderID.String()),
			logger.Err(err))
	}
}
