package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// UpdateLocation records a position report. The geohash is stored with the
// row and the position is indexed for nearby search on a best-effort basis.
func (uc *RiderUC) UpdateLocation(ctx context.Context, companyID, riderID uuid.UUID, req *models.LocationUpdate) (*models.Rider, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, apperror.Validation("latitude and longitude are required")
	}
	if !utils.IsValidCoordinate(*req.Latitude, *req.Longitude) {
		return nil, apperror.Validation("latitude or longitude out of range")
	}
	if req.BatteryLevel != nil && (*req.BatteryLevel < 0 || *req.BatteryLevel > 100) {
		return nil, apperror.Validation("battery_level must be between 0 and 100")
	}

	hash := utils.EncodeGeohash(*req.Latitude, *req.Longitude)
	rider, err := uc.riderRepo.UpdateLocation(ctx, companyID, riderID, *req, hash, uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.riderGW.IndexPosition(ctx, companyID, riderID, *req.Latitude, *req.Longitude); err != nil {
		logger.WarnCtx(ctx, "Failed to index rider position",
			logger.String("rider_id", riderID.String()),
			logger.Err(err))
	}
	return rider, nil
}

// FindNearby returns the riders closest to a point, nearest first. Offline
// riders and riders removed since they were indexed are left out.
func (uc *RiderUC) FindNearby(ctx context.Context, companyID uuid.UUID, latitude, longitude, radiusKm float64, limit int) ([]models.Position, error) {
	if !utils.IsValidCoordinate(latitude, longitude) {
		return nil, apperror.Validation("latitude or longitude out of range")
	}
	if radiusKm <= 0 || radiusKm > 100 {
		return nil, apperror.Validation("radius_km must be between 0 and 100")
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultNearbyLimit
	}

	candidates, err := uc.riderGW.Nearby(ctx, companyID, latitude, longitude, radiusKm, limit)
	if err != nil {
		return nil, apperror.Upstream("failed to search nearby riders", err)
	}
	if len(candidates) == 0 {
		return []models.Position{}, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, p := range candidates {
		ids = append(ids, p.RiderID)
	}
	found, err := uc.riderRepo.ListRidersByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Rider, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	positions := make([]models.Position, 0, len(candidates))
	for _, p := range candidates {
		rider, ok := byID[p.RiderID]
		if !ok || rider.Status == models.RiderStatusOffline {
			continue
		}
		if rider.Geohash != nil {
			p.Geohash = *rider.Geohash
		}
		if rider.LastSeen != nil {
			p.UpdatedAt = *rider.LastSeen
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// ActiveRoster returns every rider of the company with aggregate counts.
// Online means seen within the configured window.
func (uc *RiderUC) ActiveRoster(ctx context.Context, companyID uuid.UUID) (*models.ActiveRoster, error) {
	all, err := uc.riderRepo.ListRiders(ctx, companyID, models.RiderFilter{})
	if err != nil {
		return nil, err
	}

	cutoff := uc.now().Add(-uc.onlineWindow())
	roster := &models.ActiveRoster{Riders: all}
	roster.Counts.Total = len(all)
	for _, r := range all {
		if r.LastSeen != nil && r.LastSeen.After(cutoff) && r.Status != models.RiderStatusOffline {
			roster.Counts.Online++
		}
		switch r.Status {
		case models.RiderStatusActive:
			roster.Counts.Active++
		case models.RiderStatusBusy:
			roster.Counts.Busy++
		}
	}
	return roster, nil
}
