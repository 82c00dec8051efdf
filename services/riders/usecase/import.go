package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// ImportRiders creates riders in batch. Invalid rows and duplicate phones
// are reported per row and do not stop the import; a store failure does.
func (uc *RiderUC) ImportRiders(ctx context.Context, companyID uuid.UUID, rows []models.CreateRiderRequest) (*models.ImportResult, error) {
	if len(rows) == 0 {
		return nil, apperror.Validation("no riders to import")
	}
	if len(rows) > maxImportRows {
		return nil, apperror.Validation(fmt.Sprintf("at most %d riders can be imported at once", maxImportRows))
	}

	result := &models.ImportResult{Riders: []*models.Rider{}}
	for i := range rows {
		rider, err := uc.CreateRider(ctx, companyID, &rows[i])
		switch {
		case err == nil:
			result.Created++
			result.Riders = append(result.Riders, rider)
		case apperror.Is(err, apperror.KindValidation), apperror.Is(err, apperror.KindConflict):
			result.Skipped++
			result.Errors = append(result.Errors, models.ImportError{
				Row:     i + 1,
				Phone:   rows[i].Phone,
				Message: apperror.PublicMessage(err, "invalid row"),
			})
		default:
			return nil, err
		}
	}

	logger.InfoCtx(ctx, "Riders imported",
		logger.String("company_id", companyID.String()),
		logger.Int("created", result.Created),
		logger.Int("skipped", result.Skipped))
	return result, nil
}

// SyncRiders upserts partner riders keyed by external_id. Rows that fail are
// counted and logged.
func (uc *RiderUC) SyncRiders(ctx context.Context, companyID uuid.UUID, rows []models.CreateRiderRequest) (*models.SyncResult, error) {
	if len(rows) == 0 {
		return nil, apperror.Validation("no riders to sync")
	}
	if len(rows) > maxImportRows {
		return nil, apperror.Validation(fmt.Sprintf("at most %d riders can be synced at once", maxImportRows))
	}

	result := &models.SyncResult{}
	for i := range rows {
		if rows[i].ExternalID == nil || *rows[i].ExternalID == "" {
			result.Failed++
			continue
		}
		rider, err := uc.newRider(companyID, &rows[i])
		if err != nil {
			result.Failed++
			continue
		}

		inserted, err := uc.riderRepo.UpsertByExternalID(ctx, rider)
		switch {
		case err == nil && inserted:
			result.Created++
		case err == nil:
			result.Updated++
		case apperror.Is(err, apperror.KindConflict):
			result.Failed++
			logger.WarnCtx(ctx, "Rider sync row conflicts with an existing phone",
				logger.String("external_id", *rows[i].ExternalID))
		default:
			return nil, err
		}
	}
	return result, nil
}
