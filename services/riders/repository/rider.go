package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const riderColumns = `id, company_id, name, phone, email, vehicle_type, status, latitude, longitude,
	geohash, battery_level, last_seen, external_id, created_at, updated_at`

// ListRiders returns the riders of a company, filtered by status
func (r *RiderRepo) ListRiders(ctx context.Context, companyID uuid.UUID, filter models.RiderFilter) ([]*models.Rider, error) {
	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM riders WHERE %s ORDER BY name ASC, created_at ASC`,
		riderColumns, strings.Join(conditions, " AND "))
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	riders := []*models.Rider{}
	if err := r.db.SelectContext(ctx, &riders, query, args...); err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	return riders, nil
}

// ListRidersByIDs returns the riders of a company among ids
func (r *RiderRepo) ListRidersByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*models.Rider, error) {
	riders := []*models.Rider{}
	if len(ids) == 0 {
		return riders, nil
	}

	query, args, err := sqlx.In(`SELECT `+riderColumns+` FROM riders WHERE company_id = ? AND id IN (?)`, companyID, ids)
	if err != nil {
		return nil, apperror.Internal("failed to build rider query", err)
	}
	if err := r.db.SelectContext(ctx, &riders, r.db.Rebind(query), args...); err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	return riders, nil
}

// CreateRider inserts a rider. A phone already used in the company is a Conflict.
func (r *RiderRepo) CreateRider(ctx context.Context, rider *models.Rider) error {
	query := `
		INSERT INTO riders (id, company_id, name, phone, email, vehicle_type, status,
			external_id, created_at, updated_at)
		VALUES (:id, :company_id, :name, :phone, :email, :vehicle_type, :status,
			:external_id, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rider); err != nil {
		return database.TranslateError(err, "rider")
	}
	return nil
}

// GetRider retrieves a rider of a company
func (r *RiderRepo) GetRider(ctx context.Context, companyID, id uuid.UUID) (*models.Rider, error) {
	var rider models.Rider
	query := `SELECT ` + riderColumns + ` FROM riders WHERE id = $1 AND company_id = $2`
	if err := r.db.GetContext(ctx, &rider, query, id, companyID); err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	return &rider, nil
}

// GetRiderByExternalID retrieves a rider by its partner id
func (r *RiderRepo) GetRiderByExternalID(ctx context.Context, companyID uuid.UUID, externalID string) (*models.Rider, error) {
	var rider models.Rider
	query := `SELECT ` + riderColumns + ` FROM riders WHERE company_id = $1 AND external_id = $2`
	if err := r.db.GetContext(ctx, &rider, query, companyID, externalID); err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	return &rider, nil
}

// UpdateRider saves the profile fields of a rider
func (r *RiderRepo) UpdateRider(ctx context.Context, rider *models.Rider) error {
	query := `
		UPDATE riders
		SET name = :name, phone = :phone, email = :email, vehicle_type = :vehicle_type,
			status = :status, external_id = :external_id, updated_at = :updated_at
		WHERE id = :id AND company_id = :company_id
	`
	result, err := r.db.NamedExecContext(ctx, query, rider)
	if err != nil {
		return database.TranslateError(err, "rider")
	}
	return database.ExpectRow(result, "rider")
}

// DeleteRider removes a rider of a company
func (r *RiderRepo) DeleteRider(ctx context.Context, companyID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM riders WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return database.TranslateError(err, "rider")
	}
	return database.ExpectRow(result, "rider")
}

// UpdateStatus sets the rider status and returns the updated row
func (r *RiderRepo) UpdateStatus(ctx context.Context, companyID, id uuid.UUID, status models.RiderStatus) (*models.Rider, error) {
	query := `
		UPDATE riders SET status = $3, updated_at = $4
		WHERE id = $1 AND company_id = $2
		RETURNING ` + riderColumns

	var rider models.Rider
	if err := r.db.GetContext(ctx, &rider, query, id, companyID, status, models.Now()); err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	return &rider, nil
}

// UpdateLocation stores a position report. An offline rider becomes active
// in the same statement.
func (r *RiderRepo) UpdateLocation(ctx context.Context, companyID, id uuid.UUID, loc models.LocationUpdate, geohash string, seenAt time.Time) (*models.Rider, error) {
	query := `
		UPDATE riders
		SET latitude = $3, longitude = $4, geohash = $5,
			battery_level = COALESCE($6, battery_level),
			status = CASE WHEN status = 'offline' THEN 'active' ELSE status END,
			last_seen = $7, updated_at = $7
		WHERE id = $1 AND company_id = $2
		RETURNING ` + riderColumns

	var rider models.Rider
	err := r.db.GetContext(ctx, &rider, query, id, companyID, loc.Latitude, loc.Longitude, geohash, loc.BatteryLevel, seenAt)
	if err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	return &rider, nil
}

// UpsertByExternalID inserts or updates a partner rider keyed by external id
// and reports whether a row was inserted.
func (r *RiderRepo) UpsertByExternalID(ctx context.Context, rider *models.Rider) (bool, error) {
	query := `
		INSERT INTO riders (id, company_id, name, phone, email, vehicle_type, status,
			external_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (company_id, external_id) WHERE external_id IS NOT NULL
		DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone, email = EXCLUDED.email,
			vehicle_type = EXCLUDED.vehicle_type, updated_at = EXCLUDED.updated_at
		RETURNING id, (xmax = 0) AS inserted
	`

	var row struct {
		ID       uuid.UUID `db:"id"`
		Inserted bool      `db:"inserted"`
	}
	err := r.db.GetContext(ctx, &row, query, rider.ID, rider.CompanyID, rider.Name, rider.Phone,
		rider.Email, rider.VehicleType, rider.Status, rider.ExternalID, rider.CreatedAt)
	if err != nil {
		return false, database.TranslateError(err, "rider")
	}
	rider.ID = row.ID
	return row.Inserted, nil
}
