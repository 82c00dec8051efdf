package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const credentialColumns = `id, rider_id, pin_code, login_attempts, locked_until, last_login, is_active,
	created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindCompanyForLogin resolves the code a rider types at login. An exact
// company code wins; otherwise the code may be a prefix of the company code
// or of the API key body after "tk_".
func (r *AgentRepo) FindCompanyForLogin(ctx context.Context, code string) (*models.Company, error) {
	code = strings.TrimSpace(code)
	escaped := likeEscaper.Replace(code)

	query := `
		SELECT id, name, email, password_hash, api_key, webhook_secret, company_code,
			settings, plan, is_active, created_at, updated_at
		FROM companies
		WHERE is_active = true
			AND (company_code = $1
				OR company_code LIKE $2 ESCAPE '\'
				OR api_key LIKE $3 ESCAPE '\')
		ORDER BY (company_code = $1) DESC, created_at ASC
		LIMIT 1
	`
	var company models.Company
	err := r.db.GetContext(ctx, &company, query,
		strings.ToUpper(code),
		strings.ToUpper(escaped)+"%",
		constants.APIKeyPrefix+strings.ToLower(escaped)+"%",
	)
	if err != nil {
		return nil, database.TranslateError(err, "company")
	}
	return &company, nil
}

// FindRiderByPhone returns the first rider of the company with the phone
func (r *AgentRepo) FindRiderByPhone(ctx context.Context, companyID uuid.UUID, phone string) (*models.Rider, error) {
	query := `
		SELECT id, company_id, name, phone, email, vehicle_type, status, latitude, longitude,
			geohash, battery_level, last_seen, external_id, created_at, updated_at
		FROM riders
		WHERE company_id = $1 AND phone = $2
		ORDER BY created_at ASC
		LIMIT 1
	`
	var rider models.Rider
	if err := r.db.GetContext(ctx, &rider, query, companyID, phone); err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	return &rider, nil
}

// GetActiveCredential returns the active credential of a rider
func (r *AgentRepo) GetActiveCredential(ctx context.Context, riderID uuid.UUID) (*models.RiderCredential, error) {
	query := `SELECT ` + credentialColumns + ` FROM rider_credentials WHERE rider_id = $1 AND is_active = true LIMIT 1`

	var credential models.RiderCredential
	if err := r.db.GetContext(ctx, &credential, query, riderID); err != nil {
		return nil, database.TranslateError(err, "credential")
	}
	return &credential, nil
}

// CreateCredential inserts the first credential of a rider. A concurrent
// first login that already created one surfaces as Conflict.
func (r *AgentRepo) CreateCredential(ctx context.Context, credential *models.RiderCredential) error {
	query := `
		INSERT INTO rider_credentials (` + credentialColumns + `)
		VALUES (:id, :rider_id, :pin_code, :login_attempts, :locked_until, :last_login, :is_active,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, credential); err != nil {
		return database.TranslateError(err, "credential")
	}
	return nil
}

// UpsertCredential sets the PIN of the active credential, clearing failed
// attempts and any lockout
func (r *AgentRepo) UpsertCredential(ctx context.Context, credential *models.RiderCredential) error {
	query := `
		INSERT INTO rider_credentials (` + credentialColumns + `)
		VALUES (:id, :rider_id, :pin_code, 0, NULL, NULL, true, :created_at, :updated_at)
		ON CONFLICT (rider_id) WHERE is_active DO UPDATE
		SET pin_code = EXCLUDED.pin_code, login_attempts = 0, locked_until = NULL,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, credential); err != nil {
		return database.TranslateError(err, "credential")
	}
	return nil
}

// RecordFailedLogin counts a failed PIN attempt and, in the same statement,
// locks the credential until lockUntil once maxAttempts is reached
func (r *AgentRepo) RecordFailedLogin(ctx context.Context, credentialID uuid.UUID, maxAttempts int, lockUntil, at time.Time) (*models.RiderCredential, error) {
	query := `
		UPDATE rider_credentials
		SET login_attempts = login_attempts + 1,
			locked_until = CASE WHEN login_attempts + 1 >= $2 THEN $3 ELSE locked_until END,
			updated_at = $4
		WHERE id = $1
		RETURNING ` + credentialColumns

	var credential models.RiderCredential
	if err := r.db.GetContext(ctx, &credential, query, credentialID, maxAttempts, lockUntil, at); err != nil {
		return nil, database.TranslateError(err, "credential")
	}
	return &credential, nil
}

// RecordSuccessfulLogin clears failed attempts and stamps the login time
func (r *AgentRepo) RecordSuccessfulLogin(ctx context.Context, credentialID uuid.UUID, at time.Time) error {
	query := `
		UPDATE rider_credentials
		SET login_attempts = 0, locked_until = NULL, last_login = $2, updated_at = $2
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, credentialID, at)
	if err != nil {
		return database.TranslateError(err, "credential")
	}
	return database.ExpectRow(result, "credential")
}

// MarkRiderOnline sets the rider active and stamps last_seen
func (r *AgentRepo) MarkRiderOnline(ctx context.Context, riderID uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE riders SET status = $2, last_seen = $3, updated_at = $3 WHERE id = $1`,
		riderID, models.RiderStatusActive, at)
	if err != nil {
		return database.TranslateError(err, "rider")
	}
	return database.ExpectRow(result, "rider")
}

// UpsertDevice records the device a rider logged in from
func (r *AgentRepo) UpsertDevice(ctx context.Context, device *models.AgentDevice) error {
	query := `
		INSERT INTO agent_devices (rider_id, device_id, device_type, device_model, app_version, push_token, last_seen)
		VALUES (:rider_id, :device_id, :device_type, :device_model, :app_version, :push_token, :last_seen)
		ON CONFLICT (rider_id, device_id) DO UPDATE
		SET device_type = COALESCE(EXCLUDED.device_type, agent_devices.device_type),
			device_model = COALESCE(EXCLUDED.device_model, agent_devices.device_model),
			app_version = COALESCE(EXCLUDED.app_version, agent_devices.app_version),
			push_token = COALESCE(EXCLUDED.push_token, agent_devices.push_token),
			last_seen = EXCLUDED.last_seen
	`
	if _, err := r.db.NamedExecContext(ctx, query, device); err != nil {
		return database.TranslateError(err, "device")
	}
	return nil
}

// LogActivity appends an audit entry
func (r *AgentRepo) LogActivity(ctx context.Context, entry *models.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, rider_id, company_id, action, details, created_at)
		VALUES (:id, :rider_id, :company_id, :action, :details, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return database.TranslateError(err, "activity log")
	}
	return nil
}

