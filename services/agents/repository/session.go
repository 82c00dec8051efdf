package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const sessionColumns = `id, session_token, rider_id, company_id, device_id, device_type, device_model,
	app_version, push_token, is_active, expires_at, last_active, created_at`

// CreateSession inserts a session
func (r *AgentRepo) CreateSession(ctx context.Context, session *models.AgentSession) error {
	query := `
		INSERT INTO agent_sessions (` + sessionColumns + `)
		VALUES (:id, :session_token, :rider_id, :company_id, :device_id, :device_type, :device_model,
			:app_version, :push_token, :is_active, :expires_at, :last_active, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return database.TranslateError(err, "session")
	}
	return nil
}

// GetActiveSession returns the active session with token whose rider still
// exists. Expiry is left to the caller.
func (r *AgentRepo) GetActiveSession(ctx context.Context, token string) (*models.AgentSession, error) {
	query := `
		SELECT s.id, s.session_token, s.rider_id, s.company_id, s.device_id, s.device_type, s.device_model,
			s.app_version, s.push_token, s.is_active, s.expires_at, s.last_active, s.created_at
		FROM agent_sessions s
		JOIN riders r ON r.id = s.rider_id AND r.company_id = s.company_id
		WHERE s.session_token = $1 AND s.is_active = true
		LIMIT 1
	`
	var session models.AgentSession
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		return nil, database.TranslateError(err, "session")
	}
	return &session, nil
}

// TouchSession refreshes last_active
func (r *AgentRepo) TouchSession(ctx context.Context, sessionID uuid.UUID, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE agent_sessions SET last_active = $2 WHERE id = $1`, sessionID, at)
	return database.TranslateError(err, "session")
}

// DeactivateSession ends one session
func (r *AgentRepo) DeactivateSession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE agent_sessions SET is_active = false WHERE id = $1`, sessionID)
	return database.TranslateError(err, "session")
}

// DeactivateDeviceSessions ends every active session bound to the device
func (r *AgentRepo) DeactivateDeviceSessions(ctx context.Context, deviceID string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE agent_sessions SET is_active = false WHERE device_id = $1 AND is_active = true`, deviceID)
	if err != nil {
		return 0, database.TranslateError(err, "session")
	}
	n, err := result.RowsAffected()
	return n, database.TranslateError(err, "session")
}

// DeactivateRiderSessions ends the active sessions of a rider, or only
// sessionID when given
func (r *AgentRepo) DeactivateRiderSessions(ctx context.Context, riderID uuid.UUID, sessionID *uuid.UUID) (int64, error) {
	query := `UPDATE agent_sessions SET is_active = false WHERE rider_id = $1 AND is_active = true`
	args := []interface{}{riderID}
	if sessionID != nil {
		query += ` AND id = $2`
		args = append(args, *sessionID)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, database.TranslateError(err, "session")
	}
	n, err := result.RowsAffected()
	return n, database.TranslateError(err, "session")
}

// ListRiderSessions returns the sessions of a rider, active first
func (r *AgentRepo) ListRiderSessions(ctx context.Context, riderID uuid.UUID) ([]*models.AgentSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM agent_sessions WHERE rider_id = $1
		ORDER BY is_active DESC, created_at DESC LIMIT 100`

	sessions := []*models.AgentSession{}
	if err := r.db.SelectContext(ctx, &sessions, query, riderID); err != nil {
		return nil, database.TranslateError(err, "session")
	}
	return sessions, nil
}
