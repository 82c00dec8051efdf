package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const integrationColumns = `id, company_id, type, name, base_url, api_key, api_secret, webhook_secret,
	sync_riders, sync_orders, sync_customers, is_active, last_sync_at, created_at, updated_at`

// ListIntegrations returns the integrations of a company, newest first
func (r *TenantRepo) ListIntegrations(ctx context.Context, companyID uuid.UUID) ([]models.ExternalIntegration, error) {
	query := `SELECT ` + integrationColumns + ` FROM external_integrations
		WHERE company_id = $1 ORDER BY created_at DESC`

	integrations := []models.ExternalIntegration{}
	if err := r.db.SelectContext(ctx, &integrations, query, companyID); err != nil {
		return nil, database.TranslateError(err, "integration")
	}
	return integrations, nil
}

// CreateIntegration inserts a partner integration
func (r *TenantRepo) CreateIntegration(ctx context.Context, integration *models.ExternalIntegration) error {
	query := `
		INSERT INTO external_integrations (id, company_id, type, name, base_url, api_key, api_secret,
			webhook_secret, sync_riders, sync_orders, sync_customers, is_active, created_at, updated_at)
		VALUES (:id, :company_id, :type, :name, :base_url, :api_key, :api_secret,
			:webhook_secret, :sync_riders, :sync_orders, :sync_customers, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, integration); err != nil {
		return database.TranslateError(err, "integration")
	}
	return nil
}

// GetIntegration retrieves one integration of a company
func (r *TenantRepo) GetIntegration(ctx context.Context, companyID, id uuid.UUID) (*models.ExternalIntegration, error) {
	query := `SELECT ` + integrationColumns + ` FROM external_integrations
		WHERE id = $1 AND company_id = $2`

	var integration models.ExternalIntegration
	if err := r.db.GetContext(ctx, &integration, query, id, companyID); err != nil {
		return nil, database.TranslateError(err, "integration")
	}
	return &integration, nil
}

// UpdateIntegration saves every mutable integration column
func (r *TenantRepo) UpdateIntegration(ctx context.Context, integration *models.ExternalIntegration) error {
	query := `
		UPDATE external_integrations
		SET type = :type, name = :name, base_url = :base_url, api_key = :api_key,
			api_secret = :api_secret, webhook_secret = :webhook_secret,
			sync_riders = :sync_riders, sync_orders = :sync_orders, sync_customers = :sync_customers,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id AND company_id = :company_id
	`
	result, err := r.db.NamedExecContext(ctx, query, integration)
	if err != nil {
		return database.TranslateError(err, "integration")
	}
	return database.ExpectRow(result, "integration")
}

// DeleteIntegration removes an integration of a company
func (r *TenantRepo) DeleteIntegration(ctx context.Context, companyID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM external_integrations WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return database.TranslateError(err, "integration")
	}
	return database.ExpectRow(result, "integration")
}
