package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const companyColumns = `id, name, email, password_hash, api_key, webhook_secret, company_code,
	settings, plan, is_active, created_at, updated_at`

// CreateCompany inserts a new company. Duplicate email, API key or company
// code surface as Conflict.
func (r *TenantRepo) CreateCompany(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (id, name, email, password_hash, api_key, webhook_secret,
			company_code, settings, plan, is_active, created_at, updated_at)
		VALUES (:id, :name, :email, :password_hash, :api_key, :webhook_secret,
			:company_code, :settings, :plan, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, company); err != nil {
		return database.TranslateError(err, "company")
	}
	return nil
}

// GetCompanyByID retrieves a company by id
func (r *TenantRepo) GetCompanyByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return r.getCompanyBy(ctx, "id = $1", id)
}

// GetCompanyByEmail retrieves a company by its login email
func (r *TenantRepo) GetCompanyByEmail(ctx context.Context, email string) (*models.Company, error) {
	return r.getCompanyBy(ctx, "lower(email) = lower($1)", email)
}

// GetActiveCompanyByAPIKey resolves an API key to its active company
func (r *TenantRepo) GetActiveCompanyByAPIKey(ctx context.Context, apiKey string) (*models.Company, error) {
	return r.getCompanyBy(ctx, "api_key = $1 AND is_active = true", apiKey)
}

func (r *TenantRepo) getCompanyBy(ctx context.Context, condition string, arg interface{}) (*models.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE %s LIMIT 1`, companyColumns, condition)

	var company models.Company
	if err := r.db.GetContext(ctx, &company, query, arg); err != nil {
		return nil, database.TranslateError(err, "company")
	}
	return &company, nil
}

// UpdateCompany saves the editable profile fields
func (r *TenantRepo) UpdateCompany(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies
		SET name = :name, email = :email, plan = :plan, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, company)
	if err != nil {
		return database.TranslateError(err, "company")
	}
	return database.ExpectRow(result, "company")
}

// UpdateCredentials replaces the API key and company code in one statement,
// so the previous key stops resolving as soon as it commits.
func (r *TenantRepo) UpdateCredentials(ctx context.Context, id uuid.UUID, apiKey, companyCode string) error {
	query := `
		UPDATE companies
		SET api_key = $2, company_code = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, apiKey, companyCode, models.Now())
	if err != nil {
		return database.TranslateError(err, "company")
	}
	return database.ExpectRow(result, "company")
}

// UpdateSettings saves the settings document and webhook secret
func (r *TenantRepo) UpdateSettings(ctx context.Context, id uuid.UUID, settings models.CompanySettings, webhookSecret string) error {
	query := `
		UPDATE companies
		SET settings = $2, webhook_secret = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, settings, webhookSecret, models.Now())
	if err != nil {
		return database.TranslateError(err, "company")
	}
	return database.ExpectRow(result, "company")
}
