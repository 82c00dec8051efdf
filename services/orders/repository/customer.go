package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// FindOrCreateCustomer returns the customer with the same phone in the
// company, creating it when missing. An existing customer keeps its name and
// only gains contact details it did not have.
func (r *OrderRepo) FindOrCreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	query := `
		INSERT INTO customers (id, company_id, name, phone, email, address, created_at, updated_at)
		VALUES (:id, :company_id, :name, :phone, :email, :address, :created_at, :updated_at)
		ON CONFLICT (company_id, phone) DO UPDATE
		SET email = COALESCE(customers.email, EXCLUDED.email),
			address = COALESCE(customers.address, EXCLUDED.address)
		RETURNING id, company_id, name, phone, email, address, created_at, updated_at
	`
	query, args, err := sqlx.Named(query, customer)
	if err != nil {
		return nil, apperror.Internal("failed to build customer upsert", err)
	}

	var saved models.Customer
	if err := r.db.GetContext(ctx, &saved, r.db.Rebind(query), args...); err != nil {
		return nil, database.TranslateError(err, "customer")
	}
	return &saved, nil
}

// RiderExists reports whether the rider belongs to the company
func (r *OrderRepo) RiderExists(ctx context.Context, companyID, riderID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM riders WHERE id = $1 AND company_id = $2)`, riderID, companyID)
	if err != nil {
		return false, database.TranslateError(err, "rider")
	}
	return exists, nil
}

// GetWebhookTarget returns the callback URL and signing secret of a company
func (r *OrderRepo) GetWebhookTarget(ctx context.Context, companyID uuid.UUID) (models.WebhookTarget, error) {
	var target models.WebhookTarget
	err := r.db.GetContext(ctx, &target, `
		SELECT COALESCE(settings->>'callback_url', '') AS url, webhook_secret AS secret
		FROM companies WHERE id = $1
	`, companyID)
	if err != nil {
		return models.WebhookTarget{}, database.TranslateError(err, "company")
	}
	return target, nil
}
