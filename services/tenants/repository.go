package tenants

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/dispatch/services/tenants TenantRepo

// TenantRepo defines the company repository interface
type TenantRepo interface {
	// companies
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompanyByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	GetCompanyByEmail(ctx context.Context, email string) (*models.Company, error)
	GetActiveCompanyByAPIKey(ctx context.Context, apiKey string) (*models.Company, error)
	UpdateCompany(ctx context.Context, company *models.Company) error
	UpdateCredentials(ctx context.Context, id uuid.UUID, apiKey, companyCode string) error
	UpdateSettings(ctx context.Context, id uuid.UUID, settings models.CompanySettings, webhookSecret string) error

	// integrations
	ListIntegrations(ctx context.Context, companyID uuid.UUID) ([]models.ExternalIntegration, error)
	CreateIntegration(ctx context.Context, integration *models.ExternalIntegration) error
	GetIntegration(ctx context.Context, companyID, id uuid.UUID) (*models.ExternalIntegration, error)
	UpdateIntegration(ctx context.Context, integration *models.ExternalIntegration) error
	DeleteIntegration(ctx context.Context, companyID, id uuid.UUID) error
}
