package tenants

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/tenants TenantUC

// TenantUC represents the company account usecase interface
type TenantUC interface {
	// account
	Signup(ctx context.Context, req *models.SignupRequest) (*models.CompanyAuthResponse, error)
	Login(ctx context.Context, req *models.CompanyLoginRequest) (*models.CompanyAuthResponse, error)
	AuthenticateAPIKey(ctx context.Context, apiKey string) (uuid.UUID, error)
	GetCompanyByAPIKey(ctx context.Context, apiKey string) (*models.Company, error)

	// company profile
	GetCompany(ctx context.Context, companyID uuid.UUID) (*models.Company, error)
	UpdateCompany(ctx context.Context, companyID uuid.UUID, req *models.CompanyUpdate) (*models.Company, error)
	RegenerateKey(ctx context.Context, companyID uuid.UUID, regenerateCode bool) (*models.RegenerateKeyResponse, error)

	// settings
	GetSettings(ctx context.Context, companyID uuid.UUID) (*models.SettingsResponse, error)
	UpdateSettings(ctx context.Context, companyID uuid.UUID, req *models.SettingsUpdate) (*models.SettingsResponse, error)
	UpdateMapSettings(ctx context.Context, companyID uuid.UUID, patch []byte) (*models.MapSettings, error)
	UpdateNotificationSettings(ctx context.Context, companyID uuid.UUID, patch []byte) (*models.NotificationSettings, error)

	// integrations
	ListIntegrations(ctx context.Context, companyID uuid.UUID) ([]models.ExternalIntegration, error)
	CreateIntegration(ctx context.Context, companyID uuid.UUID, req *models.IntegrationRequest) (*models.ExternalIntegration, error)
	GetIntegration(ctx context.Context, companyID, integrationID uuid.UUID) (*models.ExternalIntegration, error)
	UpdateIntegration(ctx context.Context, companyID, integrationID uuid.UUID, req *models.IntegrationRequest) (*models.ExternalIntegration, error)
	DeleteIntegration(ctx context.Context, companyID, integrationID uuid.UUID) error
}
