package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

var integrationTypes = map[string]bool{
	"shopify":     true,
	"woocommerce": true,
	"custom":      true,
}

// ListIntegrations returns the tenant integrations with secrets masked
func (uc *TenantUC) ListIntegrations(ctx context.Context, companyID uuid.UUID) ([]models.ExternalIntegration, error) {
	integrations, err := uc.tenantRepo.ListIntegrations(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for i := range integrations {
		integrations[i] = integrations[i].Masked()
	}
	return integrations, nil
}

// CreateIntegration registers a partner integration
func (uc *TenantUC) CreateIntegration(ctx context.Context, companyID uuid.UUID, req *models.IntegrationRequest) (*models.ExternalIntegration, error) {
	if req.Type == nil || !integrationTypes[strings.ToLower(strings.TrimSpace(*req.Type))] {
		return nil, apperror.Validation("type must be one of shopify, woocommerce, custom")
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, apperror.Validation("name is required")
	}

	now := models.Now()
	integration := &models.ExternalIntegration{
		ID:        uuid.New(),
		CompanyID: companyID,
		Type:      strings.ToLower(strings.TrimSpace(*req.Type)),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyIntegration(integration, req); err != nil {
		return nil, err
	}

	if err := uc.tenantRepo.CreateIntegration(ctx, integration); err != nil {
		return nil, err
	}
	masked := integration.Masked()
	return &masked, nil
}

// GetIntegration returns one integration with secrets masked
func (uc *TenantUC) GetIntegration(ctx context.Context, companyID, integrationID uuid.UUID) (*models.ExternalIntegration, error) {
	integration, err := uc.tenantRepo.GetIntegration(ctx, companyID, integrationID)
	if err != nil {
		return nil, err
	}
	masked := integration.Masked()
	return &masked, nil
}

// UpdateIntegration applies a partial integration update
func (uc *TenantUC) UpdateIntegration(ctx context.Context, companyID, integrationID uuid.UUID, req *models.IntegrationRequest) (*models.ExternalIntegration, error) {
	integration, err := uc.tenantRepo.GetIntegration(ctx, companyID, integrationID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		integrationType := strings.ToLower(strings.TrimSpace(*req.Type))
		if !integrationTypes[integrationType] {
			return nil, apperror.Validation("type must be one of shopify, woocommerce, custom")
		}
		integration.Type = integrationType
	}
	if err := applyIntegration(integration, req); err != nil {
		return nil, err
	}
	integration.UpdatedAt = models.Now()

	if err := uc.tenantRepo.UpdateIntegration(ctx, integration); err != nil {
		return nil, err
	}
	masked := integration.Masked()
	return &masked, nil
}

// DeleteIntegration removes an integration
func (uc *TenantUC) DeleteIntegration(ctx context.Context, companyID, integrationID uuid.UUID) error {
	return uc.tenantRepo.DeleteIntegration(ctx, companyID, integrationID)
}

func applyIntegration(integration *models.ExternalIntegration, req *models.IntegrationRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return apperror.Validation("name cannot be empty")
		}
		integration.Name = name
	}
	if req.BaseURL != nil {
		if *req.BaseURL != "" && !utils.IsValidHTTPURL(*req.BaseURL) {
			return apperror.Validation("base_url must be an http(s) URL")
		}
		integration.BaseURL = database.NullIfEmpty(req.BaseURL)
	}
	if req.APIKey != nil {
		integration.APIKey = database.NullIfEmpty(req.APIKey)
	}
	if req.APISecret != nil {
		integration.APISecret = database.NullIfEmpty(req.APISecret)
	}
	if req.WebhookSecret != nil {
		integration.WebhookSecret = database.NullIfEmpty(req.WebhookSecret)
	}
	if req.SyncRiders != nil {
		integration.SyncRiders = *req.SyncRiders
	}
	if req.SyncOrders != nil {
		integration.SyncOrders = *req.SyncOrders
	}
	if req.SyncCustomers != nil {
		integration.SyncCustomers = *req.SyncCustomers
	}
	if req.IsActive != nil {
		integration.IsActive = *req.IsActive
	}
	return nil
}
