package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateIntegration_MasksSecrets(t *testing.T) {
	uc, mockRepo := setupTenantUC(t)
	companyID := uuid.New()

	mockRepo.EXPECT().CreateIntegration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, integration *models.ExternalIntegration) error {
			assert.Equal(t, companyID, integration.CompanyID)
			assert.Equal(t, "shpat_secret1234", *integration.APIKey)
			return nil
		})

	integration, err := uc.CreateIntegration(context.Background(), companyID, &models.IntegrationRequest{
		Type:   strPtr("Shopify"),
		Name:   strPtr("Main store"),
		APIKey: strPtr("shpat_secret1234"),
	})
	require.NoError(t, err)
	assert.Equal(t, "shopify", integration.Type)
	assert.Equal(t, "****1234", *integration.APIKey)
	assert.True(t, integration.IsActive)
}

func TestCreateIntegration_Validation(t *testing.T) {
	uc, _ := setupTenantUC(t)

	_, err := uc.CreateIntegration(context.Background(), uuid.New(), &models.IntegrationRequest{
		Type: strPtr("magento"), Name: strPtr("Store"),
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = uc.CreateIntegration(context.Background(), uuid.New(), &models.IntegrationRequest{
		Type: strPtr("custom"),
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestUpdateIntegration(t *testing.T) {
	uc, mockRepo := setupTenantUC(t)
	companyID, id := uuid.New(), uuid.New()
	existing := &models.ExternalIntegration{
		ID: id, CompanyID: companyID, Type: "custom", Name: "ERP",
		APISecret: strPtr("old-secret-9999"), IsActive: true,
	}

	mockRepo.EXPECT().GetIntegration(gomock.Any(), companyID, id).Return(existing, nil)
	mockRepo.EXPECT().UpdateIntegration(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.UpdateIntegration(context.Background(), companyID, id, &models.IntegrationRequest{
		IsActive: boolPtr(false),
		BaseURL:  strPtr("https://erp.acme.test"),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "https://erp.acme.test", *updated.BaseURL)
	assert.Equal(t, "****9999", *updated.APISecret)
}

func TestListIntegrations_OtherTenantIsEmpty(t *testing.T) {
	uc, mockRepo := setupTenantUC(t)
	companyID := uuid.New()

	mockRepo.EXPECT().ListIntegrations(gomock.Any(), companyID).Return([]models.ExternalIntegration{}, nil)

	integrations, err := uc.ListIntegrations(context.Background(), companyID)
	require.NoError(t, err)
	assert.Empty(t, integrations)
}

func boolPtr(b bool) *bool { return &b }
