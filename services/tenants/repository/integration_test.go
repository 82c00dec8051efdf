package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var integrationRowColumns = []string{"id", "company_id", "type", "name", "base_url", "api_key", "api_secret",
	"webhook_secret", "sync_riders", "sync_orders", "sync_customers", "is_active", "last_sync_at",
	"created_at", "updated_at"}

func TestListIntegrations(t *testing.T) {
	repo, mock, cleanup := setupTenantRepoTest(t)
	defer cleanup()

	companyID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(integrationRowColumns).
		AddRow(uuid.New().String(), companyID.String(), "shopify", "Main store", nil, "shpat_123456", nil,
			"shpss_abcdef", false, true, true, true, nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM external_integrations WHERE company_id = \\$1").
		WithArgs(companyID).
		WillReturnRows(rows)

	integrations, err := repo.ListIntegrations(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, integrations, 1)
	assert.Equal(t, "shopify", integrations[0].Type)
	assert.Equal(t, "shpat_123456", *integrations[0].APIKey)
	assert.Nil(t, integrations[0].BaseURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIntegration_OtherTenant(t *testing.T) {
	repo, mock, cleanup := setupTenantRepoTest(t)
	defer cleanup()

	companyID, id := uuid.New(), uuid.New()
	mock.ExpectExec("DELETE FROM external_integrations WHERE id = \\$1 AND company_id = \\$2").
		WithArgs(id, companyID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteIntegration(context.Background(), companyID, id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
