package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateCustomer_ReturnsExisting(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	companyID := uuid.New()
	existingID := uuid.New()
	now := time.Now()
	input := &models.Customer{ID: uuid.New(), CompanyID: companyID, Name: "New Name", Phone: "+628111"}

	mock.ExpectQuery("INSERT INTO customers (.+) ON CONFLICT \\(company_id, phone\\) DO UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "name", "phone", "email", "address", "created_at", "updated_at"}).
			AddRow(existingID.String(), companyID.String(), "Original", "+628111", nil, "Jl. Lama", now, now))

	customer, err := repo.FindOrCreateCustomer(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, existingID, customer.ID)
	assert.Equal(t, "Original", customer.Name)
	assert.Equal(t, "Jl. Lama", *customer.Address)
}

func TestRiderExists(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()
	companyID, riderID := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT EXISTS").WithArgs(riderID, companyID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.RiderExists(context.Background(), companyID, riderID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetWebhookTarget(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()
	companyID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE\\(settings->>'callback_url', ''\\) AS url, webhook_secret AS secret FROM companies").
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"url", "secret"}).AddRow("https://acme.test/hook", "whsec_1"))

	target, err := repo.GetWebhookTarget(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, models.WebhookTarget{URL: "https://acme.test/hook", Secret: "whsec_1"}, target)
}

func TestGetAnalytics(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()
	companyID := uuid.New()
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS count FROM orders").WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 3).AddRow("delivered", 5))
	mock.ExpectQuery("FILTER \\(WHERE delivered_at >= \\$2\\)").WithArgs(companyID, since).
		WillReturnRows(sqlmock.NewRows([]string{"delivered_today", "revenue"}).AddRow(2, "125000.50"))
	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS count FROM riders").WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("active", 4))

	analytics, err := repo.GetAnalytics(context.Background(), companyID, since)
	require.NoError(t, err)
	assert.Equal(t, 8, analytics.TotalOrders)
	assert.Equal(t, 5, analytics.OrdersByStatus[models.OrderStatusDelivered])
	assert.Equal(t, 2, analytics.DeliveredToday)
	assert.Equal(t, "125000.5", analytics.DeliveredRevenue.String())
	assert.Equal(t, 4, analytics.RidersByStatus[models.RiderStatusActive])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAnalytics_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("FROM orders").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAnalytics(context.Background(), uuid.New(), time.Now())
	assert.True(t, apperror.Is(err, apperror.KindUpstream))
}
