package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// GetAnalytics aggregates the orders and riders of a company. Deliveries
// stamped at or after since count as delivered today.
func (r *OrderRepo) GetAnalytics(ctx context.Context, companyID uuid.UUID, since time.Time) (*models.Analytics, error) {
	analytics := &models.Analytics{
		OrdersByStatus: map[models.OrderStatus]int{},
		RidersByStatus: map[models.RiderStatus]int{},
	}

	var orderCounts []models.StatusCount
	err := r.db.SelectContext(ctx, &orderCounts, `
		SELECT status, COUNT(*) AS count FROM orders WHERE company_id = $1 GROUP BY status
	`, companyID)
	if err != nil {
		return nil, database.TranslateError(err, "order")
	}
	for _, row := range orderCounts {
		analytics.OrdersByStatus[models.OrderStatus(row.Status)] = row.Count
		analytics.TotalOrders += row.Count
	}

	var delivered struct {
		Today   int             `db:"delivered_today"`
		Revenue decimal.Decimal `db:"revenue"`
	}
	err = r.db.GetContext(ctx, &delivered, `
		SELECT
			COUNT(*) FILTER (WHERE delivered_at >= $2) AS delivered_today,
			COALESCE(SUM(total), 0) AS revenue
		FROM orders
		WHERE company_id = $1 AND status = 'delivered'
	`, companyID, since)
	if err != nil {
		return nil, database.TranslateError(err, "order")
	}
	analytics.DeliveredToday = delivered.Today
	analytics.DeliveredRevenue = delivered.Revenue

	var riderCounts []models.StatusCount
	err = r.db.SelectContext(ctx, &riderCounts, `
		SELECT status, COUNT(*) AS count FROM riders WHERE company_id = $1 GROUP BY status
	`, companyID)
	if err != nil {
		return nil, database.TranslateError(err, "rider")
	}
	for _, row := range riderCounts {
		analytics.RidersByStatus[models.RiderStatus(row.Status)] = row.Count
	}
	return analytics, nil
}
