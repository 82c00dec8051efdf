package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const orderColumns = `id, company_id, customer_id, rider_id, external_id, order_number, pickup_address,
	delivery_address, items, subtotal, delivery_fee, total, currency, status, payment_status,
	payment_method, notes, scheduled_at, picked_up_at, delivered_at, created_at, updated_at`

// ListOrders returns the orders of a company, newest first
func (r *OrderRepo) ListOrders(ctx context.Context, companyID uuid.UUID, filter models.OrderFilter) ([]*models.Order, error) {
	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.RiderID != nil {
		args = append(args, *filter.RiderID)
		conditions = append(conditions, fmt.Sprintf("rider_id = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s ORDER BY created_at DESC`,
		orderColumns, strings.Join(conditions, " AND "))
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	orders := []*models.Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, database.TranslateError(err, "order")
	}
	return orders, nil
}

// ListRiderOrders returns the orders assigned to a rider among statuses
func (r *OrderRepo) ListRiderOrders(ctx context.Context, companyID, riderID uuid.UUID, statuses []models.OrderStatus) ([]*models.Order, error) {
	orders := []*models.Order{}
	if len(statuses) == 0 {
		return orders, nil
	}

	query, args, err := sqlx.In(`SELECT `+orderColumns+` FROM orders
		WHERE company_id = ? AND rider_id = ? AND status IN (?)
		ORDER BY scheduled_at ASC NULLS LAST, created_at ASC`, companyID, riderID, statuses)
	if err != nil {
		return nil, apperror.Internal("failed to build order query", err)
	}
	if err := r.db.SelectContext(ctx, &orders, r.db.Rebind(query), args...); err != nil {
		return nil, database.TranslateError(err, "order")
	}
	return orders, nil
}

// CreateOrder inserts an order
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES (:id, :company_id, :customer_id, :rider_id, :external_id, :order_number, :pickup_address,
			:delivery_address, :items, :subtotal, :delivery_fee, :total, :currency, :status, :payment_status,
			:payment_method, :notes, :scheduled_at, :picked_up_at, :delivered_at, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, order); err != nil {
		return database.TranslateError(err, "order")
	}
	return nil
}

// GetOrder retrieves an order of a company
func (r *OrderRepo) GetOrder(ctx context.Context, companyID, id uuid.UUID) (*models.Order, error) {
	return r.getOrderBy(ctx, "id = $1 AND company_id = $2", id, companyID)
}

// GetRiderOrder retrieves an order only when it belongs to both the rider
// and the company
func (r *OrderRepo) GetRiderOrder(ctx context.Context, companyID, riderID, id uuid.UUID) (*models.Order, error) {
	return r.getOrderBy(ctx, "id = $1 AND company_id = $2 AND rider_id = $3", id, companyID, riderID)
}

// GetOrderByExternalID retrieves an order by its partner id
func (r *OrderRepo) GetOrderByExternalID(ctx context.Context, companyID uuid.UUID, externalID string) (*models.Order, error) {
	return r.getOrderBy(ctx, "external_id = $1 AND company_id = $2", externalID, companyID)
}

func (r *OrderRepo) getOrderBy(ctx context.Context, condition string, args ...interface{}) (*models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s LIMIT 1`, orderColumns, condition)

	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, args...); err != nil {
		return nil, database.TranslateError(err, "order")
	}
	return &order, nil
}

// UpdateOrder saves the mutable fields of an order
func (r *OrderRepo) UpdateOrder(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders
		SET rider_id = :rider_id, pickup_address = :pickup_address, delivery_address = :delivery_address,
			status = :status, payment_status = :payment_status, notes = :notes, scheduled_at = :scheduled_at,
			picked_up_at = :picked_up_at, delivered_at = :delivered_at, updated_at = :updated_at
		WHERE id = :id AND company_id = :company_id
	`
	result, err := r.db.NamedExecContext(ctx, query, order)
	if err != nil {
		return database.TranslateError(err, "order")
	}
	return database.ExpectRow(result, "order")
}

// upsertKeepsStatus is true when a partner refresh must not move the stored
// status: terminal orders stay put and a pending refresh never rewinds.
const upsertKeepsStatus = `(orders.status IN ('delivered', 'failed', 'cancelled') OR EXCLUDED.status = 'pending')`

// UpsertByExternalID inserts a partner order or refreshes the existing one
// with the same external id. order is replaced by the stored row. Reports
// whether a row was inserted.
func (r *OrderRepo) UpsertByExternalID(ctx context.Context, order *models.Order) (bool, error) {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES (:id, :company_id, :customer_id, :rider_id, :external_id, :order_number, :pickup_address,
			:delivery_address, :items, :subtotal, :delivery_fee, :total, :currency, :status, :payment_status,
			:payment_method, :notes, :scheduled_at, :picked_up_at, :delivered_at, :created_at, :updated_at)
		ON CONFLICT (company_id, external_id) WHERE external_id IS NOT NULL DO UPDATE
		SET customer_id = COALESCE(EXCLUDED.customer_id, orders.customer_id),
			delivery_address = EXCLUDED.delivery_address,
			items = EXCLUDED.items,
			subtotal = EXCLUDED.subtotal,
			delivery_fee = EXCLUDED.delivery_fee,
			total = EXCLUDED.total,
			currency = EXCLUDED.currency,
			payment_status = CASE WHEN orders.payment_status = 'completed' THEN orders.payment_status
				ELSE EXCLUDED.payment_status END,
			status = CASE WHEN ` + upsertKeepsStatus + ` THEN orders.status ELSE EXCLUDED.status END,
			picked_up_at = COALESCE(orders.picked_up_at,
				CASE WHEN NOT ` + upsertKeepsStatus + ` THEN EXCLUDED.picked_up_at END),
			delivered_at = COALESCE(orders.delivered_at,
				CASE WHEN NOT ` + upsertKeepsStatus + ` THEN EXCLUDED.delivered_at END),
			updated_at = EXCLUDED.updated_at
		RETURNING ` + orderColumns + `, (xmax = 0) AS inserted
	`
	query, args, err := sqlx.Named(query, order)
	if err != nil {
		return false, apperror.Internal("failed to build order upsert", err)
	}

	var stored struct {
		models.Order
		Inserted bool `db:"inserted"`
	}
	if err := r.db.GetContext(ctx, &stored, r.db.Rebind(query), args...); err != nil {
		return false, database.TranslateError(err, "order")
	}
	*order = stored.Order
	return stored.Inserted, nil
}
