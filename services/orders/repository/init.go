package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// OrderRepo implements orders.OrderRepo over PostgreSQL
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepo creates a new order repository instance
func NewOrderRepo(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}
