package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// TenantRepo implements tenants.TenantRepo over PostgreSQL
type TenantRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTenantRepo creates a new tenant repository instance
func NewTenantRepo(cfg *models.Config, db *sqlx.DB) *TenantRepo {
	return &TenantRepo{
		cfg: cfg,
		db:  db,
	}
}
