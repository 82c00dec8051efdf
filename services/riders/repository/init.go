package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// RiderRepo implements riders.RiderRepo over PostgreSQL
type RiderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRiderRepo creates a new rider repository instance
func NewRiderRepo(cfg *models.Config, db *sqlx.DB) *RiderRepo {
	return &RiderRepo{
		cfg: cfg,
		db:  db,
	}
}
