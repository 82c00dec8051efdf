package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// AgentRepo implements agents.AgentRepo over PostgreSQL
type AgentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAgentRepo creates a new agent repository instance
func NewAgentRepo(cfg *models.Config, db *sqlx.DB) *AgentRepo {
	return &AgentRepo{
		cfg: cfg,
		db:  db,
	}
}
