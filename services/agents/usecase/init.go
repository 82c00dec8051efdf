package usecase

import (
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/agents"
	"github.com/piresc/dispatch/services/orders"
	"github.com/piresc/dispatch/services/riders"
)

const (
	defaultSessionTTLDays   = 30
	defaultMaxLoginAttempts = 5
	defaultLockoutMinutes   = 15
)

// AgentUC implements agents.AgentUC
type AgentUC struct {
	agentRepo agents.AgentRepo
	riderUC   riders.RiderUC
	orderUC   orders.OrderUC
	cfg       *models.Config
	now       func() time.Time
}

// NewAgentUC creates a new agent usecase instance
func NewAgentUC(
	agentRepo agents.AgentRepo,
	riderUC riders.RiderUC,
	orderUC orders.OrderUC,
	cfg *models.Config,
) *AgentUC {
	return &AgentUC{
		agentRepo: agentRepo,
		riderUC:   riderUC,
		orderUC:   orderUC,
		cfg:       cfg,
		now:       models.Now,
	}
}

func (uc *AgentUC) sessionTTL() time.Duration {
	days := uc.cfg.Agent.SessionTTLDays
	if days <= 0 {
		days = defaultSessionTTLDays
	}
	return time.Duration(days) * 24 * time.Hour
}

func (uc *AgentUC) maxLoginAttempts() int {
	if uc.cfg.Agent.MaxLoginAttempts <= 0 {
		return defaultMaxLoginAttempts
	}
	return uc.cfg.Agent.MaxLoginAttempts
}

func (uc *AgentUC) lockout() time.Duration {
	minutes := uc.cfg.Agent.LockoutMinutes
	if minutes <= 0 {
		minutes = defaultLockoutMinutes
	}
	return time.Duration(minutes) * time.Minute
}
