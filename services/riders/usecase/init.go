package usecase

import (
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/riders"
)

const (
	defaultListLimit   = 50
	maxListLimit       = 200
	defaultNearbyLimit = 20
	maxImportRows      = 500
)

// RiderUC implements riders.RiderUC
type RiderUC struct {
	riderRepo riders.RiderRepo
	riderGW   riders.RiderGW
	cfg       *models.Config
	now       func() time.Time
}

// NewRiderUC creates a new rider usecase instance
func NewRiderUC(
	riderRepo riders.RiderRepo,
	riderGW riders.RiderGW,
	cfg *models.Config,
) *RiderUC {
	return &RiderUC{
		riderRepo: riderRepo,
		riderGW:   riderGW,
		cfg:       cfg,
		now:       models.Now,
	}
}

func (uc *RiderUC) onlineWindow() time.Duration {
	minutes := uc.cfg.Agent.OnlineWindowMinute
	if minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}
