package usecase

import (
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/tenants"
)

// TenantUC implements tenants.TenantUC
type TenantUC struct {
	tenantRepo tenants.TenantRepo
	cfg        *models.Config
}

// NewTenantUC creates a new tenant usecase instance
func NewTenantUC(
	tenantRepo tenants.TenantRepo,
	cfg *models.Config,
) *TenantUC {
	return &TenantUC{
		tenantRepo: tenantRepo,
		cfg:        cfg,
	}
}
