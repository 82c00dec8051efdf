package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// GetCompany returns the authenticated company
func (uc *TenantUC) GetCompany(ctx context.Context, companyID uuid.UUID) (*models.Company, error) {
	return uc.tenantRepo.GetCompanyByID(ctx, companyID)
}

// UpdateCompany applies a partial profile update
func (uc *TenantUC) UpdateCompany(ctx context.Context, companyID uuid.UUID, req *models.CompanyUpdate) (*models.Company, error) {
	company, err := uc.tenantRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation("name cannot be empty")
		}
		company.Name = name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !utils.IsValidEmail(email) {
			return nil, apperror.Validation("a valid email is required")
		}
		company.Email = email
	}
	if req.Plan != nil && strings.TrimSpace(*req.Plan) != "" {
		company.Plan = strings.TrimSpace(*req.Plan)
	}
	company.UpdatedAt = models.Now()

	if err := uc.tenantRepo.UpdateCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// RegenerateKey issues a new API key, and a new company code on request
func (uc *TenantUC) RegenerateKey(ctx context.Context, companyID uuid.UUID, regenerateCode bool) (*models.RegenerateKeyResponse, error) {
	company, err := uc.tenantRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	apiKey, err := utils.GenerateAPIKey()
	if err != nil {
		return nil, apperror.Internal("failed to generate api key", err)
	}

	companyCode := company.CompanyCode
	if regenerateCode {
		if companyCode, err = utils.GenerateCompanyCode(company.Name); err != nil {
			return nil, apperror.Internal("failed to generate company code", err)
		}
	}

	if err := uc.tenantRepo.UpdateCredentials(ctx, companyID, apiKey, companyCode); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Company credentials regenerated",
		logger.String("company_id", companyID.String()),
		logger.Bool("code_regenerated", regenerateCode))

	return &models.RegenerateKeyResponse{APIKey: apiKey, CompanyCode: companyCode}, nil
}

// GetSettings returns the settings document and the webhook secret
func (uc *TenantUC) GetSettings(ctx context.Context, companyID uuid.UUID) (*models.SettingsResponse, error) {
	company, err := uc.tenantRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &models.SettingsResponse{Settings: company.Settings, WebhookSecret: company.WebhookSecret}, nil
}

// UpdateSettings sets the callback URL and feature flags, optionally
// rotating the webhook secret.
func (uc *TenantUC) UpdateSettings(ctx context.Context, companyID uuid.UUID, req *models.SettingsUpdate) (*models.SettingsResponse, error) {
	company, err := uc.tenantRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	settings := company.Settings
	if req.CallbackURL != nil {
		callbackURL := strings.TrimSpace(*req.CallbackURL)
		if callbackURL != "" && !utils.IsValidHTTPURL(callbackURL) {
			return nil, apperror.Validation("callback_url must be an http(s) URL")
		}
		settings.CallbackURL = callbackURL
	}
	if req.Features != nil {
		if settings.Features == nil {
			settings.Features = map[string]bool{}
		}
		for name, enabled := range req.Features {
			settings.Features[name] = enabled
		}
	}

	secret := company.WebhookSecret
	if req.RotateWebhookSecret || secret == "" {
		if secret, err = utils.GenerateWebhookSecret(); err != nil {
			return nil, apperror.Internal("failed to generate webhook secret", err)
		}
	}

	if err := uc.tenantRepo.UpdateSettings(ctx, companyID, settings, secret); err != nil {
		return nil, err
	}
	return &models.SettingsResponse{Settings: settings, WebhookSecret: secret}, nil
}

// UpdateMapSettings merges a JSON patch into the map settings
func (uc *TenantUC) UpdateMapSettings(ctx context.Context, companyID uuid.UUID, patch []byte) (*models.MapSettings, error) {
	company, err := uc.tenantRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	settings := company.Settings
	if err := json.Unmarshal(patch, &settings.Map); err != nil {
		return nil, apperror.Validation("invalid map settings")
	}
	if !utils.IsValidCoordinate(settings.Map.DefaultLatitude, settings.Map.DefaultLongitude) {
		return nil, apperror.Validation("default coordinates are out of range")
	}
	if settings.Map.DefaultZoom < 1 || settings.Map.DefaultZoom > 22 {
		return nil, apperror.Validation("default_zoom must be between 1 and 22")
	}

	if err := uc.tenantRepo.UpdateSettings(ctx, companyID, settings, company.WebhookSecret); err != nil {
		return nil, err
	}
	return &settings.Map, nil
}

// UpdateNotificationSettings merges a JSON patch into the notification toggles
func (uc *TenantUC) UpdateNotificationSettings(ctx context.Context, companyID uuid.UUID, patch []byte) (*models.NotificationSettings, error) {
	company, err := uc.tenantRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	settings := company.Settings
	if err := json.Unmarshal(patch, &settings.Notifications); err != nil {
		return nil, apperror.Validation("invalid notification settings")
	}

	if err := uc.tenantRepo.UpdateSettings(ctx, companyID, settings, company.WebhookSecret); err != nil {
		return nil, err
	}
	return &settings.Notifications, nil
}
