package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	defaultPlan       = "starter"
)

// Signup registers a company and issues its credentials
func (uc *TenantUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.CompanyAuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case name == "":
		return nil, apperror.Validation("name is required")
	case !utils.IsValidEmail(email):
		return nil, apperror.Validation("a valid email is required")
	case len(req.Password) < minPasswordLength:
		return nil, apperror.Validation("password must be at least 8 characters")
	}

	if _, err := uc.tenantRepo.GetCompanyByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("email already registered")
	} else if !apperror.Is(err, apperror.KindNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}

	apiKey, err := utils.GenerateAPIKey()
	if err != nil {
		return nil, apperror.Internal("failed to generate api key", err)
	}
	webhookSecret, err := utils.GenerateWebhookSecret()
	if err != nil {
		return nil, apperror.Internal("failed to generate webhook secret", err)
	}
	companyCode, err := utils.GenerateCompanyCode(name)
	if err != nil {
		return nil, apperror.Internal("failed to generate company code", err)
	}

	plan := strings.TrimSpace(req.Plan)
	if plan == "" {
		plan = defaultPlan
	}

	now := models.Now()
	company := &models.Company{
		ID:            uuid.New(),
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		APIKey:        apiKey,
		WebhookSecret: webhookSecret,
		CompanyCode:   companyCode,
		Settings:      models.DefaultCompanySettings(),
		Plan:          plan,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.tenantRepo.CreateCompany(ctx, company); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Company registered",
		logger.String("company_id", company.ID.String()),
		logger.String("company_code", company.CompanyCode))

	return &models.CompanyAuthResponse{
		Company:       company,
		APIKey:        apiKey,
		WebhookSecret: webhookSecret,
	}, nil
}

// Login verifies a company email and password and returns the API key
func (uc *TenantUC) Login(ctx context.Context, req *models.CompanyLoginRequest) (*models.CompanyAuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperror.Validation("email and password are required")
	}

	invalid := apperror.InvalidCredentials("Invalid email or password")

	company, err := uc.tenantRepo.GetCompanyByEmail(ctx, email)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if !company.IsActive {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Company login rejected",
			logger.String("company_id", company.ID.String()))
		return nil, invalid
	}

	return &models.CompanyAuthResponse{
		Company: company,
		APIKey:  company.APIKey,
	}, nil
}

// AuthenticateAPIKey resolves an API key to its active company. It reads the
// store on every call.
func (uc *TenantUC) AuthenticateAPIKey(ctx context.Context, apiKey string) (uuid.UUID, error) {
	company, err := uc.GetCompanyByAPIKey(ctx, apiKey)
	if err != nil {
		return uuid.Nil, err
	}
	return company.ID, nil
}

// GetCompanyByAPIKey returns the active company owning the API key
func (uc *TenantUC) GetCompanyByAPIKey(ctx context.Context, apiKey string) (*models.Company, error) {
	if apiKey == "" {
		return nil, apperror.MissingAuth("Unauthorized")
	}
	company, err := uc.tenantRepo.GetActiveCompanyByAPIKey(ctx, apiKey)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.MissingAuth("Unauthorized")
		}
		return nil, err
	}
	return company, nil
}
