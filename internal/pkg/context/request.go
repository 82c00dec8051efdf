package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// Echo context keys set by the auth middleware
const (
	EchoCompanyID = "company_id"
	EchoAgent     = "agent_identity"
	EchoSubjectID = "subject_id"
)

// CompanyIDFromEcho returns the tenant resolved by the API key middleware
func CompanyIDFromEcho(c echo.Context) (uuid.UUID, bool) {
	companyID, ok := c.Get(EchoCompanyID).(uuid.UUID)
	return companyID, ok
}

// AgentFromEcho returns the rider session resolved by the session middleware
func AgentFromEcho(c echo.Context) (models.AgentIdentity, bool) {
	identity, ok := c.Get(EchoAgent).(models.AgentIdentity)
	return identity, ok
}

// SetCompany stores the tenant on both the echo and request contexts
func SetCompany(c echo.Context, companyID uuid.UUID) {
	c.Set(EchoCompanyID, companyID)
	c.Set(EchoSubjectID, companyID.String())
	c.SetRequest(c.Request().WithContext(WithCompanyID(c.Request().Context(), companyID)))
}

// SetAgent stores the rider session on both the echo and request contexts
func SetAgent(c echo.Context, identity models.AgentIdentity) {
	c.Set(EchoAgent, identity)
	c.Set(EchoSubjectID, identity.RiderID.String())
	c.SetRequest(c.Request().WithContext(WithAgent(c.Request().Context(), identity)))
}

// RequireCompanyID returns the authenticated tenant or a MissingAuth error
func RequireCompanyID(c echo.Context) (uuid.UUID, error) {
	id, ok := CompanyIDFromEcho(c)
	if !ok {
		return uuid.Nil, apperror.MissingAuth("Unauthorized")
	}
	return id, nil
}

// RequireAgent returns the authenticated rider session or a MissingAuth error
func RequireAgent(c echo.Context) (models.AgentIdentity, error) {
	identity, ok := AgentFromEcho(c)
	if !ok {
		return models.AgentIdentity{}, apperror.MissingAuth("Unauthorized")
	}
	return identity, nil
}
