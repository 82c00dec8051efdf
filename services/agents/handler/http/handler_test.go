package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/agents/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newAgentContext(method, target, body string, identity models.AgentIdentity) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newRequestContext(method, target, body)
	appctx.SetAgent(c, identity)
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockAgentUC)
		wantStatus int
		wantError  string
	}{
		{
			name: "Success",
			body: `{"company_code":"ACME","phone":"0812","pin_code":"1234","device_id":"dev-1"}`,
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().Login(gomock.Any(), &models.AgentLoginRequest{
					CompanyCode: "ACME", Phone: "0812", PinCode: "1234", DeviceID: "dev-1",
				}).Return(&models.AgentLoginResponse{SessionToken: "token"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Malformed body",
			body:       `{"company_code":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request payload",
		},
		{
			name: "Locked",
			body: `{"company_code":"ACME","phone":"0812","pin_code":"1234","device_id":"dev-1"}`,
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperror.AccountLocked("Account is locked. Try again later"))
			},
			wantStatus: http.StatusLocked,
			wantError:  "Account is locked. Try again later",
		},
		{
			name: "Wrong PIN",
			body: `{"company_code":"ACME","phone":"0812","pin_code":"1234","device_id":"dev-1"}`,
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperror.InvalidPin("Invalid PIN. 4 attempts remaining"))
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid PIN. 4 attempts remaining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockAgentUC(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUC)
			}
			h := NewAuthHandler(mockUC)

			c, rec := newRequestContext(http.MethodPost, "/agent/auth/login", tt.body)
			require.NoError(t, h.Login(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
			}
		})
	}
}

func TestLogout(t *testing.T) {
	t.Run("Bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockAgentUC(ctrl)
		h := NewAuthHandler(mockUC)

		c, rec := newRequestContext(http.MethodPost, "/agent/auth/logout", "")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer abc")
		mockUC.EXPECT().Logout(gomock.Any(), "abc").Return(nil)

		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAuthHandler(mocks.NewMockAgentUC(ctrl))

		c, rec := newRequestContext(http.MethodPost, "/agent/auth/logout", "")
		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAgentUpdateOrder(t *testing.T) {
	identity := models.AgentIdentity{SessionID: uuid.New(), RiderID: uuid.New(), CompanyID: uuid.New()}
	orderID := uuid.New()

	tests := []struct {
		name       string
		param      string
		mockSetup  func(*mocks.MockAgentUC)
		wantStatus int
	}{
		{
			name:  "Success",
			param: orderID.String(),
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().UpdateOrder(gomock.Any(), identity, orderID, &models.AgentOrderUpdate{Status: "picked_up"}).
					Return(&models.Order{ID: orderID, Status: models.OrderStatusPickedUp}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Illegal transition",
			param: orderID.String(),
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().UpdateOrder(gomock.Any(), identity, orderID, gomock.Any()).
					Return(nil, apperror.InvalidTransition("pending", "picked_up"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Another rider's order",
			param: orderID.String(),
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().UpdateOrder(gomock.Any(), identity, orderID, gomock.Any()).
					Return(nil, apperror.NotFound("order not found"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Malformed id",
			param:      "not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockAgentUC(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUC)
			}
			h := NewAgentHandler(mockUC)

			c, rec := newAgentContext(http.MethodPatch, "/agent/orders/"+tt.param, `{"status":"picked_up"}`, identity)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			require.NoError(t, h.UpdateOrder(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAgentUpdateLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAgentUC(ctrl)
	h := NewAgentHandler(mockUC)
	identity := models.AgentIdentity{RiderID: uuid.New(), CompanyID: uuid.New()}
	lat, lng := -6.2, 106.8

	mockUC.EXPECT().UpdateLocation(gomock.Any(), identity, gomock.Any()).
		Return(&models.Rider{ID: identity.RiderID, Latitude: &lat, Longitude: &lng}, nil)

	c, rec := newAgentContext(http.MethodPost, "/agent/location", `{"latitude":-6.2,"longitude":106.8}`, identity)
	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, -6.2, data["latitude"])
}

func TestAgentHandler_RequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewAgentHandler(mocks.NewMockAgentUC(ctrl))

	c, rec := newRequestContext(http.MethodGet, "/agent/profile", "")
	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForceLogout(t *testing.T) {
	companyID, riderID, sessionID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name       string
		query      string
		mockSetup  func(*mocks.MockAgentUC)
		wantStatus int
	}{
		{
			name: "All sessions",
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().ForceLogout(gomock.Any(), companyID, riderID, nil).Return(int64(2), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "One session",
			query: "?session_id=" + sessionID.String(),
			mockSetup: func(uc *mocks.MockAgentUC) {
				uc.EXPECT().ForceLogout(gomock.Any(), companyID, riderID, &sessionID).Return(int64(1), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Malformed session id",
			query:      "?session_id=nope",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockAgentUC(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUC)
			}
			h := NewAdminHandler(mockUC)

			c, rec := newRequestContext(http.MethodDelete, "/v1/agents/"+riderID.String()+"/sessions"+tt.query, "")
			appctx.SetCompany(c, companyID)
			c.SetParamNames("id")
			c.SetParamValues(riderID.String())

			require.NoError(t, h.ForceLogout(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSetPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAgentUC(ctrl)
	h := NewAdminHandler(mockUC)
	companyID, riderID := uuid.New(), uuid.New()

	mockUC.EXPECT().SetPin(gomock.Any(), companyID, riderID, "123").Return(apperror.Validation("pin_code must be 4 to 6 digits"))

	c, rec := newRequestContext(http.MethodPost, "/v1/agents/"+riderID.String()+"/sessions", `{"pin_code":"123"}`)
	appctx.SetCompany(c, companyID)
	c.SetParamNames("id")
	c.SetParamValues(riderID.String())

	require.NoError(t, h.SetPin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "pin_code must be 4 to 6 digits", decodeBody(t, rec)["error"])
}
