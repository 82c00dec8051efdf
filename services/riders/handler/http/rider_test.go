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
	"github.com/piresc/dispatch/services/riders/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTenantContext(method, target, body string, companyID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	appctx.SetCompany(c, companyID)
	return c, rec
}

func TestListRiders_ParsesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRiderUC(ctrl)
	h := NewRiderHandler(mockUC)
	companyID := uuid.New()

	c, rec := newTenantContext(http.MethodGet, "/v1/riders?status=busy&limit=10&offset=20", "", companyID)
	mockUC.EXPECT().ListRiders(gomock.Any(), companyID, models.RiderFilter{Status: models.RiderStatusBusy, Limit: 10, Offset: 20}).
		Return([]*models.Rider{{ID: uuid.New(), Name: "Budi"}}, nil)

	require.NoError(t, h.ListRiders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRiders_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRiderHandler(mocks.NewMockRiderUC(ctrl))

	c, rec := newTenantContext(http.MethodGet, "/v1/riders?limit=-1", "", uuid.New())
	require.NoError(t, h.ListRiders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRider_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRiderUC(ctrl)
	h := NewRiderHandler(mockUC)
	companyID := uuid.New()

	c, rec := newTenantContext(http.MethodPost, "/v1/riders", `{"name":"Budi","phone":"08123456789"}`, companyID)
	mockUC.EXPECT().CreateRider(gomock.Any(), companyID, &models.CreateRiderRequest{Name: "Budi", Phone: "08123456789"}).
		Return(nil, apperror.Conflict("a rider with this phone already exists"))

	require.NoError(t, h.CreateRider(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "a rider with this phone already exists", response["error"])
}

func TestCreateRider_RequiresTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRiderHandler(mocks.NewMockRiderUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/riders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateRider(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestImportRiders(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRiderUC(ctrl)
	h := NewRiderHandler(mockUC)
	companyID := uuid.New()

	body := `{"riders":[{"name":"Ani","phone":"08111111111"},{"name":"Budi","phone":"08122222222"}]}`
	c, rec := newTenantContext(http.MethodPost, "/v1/riders/import", body, companyID)
	mockUC.EXPECT().ImportRiders(gomock.Any(), companyID, gomock.Len(2)).
		Return(&models.ImportResult{Created: 2}, nil)

	require.NoError(t, h.ImportRiders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateLocation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRiderUC(ctrl)
	h := NewRiderHandler(mockUC)
	companyID, riderID := uuid.New(), uuid.New()

	c, rec := newTenantContext(http.MethodPatch, "/v1/riders/"+riderID.String()+"/location",
		`{"latitude":-6.2,"longitude":106.8}`, companyID)
	c.SetParamNames("id")
	c.SetParamValues(riderID.String())
	mockUC.EXPECT().UpdateLocation(gomock.Any(), companyID, riderID, gomock.Any()).
		Return(nil, apperror.NotFound("rider not found"))

	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindNearby(t *testing.T) {
	t.Run("Defaults radius", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockRiderUC(ctrl)
		h := NewRiderHandler(mockUC)
		companyID := uuid.New()

		c, rec := newTenantContext(http.MethodGet, "/v1/riders/nearby?lat=-6.2&lng=106.8", "", companyID)
		mockUC.EXPECT().FindNearby(gomock.Any(), companyID, -6.2, 106.8, 5.0, 0).
			Return([]models.Position{{RiderID: uuid.New(), Distance: 1.5}}, nil)

		require.NoError(t, h.FindNearby(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewRiderHandler(mocks.NewMockRiderUC(ctrl))

		c, rec := newTenantContext(http.MethodGet, "/v1/riders/nearby?lat=-6.2", "", uuid.New())
		require.NoError(t, h.FindNearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed radius", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewRiderHandler(mocks.NewMockRiderUC(ctrl))

		c, rec := newTenantContext(http.MethodGet, "/v1/riders/nearby?lat=1&lng=2&radius_km=far", "", uuid.New())
		require.NoError(t, h.FindNearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
