package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Rider created", map[string]string{"id": "r-1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Rider created", body["message"])
	assert.Equal(t, "r-1", body["data"].(map[string]interface{})["id"])
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "not found keeps message",
			err:           apperror.NotFound("order not found"),
			expectedCode:  http.StatusNotFound,
			expectedError: "order not found",
		},
		{
			name:          "locked",
			err:           apperror.AccountLocked("account locked, try again later"),
			expectedCode:  http.StatusLocked,
			expectedError: "account locked, try again later",
		},
		{
			name:          "internal uses fallback",
			err:           apperror.Internal("query failed", errors.New("pq: syntax error")),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to update order",
		},
		{
			name:          "untyped uses fallback",
			err:           errors.New("connection reset"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to update order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := HandleError(c, tt.err, "Failed to update order")
			require.NoError(t, err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedError, body.Error)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestUnauthorizedResponse_DefaultMessage(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, UnauthorizedResponse(c, ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestParamUUID(t *testing.T) {
	c, _ := newTestContext()
	id := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	got, err := ParamUUID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	c.SetParamValues("not-a-uuid")
	_, err = ParamUUID(c, "id")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestQueryParams(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=25&offset=-1&lat=-6.2&lng=abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	limit, err := QueryInt(c, "limit", 50)
	require.NoError(t, err)
	assert.Equal(t, 25, limit)

	def, err := QueryInt(c, "page", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, def)

	_, err = QueryInt(c, "offset", 0)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	lat, ok, err := QueryFloat(c, "lat")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -6.2, lat)

	_, ok, err = QueryFloat(c, "lng")
	assert.True(t, ok)
	assert.Error(t, err)

	_, ok, err = QueryFloat(c, "radius_km")
	assert.False(t, ok)
	assert.NoError(t, err)
}
