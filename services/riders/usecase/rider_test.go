package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/riders/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func setupRiderUC(t *testing.T) (*RiderUC, *mocks.MockRiderRepo, *mocks.MockRiderGW) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRiderRepo(ctrl)
	mockGW := mocks.NewMockRiderGW(ctrl)
	cfg := &models.Config{Agent: models.AgentConfig{OnlineWindowMinute: 5}}
	uc := NewRiderUC(mockRepo, mockGW, cfg)
	uc.now = func() time.Time { return fixedNow }
	return uc, mockRepo, mockGW
}

func strPtr(s string) *string { return &s }

func TestCreateRider(t *testing.T) {
	companyID := uuid.New()

	tests := []struct {
		name       string
		req        *models.CreateRiderRequest
		mockSetup  func(*mocks.MockRiderRepo)
		wantKind   apperror.Kind
		wantStatus models.RiderStatus
		wantPhone  string
	}{
		{
			name: "Defaults to offline and normalizes phone",
			req:  &models.CreateRiderRequest{Name: " Budi ", Phone: "+62 812-3456-789"},
			mockSetup: func(repo *mocks.MockRiderRepo) {
				repo.EXPECT().CreateRider(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: models.RiderStatusOffline,
			wantPhone:  "+628123456789",
		},
		{
			name: "Online alias is stored as active",
			req:  &models.CreateRiderRequest{Name: "Budi", Phone: "08123456789", Status: "ONLINE"},
			mockSetup: func(repo *mocks.MockRiderRepo) {
				repo.EXPECT().CreateRider(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: models.RiderStatusActive,
			wantPhone:  "08123456789",
		},
		{
			name:     "Missing name",
			req:      &models.CreateRiderRequest{Phone: "08123456789"},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "Invalid phone",
			req:      &models.CreateRiderRequest{Name: "Budi", Phone: "12ab"},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "Invalid status",
			req:      &models.CreateRiderRequest{Name: "Budi", Phone: "08123456789", Status: "sleeping"},
			wantKind: apperror.KindValidation,
		},
		{
			name: "Duplicate phone",
			req:  &models.CreateRiderRequest{Name: "Budi", Phone: "08123456789"},
			mockSetup: func(repo *mocks.MockRiderRepo) {
				repo.EXPECT().CreateRider(gomock.Any(), gomock.Any()).Return(apperror.Conflict("rider already exists"))
			},
			wantKind: apperror.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo, _ := setupRiderUC(t)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			rider, err := uc.CreateRider(context.Background(), companyID, tt.req)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, companyID, rider.CompanyID)
			assert.Equal(t, "Budi", rider.Name)
			assert.Equal(t, tt.wantStatus, rider.Status)
			assert.Equal(t, tt.wantPhone, rider.Phone)
			assert.Equal(t, fixedNow, rider.CreatedAt)
		})
	}
}

func TestListRiders_ClampsLimit(t *testing.T) {
	uc, mockRepo, _ := setupRiderUC(t)
	companyID := uuid.New()

	mockRepo.EXPECT().ListRiders(gomock.Any(), companyID, models.RiderFilter{Status: models.RiderStatusActive, Limit: maxListLimit}).
		Return([]*models.Rider{}, nil)
	_, err := uc.ListRiders(context.Background(), companyID, models.RiderFilter{Status: models.RiderStatusOnline, Limit: 5000})
	require.NoError(t, err)

	mockRepo.EXPECT().ListRiders(gomock.Any(), companyID, models.RiderFilter{Limit: defaultListLimit}).
		Return([]*models.Rider{}, nil)
	_, err = uc.ListRiders(context.Background(), companyID, models.RiderFilter{})
	require.NoError(t, err)

	_, err = uc.ListRiders(context.Background(), companyID, models.RiderFilter{Status: "lost"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestUpdateRider_GoingOfflineRemovesPosition(t *testing.T) {
	uc, mockRepo, mockGW := setupRiderUC(t)
	companyID, riderID := uuid.New(), uuid.New()
	existing := &models.Rider{ID: riderID, CompanyID: companyID, Name: "Budi", Phone: "08123456789", Status: models.RiderStatusActive}

	mockRepo.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(existing, nil)
	mockRepo.EXPECT().UpdateRider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Rider) error {
			assert.Equal(t, "Budi Santoso", r.Name)
			assert.Equal(t, models.RiderStatusOffline, r.Status)
			assert.Nil(t, r.Email)
			return nil
		})
	mockGW.EXPECT().RemovePosition(gomock.Any(), companyID, riderID).Return(errors.New("redis down"))

	rider, err := uc.UpdateRider(context.Background(), companyID, riderID, &models.UpdateRiderRequest{
		Name:   strPtr("Budi Santoso"),
		Email:  strPtr(""),
		Status: strPtr("offline"),
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, rider.UpdatedAt)
}

func TestUpdateRider_Validation(t *testing.T) {
	uc, mockRepo, _ := setupRiderUC(t)
	companyID, riderID := uuid.New(), uuid.New()
	mockRepo.EXPECT().GetRider(gomock.Any(), companyID, riderID).
		Return(&models.Rider{ID: riderID, Status: models.RiderStatusActive}, nil).Times(3)

	_, err := uc.UpdateRider(context.Background(), companyID, riderID, &models.UpdateRiderRequest{Name: strPtr("  ")})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = uc.UpdateRider(context.Background(), companyID, riderID, &models.UpdateRiderRequest{Phone: strPtr("x")})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = uc.UpdateRider(context.Background(), companyID, riderID, &models.UpdateRiderRequest{Email: strPtr("nope")})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestDeleteRider(t *testing.T) {
	t.Run("Removes position", func(t *testing.T) {
		uc, mockRepo, mockGW := setupRiderUC(t)
		companyID, riderID := uuid.New(), uuid.New()

		mockRepo.EXPECT().DeleteRider(gomock.Any(), companyID, riderID).Return(nil)
		mockGW.EXPECT().RemovePosition(gomock.Any(), companyID, riderID).Return(nil)

		require.NoError(t, uc.DeleteRider(context.Background(), companyID, riderID))
	})

	t.Run("Not found", func(t *testing.T) {
		uc, mockRepo, _ := setupRiderUC(t)
		companyID, riderID := uuid.New(), uuid.New()

		mockRepo.EXPECT().DeleteRider(gomock.Any(), companyID, riderID).Return(apperror.NotFound("rider not found"))

		err := uc.DeleteRider(context.Background(), companyID, riderID)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestSetStatus(t *testing.T) {
	uc, mockRepo, mockGW := setupRiderUC(t)
	companyID, riderID := uuid.New(), uuid.New()

	mockRepo.EXPECT().UpdateStatus(gomock.Any(), companyID, riderID, models.RiderStatusActive).
		Return(&models.Rider{ID: riderID, Status: models.RiderStatusActive}, nil)
	rider, err := uc.SetStatus(context.Background(), companyID, riderID, models.RiderStatusOnline)
	require.NoError(t, err)
	assert.Equal(t, models.RiderStatusActive, rider.Status)

	mockRepo.EXPECT().UpdateStatus(gomock.Any(), companyID, riderID, models.RiderStatusOffline).
		Return(&models.Rider{ID: riderID, Status: models.RiderStatusOffline}, nil)
	mockGW.EXPECT().RemovePosition(gomock.Any(), companyID, riderID).Return(nil)
	_, err = uc.SetStatus(context.Background(), companyID, riderID, models.RiderStatusOffline)
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), companyID, riderID, "asleep")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}
