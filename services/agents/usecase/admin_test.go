package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSessions(t *testing.T) {
	companyID, riderID := uuid.New(), uuid.New()

	t.Run("Rider of the tenant", func(t *testing.T) {
		uc, m := setupAgentUC(t)
		m.riderUC.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(&models.Rider{ID: riderID}, nil)
		m.repo.EXPECT().ListRiderSessions(gomock.Any(), riderID).
			Return([]*models.AgentSession{{ID: uuid.New(), IsActive: true}}, nil)

		sessions, err := uc.ListSessions(context.Background(), companyID, riderID)
		require.NoError(t, err)
		assert.Len(t, sessions, 1)
	})

	t.Run("Rider of another tenant", func(t *testing.T) {
		uc, m := setupAgentUC(t)
		m.riderUC.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(nil, apperror.NotFound("rider not found"))

		_, err := uc.ListSessions(context.Background(), companyID, riderID)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestSetPin(t *testing.T) {
	companyID, riderID := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		pin       string
		mockSetup func(m agentMocks)
		wantKind  apperror.Kind
	}{
		{
			name: "Resets the credential",
			pin:  "654321",
			mockSetup: func(m agentMocks) {
				m.riderUC.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(&models.Rider{ID: riderID}, nil)
				m.repo.EXPECT().UpsertCredential(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *models.RiderCredential) error {
						assert.Equal(t, riderID, c.RiderID)
						assert.Equal(t, "654321", c.PinCode)
						assert.Zero(t, c.LoginAttempts)
						assert.Nil(t, c.LockedUntil)
						return nil
					})
			},
		},
		{name: "Too short", pin: "123", wantKind: apperror.KindValidation},
		{name: "Not digits", pin: "12ab", wantKind: apperror.KindValidation},
		{
			name: "Unknown rider",
			pin:  "1234",
			mockSetup: func(m agentMocks) {
				m.riderUC.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(nil, apperror.NotFound("rider not found"))
			},
			wantKind: apperror.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := setupAgentUC(t)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			err := uc.SetPin(context.Background(), companyID, riderID, tt.pin)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestForceLogout(t *testing.T) {
	companyID, riderID, sessionID := uuid.New(), uuid.New(), uuid.New()

	t.Run("All sessions", func(t *testing.T) {
		uc, m := setupAgentUC(t)
		m.riderUC.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(&models.Rider{ID: riderID}, nil)
		m.repo.EXPECT().DeactivateRiderSessions(gomock.Any(), riderID, nil).Return(int64(2), nil)
		m.riderUC.EXPECT().SetStatus(gomock.Any(), companyID, riderID, models.RiderStatusOffline).
			Return(&models.Rider{ID: riderID, Status: models.RiderStatusOffline}, nil)
		m.repo.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil)

		n, err := uc.ForceLogout(context.Background(), companyID, riderID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("One session", func(t *testing.T) {
		uc, m := setupAgentUC(t)
		m.riderUC.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(&models.Rider{ID: riderID}, nil)
		m.repo.EXPECT().DeactivateRiderSessions(gomock.Any(), riderID, &sessionID).Return(int64(1), nil)
		m.riderUC.EXPECT().SetStatus(gomock.Any(), companyID, riderID, models.RiderStatusOffline).Return(nil, nil)
		m.repo.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil)

		n, err := uc.ForceLogout(context.Background(), companyID, riderID, &sessionID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestActiveRoster(t *testing.T) {
	uc, m := setupAgentUC(t)
	companyID := uuid.New()
	roster := &models.ActiveRoster{Counts: models.RosterCounts{Total: 3, Online: 2, Active: 1, Busy: 1}}
	m.riderUC.EXPECT().ActiveRoster(gomock.Any(), companyID).Return(roster, nil)

	got, err := uc.ActiveRoster(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, roster, got)
}
