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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSession(t *testing.T) {
	session := &models.AgentSession{
		ID:        uuid.New(),
		RiderID:   uuid.New(),
		CompanyID: uuid.New(),
		DeviceID:  "dev-1",
		IsActive:  true,
		ExpiresAt: fixedNow.Add(time.Hour),
	}
	expired := *session
	expired.ExpiresAt = fixedNow.Add(-time.Second)

	tests := []struct {
		name      string
		token     string
		mockSetup func(m agentMocks)
		wantKind  apperror.Kind
	}{
		{
			name:  "Active session",
			token: "token",
			mockSetup: func(m agentMocks) {
				m.repo.EXPECT().GetActiveSession(gomock.Any(), "token").Return(session, nil)
				m.repo.EXPECT().TouchSession(gomock.Any(), session.ID, fixedNow).Return(errors.New("ignored"))
			},
		},
		{
			name:     "Empty token",
			token:    "  ",
			wantKind: apperror.KindMissingAuth,
		},
		{
			name:  "Unknown token",
			token: "token",
			mockSetup: func(m agentMocks) {
				m.repo.EXPECT().GetActiveSession(gomock.Any(), "token").Return(nil, apperror.NotFound("session not found"))
			},
			wantKind: apperror.KindMissingAuth,
		},
		{
			name:  "Expired session is deactivated",
			token: "token",
			mockSetup: func(m agentMocks) {
				m.repo.EXPECT().GetActiveSession(gomock.Any(), "token").Return(&expired, nil)
				m.repo.EXPECT().DeactivateSession(gomock.Any(), expired.ID).Return(nil)
			},
			wantKind: apperror.KindMissingAuth,
		},
		{
			name:  "Store failure",
			token: "token",
			mockSetup: func(m agentMocks) {
				m.repo.EXPECT().GetActiveSession(gomock.Any(), "token").
					Return(nil, apperror.Upstream("database operation failed on session", errors.New("down")))
			},
			wantKind: apperror.KindUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := setupAgentUC(t)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			identity, err := uc.ValidateSession(context.Background(), tt.token)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				assert.Equal(t, models.AgentIdentity{}, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.AgentIdentity{
				SessionID: session.ID,
				RiderID:   session.RiderID,
				CompanyID: session.CompanyID,
				DeviceID:  "dev-1",
			}, identity)
		})
	}
}

func TestLogout(t *testing.T) {
	session := &models.AgentSession{ID: uuid.New(), RiderID: uuid.New(), CompanyID: uuid.New(),
		DeviceID: "dev-1", IsActive: true, ExpiresAt: fixedNow.Add(time.Hour)}

	t.Run("Ends the session and takes the rider offline", func(t *testing.T) {
		uc, m := setupAgentUC(t)
		m.repo.EXPECT().GetActiveSession(gomock.Any(), "token").Return(session, nil)
		m.repo.EXPECT().TouchSession(gomock.Any(), session.ID, fixedNow).Return(nil)
		m.repo.EXPECT().DeactivateSession(gomock.Any(), session.ID).Return(nil)
		m.riderUC.EXPECT().SetStatus(gomock.Any(), session.CompanyID, session.RiderID, models.RiderStatusOffline).
			Return(nil, errors.New("redis down"))
		m.repo.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.ActivityLog) error {
				assert.Equal(t, models.ActivityLogout, entry.Action)
				return nil
			})

		assert.NoError(t, uc.Logout(context.Background(), "token"))
	})

	t.Run("Invalid token has no side effects", func(t *testing.T) {
		uc, m := setupAgentUC(t)
		m.repo.EXPECT().GetActiveSession(gomock.Any(), "bad").Return(nil, apperror.NotFound("session not found"))

		err := uc.Logout(context.Background(), "bad")
		assert.True(t, apperror.Is(err, apperror.KindMissingAuth))
	})
}
