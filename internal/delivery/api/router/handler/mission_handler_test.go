package handler

import (
	"net/http"
	"testing"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	mocks "rewards/internal/mocks/usecase"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMissionHandler_List(t *testing.T) {
	userID := uuid.New()
	completedAt := time.Now()
	mission := &entity.Mission{
		ID:        uuid.New(),
		Name:      "Claim three offers",
		Frequency: entity.MissionFrequencyOneOff,
		Goals:     []entity.MissionGoal{{EventName: entity.EventClaimed, Goal: 3}},
		Reward:    entity.MissionReward{Points: 100},
	}
	idle := &entity.Mission{ID: uuid.New(), Name: "Redeem daily", Frequency: entity.MissionFrequencyDaily}

	missions := mocks.NewMockMissionUsecase(t)
	missions.EXPECT().ListUserMissions(mock.Anything, userID).Return([]*entity.UserMissionView{
		{
			Mission: mission,
			Progress: &entity.UserMission{
				CurrentValues: map[string]int64{entity.EventClaimed: 3},
				IsCompleted:   true,
				CompletedAt:   &completedAt,
			},
		},
		{Mission: idle},
	}, nil)

	h := NewMissionHandler(MissionHandlerParams{MissionUC: missions, Logger: newTestLogger()})
	c, rec := newTestContext(http.MethodGet, "/api/v1/missions", "", userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	assert.Equal(t, "one-off", first["frequency"])
	progress := first["progress"].(map[string]any)
	assert.Equal(t, true, progress["is_completed"])

	assert.NotContains(t, data[1].(map[string]any), "progress")
}

func TestMissionHandler_Complete(t *testing.T) {
	userID := uuid.New()
	missionID := uuid.New()

	tests := []struct {
		name       string
		out        *usecase.MissionRewardOutput
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "reward paid",
			out: &usecase.MissionRewardOutput{
				Mission:     &entity.Mission{ID: missionID, Reward: entity.MissionReward{Points: 40}},
				Progress:    &entity.UserMission{IsCompleted: true, IsDisbursed: true},
				PointsEntry: &entity.PointLedgerEntry{ID: uuid.New(), Amount: 40, Direction: entity.DirectionCredit},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "auto disbursed mission",
			err:        domainerrors.ErrAlreadyAutoDisbursed,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "ALREADY_AUTO_DISBURSED",
		},
		{
			name:       "not completed",
			err:        domainerrors.ErrMissionNotCompleted,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSION_NOT_COMPLETED",
		},
		{
			name:       "unknown mission",
			err:        domainerrors.ErrMissionNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "MISSION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missions := mocks.NewMockMissionUsecase(t)
			missions.EXPECT().CompleteMission(mock.Anything, userID, missionID).Return(tt.out, tt.err)

			h := NewMissionHandler(MissionHandlerParams{MissionUC: missions, Logger: newTestLogger()})
			c, rec := newTestContext(http.MethodPost, "/", "", userID)
			c.SetParamNames("id")
			c.SetParamValues(missionID.String())

			require.NoError(t, h.Complete(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))

				return
			}

			data := decodeBody(t, rec)["data"].(map[string]any)
			assert.InDelta(t, 40, data["points_entry"].(map[string]any)["amount"], 0)
		})
	}
}
