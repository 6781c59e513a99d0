package impl

import (
	"context"
	"testing"
	"time"

	"rewards/config"
	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type missionServiceFixtures struct {
	service *missionService
	store   *testStore
	clock   time.Time
}

func createTestMissionService(t *testing.T) *missionServiceFixtures {
	store := newTestStore(t)

	srv, err := NewMissionService(MissionServiceParams{
		TxManager:   store.txManager,
		MissionRepo: store.missionRepo,
		Publisher:   store.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)

	fx := &missionServiceFixtures{
		service: srv.(*missionService),
		store:   store,
		clock:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	fx.service.now = func() time.Time { return fx.clock }

	return fx
}

func claimedEvent(userID uuid.UUID) *entity.DomainEvent {
	return &entity.DomainEvent{ID: uuid.New(), Name: entity.EventClaimed, UserID: userID, OccurredAt: time.Now()}
}

func (fx *missionServiceFixtures) progress(t *testing.T, userID, missionID uuid.UUID) *entity.UserMission {
	t.Helper()

	progresses, err := fx.store.missionRepo.ListUserMissions(context.Background(), userID)
	require.NoError(t, err)
	for _, p := range progresses {
		if p.MissionID == missionID {
			return p
		}
	}

	return nil
}

func TestNewMissionService_InvalidTimezone(t *testing.T) {
	_, err := NewMissionService(MissionServiceParams{
		Config: &config.Config{Missions: &config.MissionsConfig{Timezone: "Mars/Olympus"}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestMissionService_OneOff(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	missionID := fx.store.seedMission(t, entity.MissionFrequencyOneOff, true,
		entity.MissionReward{Points: 100},
		entity.MissionGoal{EventName: entity.EventClaimed, Goal: 2},
	)

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p := fx.progress(t, userID, missionID)
	require.NotNil(t, p)
	assert.Equal(t, int64(1), p.CurrentValues[entity.EventClaimed])
	assert.False(t, p.IsCompleted)
	assert.Empty(t, fx.store.events())

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p = fx.progress(t, userID, missionID)
	assert.True(t, p.IsCompleted)
	assert.True(t, p.IsDisbursed)
	assert.Equal(t, int64(1), p.CompletionCount)
	assert.Equal(t, int64(100), fx.store.pointsOf(t, userID))

	events := fx.store.events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventMissionCompleted, events[0].Name)
	assert.Equal(t, missionID.String(), events[0].Payload["mission_id"])
	assert.Equal(t, "true", events[0].Payload["disbursed"])

	// Locked after completion.
	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p = fx.progress(t, userID, missionID)
	assert.Equal(t, int64(2), p.CurrentValues[entity.EventClaimed])
	assert.Equal(t, int64(1), p.CompletionCount)
	assert.Equal(t, int64(100), fx.store.pointsOf(t, userID))
	assert.Empty(t, fx.store.events())
}

func TestMissionService_IgnoresUntrackedEvents(t *testing.T) {
	fx := createTestMissionService(t)
	userID := uuid.New()
	missionID := fx.store.seedMission(t, entity.MissionFrequencyOneOff, true,
		entity.MissionReward{Points: 10},
		entity.MissionGoal{EventName: entity.EventRedeemed, Goal: 1},
	)

	require.NoError(t, fx.service.HandleEvent(context.Background(), claimedEvent(userID)))
	assert.Nil(t, fx.progress(t, userID, missionID))

	err := fx.service.HandleEvent(context.Background(), &entity.DomainEvent{Name: entity.EventClaimed})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMissionService_DailyResetsEachDay(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	missionID := fx.store.seedMission(t, entity.MissionFrequencyDaily, true,
		entity.MissionReward{Points: 50},
		entity.MissionGoal{EventName: entity.EventClaimed, Goal: 1},
	)

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	fx.clock = fx.clock.Add(3 * time.Hour)
	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))

	p := fx.progress(t, userID, missionID)
	assert.Equal(t, int64(2), p.CurrentValues[entity.EventClaimed])
	assert.Equal(t, int64(1), p.CompletionCount)
	assert.Equal(t, int64(50), fx.store.pointsOf(t, userID), "one reward per day")

	// The view shows yesterday's progress as already reset.
	fx.clock = time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	views, err := fx.service.ListUserMissions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Progress)
	assert.False(t, views[0].Progress.IsCompleted)
	assert.Zero(t, views[0].Progress.CurrentValues[entity.EventClaimed])

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p = fx.progress(t, userID, missionID)
	assert.Equal(t, int64(1), p.CurrentValues[entity.EventClaimed])
	assert.True(t, p.IsCompleted)
	assert.Equal(t, int64(2), p.CompletionCount)
	require.NotNil(t, p.PeriodStart)
	assert.True(t, p.PeriodStart.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(100), fx.store.pointsOf(t, userID))
}

func TestMissionService_DailyPartialProgressDoesNotComplete(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	missionID := fx.store.seedMission(t, entity.MissionFrequencyDaily, true,
		entity.MissionReward{Points: 50},
		entity.MissionGoal{EventName: entity.EventClaimed, Goal: 3},
	)

	for range 3 {
		require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	}
	p := fx.progress(t, userID, missionID)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, int64(50), fx.store.pointsOf(t, userID))

	fx.clock = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	for range 2 {
		require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	}
	p = fx.progress(t, userID, missionID)
	assert.Equal(t, int64(2), p.CurrentValues[entity.EventClaimed])
	assert.False(t, p.IsCompleted, "two of three events on a new day")
	assert.Equal(t, int64(1), p.CompletionCount)
	assert.Equal(t, int64(50), fx.store.pointsOf(t, userID))

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p = fx.progress(t, userID, missionID)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, int64(2), p.CompletionCount)
	assert.Equal(t, int64(100), fx.store.pointsOf(t, userID))
}

func TestMissionService_DailyUsesConfiguredTimezone(t *testing.T) {
	store := newTestStore(t)
	cfg := newTestConfig()
	cfg.Missions.Timezone = "Asia/Jakarta"

	srv, err := NewMissionService(MissionServiceParams{
		TxManager:   store.txManager,
		MissionRepo: store.missionRepo,
		Publisher:   store.publisher,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)
	missions := srv.(*missionService)

	// 18:00 UTC is already the next day in Jakarta (UTC+7).
	start := missions.dayStart(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	assert.True(t, start.Equal(time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)))
}

func TestMissionService_AccumulatedManualRewardAndRearm(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	beans := fx.store.seedComponent(t, "BEANS")
	missionID := fx.store.seedMission(t, entity.MissionFrequencyAccumulated, false,
		entity.MissionReward{Points: 30, Components: []entity.ComponentAmount{{ComponentID: beans, Quantity: 2}}},
		entity.MissionGoal{EventName: entity.EventClaimed, Goal: 1},
	)

	_, err := fx.service.CompleteMission(ctx, userID, missionID)
	assert.ErrorIs(t, err, domainerrors.ErrMissionNotCompleted)

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p := fx.progress(t, userID, missionID)
	assert.True(t, p.IsCompleted)
	assert.False(t, p.IsDisbursed)
	assert.Zero(t, fx.store.pointsOf(t, userID))

	events := fx.store.events()
	require.Len(t, events, 1)
	assert.Equal(t, "false", events[0].Payload["disbursed"])

	output, err := fx.service.CompleteMission(ctx, userID, missionID)
	require.NoError(t, err)
	assert.True(t, output.Progress.IsDisbursed)
	require.NotNil(t, output.PointsEntry)
	assert.Equal(t, entity.ReferenceMission, output.PointsEntry.ReferenceType)
	assert.Equal(t, int64(30), fx.store.pointsOf(t, userID))

	balances, err := fx.store.componentRepo.BalancesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), balances[beans])

	_, err = fx.service.CompleteMission(ctx, userID, missionID)
	assert.ErrorIs(t, err, domainerrors.ErrRewardAlreadyClaimed)

	// Keeps counting without completing again until re-armed.
	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p = fx.progress(t, userID, missionID)
	assert.Equal(t, int64(2), p.CurrentValues[entity.EventClaimed])
	assert.Equal(t, int64(1), p.CompletionCount)

	require.NoError(t, fx.service.Rearm(ctx, userID, missionID))
	p = fx.progress(t, userID, missionID)
	assert.False(t, p.IsCompleted)
	assert.False(t, p.IsDisbursed)
	assert.Equal(t, int64(2), p.CurrentValues[entity.EventClaimed], "re-arm keeps counters")

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p = fx.progress(t, userID, missionID)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, int64(2), p.CompletionCount)
}

func TestMissionService_CompleteMission_Errors(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	autoID := fx.store.seedMission(t, entity.MissionFrequencyOneOff, true,
		entity.MissionReward{Points: 10},
		entity.MissionGoal{EventName: entity.EventClaimed, Goal: 1},
	)

	_, err := fx.service.CompleteMission(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMissionNotFound)

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	_, err = fx.service.CompleteMission(ctx, userID, autoID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyAutoDisbursed)

	accumulatedID := fx.store.seedMission(t, entity.MissionFrequencyAccumulated, false,
		entity.MissionReward{Points: 10},
		entity.MissionGoal{EventName: entity.EventRedeemed, Goal: 1},
	)

	assert.ErrorIs(t, fx.service.Rearm(ctx, userID, uuid.New()), domainerrors.ErrMissionNotFound)
	assert.ErrorIs(t, fx.service.Rearm(ctx, uuid.New(), accumulatedID), domainerrors.ErrMissionNotCompleted)
}

func TestMissionService_Rearm_OnlyAccumulated(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	oneOffID := fx.store.seedMission(t, entity.MissionFrequencyOneOff, true,
		entity.MissionReward{Points: 50},
		entity.MissionGoal{EventName: entity.EventClaimed, Goal: 1},
	)
	dailyID := fx.store.seedMission(t, entity.MissionFrequencyDaily, true,
		entity.MissionReward{Points: 5},
		entity.MissionGoal{EventName: entity.EventRedeemed, Goal: 1},
	)

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	require.Equal(t, int64(50), fx.store.pointsOf(t, userID))

	assert.ErrorIs(t, fx.service.Rearm(ctx, userID, oneOffID), domainerrors.ErrMissionNotRearmable)
	assert.ErrorIs(t, fx.service.Rearm(ctx, userID, dailyID), domainerrors.ErrMissionNotRearmable)

	p := fx.progress(t, userID, oneOffID)
	assert.True(t, p.IsCompleted)
	assert.True(t, p.IsDisbursed)

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))
	p = fx.progress(t, userID, oneOffID)
	assert.Equal(t, int64(1), p.CompletionCount)
	assert.Equal(t, int64(50), fx.store.pointsOf(t, userID), "a one-off mission pays once")
}

func TestMissionService_ListUserMissions(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	tracked := fx.store.seedMission(t, entity.MissionFrequencyOneOff, false,
		entity.MissionReward{Points: 10},
		entity.MissionGoal{EventName: entity.EventClaimed, Goal: 5},
	)
	fx.store.seedMission(t, entity.MissionFrequencyOneOff, false,
		entity.MissionReward{Points: 10},
		entity.MissionGoal{EventName: entity.EventRedeemed, Goal: 1},
	)

	require.NoError(t, fx.service.HandleEvent(ctx, claimedEvent(userID)))

	views, err := fx.service.ListUserMissions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	for _, view := range views {
		if view.Mission.ID == tracked {
			require.NotNil(t, view.Progress)
			assert.Equal(t, int64(1), view.Progress.CurrentValues[entity.EventClaimed])
			continue
		}
		assert.Nil(t, view.Progress)
	}
}
