package postgres

import (
	"context"
	"testing"
	"time"

	"rewards/internal/domain/entity"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionRepository_ProgressLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewMissionRepository(db)
	ctx := context.Background()

	mission := &model.MissionModel{
		ID:        uuid.New(),
		Name:      "Comment three times",
		Frequency: entity.MissionFrequencyDaily.String(),
		Goals:     []byte(`[{"event_name":"CommentCreated","goal":3}]`),
		Reward:    []byte(`{"points":25}`),
		IsActive:  true,
	}
	retired := &model.MissionModel{
		ID:        uuid.New(),
		Name:      "Retired",
		Frequency: entity.MissionFrequencyOneOff.String(),
		Goals:     []byte(`[]`),
		Reward:    []byte(`{"points":1}`),
	}
	require.NoError(t, db.Create(mission).Error)
	require.NoError(t, db.Create(retired).Error)

	active, err := repo.ListActiveMissions(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, mission.ID, active[0].ID)
	assert.True(t, active[0].Tracks(entity.EventCommentCreated))
	assert.Equal(t, int64(25), active[0].Reward.Points)

	userID := uuid.New()
	_, err = repo.FindUserMissionForUpdate(ctx, userID, mission.ID)
	require.ErrorIs(t, err, repository.ErrUserMissionNotFound)

	require.NoError(t, repo.EnsureUserMission(ctx, &entity.UserMission{UserID: userID, MissionID: mission.ID}))
	require.NoError(t, repo.EnsureUserMission(ctx, &entity.UserMission{UserID: userID, MissionID: mission.ID}))

	progress, err := repo.FindUserMissionForUpdate(ctx, userID, mission.ID)
	require.NoError(t, err)
	assert.Empty(t, progress.CurrentValues)

	completedAt := time.Now().UTC()
	progress.CurrentValues[entity.EventCommentCreated] = 3
	progress.IsCompleted = true
	progress.CompletedAt = &completedAt
	progress.CompletionCount = 1
	require.NoError(t, repo.UpdateUserMission(ctx, progress))

	all, err := repo.ListUserMissions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(3), all[0].CurrentValues[entity.EventCommentCreated])
	assert.True(t, all[0].IsCompleted)
	assert.Equal(t, int64(1), all[0].CompletionCount)

	_, err = repo.FindMissionByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrMissionNotFound)
}
