package repository

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrMissionNotFound is returned when a mission does not exist.
	ErrMissionNotFound = errors.New("mission not found")
	// ErrUserMissionNotFound is returned when the user has no progress row for a mission.
	ErrUserMissionNotFound = errors.New("user mission not found")
)

// MissionRepository persists missions and per-user progress.
type MissionRepository interface {
	// ListActiveMissions returns every active mission.
	ListActiveMissions(ctx context.Context) ([]*entity.Mission, error)

	// FindMissionByID retrieves a mission.
	FindMissionByID(ctx context.Context, id uuid.UUID) (*entity.Mission, error)

	// EnsureUserMission inserts the progress row if it does not exist yet.
	EnsureUserMission(ctx context.Context, progress *entity.UserMission) error

	// FindUserMissionForUpdate retrieves and locks the progress row.
	FindUserMissionForUpdate(ctx context.Context, userID, missionID uuid.UUID) (*entity.UserMission, error)

	// UpdateUserMission saves counters and completion state.
	UpdateUserMission(ctx context.Context, progress *entity.UserMission) error

	// ListUserMissions returns the progress rows of the user.
	ListUserMissions(ctx context.Context, userID uuid.UUID) ([]*entity.UserMission, error)
}
