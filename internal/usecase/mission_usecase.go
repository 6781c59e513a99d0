package usecase

import (
	"context"

	"rewards/internal/domain/entity"

	"github.com/google/uuid"
)

// MissionRewardOutput is the outcome of a manual reward claim
type MissionRewardOutput struct {
	Mission     *entity.Mission
	Progress    *entity.UserMission
	PointsEntry *entity.PointLedgerEntry
}

// MissionUsecase defines the mission progress tracker
type MissionUsecase interface {
	// HandleEvent advances every active mission that tracks the event
	HandleEvent(ctx context.Context, event *entity.DomainEvent) error

	// CompleteMission pays out the reward of a completed, manually disbursed mission
	CompleteMission(ctx context.Context, userID, missionID uuid.UUID) (*MissionRewardOutput, error)

	// Rearm clears completion and disbursement so the mission can complete again
	Rearm(ctx context.Context, userID, missionID uuid.UUID) error

	// ListUserMissions returns every active mission with the user's progress, if any
	ListUserMissions(ctx context.Context, userID uuid.UUID) ([]*entity.UserMissionView, error)
}
