package impl

import (
	"context"
	"log/slog"
	"time"
	_ "time/tzdata"

	"rewards/config"
	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/domain/service"
	"rewards/internal/infra/metrics"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type missionService struct {
	txManager   repository.TransactionManager
	missionRepo repository.MissionRepository
	publisher   service.EventPublisher
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// MissionServiceParams holds dependencies for MissionService, injected by Fx.
type MissionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MissionRepo repository.MissionRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMissionService is the constructor for missionService.
func NewMissionService(params MissionServiceParams) (usecase.MissionUsecase, error) {
	location := time.UTC
	if params.Config != nil && params.Config.Missions != nil && params.Config.Missions.Timezone != "" {
		loc, err := time.LoadLocation(params.Config.Missions.Timezone)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid missions timezone %q", params.Config.Missions.Timezone)
		}
		location = loc
	}

	return &missionService{
		txManager:   params.TxManager,
		missionRepo: params.MissionRepo,
		publisher:   params.Publisher,
		location:    location,
		logger:      params.Logger,
		now:         time.Now,
	}, nil
}

func (srv *missionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// dayStart is midnight of now's day in the configured timezone.
func (srv *missionService) dayStart(now time.Time) time.Time {
	local := now.In(srv.location)
	year, month, day := local.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, srv.location)
}

// HandleEvent advances every active mission tracking the event. Each mission is
// updated in its own transaction so one failing mission does not hold back the rest.
func (srv *missionService) HandleEvent(ctx context.Context, event *entity.DomainEvent) error {
	if event == nil || event.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("event user is required")
	}

	ctx, span := startSpan(ctx, "MissionService.HandleEvent",
		attribute.String("event", event.Name),
		attribute.String("user_id", event.UserID.String()),
	)

	missions, err := srv.missionRepo.ListActiveMissions(ctx)
	if err != nil {
		err = errors.Wrap(err, "failed to list active missions")
		endSpan(span, err)

		return err
	}

	var firstErr error
	for _, mission := range missions {
		if !mission.Tracks(event.Name) {
			continue
		}

		completed, err := srv.advance(ctx, mission, event)
		if err != nil {
			srv.log(ctx).Error("Failed to advance mission",
				slog.String("missionID", mission.ID.String()),
				slog.String("userID", event.UserID.String()),
				slog.String("event", event.Name),
				slog.Any("error", err),
			)
			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		if completed != nil {
			srv.log(ctx).Info("Mission completed",
				slog.String("missionID", mission.ID.String()),
				slog.String("userID", event.UserID.String()),
				slog.Bool("disbursed", completed.IsDisbursed),
			)
			publishAfterCommit(ctx, srv.publisher, srv.log(ctx), entity.NewMissionCompletedEvent(completed))
		}
	}

	endSpan(span, firstErr)

	return firstErr
}

// advance applies one event to the user's progress on mission. It returns the
// progress when this event completed the mission.
func (srv *missionService) advance(ctx context.Context, mission *entity.Mission, event *entity.DomainEvent) (*entity.UserMission, error) {
	var completed *entity.UserMission

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		missionRepo := repoFactory.MissionRepo()
		now := srv.now()

		progress, err := srv.lockProgress(ctx, missionRepo, event.UserID, mission.ID, now)
		if err != nil {
			return err
		}

		switch mission.Frequency {
		case entity.MissionFrequencyOneOff:
			if progress.IsCompleted {
				return nil
			}
		case entity.MissionFrequencyDaily:
			today := srv.dayStart(now)
			if progress.PeriodStart == nil || progress.PeriodStart.Before(today) {
				progress.ResetProgress(today)
			}
		}

		if progress.CurrentValues == nil {
			progress.CurrentValues = map[string]int64{}
		}
		progress.CurrentValues[event.Name]++
		progress.UpdatedAt = now

		if !progress.IsCompleted && progress.GoalsReached(mission) {
			progress.IsCompleted = true
			progress.CompletedAt = &now
			progress.CompletionCount++

			if mission.AutoDisburseRewards {
				if _, err := srv.disburse(ctx, repoFactory, mission, progress, now); err != nil {
					return err
				}
			}

			completed = progress
		}

		if err := missionRepo.UpdateUserMission(ctx, progress); err != nil {
			return errors.Wrap(err, "failed to update mission progress")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed != nil {
		metrics.MissionCompletionsTotal.WithLabelValues(mission.Frequency.String(), disbursementLabel(mission)).Inc()
		if completed.IsDisbursed {
			countRewardEntries(mission)
		}
	}

	return completed, nil
}

// countRewardEntries records the ledger entries a disbursed reward produced.
func countRewardEntries(mission *entity.Mission) {
	if mission.Reward.Points > 0 {
		metrics.LedgerEntriesTotal.WithLabelValues("points", entity.DirectionCredit.String()).Inc()
	}
	if n := len(mergeRequirements(mission.Reward.Components)); n > 0 {
		metrics.LedgerEntriesTotal.WithLabelValues("components", entity.DirectionCredit.String()).Add(float64(n))
	}
}

func disbursementLabel(mission *entity.Mission) string {
	if mission.AutoDisburseRewards {
		return "auto"
	}

	return "manual"
}

// lockProgress creates the progress row on first sight and locks it.
func (srv *missionService) lockProgress(ctx context.Context, missionRepo repository.MissionRepository, userID, missionID uuid.UUID, now time.Time) (*entity.UserMission, error) {
	periodStart := srv.dayStart(now)
	seed := &entity.UserMission{
		ID:            uuid.New(),
		UserID:        userID,
		MissionID:     missionID,
		CurrentValues: map[string]int64{},
		PeriodStart:   &periodStart,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := missionRepo.EnsureUserMission(ctx, seed); err != nil {
		return nil, errors.Wrap(err, "failed to create mission progress")
	}

	progress, err := missionRepo.FindUserMissionForUpdate(ctx, userID, missionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock mission progress")
	}

	return progress, nil
}

// disburse credits the mission reward and marks the progress as paid out.
func (srv *missionService) disburse(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	mission *entity.Mission,
	progress *entity.UserMission,
	now time.Time,
) (*entity.PointLedgerEntry, error) {
	ref := entity.LedgerReference{Type: entity.ReferenceMission, ID: mission.ID}
	remarks := "mission reward: " + mission.Name

	var pointsEntry *entity.PointLedgerEntry
	if mission.Reward.Points > 0 {
		entry, err := appendPointEntry(ctx, repoFactory.PointLedgerRepo(), progress.UserID, mission.Reward.Points, entity.DirectionCredit, ref, remarks, now)
		if err != nil {
			return nil, err
		}
		pointsEntry = entry
	}

	for _, component := range mergeRequirements(mission.Reward.Components) {
		if _, err := appendComponentEntry(ctx, repoFactory.ComponentLedgerRepo(), progress.UserID, component.ComponentID, component.Quantity, entity.DirectionCredit, ref, remarks, now); err != nil {
			return nil, err
		}
	}

	progress.IsDisbursed = true
	progress.DisbursedAt = &now

	return pointsEntry, nil
}

// CompleteMission pays out the reward of a completed mission that is not disbursed automatically.
func (srv *missionService) CompleteMission(ctx context.Context, userID, missionID uuid.UUID) (*usecase.MissionRewardOutput, error) {
	ctx, span := startSpan(ctx, "MissionService.CompleteMission", attribute.String("mission_id", missionID.String()))

	var output *usecase.MissionRewardOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		missionRepo := repoFactory.MissionRepo()

		mission, err := findMission(ctx, missionRepo, missionID)
		if err != nil {
			return err
		}

		if mission.AutoDisburseRewards {
			return domainerrors.ErrAlreadyAutoDisbursed
		}

		progress, err := missionRepo.FindUserMissionForUpdate(ctx, userID, missionID)
		if errors.Is(err, repository.ErrUserMissionNotFound) {
			return domainerrors.ErrMissionNotCompleted
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock mission progress")
		}

		if !progress.IsCompleted {
			return domainerrors.ErrMissionNotCompleted
		}
		if progress.IsDisbursed {
			return domainerrors.ErrRewardAlreadyClaimed
		}

		now := srv.now()
		pointsEntry, err := srv.disburse(ctx, repoFactory, mission, progress, now)
		if err != nil {
			return err
		}
		progress.UpdatedAt = now

		if err := missionRepo.UpdateUserMission(ctx, progress); err != nil {
			return errors.Wrap(err, "failed to update mission progress")
		}

		output = &usecase.MissionRewardOutput{Mission: mission, Progress: progress, PointsEntry: pointsEntry}

		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}

	countRewardEntries(output.Mission)
	srv.log(ctx).Info("Mission reward claimed",
		slog.String("missionID", missionID.String()),
		slog.String("userID", userID.String()),
	)

	return output, nil
}

// Rearm clears completion and disbursement of an accumulated mission. Counters are kept,
// so it completes again on the next event that still satisfies its goals. One-off
// missions stay locked and daily missions re-arm themselves at the day boundary.
func (srv *missionService) Rearm(ctx context.Context, userID, missionID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		missionRepo := repoFactory.MissionRepo()

		mission, err := findMission(ctx, missionRepo, missionID)
		if err != nil {
			return err
		}
		if mission.Frequency != entity.MissionFrequencyAccumulated {
			return domainerrors.ErrMissionNotRearmable
		}

		progress, err := missionRepo.FindUserMissionForUpdate(ctx, userID, missionID)
		if errors.Is(err, repository.ErrUserMissionNotFound) {
			return domainerrors.ErrMissionNotCompleted
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock mission progress")
		}

		progress.IsCompleted = false
		progress.CompletedAt = nil
		progress.IsDisbursed = false
		progress.DisbursedAt = nil
		progress.UpdatedAt = srv.now()

		if err := missionRepo.UpdateUserMission(ctx, progress); err != nil {
			return errors.Wrap(err, "failed to update mission progress")
		}

		return nil
	})
}

// ListUserMissions returns the active missions with the user's progress. Daily progress
// from a previous day is shown as reset, matching what the next event would do.
func (srv *missionService) ListUserMissions(ctx context.Context, userID uuid.UUID) ([]*entity.UserMissionView, error) {
	missions, err := srv.missionRepo.ListActiveMissions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active missions")
	}

	progresses, err := srv.missionRepo.ListUserMissions(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mission progress")
	}

	byMission := make(map[uuid.UUID]*entity.UserMission, len(progresses))
	for _, p := range progresses {
		byMission[p.MissionID] = p
	}

	today := srv.dayStart(srv.now())
	views := make([]*entity.UserMissionView, 0, len(missions))
	for _, mission := range missions {
		progress := byMission[mission.ID]
		if progress != nil && mission.Frequency == entity.MissionFrequencyDaily &&
			(progress.PeriodStart == nil || progress.PeriodStart.Before(today)) {
			progress.ResetProgress(today)
		}
		views = append(views, &entity.UserMissionView{Mission: mission, Progress: progress})
	}

	return views, nil
}

func findMission(ctx context.Context, missionRepo repository.MissionRepository, missionID uuid.UUID) (*entity.Mission, error) {
	mission, err := missionRepo.FindMissionByID(ctx, missionID)
	if errors.Is(err, repository.ErrMissionNotFound) {
		return nil, domainerrors.ErrMissionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find mission")
	}

	return mission, nil
}
