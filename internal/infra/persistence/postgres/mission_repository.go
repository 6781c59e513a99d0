package postgres

import (
	"context"
	"encoding/json"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// missionRepository implements the repository.MissionRepository interface.
type missionRepository struct {
	db *gorm.DB
}

// NewMissionRepository is the constructor for missionRepository.
func NewMissionRepository(db *gorm.DB) repository.MissionRepository {
	return &missionRepository{
		db: db,
	}
}

// ListActiveMissions returns every active mission.
func (repo *missionRepository) ListActiveMissions(ctx context.Context) ([]*entity.Mission, error) {
	var missionModels []*model.MissionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&missionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list missions")
	}

	missions := make([]*entity.Mission, 0, len(missionModels))
	for _, missionM := range missionModels {
		mission, err := toMissionDomain(missionM)
		if err != nil {
			return nil, err
		}
		missions = append(missions, mission)
	}

	return missions, nil
}

// FindMissionByID retrieves a mission regardless of its active flag.
func (repo *missionRepository) FindMissionByID(ctx context.Context, id uuid.UUID) (*entity.Mission, error) {
	var missionM model.MissionModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&missionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find mission")
	}

	return toMissionDomain(&missionM)
}

// EnsureUserMission creates the progress row unless one already exists for the pair.
func (repo *missionRepository) EnsureUserMission(ctx context.Context, progress *entity.UserMission) error {
	progressM, err := fromUserMissionDomain(progress)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "mission_id"}},
			DoNothing: true,
		}).
		Create(progressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMissionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure user mission")
	}

	return nil
}

// FindUserMissionForUpdate locks the progress row of the pair.
func (repo *missionRepository) FindUserMissionForUpdate(ctx context.Context, userID, missionID uuid.UUID) (*entity.UserMission, error) {
	var progressM model.UserMissionModel

	if err := repo.db.WithContext(ctx).
		Clauses(forUpdate).
		Where("user_id = ? AND mission_id = ?", userID, missionID).
		First(&progressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserMissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find user mission")
	}

	return toUserMissionDomain(&progressM)
}

// UpdateUserMission persists progress, completion and disbursement state.
func (repo *missionRepository) UpdateUserMission(ctx context.Context, progress *entity.UserMission) error {
	values, err := json.Marshal(progress.CurrentValues)
	if err != nil {
		return errors.Wrap(err, "failed to encode mission progress")
	}

	progress.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserMissionModel{}).
		Where("id = ?", progress.ID).
		Updates(map[string]any{
			"current_values":   datatypes.JSON(values),
			"is_completed":     progress.IsCompleted,
			"completed_at":     progress.CompletedAt,
			"is_disbursed":     progress.IsDisbursed,
			"disbursed_at":     progress.DisbursedAt,
			"period_start":     progress.PeriodStart,
			"completion_count": progress.CompletionCount,
			"updated_at":       progress.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user mission")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserMissionNotFound
	}

	return nil
}

// ListUserMissions returns every progress row of the user.
func (repo *missionRepository) ListUserMissions(ctx context.Context, userID uuid.UUID) ([]*entity.UserMission, error) {
	var progressModels []*model.UserMissionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Find(&progressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user missions")
	}

	progress := make([]*entity.UserMission, 0, len(progressModels))
	for _, progressM := range progressModels {
		um, err := toUserMissionDomain(progressM)
		if err != nil {
			return nil, err
		}
		progress = append(progress, um)
	}

	return progress, nil
}

// --- Mapper Functions ---

func toMissionDomain(data *model.MissionModel) (*entity.Mission, error) {
	mission := &entity.Mission{
		ID:                  data.ID,
		Name:                data.Name,
		Frequency:           entity.MissionFrequency(data.Frequency),
		AutoDisburseRewards: data.AutoDisburseRewards,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if len(data.Goals) > 0 {
		if err := json.Unmarshal(data.Goals, &mission.Goals); err != nil {
			return nil, errors.Wrap(err, "failed to decode mission goals")
		}
	}
	if len(data.Reward) > 0 {
		if err := json.Unmarshal(data.Reward, &mission.Reward); err != nil {
			return nil, errors.Wrap(err, "failed to decode mission reward")
		}
	}

	return mission, nil
}

func toUserMissionDomain(data *model.UserMissionModel) (*entity.UserMission, error) {
	progress := &entity.UserMission{
		ID:              data.ID,
		UserID:          data.UserID,
		MissionID:       data.MissionID,
		CurrentValues:   map[string]int64{},
		IsCompleted:     data.IsCompleted,
		CompletedAt:     data.CompletedAt,
		IsDisbursed:     data.IsDisbursed,
		DisbursedAt:     data.DisbursedAt,
		PeriodStart:     data.PeriodStart,
		CompletionCount: data.CompletionCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if len(data.CurrentValues) > 0 {
		if err := json.Unmarshal(data.CurrentValues, &progress.CurrentValues); err != nil {
			return nil, errors.Wrap(err, "failed to decode mission progress")
		}
	}

	return progress, nil
}

func fromUserMissionDomain(data *entity.UserMission) (*model.UserMissionModel, error) {
	values := data.CurrentValues
	if values == nil {
		values = map[string]int64{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode mission progress")
	}

	return &model.UserMissionModel{
		ID:              ensureID(data.ID),
		UserID:          data.UserID,
		MissionID:       data.MissionID,
		CurrentValues:   datatypes.JSON(encoded),
		IsCompleted:     data.IsCompleted,
		CompletedAt:     data.CompletedAt,
		IsDisbursed:     data.IsDisbursed,
		DisbursedAt:     data.DisbursedAt,
		PeriodStart:     data.PeriodStart,
		CompletionCount: data.CompletionCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
