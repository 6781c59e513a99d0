package postgres

import (
	"context"
	"encoding/json"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const componentLedgerLockNamespace = "component_ledger"

// componentLedgerRepository implements the repository.ComponentLedgerRepository interface.
type componentLedgerRepository struct {
	db *gorm.DB
}

// NewComponentLedgerRepository is the constructor for componentLedgerRepository.
func NewComponentLedgerRepository(db *gorm.DB) repository.ComponentLedgerRepository {
	return &componentLedgerRepository{
		db: db,
	}
}

// LockAccount serializes writers of the (user, component) ledger until the transaction ends.
func (repo *componentLedgerRepository) LockAccount(ctx context.Context, userID, componentID uuid.UUID) error {
	return advisoryXactLock(ctx, repo.db, componentLedgerLockNamespace, userID, componentID)
}

// FindLatest returns the most recent entry of the (user, component) ledger.
func (repo *componentLedgerRepository) FindLatest(ctx context.Context, userID, componentID uuid.UUID) (*entity.PointComponentLedgerEntry, error) {
	var entryM model.PointComponentLedgerEntryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND component_id = ?", userID, componentID).
		Order("seq DESC").
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLedgerEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest component ledger entry")
	}

	return toComponentLedgerEntryDomain(&entryM), nil
}

// Append inserts a new entry.
func (repo *componentLedgerRepository) Append(ctx context.Context, entry *entity.PointComponentLedgerEntry) error {
	entryM := fromComponentLedgerEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLedgerSequenceConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrComponentNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAmount.WrapMessage("component ledger entry violates amount constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append component ledger entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// BalancesByUser returns the latest balance of every component the user ever held.
func (repo *componentLedgerRepository) BalancesByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	latest := repo.db.
		Model(&model.PointComponentLedgerEntryModel{}).
		Select("component_id, MAX(seq) AS seq").
		Where("user_id = ?", userID).
		Group("component_id")

	var rows []struct {
		ComponentID  uuid.UUID
		BalanceAfter int64
	}
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Table("point_component_ledger_entries AS e").
		Select("e.component_id, e.balance_after").
		Joins("JOIN (?) AS latest ON latest.component_id = e.component_id AND latest.seq = e.seq", latest).
		Where("e.user_id = ?", userID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load component balances")
	}

	balances := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		balances[row.ComponentID] = row.BalanceAfter
	}

	return balances, nil
}

// FindComponentByID retrieves a component.
func (repo *componentLedgerRepository) FindComponentByID(ctx context.Context, id uuid.UUID) (*entity.PointComponent, error) {
	var componentM model.PointComponentModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&componentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComponentNotFound
		}

		return nil, errors.Wrap(err, "failed to find point component")
	}

	return toComponentDomain(&componentM), nil
}

// ListComponents returns the component catalog.
func (repo *componentLedgerRepository) ListComponents(ctx context.Context) ([]*entity.PointComponent, error) {
	var componentModels []*model.PointComponentModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("code ASC").
		Find(&componentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list point components")
	}

	components := make([]*entity.PointComponent, 0, len(componentModels))
	for _, componentM := range componentModels {
		components = append(components, toComponentDomain(componentM))
	}

	return components, nil
}

// FindRecipeByID retrieves an active recipe.
func (repo *componentLedgerRepository) FindRecipeByID(ctx context.Context, id uuid.UUID) (*entity.ComponentRecipe, error) {
	var recipeM model.ComponentRecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find component recipe")
	}

	return toRecipeDomain(&recipeM)
}

// --- Mapper Functions ---

func toComponentLedgerEntryDomain(data *model.PointComponentLedgerEntryModel) *entity.PointComponentLedgerEntry {
	if data == nil {
		return nil
	}

	return &entity.PointComponentLedgerEntry{
		ID:            data.ID,
		UserID:        data.UserID,
		ComponentID:   data.ComponentID,
		Seq:           data.Seq,
		Amount:        data.Amount,
		Direction:     entity.Direction(data.Direction),
		BalanceAfter:  data.BalanceAfter,
		ReferenceType: entity.ReferenceType(data.ReferenceType),
		ReferenceID:   data.ReferenceID,
		Remarks:       data.Remarks,
		CreatedAt:     data.CreatedAt,
	}
}

func fromComponentLedgerEntryDomain(data *entity.PointComponentLedgerEntry) *model.PointComponentLedgerEntryModel {
	if data == nil {
		return nil
	}

	return &model.PointComponentLedgerEntryModel{
		ID:            ensureID(data.ID),
		UserID:        data.UserID,
		ComponentID:   data.ComponentID,
		Seq:           data.Seq,
		Amount:        data.Amount,
		Direction:     data.Direction.String(),
		BalanceAfter:  data.BalanceAfter,
		ReferenceType: string(data.ReferenceType),
		ReferenceID:   data.ReferenceID,
		Remarks:       data.Remarks,
		CreatedAt:     data.CreatedAt,
	}
}

func toComponentDomain(data *model.PointComponentModel) *entity.PointComponent {
	if data == nil {
		return nil
	}

	return &entity.PointComponent{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

func toRecipeDomain(data *model.ComponentRecipeModel) (*entity.ComponentRecipe, error) {
	var requirements []entity.ComponentAmount
	if len(data.Requirements) > 0 {
		if err := json.Unmarshal(data.Requirements, &requirements); err != nil {
			return nil, errors.Wrap(err, "failed to decode recipe requirements")
		}
	}

	return &entity.ComponentRecipe{
		ID:           data.ID,
		Name:         data.Name,
		Requirements: requirements,
		RewardPoints: data.RewardPoints,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}, nil
}
