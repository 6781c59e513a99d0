package postgres

import (
	"context"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const pointLedgerLockNamespace = "point_ledger"

// pointLedgerRepository implements the repository.PointLedgerRepository interface.
type pointLedgerRepository struct {
	db *gorm.DB
}

// NewPointLedgerRepository is the constructor for pointLedgerRepository.
func NewPointLedgerRepository(db *gorm.DB) repository.PointLedgerRepository {
	return &pointLedgerRepository{
		db: db,
	}
}

// LockAccount serializes ledger writers of the user until the transaction ends.
func (repo *pointLedgerRepository) LockAccount(ctx context.Context, userID uuid.UUID) error {
	return advisoryXactLock(ctx, repo.db, pointLedgerLockNamespace, userID)
}

// FindLatest returns the most recent entry of the user. Reads go to the primary.
func (repo *pointLedgerRepository) FindLatest(ctx context.Context, userID uuid.UUID) (*entity.PointLedgerEntry, error) {
	var entryM model.PointLedgerEntryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("seq DESC").
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLedgerEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest ledger entry")
	}

	return toPointLedgerEntryDomain(&entryM), nil
}

// Append inserts a new entry.
func (repo *pointLedgerRepository) Append(ctx context.Context, entry *entity.PointLedgerEntry) error {
	entryM := fromPointLedgerEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLedgerSequenceConflict
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAmount.WrapMessage("ledger entry violates amount constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append ledger entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListByUser returns entries newest first and the total count.
func (repo *pointLedgerRepository) ListByUser(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.PointLedgerEntry, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.PointLedgerEntryModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count ledger entries")
	}

	var entryModels []*model.PointLedgerEntryModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Order("seq DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&entryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list ledger entries")
	}

	entries := make([]*entity.PointLedgerEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toPointLedgerEntryDomain(entryM))
	}

	return entries, total, nil
}

// --- Mapper Functions ---

func toPointLedgerEntryDomain(data *model.PointLedgerEntryModel) *entity.PointLedgerEntry {
	if data == nil {
		return nil
	}

	return &entity.PointLedgerEntry{
		ID:            data.ID,
		UserID:        data.UserID,
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

func fromPointLedgerEntryDomain(data *entity.PointLedgerEntry) *model.PointLedgerEntryModel {
	if data == nil {
		return nil
	}

	return &model.PointLedgerEntryModel{
		ID:            ensureID(data.ID),
		UserID:        data.UserID,
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
