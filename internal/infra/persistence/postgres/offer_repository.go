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
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// FindOfferByID retrieves an offer without locking it.
func (repo *offerRepository) FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.MerchantOffer, error) {
	return repo.findOffer(repo.db.WithContext(ctx), id)
}

// FindOfferByIDForUpdate retrieves an offer and holds its row lock until the transaction ends.
func (repo *offerRepository) FindOfferByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.MerchantOffer, error) {
	return repo.findOffer(repo.db.WithContext(ctx).Clauses(forUpdate), id)
}

func (repo *offerRepository) findOffer(db *gorm.DB, id uuid.UUID) (*entity.MerchantOffer, error) {
	var offerM model.MerchantOfferModel

	if err := db.Where("id = ?", id).First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant offer")
	}

	return toOfferDomain(&offerM), nil
}

// DecrementQuantity takes n units from the offer. The guard in the WHERE clause
// keeps the quantity from going negative even without a prior row lock.
func (repo *offerRepository) DecrementQuantity(ctx context.Context, id uuid.UUID, n int64) error {
	if n <= 0 {
		return domainerrors.ErrInvalidAmount.WrapMessage("quantity decrement must be positive")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantOfferModel{}).
		Where("id = ? AND quantity >= ?", id, n).
		Update("quantity", gorm.Expr("quantity - ?", n))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrOfferQuantityExhausted
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement offer quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferQuantityExhausted
	}

	return nil
}

// IncrementQuantity returns n units to the offer.
func (repo *offerRepository) IncrementQuantity(ctx context.Context, id uuid.UUID, n int64) error {
	if n <= 0 {
		return domainerrors.ErrInvalidAmount.WrapMessage("quantity increment must be positive")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantOfferModel{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", n))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment offer quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// FindMerchantByID retrieves a merchant.
func (repo *offerRepository) FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return toMerchantDomain(&merchantM), nil
}

// --- Mapper Functions ---

func toOfferDomain(data *model.MerchantOfferModel) *entity.MerchantOffer {
	if data == nil {
		return nil
	}

	return &entity.MerchantOffer{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		Title:          data.Title,
		UnitPrice:      data.UnitPrice,
		FiatPrice:      data.FiatPrice,
		Quantity:       data.Quantity,
		AvailableAt:    data.AvailableAt,
		AvailableUntil: data.AvailableUntil,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	return &entity.Merchant{
		ID:             data.ID,
		OwnerUserID:    data.OwnerUserID,
		Name:           data.Name,
		RedeemCodeHash: data.RedeemCodeHash,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
