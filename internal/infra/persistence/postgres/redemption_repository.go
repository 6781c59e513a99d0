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

// redemptionRepository implements the repository.RedemptionRepository interface.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{
		db: db,
	}
}

// CreateRedemption records the redemption of a claim. The unique index on
// claim_id turns a second redemption into ErrDuplicateRedemption.
func (repo *redemptionRepository) CreateRedemption(ctx context.Context, redemption *entity.ClaimRedemption) error {
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRedemption
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.ID = redemptionM.ID
	redemption.CreatedAt = redemptionM.CreatedAt

	return nil
}

// FindByClaimID retrieves the redemption of a claim.
func (repo *redemptionRepository) FindByClaimID(ctx context.Context, claimID uuid.UUID) (*entity.ClaimRedemption, error) {
	var redemptionM model.ClaimRedemptionModel

	if err := repo.db.WithContext(ctx).Where("claim_id = ?", claimID).First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// --- Mapper Functions ---

func toRedemptionDomain(data *model.ClaimRedemptionModel) *entity.ClaimRedemption {
	if data == nil {
		return nil
	}

	return &entity.ClaimRedemption{
		ID:              data.ID,
		ClaimID:         data.ClaimID,
		UserID:          data.UserID,
		MerchantOfferID: data.MerchantOfferID,
		Quantity:        data.Quantity,
		CreatedAt:       data.CreatedAt,
	}
}

func fromRedemptionDomain(data *entity.ClaimRedemption) *model.ClaimRedemptionModel {
	if data == nil {
		return nil
	}

	return &model.ClaimRedemptionModel{
		ID:              ensureID(data.ID),
		ClaimID:         data.ClaimID,
		UserID:          data.UserID,
		MerchantOfferID: data.MerchantOfferID,
		Quantity:        data.Quantity,
		CreatedAt:       data.CreatedAt,
	}
}
