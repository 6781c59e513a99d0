package postgres

import (
	"context"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// voucherRepository implements the repository.VoucherRepository interface.
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository is the constructor for voucherRepository.
func NewVoucherRepository(db *gorm.DB) repository.VoucherRepository {
	return &voucherRepository{
		db: db,
	}
}

// FindAvailableForUpdate locks the oldest unowned, non-voided voucher of the offer.
// Rows already locked by a concurrent reservation are skipped.
func (repo *voucherRepository) FindAvailableForUpdate(ctx context.Context, offerID uuid.UUID) (*entity.MerchantOfferVoucher, error) {
	var voucherM model.MerchantOfferVoucherModel

	if err := repo.db.WithContext(ctx).
		Clauses(forUpdateSkipLocked).
		Where("merchant_offer_id = ? AND owned_by_id IS NULL AND voided = ?", offerID, false).
		Order("created_at ASC").
		Order("id ASC").
		First(&voucherM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoVoucherAvailable
		}

		return nil, errors.Wrap(err, "failed to find available voucher")
	}

	return toVoucherDomain(&voucherM), nil
}

// FindVoucherByID retrieves a voucher.
func (repo *voucherRepository) FindVoucherByID(ctx context.Context, id uuid.UUID) (*entity.MerchantOfferVoucher, error) {
	var voucherM model.MerchantOfferVoucherModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&voucherM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher")
	}

	return toVoucherDomain(&voucherM), nil
}

// AssignOwner reserves the voucher for the claim. It only succeeds on a free voucher.
func (repo *voucherRepository) AssignOwner(ctx context.Context, voucherID, userID, claimID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantOfferVoucherModel{}).
		Where("id = ? AND owned_by_id IS NULL AND voided = ?", voucherID, false).
		Updates(map[string]any{
			"owned_by_id": userID,
			"claim_id":    claimID,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to assign voucher owner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVoucherUnavailable
	}

	return nil
}

// ClearOwner puts the voucher back into the pool.
func (repo *voucherRepository) ClearOwner(ctx context.Context, voucherID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantOfferVoucherModel{}).
		Where("id = ?", voucherID).
		Updates(map[string]any{
			"owned_by_id": nil,
			"claim_id":    nil,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear voucher owner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVoucherNotFound
	}

	return nil
}

// Void marks the voucher unusable. Ownership is kept for audit.
func (repo *voucherRepository) Void(ctx context.Context, voucherID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantOfferVoucherModel{}).
		Where("id = ?", voucherID).
		Updates(map[string]any{
			"voided":     true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to void voucher")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVoucherNotFound
	}

	return nil
}

// CreateVouchers seeds the pool of an offer.
func (repo *voucherRepository) CreateVouchers(ctx context.Context, vouchers []*entity.MerchantOfferVoucher) error {
	if len(vouchers) == 0 {
		return nil
	}

	voucherModels := make([]*model.MerchantOfferVoucherModel, 0, len(vouchers))
	for _, voucher := range vouchers {
		voucherModels = append(voucherModels, fromVoucherDomain(voucher))
	}

	if err := repo.db.WithContext(ctx).Create(&voucherModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("voucher code already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOfferNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vouchers")
	}

	for i, voucherM := range voucherModels {
		vouchers[i].ID = voucherM.ID
		vouchers[i].CreatedAt = voucherM.CreatedAt
		vouchers[i].UpdatedAt = voucherM.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

func toVoucherDomain(data *model.MerchantOfferVoucherModel) *entity.MerchantOfferVoucher {
	if data == nil {
		return nil
	}

	return &entity.MerchantOfferVoucher{
		ID:              data.ID,
		MerchantOfferID: data.MerchantOfferID,
		Code:            data.Code,
		OwnedByID:       data.OwnedByID,
		ClaimID:         data.ClaimID,
		Voided:          data.Voided,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromVoucherDomain(data *entity.MerchantOfferVoucher) *model.MerchantOfferVoucherModel {
	if data == nil {
		return nil
	}

	return &model.MerchantOfferVoucherModel{
		ID:              ensureID(data.ID),
		MerchantOfferID: data.MerchantOfferID,
		Code:            data.Code,
		OwnedByID:       data.OwnedByID,
		ClaimID:         data.ClaimID,
		Voided:          data.Voided,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
