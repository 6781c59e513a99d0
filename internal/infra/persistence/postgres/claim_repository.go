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
	"gorm.io/plugin/dbresolver"
)

// claimRepository implements the repository.ClaimRepository interface.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{
		db: db,
	}
}

// CreateClaim inserts a new claim.
func (repo *claimRepository) CreateClaim(ctx context.Context, claim *entity.MerchantOfferClaim) error {
	claimM := fromClaimDomain(claim)

	if err := repo.db.WithContext(ctx).Create(claimM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("claim order number collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOfferNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create claim")
	}

	claim.ID = claimM.ID
	claim.CreatedAt = claimM.CreatedAt
	claim.UpdatedAt = claimM.UpdatedAt

	return nil
}

// FindClaimByID retrieves a claim.
func (repo *claimRepository) FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.MerchantOfferClaim, error) {
	return repo.findClaim(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindClaimByIDForUpdate retrieves a claim and holds its row lock.
func (repo *claimRepository) FindClaimByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.MerchantOfferClaim, error) {
	return repo.findClaim(repo.db.WithContext(ctx).Clauses(forUpdate).Where("id = ?", id))
}

// FindLatestAwaitingPaymentForUpdate locks the newest unpaid claim of the user on the offer.
func (repo *claimRepository) FindLatestAwaitingPaymentForUpdate(ctx context.Context, userID, offerID uuid.UUID) (*entity.MerchantOfferClaim, error) {
	return repo.findClaim(repo.db.WithContext(ctx).
		Clauses(forUpdate).
		Where("user_id = ? AND merchant_offer_id = ? AND status = ?", userID, offerID, entity.ClaimStatusAwaitPayment.String()).
		Order("created_at DESC"))
}

func (repo *claimRepository) findClaim(db *gorm.DB) (*entity.MerchantOfferClaim, error) {
	var claimM model.MerchantOfferClaimModel

	if err := db.First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim")
	}

	return toClaimDomain(&claimM), nil
}

// UpdateClaim persists the mutable fields of a claim.
func (repo *claimRepository) UpdateClaim(ctx context.Context, claim *entity.MerchantOfferClaim) error {
	claim.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantOfferClaimModel{}).
		Where("id = ?", claim.ID).
		Updates(map[string]any{
			"voucher_id": claim.VoucherID,
			"status":     claim.Status.String(),
			"updated_at": claim.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update claim")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClaimNotFound
	}

	return nil
}

// ListClaimedOffers pages through the user's live claims, newest first. Failed
// claims and claims whose voucher was voided are left out.
func (repo *claimRepository) ListClaimedOffers(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.ClaimedOffer, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.
			Where("user_id = ? AND status <> ?", userID, entity.ClaimStatusFailed.String()).
			Where("NOT EXISTS (SELECT 1 FROM merchant_offer_vouchers v WHERE v.id = merchant_offer_claims.voucher_id AND v.voided = ?)", true)
	}

	reader := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Session(&gorm.Session{})

	var total int64
	if err := reader.Model(&model.MerchantOfferClaimModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count claimed offers")
	}

	var claimModels []*model.MerchantOfferClaimModel
	if err := reader.Scopes(scope).
		Order("created_at DESC").
		Order("id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&claimModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list claimed offers")
	}

	if len(claimModels) == 0 {
		return []*entity.ClaimedOffer{}, total, nil
	}

	offerIDs := make([]uuid.UUID, 0, len(claimModels))
	voucherIDs := make([]uuid.UUID, 0, len(claimModels))
	claimIDs := make([]uuid.UUID, 0, len(claimModels))
	for _, claimM := range claimModels {
		offerIDs = append(offerIDs, claimM.MerchantOfferID)
		claimIDs = append(claimIDs, claimM.ID)
		if claimM.VoucherID != nil {
			voucherIDs = append(voucherIDs, *claimM.VoucherID)
		}
	}

	var offerModels []*model.MerchantOfferModel
	if err := reader.Where("id IN ?", offerIDs).Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to load claimed offer details")
	}
	offers := make(map[uuid.UUID]*entity.MerchantOffer, len(offerModels))
	for _, offerM := range offerModels {
		offers[offerM.ID] = toOfferDomain(offerM)
	}

	vouchers := make(map[uuid.UUID]*entity.MerchantOfferVoucher, len(voucherIDs))
	if len(voucherIDs) > 0 {
		var voucherModels []*model.MerchantOfferVoucherModel
		if err := reader.Where("id IN ?", voucherIDs).Find(&voucherModels).Error; err != nil {
			return nil, 0, errors.Wrap(err, "failed to load claimed vouchers")
		}
		for _, voucherM := range voucherModels {
			vouchers[voucherM.ID] = toVoucherDomain(voucherM)
		}
	}

	var redemptionModels []*model.ClaimRedemptionModel
	if err := reader.Where("claim_id IN ?", claimIDs).Find(&redemptionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to load claim redemptions")
	}
	redemptions := make(map[uuid.UUID]*entity.ClaimRedemption, len(redemptionModels))
	for _, redemptionM := range redemptionModels {
		redemptions[redemptionM.ClaimID] = toRedemptionDomain(redemptionM)
	}

	claimed := make([]*entity.ClaimedOffer, 0, len(claimModels))
	for _, claimM := range claimModels {
		item := &entity.ClaimedOffer{
			Claim:      toClaimDomain(claimM),
			Offer:      offers[claimM.MerchantOfferID],
			Redemption: redemptions[claimM.ID],
		}
		if claimM.VoucherID != nil {
			item.Voucher = vouchers[*claimM.VoucherID]
		}
		claimed = append(claimed, item)
	}

	return claimed, total, nil
}

// FindStaleAwaitingPayment returns ids of unpaid claims created before the cutoff, oldest first.
func (repo *claimRepository) FindStaleAwaitingPayment(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.MerchantOfferClaimModel{}).
		Where("status = ? AND created_at < ?", entity.ClaimStatusAwaitPayment.String(), before).
		Order("created_at ASC").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale claims")
	}

	return ids, nil
}

// --- Mapper Functions ---

func toClaimDomain(data *model.MerchantOfferClaimModel) *entity.MerchantOfferClaim {
	if data == nil {
		return nil
	}

	return &entity.MerchantOfferClaim{
		ID:              data.ID,
		OrderNo:         data.OrderNo,
		UserID:          data.UserID,
		MerchantOfferID: data.MerchantOfferID,
		VoucherID:       data.VoucherID,
		Quantity:        data.Quantity,
		UnitPrice:       data.UnitPrice,
		NetAmount:       data.NetAmount,
		PaymentMethod:   entity.PaymentMethod(data.PaymentMethod),
		Status:          entity.ClaimStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromClaimDomain(data *entity.MerchantOfferClaim) *model.MerchantOfferClaimModel {
	if data == nil {
		return nil
	}

	return &model.MerchantOfferClaimModel{
		ID:              ensureID(data.ID),
		OrderNo:         data.OrderNo,
		UserID:          data.UserID,
		MerchantOfferID: data.MerchantOfferID,
		VoucherID:       data.VoucherID,
		Quantity:        data.Quantity,
		UnitPrice:       data.UnitPrice,
		NetAmount:       data.NetAmount,
		PaymentMethod:   data.PaymentMethod.String(),
		Status:          data.Status.String(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
