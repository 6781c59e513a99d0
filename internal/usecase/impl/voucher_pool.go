package impl

import (
	"context"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// lockLiveOffer row-locks the offer and checks its availability window.
func lockLiveOffer(ctx context.Context, repo repository.OfferRepository, offerID uuid.UUID, now time.Time) (*entity.MerchantOffer, error) {
	offer, err := repo.FindOfferByIDForUpdate(ctx, offerID)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil, domainerrors.ErrOfferNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock offer")
	}

	if !offer.IsLiveAt(now) {
		return nil, domainerrors.ErrOfferExpired
	}

	return offer, nil
}

// reserveVoucher assigns the oldest available voucher of a locked offer to the claim
// and takes quantity units of inventory. Must run inside the claim transaction.
func reserveVoucher(
	ctx context.Context,
	factory repository.RepositoryFactory,
	offer *entity.MerchantOffer,
	userID, claimID uuid.UUID,
	quantity int64,
) (*entity.MerchantOfferVoucher, error) {
	if offer.Quantity < quantity {
		return nil, domainerrors.ErrSoldOut
	}

	voucherRepo := factory.VoucherRepo()

	voucher, err := voucherRepo.FindAvailableForUpdate(ctx, offer.ID)
	if errors.Is(err, repository.ErrNoVoucherAvailable) {
		return nil, domainerrors.ErrSoldOut
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick voucher")
	}

	if err := factory.OfferRepo().DecrementQuantity(ctx, offer.ID, quantity); err != nil {
		if errors.Is(err, repository.ErrOfferQuantityExhausted) {
			return nil, domainerrors.ErrSoldOut
		}

		return nil, errors.Wrap(err, "failed to take offer quantity")
	}

	if err := voucherRepo.AssignOwner(ctx, voucher.ID, userID, claimID); err != nil {
		if errors.Is(err, repository.ErrVoucherUnavailable) {
			return nil, domainerrors.ErrSoldOut
		}

		return nil, errors.Wrap(err, "failed to assign voucher")
	}

	offer.Quantity -= quantity
	voucher.OwnedByID = &userID
	voucher.ClaimID = &claimID

	return voucher, nil
}

// releaseVoucher hands the claim's voucher back to the pool, restores the offer quantity
// and detaches the voucher from the claim. A voucher voided while reserved stays voided
// and its units are not restored. The offer row is locked first so the voided flag
// cannot change under a concurrent Void.
func releaseVoucher(ctx context.Context, factory repository.RepositoryFactory, claim *entity.MerchantOfferClaim) error {
	offerRepo := factory.OfferRepo()

	if _, err := offerRepo.FindOfferByIDForUpdate(ctx, claim.MerchantOfferID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			claim.VoucherID = nil

			return nil
		}

		return errors.Wrap(err, "failed to lock offer")
	}

	restore := true
	if claim.VoucherID != nil {
		voucherRepo := factory.VoucherRepo()

		voucher, err := voucherRepo.FindVoucherByID(ctx, *claim.VoucherID)
		switch {
		case errors.Is(err, repository.ErrVoucherNotFound):
		case err != nil:
			return errors.Wrap(err, "failed to find voucher")
		default:
			restore = !voucher.Voided
			if err := voucherRepo.ClearOwner(ctx, voucher.ID); err != nil &&
				!errors.Is(err, repository.ErrVoucherNotFound) {
				return errors.Wrap(err, "failed to release voucher")
			}
		}
	}
	claim.VoucherID = nil

	if !restore {
		return nil
	}

	if err := offerRepo.IncrementQuantity(ctx, claim.MerchantOfferID, claim.Quantity); err != nil &&
		!errors.Is(err, repository.ErrOfferNotFound) {
		return errors.Wrap(err, "failed to restore offer quantity")
	}

	return nil
}
