package repository

import (
	"context"
	"time"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

// ErrClaimNotFound is returned when a claim does not exist.
var ErrClaimNotFound = errors.New("claim not found")

// ClaimRepository persists merchant offer claims.
type ClaimRepository interface {
	// CreateClaim inserts a claim.
	CreateClaim(ctx context.Context, claim *entity.MerchantOfferClaim) error

	// FindClaimByID retrieves a claim without locking.
	FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.MerchantOfferClaim, error)

	// FindClaimByIDForUpdate retrieves a claim and locks its row.
	FindClaimByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.MerchantOfferClaim, error)

	// FindLatestAwaitingPaymentForUpdate locks the user's newest AWAIT_PAYMENT claim on the offer.
	FindLatestAwaitingPaymentForUpdate(ctx context.Context, userID, offerID uuid.UUID) (*entity.MerchantOfferClaim, error)

	// UpdateClaim saves status and voucher of a claim.
	UpdateClaim(ctx context.Context, claim *entity.MerchantOfferClaim) error

	// ListClaimedOffers returns the user's non-failed claims whose voucher is not voided, newest first.
	ListClaimedOffers(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.ClaimedOffer, int64, error)

	// FindStaleAwaitingPayment returns ids of AWAIT_PAYMENT claims created before the cutoff.
	FindStaleAwaitingPayment(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error)
}
