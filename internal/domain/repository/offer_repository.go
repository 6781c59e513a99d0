package repository

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOfferNotFound is returned when an offer does not exist.
	ErrOfferNotFound = errors.New("merchant offer not found")
	// ErrOfferQuantityExhausted is returned when a decrement would make quantity negative.
	ErrOfferQuantityExhausted = errors.New("merchant offer quantity exhausted")
	// ErrMerchantNotFound is returned when a merchant does not exist.
	ErrMerchantNotFound = errors.New("merchant not found")
)

// OfferRepository persists offers, their inventory counter and merchants.
type OfferRepository interface {
	// FindOfferByID retrieves an offer without locking.
	FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.MerchantOffer, error)

	// FindOfferByIDForUpdate retrieves an offer and locks its row.
	FindOfferByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.MerchantOffer, error)

	// DecrementQuantity subtracts n, failing with ErrOfferQuantityExhausted instead of going negative.
	DecrementQuantity(ctx context.Context, id uuid.UUID, n int64) error

	// IncrementQuantity adds n back to the offer.
	IncrementQuantity(ctx context.Context, id uuid.UUID, n int64) error

	// FindMerchantByID retrieves a merchant.
	FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)
}
