package repository

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrVoucherNotFound is returned when a voucher does not exist.
	ErrVoucherNotFound = errors.New("voucher not found")
	// ErrNoVoucherAvailable is returned when an offer has no unowned, non-voided voucher left.
	ErrNoVoucherAvailable = errors.New("no voucher available")
	// ErrVoucherUnavailable is returned when a voucher was taken or voided concurrently.
	ErrVoucherUnavailable = errors.New("voucher unavailable")
)

// VoucherRepository persists the voucher pool of every offer.
type VoucherRepository interface {
	// FindAvailableForUpdate locks and returns the oldest available voucher of the offer.
	FindAvailableForUpdate(ctx context.Context, offerID uuid.UUID) (*entity.MerchantOfferVoucher, error)

	// FindVoucherByID retrieves a voucher.
	FindVoucherByID(ctx context.Context, id uuid.UUID) (*entity.MerchantOfferVoucher, error)

	// AssignOwner moves an available voucher to the user and claim.
	AssignOwner(ctx context.Context, voucherID, userID, claimID uuid.UUID) error

	// ClearOwner returns a voucher to the pool. The voided flag is left untouched.
	ClearOwner(ctx context.Context, voucherID uuid.UUID) error

	// Void marks a voucher as voided.
	Void(ctx context.Context, voucherID uuid.UUID) error

	// CreateVouchers inserts a batch of codes for an offer.
	CreateVouchers(ctx context.Context, vouchers []*entity.MerchantOfferVoucher) error
}
