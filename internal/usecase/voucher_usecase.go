package usecase

import (
	"context"

	"github.com/google/uuid"
)

// VoucherUsecase defines voucher administration and presentation use cases
type VoucherUsecase interface {
	// Void makes the voucher permanently unusable
	Void(ctx context.Context, voucherID uuid.UUID) error

	// VoucherQR renders the voucher of a claim as a PNG QR code for its owner
	VoucherQR(ctx context.Context, userID, claimID uuid.UUID) ([]byte, error)
}
