package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders voucher codes as scannable images
type QRCodeService interface {
	// GenerateVoucherQR encodes the voucher code and claim into a PNG image
	GenerateVoucherQR(claimID uuid.UUID, code string) ([]byte, error)

	// ParseVoucherQR decodes the payload of a voucher QR code
	ParseVoucherQR(qrData string) (claimID uuid.UUID, code string, err error)
}
