package qrcode

import (
	"encoding/json"
	"fmt"

	"rewards/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const voucherQRType = "voucher"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// VoucherQRData is the payload encoded in a voucher QR code
type VoucherQRData struct {
	ClaimID string `json:"claim_id"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVoucherQR renders the claim's voucher code as a PNG
func (s *qrcodeService) GenerateVoucherQR(claimID uuid.UUID, code string) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("voucher code is empty")
	}

	jsonData, err := json.Marshal(VoucherQRData{
		ClaimID: claimID.String(),
		Code:    code,
		Type:    voucherQRType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVoucherQR parses the scanned payload back into claim ID and voucher code
func (s *qrcodeService) ParseVoucherQR(qrData string) (uuid.UUID, string, error) {
	var data VoucherQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != voucherQRType {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	claimID, err := uuid.Parse(data.ClaimID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse claim ID: %w", err)
	}

	if data.Code == "" {
		return uuid.Nil, "", fmt.Errorf("voucher code is empty")
	}

	return claimID, data.Code, nil
}
