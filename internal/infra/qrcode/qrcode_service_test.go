package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateVoucherQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateVoucherQR(uuid.New(), "VCH-0001")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = service.GenerateVoucherQR(uuid.New(), "")
	assert.Error(t, err)
}

func TestQRCodeService_ParseVoucherQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	claimID := uuid.New()

	encode := func(data VoucherQRData) string {
		raw, err := json.Marshal(data)
		require.NoError(t, err)

		return string(raw)
	}

	gotID, gotCode, err := service.ParseVoucherQR(encode(VoucherQRData{
		ClaimID: claimID.String(),
		Code:    "VCH-0001",
		Type:    "voucher",
	}))
	require.NoError(t, err)
	assert.Equal(t, claimID, gotID)
	assert.Equal(t, "VCH-0001", gotCode)

	invalid := []struct {
		name string
		data string
	}{
		{"Not JSON", "voucher"},
		{"Wrong type", encode(VoucherQRData{ClaimID: claimID.String(), Code: "VCH-0001", Type: "subscription"})},
		{"Bad claim ID", encode(VoucherQRData{ClaimID: "nope", Code: "VCH-0001", Type: "voucher"})},
		{"Missing code", encode(VoucherQRData{ClaimID: claimID.String(), Type: "voucher"})},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ParseVoucherQR(tt.data)
			assert.Error(t, err)
		})
	}
}
