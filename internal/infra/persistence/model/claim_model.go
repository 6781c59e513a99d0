package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantOfferClaimModel is the GORM-specific struct for the 'merchant_offer_claims' table.
type MerchantOfferClaimModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNo         string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_claim_user_offer,priority:1"`
	MerchantOfferID uuid.UUID  `gorm:"type:uuid;not null;index:idx_claim_user_offer,priority:2"`
	VoucherID       *uuid.UUID `gorm:"type:uuid"`
	Quantity        int64      `gorm:"not null;check:chk_claim_quantity,quantity > 0"`
	UnitPrice       int64      `gorm:"not null"`
	NetAmount       int64      `gorm:"not null"`
	PaymentMethod   string     `gorm:"type:varchar(16);not null"`
	Status          string     `gorm:"type:varchar(20);not null;index:idx_claim_status_created,priority:1"`
	CreatedAt       time.Time  `gorm:"index:idx_claim_status_created,priority:2"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantOfferClaimModel) TableName() string {
	return "merchant_offer_claims"
}

// PaymentTransactionModel is the GORM-specific struct for the 'payment_transactions' table.
type PaymentTransactionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClaimID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount            int64     `gorm:"not null"`
	Currency          string    `gorm:"type:varchar(3);not null"`
	FiatPaymentMethod string    `gorm:"type:varchar(32)"`
	Status            string    `gorm:"type:varchar(20);not null"`
	GatewayReference  string    `gorm:"type:varchar(128);index"`
	RedirectURL       string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentTransactionModel) TableName() string {
	return "payment_transactions"
}

// ClaimRedemptionModel is the GORM-specific struct for the 'claim_redemptions' table.
// The unique index on claim_id guarantees at most one redemption per claim.
type ClaimRedemptionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClaimID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantOfferID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int64     `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimRedemptionModel) TableName() string {
	return "claim_redemptions"
}
