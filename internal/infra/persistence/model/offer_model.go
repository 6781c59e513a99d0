package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel is the GORM-specific struct for the 'merchants' table.
type MerchantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerUserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	RedeemCodeHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}

// MerchantOfferModel is the GORM-specific struct for the 'merchant_offers' table.
type MerchantOfferModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	UnitPrice      int64     `gorm:"not null;default:0"`
	FiatPrice      int64     `gorm:"not null;default:0"`
	Quantity       int64     `gorm:"not null;default:0;check:chk_merchant_offer_quantity,quantity >= 0"`
	AvailableAt    time.Time `gorm:"not null"`
	AvailableUntil time.Time `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantOfferModel) TableName() string {
	return "merchant_offers"
}

// MerchantOfferVoucherModel is the GORM-specific struct for the 'merchant_offer_vouchers' table.
type MerchantOfferVoucherModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MerchantOfferID uuid.UUID  `gorm:"type:uuid;not null;index:idx_voucher_pool,priority:1"`
	Code            string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	OwnedByID       *uuid.UUID `gorm:"type:uuid;index"`
	ClaimID         *uuid.UUID `gorm:"type:uuid;index"`
	Voided          bool       `gorm:"not null;default:false;index:idx_voucher_pool,priority:2"`
	CreatedAt       time.Time  `gorm:"index:idx_voucher_pool,priority:3"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantOfferVoucherModel) TableName() string {
	return "merchant_offer_vouchers"
}
