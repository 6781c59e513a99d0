package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant owns offers and the redeem code staff type in at the point of sale.
type Merchant struct {
	ID             uuid.UUID
	OwnerUserID    uuid.UUID
	Name           string
	RedeemCodeHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MerchantOffer is a claimable offer. Quantity is the remaining uncommitted
// inventory and never goes below zero.
type MerchantOffer struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	Title          string
	UnitPrice      int64
	FiatPrice      int64
	Quantity       int64
	AvailableAt    time.Time
	AvailableUntil time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLiveAt reports whether now falls inside the availability window (bounds inclusive).
func (o *MerchantOffer) IsLiveAt(now time.Time) bool {
	return !now.Before(o.AvailableAt) && !now.After(o.AvailableUntil)
}

// PriceFor returns the per-unit price charged for the payment method.
func (o *MerchantOffer) PriceFor(method PaymentMethod) int64 {
	if method == PaymentMethodFiat {
		return o.FiatPrice
	}

	return o.UnitPrice
}

// VoucherState is derived from the voucher columns and its redemption.
type VoucherState string

const (
	VoucherStateAvailable VoucherState = "AVAILABLE"
	VoucherStateReserved  VoucherState = "RESERVED"
	VoucherStateRedeemed  VoucherState = "REDEEMED"
	VoucherStateVoid      VoucherState = "VOID"
)

// MerchantOfferVoucher is one redeemable code of an offer.
type MerchantOfferVoucher struct {
	ID              uuid.UUID
	MerchantOfferID uuid.UUID
	Code            string
	OwnedByID       *uuid.UUID
	ClaimID         *uuid.UUID
	Voided          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// State derives the voucher state; redeemed tells whether a redemption row exists for its claim.
func (v *MerchantOfferVoucher) State(redeemed bool) VoucherState {
	switch {
	case v.Voided:
		return VoucherStateVoid
	case v.OwnedByID == nil:
		return VoucherStateAvailable
	case redeemed:
		return VoucherStateRedeemed
	default:
		return VoucherStateReserved
	}
}
