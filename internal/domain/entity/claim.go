package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod selects how a claim is paid.
type PaymentMethod string

const (
	PaymentMethodPoints PaymentMethod = "points"
	PaymentMethodFiat   PaymentMethod = "fiat"
)

// String returns the string representation of the PaymentMethod.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid checks if the PaymentMethod is a valid value.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodPoints, PaymentMethodFiat:
		return true
	default:
		return false
	}
}

// ClaimStatus is the persisted status of a claim.
type ClaimStatus string

const (
	ClaimStatusAwaitPayment ClaimStatus = "AWAIT_PAYMENT"
	ClaimStatusSuccess      ClaimStatus = "SUCCESS"
	ClaimStatusFailed       ClaimStatus = "FAILED"
)

// String returns the string representation of the ClaimStatus.
func (s ClaimStatus) String() string {
	return string(s)
}

// IsFinal reports whether no further transition is possible.
func (s ClaimStatus) IsFinal() bool {
	return s == ClaimStatusSuccess || s == ClaimStatusFailed
}

// MerchantOfferClaim records a user's claim on an offer. NetAmount is computed
// once at claim time and never recomputed.
type MerchantOfferClaim struct {
	ID              uuid.UUID
	OrderNo         string
	UserID          uuid.UUID
	MerchantOfferID uuid.UUID
	VoucherID       *uuid.UUID
	Quantity        int64
	UnitPrice       int64
	NetAmount       int64
	PaymentMethod   PaymentMethod
	Status          ClaimStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ClaimedOffer is a listing row: a claim joined with its offer, voucher and redemption.
type ClaimedOffer struct {
	Claim      *MerchantOfferClaim
	Offer      *MerchantOffer
	Voucher    *MerchantOfferVoucher
	Redemption *ClaimRedemption
}

// ClaimRedemption marks a claim as consumed. At most one exists per claim.
type ClaimRedemption struct {
	ID              uuid.UUID
	ClaimID         uuid.UUID
	UserID          uuid.UUID
	MerchantOfferID uuid.UUID
	Quantity        int64
	CreatedAt       time.Time
}

// TransactionStatus is the status of a fiat payment.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// PaymentTransaction tracks a fiat payment for a claim at the external gateway.
type PaymentTransaction struct {
	ID                uuid.UUID
	ClaimID           uuid.UUID
	UserID            uuid.UUID
	Amount            int64
	Currency          string
	FiatPaymentMethod string
	Status            TransactionStatus
	GatewayReference  string
	RedirectURL       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
