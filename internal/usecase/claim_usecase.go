package usecase

import (
	"context"
	"time"

	"rewards/internal/domain/entity"
	"rewards/internal/domain/repository"
	"rewards/internal/domain/service"

	"github.com/google/uuid"
)

// ClaimInput represents a request to claim a merchant offer
type ClaimInput struct {
	OfferID           uuid.UUID
	UserID            uuid.UUID
	Quantity          int64
	PaymentMethod     entity.PaymentMethod
	FiatPaymentMethod string
	Contact           service.PaymentContact
}

// PaymentOutput carries what the client needs to complete a fiat payment
type PaymentOutput struct {
	TransactionID    uuid.UUID         `json:"transaction_id"`
	GatewayReference string            `json:"gateway_reference"`
	RedirectURL      string            `json:"redirect_url"`
	FormFields       map[string]string `json:"form_fields,omitempty"`
}

// ClaimOutput is the result of a successful claim
type ClaimOutput struct {
	Offer   *entity.MerchantOffer
	Claim   *entity.MerchantOfferClaim
	Payment *PaymentOutput
}

// PaymentConfirmation is the gateway's verdict on a pending transaction
type PaymentConfirmation struct {
	GatewayReference string
	Success          bool
}

// ClaimUsecase defines the offer claim workflow
type ClaimUsecase interface {
	// Claim reserves a voucher for the user and pays with points or starts a fiat payment
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// Cancel fails the user's latest unpaid claim on the offer; no-op when there is none
	Cancel(ctx context.Context, offerID, userID uuid.UUID) error

	// CancelClaim fails an unpaid claim by id and returns its voucher to the pool
	CancelClaim(ctx context.Context, claimID uuid.UUID) error

	// ExpirePending cancels unpaid claims older than olderThan and reports how many were cancelled
	ExpirePending(ctx context.Context, olderThan time.Duration) (int, error)

	// ConfirmPayment settles a pending fiat transaction
	ConfirmPayment(ctx context.Context, input *PaymentConfirmation) (*entity.MerchantOfferClaim, error)

	// MyClaimedOffers lists the user's live claims with offer, voucher and redemption state
	MyClaimedOffers(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.ClaimedOffer, int64, error)
}
