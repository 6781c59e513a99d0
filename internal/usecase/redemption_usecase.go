package usecase

import (
	"context"

	"rewards/internal/domain/entity"

	"github.com/google/uuid"
)

// RedeemInput represents a redemption attempt at the merchant counter
type RedeemInput struct {
	ClaimID    uuid.UUID
	OfferID    uuid.UUID
	RedeemCode string
	Quantity   int64
	ActorID    uuid.UUID
}

// RedemptionUsecase defines the redemption use case
type RedemptionUsecase interface {
	Redeem(ctx context.Context, input *RedeemInput) (*entity.ClaimRedemption, error)
}
