package repository

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRedemptionNotFound is returned when a claim has not been redeemed.
	ErrRedemptionNotFound = errors.New("redemption not found")
	// ErrDuplicateRedemption is returned when a redemption already exists for the claim.
	ErrDuplicateRedemption = errors.New("redemption already exists")
)

// RedemptionRepository persists claim redemptions. The claim id is unique.
type RedemptionRepository interface {
	CreateRedemption(ctx context.Context, redemption *entity.ClaimRedemption) error
	FindByClaimID(ctx context.Context, claimID uuid.UUID) (*entity.ClaimRedemption, error)
}
