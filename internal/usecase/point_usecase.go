package usecase

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/domain/repository"

	"github.com/google/uuid"
)

// LedgerInput describes a single credit or debit on the points ledger.
type LedgerInput struct {
	UserID    uuid.UUID
	Amount    int64
	Reference entity.LedgerReference
	Remarks   string
}

// PointUsecase defines the points ledger use cases
type PointUsecase interface {
	// Credit appends a credit entry; amount must be positive
	Credit(ctx context.Context, input *LedgerInput) (*entity.PointLedgerEntry, error)

	// Debit appends a debit entry and fails with InsufficientBalance when the balance is too low
	Debit(ctx context.Context, input *LedgerInput) (*entity.PointLedgerEntry, error)

	// BalanceOf returns the balance after the latest entry, or 0
	BalanceOf(ctx context.Context, userID uuid.UUID) (int64, error)

	// History pages through the user's entries, newest first
	History(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.PointLedgerEntry, int64, error)
}
