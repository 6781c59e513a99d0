package usecase

import (
	"context"

	"rewards/internal/domain/entity"

	"github.com/google/uuid"
)

// ComponentLedgerInput describes a credit or debit on one component ledger.
type ComponentLedgerInput struct {
	UserID      uuid.UUID
	ComponentID uuid.UUID
	Amount      int64
	Reference   entity.LedgerReference
	Remarks     string
}

// ComponentBalance pairs a catalog component with the user's balance.
type ComponentBalance struct {
	Component *entity.PointComponent
	Balance   int64
}

// CombineOutput is the result of converting components into points.
type CombineOutput struct {
	Recipe      *entity.ComponentRecipe
	PointsEntry *entity.PointLedgerEntry
	Debits      []*entity.PointComponentLedgerEntry
}

// ComponentUsecase defines the point component ledger use cases
type ComponentUsecase interface {
	Credit(ctx context.Context, input *ComponentLedgerInput) (*entity.PointComponentLedgerEntry, error)
	Debit(ctx context.Context, input *ComponentLedgerInput) (*entity.PointComponentLedgerEntry, error)

	// Balances returns the balance of every component the user ever held
	Balances(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)

	// ListBalances returns the whole catalog with the user's balances, zero included
	ListBalances(ctx context.Context, userID uuid.UUID) ([]*ComponentBalance, error)

	// Combine debits every requirement of the recipe and credits its reward points, all or nothing
	Combine(ctx context.Context, userID, recipeID uuid.UUID) (*CombineOutput, error)
}
