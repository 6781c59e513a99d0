package repository

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrComponentNotFound is returned when a point component does not exist.
	ErrComponentNotFound = errors.New("point component not found")
	// ErrRecipeNotFound is returned when a component recipe does not exist or is inactive.
	ErrRecipeNotFound = errors.New("component recipe not found")
)

// ComponentLedgerRepository persists the per-component ledgers and the component catalog.
type ComponentLedgerRepository interface {
	// LockAccount serializes writers of the (user, component) ledger until the transaction ends.
	LockAccount(ctx context.Context, userID, componentID uuid.UUID) error

	// FindLatest returns the most recent entry of the (user, component) ledger.
	FindLatest(ctx context.Context, userID, componentID uuid.UUID) (*entity.PointComponentLedgerEntry, error)

	// Append inserts a new entry.
	Append(ctx context.Context, entry *entity.PointComponentLedgerEntry) error

	// BalancesByUser returns the latest balance of every component the user ever held.
	BalancesByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)

	// FindComponentByID retrieves a component.
	FindComponentByID(ctx context.Context, id uuid.UUID) (*entity.PointComponent, error)

	// ListComponents returns the component catalog.
	ListComponents(ctx context.Context) ([]*entity.PointComponent, error)

	// FindRecipeByID retrieves an active recipe.
	FindRecipeByID(ctx context.Context, id uuid.UUID) (*entity.ComponentRecipe, error)
}
