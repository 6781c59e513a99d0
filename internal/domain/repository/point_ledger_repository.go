// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrLedgerEntryNotFound is returned when a user has no ledger entries yet.
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
	// ErrLedgerSequenceConflict is returned when two appends computed from the same predecessor race.
	ErrLedgerSequenceConflict = errors.New("ledger sequence conflict")
)

// PointLedgerRepository persists the append-only points ledger.
type PointLedgerRepository interface {
	// LockAccount serializes ledger writers of the user until the transaction ends.
	LockAccount(ctx context.Context, userID uuid.UUID) error

	// FindLatest returns the most recent entry of the user.
	FindLatest(ctx context.Context, userID uuid.UUID) (*entity.PointLedgerEntry, error)

	// Append inserts a new entry.
	Append(ctx context.Context, entry *entity.PointLedgerEntry) error

	// ListByUser returns entries newest first and the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.PointLedgerEntry, int64, error)
}
