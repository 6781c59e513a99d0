package postgres

import (
	"context"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate locks the selected rows until the transaction ends.
var forUpdate = clause.Locking{Strength: clause.LockingStrengthUpdate}

// forUpdateSkipLocked lets concurrent reservers pick different rows instead of queueing.
var forUpdateSkipLocked = clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}

// advisoryKey folds a namespace and ids into the int64 key space of pg_advisory_xact_lock.
func advisoryKey(namespace string, ids ...uuid.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(namespace))
	for _, id := range ids {
		_, _ = h.Write(id[:])
	}

	return int64(h.Sum64()) //nolint:gosec // wrap-around is fine for a lock key
}

// advisoryXactLock takes a transaction-scoped advisory lock. It blocks until the
// lock is free and is released by commit or rollback. Dialects without advisory
// locks (sqlite in tests) serialize writers at the database level instead.
//
// Callers holding several account locks take a user's points account first, then
// their component accounts sorted by component id.
func advisoryXactLock(ctx context.Context, db *gorm.DB, namespace string, ids ...uuid.UUID) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", advisoryKey(namespace, ids...)).Error; err != nil {
		return errors.Wrapf(err, "failed to acquire %s lock", namespace)
	}

	return nil
}

func ensureID(id uuid.UUID) uuid.UUID {
	if id != uuid.Nil {
		return id
	}

	return uuid.Must(uuid.NewV7())
}
