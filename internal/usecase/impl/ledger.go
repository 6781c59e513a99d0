package impl

import (
	"context"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pointsBalance returns the running balance of the user. Callers hold the account lock.
func pointsBalance(ctx context.Context, repo repository.PointLedgerRepository, userID uuid.UUID) (seq, balance int64, err error) {
	latest, err := repo.FindLatest(ctx, userID)
	if errors.Is(err, repository.ErrLedgerEntryNotFound) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to read points balance")
	}

	return latest.Seq, latest.BalanceAfter, nil
}

// appendPointEntry locks the user's points account, computes the next balance from
// the latest entry and appends. Must run inside a transaction.
func appendPointEntry(
	ctx context.Context,
	repo repository.PointLedgerRepository,
	userID uuid.UUID,
	amount int64,
	direction entity.Direction,
	ref entity.LedgerReference,
	remarks string,
	now time.Time,
) (*entity.PointLedgerEntry, error) {
	if amount <= 0 || !direction.IsValid() {
		return nil, domainerrors.ErrInvalidAmount
	}

	if err := repo.LockAccount(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to lock points account")
	}

	seq, balance, err := pointsBalance(ctx, repo, userID)
	if err != nil {
		return nil, err
	}

	next := balance + direction.Signed(amount)
	if next < 0 {
		return nil, domainerrors.ErrInsufficientBalance
	}

	entry := &entity.PointLedgerEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Seq:           seq + 1,
		Amount:        amount,
		Direction:     direction,
		BalanceAfter:  next,
		ReferenceType: ref.Type,
		ReferenceID:   ref.ID,
		Remarks:       remarks,
		CreatedAt:     now,
	}

	if err := repo.Append(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrLedgerSequenceConflict) {
			return nil, domainerrors.ErrTransactionFailed.WrapMessage("concurrent points ledger append")
		}

		return nil, errors.Wrap(err, "failed to append points ledger entry")
	}

	return entry, nil
}

func componentBalance(ctx context.Context, repo repository.ComponentLedgerRepository, userID, componentID uuid.UUID) (seq, balance int64, err error) {
	latest, err := repo.FindLatest(ctx, userID, componentID)
	if errors.Is(err, repository.ErrLedgerEntryNotFound) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to read component balance")
	}

	return latest.Seq, latest.BalanceAfter, nil
}

// appendComponentEntry is appendPointEntry for one (user, component) ledger.
func appendComponentEntry(
	ctx context.Context,
	repo repository.ComponentLedgerRepository,
	userID, componentID uuid.UUID,
	amount int64,
	direction entity.Direction,
	ref entity.LedgerReference,
	remarks string,
	now time.Time,
) (*entity.PointComponentLedgerEntry, error) {
	if amount <= 0 || !direction.IsValid() {
		return nil, domainerrors.ErrInvalidAmount
	}

	if err := repo.LockAccount(ctx, userID, componentID); err != nil {
		return nil, errors.Wrap(err, "failed to lock component account")
	}

	seq, balance, err := componentBalance(ctx, repo, userID, componentID)
	if err != nil {
		return nil, err
	}

	next := balance + direction.Signed(amount)
	if next < 0 {
		return nil, domainerrors.ErrInsufficientBalance
	}

	entry := &entity.PointComponentLedgerEntry{
		ID:            uuid.New(),
		UserID:        userID,
		ComponentID:   componentID,
		Seq:           seq + 1,
		Amount:        amount,
		Direction:     direction,
		BalanceAfter:  next,
		ReferenceType: ref.Type,
		ReferenceID:   ref.ID,
		Remarks:       remarks,
		CreatedAt:     now,
	}

	if err := repo.Append(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrLedgerSequenceConflict) {
			return nil, domainerrors.ErrTransactionFailed.WrapMessage("concurrent component ledger append")
		}
		if errors.Is(err, repository.ErrComponentNotFound) {
			return nil, domainerrors.ErrComponentNotFound
		}

		return nil, errors.Wrap(err, "failed to append component ledger entry")
	}

	return entry, nil
}
