package impl

import (
	"context"
	"sync"
	"testing"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	mockRepo "rewards/internal/mocks/repository"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPointService(t *testing.T) (usecase.PointUsecase, *testStore) {
	store := newTestStore(t)

	return NewPointService(PointServiceParams{
		TxManager:  store.txManager,
		LedgerRepo: store.pointRepo,
		Logger:     newDiscardLogger(),
	}), store
}

func adjustment(userID uuid.UUID, amount int64) *usecase.LedgerInput {
	return &usecase.LedgerInput{
		UserID:    userID,
		Amount:    amount,
		Reference: entity.LedgerReference{Type: entity.ReferenceAdjustment, ID: uuid.New()},
		Remarks:   "manual adjustment",
	}
}

func TestPointService_CreditDebit(t *testing.T) {
	srv, _ := createTestPointService(t)
	ctx := context.Background()
	userID := uuid.New()

	credit, err := srv.Credit(ctx, adjustment(userID, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(1), credit.Seq)
	assert.Equal(t, int64(100), credit.BalanceAfter)
	assert.Equal(t, entity.DirectionCredit, credit.Direction)

	debit, err := srv.Debit(ctx, adjustment(userID, 30))
	require.NoError(t, err)
	assert.Equal(t, int64(2), debit.Seq)
	assert.Equal(t, int64(70), debit.BalanceAfter)
	assert.Equal(t, int64(-30), debit.SignedAmount())

	balance, err := srv.BalanceOf(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(70), balance)

	entries, total, err := srv.History(ctx, userID, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)
	assert.Equal(t, debit.ID, entries[0].ID, "history is newest first")
}

func TestPointService_Debit_Overdraw(t *testing.T) {
	srv, _ := createTestPointService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := srv.Credit(ctx, adjustment(userID, 100))
	require.NoError(t, err)

	_, err = srv.Debit(ctx, adjustment(userID, 150))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)

	balance, err := srv.BalanceOf(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestPointService_RejectsNonPositiveAmounts(t *testing.T) {
	srv, _ := createTestPointService(t)

	for _, amount := range []int64{0, -5} {
		_, err := srv.Credit(context.Background(), adjustment(uuid.New(), amount))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestPointService_BalanceOf_NoEntries(t *testing.T) {
	srv, _ := createTestPointService(t)

	balance, err := srv.BalanceOf(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestPointService_ConcurrentDebitsKeepBalanceNonNegative(t *testing.T) {
	srv, _ := createTestPointService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := srv.Credit(ctx, adjustment(userID, 100))
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.Debit(ctx, adjustment(userID, 30))
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)

	balance, err := srv.BalanceOf(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)

	entries, _, err := srv.History(ctx, userID, repository.Page{Limit: 20})
	require.NoError(t, err)
	for i, entry := range entries {
		assert.Equal(t, int64(len(entries)-i), entry.Seq, "sequence has no gaps")
	}
}

func TestPointService_Credit_SequenceConflict(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	ledgerRepo := mockRepo.NewMockPointLedgerRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().PointLedgerRepo().Return(ledgerRepo)
	ledgerRepo.EXPECT().LockAccount(ctx, userID).Return(nil)
	ledgerRepo.EXPECT().
		FindLatest(ctx, userID).
		Return(&entity.PointLedgerEntry{Seq: 4, BalanceAfter: 40}, nil)
	ledgerRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(entry *entity.PointLedgerEntry) bool {
			return entry.Seq == 5 && entry.BalanceAfter == 50
		})).
		Return(repository.ErrLedgerSequenceConflict)

	srv := NewPointService(PointServiceParams{TxManager: txManager, LedgerRepo: ledgerRepo, Logger: newDiscardLogger()})

	_, err := srv.Credit(ctx, adjustment(userID, 10))
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestPointService_History_RepositoryError(t *testing.T) {
	ledgerRepo := mockRepo.NewMockPointLedgerRepository(t)
	ctx := context.Background()
	userID := uuid.New()
	page := repository.Page{Limit: 5}

	ledgerRepo.EXPECT().ListByUser(ctx, userID, page).Return(nil, int64(0), errors.New("connection refused"))

	srv := NewPointService(PointServiceParams{
		TxManager:  mockRepo.NewMockTransactionManager(t),
		LedgerRepo: ledgerRepo,
		Logger:     newDiscardLogger(),
	})

	_, _, err := srv.History(ctx, userID, page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list points history")
}
