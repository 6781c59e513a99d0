package postgres

import (
	"context"
	"testing"
	"time"

	"rewards/internal/domain/entity"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPointEntry(userID uuid.UUID, seq, amount int64, direction entity.Direction, balance int64) *entity.PointLedgerEntry {
	return &entity.PointLedgerEntry{
		UserID:        userID,
		Seq:           seq,
		Amount:        amount,
		Direction:     direction,
		BalanceAfter:  balance,
		ReferenceType: entity.ReferenceAdjustment,
		ReferenceID:   uuid.New(),
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPointLedgerRepository_AppendAndFindLatest(t *testing.T) {
	db := openTestDB(t)
	repo := NewPointLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.FindLatest(ctx, userID)
	require.ErrorIs(t, err, repository.ErrLedgerEntryNotFound)

	require.NoError(t, repo.LockAccount(ctx, userID))
	require.NoError(t, repo.Append(ctx, newPointEntry(userID, 1, 500, entity.DirectionCredit, 500)))
	require.NoError(t, repo.Append(ctx, newPointEntry(userID, 2, 200, entity.DirectionDebit, 300)))

	latest, err := repo.FindLatest(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.Seq)
	assert.Equal(t, int64(300), latest.BalanceAfter)
	assert.Equal(t, entity.DirectionDebit, latest.Direction)
	assert.Equal(t, int64(-200), latest.SignedAmount())
}

func TestPointLedgerRepository_AppendDuplicateSeq(t *testing.T) {
	db := openTestDB(t)
	repo := NewPointLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Append(ctx, newPointEntry(userID, 1, 100, entity.DirectionCredit, 100)))

	err := repo.Append(ctx, newPointEntry(userID, 1, 50, entity.DirectionCredit, 150))
	assert.ErrorIs(t, err, repository.ErrLedgerSequenceConflict)
}

func TestPointLedgerRepository_AppendRejectsNegativeBalance(t *testing.T) {
	db := openTestDB(t)
	repo := NewPointLedgerRepository(db)

	err := repo.Append(context.Background(), newPointEntry(uuid.New(), 1, 100, entity.DirectionDebit, -100))
	assert.Error(t, err)
}

func TestPointLedgerRepository_ListByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewPointLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	balance := int64(0)
	for seq := int64(1); seq <= 5; seq++ {
		balance += 10
		require.NoError(t, repo.Append(ctx, newPointEntry(userID, seq, 10, entity.DirectionCredit, balance)))
	}
	require.NoError(t, repo.Append(ctx, newPointEntry(uuid.New(), 1, 10, entity.DirectionCredit, 10)))

	entries, total, err := repo.ListByUser(ctx, userID, repository.Page{Offset: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(4), entries[0].Seq)
	assert.Equal(t, int64(3), entries[1].Seq)
}

func TestComponentLedgerRepository_BalancesByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewComponentLedgerRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	stars, leaves := uuid.New(), uuid.New()

	entries := []*entity.PointComponentLedgerEntry{
		{UserID: userID, ComponentID: stars, Seq: 1, Amount: 3, Direction: entity.DirectionCredit, BalanceAfter: 3},
		{UserID: userID, ComponentID: stars, Seq: 2, Amount: 1, Direction: entity.DirectionDebit, BalanceAfter: 2},
		{UserID: userID, ComponentID: leaves, Seq: 1, Amount: 7, Direction: entity.DirectionCredit, BalanceAfter: 7},
	}
	for _, entry := range entries {
		entry.ReferenceType = entity.ReferenceMission
		entry.ReferenceID = uuid.New()
		entry.CreatedAt = time.Now().UTC()
		require.NoError(t, repo.Append(ctx, entry))
	}

	balances, err := repo.BalancesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int64{stars: 2, leaves: 7}, balances)

	latest, err := repo.FindLatest(ctx, userID, stars)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.Seq)
}

func TestComponentLedgerRepository_FindRecipeByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewComponentLedgerRepository(db)
	ctx := context.Background()
	componentID := uuid.New()

	active := &model.ComponentRecipeModel{
		ID:           uuid.New(),
		Name:         "Star bundle",
		Requirements: []byte(`[{"component_id":"` + componentID.String() + `","quantity":3}]`),
		RewardPoints: 50,
		IsActive:     true,
	}
	inactive := &model.ComponentRecipeModel{
		ID:           uuid.New(),
		Name:         "Retired bundle",
		Requirements: []byte(`[]`),
		RewardPoints: 10,
		IsActive:     false,
	}
	require.NoError(t, db.Create(active).Error)
	require.NoError(t, db.Create(inactive).Error)

	recipe, err := repo.FindRecipeByID(ctx, active.ID)
	require.NoError(t, err)
	require.Len(t, recipe.Requirements, 1)
	assert.Equal(t, componentID, recipe.Requirements[0].ComponentID)
	assert.Equal(t, int64(3), recipe.Requirements[0].Quantity)

	_, err = repo.FindRecipeByID(ctx, inactive.ID)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}
