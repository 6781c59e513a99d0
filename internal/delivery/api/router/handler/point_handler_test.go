package handler

import (
	"fmt"
	"net/http"
	"testing"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	mocks "rewards/internal/mocks/usecase"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPointHandlerForTest(t *testing.T) (*PointHandler, *mocks.MockPointUsecase, *mocks.MockComponentUsecase) {
	points := mocks.NewMockPointUsecase(t)
	components := mocks.NewMockComponentUsecase(t)

	h := NewPointHandler(PointHandlerParams{
		PointUC:     points,
		ComponentUC: components,
		Logger:      newTestLogger(),
	})

	return h, points, components
}

func TestPointHandler_Balance(t *testing.T) {
	userID := uuid.New()

	h, points, _ := newPointHandlerForTest(t)
	points.EXPECT().BalanceOf(mock.Anything, userID).Return(int64(480), nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/points/balance", "", userID)

	require.NoError(t, h.Balance(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.InDelta(t, 480, data["balance"], 0)
}

func TestPointHandler_History(t *testing.T) {
	userID := uuid.New()
	entries := []*entity.PointLedgerEntry{
		{ID: uuid.New(), UserID: userID, Seq: 2, Amount: 20, Direction: entity.DirectionDebit, BalanceAfter: 80, ReferenceType: entity.ReferenceMerchantOfferClaim},
		{ID: uuid.New(), UserID: userID, Seq: 1, Amount: 100, Direction: entity.DirectionCredit, BalanceAfter: 100, ReferenceType: entity.ReferenceAdjustment},
	}

	h, points, _ := newPointHandlerForTest(t)
	points.EXPECT().
		History(mock.Anything, userID, repository.Page{Offset: 0, Limit: defaultPageLimit}).
		Return(entries, int64(2), nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/points/history", "", userID)

	require.NoError(t, h.History(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "debit", data[0].(map[string]any)["direction"])
	assert.InDelta(t, 80, data[0].(map[string]any)["balance_after"], 0)
}

func TestPointHandler_Components(t *testing.T) {
	userID := uuid.New()
	componentID := uuid.New()

	h, _, components := newPointHandlerForTest(t)
	components.EXPECT().ListBalances(mock.Anything, userID).Return([]*usecase.ComponentBalance{
		{Component: &entity.PointComponent{ID: componentID, Code: "STAR", Name: "Star"}, Balance: 3},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/points/components", "", userID)

	require.NoError(t, h.Components(c))

	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	assert.Equal(t, componentID.String(), row["component_id"])
	assert.Equal(t, "STAR", row["code"])
	assert.InDelta(t, 3, row["balance"], 0)
}

func TestPointHandler_Combine(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()

	t.Run("combined", func(t *testing.T) {
		h, _, components := newPointHandlerForTest(t)
		components.EXPECT().Combine(mock.Anything, userID, recipeID).Return(&usecase.CombineOutput{
			Recipe:      &entity.ComponentRecipe{ID: recipeID, RewardPoints: 50},
			PointsEntry: &entity.PointLedgerEntry{ID: uuid.New(), Amount: 50, Direction: entity.DirectionCredit, BalanceAfter: 50},
			Debits: []*entity.PointComponentLedgerEntry{
				{ID: uuid.New(), ComponentID: uuid.New(), Amount: 2, Direction: entity.DirectionDebit},
			},
		}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/points/components/combine",
			fmt.Sprintf(`{"recipe_id":%q}`, recipeID), userID)

		require.NoError(t, h.Combine(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.InDelta(t, 50, data["reward_points"], 0)
		assert.Len(t, data["debits"], 1)
	})

	t.Run("not enough components", func(t *testing.T) {
		h, _, components := newPointHandlerForTest(t)
		components.EXPECT().Combine(mock.Anything, userID, recipeID).Return(nil, domainerrors.ErrInsufficientBalance)

		c, rec := newTestContext(http.MethodPost, "/api/v1/points/components/combine",
			fmt.Sprintf(`{"recipe_id":%q}`, recipeID), userID)

		require.NoError(t, h.Combine(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INSUFFICIENT_BALANCE", errorCode(t, rec))
	})

	t.Run("missing recipe", func(t *testing.T) {
		h, _, _ := newPointHandlerForTest(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/points/components/combine", `{}`, userID)

		require.NoError(t, h.Combine(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
