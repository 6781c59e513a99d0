package handler

import (
	"fmt"
	"net/http"
	"testing"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	mocks "rewards/internal/mocks/usecase"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerMocks struct {
	vouchers *mocks.MockVoucherUsecase
	missions *mocks.MockMissionUsecase
	points   *mocks.MockPointUsecase
}

func newAdminHandlerForTest(t *testing.T) (*AdminHandler, adminHandlerMocks) {
	m := adminHandlerMocks{
		vouchers: mocks.NewMockVoucherUsecase(t),
		missions: mocks.NewMockMissionUsecase(t),
		points:   mocks.NewMockPointUsecase(t),
	}

	h := NewAdminHandler(AdminHandlerParams{
		VoucherUC: m.vouchers,
		MissionUC: m.missions,
		PointUC:   m.points,
		Logger:    newTestLogger(),
	})

	return h, m
}

func TestAdminHandler_VoidVoucher(t *testing.T) {
	adminID := uuid.New()
	voucherID := uuid.New()

	t.Run("voided", func(t *testing.T) {
		h, m := newAdminHandlerForTest(t)
		m.vouchers.EXPECT().Void(mock.Anything, voucherID).Return(nil)

		c, rec := newTestContext(http.MethodPost, "/", "", adminID, entity.RoleAdmin)
		c.SetParamNames("id")
		c.SetParamValues(voucherID.String())

		require.NoError(t, h.VoidVoucher(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown voucher", func(t *testing.T) {
		h, m := newAdminHandlerForTest(t)
		m.vouchers.EXPECT().Void(mock.Anything, voucherID).Return(domainerrors.ErrVoucherNotFound)

		c, rec := newTestContext(http.MethodPost, "/", "", adminID, entity.RoleAdmin)
		c.SetParamNames("id")
		c.SetParamValues(voucherID.String())

		require.NoError(t, h.VoidVoucher(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "VOUCHER_NOT_FOUND", errorCode(t, rec))
	})
}

func TestAdminHandler_RearmMission(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()
	missionID := uuid.New()

	h, m := newAdminHandlerForTest(t)
	m.missions.EXPECT().Rearm(mock.Anything, userID, missionID).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/", fmt.Sprintf(`{"user_id":%q}`, userID), adminID, entity.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(missionID.String())

	require.NoError(t, h.RearmMission(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mission re-armed", decodeBody(t, rec)["message"])
}

func TestAdminHandler_CreditPoints(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()

	t.Run("credit recorded against the operator", func(t *testing.T) {
		h, m := newAdminHandlerForTest(t)
		m.points.EXPECT().
			Credit(mock.Anything, &usecase.LedgerInput{
				UserID:    userID,
				Amount:    250,
				Reference: entity.LedgerReference{Type: entity.ReferenceAdjustment, ID: adminID},
				Remarks:   "manual adjustment",
			}).
			Return(&entity.PointLedgerEntry{ID: uuid.New(), UserID: userID, Amount: 250, BalanceAfter: 250, Direction: entity.DirectionCredit}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/points/credit",
			fmt.Sprintf(`{"user_id":%q,"amount":250}`, userID), adminID, entity.RoleAdmin)

		require.NoError(t, h.CreditPoints(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.InDelta(t, 250, data["balance_after"], 0)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		h, m := newAdminHandlerForTest(t)
		m.points.EXPECT().Credit(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidAmount)

		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/points/credit",
			fmt.Sprintf(`{"user_id":%q,"amount":0}`, userID), adminID, entity.RoleAdmin)

		require.NoError(t, h.CreditPoints(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INVALID_AMOUNT", errorCode(t, rec))
	})
}
