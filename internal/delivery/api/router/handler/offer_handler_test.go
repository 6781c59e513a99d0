package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	mocks "rewards/internal/mocks/usecase"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerHandlerMocks struct {
	claims      *mocks.MockClaimUsecase
	redemptions *mocks.MockRedemptionUsecase
	vouchers    *mocks.MockVoucherUsecase
}

func newOfferHandlerForTest(t *testing.T) (*OfferHandler, offerHandlerMocks) {
	m := offerHandlerMocks{
		claims:      mocks.NewMockClaimUsecase(t),
		redemptions: mocks.NewMockRedemptionUsecase(t),
		vouchers:    mocks.NewMockVoucherUsecase(t),
	}

	h := NewOfferHandler(OfferHandlerParams{
		ClaimUC:      m.claims,
		RedemptionUC: m.redemptions,
		VoucherUC:    m.vouchers,
		Logger:       newTestLogger(),
	})

	return h, m
}

func TestOfferHandler_Claim(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()
	offer := &entity.MerchantOffer{ID: offerID, Title: "Free coffee", UnitPrice: 20, Quantity: 9}

	t.Run("points claim", func(t *testing.T) {
		h, m := newOfferHandlerForTest(t)

		claim := &entity.MerchantOfferClaim{
			ID:              uuid.New(),
			OrderNo:         "ORD1",
			MerchantOfferID: offerID,
			Quantity:        1,
			UnitPrice:       20,
			NetAmount:       20,
			PaymentMethod:   entity.PaymentMethodPoints,
			Status:          entity.ClaimStatusSuccess,
		}
		m.claims.EXPECT().
			Claim(mock.Anything, mock.MatchedBy(func(in *usecase.ClaimInput) bool {
				return in.OfferID == offerID && in.UserID == userID && in.Quantity == 1 &&
					in.PaymentMethod == entity.PaymentMethodPoints
			})).
			Return(&usecase.ClaimOutput{Offer: offer, Claim: claim}, nil)

		body := fmt.Sprintf(`{"offer_id":%q,"quantity":1,"payment_method":"points"}`, offerID)
		c, rec := newTestContext(http.MethodPost, "/api/v1/offers/claim", body, userID)

		require.NoError(t, h.Claim(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, "Offer claimed successfully", resp["message"])
		assert.NotContains(t, resp, "payment")
		assert.Equal(t, "SUCCESS", resp["claim"].(map[string]any)["status"])
	})

	t.Run("fiat claim returns payment instructions", func(t *testing.T) {
		h, m := newOfferHandlerForTest(t)

		claim := &entity.MerchantOfferClaim{
			ID:            uuid.New(),
			PaymentMethod: entity.PaymentMethodFiat,
			Status:        entity.ClaimStatusAwaitPayment,
		}
		m.claims.EXPECT().
			Claim(mock.Anything, mock.Anything).
			Return(&usecase.ClaimOutput{
				Offer:   offer,
				Claim:   claim,
				Payment: &usecase.PaymentOutput{GatewayReference: "SBX-1", RedirectURL: "https://pay.example/1"},
			}, nil)

		body := fmt.Sprintf(`{"offer_id":%q,"quantity":1,"payment_method":"fiat","fiat_payment_method":"card"}`, offerID)
		c, rec := newTestContext(http.MethodPost, "/api/v1/offers/claim", body, userID)

		require.NoError(t, h.Claim(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, "Complete the payment to receive your voucher", resp["message"])
		assert.Equal(t, "https://pay.example/1", resp["payment"].(map[string]any)["redirect_url"])
	})

	t.Run("validation failures never reach the usecase", func(t *testing.T) {
		h, _ := newOfferHandlerForTest(t)

		bodies := []string{
			`{"quantity":1,"payment_method":"points"}`,
			fmt.Sprintf(`{"offer_id":%q,"quantity":1,"payment_method":"cash"}`, offerID),
			fmt.Sprintf(`{"offer_id":%q,"quantity":1,"payment_method":"fiat"}`, offerID),
			`{not json`,
		}
		for _, body := range bodies {
			c, rec := newTestContext(http.MethodPost, "/api/v1/offers/claim", body, userID)

			require.NoError(t, h.Claim(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec), body)
		}
	})

	t.Run("domain error is rendered", func(t *testing.T) {
		h, m := newOfferHandlerForTest(t)

		m.claims.EXPECT().Claim(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrSoldOut)

		body := fmt.Sprintf(`{"offer_id":%q,"quantity":1,"payment_method":"points"}`, offerID)
		c, rec := newTestContext(http.MethodPost, "/api/v1/offers/claim", body, userID)

		require.NoError(t, h.Claim(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "SOLD_OUT", errorCode(t, rec))
	})

	t.Run("internal error is returned to the error handler", func(t *testing.T) {
		h, m := newOfferHandlerForTest(t)

		m.claims.EXPECT().Claim(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		body := fmt.Sprintf(`{"offer_id":%q,"quantity":1,"payment_method":"points"}`, offerID)
		c, _ := newTestContext(http.MethodPost, "/api/v1/offers/claim", body, userID)

		assert.Error(t, h.Claim(c))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newOfferHandlerForTest(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/offers/claim", `{}`, uuid.Nil)

		require.NoError(t, h.Claim(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOfferHandler_Cancel(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()

	h, m := newOfferHandlerForTest(t)
	m.claims.EXPECT().Cancel(mock.Anything, offerID, userID).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/offers/cancel",
		fmt.Sprintf(`{"merchant_offer_id":%q}`, offerID), userID)

	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Claim cancelled", decodeBody(t, rec)["message"])
}

func TestOfferHandler_Redeem(t *testing.T) {
	userID := uuid.New()
	claimID := uuid.New()
	offerID := uuid.New()
	body := fmt.Sprintf(`{"claim_id":%q,"offer_id":%q,"redeem_code":"ABC123","quantity":1}`, claimID, offerID)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "redeemed", wantStatus: http.StatusOK},
		{name: "wrong code", err: domainerrors.ErrInvalidCode, wantStatus: http.StatusUnprocessableEntity, wantCode: "INVALID_CODE"},
		{name: "second redemption", err: domainerrors.ErrAlreadyRedeemed, wantStatus: http.StatusUnprocessableEntity, wantCode: "ALREADY_REDEEMED"},
		{name: "quantity zero", err: domainerrors.ErrInsufficientQuantity, wantStatus: http.StatusUnprocessableEntity, wantCode: "INSUFFICIENT_QUANTITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newOfferHandlerForTest(t)

			var redemption *entity.ClaimRedemption
			if tt.err == nil {
				redemption = &entity.ClaimRedemption{ID: uuid.New(), ClaimID: claimID}
			}
			m.redemptions.EXPECT().
				Redeem(mock.Anything, &usecase.RedeemInput{
					ClaimID:    claimID,
					OfferID:    offerID,
					RedeemCode: "ABC123",
					Quantity:   1,
					ActorID:    userID,
				}).
				Return(redemption, tt.err)

			c, rec := newTestContext(http.MethodPost, "/api/v1/offers/redeem", body, userID)

			require.NoError(t, h.Redeem(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			} else {
				assert.Equal(t, "Redeemed Successfully", decodeBody(t, rec)["message"])
			}
		})
	}
}

func TestOfferHandler_MyClaimedOffers(t *testing.T) {
	userID := uuid.New()
	ownerID := userID
	paidClaimID := uuid.New()
	pendingClaimID := uuid.New()

	rows := []*entity.ClaimedOffer{
		{
			Claim:      &entity.MerchantOfferClaim{ID: paidClaimID, Status: entity.ClaimStatusSuccess},
			Offer:      &entity.MerchantOffer{ID: uuid.New()},
			Voucher:    &entity.MerchantOfferVoucher{Code: "PAID01", OwnedByID: &ownerID, ClaimID: &paidClaimID},
			Redemption: &entity.ClaimRedemption{ClaimID: paidClaimID, CreatedAt: time.Now()},
		},
		{
			Claim:   &entity.MerchantOfferClaim{ID: pendingClaimID, Status: entity.ClaimStatusAwaitPayment},
			Offer:   &entity.MerchantOffer{ID: uuid.New()},
			Voucher: &entity.MerchantOfferVoucher{Code: "WAIT01", OwnedByID: &ownerID, ClaimID: &pendingClaimID},
		},
	}

	h, m := newOfferHandlerForTest(t)
	m.claims.EXPECT().
		MyClaimedOffers(mock.Anything, userID, repository.Page{Offset: 10, Limit: 10}).
		Return(rows, int64(12), nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/offers/my_claimed_offers?page=2&limit=10", "", userID)

	require.NoError(t, h.MyClaimedOffers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	meta := resp["meta"].(map[string]any)
	assert.InDelta(t, 12, meta["total"], 0)
	assert.InDelta(t, 2, meta["page"], 0)

	data := resp["data"].([]any)
	require.Len(t, data, 2)

	paid := data[0].(map[string]any)
	assert.Equal(t, "PAID01", paid["voucher_code"])
	assert.Equal(t, "REDEEMED", paid["voucher_state"])
	assert.Equal(t, true, paid["redeemed"])

	pending := data[1].(map[string]any)
	assert.NotContains(t, pending, "voucher_code")
	assert.Equal(t, "RESERVED", pending["voucher_state"])
}

func TestOfferHandler_VoucherQR(t *testing.T) {
	userID := uuid.New()
	claimID := uuid.New()

	t.Run("renders png", func(t *testing.T) {
		h, m := newOfferHandlerForTest(t)
		m.vouchers.EXPECT().VoucherQR(mock.Anything, userID, claimID).Return([]byte("\x89PNG"), nil)

		c, rec := newTestContext(http.MethodGet, "/", "", userID)
		c.SetParamNames("id")
		c.SetParamValues(claimID.String())

		require.NoError(t, h.VoucherQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newOfferHandlerForTest(t)

		c, rec := newTestContext(http.MethodGet, "/", "", userID)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.VoucherQR(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
