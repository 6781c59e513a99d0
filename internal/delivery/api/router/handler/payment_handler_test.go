package handler

import (
	"net/http"
	"testing"

	"rewards/config"
	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	mocks "rewards/internal/mocks/usecase"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentHandlerForTest(t *testing.T, secret string) (*PaymentHandler, *mocks.MockClaimUsecase) {
	claims := mocks.NewMockClaimUsecase(t)

	h := NewPaymentHandler(PaymentHandlerParams{
		ClaimUC: claims,
		Config:  &config.Config{Payment: &config.PaymentConfig{CallbackSecret: secret}},
		Logger:  newTestLogger(),
	})

	return h, claims
}

func TestPaymentHandler_Callback(t *testing.T) {
	t.Run("settled payment confirms the claim", func(t *testing.T) {
		h, claims := newPaymentHandlerForTest(t, "s3cret")
		claims.EXPECT().
			ConfirmPayment(mock.Anything, &usecase.PaymentConfirmation{GatewayReference: "SBX-1", Success: true}).
			Return(&entity.MerchantOfferClaim{ID: uuid.New(), Status: entity.ClaimStatusSuccess}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/payments/callback",
			`{"gateway_reference":"SBX-1","status":"paid"}`, uuid.Nil)
		c.Request().Header.Set(HeaderCallbackToken, "s3cret")

		require.NoError(t, h.Callback(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "SUCCESS", decodeBody(t, rec)["data"].(map[string]any)["status"])
	})

	t.Run("failed payment", func(t *testing.T) {
		h, claims := newPaymentHandlerForTest(t, "s3cret")
		claims.EXPECT().
			ConfirmPayment(mock.Anything, &usecase.PaymentConfirmation{GatewayReference: "SBX-2", Success: false}).
			Return(&entity.MerchantOfferClaim{ID: uuid.New(), Status: entity.ClaimStatusFailed}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/payments/callback",
			`{"gateway_reference":"SBX-2","status":"declined"}`, uuid.Nil)
		c.Request().Header.Set(HeaderCallbackToken, "s3cret")

		require.NoError(t, h.Callback(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown reference", func(t *testing.T) {
		h, claims := newPaymentHandlerForTest(t, "s3cret")
		claims.EXPECT().ConfirmPayment(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrClaimNotFound)

		c, rec := newTestContext(http.MethodPost, "/api/v1/payments/callback",
			`{"gateway_reference":"nope","status":"paid"}`, uuid.Nil)
		c.Request().Header.Set(HeaderCallbackToken, "s3cret")

		require.NoError(t, h.Callback(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	rejected := []struct {
		name   string
		secret string
		token  string
	}{
		{name: "wrong token", secret: "s3cret", token: "guess"},
		{name: "missing token", secret: "s3cret"},
		{name: "no secret configured", token: "anything"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPaymentHandlerForTest(t, tt.secret)

			c, rec := newTestContext(http.MethodPost, "/api/v1/payments/callback",
				`{"gateway_reference":"SBX-1","status":"paid"}`, uuid.Nil)
			if tt.token != "" {
				c.Request().Header.Set(HeaderCallbackToken, tt.token)
			}

			require.NoError(t, h.Callback(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
