package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/domain/service"
	"rewards/internal/infra/persistence/model"
	mockSvc "rewards/internal/mocks/service"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type claimServiceFixtures struct {
	service *claimService
	store   *testStore
	gateway *mockSvc.MockPaymentGateway
}

func createTestClaimService(t *testing.T) claimServiceFixtures {
	store := newTestStore(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	srv := NewClaimService(ClaimServiceParams{
		TxManager:    store.txManager,
		ClaimRepo:    store.claimRepo,
		Gateway:      gateway,
		Publisher:    store.publisher,
		OrderNumbers: store.orderNumbers,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return claimServiceFixtures{
		service: srv.(*claimService),
		store:   store,
		gateway: gateway,
	}
}

func pointsClaim(offerID, userID uuid.UUID, quantity int64) *usecase.ClaimInput {
	return &usecase.ClaimInput{
		OfferID:       offerID,
		UserID:        userID,
		Quantity:      quantity,
		PaymentMethod: entity.PaymentMethodPoints,
	}
}

func fiatClaim(offerID, userID uuid.UUID) *usecase.ClaimInput {
	return &usecase.ClaimInput{
		OfferID:           offerID,
		UserID:            userID,
		Quantity:          1,
		PaymentMethod:     entity.PaymentMethodFiat,
		FiatPaymentMethod: "qris",
		Contact:           service.PaymentContact{Name: "Budi", Email: "budi@example.com"},
	}
}

func (fx claimServiceFixtures) expectGatewayReference(reference string) {
	fx.gateway.EXPECT().
		CreateTransaction(mock.Anything, mock.AnythingOfType("*service.PaymentRequest")).
		Return(&service.PaymentRedirect{
			GatewayReference: reference,
			RedirectURL:      "https://pay.example.com/" + reference,
		}, nil).
		Once()
}

func TestClaimService_Claim_WithPoints(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 5, 2)
	fx.store.creditPoints(t, userID, 500)

	output, err := fx.service.Claim(ctx, pointsClaim(seeded.offer.ID, userID, 2))
	require.NoError(t, err)

	claim := output.Claim
	assert.Equal(t, entity.ClaimStatusSuccess, claim.Status)
	assert.Equal(t, int64(100), claim.UnitPrice)
	assert.Equal(t, int64(200), claim.NetAmount)
	require.NotNil(t, claim.VoucherID)
	assert.Equal(t, seeded.vouchers[0].ID, *claim.VoucherID, "oldest voucher is handed out first")
	assert.Nil(t, output.Payment)

	assert.Equal(t, int64(300), fx.store.pointsOf(t, userID))
	assert.Equal(t, int64(3), fx.store.offerQuantity(t, seeded.offer.ID))
	assert.Equal(t, int64(1), fx.store.availableVouchers(t, seeded.offer.ID))

	voucher, err := fx.store.voucherRepo.FindVoucherByID(ctx, *claim.VoucherID)
	require.NoError(t, err)
	require.NotNil(t, voucher.OwnedByID)
	assert.Equal(t, userID, *voucher.OwnedByID)
	require.NotNil(t, voucher.ClaimID)
	assert.Equal(t, claim.ID, *voucher.ClaimID)

	events := fx.store.events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventClaimed, events[0].Name)
	assert.Equal(t, claim.ID.String(), events[0].Payload["claim_id"])
	assert.Equal(t, entity.ClaimStatusSuccess.String(), events[0].Payload["status"])
}

func TestClaimService_Claim_FreeOfferSkipsLedger(t *testing.T) {
	fx := createTestClaimService(t)
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 1, 1)
	require.NoError(t, fx.store.db.Model(&model.MerchantOfferModel{}).
		Where("id = ?", seeded.offer.ID).Update("unit_price", 0).Error)

	output, err := fx.service.Claim(context.Background(), pointsClaim(seeded.offer.ID, userID, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), output.Claim.NetAmount)

	assert.Equal(t, int64(0), fx.store.pointsOf(t, userID))
}

func TestClaimService_Claim_InsufficientBalance(t *testing.T) {
	fx := createTestClaimService(t)
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 5, 1)
	fx.store.creditPoints(t, userID, 50)

	_, err := fx.service.Claim(context.Background(), pointsClaim(seeded.offer.ID, userID, 1))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)

	assert.Equal(t, int64(50), fx.store.pointsOf(t, userID))
	assert.Equal(t, int64(5), fx.store.offerQuantity(t, seeded.offer.ID))
	assert.Equal(t, int64(1), fx.store.availableVouchers(t, seeded.offer.ID))
	assert.Empty(t, fx.store.events())
}

func TestClaimService_Claim_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, fx claimServiceFixtures, offerID uuid.UUID) *usecase.ClaimInput
		wantErr error
	}{
		{
			name: "unknown offer",
			prepare: func(_ *testing.T, _ claimServiceFixtures, _ uuid.UUID) *usecase.ClaimInput {
				return pointsClaim(uuid.New(), uuid.New(), 1)
			},
			wantErr: domainerrors.ErrOfferNotFound,
		},
		{
			name: "offer window closed",
			prepare: func(_ *testing.T, fx claimServiceFixtures, offerID uuid.UUID) *usecase.ClaimInput {
				fx.service.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
				return pointsClaim(offerID, uuid.New(), 1)
			},
			wantErr: domainerrors.ErrOfferExpired,
		},
		{
			name: "quantity above remaining inventory",
			prepare: func(t *testing.T, fx claimServiceFixtures, offerID uuid.UUID) *usecase.ClaimInput {
				userID := uuid.New()
				fx.store.creditPoints(t, userID, 10000)
				return pointsClaim(offerID, userID, 4)
			},
			wantErr: domainerrors.ErrSoldOut,
		},
		{
			name: "non positive quantity",
			prepare: func(_ *testing.T, _ claimServiceFixtures, offerID uuid.UUID) *usecase.ClaimInput {
				return pointsClaim(offerID, uuid.New(), 0)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "unsupported payment method",
			prepare: func(_ *testing.T, _ claimServiceFixtures, offerID uuid.UUID) *usecase.ClaimInput {
				input := pointsClaim(offerID, uuid.New(), 1)
				input.PaymentMethod = "cash"
				return input
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClaimService(t)
			seeded := fx.store.seedOffer(t, 3, 3)

			_, err := fx.service.Claim(context.Background(), tt.prepare(t, fx, seeded.offer.ID))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int64(3), fx.store.offerQuantity(t, seeded.offer.ID))
		})
	}
}

func TestClaimService_Claim_NoVoucherLeft(t *testing.T) {
	fx := createTestClaimService(t)
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 10, 0)
	fx.store.creditPoints(t, userID, 1000)

	_, err := fx.service.Claim(context.Background(), pointsClaim(seeded.offer.ID, userID, 1))
	assert.ErrorIs(t, err, domainerrors.ErrSoldOut)
	assert.Equal(t, int64(1000), fx.store.pointsOf(t, userID), "failed claim must not debit")
}

func TestClaimService_Claim_ConcurrentClaimersNeverOversell(t *testing.T) {
	fx := createTestClaimService(t)
	seeded := fx.store.seedOffer(t, 10, 3)

	const claimers = 10
	users := make([]uuid.UUID, claimers)
	for i := range users {
		users[i] = uuid.New()
		fx.store.creditPoints(t, users[i], 1000)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes []uuid.UUID
		soldOut   int
	)
	for _, userID := range users {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()

			_, err := fx.service.Claim(context.Background(), pointsClaim(seeded.offer.ID, userID, 1))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes = append(successes, userID)
			case errors.Is(err, domainerrors.ErrSoldOut):
				soldOut++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(userID)
	}
	wg.Wait()

	assert.Len(t, successes, 3)
	assert.Equal(t, claimers-3, soldOut)
	assert.Equal(t, int64(7), fx.store.offerQuantity(t, seeded.offer.ID))
	assert.Equal(t, int64(0), fx.store.availableVouchers(t, seeded.offer.ID))

	for _, userID := range users {
		want := int64(1000)
		for _, winner := range successes {
			if winner == userID {
				want = 900
			}
		}
		assert.Equal(t, want, fx.store.pointsOf(t, userID))
	}
}

func TestClaimService_Claim_LastUnitGoesToOneClaimer(t *testing.T) {
	fx := createTestClaimService(t)
	seeded := fx.store.seedOffer(t, 1, 2)
	first, second := uuid.New(), uuid.New()
	fx.store.creditPoints(t, first, 100)
	fx.store.creditPoints(t, second, 100)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, userID := range []uuid.UUID{first, second} {
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = fx.service.Claim(context.Background(), pointsClaim(seeded.offer.ID, userID, 1))
		}(i, userID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrSoldOut)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(0), fx.store.offerQuantity(t, seeded.offer.ID))
	assert.Equal(t, int64(1), fx.store.availableVouchers(t, seeded.offer.ID))
}

func TestClaimService_Claim_WithFiat(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 2, 2)

	fx.gateway.EXPECT().
		CreateTransaction(mock.Anything, mock.AnythingOfType("*service.PaymentRequest")).
		RunAndReturn(func(_ context.Context, req *service.PaymentRequest) (*service.PaymentRedirect, error) {
			assert.Equal(t, int64(25000), req.Amount)
			assert.Equal(t, "IDR", req.Currency)
			assert.Equal(t, "qris", req.Method)
			assert.Equal(t, "https://rewards.test/payments/callback", req.CallbackURL)
			assert.NotEmpty(t, req.Reference)
			return &service.PaymentRedirect{GatewayReference: "GW-1", RedirectURL: "https://pay.example.com/GW-1"}, nil
		}).
		Once()

	output, err := fx.service.Claim(ctx, fiatClaim(seeded.offer.ID, userID))
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusAwaitPayment, output.Claim.Status)
	require.NotNil(t, output.Payment)
	assert.Equal(t, "GW-1", output.Payment.GatewayReference)
	assert.Equal(t, "https://pay.example.com/GW-1", output.Payment.RedirectURL)

	txn, err := fx.store.paymentRepo.FindByClaimID(ctx, output.Claim.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPending, txn.Status)
	assert.Equal(t, "GW-1", txn.GatewayReference)
	assert.Equal(t, int64(25000), txn.Amount)

	assert.Equal(t, int64(1), fx.store.offerQuantity(t, seeded.offer.ID))

	events := fx.store.events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.ClaimStatusAwaitPayment.String(), events[0].Payload["status"])
}

func TestClaimService_Claim_GatewayFailureReleasesReservation(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 1, 1)

	fx.gateway.EXPECT().
		CreateTransaction(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).
		Once()

	_, err := fx.service.Claim(ctx, fiatClaim(seeded.offer.ID, userID))
	assert.ErrorIs(t, err, domainerrors.ErrGateway)

	assert.Equal(t, int64(1), fx.store.offerQuantity(t, seeded.offer.ID))
	assert.Equal(t, int64(1), fx.store.availableVouchers(t, seeded.offer.ID))

	var claims []model.MerchantOfferClaimModel
	require.NoError(t, fx.store.db.Where("user_id = ?", userID).Find(&claims).Error)
	require.Len(t, claims, 1)
	assert.Equal(t, entity.ClaimStatusFailed.String(), claims[0].Status)
	assert.Nil(t, claims[0].VoucherID)

	txn, err := fx.store.paymentRepo.FindByClaimID(ctx, claims[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusFailed, txn.Status)
	assert.Empty(t, fx.store.events())
}

func TestClaimService_Cancel_RestoresInventory(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 1, 1)
	fx.expectGatewayReference("GW-CANCEL")

	output, err := fx.service.Claim(ctx, fiatClaim(seeded.offer.ID, userID))
	require.NoError(t, err)
	assert.Equal(t, int64(0), fx.store.offerQuantity(t, seeded.offer.ID))

	require.NoError(t, fx.service.Cancel(ctx, seeded.offer.ID, userID))

	claim, err := fx.store.claimRepo.FindClaimByID(ctx, output.Claim.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusFailed, claim.Status)
	assert.Nil(t, claim.VoucherID, "a cancelled claim lets go of its voucher")
	assert.Equal(t, int64(1), fx.store.offerQuantity(t, seeded.offer.ID))
	assert.Equal(t, int64(1), fx.store.availableVouchers(t, seeded.offer.ID))

	txn, err := fx.store.paymentRepo.FindByClaimID(ctx, output.Claim.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusFailed, txn.Status)

	// Nothing left to cancel.
	require.NoError(t, fx.service.Cancel(ctx, seeded.offer.ID, userID))
	assert.Equal(t, int64(1), fx.store.offerQuantity(t, seeded.offer.ID))

	// The released voucher can be claimed again.
	other := uuid.New()
	fx.store.creditPoints(t, other, 100)
	again, err := fx.service.Claim(ctx, pointsClaim(seeded.offer.ID, other, 1))
	require.NoError(t, err)
	assert.Equal(t, seeded.vouchers[0].ID, *again.Claim.VoucherID)

	claim, err = fx.store.claimRepo.FindClaimByID(ctx, output.Claim.ID)
	require.NoError(t, err)
	assert.Nil(t, claim.VoucherID, "only the new claim points at the voucher")
}

func TestClaimService_Cancel_LeavesPaidClaims(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 2, 2)
	fx.store.creditPoints(t, userID, 100)

	output, err := fx.service.Claim(ctx, pointsClaim(seeded.offer.ID, userID, 1))
	require.NoError(t, err)

	require.NoError(t, fx.service.Cancel(ctx, seeded.offer.ID, userID))
	require.NoError(t, fx.service.CancelClaim(ctx, output.Claim.ID))

	claim, err := fx.store.claimRepo.FindClaimByID(ctx, output.Claim.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusSuccess, claim.Status)
	assert.Equal(t, int64(1), fx.store.offerQuantity(t, seeded.offer.ID))
}

func TestClaimService_ExpirePending(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	seeded := fx.store.seedOffer(t, 3, 3)
	fx.expectGatewayReference("GW-STALE")

	stale, err := fx.service.Claim(ctx, fiatClaim(seeded.offer.ID, uuid.New()))
	require.NoError(t, err)

	paidUser := uuid.New()
	fx.store.creditPoints(t, paidUser, 100)
	_, err = fx.service.Claim(ctx, pointsClaim(seeded.offer.ID, paidUser, 1))
	require.NoError(t, err)

	// Nothing is old enough yet.
	expired, err := fx.service.ExpirePending(ctx, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, expired)

	fx.service.now = func() time.Time { return time.Now().Add(time.Hour) }
	expired, err = fx.service.ExpirePending(ctx, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	claim, err := fx.store.claimRepo.FindClaimByID(ctx, stale.Claim.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusFailed, claim.Status)
	assert.Nil(t, claim.VoucherID)
	assert.Equal(t, int64(2), fx.store.offerQuantity(t, seeded.offer.ID))

	expired, err = fx.service.ExpirePending(ctx, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, expired)
}

func TestClaimService_ConfirmPayment(t *testing.T) {
	t.Run("success settles claim and transaction", func(t *testing.T) {
		fx := createTestClaimService(t)
		ctx := context.Background()
		seeded := fx.store.seedOffer(t, 1, 1)
		fx.expectGatewayReference("GW-OK")

		output, err := fx.service.Claim(ctx, fiatClaim(seeded.offer.ID, uuid.New()))
		require.NoError(t, err)

		claim, err := fx.service.ConfirmPayment(ctx, &usecase.PaymentConfirmation{GatewayReference: "GW-OK", Success: true})
		require.NoError(t, err)
		assert.Equal(t, output.Claim.ID, claim.ID)
		assert.Equal(t, entity.ClaimStatusSuccess, claim.Status)

		txn, err := fx.store.paymentRepo.FindByClaimID(ctx, claim.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusSuccess, txn.Status)
		assert.Equal(t, int64(0), fx.store.offerQuantity(t, seeded.offer.ID))

		// A late failure callback cannot undo a settled payment.
		claim, err = fx.service.ConfirmPayment(ctx, &usecase.PaymentConfirmation{GatewayReference: "GW-OK", Success: false})
		require.NoError(t, err)
		assert.Equal(t, entity.ClaimStatusSuccess, claim.Status)
	})

	t.Run("failure releases the voucher", func(t *testing.T) {
		fx := createTestClaimService(t)
		ctx := context.Background()
		seeded := fx.store.seedOffer(t, 1, 1)
		fx.expectGatewayReference("GW-DECLINED")

		_, err := fx.service.Claim(ctx, fiatClaim(seeded.offer.ID, uuid.New()))
		require.NoError(t, err)

		claim, err := fx.service.ConfirmPayment(ctx, &usecase.PaymentConfirmation{GatewayReference: "GW-DECLINED", Success: false})
		require.NoError(t, err)
		assert.Equal(t, entity.ClaimStatusFailed, claim.Status)
		assert.Nil(t, claim.VoucherID)
		assert.Equal(t, int64(1), fx.store.offerQuantity(t, seeded.offer.ID))
		assert.Equal(t, int64(1), fx.store.availableVouchers(t, seeded.offer.ID))

		stored, err := fx.store.claimRepo.FindClaimByID(ctx, claim.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.VoucherID)
	})

	t.Run("unknown reference", func(t *testing.T) {
		fx := createTestClaimService(t)

		_, err := fx.service.ConfirmPayment(context.Background(), &usecase.PaymentConfirmation{GatewayReference: "nope", Success: true})
		assert.ErrorIs(t, err, domainerrors.ErrClaimNotFound)
	})
}

func TestClaimService_MyClaimedOffers(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	userID := uuid.New()
	seeded := fx.store.seedOffer(t, 5, 5)
	fx.store.creditPoints(t, userID, 1000)

	for i := 0; i < 2; i++ {
		_, err := fx.service.Claim(ctx, pointsClaim(seeded.offer.ID, userID, 1))
		require.NoError(t, err)
	}

	items, total, err := fx.service.MyClaimedOffers(ctx, userID, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, seeded.offer.ID, item.Offer.ID)
		require.NotNil(t, item.Voucher)
		assert.Nil(t, item.Redemption)
	}

	items, total, err = fx.service.MyClaimedOffers(ctx, uuid.New(), repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
