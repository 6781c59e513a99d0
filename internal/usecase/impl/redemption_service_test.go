package impl

import (
	"context"
	"sync"
	"testing"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	mockSvc "rewards/internal/mocks/service"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type redemptionServiceFixtures struct {
	service  usecase.RedemptionUsecase
	claims   claimServiceFixtures
	vouchers usecase.VoucherUsecase
	seeded   *seededOffer
	claim    *entity.MerchantOfferClaim
}

// createTestRedemptionService prepares a paid points claim on a merchant whose redeem code is "1234".
func createTestRedemptionService(t *testing.T) redemptionServiceFixtures {
	claims := createTestClaimService(t)
	store := claims.store

	hasher := mockSvc.NewMockSecretHasher(t)
	hasher.EXPECT().
		Check(mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		RunAndReturn(func(secret, hash string) bool { return hash == "hashed-"+secret }).
		Maybe()

	srv := NewRedemptionService(RedemptionServiceParams{
		TxManager: store.txManager,
		Hasher:    hasher,
		Publisher: store.publisher,
		Logger:    newDiscardLogger(),
	})
	vouchers := NewVoucherService(VoucherServiceParams{
		TxManager:   store.txManager,
		ClaimRepo:   store.claimRepo,
		VoucherRepo: store.voucherRepo,
		QRService:   mockSvc.NewMockQRCodeService(t),
		Logger:      newDiscardLogger(),
	})

	userID := uuid.New()
	seeded := store.seedOffer(t, 5, 5)
	store.creditPoints(t, userID, 1000)

	output, err := claims.service.Claim(context.Background(), pointsClaim(seeded.offer.ID, userID, 2))
	require.NoError(t, err)
	store.events()

	return redemptionServiceFixtures{
		service:  srv,
		claims:   claims,
		vouchers: vouchers,
		seeded:   seeded,
		claim:    output.Claim,
	}
}

func (fx redemptionServiceFixtures) input(actorID uuid.UUID, code string, quantity int64) *usecase.RedeemInput {
	return &usecase.RedeemInput{
		ClaimID:    fx.claim.ID,
		OfferID:    fx.claim.MerchantOfferID,
		RedeemCode: code,
		Quantity:   quantity,
		ActorID:    actorID,
	}
}

func TestRedemptionService_Redeem(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	redemption, err := fx.service.Redeem(ctx, fx.input(fx.claim.UserID, "1234", 2))
	require.NoError(t, err)
	assert.Equal(t, fx.claim.ID, redemption.ClaimID)
	assert.Equal(t, fx.claim.UserID, redemption.UserID)
	assert.Equal(t, int64(2), redemption.Quantity)

	events := fx.claims.store.events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventRedeemed, events[0].Name)
	assert.Equal(t, fx.claim.ID.String(), events[0].Payload["claim_id"])

	_, err = fx.service.Redeem(ctx, fx.input(fx.claim.UserID, "1234", 1))
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRedeemed)
}

func TestRedemptionService_Redeem_ByMerchantOwner(t *testing.T) {
	fx := createTestRedemptionService(t)

	_, err := fx.service.Redeem(context.Background(), fx.input(fx.seeded.merchant.OwnerUserID, "1234", 1))
	require.NoError(t, err)
}

func TestRedemptionService_Redeem_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   func(fx redemptionServiceFixtures) *usecase.RedeemInput
		wantErr error
	}{
		{
			name: "unknown claim",
			input: func(fx redemptionServiceFixtures) *usecase.RedeemInput {
				in := fx.input(fx.claim.UserID, "1234", 1)
				in.ClaimID = uuid.New()
				return in
			},
			wantErr: domainerrors.ErrClaimNotFound,
		},
		{
			name: "claim belongs to another offer",
			input: func(fx redemptionServiceFixtures) *usecase.RedeemInput {
				in := fx.input(fx.claim.UserID, "1234", 1)
				in.OfferID = uuid.New()
				return in
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "stranger",
			input: func(fx redemptionServiceFixtures) *usecase.RedeemInput {
				return fx.input(uuid.New(), "1234", 1)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "wrong code",
			input: func(fx redemptionServiceFixtures) *usecase.RedeemInput {
				return fx.input(fx.claim.UserID, "9999", 1)
			},
			wantErr: domainerrors.ErrInvalidCode,
		},
		{
			name: "more than claimed",
			input: func(fx redemptionServiceFixtures) *usecase.RedeemInput {
				return fx.input(fx.claim.UserID, "1234", 3)
			},
			wantErr: domainerrors.ErrInsufficientQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRedemptionService(t)

			_, err := fx.service.Redeem(context.Background(), tt.input(fx))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fx.claims.store.events())
		})
	}
}

func TestRedemptionService_Redeem_VoidedVoucher(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	require.NoError(t, fx.vouchers.Void(ctx, *fx.claim.VoucherID))

	_, err := fx.service.Redeem(ctx, fx.input(fx.claim.UserID, "1234", 1))
	assert.ErrorIs(t, err, domainerrors.ErrClaimNotRedeemable)
}

func TestRedemptionService_Redeem_UnpaidClaim(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()
	fx.claims.expectGatewayReference("GW-UNPAID")

	output, err := fx.claims.service.Claim(ctx, fiatClaim(fx.seeded.offer.ID, uuid.New()))
	require.NoError(t, err)

	_, err = fx.service.Redeem(ctx, &usecase.RedeemInput{
		ClaimID:    output.Claim.ID,
		OfferID:    output.Claim.MerchantOfferID,
		RedeemCode: "1234",
		Quantity:   1,
		ActorID:    output.Claim.UserID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrClaimNotRedeemable)
}

func TestRedemptionService_Redeem_ConcurrentAttemptsRedeemOnce(t *testing.T) {
	fx := createTestRedemptionService(t)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.Redeem(context.Background(), fx.input(fx.claim.UserID, "1234", 1))
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrAlreadyRedeemed)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
