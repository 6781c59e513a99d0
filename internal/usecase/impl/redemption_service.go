package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/domain/service"
	"rewards/internal/infra/metrics"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type redemptionService struct {
	txManager repository.TransactionManager
	hasher    service.SecretHasher
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.SecretHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRedemptionService is the constructor for redemptionService.
func NewRedemptionService(params RedemptionServiceParams) usecase.RedemptionUsecase {
	return &redemptionService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *redemptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Redeem consumes a claimed voucher at the merchant. The claim row lock plus the
// unique index on claim_id make a second redemption impossible.
func (srv *redemptionService) Redeem(ctx context.Context, input *usecase.RedeemInput) (*entity.ClaimRedemption, error) {
	ctx, span := startSpan(ctx, "RedemptionService.Redeem", attribute.String("claim_id", input.ClaimID.String()))

	var redemption *entity.ClaimRedemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		redemption, err = srv.redeem(ctx, repoFactory, input)

		return err
	})
	metrics.RedemptionsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	endSpan(span, err)

	if err != nil {
		srv.log(ctx).Warn("Redemption rejected",
			slog.String("claimID", input.ClaimID.String()),
			slog.String("offerID", input.OfferID.String()),
			slog.String("actorID", input.ActorID.String()),
			slog.Int64("quantity", input.Quantity),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Claim redeemed", slog.String("claimID", input.ClaimID.String()))
	publishAfterCommit(ctx, srv.publisher, srv.log(ctx), entity.NewRedeemedEvent(redemption))

	return redemption, nil
}

func (srv *redemptionService) redeem(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.RedeemInput) (*entity.ClaimRedemption, error) {
	claim, err := repoFactory.ClaimRepo().FindClaimByIDForUpdate(ctx, input.ClaimID)
	if errors.Is(err, repository.ErrClaimNotFound) {
		return nil, domainerrors.ErrClaimNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock claim")
	}

	if claim.MerchantOfferID != input.OfferID {
		return nil, domainerrors.ErrForbidden
	}

	merchant, err := srv.findMerchant(ctx, repoFactory.OfferRepo(), claim.MerchantOfferID)
	if err != nil {
		return nil, err
	}

	if input.ActorID != claim.UserID && input.ActorID != merchant.OwnerUserID {
		return nil, domainerrors.ErrForbidden
	}

	if err := srv.ensureRedeemable(ctx, repoFactory.VoucherRepo(), claim); err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.RedeemCode, merchant.RedeemCodeHash) {
		return nil, domainerrors.ErrInvalidCode
	}

	redemptionRepo := repoFactory.RedemptionRepo()
	_, err = redemptionRepo.FindByClaimID(ctx, claim.ID)
	if err == nil {
		return nil, domainerrors.ErrAlreadyRedeemed
	}
	if !errors.Is(err, repository.ErrRedemptionNotFound) {
		return nil, errors.Wrap(err, "failed to check redemption")
	}

	if input.Quantity <= 0 || input.Quantity > claim.Quantity {
		return nil, domainerrors.ErrInsufficientQuantity
	}

	redemption := &entity.ClaimRedemption{
		ID:              uuid.New(),
		ClaimID:         claim.ID,
		UserID:          claim.UserID,
		MerchantOfferID: claim.MerchantOfferID,
		Quantity:        input.Quantity,
		CreatedAt:       srv.now(),
	}
	if err := redemptionRepo.CreateRedemption(ctx, redemption); err != nil {
		if errors.Is(err, repository.ErrDuplicateRedemption) {
			return nil, domainerrors.ErrAlreadyRedeemed
		}

		return nil, errors.Wrap(err, "failed to create redemption")
	}

	return redemption, nil
}

func (srv *redemptionService) findMerchant(ctx context.Context, offerRepo repository.OfferRepository, offerID uuid.UUID) (*entity.Merchant, error) {
	offer, err := offerRepo.FindOfferByID(ctx, offerID)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil, domainerrors.ErrOfferNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer")
	}

	merchant, err := offerRepo.FindMerchantByID(ctx, offer.MerchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return merchant, nil
}

// ensureRedeemable requires a paid claim holding a voucher that was not voided.
func (srv *redemptionService) ensureRedeemable(ctx context.Context, voucherRepo repository.VoucherRepository, claim *entity.MerchantOfferClaim) error {
	if claim.Status != entity.ClaimStatusSuccess || claim.VoucherID == nil {
		return domainerrors.ErrClaimNotRedeemable
	}

	voucher, err := voucherRepo.FindVoucherByID(ctx, *claim.VoucherID)
	if errors.Is(err, repository.ErrVoucherNotFound) {
		return domainerrors.ErrClaimNotRedeemable
	}
	if err != nil {
		return errors.Wrap(err, "failed to find voucher")
	}

	if voucher.Voided {
		return domainerrors.ErrClaimNotRedeemable
	}

	return nil
}
