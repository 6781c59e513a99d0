// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"rewards/config"
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

// claimService implements the ClaimUsecase interface.
type claimService struct {
	txManager    repository.TransactionManager
	claimRepo    repository.ClaimRepository
	gateway      service.PaymentGateway
	publisher    service.EventPublisher
	orderNumbers service.OrderNumberGenerator
	currency     string
	callbackURL  string
	gatewayName  string
	sweepBatch   int
	logger       *slog.Logger
	now          func() time.Time
}

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ClaimRepo    repository.ClaimRepository
	Gateway      service.PaymentGateway
	Publisher    service.EventPublisher
	OrderNumbers service.OrderNumberGenerator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewClaimService is the constructor for claimService.
func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	srv := &claimService{
		txManager:    params.TxManager,
		claimRepo:    params.ClaimRepo,
		gateway:      params.Gateway,
		publisher:    params.Publisher,
		orderNumbers: params.OrderNumbers,
		logger:       params.Logger,
		now:          time.Now,
	}

	if params.Config != nil {
		if params.Config.Offers != nil {
			srv.currency = params.Config.Offers.Currency
			srv.sweepBatch = params.Config.Offers.SweepBatchSize
		}
		if params.Config.Payment != nil {
			srv.callbackURL = params.Config.Payment.CallbackURL
			srv.gatewayName = params.Config.Payment.Provider
		}
	}
	if srv.sweepBatch <= 0 {
		srv.sweepBatch = 100
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Claim reserves a voucher for the user and settles it with points or starts a fiat payment.
func (srv *claimService) Claim(ctx context.Context, input *usecase.ClaimInput) (*usecase.ClaimOutput, error) {
	ctx, span := startSpan(ctx, "ClaimService.Claim",
		attribute.String("offer_id", input.OfferID.String()),
		attribute.String("payment_method", input.PaymentMethod.String()),
		attribute.Int64("quantity", input.Quantity),
	)

	output, err := srv.claim(ctx, input)
	metrics.ClaimsTotal.WithLabelValues(input.PaymentMethod.String(), metrics.Outcome(err)).Inc()
	endSpan(span, err)

	if err != nil {
		srv.log(ctx).Warn("Claim rejected",
			slog.String("offerID", input.OfferID.String()),
			slog.String("userID", input.UserID.String()),
			slog.Int64("quantity", input.Quantity),
			slog.String("paymentMethod", input.PaymentMethod.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	publishAfterCommit(ctx, srv.publisher, srv.log(ctx), entity.NewClaimedEvent(output.Claim))

	return output, nil
}

func (srv *claimService) claim(ctx context.Context, input *usecase.ClaimInput) (*usecase.ClaimOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	switch input.PaymentMethod {
	case entity.PaymentMethodPoints:
		return srv.claimWithPoints(ctx, input)
	case entity.PaymentMethodFiat:
		return srv.claimWithFiat(ctx, input)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported payment method")
	}
}

func (srv *claimService) newClaim(input *usecase.ClaimInput, offer *entity.MerchantOffer, voucher *entity.MerchantOfferVoucher, status entity.ClaimStatus, now time.Time) *entity.MerchantOfferClaim {
	unitPrice := offer.PriceFor(input.PaymentMethod)

	return &entity.MerchantOfferClaim{
		OrderNo:         srv.orderNumbers.NextOrderNo(),
		UserID:          input.UserID,
		MerchantOfferID: offer.ID,
		VoucherID:       &voucher.ID,
		Quantity:        input.Quantity,
		UnitPrice:       unitPrice,
		NetAmount:       unitPrice * input.Quantity,
		PaymentMethod:   input.PaymentMethod,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// claimWithPoints debits the ledger and reserves the voucher in one transaction.
func (srv *claimService) claimWithPoints(ctx context.Context, input *usecase.ClaimInput) (*usecase.ClaimOutput, error) {
	var output usecase.ClaimOutput
	now := srv.now()
	claimID := uuid.New()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledger := repoFactory.PointLedgerRepo()

		if err := ledger.LockAccount(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to lock points account")
		}

		offer, err := lockLiveOffer(ctx, repoFactory.OfferRepo(), input.OfferID, now)
		if err != nil {
			return err
		}

		netAmount := offer.PriceFor(entity.PaymentMethodPoints) * input.Quantity
		_, balance, err := pointsBalance(ctx, ledger, input.UserID)
		if err != nil {
			return err
		}
		if balance < netAmount {
			return domainerrors.ErrInsufficientBalance
		}

		voucher, err := reserveVoucher(ctx, repoFactory, offer, input.UserID, claimID, input.Quantity)
		if err != nil {
			return err
		}

		claim := srv.newClaim(input, offer, voucher, entity.ClaimStatusSuccess, now)
		claim.ID = claimID

		if netAmount > 0 {
			ref := entity.LedgerReference{Type: entity.ReferenceMerchantOfferClaim, ID: claimID}
			if _, err := appendPointEntry(ctx, ledger, input.UserID, netAmount, entity.DirectionDebit, ref, "claim "+claim.OrderNo, now); err != nil {
				return err
			}
		}

		if err := repoFactory.ClaimRepo().CreateClaim(ctx, claim); err != nil {
			return errors.Wrap(err, "failed to create claim")
		}

		output.Offer = offer
		output.Claim = claim

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Offer claimed with points",
		slog.String("claimID", output.Claim.ID.String()),
		slog.String("offerID", input.OfferID.String()),
		slog.Int64("netAmount", output.Claim.NetAmount),
	)

	return &output, nil
}

// claimWithFiat reserves first, calls the gateway with no lock held, and compensates on failure.
func (srv *claimService) claimWithFiat(ctx context.Context, input *usecase.ClaimInput) (*usecase.ClaimOutput, error) {
	var output usecase.ClaimOutput
	var txn *entity.PaymentTransaction
	now := srv.now()
	claimID := uuid.New()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offer, err := lockLiveOffer(ctx, repoFactory.OfferRepo(), input.OfferID, now)
		if err != nil {
			return err
		}

		voucher, err := reserveVoucher(ctx, repoFactory, offer, input.UserID, claimID, input.Quantity)
		if err != nil {
			return err
		}

		claim := srv.newClaim(input, offer, voucher, entity.ClaimStatusAwaitPayment, now)
		claim.ID = claimID
		if err := repoFactory.ClaimRepo().CreateClaim(ctx, claim); err != nil {
			return errors.Wrap(err, "failed to create claim")
		}

		txn = &entity.PaymentTransaction{
			ID:                uuid.New(),
			ClaimID:           claimID,
			UserID:            input.UserID,
			Amount:            claim.NetAmount,
			Currency:          srv.currency,
			FiatPaymentMethod: input.FiatPaymentMethod,
			Status:            entity.TransactionStatusPending,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := repoFactory.PaymentTransactionRepo().CreateTransaction(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to create payment transaction")
		}

		output.Offer = offer
		output.Claim = claim

		return nil
	})
	if err != nil {
		return nil, err
	}

	redirect, err := srv.requestPayment(ctx, input, output.Claim)
	if err != nil {
		if cErr := srv.compensateFailedPayment(ctx, claimID); cErr != nil {
			srv.log(ctx).Error("Failed to release reservation after gateway error",
				slog.String("claimID", claimID.String()),
				slog.Any("error", cErr),
			)
		}

		return nil, domainerrors.ErrGateway
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txn.GatewayReference = redirect.GatewayReference
		txn.RedirectURL = redirect.RedirectURL

		return repoFactory.PaymentTransactionRepo().UpdateTransaction(ctx, txn)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store gateway reference")
	}

	output.Payment = &usecase.PaymentOutput{
		TransactionID:    txn.ID,
		GatewayReference: redirect.GatewayReference,
		RedirectURL:      redirect.RedirectURL,
		FormFields:       redirect.FormFields,
	}

	srv.log(ctx).Info("Offer claimed, awaiting payment",
		slog.String("claimID", claimID.String()),
		slog.String("offerID", input.OfferID.String()),
		slog.String("gatewayReference", redirect.GatewayReference),
	)

	return &output, nil
}

func (srv *claimService) requestPayment(ctx context.Context, input *usecase.ClaimInput, claim *entity.MerchantOfferClaim) (*service.PaymentRedirect, error) {
	started := srv.now()

	redirect, err := srv.gateway.CreateTransaction(ctx, &service.PaymentRequest{
		Amount:      claim.NetAmount,
		Currency:    srv.currency,
		Reference:   claim.OrderNo,
		CallbackURL: srv.callbackURL,
		Method:      input.FiatPaymentMethod,
		Contact:     input.Contact,
	})
	if err == nil && (redirect == nil || redirect.GatewayReference == "") {
		err = errors.New("gateway returned no reference")
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.GatewayRequestDuration.WithLabelValues(srv.gatewayName, result).Observe(time.Since(started).Seconds())

	if err != nil {
		srv.log(ctx).Error("Payment gateway call failed",
			slog.String("claimID", claim.ID.String()),
			slog.String("orderNo", claim.OrderNo),
			slog.Int64("amount", claim.NetAmount),
			slog.Any("error", err),
		)

		return nil, err
	}

	return redirect, nil
}

// compensateFailedPayment undoes the reservation of a claim whose gateway call failed.
func (srv *claimService) compensateFailedPayment(ctx context.Context, claimID uuid.UUID) error {
	_, err := srv.cancelUnpaid(ctx, func(repoFactory repository.RepositoryFactory) (*entity.MerchantOfferClaim, error) {
		return repoFactory.ClaimRepo().FindClaimByIDForUpdate(ctx, claimID)
	})
	if err == nil {
		metrics.ClaimsCancelledTotal.WithLabelValues("gateway_error").Inc()
	}

	return err
}

// cancelUnpaid locks the claim returned by find and, when it still awaits payment,
// releases its voucher and fails both claim and payment transaction. It reports
// whether anything changed.
func (srv *claimService) cancelUnpaid(
	ctx context.Context,
	find func(repoFactory repository.RepositoryFactory) (*entity.MerchantOfferClaim, error),
) (bool, error) {
	cancelled := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		claim, err := find(repoFactory)
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock claim")
		}

		if claim.Status != entity.ClaimStatusAwaitPayment {
			return nil
		}

		if err := releaseVoucher(ctx, repoFactory, claim); err != nil {
			return err
		}

		claim.Status = entity.ClaimStatusFailed
		if err := repoFactory.ClaimRepo().UpdateClaim(ctx, claim); err != nil {
			return errors.Wrap(err, "failed to fail claim")
		}

		if err := srv.failTransaction(ctx, repoFactory, claim.ID); err != nil {
			return err
		}

		cancelled = true

		return nil
	})

	return cancelled, err
}

func (srv *claimService) failTransaction(ctx context.Context, repoFactory repository.RepositoryFactory, claimID uuid.UUID) error {
	txnRepo := repoFactory.PaymentTransactionRepo()

	txn, err := txnRepo.FindByClaimID(ctx, claimID)
	if errors.Is(err, repository.ErrPaymentTransactionNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find payment transaction")
	}

	if txn.Status != entity.TransactionStatusPending {
		return nil
	}

	txn.Status = entity.TransactionStatusFailed

	return txnRepo.UpdateTransaction(ctx, txn)
}

// Cancel fails the user's latest unpaid claim on the offer.
func (srv *claimService) Cancel(ctx context.Context, offerID, userID uuid.UUID) error {
	ctx, span := startSpan(ctx, "ClaimService.Cancel", attribute.String("offer_id", offerID.String()))

	cancelled, err := srv.cancelUnpaid(ctx, func(repoFactory repository.RepositoryFactory) (*entity.MerchantOfferClaim, error) {
		return repoFactory.ClaimRepo().FindLatestAwaitingPaymentForUpdate(ctx, userID, offerID)
	})
	endSpan(span, err)
	if err != nil {
		return errors.Wrap(err, "failed to cancel claim")
	}

	if cancelled {
		metrics.ClaimsCancelledTotal.WithLabelValues("user").Inc()
		srv.log(ctx).Info("Claim cancelled", slog.String("offerID", offerID.String()), slog.String("userID", userID.String()))
	}

	return nil
}

// CancelClaim fails an unpaid claim by id.
func (srv *claimService) CancelClaim(ctx context.Context, claimID uuid.UUID) error {
	cancelled, err := srv.cancelUnpaid(ctx, func(repoFactory repository.RepositoryFactory) (*entity.MerchantOfferClaim, error) {
		return repoFactory.ClaimRepo().FindClaimByIDForUpdate(ctx, claimID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to cancel claim")
	}

	if cancelled {
		metrics.ClaimsCancelledTotal.WithLabelValues("sweep").Inc()
	}

	return nil
}

// ExpirePending cancels unpaid claims created before now-olderThan, one transaction per claim.
func (srv *claimService) ExpirePending(ctx context.Context, olderThan time.Duration) (int, error) {
	ctx, span := startSpan(ctx, "ClaimService.ExpirePending")
	defer span.End()

	cutoff := srv.now().Add(-olderThan)

	ids, err := srv.claimRepo.FindStaleAwaitingPayment(ctx, cutoff, srv.sweepBatch)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find stale claims")
	}

	expired := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return expired, errors.WithStack(err)
		}

		if err := srv.CancelClaim(ctx, id); err != nil {
			srv.log(ctx).Error("Failed to expire claim", slog.String("claimID", id.String()), slog.Any("error", err))

			continue
		}
		expired++
	}

	srv.log(ctx).Info("Expired unpaid claims", slog.Int("count", expired), slog.Time("cutoff", cutoff))

	return expired, nil
}

// ConfirmPayment settles a pending transaction reported by the gateway.
func (srv *claimService) ConfirmPayment(ctx context.Context, input *usecase.PaymentConfirmation) (*entity.MerchantOfferClaim, error) {
	ctx, span := startSpan(ctx, "ClaimService.ConfirmPayment", attribute.Bool("success", input.Success))

	var claim *entity.MerchantOfferClaim
	settled := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txnRepo := repoFactory.PaymentTransactionRepo()
		claimRepo := repoFactory.ClaimRepo()

		txn, err := txnRepo.FindByGatewayReferenceForUpdate(ctx, input.GatewayReference)
		if errors.Is(err, repository.ErrPaymentTransactionNotFound) {
			return domainerrors.ErrClaimNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock payment transaction")
		}

		claim, err = claimRepo.FindClaimByIDForUpdate(ctx, txn.ClaimID)
		if errors.Is(err, repository.ErrClaimNotFound) {
			return domainerrors.ErrClaimNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock claim")
		}

		if txn.Status != entity.TransactionStatusPending || claim.Status != entity.ClaimStatusAwaitPayment {
			return nil
		}

		if !input.Success {
			if err := releaseVoucher(ctx, repoFactory, claim); err != nil {
				return err
			}
			claim.Status = entity.ClaimStatusFailed
			txn.Status = entity.TransactionStatusFailed
		} else {
			claim.Status = entity.ClaimStatusSuccess
			txn.Status = entity.TransactionStatusSuccess
		}

		if err := claimRepo.UpdateClaim(ctx, claim); err != nil {
			return errors.Wrap(err, "failed to update claim")
		}
		if err := txnRepo.UpdateTransaction(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to update payment transaction")
		}
		settled = true

		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}

	if settled {
		srv.log(ctx).Info("Payment settled",
			slog.String("claimID", claim.ID.String()),
			slog.String("status", claim.Status.String()),
		)
		if claim.Status == entity.ClaimStatusFailed {
			metrics.ClaimsCancelledTotal.WithLabelValues("payment_failed").Inc()
		}
	}

	return claim, nil
}

// MyClaimedOffers lists the user's live claims.
func (srv *claimService) MyClaimedOffers(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.ClaimedOffer, int64, error) {
	items, total, err := srv.claimRepo.ListClaimedOffers(ctx, userID, page)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list claimed offers")
	}

	return items, total, nil
}
