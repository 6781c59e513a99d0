package impl

import (
	"context"
	"log/slog"

	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/domain/service"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type voucherService struct {
	txManager   repository.TransactionManager
	claimRepo   repository.ClaimRepository
	voucherRepo repository.VoucherRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// VoucherServiceParams holds dependencies for VoucherService, injected by Fx.
type VoucherServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ClaimRepo   repository.ClaimRepository
	VoucherRepo repository.VoucherRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewVoucherService is the constructor for voucherService.
func NewVoucherService(params VoucherServiceParams) usecase.VoucherUsecase {
	return &voucherService{
		txManager:   params.TxManager,
		claimRepo:   params.ClaimRepo,
		voucherRepo: params.VoucherRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *voucherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Void is terminal. Voiding an unowned voucher withdraws one unit of offer quantity,
// since that unit can no longer be reserved. A reserved voucher's units were already
// taken by its claim and are not restored when the claim is cancelled.
func (srv *voucherService) Void(ctx context.Context, voucherID uuid.UUID) error {
	withdrawn := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		voucherRepo := repoFactory.VoucherRepo()
		offerRepo := repoFactory.OfferRepo()

		voucher, err := voucherRepo.FindVoucherByID(ctx, voucherID)
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return domainerrors.ErrVoucherNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find voucher")
		}

		// Reservations and releases hold the offer row, so ownership is stable once it is locked.
		if _, err := offerRepo.FindOfferByIDForUpdate(ctx, voucher.MerchantOfferID); err != nil &&
			!errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(err, "failed to lock offer")
		}

		voucher, err = voucherRepo.FindVoucherByID(ctx, voucherID)
		if err != nil {
			return errors.Wrap(err, "failed to reload voucher")
		}
		if voucher.Voided {
			return nil
		}

		if err := voucherRepo.Void(ctx, voucherID); err != nil {
			return err
		}

		if voucher.OwnedByID != nil {
			return nil
		}

		err = offerRepo.DecrementQuantity(ctx, voucher.MerchantOfferID, 1)
		switch {
		case err == nil:
			withdrawn = true
		case errors.Is(err, repository.ErrOfferQuantityExhausted), errors.Is(err, repository.ErrOfferNotFound):
		default:
			return errors.Wrap(err, "failed to withdraw offer quantity")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Voucher voided",
		slog.String("voucherID", voucherID.String()),
		slog.Bool("quantityWithdrawn", withdrawn),
	)

	return nil
}

func (srv *voucherService) VoucherQR(ctx context.Context, userID, claimID uuid.UUID) ([]byte, error) {
	claim, err := srv.claimRepo.FindClaimByID(ctx, claimID)
	if errors.Is(err, repository.ErrClaimNotFound) {
		return nil, domainerrors.ErrClaimNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find claim")
	}

	if claim.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}
	if claim.Status == entity.ClaimStatusFailed || claim.VoucherID == nil {
		return nil, domainerrors.ErrVoucherNotFound
	}

	voucher, err := srv.voucherRepo.FindVoucherByID(ctx, *claim.VoucherID)
	if errors.Is(err, repository.ErrVoucherNotFound) {
		return nil, domainerrors.ErrVoucherNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find voucher")
	}
	if voucher.Voided {
		return nil, domainerrors.ErrVoucherNotFound
	}

	png, err := srv.qrService.GenerateVoucherQR(claim.ID, voucher.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render voucher QR code")
	}

	return png, nil
}
