package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/metrics"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pointService struct {
	txManager  repository.TransactionManager
	ledgerRepo repository.PointLedgerRepository
	logger     *slog.Logger
	now        func() time.Time
}

// PointServiceParams holds dependencies for PointService, injected by Fx.
type PointServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	LedgerRepo repository.PointLedgerRepository
	Logger     *slog.Logger
}

// NewPointService is the constructor for pointService.
func NewPointService(params PointServiceParams) usecase.PointUsecase {
	return &pointService{
		txManager:  params.TxManager,
		ledgerRepo: params.LedgerRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *pointService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *pointService) Credit(ctx context.Context, input *usecase.LedgerInput) (*entity.PointLedgerEntry, error) {
	return srv.append(ctx, input, entity.DirectionCredit)
}

func (srv *pointService) Debit(ctx context.Context, input *usecase.LedgerInput) (*entity.PointLedgerEntry, error) {
	return srv.append(ctx, input, entity.DirectionDebit)
}

func (srv *pointService) append(ctx context.Context, input *usecase.LedgerInput, direction entity.Direction) (*entity.PointLedgerEntry, error) {
	var entry *entity.PointLedgerEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		entry, err = appendPointEntry(ctx, repoFactory.PointLedgerRepo(), input.UserID, input.Amount, direction, input.Reference, input.Remarks, srv.now())

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Points ledger append rejected",
			slog.String("userID", input.UserID.String()),
			slog.String("direction", direction.String()),
			slog.Int64("amount", input.Amount),
			slog.Any("error", err),
		)

		return nil, err
	}

	metrics.LedgerEntriesTotal.WithLabelValues("points", direction.String()).Inc()

	return entry, nil
}

func (srv *pointService) BalanceOf(ctx context.Context, userID uuid.UUID) (int64, error) {
	latest, err := srv.ledgerRepo.FindLatest(ctx, userID)
	if errors.Is(err, repository.ErrLedgerEntryNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read points balance")
	}

	return latest.BalanceAfter, nil
}

func (srv *pointService) History(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.PointLedgerEntry, int64, error) {
	entries, total, err := srv.ledgerRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list points history")
	}

	return entries, total, nil
}
