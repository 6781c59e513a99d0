package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/metrics"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type componentService struct {
	txManager     repository.TransactionManager
	componentRepo repository.ComponentLedgerRepository
	logger        *slog.Logger
	now           func() time.Time
}

// ComponentServiceParams holds dependencies for ComponentService, injected by Fx.
type ComponentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ComponentRepo repository.ComponentLedgerRepository
	Logger        *slog.Logger
}

// NewComponentService is the constructor for componentService.
func NewComponentService(params ComponentServiceParams) usecase.ComponentUsecase {
	return &componentService{
		txManager:     params.TxManager,
		componentRepo: params.ComponentRepo,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *componentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *componentService) Credit(ctx context.Context, input *usecase.ComponentLedgerInput) (*entity.PointComponentLedgerEntry, error) {
	return srv.append(ctx, input, entity.DirectionCredit)
}

func (srv *componentService) Debit(ctx context.Context, input *usecase.ComponentLedgerInput) (*entity.PointComponentLedgerEntry, error) {
	return srv.append(ctx, input, entity.DirectionDebit)
}

func (srv *componentService) append(ctx context.Context, input *usecase.ComponentLedgerInput, direction entity.Direction) (*entity.PointComponentLedgerEntry, error) {
	var entry *entity.PointComponentLedgerEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ComponentLedgerRepo()

		if _, err := repo.FindComponentByID(ctx, input.ComponentID); err != nil {
			if errors.Is(err, repository.ErrComponentNotFound) {
				return domainerrors.ErrComponentNotFound
			}

			return errors.Wrap(err, "failed to find component")
		}

		var err error
		entry, err = appendComponentEntry(ctx, repo, input.UserID, input.ComponentID, input.Amount, direction, input.Reference, input.Remarks, srv.now())

		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.LedgerEntriesTotal.WithLabelValues("components", direction.String()).Inc()

	return entry, nil
}

func (srv *componentService) Balances(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	balances, err := srv.componentRepo.BalancesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load component balances")
	}

	return balances, nil
}

func (srv *componentService) ListBalances(ctx context.Context, userID uuid.UUID) ([]*usecase.ComponentBalance, error) {
	components, err := srv.componentRepo.ListComponents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list components")
	}

	balances, err := srv.Balances(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*usecase.ComponentBalance, 0, len(components))
	for _, component := range components {
		result = append(result, &usecase.ComponentBalance{
			Component: component,
			Balance:   balances[component.ID],
		})
	}

	return result, nil
}

// Combine checks every requirement before mutating anything, then debits the
// components and credits the recipe's points in the same transaction.
func (srv *componentService) Combine(ctx context.Context, userID, recipeID uuid.UUID) (*usecase.CombineOutput, error) {
	ctx, span := startSpan(ctx, "ComponentService.Combine", attribute.String("recipe_id", recipeID.String()))

	var output usecase.CombineOutput
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		componentRepo := repoFactory.ComponentLedgerRepo()

		recipe, err := componentRepo.FindRecipeByID(ctx, recipeID)
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find recipe")
		}
		output.Recipe = recipe

		requirements := mergeRequirements(recipe.Requirements)

		// Points account first, then components in id order. Mission payouts take the same order.
		if recipe.RewardPoints > 0 {
			if err := repoFactory.PointLedgerRepo().LockAccount(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to lock points account")
			}
		}
		for _, req := range requirements {
			if err := componentRepo.LockAccount(ctx, userID, req.ComponentID); err != nil {
				return errors.Wrap(err, "failed to lock component account")
			}
		}

		for _, req := range requirements {
			_, balance, err := componentBalance(ctx, componentRepo, userID, req.ComponentID)
			if err != nil {
				return err
			}
			if balance < req.Quantity {
				return domainerrors.ErrInsufficientBalance
			}
		}

		ref := entity.LedgerReference{Type: entity.ReferenceComponentRecipe, ID: recipe.ID}
		for _, req := range requirements {
			entry, err := appendComponentEntry(ctx, componentRepo, userID, req.ComponentID, req.Quantity, entity.DirectionDebit, ref, "combine "+recipe.Name, now)
			if err != nil {
				return err
			}
			output.Debits = append(output.Debits, entry)
		}

		if recipe.RewardPoints > 0 {
			entry, err := appendPointEntry(ctx, repoFactory.PointLedgerRepo(), userID, recipe.RewardPoints, entity.DirectionCredit, ref, "combine "+recipe.Name, now)
			if err != nil {
				return err
			}
			output.PointsEntry = entry
		}

		return nil
	})
	endSpan(span, err)
	if err != nil {
		srv.log(ctx).Warn("Combine rejected",
			slog.String("userID", userID.String()),
			slog.String("recipeID", recipeID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Components combined",
		slog.String("userID", userID.String()),
		slog.String("recipeID", recipeID.String()),
		slog.Int64("rewardPoints", output.Recipe.RewardPoints),
	)

	return &output, nil
}

// mergeRequirements sums duplicate components, drops non-positive quantities and sorts by id.
func mergeRequirements(requirements []entity.ComponentAmount) []entity.ComponentAmount {
	totals := make(map[uuid.UUID]int64, len(requirements))
	for _, req := range requirements {
		if req.Quantity > 0 {
			totals[req.ComponentID] += req.Quantity
		}
	}

	merged := make([]entity.ComponentAmount, 0, len(totals))
	for componentID, quantity := range totals {
		merged = append(merged, entity.ComponentAmount{ComponentID: componentID, Quantity: quantity})
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ComponentID.String() < merged[j].ComponentID.String()
	})

	return merged
}
