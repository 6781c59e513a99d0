package postgres

import (
	"context"
	"time"

	"rewards/internal/domain/entity"
	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentTransactionRepository implements the repository.PaymentTransactionRepository interface.
type paymentTransactionRepository struct {
	db *gorm.DB
}

// NewPaymentTransactionRepository is the constructor for paymentTransactionRepository.
func NewPaymentTransactionRepository(db *gorm.DB) repository.PaymentTransactionRepository {
	return &paymentTransactionRepository{
		db: db,
	}
}

// CreateTransaction inserts the payment record of a fiat claim.
func (repo *paymentTransactionRepository) CreateTransaction(ctx context.Context, txn *entity.PaymentTransaction) error {
	txnM := fromPaymentTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("claim already has a payment transaction")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// FindByClaimID retrieves the payment record of a claim.
func (repo *paymentTransactionRepository) FindByClaimID(ctx context.Context, claimID uuid.UUID) (*entity.PaymentTransaction, error) {
	return repo.find(repo.db.WithContext(ctx).Where("claim_id = ?", claimID))
}

// FindByGatewayReferenceForUpdate locks the payment record the gateway refers to.
func (repo *paymentTransactionRepository) FindByGatewayReferenceForUpdate(ctx context.Context, reference string) (*entity.PaymentTransaction, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(forUpdate).Where("gateway_reference = ?", reference))
}

func (repo *paymentTransactionRepository) find(db *gorm.DB) (*entity.PaymentTransaction, error) {
	var txnM model.PaymentTransactionModel

	if err := db.First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction")
	}

	return toPaymentTransactionDomain(&txnM), nil
}

// UpdateTransaction persists status and gateway data.
func (repo *paymentTransactionRepository) UpdateTransaction(ctx context.Context, txn *entity.PaymentTransaction) error {
	txn.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("id = ?", txn.ID).
		Updates(map[string]any{
			"status":            string(txn.Status),
			"gateway_reference": txn.GatewayReference,
			"redirect_url":      txn.RedirectURL,
			"updated_at":        txn.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment transaction")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentTransactionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentTransactionDomain(data *model.PaymentTransactionModel) *entity.PaymentTransaction {
	if data == nil {
		return nil
	}

	return &entity.PaymentTransaction{
		ID:                data.ID,
		ClaimID:           data.ClaimID,
		UserID:            data.UserID,
		Amount:            data.Amount,
		Currency:          data.Currency,
		FiatPaymentMethod: data.FiatPaymentMethod,
		Status:            entity.TransactionStatus(data.Status),
		GatewayReference:  data.GatewayReference,
		RedirectURL:       data.RedirectURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPaymentTransactionDomain(data *entity.PaymentTransaction) *model.PaymentTransactionModel {
	if data == nil {
		return nil
	}

	return &model.PaymentTransactionModel{
		ID:                ensureID(data.ID),
		ClaimID:           data.ClaimID,
		UserID:            data.UserID,
		Amount:            data.Amount,
		Currency:          data.Currency,
		FiatPaymentMethod: data.FiatPaymentMethod,
		Status:            string(data.Status),
		GatewayReference:  data.GatewayReference,
		RedirectURL:       data.RedirectURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
