package repository

import (
	"context"

	"rewards/internal/domain/entity"
	"rewards/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentTransactionNotFound is returned when a payment transaction does not exist.
var ErrPaymentTransactionNotFound = errors.New("payment transaction not found")

// PaymentTransactionRepository persists fiat payment transactions.
type PaymentTransactionRepository interface {
	CreateTransaction(ctx context.Context, txn *entity.PaymentTransaction) error
	FindByClaimID(ctx context.Context, claimID uuid.UUID) (*entity.PaymentTransaction, error)
	FindByGatewayReferenceForUpdate(ctx context.Context, reference string) (*entity.PaymentTransaction, error)
	UpdateTransaction(ctx context.Context, txn *entity.PaymentTransaction) error
}
