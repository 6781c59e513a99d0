// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"rewards/internal/domain/repository"
	"rewards/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) PointLedgerRepo() repository.PointLedgerRepository {
	return NewPointLedgerRepository(f.tx)
}

func (f *gormRepositoryFactory) ComponentLedgerRepo() repository.ComponentLedgerRepository {
	return NewComponentLedgerRepository(f.tx)
}

func (f *gormRepositoryFactory) OfferRepo() repository.OfferRepository {
	return NewOfferRepository(f.tx)
}

func (f *gormRepositoryFactory) VoucherRepo() repository.VoucherRepository {
	return NewVoucherRepository(f.tx)
}

func (f *gormRepositoryFactory) ClaimRepo() repository.ClaimRepository {
	return NewClaimRepository(f.tx)
}

func (f *gormRepositoryFactory) PaymentTransactionRepo() repository.PaymentTransactionRepository {
	return NewPaymentTransactionRepository(f.tx)
}

func (f *gormRepositoryFactory) RedemptionRepo() repository.RedemptionRepository {
	return NewRedemptionRepository(f.tx)
}

func (f *gormRepositoryFactory) MissionRepo() repository.MissionRepository {
	return NewMissionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// NewRepositoryFactory returns repositories outside any explicit transaction, for read paths.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
