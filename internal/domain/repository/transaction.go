package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Row and advisory locks taken inside fn are held until commit or rollback.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	PointLedgerRepo() PointLedgerRepository
	ComponentLedgerRepo() ComponentLedgerRepository
	OfferRepo() OfferRepository
	VoucherRepo() VoucherRepository
	ClaimRepo() ClaimRepository
	PaymentTransactionRepo() PaymentTransactionRepository
	RedemptionRepo() RedemptionRepository
	MissionRepo() MissionRepository
}

// Page is an offset/limit window for list queries.
type Page struct {
	Offset int
	Limit  int
}
