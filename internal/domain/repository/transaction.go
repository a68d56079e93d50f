package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to run check-and-write sequences atomically
// without depending on a specific backend (Firestore or GORM).
type TransactionManager interface {
	// Execute runs a function within a single transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations obtained through the factory use
	// the same transaction, so a ledger check plus a credit grant commit or
	// abort together.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// AccountRepo returns an AccountRepository bound to the current transaction.
	AccountRepo() AccountRepository

	// LedgerRepo returns a LedgerRepository bound to the current transaction.
	LedgerRepo() LedgerRepository
}
