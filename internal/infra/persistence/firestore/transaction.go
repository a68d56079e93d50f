package firestore

import (
	"context"

	"inador/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface using Firestore transactions. Firestore requires all reads in a
// transaction to happen before any write; the payment flow reads the ledger
// first and writes afterwards, which fits that ordering.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface, handing out repositories bound to one Firestore transaction.
type firestoreRepositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// AccountRepo creates an account repository bound to the transaction.
func (f *firestoreRepositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{client: f.client, tx: f.tx}
}

// LedgerRepo creates a ledger repository bound to the transaction.
func (f *firestoreRepositoryFactory) LedgerRepo() repository.LedgerRepository {
	return &ledgerRepository{client: f.client, tx: f.tx}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
// Firestore retries the function on contention, so fn must be idempotent
// over its reads; the final state commits atomically.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		factory := &firestoreRepositoryFactory{client: tm.client, tx: tx}

		return fn(factory)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
