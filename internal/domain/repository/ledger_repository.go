package repository

import (
	"context"
	"errors"

	"inador/internal/domain/entity"
)

// ErrLedgerEntryNotFound is returned when no ledger entry exists for an event id.
var ErrLedgerEntryNotFound = errors.New("ledger entry not found")

// ErrLedgerEntryExists is returned when a ledger entry for the event id was
// already written, i.e. the grant was already applied by a concurrent delivery.
var ErrLedgerEntryExists = errors.New("ledger entry already exists")

// LedgerRepository persists the idempotency markers for processed payment events.
type LedgerRepository interface {
	// Find retrieves the ledger entry for a payment event id.
	Find(ctx context.Context, eventID string) (*entity.LedgerEntry, error)

	// Create writes the ledger entry. The store enforces uniqueness on the
	// event id; a duplicate write fails with ErrLedgerEntryExists.
	Create(ctx context.Context, entry *entity.LedgerEntry) error
}
