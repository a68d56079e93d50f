package entity

import "time"

// LedgerEntry is the idempotency marker for a processed payment event.
// Its existence means the credit grant for EventID has already been applied;
// the payment processor must never apply the same grant twice.
type LedgerEntry struct {
	EventID     string    // Unique event identifier from the payment processor; the record key.
	ProcessedAt time.Time // When the grant was applied.
}
