// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"inador/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account record does not exist.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never on a concrete store.
//
// Credit mutations and profile updates are deliberately separate methods:
// a profile update (email, last login) must never overwrite the credits
// field as a side effect.
type AccountRepository interface {
	// FindByID retrieves a single account by the identity uid.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// Create persists a new account record with its starting balance.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateProfile merges email and last-login into the record without
	// touching credits or the starter flag.
	UpdateProfile(ctx context.Context, id string, email string, lastLogin time.Time) error

	// IncrementCredits atomically adjusts the balance by delta at the store
	// level. Debits pass a negative delta. The atomic increment eliminates
	// the lost-update race between concurrent sessions.
	IncrementCredits(ctx context.Context, id string, delta int) error

	// SetCredits overwrites the balance; used for administrative resets.
	SetCredits(ctx context.Context, id string, credits int) error

	// SetStarterCreditsAvailable flips the starter bonus visibility flag.
	SetStarterCreditsAvailable(ctx context.Context, id string, available bool) error
}
