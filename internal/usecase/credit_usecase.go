package usecase

import (
	"context"

	"inador/internal/domain/entity"
)

// StarterClaim is the result of a successful starter-credit claim: the new
// balance plus the fixed checkout handoff for the follow-up purchase.
type StarterClaim struct {
	Credits      int
	CheckoutURL  string
	QRCodeBase64 string
}

// CreditUsecase manages the per-identity credit balance. All balance
// mutations go through the store-level atomic increment; the session copy is
// updated only after the remote write succeeds.
type CreditUsecase interface {
	// LoadOrCreateAccount fetches the account behind an identity, creating
	// it with the starting balance on first contact. Existing balances are
	// never touched.
	LoadOrCreateAccount(ctx context.Context, identity *entity.Identity) (*entity.Account, error)

	// Debit removes amount credits. Insufficient balance fails without any
	// mutation, local or remote.
	Debit(ctx context.Context, sess *entity.Session, amount int) error

	// Credit adds amount credits.
	Credit(ctx context.Context, sess *entity.Session, amount int) error

	// SetCreditsTo overwrites the balance; administrative resets only.
	SetCreditsTo(ctx context.Context, sess *entity.Session, credits int) error

	// RecordLogin merges email and last-login into the account record. This
	// write path is disjoint from credits by contract.
	RecordLogin(ctx context.Context, identity *entity.Identity) error

	// ClaimStarterCredits applies the one-time starter bonus guarded by the
	// account flag, clears the flag and returns the checkout handoff.
	ClaimStarterCredits(ctx context.Context, sess *entity.Session) (*StarterClaim, error)
}
