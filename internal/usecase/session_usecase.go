// Package usecase defines the application-layer interfaces. Implementations
// live in the impl subpackage; the delivery layer depends only on these.
package usecase

import (
	"context"
	"errors"

	"inador/internal/domain/entity"
	"inador/internal/domain/service"
)

// ErrRedirectStarted signals that a redirect verification flow was initiated
// for a constrained client. No identity is available yet; the caller returns
// control to the client and the flow resolves on the next bootstrap.
var ErrRedirectStarted = errors.New("redirect verification in progress")

// BootstrapResult is the outcome of session startup.
type BootstrapResult struct {
	Session *entity.Session
	// PendingAction is the queued action to replay now that verification
	// completed, nil when none was held. It is consumed exactly once.
	PendingAction *entity.PendingAction
}

// SessionUsecase drives the identity side of a session: startup, interactive
// verification, pending-action bookkeeping and sign-out.
type SessionUsecase interface {
	// Bootstrap runs the two-phase session startup: first resolve a pending
	// redirect verification result, then evaluate the session state exactly
	// once, loading or creating the account behind the identity.
	Bootstrap(ctx context.Context, sess *entity.Session, client entity.ClientProfile, creds service.Credentials) (*BootstrapResult, error)

	// EnsureVerifiedIdentity guarantees a non-anonymous identity before a
	// gated operation. Constrained clients are sent through the redirect
	// flow (ErrRedirectStarted); others verify the supplied ID token or get
	// a categorized verification failure.
	EnsureVerifiedIdentity(ctx context.Context, sess *entity.Session, client entity.ClientProfile, creds service.Credentials) (*entity.Identity, error)

	// RecordPendingAction queues the single action to replay after
	// verification. An already-queued action wins unless overwrite is set.
	RecordPendingAction(ctx context.Context, sessionID string, action *entity.PendingAction, overwrite bool) error

	// SignOut clears local session state and best-effort revokes the
	// provider-side session. The remote account record persists.
	SignOut(ctx context.Context, sess *entity.Session) error
}
