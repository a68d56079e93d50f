package service

import (
	"context"

	"inador/internal/domain/entity"
)

// ActionStore holds the transient per-session markers that survive an
// identity-verification round trip: the single pending action and the
// redirect-in-progress flag. Implementations bound both with a TTL so an
// abandoned redirect can never be misread as in progress forever.
type ActionStore interface {
	// SavePendingAction stores at most one pending action for the session.
	// An existing action is kept unless overwrite is set; the write must be
	// atomic with the existence check.
	SavePendingAction(ctx context.Context, sessionID string, action *entity.PendingAction, overwrite bool) error

	// TakePendingAction atomically consumes and returns the stored action,
	// or nil when none is held.
	TakePendingAction(ctx context.Context, sessionID string) (*entity.PendingAction, error)

	// MarkRedirectInProgress records that a redirect verification flow left
	// this session; the marker expires on its own.
	MarkRedirectInProgress(ctx context.Context, sessionID string) error

	// RedirectInProgress reports whether a redirect flow is still pending.
	RedirectInProgress(ctx context.Context, sessionID string) (bool, error)

	// ClearRedirectInProgress removes the marker once the redirect resolved.
	ClearRedirectInProgress(ctx context.Context, sessionID string) error
}
