// Package service defines interfaces for infrastructure-backed domain services.
package service

import (
	"context"
	"errors"

	"inador/internal/domain/entity"
)

// Categorized verification failures. The session service maps these to the
// user-facing messages; anything else falls back to the generic one.
var (
	ErrNoSession            = errors.New("no session credentials supplied")
	ErrUnauthorizedDomain   = errors.New("unauthorized-domain")
	ErrPopupBlocked         = errors.New("popup-blocked")
	ErrPopupClosedByUser    = errors.New("popup-closed-by-user")
	ErrProviderDisabled     = errors.New("operation-not-allowed")
	ErrInvalidProviderKey   = errors.New("invalid-api-key")
	ErrNetworkRequestFailed = errors.New("network-request-failed")
	ErrTokenInvalid         = errors.New("id token invalid")
)

// Credentials carries the per-request proof material a client attaches while
// driving an interactive verification round trip. IDToken is the provider
// token for the current session; RedirectToken is the one-shot result of a
// completed redirect flow; FailureCode is the provider failure the client
// reports when an interactive flow did not produce a token.
type Credentials struct {
	IDToken       string
	RedirectToken string
	FailureCode   string
}

// IdentityProvider verifies provider tokens and manages provider-side session state.
type IdentityProvider interface {
	// Verify validates an ID token and resolves the identity behind it.
	// Categorized failures surface as the sentinel errors above.
	Verify(ctx context.Context, idToken string) (*entity.Identity, error)

	// Revoke invalidates the provider-side session for a uid on sign-out.
	// Local session state is cleared by the caller regardless of the outcome.
	Revoke(ctx context.Context, uid string) error
}
