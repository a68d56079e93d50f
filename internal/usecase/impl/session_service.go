// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"inador/config"
	"inador/internal/domain/entity"
	domainerrors "inador/internal/domain/errors"
	"inador/internal/domain/service"
	"inador/internal/usecase"

	"github.com/pkg/errors"
)

type sessionService struct {
	identityProvider    service.IdentityProvider
	actionStore         service.ActionStore
	creditUsecase       usecase.CreditUsecase
	verificationTimeout time.Duration
	logger              *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	identityProvider service.IdentityProvider,
	actionStore service.ActionStore,
	creditUsecase usecase.CreditUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identityProvider:    identityProvider,
		actionStore:         actionStore,
		creditUsecase:       creditUsecase,
		verificationTimeout: cfg.Auth.VerificationTimeout,
		logger:              logger,
	}
}

// Bootstrap runs the two-phase session startup.
//
// Phase one resolves a pending redirect verification: a delivered redirect
// token is verified and the in-progress marker cleared, so the decision of
// whether the session is authenticated is made only once, in phase two.
func (s *sessionService) Bootstrap(ctx context.Context, sess *entity.Session, client entity.ClientProfile, creds service.Credentials) (*usecase.BootstrapResult, error) {
	// Phase 1: resolve the redirect round trip, if one is pending.
	if creds.RedirectToken != "" {
		identity, err := s.verify(ctx, creds.RedirectToken)

		if clearErr := s.actionStore.ClearRedirectInProgress(ctx, sess.ID); clearErr != nil {
			s.logger.Warn("Failed to clear redirect marker",
				slog.String("session_id", sess.ID),
				slog.Any("error", clearErr),
			)
		}

		if err != nil {
			return nil, s.mapVerificationError(err)
		}

		sess.Attach(identity)
	} else {
		inProgress, err := s.actionStore.RedirectInProgress(ctx, sess.ID)
		if err != nil {
			return nil, domainerrors.ErrInternalError.WrapMessage("check redirect marker")
		}

		if inProgress {
			// The round trip ended without a token: either the provider
			// reported a failure or the user abandoned the flow. Clear the
			// marker so the session does not stay suspended.
			if clearErr := s.actionStore.ClearRedirectInProgress(ctx, sess.ID); clearErr != nil {
				s.logger.Warn("Failed to clear redirect marker",
					slog.String("session_id", sess.ID),
					slog.Any("error", clearErr),
				)
			}

			if creds.FailureCode != "" {
				return nil, domainerrors.VerificationMessage(creds.FailureCode)
			}
		}
	}

	// Phase 2: evaluate the session state exactly once.
	if sess.Identity == nil && creds.IDToken != "" {
		identity, err := s.verify(ctx, creds.IDToken)
		if err != nil {
			// An expired or malformed session token means signed out, not a
			// failed bootstrap.
			s.logger.Debug("Session token rejected, continuing unauthenticated",
				slog.String("session_id", sess.ID),
				slog.Any("error", err),
			)
		} else {
			sess.Attach(identity)
		}
	}

	result := &usecase.BootstrapResult{Session: sess}

	if sess.Identity == nil {
		return result, nil
	}

	account, err := s.creditUsecase.LoadOrCreateAccount(ctx, sess.Identity)
	if err != nil {
		return nil, err
	}
	sess.Credits = account.Credits
	sess.StarterCreditsAvailable = account.StarterCreditsAvailable

	if sess.Verified() {
		// Profile write path only; credits are never touched here.
		if err := s.creditUsecase.RecordLogin(ctx, sess.Identity); err != nil {
			s.logger.Warn("Failed to record login",
				slog.String("uid", sess.Identity.UID),
				slog.Any("error", err),
			)
		}

		action, err := s.actionStore.TakePendingAction(ctx, sess.ID)
		if err != nil {
			s.logger.Warn("Failed to take pending action",
				slog.String("session_id", sess.ID),
				slog.Any("error", err),
			)
		} else if action.Valid() {
			result.PendingAction = action
		}
	}

	return result, nil
}

// EnsureVerifiedIdentity guarantees a non-anonymous identity before a gated
// operation runs.
func (s *sessionService) EnsureVerifiedIdentity(ctx context.Context, sess *entity.Session, client entity.ClientProfile, creds service.Credentials) (*entity.Identity, error) {
	if sess.Verified() {
		return sess.Identity, nil
	}

	// The client reported an interactive-auth failure instead of a token.
	if creds.FailureCode != "" {
		return nil, domainerrors.VerificationMessage(creds.FailureCode)
	}

	// Constrained clients cannot host a popup; suspend the session into the
	// redirect flow and resolve it on the next bootstrap.
	if client.PreferredAuthFlow() == entity.AuthFlowRedirect && creds.IDToken == "" {
		if err := s.actionStore.MarkRedirectInProgress(ctx, sess.ID); err != nil {
			return nil, domainerrors.ErrInternalError.WrapMessage("mark redirect in progress")
		}

		return nil, usecase.ErrRedirectStarted
	}

	if creds.IDToken == "" {
		return nil, domainerrors.ErrAuthRequired
	}

	identity, err := s.verify(ctx, creds.IDToken)
	if err != nil {
		return nil, s.mapVerificationError(err)
	}

	if !identity.Verified() {
		return nil, domainerrors.ErrVerificationFailed
	}

	// The uid survives an anonymous-to-verified upgrade, so the existing
	// account record (and its balance) carries over.
	sess.Attach(identity)

	account, err := s.creditUsecase.LoadOrCreateAccount(ctx, identity)
	if err != nil {
		return nil, err
	}
	sess.Credits = account.Credits
	sess.StarterCreditsAvailable = account.StarterCreditsAvailable

	if err := s.creditUsecase.RecordLogin(ctx, identity); err != nil {
		s.logger.Warn("Failed to record login",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)
	}

	return identity, nil
}

// RecordPendingAction queues the single action to replay after verification.
func (s *sessionService) RecordPendingAction(ctx context.Context, sessionID string, action *entity.PendingAction, overwrite bool) error {
	if !action.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid pending action")
	}

	if err := s.actionStore.SavePendingAction(ctx, sessionID, action, overwrite); err != nil {
		return domainerrors.ErrInternalError.WrapMessage("save pending action")
	}

	return nil
}

// SignOut clears local session state. Provider-side revocation is attempted
// but its failure never blocks the sign-out.
func (s *sessionService) SignOut(ctx context.Context, sess *entity.Session) error {
	if sess.Identity != nil {
		if err := s.identityProvider.Revoke(ctx, sess.Identity.UID); err != nil {
			s.logger.Warn("Failed to revoke provider session",
				slog.String("uid", sess.Identity.UID),
				slog.Any("error", err),
			)
		}
	}

	if err := s.actionStore.ClearRedirectInProgress(ctx, sess.ID); err != nil {
		s.logger.Warn("Failed to clear redirect marker on sign-out",
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)
	}

	sess.Reset()

	return nil
}

// verify runs token verification under the configured bound.
func (s *sessionService) verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, s.verificationTimeout)
	defer cancel()

	return s.identityProvider.Verify(verifyCtx, idToken)
}

// mapVerificationError translates categorized provider failures to their
// user-facing messages; expiry of the verification bound is a cancellation.
func (s *sessionService) mapVerificationError(err error) error {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return domainerrors.ErrAuthRequired
	case errors.Is(err, service.ErrUnauthorizedDomain):
		return domainerrors.VerificationMessage("unauthorized-domain")
	case errors.Is(err, service.ErrPopupBlocked):
		return domainerrors.VerificationMessage("popup-blocked")
	case errors.Is(err, service.ErrPopupClosedByUser):
		return domainerrors.VerificationMessage("popup-closed-by-user")
	case errors.Is(err, service.ErrProviderDisabled):
		return domainerrors.VerificationMessage("operation-not-allowed")
	case errors.Is(err, service.ErrInvalidProviderKey):
		return domainerrors.VerificationMessage("invalid-api-key")
	case errors.Is(err, service.ErrNetworkRequestFailed):
		return domainerrors.VerificationMessage("network-request-failed")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domainerrors.ErrVerificationCancelled
	default:
		return domainerrors.VerificationMessage("")
	}
}
