package firebase

import (
	"context"
	"log/slog"

	"inador/config"
	"inador/internal/domain/entity"
	"inador/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const anonymousSignInProvider = "anonymous"

type identityProvider struct {
	client                *auth.Client
	logger                *slog.Logger
	allowUnverifiedTokens bool
}

// NewIdentityProvider creates an IdentityProvider backed by Firebase Auth.
func NewIdentityProvider(ctx context.Context, app *firebase.App, cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	allowUnverified := cfg.Firebase != nil && cfg.Firebase.AllowUnverifiedTokens
	if allowUnverified {
		logger.Warn("Accepting unverified ID tokens, do not enable outside develop")
	}

	return &identityProvider{
		client:                client,
		logger:                logger,
		allowUnverifiedTokens: allowUnverified,
	}, nil
}

// Verify validates an ID token and resolves the identity behind it.
func (p *identityProvider) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	if idToken == "" {
		return nil, service.ErrNoSession
	}

	if p.allowUnverifiedTokens {
		return p.parseUnverified(idToken)
	}

	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		p.logger.Debug("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	identity := &entity.Identity{
		UID:       token.UID,
		Anonymous: token.Firebase.SignInProvider == anonymousSignInProvider,
	}

	// Anonymous tokens carry no profile; skip the user lookup.
	if identity.Anonymous {
		return identity, nil
	}

	record, err := p.client.GetUser(ctx, token.UID)
	if err != nil {
		// Profile lookup failure does not invalidate the token.
		p.logger.Warn("Failed to load user record",
			slog.String("uid", token.UID),
			slog.Any("error", err),
		)

		return identity, nil
	}

	identity.Email = record.Email
	identity.DisplayName = record.DisplayName
	identity.PhotoURL = record.PhotoURL

	return identity, nil
}

// Revoke invalidates the provider-side refresh tokens for a uid.
func (p *identityProvider) Revoke(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// parseUnverified extracts claims without signature verification. Develop
// mode only, where no service account is available to check signatures.
func (p *identityProvider) parseUnverified(idToken string) (*entity.Identity, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	uid, _ := claims["user_id"].(string)
	if uid == "" {
		uid, _ = claims["sub"].(string)
	}
	if uid == "" {
		return nil, errors.Wrap(service.ErrTokenInvalid, "token has no subject")
	}

	identity := &entity.Identity{UID: uid}
	identity.Email, _ = claims["email"].(string)
	identity.DisplayName, _ = claims["name"].(string)
	identity.PhotoURL, _ = claims["picture"].(string)

	if fb, ok := claims["firebase"].(map[string]any); ok {
		provider, _ := fb["sign_in_provider"].(string)
		identity.Anonymous = provider == anonymousSignInProvider
	}

	return identity, nil
}
