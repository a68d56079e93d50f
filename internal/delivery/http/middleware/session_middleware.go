package middleware

import (
	"strings"

	"inador/internal/domain/entity"
	"inador/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderSessionID carries the opaque session key chosen by the client.
	HeaderSessionID = "X-Session-Id"
	// HeaderRedirectResult carries the token delivered by a completed
	// redirect verification round trip.
	HeaderRedirectResult = "X-Redirect-Result"
	// HeaderAuthFailure carries the categorized failure code when an
	// interactive verification ended without a token.
	HeaderAuthFailure = "X-Auth-Failure"

	keySession       = "session"
	keyClientProfile = "client_profile"
	keyCredentials   = "credentials"
)

// SessionMiddleware builds the per-request session context from headers. The
// session identity is re-established on every request; handlers never trust
// client-reported credit balances.
type SessionMiddleware struct{}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Process extracts the session key, client profile and credentials.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		sessionID := req.Header.Get(HeaderSessionID)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Response().Header().Set(HeaderSessionID, sessionID)

		creds := service.Credentials{
			RedirectToken: req.Header.Get(HeaderRedirectResult),
			FailureCode:   req.Header.Get(HeaderAuthFailure),
		}
		if authHeader := req.Header.Get(echo.HeaderAuthorization); authHeader != "" {
			if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
				creds.IDToken = token
			}
		}

		c.Set(keySession, entity.NewSession(sessionID))
		c.Set(keyClientProfile, entity.ClientProfile{UserAgent: req.UserAgent()})
		c.Set(keyCredentials, creds)

		return next(c)
	}
}

// GetSession returns the request-scoped session context.
func GetSession(c echo.Context) *entity.Session {
	if sess, ok := c.Get(keySession).(*entity.Session); ok {
		return sess
	}

	return entity.NewSession(uuid.New().String())
}

// GetClientProfile returns the client characteristics for this request.
func GetClientProfile(c echo.Context) entity.ClientProfile {
	if profile, ok := c.Get(keyClientProfile).(entity.ClientProfile); ok {
		return profile
	}

	return entity.ClientProfile{}
}

// GetCredentials returns the verification credentials for this request.
func GetCredentials(c echo.Context) service.Credentials {
	if creds, ok := c.Get(keyCredentials).(service.Credentials); ok {
		return creds
	}

	return service.Credentials{}
}
