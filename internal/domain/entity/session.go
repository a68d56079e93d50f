package entity

// SessionState tracks where a session sits in the identity state machine:
// unauthenticated -> anonymous -> verified, or unauthenticated -> verified
// directly. An anonymous identity keeps its uid (and therefore its account
// record) when it is upgraded to verified.
type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAnonymous       SessionState = "anonymous"
	SessionVerified        SessionState = "verified"
)

// Session is the explicit per-session context object. It is the only holder
// of the local view of {identity, credits}; every credit-consuming operation
// goes through it. The delivery layer owns its lifecycle: created at
// bootstrap, torn down at sign-out or navigation away.
type Session struct {
	ID                      string // Opaque session key, distinct from the identity uid.
	State                   SessionState
	Identity                *Identity
	Credits                 int
	StarterCreditsAvailable bool
}

// NewSession returns an unauthenticated session context.
func NewSession(id string) *Session {
	return &Session{ID: id, State: SessionUnauthenticated}
}

// Verified reports whether the session holds a verified identity.
func (s *Session) Verified() bool {
	return s.State == SessionVerified && s.Identity.Verified()
}

// Attach installs a resolved identity and advances the session state.
func (s *Session) Attach(identity *Identity) {
	s.Identity = identity
	if identity == nil {
		s.State = SessionUnauthenticated

		return
	}
	if identity.Anonymous {
		s.State = SessionAnonymous

		return
	}
	s.State = SessionVerified
}

// Reset clears local state only; the remote account record persists.
func (s *Session) Reset() {
	s.State = SessionUnauthenticated
	s.Identity = nil
	s.Credits = 0
	s.StarterCreditsAvailable = false
}
