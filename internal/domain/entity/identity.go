package entity

import "regexp"

// Identity is the resolved principal behind a session, as reported by the
// authentication provider.
type Identity struct {
	UID         string // Stable opaque identifier; preserved across anonymous-to-verified upgrade.
	Email       string
	DisplayName string
	PhotoURL    string
	Anonymous   bool // True for a session-scoped identity created without interactive verification.
}

// Verified reports whether the identity has completed interactive verification.
func (i *Identity) Verified() bool {
	return i != nil && !i.Anonymous
}

// AuthFlow names the interactive verification strategy a client should use.
type AuthFlow string

const (
	// AuthFlowPopup is the in-page popup flow for desktop-class clients.
	AuthFlowPopup AuthFlow = "popup"
	// AuthFlowRedirect is the full-navigation flow for constrained clients;
	// it suspends the session across a page reload.
	AuthFlowRedirect AuthFlow = "redirect"
)

var constrainedClientPattern = regexp.MustCompile(`(?i)android|iphone|ipad|ipod|mobile|silk`)

// ClientProfile carries the client characteristics used to pick a
// verification strategy.
type ClientProfile struct {
	UserAgent string
}

// Constrained reports whether the client cannot host a popup flow and must
// use the redirect flow instead.
func (p *ClientProfile) Constrained() bool {
	if p == nil {
		return false
	}

	return constrainedClientPattern.MatchString(p.UserAgent)
}

// PreferredAuthFlow returns the verification strategy for this client.
func (p *ClientProfile) PreferredAuthFlow() AuthFlow {
	if p.Constrained() {
		return AuthFlowRedirect
	}

	return AuthFlowPopup
}
