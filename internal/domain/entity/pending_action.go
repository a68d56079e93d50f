package entity

// PendingActionKind tags the variant of a deferred user action.
type PendingActionKind string

const (
	// PendingActionInvoke replays a click on a named control.
	PendingActionInvoke PendingActionKind = "invoke"
	// PendingActionNavigate replays a navigation to a location.
	PendingActionNavigate PendingActionKind = "navigate"
)

// PendingAction is the single action a user attempted before being forced
// through identity verification. At most one is held per session; it is
// consumed exactly once after verification succeeds.
type PendingAction struct {
	Kind   PendingActionKind `json:"kind"`
	Target string            `json:"target"` // Control id for invoke, location for navigate.
}

// Valid reports whether the action carries a usable variant and target.
func (a *PendingAction) Valid() bool {
	if a == nil || a.Target == "" {
		return false
	}

	return a.Kind == PendingActionInvoke || a.Kind == PendingActionNavigate
}
