package sessionstore

import (
	"context"
	"sync"
	"time"

	"inador/internal/domain/entity"
	"inador/internal/domain/service"
)

type pendingEntry struct {
	action    *entity.PendingAction
	expiresAt time.Time
}

// memoryStore implements ActionStore with a mutex-guarded map. Entries are
// lazily expired on access, which is enough for a single-process deployment.
type memoryStore struct {
	mu                sync.Mutex
	pending           map[string]pendingEntry
	redirects         map[string]time.Time
	pendingActionTTL  time.Duration
	redirectMarkerTTL time.Duration
	now               func() time.Time
}

// NewMemoryStore creates an in-memory ActionStore for single-process use.
func NewMemoryStore(pendingActionTTL, redirectMarkerTTL time.Duration) service.ActionStore {
	return &memoryStore{
		pending:           make(map[string]pendingEntry),
		redirects:         make(map[string]time.Time),
		pendingActionTTL:  pendingActionTTL,
		redirectMarkerTTL: redirectMarkerTTL,
		now:               time.Now,
	}
}

// SavePendingAction stores at most one pending action for the session.
func (s *memoryStore) SavePendingAction(_ context.Context, sessionID string, action *entity.PendingAction, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !overwrite {
		if entry, ok := s.pending[sessionID]; ok && s.now().Before(entry.expiresAt) {
			return nil
		}
	}

	copied := *action
	s.pending[sessionID] = pendingEntry{
		action:    &copied,
		expiresAt: s.now().Add(s.pendingActionTTL),
	}

	return nil
}

// TakePendingAction atomically consumes and returns the stored action.
func (s *memoryStore) TakePendingAction(_ context.Context, sessionID string) (*entity.PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[sessionID]
	if !ok {
		return nil, nil
	}
	delete(s.pending, sessionID)

	if s.now().After(entry.expiresAt) {
		return nil, nil
	}

	return entry.action, nil
}

// MarkRedirectInProgress records the redirect marker with its TTL.
func (s *memoryStore) MarkRedirectInProgress(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.redirects[sessionID] = s.now().Add(s.redirectMarkerTTL)

	return nil
}

// RedirectInProgress reports whether a redirect flow is still pending.
func (s *memoryStore) RedirectInProgress(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.redirects[sessionID]
	if !ok {
		return false, nil
	}

	if s.now().After(expiresAt) {
		delete(s.redirects, sessionID)

		return false, nil
	}

	return true, nil
}

// ClearRedirectInProgress removes the marker once the redirect resolved.
func (s *memoryStore) ClearRedirectInProgress(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.redirects, sessionID)

	return nil
}
