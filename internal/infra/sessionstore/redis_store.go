package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"inador/internal/domain/entity"
	"inador/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	pendingActionKeyPrefix  = "session:pending:"
	redirectMarkerKeyPrefix = "session:redirect:"
)

// redisStore implements ActionStore on Redis. SET NX gives the atomic
// keep-first semantics for pending actions, GETDEL the atomic consume.
type redisStore struct {
	client            *redis.Client
	pendingActionTTL  time.Duration
	redirectMarkerTTL time.Duration
}

// NewRedisStore creates a Redis-backed ActionStore.
func NewRedisStore(client *redis.Client, pendingActionTTL, redirectMarkerTTL time.Duration) service.ActionStore {
	return &redisStore{
		client:            client,
		pendingActionTTL:  pendingActionTTL,
		redirectMarkerTTL: redirectMarkerTTL,
	}
}

// SavePendingAction stores at most one pending action for the session.
func (s *redisStore) SavePendingAction(ctx context.Context, sessionID string, action *entity.PendingAction, overwrite bool) error {
	data, err := json.Marshal(action)
	if err != nil {
		return errors.WithStack(err)
	}

	key := pendingActionKeyPrefix + sessionID
	if overwrite {
		if err := s.client.Set(ctx, key, data, s.pendingActionTTL).Err(); err != nil {
			return errors.Wrap(err, "failed to save pending action")
		}

		return nil
	}

	// SET NX keeps the first queued action when one is already held.
	if err := s.client.SetNX(ctx, key, data, s.pendingActionTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to save pending action")
	}

	return nil
}

// TakePendingAction atomically consumes and returns the stored action.
func (s *redisStore) TakePendingAction(ctx context.Context, sessionID string) (*entity.PendingAction, error) {
	data, err := s.client.GetDel(ctx, pendingActionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to take pending action")
	}

	var action entity.PendingAction
	if err := json.Unmarshal(data, &action); err != nil {
		return nil, errors.WithStack(err)
	}

	return &action, nil
}

// MarkRedirectInProgress records the redirect marker with its TTL.
func (s *redisStore) MarkRedirectInProgress(ctx context.Context, sessionID string) error {
	key := redirectMarkerKeyPrefix + sessionID
	if err := s.client.Set(ctx, key, "1", s.redirectMarkerTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to mark redirect in progress")
	}

	return nil
}

// RedirectInProgress reports whether a redirect flow is still pending.
func (s *redisStore) RedirectInProgress(ctx context.Context, sessionID string) (bool, error) {
	count, err := s.client.Exists(ctx, redirectMarkerKeyPrefix+sessionID).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check redirect marker")
	}

	return count > 0, nil
}

// ClearRedirectInProgress removes the marker once the redirect resolved.
func (s *redisStore) ClearRedirectInProgress(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redirectMarkerKeyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "failed to clear redirect marker")
	}

	return nil
}
