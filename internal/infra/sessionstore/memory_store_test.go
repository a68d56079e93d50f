package sessionstore

import (
	"context"
	"testing"
	"time"

	"inador/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(t *testing.T) (*memoryStore, *time.Time) {
	t.Helper()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, ok := NewMemoryStore(30*time.Minute, 5*time.Minute).(*memoryStore)
	require.True(t, ok)
	store.now = func() time.Time { return current }

	return store, &current
}

func TestMemoryStore_PendingActionConsumedOnce(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	action := &entity.PendingAction{Kind: entity.PendingActionInvoke, Target: "generate"}
	require.NoError(t, store.SavePendingAction(ctx, "sess-1", action, false))

	taken, err := store.TakePendingAction(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, taken)
	assert.Equal(t, "generate", taken.Target)

	// A second take returns nothing; the action is gone.
	taken, err = store.TakePendingAction(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, taken)
}

func TestMemoryStore_SaveKeepsFirstActionWithoutOverwrite(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	first := &entity.PendingAction{Kind: entity.PendingActionInvoke, Target: "generate"}
	second := &entity.PendingAction{Kind: entity.PendingActionNavigate, Target: "/pricing"}

	require.NoError(t, store.SavePendingAction(ctx, "sess-1", first, false))
	require.NoError(t, store.SavePendingAction(ctx, "sess-1", second, false))

	taken, err := store.TakePendingAction(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, taken)
	assert.Equal(t, "generate", taken.Target)
}

func TestMemoryStore_SaveOverwriteReplacesAction(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	first := &entity.PendingAction{Kind: entity.PendingActionInvoke, Target: "generate"}
	second := &entity.PendingAction{Kind: entity.PendingActionNavigate, Target: "/pricing"}

	require.NoError(t, store.SavePendingAction(ctx, "sess-1", first, false))
	require.NoError(t, store.SavePendingAction(ctx, "sess-1", second, true))

	taken, err := store.TakePendingAction(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, taken)
	assert.Equal(t, "/pricing", taken.Target)
}

func TestMemoryStore_ExpiredActionNotReturned(t *testing.T) {
	store, current := newTestMemoryStore(t)
	ctx := context.Background()

	action := &entity.PendingAction{Kind: entity.PendingActionInvoke, Target: "generate"}
	require.NoError(t, store.SavePendingAction(ctx, "sess-1", action, false))

	*current = current.Add(31 * time.Minute)

	taken, err := store.TakePendingAction(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, taken)
}

func TestMemoryStore_RedirectMarkerLifecycle(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	inProgress, err := store.RedirectInProgress(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, inProgress)

	require.NoError(t, store.MarkRedirectInProgress(ctx, "sess-1"))

	inProgress, err = store.RedirectInProgress(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, inProgress)

	require.NoError(t, store.ClearRedirectInProgress(ctx, "sess-1"))

	inProgress, err = store.RedirectInProgress(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, inProgress)
}

func TestMemoryStore_RedirectMarkerExpires(t *testing.T) {
	store, current := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.MarkRedirectInProgress(ctx, "sess-1"))

	*current = current.Add(6 * time.Minute)

	inProgress, err := store.RedirectInProgress(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, inProgress)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	action := &entity.PendingAction{Kind: entity.PendingActionInvoke, Target: "generate"}
	require.NoError(t, store.SavePendingAction(ctx, "sess-1", action, false))

	taken, err := store.TakePendingAction(ctx, "sess-2")
	require.NoError(t, err)
	assert.Nil(t, taken)
}
