package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserStorage_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewBrowserStorage()
	defer store.Stop()
	first, second := uuid.New(), uuid.New()

	require.NoError(t, store.SetItem(ctx, first, "filters", `{"region_ids":[1]}`))

	value, found, err := store.GetItem(ctx, first, "filters")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"region_ids":[1]}`, value)

	_, found, err = store.GetItem(ctx, second, "filters")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBrowserStorage_RemoveItem(t *testing.T) {
	ctx := context.Background()
	store := NewBrowserStorage()
	defer store.Stop()
	sid := uuid.New()

	require.NoError(t, store.SetItem(ctx, sid, "addAgentForm", "{}"))
	require.NoError(t, store.SetItem(ctx, sid, "addAgentForm", `{"name":"Nino"}`))
	require.NoError(t, store.RemoveItem(ctx, sid, "addAgentForm"))
	require.NoError(t, store.RemoveItem(ctx, sid, "missing"))
	require.NoError(t, store.RemoveItem(ctx, uuid.New(), "addAgentForm"))

	_, found, err := store.GetItem(ctx, sid, "addAgentForm")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBrowserStorage_IdleSessionExpires(t *testing.T) {
	ctx := context.Background()
	store := NewBrowserStorage(WithSessionTTL(-time.Second))
	defer store.Stop()
	sid := uuid.New()

	require.NoError(t, store.SetItem(ctx, sid, "filters", `{"minPrice":1}`))

	_, found, err := store.GetItem(ctx, sid, "filters")
	require.NoError(t, err)
	assert.False(t, found, "expired session must not be served")

	// запись в истекшую сессию начинает ее заново
	require.NoError(t, store.RemoveItem(ctx, sid, "filters"))
	store.ttl = time.Minute
	require.NoError(t, store.SetItem(ctx, sid, "addAgentForm", "{}"))
	value, found, err := store.GetItem(ctx, sid, "addAgentForm")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", value)
}

func TestBrowserStorage_AccessKeepsSessionAlive(t *testing.T) {
	ctx := context.Background()
	store := NewBrowserStorage(WithSessionTTL(time.Hour), WithMaxSessions(100))
	defer store.Stop()
	sid := uuid.New()

	require.NoError(t, store.SetItem(ctx, sid, "filters", "{}"))
	before := store.sessions.Get(sid.String()).Expires()

	time.Sleep(5 * time.Millisecond)
	_, found, err := store.GetItem(ctx, sid, "filters")
	require.NoError(t, err)
	require.True(t, found)

	assert.True(t, store.sessions.Get(sid.String()).Expires().After(before))
}
