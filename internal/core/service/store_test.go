package service

import (
	"testing"
	"time"

	"retoque/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	ms := NewMemoryStore(t.Context(), time.Hour)

	sess, err := ms.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, DefaultPrompt, sess.Prompt)
	assert.Equal(t, domain.PhaseIdle, sess.Phase)
	assert.Nil(t, sess.Source)
	assert.Nil(t, sess.Result)

	got, ok := ms.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = ms.Get("unknown")
	assert.False(t, ok)
}

func TestMemoryStore_UniqueIDs(t *testing.T) {
	ms := NewMemoryStore(t.Context(), time.Hour)

	a, err := ms.Create()
	require.NoError(t, err)
	b, err := ms.Create()
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemoryStore_ExpireSweepsIdleSessions(t *testing.T) {
	ms := NewMemoryStore(t.Context(), time.Minute)

	sess, err := ms.Create()
	require.NoError(t, err)

	ms.expire(time.Now().Add(30 * time.Second))
	_, ok := ms.Get(sess.ID)
	assert.True(t, ok, "sessions inside the TTL survive")

	ms.expire(time.Now().Add(2 * time.Minute))
	_, ok = ms.Get(sess.ID)
	assert.False(t, ok, "idle session should be swept")

	fresh, err := ms.Create()
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, fresh.ID)
	assert.Equal(t, domain.PhaseIdle, fresh.Phase)
}
