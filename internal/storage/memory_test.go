package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	_, ok, err := m.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.SetItem(ctx, "k", "v1"))
	require.NoError(t, m.SetItem(ctx, "k", "v2"))
	v, ok, err := m.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, m.SetItem(ctx, "a", "x"))
	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "k"}, keys)

	require.NoError(t, m.RemoveItem(ctx, "k"))
	_, ok, _ = m.GetItem(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, m.Clear(ctx))
	keys, _ = m.Keys(ctx)
	assert.Empty(t, keys)
}

func TestMemory_Quota(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10)

	require.NoError(t, m.SetItem(ctx, "key", "12345"))
	assert.ErrorIs(t, m.SetItem(ctx, "other", "1"), ErrQuotaExceeded)

	// Overwriting reuses the space of the previous value.
	require.NoError(t, m.SetItem(ctx, "key", "1234567"))
	assert.ErrorIs(t, m.SetItem(ctx, "key", "12345678"), ErrQuotaExceeded)

	v, _, _ := m.GetItem(ctx, "key")
	assert.Equal(t, "1234567", v)

	require.NoError(t, m.RemoveItem(ctx, "key"))
	require.NoError(t, m.SetItem(ctx, "other", "1"))
}
