package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrun/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_AppendOrderAndLimit(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddItems("s1",
		core.NewUserMessageItem("one"),
		core.NewAssistantMessageItem("A", "two"),
	))
	require.NoError(t, store.AddItems("s1", core.NewUserMessageItem("three")))

	all, err := store.Items("s1", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "one", all[0].(core.UserMessageItem).Content)
	assert.Equal(t, "two", all[1].(core.AssistantMessageItem).Content)
	assert.Equal(t, "three", all[2].(core.UserMessageItem).Content)

	tail, err := store.Items("s1", 2)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, "two", tail[0].(core.AssistantMessageItem).Content)
}

func TestStore_PopItem(t *testing.T) {
	store := newTestStore(t)

	popped, err := store.PopItem("empty")
	require.NoError(t, err)
	assert.Nil(t, popped)

	require.NoError(t, store.AddItems("s1",
		core.NewUserMessageItem("keep"),
		core.NewUserMessageItem("pop"),
	))

	popped, err = store.PopItem("s1")
	require.NoError(t, err)
	assert.Equal(t, "pop", popped.(core.UserMessageItem).Content)

	items, err := store.Items("s1", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddItems("s1", core.NewUserMessageItem("x")))

	require.NoError(t, store.Clear("s1"))

	items, err := store.Items("s1", 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Subsequent appends start a fresh sequence.
	require.NoError(t, store.AddItems("s1", core.NewUserMessageItem("fresh")))
	items, err = store.Items("s1", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddItems("a", core.NewUserMessageItem("for a")))
	require.NoError(t, store.AddItems("b", core.NewUserMessageItem("for b")))

	itemsB, err := store.Items("b", 0)
	require.NoError(t, err)
	require.Len(t, itemsB, 1)
	assert.Equal(t, "for b", itemsB[0].(core.UserMessageItem).Content)
}
