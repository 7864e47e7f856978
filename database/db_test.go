package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Open())
	db1, err := store.DB()
	require.NoError(t, err)

	// Second open keeps the existing handle
	require.NoError(t, store.Open())
	db2, err := store.DB()
	require.NoError(t, err)
	assert.Same(t, db1, db2)
}

func TestDBOpensLazily(t *testing.T) {
	store := newTestStore(t)

	// No explicit Open: DB must connect on demand
	db, err := store.DB()
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestCloseResetsState(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Open())

	require.NoError(t, store.Close())
	// Closing an already closed store is a no-op
	require.NoError(t, store.Close())

	// A subsequent open must work again
	require.NoError(t, store.Open())
	db, err := store.DB()
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestOpenFailsOnUnusablePath(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing", "nested", "test.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := store.Open()
	assert.Error(t, err)
}
