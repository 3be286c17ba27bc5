package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("TOTAL 5.00"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("TOTAL 9.00"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.md"), []byte("ignore me"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	t.Run("lists pending transcripts in order", func(t *testing.T) {
		names, err := store.ListPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.txt"}, names)
	})

	t.Run("reads by name", func(t *testing.T) {
		text, err := store.Read(ctx, "a.txt")
		require.NoError(t, err)
		assert.Equal(t, "TOTAL 9.00", text)
	})

	t.Run("processed transcripts drop out of the listing", func(t *testing.T) {
		require.NoError(t, store.MarkProcessed(ctx, "a.txt"))

		names, err := store.ListPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"b.txt"}, names)

		_, err = os.Stat(filepath.Join(dir, "a.txt.done"))
		assert.NoError(t, err)
	})

	t.Run("missing transcript", func(t *testing.T) {
		_, err := store.Read(ctx, "nope.txt")
		assert.Error(t, err)
		assert.Error(t, store.MarkProcessed(ctx, "nope.txt"))
	})
}

func TestNewLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "drops")

	_, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
