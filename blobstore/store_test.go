package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Open(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ruspini.txt"), []byte("4\t53\t1\n"), 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	rc, err := store.Open(ctx, "ruspini.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "4\t53\t1\n", string(data))

	_, err = store.Open(ctx, "missing.txt")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore_AbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abs.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	rc, err := NewLocalStore("").Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}

func TestLocalStore_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalStore(t.TempDir()).Open(ctx, "any")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("1\t2\ta\n")
	require.NoError(t, store.Put(ctx, "sets/a.tsv", data))
	require.NoError(t, store.Put(ctx, "sets/b.tsv", []byte("3\t4\tb\n")))
	require.NoError(t, store.Put(ctx, "other.tsv", nil))

	// Mutating the caller's slice must not leak into the store.
	data[0] = '9'

	rc, err := store.Open(ctx, "sets/a.tsv")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "1\t2\ta\n", string(got))

	names, err := store.List(ctx, "sets/")
	require.NoError(t, err)
	assert.Equal(t, []string{"sets/a.tsv", "sets/b.tsv"}, names)

	_, err = store.Open(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
