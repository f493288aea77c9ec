package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackendRoundTrip(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	_, ok, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set(ctx, "k", []byte("v1")))
	value, ok, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), value)

	// Overwrite
	require.NoError(t, b.Set(ctx, "k", []byte("v2")))
	value, _, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
}

func TestMemoryBackendReturnsCopies(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	original := []byte("data")
	require.NoError(t, b.Set(ctx, "k", original))
	original[0] = 'X'

	value, _, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), value)

	value[0] = 'Y'
	again, _, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), again)
}

func TestBoltBackendRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	b, err := NewBoltBackend(dbPath)
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()

	_, ok, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set(ctx, "k", []byte("hello")))
	value, ok, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), value)
}

func TestBoltBackendPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	b, err := NewBoltBackend(dbPath)
	require.NoError(t, err)
	require.NoError(t, b.Set(ctx, "k", []byte("durable")))
	require.NoError(t, b.Close())

	reopened, err := NewBoltBackend(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("durable"), value)
}

func TestBoltBackendCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	b, err := NewBoltBackend(dbPath)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Set(context.Background(), "k", []byte("v")))
}
