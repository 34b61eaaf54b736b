package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_UploadDownloadRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	data := []byte("Pay stub\nGross pay: 2100.00")
	obj, err := store.Upload(context.Background(), data, Metadata{Filename: "stub.txt"})
	require.NoError(t, err)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), obj.ID)
	assert.Equal(t, sum[:], obj.Hash)
	assert.Equal(t, len(data), obj.Size)

	got, err := store.Download(context.Background(), obj.ID)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFSStore_DuplicateContentSharesOneBlob(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	data := []byte("same bytes")
	first, err := store.Upload(context.Background(), data, Metadata{Filename: "a.txt"})
	require.NoError(t, err)
	second, err := store.Upload(context.Background(), data, Metadata{Filename: "b.txt"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Path, second.Path)
}

func TestFSStore_EmptyUploadRejected(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), nil, Metadata{Filename: "empty.txt"})
	assert.Error(t, err)
}

func TestFSStore_DownloadMissingBlob(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.Download(context.Background(), "deadbeef")
	assert.Error(t, err)
}

func TestFSStore_GetMetadata(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	data := []byte("metadata check")
	obj, err := store.Upload(context.Background(), data, Metadata{Filename: "m.txt"})
	require.NoError(t, err)

	meta, err := store.GetMetadata(context.Background(), obj.ID)
	require.NoError(t, err)
	assert.Equal(t, obj.ID, meta.ID)
	assert.Equal(t, obj.Size, meta.Size)
	assert.Equal(t, obj.Hash, meta.Hash)
}
