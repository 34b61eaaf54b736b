package ingest

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/storage"
)

type memDocs struct {
	repository.DocumentRepository

	mu   sync.Mutex
	rows []entity.Document
}

func (m *memDocs) Create(_ context.Context, req repository.CreateDocumentRequest) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := entity.Document{
		ID:           uuid.New(),
		OwnerID:      req.OwnerID,
		DeclaredType: req.DeclaredType,
		Status:       constants.DocumentUploaded,
		StoragePath:  req.StoragePath,
		ContentHash:  req.ContentHash,
		Filename:     req.Filename,
		FileExt:      req.FileExt,
		FileSize:     req.FileSize,
		UploadedAt:   req.UploadedAt,
	}
	m.rows = append(m.rows, doc)
	return &doc, nil
}

func (m *memDocs) GetByOwnerAndHash(_ context.Context, ownerID uuid.UUID, hash []byte) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].OwnerID == ownerID && bytes.Equal(m.rows[i].ContentHash, hash) {
			cp := m.rows[i]
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func newTestService(t *testing.T) (*Service, *memDocs) {
	t.Helper()
	store, err := storage.NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	docs := &memDocs{}
	return NewService(store, docs, nil), docs
}

func TestUpload_CreatesUploadedDocument(t *testing.T) {
	svc, docs := newTestService(t)
	owner := uuid.New()

	res, err := svc.Upload(context.Background(), UploadRequest{
		OwnerID:      owner,
		Filename:     "2024-w2.txt",
		DeclaredType: constants.TypeW2,
		Data:         []byte("W-2 Wage and Tax Statement"),
	})
	require.NoError(t, err)

	assert.False(t, res.Deduplicated)
	assert.Equal(t, constants.DocumentUploaded, res.Document.Status)
	assert.Equal(t, constants.TypeW2, res.Document.DeclaredType)
	assert.Equal(t, "2024-w2.txt", res.Document.Filename)
	assert.Equal(t, "txt", res.Document.FileExt)
	assert.NotEmpty(t, res.Document.ContentHash)
	require.Len(t, docs.rows, 1)
}

func TestUpload_MissingDeclaredTypeDefaultsToUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	res, err := svc.Upload(context.Background(), UploadRequest{
		OwnerID:  uuid.New(),
		Filename: "scan.pdf",
		Data:     []byte("%PDF- something"),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.TypeUnknown, res.Document.DeclaredType)
}

func TestUpload_RejectsDisallowedExtension(t *testing.T) {
	svc, docs := newTestService(t)
	for _, name := range []string{"notes.docx", "archive.zip", "noextension"} {
		_, err := svc.Upload(context.Background(), UploadRequest{
			OwnerID:  uuid.New(),
			Filename: name,
			Data:     []byte("x"),
		})
		assert.Error(t, err, name)
	}
	assert.Empty(t, docs.rows)
}

func TestUpload_RejectsEmptyData(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Upload(context.Background(), UploadRequest{
		OwnerID:  uuid.New(),
		Filename: "w2.txt",
	})
	assert.Error(t, err)
}

func TestUpload_SameOwnerSameContentDeduplicates(t *testing.T) {
	svc, docs := newTestService(t)
	owner := uuid.New()
	req := UploadRequest{
		OwnerID:  owner,
		Filename: "w2.txt",
		Data:     []byte("identical bytes"),
	}

	first, err := svc.Upload(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.Document.ID, second.Document.ID)
	assert.Len(t, docs.rows, 1)
}

func TestUpload_DifferentOwnersSameContentAreDistinct(t *testing.T) {
	svc, docs := newTestService(t)
	data := []byte("shared tax form text")

	a, err := svc.Upload(context.Background(), UploadRequest{OwnerID: uuid.New(), Filename: "a.txt", Data: data})
	require.NoError(t, err)
	b, err := svc.Upload(context.Background(), UploadRequest{OwnerID: uuid.New(), Filename: "b.txt", Data: data})
	require.NoError(t, err)

	assert.False(t, b.Deduplicated)
	assert.NotEqual(t, a.Document.ID, b.Document.ID)
	assert.Len(t, docs.rows, 2)
}

func TestUploadDirectory_CountsOutcomes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "w2.txt"), []byte("W-2 statement"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stub.txt"), []byte("Pay stub"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dup.txt"), []byte("W-2 statement"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.docx"), []byte("word doc"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("hidden"), 0o644))

	svc, docs := newTestService(t)
	owner := uuid.New()

	// w2.txt and dup.txt share content already on file for this owner
	_, err := svc.Upload(context.Background(), UploadRequest{
		OwnerID:  owner,
		Filename: "earlier.txt",
		Data:     []byte("W-2 statement"),
	})
	require.NoError(t, err)

	stats, err := svc.UploadDirectory(context.Background(), owner, dir, constants.TypeUnknown)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Scanned)
	assert.Equal(t, 3, stats.Matched)
	assert.Equal(t, 1, stats.Succeeded)
	assert.Equal(t, 2, stats.Deduplicated)
	assert.Equal(t, 0, stats.Failed)
	assert.Len(t, docs.rows, 2)
}
