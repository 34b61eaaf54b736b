// Package storage defines the blob-store contract the pipeline consumes.
// Implementations are interchangeable; the pipeline only needs bytes in and
// bytes out, keyed by a content-derived id.
package storage

import "context"

// Metadata accompanies an upload.
type Metadata struct {
	Filename    string
	ContentType string
}

// StoredObject describes a persisted blob.
type StoredObject struct {
	ID   string // content-derived, stable across re-uploads
	Path string
	Size int
	Hash []byte // sha256 of the content
}

type Store interface {
	Upload(ctx context.Context, data []byte, meta Metadata) (StoredObject, error)
	Download(ctx context.Context, id string) ([]byte, error)
	GetMetadata(ctx context.Context, id string) (StoredObject, error)
}
