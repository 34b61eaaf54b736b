package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FSStore is a content-addressable blob store on the local filesystem:
// blobs live at <root>/<hash[:2]>/<hash>. The object id is the hex hash, so
// duplicate uploads land on the same blob.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &FSStore{root: root, logger: logger}, nil
}

func (s *FSStore) Upload(_ context.Context, data []byte, meta Metadata) (StoredObject, error) {
	if len(data) == 0 {
		return StoredObject{}, fmt.Errorf("empty upload: %s", meta.Filename)
	}
	sum := sha256.Sum256(data)
	id := hex.EncodeToString(sum[:])
	path := s.pathFor(id)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return StoredObject{}, fmt.Errorf("create blob dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return StoredObject{}, fmt.Errorf("write blob: %w", err)
		}
		s.logger.Info("blob stored", "id", id, "size", len(data), "filename", meta.Filename)
	} else {
		s.logger.Debug("blob already present", "id", id, "filename", meta.Filename)
	}

	return StoredObject{ID: id, Path: path, Size: len(data), Hash: sum[:]}, nil
}

func (s *FSStore) Download(_ context.Context, id string) ([]byte, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", id, err)
	}
	return data, nil
}

func (s *FSStore) GetMetadata(_ context.Context, id string) (StoredObject, error) {
	path := s.pathFor(id)
	info, err := os.Stat(path)
	if err != nil {
		return StoredObject{}, fmt.Errorf("stat blob %s: %w", id, err)
	}
	hash, err := hex.DecodeString(id)
	if err != nil {
		return StoredObject{}, fmt.Errorf("invalid blob id %s: %w", id, err)
	}
	return StoredObject{ID: id, Path: path, Size: int(info.Size()), Hash: hash}, nil
}

func (s *FSStore) pathFor(id string) string {
	prefix := id
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return filepath.Join(s.root, prefix, id)
}
