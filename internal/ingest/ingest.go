// Package ingest accepts raw uploads, places the bytes in the blob store, and
// creates the document row the scheduler will later pick up.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/storage"
)

// UploadRequest carries one document upload.
type UploadRequest struct {
	OwnerID      uuid.UUID
	Filename     string
	DeclaredType constants.DocumentType
	Data         []byte
}

// UploadResult reports the created (or deduplicated) document.
type UploadResult struct {
	Document     entity.Document
	Deduplicated bool
}

// DirStats summarizes a directory intake run.
type DirStats struct {
	Scanned      int
	Matched      int
	Succeeded    int
	Deduplicated int
	Failed       int
}

type Service struct {
	store  storage.Store
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(store storage.Store, docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, docs: docs, logger: logger}
}

// Upload stores the bytes and creates a document in UPLOADED status. A repeat
// upload of the same content by the same owner returns the existing document.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(req.Filename))
	if ext == "" || !constants.IsAllowedExt(ext) {
		return UploadResult{}, fmt.Errorf("unsupported or missing extension: %q", ext)
	}
	if len(req.Data) == 0 {
		return UploadResult{}, fmt.Errorf("empty upload: %s", req.Filename)
	}

	obj, err := s.store.Upload(ctx, req.Data, storage.Metadata{Filename: req.Filename})
	if err != nil {
		return UploadResult{}, fmt.Errorf("store upload: %w", err)
	}

	if existing, err := s.docs.GetByOwnerAndHash(ctx, req.OwnerID, obj.Hash); err == nil {
		s.logger.Info("upload deduplicated", "owner_id", req.OwnerID, "document_id", existing.ID)
		return UploadResult{Document: *existing, Deduplicated: true}, nil
	}

	declared := req.DeclaredType
	if declared == "" {
		declared = constants.TypeUnknown
	}
	doc, err := s.docs.Create(ctx, repository.CreateDocumentRequest{
		OwnerID:      req.OwnerID,
		DeclaredType: declared,
		StoragePath:  obj.ID,
		ContentHash:  obj.Hash,
		Filename:     filepath.Base(req.Filename),
		FileExt:      ext,
		FileSize:     obj.Size,
		UploadedAt:   time.Now().UTC(),
	})
	if err != nil {
		return UploadResult{}, err
	}

	s.logger.Info("document uploaded",
		"owner_id", req.OwnerID, "document_id", doc.ID,
		"declared_type", declared, "size", obj.Size,
	)
	return UploadResult{Document: *doc}, nil
}

// UploadDirectory walks root and uploads every allowed file for one owner,
// fanning out over a bounded group. Per-file failures are counted, not fatal.
func (s *Service) UploadDirectory(ctx context.Context, ownerID uuid.UUID, root string, declared constants.DocumentType) (DirStats, error) {
	var paths []string
	stats := DirStats{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		stats.Scanned++
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if constants.IsAllowedExt(filepath.Ext(path)) {
			stats.Matched++
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk %s: %w", root, err)
	}

	type outcome struct {
		dedup bool
		err   error
	}
	outcomes := make([]outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return nil
			}
			res, err := s.Upload(gctx, UploadRequest{
				OwnerID:      ownerID,
				Filename:     path,
				DeclaredType: declared,
				Data:         data,
			})
			outcomes[i] = outcome{dedup: res.Deduplicated, err: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, o := range outcomes {
		switch {
		case o.err != nil:
			stats.Failed++
			s.logger.Error("directory upload failed", "path", paths[i], "error", o.err)
		case o.dedup:
			stats.Deduplicated++
		default:
			stats.Succeeded++
		}
	}
	s.logger.Info("directory intake completed",
		"root", root, "scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed,
	)
	return stats, nil
}
