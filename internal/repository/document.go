package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/gen/ent"
	entdoc "github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/internal/entity"
)

// CreateDocumentRequest carries the fields set at upload time.
type CreateDocumentRequest struct {
	OwnerID      uuid.UUID
	DeclaredType constants.DocumentType
	StoragePath  string
	ContentHash  []byte
	Filename     string
	FileExt      string
	FileSize     int
	UploadedAt   time.Time
}

type DocumentRepository interface {
	Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte) (*entity.Document, error)
	ListByStatus(ctx context.Context, status constants.DocumentStatus, limit int) ([]entity.Document, error)

	// ListClaimable returns UPLOADED documents whose next_retry_at is unset or
	// has elapsed, oldest upload first.
	ListClaimable(ctx context.Context, now time.Time, limit int) ([]entity.Document, error)
	// Claim is the single concurrency-control point: a conditional write that
	// sets the job token only if the document is still unclaimed. Returns false
	// (no error) when another process won the race.
	Claim(ctx context.Context, id, token uuid.UUID, now time.Time) (bool, error)
	// ReleaseStale frees claims whose processing started before the cutoff,
	// returning them to UPLOADED for re-dispatch.
	ReleaseStale(ctx context.Context, cutoff time.Time) (int, error)

	SetClassifiedType(ctx context.Context, id uuid.UUID, t constants.DocumentType) error
	MarkCompleted(ctx context.Context, id uuid.UUID, status constants.DocumentStatus, completedAt time.Time) error
	MarkForRetry(ctx context.Context, id uuid.UUID, retryCount int, nextRetryAt time.Time, lastError string) error
	MarkRejected(ctx context.Context, id uuid.UUID, lastError string) error
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetOwnerID(req.OwnerID).
		SetDeclaredType(string(req.DeclaredType)).
		SetStatus(string(constants.DocumentUploaded)).
		SetStoragePath(req.StoragePath).
		SetContentHash(req.ContentHash).
		SetFilename(req.Filename).
		SetFileExt(req.FileExt).
		SetFileSize(req.FileSize).
		SetUploadedAt(req.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "owner_id", req.OwnerID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return docToEntity(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return docToEntity(row), nil
}

func (r *documentRepo) GetByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte) (*entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.OwnerID(ownerID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return docToEntity(row), nil
}

func (r *documentRepo) ListByStatus(ctx context.Context, status constants.DocumentStatus, limit int) ([]entity.Document, error) {
	q := r.ent.Document.Query().
		Where(entdoc.Status(string(status))).
		Order(ent.Asc(entdoc.FieldUploadedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents by status", "status", status, "error", err)
		return nil, err
	}
	return docsToEntities(rows), nil
}

func (r *documentRepo) ListClaimable(ctx context.Context, now time.Time, limit int) ([]entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(
			entdoc.Status(string(constants.DocumentUploaded)),
			entdoc.JobTokenIsNil(),
			entdoc.Or(
				entdoc.NextRetryAtIsNil(),
				entdoc.NextRetryAtLTE(now),
			),
		).
		Order(ent.Asc(entdoc.FieldUploadedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list claimable documents", "error", err)
		return nil, err
	}
	return docsToEntities(rows), nil
}

func (r *documentRepo) Claim(ctx context.Context, id, token uuid.UUID, now time.Time) (bool, error) {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.Status(string(constants.DocumentUploaded)),
			entdoc.JobTokenIsNil(),
		).
		SetJobToken(token).
		SetStatus(string(constants.DocumentProcessing)).
		SetProcessingStartedAt(now).
		ClearProcessingCompletedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("claim write failed", "document_id", id, "error", err)
		return false, err
	}
	return n == 1, nil
}

func (r *documentRepo) ReleaseStale(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.Status(string(constants.DocumentProcessing)),
			entdoc.ProcessingStartedAtLT(cutoff),
		).
		ClearJobToken().
		ClearProcessingStartedAt().
		SetStatus(string(constants.DocumentUploaded)).
		Save(ctx)
	if err != nil {
		r.logger.Error("stale claim sweep failed", "error", err)
		return 0, err
	}
	if n > 0 {
		r.logger.Warn("released stale claims", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

func (r *documentRepo) SetClassifiedType(ctx context.Context, id uuid.UUID, t constants.DocumentType) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetDeclaredType(string(t)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set classified type", "document_id", id, "type", t, "error", err)
	}
	return err
}

func (r *documentRepo) MarkCompleted(ctx context.Context, id uuid.UUID, status constants.DocumentStatus, completedAt time.Time) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetStatus(string(status)).
		SetProcessingCompletedAt(completedAt).
		ClearJobToken().
		ClearLastError().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document completed", "document_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("document processing completed", "document_id", id, "status", status)
	return nil
}

func (r *documentRepo) MarkForRetry(ctx context.Context, id uuid.UUID, retryCount int, nextRetryAt time.Time, lastError string) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetStatus(string(constants.DocumentUploaded)).
		SetRetryCount(retryCount).
		SetNextRetryAt(nextRetryAt).
		SetLastError(lastError).
		ClearJobToken().
		ClearProcessingStartedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document for retry", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document scheduled for retry", "document_id", id, "retry_count", retryCount, "next_retry_at", nextRetryAt)
	return nil
}

func (r *documentRepo) MarkRejected(ctx context.Context, id uuid.UUID, lastError string) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetStatus(string(constants.DocumentRejected)).
		SetLastError(lastError).
		SetProcessingCompletedAt(time.Now().UTC()).
		ClearJobToken().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document rejected", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document rejected", "document_id", id, "last_error", lastError)
	return nil
}

func (r *documentRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set document status", "document_id", id, "status", status, "error", err)
	}
	return err
}

func docToEntity(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                    row.ID,
		OwnerID:               row.OwnerID,
		DeclaredType:          constants.DocumentType(row.DeclaredType),
		Status:                constants.DocumentStatus(row.Status),
		StoragePath:           row.StoragePath,
		ContentHash:           row.ContentHash,
		Filename:              row.Filename,
		FileExt:               row.FileExt,
		FileSize:              row.FileSize,
		UploadedAt:            row.UploadedAt,
		JobToken:              row.JobToken,
		RetryCount:            row.RetryCount,
		NextRetryAt:           row.NextRetryAt,
		ProcessingStartedAt:   row.ProcessingStartedAt,
		ProcessingCompletedAt: row.ProcessingCompletedAt,
		LastError:             row.LastError,
	}
}

func docsToEntities(rows []*ent.Document) []entity.Document {
	out := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, *docToEntity(row))
	}
	return out
}
