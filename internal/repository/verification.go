package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/gen/ent"
	entvr "github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/finaid-tools/docverifier/internal/entity"
)

// ReviewerUpdate carries a human decision applied to the current record.
type ReviewerUpdate struct {
	Status          constants.VerificationStatus
	ReviewerID      uuid.UUID
	Notes           *string
	RejectionReason *string
	Corrections     []string
	VerifiedAt      time.Time
}

type VerificationRepository interface {
	// CreateCurrent appends a new record and demotes any previous current one.
	// Prior records are retained as history, never mutated.
	CreateCurrent(ctx context.Context, rec entity.VerificationRecord) (*entity.VerificationRecord, error)
	GetCurrent(ctx context.Context, documentID uuid.UUID) (*entity.VerificationRecord, error)
	History(ctx context.Context, documentID uuid.UUID) ([]entity.VerificationRecord, error)
	// SetStatus records an automated transition on the current record.
	SetStatus(ctx context.Context, id uuid.UUID, status constants.VerificationStatus, verifiedAt *time.Time) error
	ApplyReviewerDecision(ctx context.Context, id uuid.UUID, upd ReviewerUpdate) error
	// ExpireOverdue marks every non-terminal record past its expiry as EXPIRED,
	// returning the affected document ids.
	ExpireOverdue(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type verificationRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewVerificationRepository(entc *ent.Client, logger *slog.Logger) VerificationRepository {
	return &verificationRepo{ent: entc, logger: logger}
}

func (r *verificationRepo) CreateCurrent(ctx context.Context, rec entity.VerificationRecord) (*entity.VerificationRecord, error) {
	// demote the previous current record; its contents stay untouched
	if _, err := r.ent.VerificationRecord.Update().
		Where(
			entvr.DocumentID(rec.DocumentID),
			entvr.Current(true),
		).
		SetCurrent(false).
		Save(ctx); err != nil {
		r.logger.Error("failed to demote previous verification record", "document_id", rec.DocumentID, "error", err)
		return nil, err
	}

	checks, err := json.Marshal(rec.Checks)
	if err != nil {
		return nil, err
	}
	issues, err := json.Marshal(rec.Issues)
	if err != nil {
		return nil, err
	}
	create := r.ent.VerificationRecord.Create().
		SetDocumentID(rec.DocumentID).
		SetStatus(string(rec.Status)).
		SetScore(rec.Score).
		SetChecks(checks).
		SetIssues(issues).
		SetCurrent(true).
		SetCreatedAt(rec.CreatedAt)
	if rec.VerifiedAt != nil {
		create = create.SetVerifiedAt(*rec.VerifiedAt)
	}
	if rec.ExpiresAt != nil {
		create = create.SetExpiresAt(*rec.ExpiresAt)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create verification record", "document_id", rec.DocumentID, "error", err)
		return nil, err
	}
	r.logger.Info("verification record created",
		"document_id", rec.DocumentID, "record_id", row.ID,
		"status", rec.Status, "score", rec.Score,
	)
	return recordToEntity(row)
}

func (r *verificationRepo) GetCurrent(ctx context.Context, documentID uuid.UUID) (*entity.VerificationRecord, error) {
	row, err := r.ent.VerificationRecord.Query().
		Where(
			entvr.DocumentID(documentID),
			entvr.Current(true),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return recordToEntity(row)
}

func (r *verificationRepo) History(ctx context.Context, documentID uuid.UUID) ([]entity.VerificationRecord, error) {
	rows, err := r.ent.VerificationRecord.Query().
		Where(entvr.DocumentID(documentID)).
		Order(ent.Asc(entvr.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.VerificationRecord, 0, len(rows))
	for _, row := range rows {
		e, err := recordToEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *verificationRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.VerificationStatus, verifiedAt *time.Time) error {
	upd := r.ent.VerificationRecord.UpdateOneID(id).
		SetStatus(string(status))
	if verifiedAt != nil {
		upd = upd.SetVerifiedAt(*verifiedAt)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to set verification status", "record_id", id, "status", status, "error", err)
		return err
	}
	return nil
}

func (r *verificationRepo) ApplyReviewerDecision(ctx context.Context, id uuid.UUID, upd ReviewerUpdate) error {
	q := r.ent.VerificationRecord.UpdateOneID(id).
		SetStatus(string(upd.Status)).
		SetReviewerID(upd.ReviewerID).
		SetVerifiedAt(upd.VerifiedAt)
	if upd.Notes != nil {
		q = q.SetReviewNotes(*upd.Notes)
	}
	if upd.RejectionReason != nil {
		q = q.SetRejectionReason(*upd.RejectionReason)
	}
	if upd.Corrections != nil {
		b, err := json.Marshal(upd.Corrections)
		if err != nil {
			return err
		}
		q = q.SetCorrections(b)
	}
	if _, err := q.Save(ctx); err != nil {
		r.logger.Error("failed to apply reviewer decision", "record_id", id, "status", upd.Status, "error", err)
		return err
	}
	r.logger.Info("reviewer decision recorded", "record_id", id, "status", upd.Status, "reviewer_id", upd.ReviewerID)
	return nil
}

func (r *verificationRepo) ExpireOverdue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	overdue := []string{
		string(constants.VerificationPending),
		string(constants.VerificationInProgress),
		string(constants.VerificationAutoApproved),
		string(constants.VerificationManualReview),
		string(constants.VerificationApproved),
	}
	rows, err := r.ent.VerificationRecord.Query().
		Where(
			entvr.StatusIn(overdue...),
			entvr.Current(true),
			entvr.ExpiresAtNotNil(),
			entvr.ExpiresAtLTE(now),
		).All(ctx)
	if err != nil {
		r.logger.Error("failed to query overdue verification records", "error", err)
		return nil, err
	}
	docIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if _, err := r.ent.VerificationRecord.UpdateOneID(row.ID).
			SetStatus(string(constants.VerificationExpired)).
			Save(ctx); err != nil {
			r.logger.Error("failed to expire verification record", "record_id", row.ID, "error", err)
			return docIDs, err
		}
		docIDs = append(docIDs, row.DocumentID)
	}
	if len(docIDs) > 0 {
		r.logger.Warn("verification records expired", "count", len(docIDs))
	}
	return docIDs, nil
}

func recordToEntity(row *ent.VerificationRecord) (*entity.VerificationRecord, error) {
	rec := &entity.VerificationRecord{
		ID:              row.ID,
		DocumentID:      row.DocumentID,
		Status:          constants.VerificationStatus(row.Status),
		Score:           row.Score,
		ReviewerID:      row.ReviewerID,
		ReviewNotes:     row.ReviewNotes,
		RejectionReason: row.RejectionReason,
		Current:         row.Current,
		CreatedAt:       row.CreatedAt,
		VerifiedAt:      row.VerifiedAt,
		ExpiresAt:       row.ExpiresAt,
	}
	if len(row.Checks) > 0 {
		if err := json.Unmarshal(row.Checks, &rec.Checks); err != nil {
			return nil, err
		}
	}
	if len(row.Issues) > 0 {
		if err := json.Unmarshal(row.Issues, &rec.Issues); err != nil {
			return nil, err
		}
	}
	if len(row.Corrections) > 0 {
		if err := json.Unmarshal(row.Corrections, &rec.Corrections); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
