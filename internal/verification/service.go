package verification

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/common"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/repository"
)

// Decision is a human reviewer action on a document awaiting manual review.
type Decision struct {
	Approve         bool
	ReviewerID      uuid.UUID
	Notes           string
	RejectionReason string   // required on reject
	Corrections     []string // required on reject
}

// Service applies reviewer decisions and time-based expiry to verification
// records, keeping the document status in step.
type Service struct {
	docs    repository.DocumentRepository
	records repository.VerificationRepository
	logger  *slog.Logger
}

func NewService(docs repository.DocumentRepository, records repository.VerificationRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, records: records, logger: logger}
}

// SubmitDecision validates and applies a reviewer decision. Illegal
// transitions (e.g. deciding an already-approved document) surface as
// ErrInvalidTransition, never as a silent no-op.
func (s *Service) SubmitDecision(ctx context.Context, documentID uuid.UUID, dec Decision) (*entity.VerificationRecord, error) {
	if dec.ReviewerID == uuid.Nil {
		return nil, common.NewAppError("REVIEW_ERROR", "reviewer id is required", common.ErrInvalidInput)
	}
	if !dec.Approve {
		if strings.TrimSpace(dec.RejectionReason) == "" {
			return nil, common.NewAppError("REVIEW_ERROR", "rejection reason is required", common.ErrInvalidInput)
		}
		if len(dec.Corrections) == 0 {
			return nil, common.NewAppError("REVIEW_ERROR", "at least one required correction must be listed", common.ErrInvalidInput)
		}
	}

	rec, err := s.records.GetCurrent(ctx, documentID)
	if err != nil {
		return nil, common.WrapError(err, "load current verification record")
	}

	event := EventReviewerReject
	docStatus := constants.DocumentRejected
	if dec.Approve {
		event = EventReviewerApprove
		docStatus = constants.DocumentApproved
	}
	next, err := Transition(rec.Status, event)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	upd := repository.ReviewerUpdate{
		Status:     next,
		ReviewerID: dec.ReviewerID,
		VerifiedAt: now,
	}
	if dec.Notes != "" {
		upd.Notes = &dec.Notes
	}
	if !dec.Approve {
		upd.RejectionReason = &dec.RejectionReason
		upd.Corrections = dec.Corrections
	}
	if err := s.records.ApplyReviewerDecision(ctx, rec.ID, upd); err != nil {
		return nil, err
	}
	if err := s.docs.SetStatus(ctx, documentID, docStatus); err != nil {
		return nil, err
	}

	s.logger.Info("reviewer decision applied",
		"document_id", documentID, "record_id", rec.ID,
		"approved", dec.Approve, "reviewer_id", dec.ReviewerID,
	)
	rec.Status = next
	rec.ReviewerID = &dec.ReviewerID
	rec.VerifiedAt = &now
	return rec, nil
}

// ExpireOverdue sweeps records past their expiry timestamp and moves the
// owning documents to EXPIRED. Terminal rejections are untouched.
func (s *Service) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	docIDs, err := s.records.ExpireOverdue(ctx, now)
	if err != nil && len(docIDs) == 0 {
		return 0, err
	}
	for _, id := range docIDs {
		if serr := s.docs.SetStatus(ctx, id, constants.DocumentExpired); serr != nil {
			err = errors.Join(err, serr)
		}
	}
	return len(docIDs), err
}
