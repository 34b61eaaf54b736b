package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/common"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/repository"
)

type stubDocs struct {
	repository.DocumentRepository
	statuses map[uuid.UUID]constants.DocumentStatus
}

func newStubDocs() *stubDocs {
	return &stubDocs{statuses: make(map[uuid.UUID]constants.DocumentStatus)}
}

func (s *stubDocs) SetStatus(_ context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	s.statuses[id] = status
	return nil
}

type stubRecords struct {
	repository.VerificationRepository
	current map[uuid.UUID]*entity.VerificationRecord
	applied []repository.ReviewerUpdate
	overdue []uuid.UUID
}

func newStubRecords() *stubRecords {
	return &stubRecords{current: make(map[uuid.UUID]*entity.VerificationRecord)}
}

func (s *stubRecords) GetCurrent(_ context.Context, documentID uuid.UUID) (*entity.VerificationRecord, error) {
	rec, ok := s.current[documentID]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *rec
	return &cp, nil
}

func (s *stubRecords) ApplyReviewerDecision(_ context.Context, id uuid.UUID, upd repository.ReviewerUpdate) error {
	s.applied = append(s.applied, upd)
	for _, rec := range s.current {
		if rec.ID == id {
			rec.Status = upd.Status
		}
	}
	return nil
}

func (s *stubRecords) ExpireOverdue(_ context.Context, _ time.Time) ([]uuid.UUID, error) {
	return s.overdue, nil
}

func seedRecord(records *stubRecords, status constants.VerificationStatus) (uuid.UUID, *entity.VerificationRecord) {
	docID := uuid.New()
	rec := &entity.VerificationRecord{
		ID:         uuid.New(),
		DocumentID: docID,
		Status:     status,
		Current:    true,
	}
	records.current[docID] = rec
	return docID, rec
}

func TestSubmitDecision_Approve(t *testing.T) {
	docs := newStubDocs()
	records := newStubRecords()
	docID, _ := seedRecord(records, constants.VerificationManualReview)
	svc := NewService(docs, records, nil)

	reviewer := uuid.New()
	rec, err := svc.SubmitDecision(context.Background(), docID, Decision{
		Approve:    true,
		ReviewerID: reviewer,
		Notes:      "looks consistent with the 1040",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.VerificationApproved, rec.Status)
	assert.Equal(t, &reviewer, rec.ReviewerID)
	assert.NotNil(t, rec.VerifiedAt)
	assert.Equal(t, constants.DocumentApproved, docs.statuses[docID])
	require.Len(t, records.applied, 1)
	assert.Equal(t, constants.VerificationApproved, records.applied[0].Status)
}

func TestSubmitDecision_RejectRequiresReasonAndCorrections(t *testing.T) {
	docs := newStubDocs()
	records := newStubRecords()
	docID, _ := seedRecord(records, constants.VerificationManualReview)
	svc := NewService(docs, records, nil)

	_, err := svc.SubmitDecision(context.Background(), docID, Decision{
		Approve:    false,
		ReviewerID: uuid.New(),
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.SubmitDecision(context.Background(), docID, Decision{
		Approve:         false,
		ReviewerID:      uuid.New(),
		RejectionReason: "wages do not match the W-2",
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Empty(t, records.applied, "nothing may be persisted for an invalid decision")
}

func TestSubmitDecision_Reject(t *testing.T) {
	docs := newStubDocs()
	records := newStubRecords()
	docID, _ := seedRecord(records, constants.VerificationManualReview)
	svc := NewService(docs, records, nil)

	rec, err := svc.SubmitDecision(context.Background(), docID, Decision{
		Approve:         false,
		ReviewerID:      uuid.New(),
		RejectionReason: "illegible wage box",
		Corrections:     []string{"re-upload page 1 at higher resolution"},
	})
	require.NoError(t, err)

	assert.Equal(t, constants.VerificationRejected, rec.Status)
	assert.Equal(t, constants.DocumentRejected, docs.statuses[docID])
	require.Len(t, records.applied, 1)
	require.NotNil(t, records.applied[0].RejectionReason)
	assert.Equal(t, "illegible wage box", *records.applied[0].RejectionReason)
	assert.Equal(t, []string{"re-upload page 1 at higher resolution"}, records.applied[0].Corrections)
}

func TestSubmitDecision_MissingReviewer(t *testing.T) {
	svc := NewService(newStubDocs(), newStubRecords(), nil)
	_, err := svc.SubmitDecision(context.Background(), uuid.New(), Decision{Approve: true})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSubmitDecision_AlreadyDecidedIsAnExplicitError(t *testing.T) {
	docs := newStubDocs()
	records := newStubRecords()
	docID, _ := seedRecord(records, constants.VerificationRejected)
	svc := NewService(docs, records, nil)

	_, err := svc.SubmitDecision(context.Background(), docID, Decision{
		Approve:    true,
		ReviewerID: uuid.New(),
	})
	assert.ErrorIs(t, err, common.ErrInvalidTransition)
	assert.Empty(t, docs.statuses)
}

func TestExpireOverdue_MovesDocumentsToExpired(t *testing.T) {
	docs := newStubDocs()
	records := newStubRecords()
	a, b := uuid.New(), uuid.New()
	records.overdue = []uuid.UUID{a, b}
	svc := NewService(docs, records, nil)

	n, err := svc.ExpireOverdue(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, constants.DocumentExpired, docs.statuses[a])
	assert.Equal(t, constants.DocumentExpired, docs.statuses[b])
}
