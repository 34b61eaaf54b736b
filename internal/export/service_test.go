package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/repository"
)

type stubDocs struct {
	repository.DocumentRepository
	queue []entity.Document
}

func (s *stubDocs) ListByStatus(_ context.Context, status constants.DocumentStatus, _ int) ([]entity.Document, error) {
	if status != constants.DocumentManualReview {
		return nil, nil
	}
	return s.queue, nil
}

type stubRecords struct {
	repository.VerificationRepository
	current map[uuid.UUID]*entity.VerificationRecord
}

func (s *stubRecords) GetCurrent(_ context.Context, documentID uuid.UUID) (*entity.VerificationRecord, error) {
	rec, ok := s.current[documentID]
	if !ok {
		return nil, errors.New("not found")
	}
	return rec, nil
}

func TestReviewQueueXLSX(t *testing.T) {
	doc := entity.Document{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		DeclaredType: constants.TypeW2,
		Status:       constants.DocumentManualReview,
		Filename:     "w2.txt",
		UploadedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	records := &stubRecords{current: map[uuid.UUID]*entity.VerificationRecord{
		doc.ID: {
			ID:         uuid.New(),
			DocumentID: doc.ID,
			Status:     constants.VerificationManualReview,
			Score:      0.72,
			Checks: []entity.Check{
				{Name: "extraction_confidence", Passed: false, Confidence: 0.72},
				{Name: "field_validation", Passed: true, Confidence: 1.0},
			},
			Issues: []string{"extraction confidence 0.72 below review threshold 0.80"},
		},
	}}
	svc := NewService(&stubDocs{queue: []entity.Document{doc}}, records, nil)

	data, err := svc.ReviewQueueXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Review Queue"
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Document ID", header)

	id, _ := f.GetCellValue(sheet, "A2")
	assert.Equal(t, doc.ID.String(), id)
	docType, _ := f.GetCellValue(sheet, "C2")
	assert.Equal(t, "W2", docType)
	failing, _ := f.GetCellValue(sheet, "G2")
	assert.Equal(t, "extraction_confidence", failing)
	issues, _ := f.GetCellValue(sheet, "H2")
	assert.Contains(t, issues, "below review threshold")
}

func TestReviewQueueXLSX_EmptyQueueStillProducesWorkbook(t *testing.T) {
	svc := NewService(&stubDocs{}, &stubRecords{}, nil)
	data, err := svc.ReviewQueueXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue("Review Queue", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Document ID", header)
	rows, err := f.GetRows("Review Queue")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
