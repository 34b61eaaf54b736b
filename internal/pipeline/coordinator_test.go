package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/ocr"
	"github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/storage"
)

// fakeDocs records the status writes the coordinator makes. Methods the
// coordinator never calls are left on the embedded nil interface.
type fakeDocs struct {
	repository.DocumentRepository

	classified map[uuid.UUID]constants.DocumentType
	completed  map[uuid.UUID]constants.DocumentStatus
	retries    []retryCall
	rejections map[uuid.UUID]string
}

type retryCall struct {
	id          uuid.UUID
	retryCount  int
	nextRetryAt time.Time
	lastError   string
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{
		classified: make(map[uuid.UUID]constants.DocumentType),
		completed:  make(map[uuid.UUID]constants.DocumentStatus),
		rejections: make(map[uuid.UUID]string),
	}
}

func (f *fakeDocs) SetClassifiedType(_ context.Context, id uuid.UUID, t constants.DocumentType) error {
	f.classified[id] = t
	return nil
}

func (f *fakeDocs) MarkCompleted(_ context.Context, id uuid.UUID, status constants.DocumentStatus, _ time.Time) error {
	f.completed[id] = status
	return nil
}

func (f *fakeDocs) MarkForRetry(_ context.Context, id uuid.UUID, retryCount int, nextRetryAt time.Time, lastError string) error {
	f.retries = append(f.retries, retryCall{id, retryCount, nextRetryAt, lastError})
	return nil
}

func (f *fakeDocs) MarkRejected(_ context.Context, id uuid.UUID, lastError string) error {
	f.rejections[id] = lastError
	return nil
}

type fakeResults struct {
	repository.ExtractionResultRepository
	created []entity.ExtractionResult
}

func (f *fakeResults) Create(_ context.Context, res entity.ExtractionResult) (*entity.ExtractionResult, error) {
	res.ID = uuid.New()
	f.created = append(f.created, res)
	return &res, nil
}

type fakeRecords struct {
	repository.VerificationRepository
	created  []entity.VerificationRecord
	statuses map[uuid.UUID]constants.VerificationStatus
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{statuses: make(map[uuid.UUID]constants.VerificationStatus)}
}

func (f *fakeRecords) CreateCurrent(_ context.Context, rec entity.VerificationRecord) (*entity.VerificationRecord, error) {
	rec.ID = uuid.New()
	f.created = append(f.created, rec)
	f.statuses[rec.ID] = rec.Status
	return &rec, nil
}

func (f *fakeRecords) SetStatus(_ context.Context, id uuid.UUID, status constants.VerificationStatus, _ *time.Time) error {
	f.statuses[id] = status
	return nil
}

type memStore struct {
	blobs map[string][]byte
}

func (m *memStore) Upload(_ context.Context, data []byte, _ storage.Metadata) (storage.StoredObject, error) {
	return storage.StoredObject{}, errors.New("not used")
}

func (m *memStore) Download(_ context.Context, id string) ([]byte, error) {
	b, ok := m.blobs[id]
	if !ok {
		return nil, fmt.Errorf("no blob %s", id)
	}
	return b, nil
}

func (m *memStore) GetMetadata(_ context.Context, _ string) (storage.StoredObject, error) {
	return storage.StoredObject{}, errors.New("not used")
}

// scriptedEngine pops one result per call so multi-attempt scenarios can
// script failures followed by a success.
type scriptedEngine struct {
	script []func() (ocr.Result, error)
	calls  int
}

func (s *scriptedEngine) Extract(context.Context, []byte, constants.DocumentType) (ocr.Result, error) {
	i := s.calls
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.calls++
	return s.script[i]()
}

func conf(v float32) *float32 { return &v }

func testDoc(declared constants.DocumentType) entity.Document {
	return entity.Document{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		DeclaredType: declared,
		Status:       constants.DocumentProcessing,
		StoragePath:  "blob-1",
		Filename:     "w2.txt",
		UploadedAt:   time.Now().UTC(),
	}
}

func completedW2Result(fieldConf float32) ocr.Result {
	return ocr.Result{
		RawText:        "W-2 Wage and Tax Statement",
		ClassifiedType: constants.TypeW2,
		Status:         constants.ResultCompleted,
		Fields: []entity.ExtractedField{
			{Name: "employer_name", Value: "Acme Corp", DataType: constants.FieldText, Confidence: conf(fieldConf)},
			{Name: "employee_ssn", Value: "123-45-6789", DataType: constants.FieldIdentifier, Confidence: conf(fieldConf)},
			{Name: "wages", Value: "52000.00", DataType: constants.FieldCurrency, Confidence: conf(fieldConf)},
			{Name: "federal_tax_withheld", Value: "4800.00", DataType: constants.FieldCurrency, Confidence: conf(fieldConf)},
			{Name: "tax_year", Value: "2024", DataType: constants.FieldNumber, Confidence: conf(fieldConf)},
		},
	}
}

func newTestCoordinator(engine ocr.Engine, store storage.Store) (*Coordinator, *fakeDocs, *fakeResults, *fakeRecords) {
	docs := newFakeDocs()
	results := &fakeResults{}
	records := newFakeRecords()
	c := NewCoordinator(Config{}, docs, results, records, store, engine, nil)
	return c, docs, results, records
}

func TestProcess_AutoApproval(t *testing.T) {
	doc := testDoc(constants.TypeW2)
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("W-2 text")}}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return completedW2Result(0.95), nil },
	}}
	c, docs, results, records := newTestCoordinator(engine, store)

	require.NoError(t, c.Process(context.Background(), doc))

	assert.Equal(t, constants.DocumentApproved, docs.completed[doc.ID])
	assert.Empty(t, docs.retries)
	assert.Empty(t, docs.rejections)

	require.Len(t, results.created, 1)
	res := results.created[0]
	assert.Equal(t, constants.ResultCompleted, res.Status)
	assert.InDelta(t, 0.95, res.OverallConfidence, 0.001)
	assert.Empty(t, res.ValidationErrors)
	for _, f := range res.Fields {
		assert.False(t, f.RequiresValidation, f.Name)
	}

	// record created as AUTO_APPROVED, then promoted
	require.Len(t, records.created, 1)
	rec := records.created[0]
	assert.Equal(t, constants.VerificationAutoApproved, rec.Status)
	assert.True(t, rec.Current)
	assert.InDelta(t, 0.95, rec.Score, 0.001)
	require.NotNil(t, rec.ExpiresAt)
	assert.Equal(t, constants.VerificationApproved, records.statuses[rec.ID])
}

func TestProcess_LowConfidenceFieldRoutesToManualReview(t *testing.T) {
	doc := testDoc(constants.TypeW2)
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("W-2 text")}}

	res := completedW2Result(0.95)
	res.Fields[2].Confidence = conf(0.4) // wages barely readable
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return res, nil },
	}}
	c, docs, results, records := newTestCoordinator(engine, store)

	require.NoError(t, c.Process(context.Background(), doc))

	assert.Equal(t, constants.DocumentManualReview, docs.completed[doc.ID])

	require.Len(t, results.created, 1)
	saved := results.created[0]
	// mean of {0.95 x4, 0.4} = 0.84: completed, but below auto-approval
	assert.InDelta(t, 0.84, saved.OverallConfidence, 0.001)
	assert.Equal(t, constants.ResultCompleted, saved.Status)

	flagged := 0
	for _, f := range saved.Fields {
		if f.RequiresValidation {
			flagged++
			assert.Equal(t, "wages", f.Name)
		}
	}
	assert.Equal(t, 1, flagged)

	require.Len(t, records.created, 1)
	assert.Equal(t, constants.VerificationManualReview, records.created[0].Status)
}

func TestProcess_ValidationErrorForcesReview(t *testing.T) {
	doc := testDoc(constants.TypeW2)
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("W-2 text")}}

	res := completedW2Result(0.95)
	res.Fields[2].Value = "fifty-two grand"
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return res, nil },
	}}
	c, docs, results, _ := newTestCoordinator(engine, store)

	require.NoError(t, c.Process(context.Background(), doc))

	assert.Equal(t, constants.DocumentManualReview, docs.completed[doc.ID])
	require.Len(t, results.created, 1)
	assert.Equal(t, constants.ResultRequiresReview, results.created[0].Status)
	require.Len(t, results.created[0].ValidationErrors, 1)
	assert.Contains(t, results.created[0].ValidationErrors[0], "wages: ")
}

func TestProcess_UnknownTypeGetsClassified(t *testing.T) {
	doc := testDoc(constants.TypeUnknown)
	text := "W-2 Wage and Tax Statement\nwages, tips\nfederal income tax withheld"
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte(text)}}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return completedW2Result(0.95), nil },
	}}
	c, docs, _, records := newTestCoordinator(engine, store)

	require.NoError(t, c.Process(context.Background(), doc))

	assert.Equal(t, constants.TypeW2, docs.classified[doc.ID])
	// classifier confidence 0.95 clears the 0.85 gate, so auto-approval holds
	assert.Equal(t, constants.DocumentApproved, docs.completed[doc.ID])
	require.Len(t, records.created, 1)
}

func TestProcess_LowClassificationConfidenceBlocksAutoApproval(t *testing.T) {
	doc := testDoc(constants.TypeUnknown)
	// only the primary transcript keyword: confidence 0.70, below the 0.85 gate
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("transcript")}}
	res := completedW2Result(0.95)
	res.ClassifiedType = constants.TypeTranscript
	res.Fields = []entity.ExtractedField{
		{Name: "student_name", Value: "Jordan Lee", DataType: constants.FieldText, Confidence: conf(0.95)},
		{Name: "gpa", Value: "3.85", DataType: constants.FieldNumber, Confidence: conf(0.95)},
	}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return res, nil },
	}}
	c, docs, _, records := newTestCoordinator(engine, store)

	require.NoError(t, c.Process(context.Background(), doc))

	assert.Equal(t, constants.DocumentManualReview, docs.completed[doc.ID])
	require.Len(t, records.created, 1)
	assert.Equal(t, constants.VerificationManualReview, records.created[0].Status)
}

func TestProcess_TransientFailureSchedulesRetryWithBackoff(t *testing.T) {
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("W-2 text")}}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return ocr.Result{}, errors.New("vendor timeout") },
	}}
	c, docs, results, _ := newTestCoordinator(engine, store)

	// first attempt
	doc := testDoc(constants.TypeW2)
	before := time.Now().UTC()
	require.NoError(t, c.Process(context.Background(), doc))

	require.Len(t, docs.retries, 1)
	first := docs.retries[0]
	assert.Equal(t, 1, first.retryCount)
	assert.Contains(t, first.lastError, "vendor timeout")
	// 2^1 minutes
	assert.WithinDuration(t, before.Add(2*time.Minute), first.nextRetryAt, 5*time.Second)

	// second attempt carries the incremented count and doubles the backoff
	doc.RetryCount = 1
	require.NoError(t, c.Process(context.Background(), doc))
	require.Len(t, docs.retries, 2)
	second := docs.retries[1]
	assert.Equal(t, 2, second.retryCount)
	assert.WithinDuration(t, before.Add(4*time.Minute), second.nextRetryAt, 5*time.Second)

	// every failed attempt is recorded, append-only
	require.Len(t, results.created, 2)
	for _, r := range results.created {
		assert.Equal(t, constants.ResultFailed, r.Status)
		require.NotNil(t, r.ErrorMessage)
	}
	assert.Empty(t, docs.rejections)
}

func TestProcess_ExhaustedRetriesRejectTerminally(t *testing.T) {
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("W-2 text")}}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return ocr.Result{}, errors.New("vendor down") },
	}}
	c, docs, results, records := newTestCoordinator(engine, store)

	doc := testDoc(constants.TypeW2)
	doc.RetryCount = 2 // two failures already on record
	require.NoError(t, c.Process(context.Background(), doc))

	assert.Empty(t, docs.retries)
	assert.Contains(t, docs.rejections[doc.ID], "vendor down")
	require.Len(t, results.created, 1)
	assert.Equal(t, constants.ResultFailed, results.created[0].Status)
	assert.Empty(t, records.created, "no verification record for a rejected pipeline")
}

func TestProcess_SucceedsOnFinalAttempt(t *testing.T) {
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("W-2 text")}}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return completedW2Result(0.95), nil },
	}}
	c, docs, _, _ := newTestCoordinator(engine, store)

	doc := testDoc(constants.TypeW2)
	doc.RetryCount = 2
	require.NoError(t, c.Process(context.Background(), doc))

	assert.Equal(t, constants.DocumentApproved, docs.completed[doc.ID])
	assert.Empty(t, docs.rejections)
}

func TestProcess_EngineReportedFailureTakesRetryPath(t *testing.T) {
	store := &memStore{blobs: map[string][]byte{"blob-1": []byte("W-2 text")}}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) {
			return ocr.Result{Status: constants.ResultFailed, FailureReason: "unreadable scan"}, nil
		},
	}}
	c, docs, _, _ := newTestCoordinator(engine, store)

	doc := testDoc(constants.TypeW2)
	require.NoError(t, c.Process(context.Background(), doc))

	require.Len(t, docs.retries, 1)
	assert.Equal(t, "unreadable scan", docs.retries[0].lastError)
}

func TestProcess_MissingBlobTakesRetryPath(t *testing.T) {
	store := &memStore{blobs: map[string][]byte{}}
	engine := &scriptedEngine{script: []func() (ocr.Result, error){
		func() (ocr.Result, error) { return completedW2Result(0.95), nil },
	}}
	c, docs, _, _ := newTestCoordinator(engine, store)

	doc := testDoc(constants.TypeW2)
	require.NoError(t, c.Process(context.Background(), doc))

	require.Len(t, docs.retries, 1)
	assert.Contains(t, docs.retries[0].lastError, "download document bytes")
	assert.Equal(t, 0, engine.calls)
}
