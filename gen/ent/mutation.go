// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/finaid-tools/docverifier/gen/ent/predicate"
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument           = "Document"
	TypeExtractionResult   = "ExtractionResult"
	TypeVerificationRecord = "VerificationRecord"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	owner_id                *uuid.UUID
	declared_type           *string
	status                  *string
	storage_path            *string
	content_hash            *[]byte
	filename                *string
	file_ext                *string
	file_size               *int
	addfile_size            *int
	uploaded_at             *time.Time
	job_token               *uuid.UUID
	retry_count             *int
	addretry_count          *int
	next_retry_at           *time.Time
	processing_started_at   *time.Time
	processing_completed_at *time.Time
	last_error              *string
	clearedFields           map[string]struct{}
	results                 map[uuid.UUID]struct{}
	removedresults          map[uuid.UUID]struct{}
	clearedresults          bool
	verifications           map[uuid.UUID]struct{}
	removedverifications    map[uuid.UUID]struct{}
	clearedverifications    bool
	done                    bool
	oldValue                func(context.Context) (*Document, error)
	predicates              []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *DocumentMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *DocumentMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *DocumentMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetDeclaredType sets the "declared_type" field.
func (m *DocumentMutation) SetDeclaredType(s string) {
	m.declared_type = &s
}

// DeclaredType returns the value of the "declared_type" field in the mutation.
func (m *DocumentMutation) DeclaredType() (r string, exists bool) {
	v := m.declared_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclaredType returns the old "declared_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDeclaredType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclaredType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclaredType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclaredType: %w", err)
	}
	return oldValue.DeclaredType, nil
}

// ResetDeclaredType resets all changes to the "declared_type" field.
func (m *DocumentMutation) ResetDeclaredType() {
	m.declared_type = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetJobToken sets the "job_token" field.
func (m *DocumentMutation) SetJobToken(u uuid.UUID) {
	m.job_token = &u
}

// JobToken returns the value of the "job_token" field in the mutation.
func (m *DocumentMutation) JobToken() (r uuid.UUID, exists bool) {
	v := m.job_token
	if v == nil {
		return
	}
	return *v, true
}

// OldJobToken returns the old "job_token" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldJobToken(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobToken: %w", err)
	}
	return oldValue.JobToken, nil
}

// ClearJobToken clears the value of the "job_token" field.
func (m *DocumentMutation) ClearJobToken() {
	m.job_token = nil
	m.clearedFields[document.FieldJobToken] = struct{}{}
}

// JobTokenCleared returns if the "job_token" field was cleared in this mutation.
func (m *DocumentMutation) JobTokenCleared() bool {
	_, ok := m.clearedFields[document.FieldJobToken]
	return ok
}

// ResetJobToken resets all changes to the "job_token" field.
func (m *DocumentMutation) ResetJobToken() {
	m.job_token = nil
	delete(m.clearedFields, document.FieldJobToken)
}

// SetRetryCount sets the "retry_count" field.
func (m *DocumentMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DocumentMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DocumentMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DocumentMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DocumentMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *DocumentMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *DocumentMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *DocumentMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[document.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *DocumentMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[document.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *DocumentMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, document.FieldNextRetryAt)
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (m *DocumentMutation) SetProcessingStartedAt(t time.Time) {
	m.processing_started_at = &t
}

// ProcessingStartedAt returns the value of the "processing_started_at" field in the mutation.
func (m *DocumentMutation) ProcessingStartedAt() (r time.Time, exists bool) {
	v := m.processing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStartedAt returns the old "processing_started_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStartedAt: %w", err)
	}
	return oldValue.ProcessingStartedAt, nil
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (m *DocumentMutation) ClearProcessingStartedAt() {
	m.processing_started_at = nil
	m.clearedFields[document.FieldProcessingStartedAt] = struct{}{}
}

// ProcessingStartedAtCleared returns if the "processing_started_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingStartedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingStartedAt]
	return ok
}

// ResetProcessingStartedAt resets all changes to the "processing_started_at" field.
func (m *DocumentMutation) ResetProcessingStartedAt() {
	m.processing_started_at = nil
	delete(m.clearedFields, document.FieldProcessingStartedAt)
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (m *DocumentMutation) SetProcessingCompletedAt(t time.Time) {
	m.processing_completed_at = &t
}

// ProcessingCompletedAt returns the value of the "processing_completed_at" field in the mutation.
func (m *DocumentMutation) ProcessingCompletedAt() (r time.Time, exists bool) {
	v := m.processing_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingCompletedAt returns the old "processing_completed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingCompletedAt: %w", err)
	}
	return oldValue.ProcessingCompletedAt, nil
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (m *DocumentMutation) ClearProcessingCompletedAt() {
	m.processing_completed_at = nil
	m.clearedFields[document.FieldProcessingCompletedAt] = struct{}{}
}

// ProcessingCompletedAtCleared returns if the "processing_completed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingCompletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingCompletedAt]
	return ok
}

// ResetProcessingCompletedAt resets all changes to the "processing_completed_at" field.
func (m *DocumentMutation) ResetProcessingCompletedAt() {
	m.processing_completed_at = nil
	delete(m.clearedFields, document.FieldProcessingCompletedAt)
}

// SetLastError sets the "last_error" field.
func (m *DocumentMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *DocumentMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *DocumentMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[document.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *DocumentMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *DocumentMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, document.FieldLastError)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *DocumentMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *DocumentMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *DocumentMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *DocumentMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *DocumentMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *DocumentMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *DocumentMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by ids.
func (m *DocumentMutation) AddVerificationIDs(ids ...uuid.UUID) {
	if m.verifications == nil {
		m.verifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.verifications[ids[i]] = struct{}{}
	}
}

// ClearVerifications clears the "verifications" edge to the VerificationRecord entity.
func (m *DocumentMutation) ClearVerifications() {
	m.clearedverifications = true
}

// VerificationsCleared reports if the "verifications" edge to the VerificationRecord entity was cleared.
func (m *DocumentMutation) VerificationsCleared() bool {
	return m.clearedverifications
}

// RemoveVerificationIDs removes the "verifications" edge to the VerificationRecord entity by IDs.
func (m *DocumentMutation) RemoveVerificationIDs(ids ...uuid.UUID) {
	if m.removedverifications == nil {
		m.removedverifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.verifications, ids[i])
		m.removedverifications[ids[i]] = struct{}{}
	}
}

// RemovedVerifications returns the removed IDs of the "verifications" edge to the VerificationRecord entity.
func (m *DocumentMutation) RemovedVerificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedverifications {
		ids = append(ids, id)
	}
	return
}

// VerificationsIDs returns the "verifications" edge IDs in the mutation.
func (m *DocumentMutation) VerificationsIDs() (ids []uuid.UUID) {
	for id := range m.verifications {
		ids = append(ids, id)
	}
	return
}

// ResetVerifications resets all changes to the "verifications" edge.
func (m *DocumentMutation) ResetVerifications() {
	m.verifications = nil
	m.clearedverifications = false
	m.removedverifications = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.owner_id != nil {
		fields = append(fields, document.FieldOwnerID)
	}
	if m.declared_type != nil {
		fields = append(fields, document.FieldDeclaredType)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.job_token != nil {
		fields = append(fields, document.FieldJobToken)
	}
	if m.retry_count != nil {
		fields = append(fields, document.FieldRetryCount)
	}
	if m.next_retry_at != nil {
		fields = append(fields, document.FieldNextRetryAt)
	}
	if m.processing_started_at != nil {
		fields = append(fields, document.FieldProcessingStartedAt)
	}
	if m.processing_completed_at != nil {
		fields = append(fields, document.FieldProcessingCompletedAt)
	}
	if m.last_error != nil {
		fields = append(fields, document.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldOwnerID:
		return m.OwnerID()
	case document.FieldDeclaredType:
		return m.DeclaredType()
	case document.FieldStatus:
		return m.Status()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldJobToken:
		return m.JobToken()
	case document.FieldRetryCount:
		return m.RetryCount()
	case document.FieldNextRetryAt:
		return m.NextRetryAt()
	case document.FieldProcessingStartedAt:
		return m.ProcessingStartedAt()
	case document.FieldProcessingCompletedAt:
		return m.ProcessingCompletedAt()
	case document.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case document.FieldDeclaredType:
		return m.OldDeclaredType(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldJobToken:
		return m.OldJobToken(ctx)
	case document.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case document.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case document.FieldProcessingStartedAt:
		return m.OldProcessingStartedAt(ctx)
	case document.FieldProcessingCompletedAt:
		return m.OldProcessingCompletedAt(ctx)
	case document.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case document.FieldDeclaredType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclaredType(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldJobToken:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobToken(v)
		return nil
	case document.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case document.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case document.FieldProcessingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStartedAt(v)
		return nil
	case document.FieldProcessingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingCompletedAt(v)
		return nil
	case document.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addretry_count != nil {
		fields = append(fields, document.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldJobToken) {
		fields = append(fields, document.FieldJobToken)
	}
	if m.FieldCleared(document.FieldNextRetryAt) {
		fields = append(fields, document.FieldNextRetryAt)
	}
	if m.FieldCleared(document.FieldProcessingStartedAt) {
		fields = append(fields, document.FieldProcessingStartedAt)
	}
	if m.FieldCleared(document.FieldProcessingCompletedAt) {
		fields = append(fields, document.FieldProcessingCompletedAt)
	}
	if m.FieldCleared(document.FieldLastError) {
		fields = append(fields, document.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldJobToken:
		m.ClearJobToken()
		return nil
	case document.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case document.FieldProcessingStartedAt:
		m.ClearProcessingStartedAt()
		return nil
	case document.FieldProcessingCompletedAt:
		m.ClearProcessingCompletedAt()
		return nil
	case document.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case document.FieldDeclaredType:
		m.ResetDeclaredType()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldJobToken:
		m.ResetJobToken()
		return nil
	case document.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case document.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case document.FieldProcessingStartedAt:
		m.ResetProcessingStartedAt()
		return nil
	case document.FieldProcessingCompletedAt:
		m.ResetProcessingCompletedAt()
		return nil
	case document.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.results != nil {
		edges = append(edges, document.EdgeResults)
	}
	if m.verifications != nil {
		edges = append(edges, document.EdgeVerifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.verifications))
		for id := range m.verifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresults != nil {
		edges = append(edges, document.EdgeResults)
	}
	if m.removedverifications != nil {
		edges = append(edges, document.EdgeVerifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.removedverifications))
		for id := range m.removedverifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedresults {
		edges = append(edges, document.EdgeResults)
	}
	if m.clearedverifications {
		edges = append(edges, document.EdgeVerifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeResults:
		return m.clearedresults
	case document.EdgeVerifications:
		return m.clearedverifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeResults:
		m.ResetResults()
		return nil
	case document.EdgeVerifications:
		m.ResetVerifications()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionResultMutation represents an operation that mutates the ExtractionResult nodes in the graph.
type ExtractionResultMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	classified_type         *string
	overall_confidence      *float32
	addoverall_confidence   *float32
	raw_text                *string
	fields                  *json.RawMessage
	appendfields            json.RawMessage
	validation_errors       *json.RawMessage
	appendvalidation_errors json.RawMessage
	status                  *string
	error_message           *string
	processed_at            *time.Time
	clearedFields           map[string]struct{}
	document                *uuid.UUID
	cleareddocument         bool
	done                    bool
	oldValue                func(context.Context) (*ExtractionResult, error)
	predicates              []predicate.ExtractionResult
}

var _ ent.Mutation = (*ExtractionResultMutation)(nil)

// extractionresultOption allows management of the mutation configuration using functional options.
type extractionresultOption func(*ExtractionResultMutation)

// newExtractionResultMutation creates new mutation for the ExtractionResult entity.
func newExtractionResultMutation(c config, op Op, opts ...extractionresultOption) *ExtractionResultMutation {
	m := &ExtractionResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionResultID sets the ID field of the mutation.
func withExtractionResultID(id uuid.UUID) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionResult
		)
		m.oldValue = func(ctx context.Context) (*ExtractionResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionResult sets the old ExtractionResult of the mutation.
func withExtractionResult(node *ExtractionResult) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		m.oldValue = func(context.Context) (*ExtractionResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionResult entities.
func (m *ExtractionResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionResultMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionResultMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionResultMutation) ResetDocumentID() {
	m.document = nil
}

// SetClassifiedType sets the "classified_type" field.
func (m *ExtractionResultMutation) SetClassifiedType(s string) {
	m.classified_type = &s
}

// ClassifiedType returns the value of the "classified_type" field in the mutation.
func (m *ExtractionResultMutation) ClassifiedType() (r string, exists bool) {
	v := m.classified_type
	if v == nil {
		return
	}
	return *v, true
}

// OldClassifiedType returns the old "classified_type" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldClassifiedType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassifiedType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassifiedType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassifiedType: %w", err)
	}
	return oldValue.ClassifiedType, nil
}

// ResetClassifiedType resets all changes to the "classified_type" field.
func (m *ExtractionResultMutation) ResetClassifiedType() {
	m.classified_type = nil
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *ExtractionResultMutation) SetOverallConfidence(f float32) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *ExtractionResultMutation) OverallConfidence() (r float32, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldOverallConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *ExtractionResultMutation) AddOverallConfidence(f float32) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *ExtractionResultMutation) AddedOverallConfidence() (r float32, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *ExtractionResultMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
}

// SetRawText sets the "raw_text" field.
func (m *ExtractionResultMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractionResultMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ExtractionResultMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[extractionresult.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ExtractionResultMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractionResultMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, extractionresult.FieldRawText)
}

// SetFields sets the "fields" field.
func (m *ExtractionResultMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ExtractionResultMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *ExtractionResultMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *ExtractionResultMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *ExtractionResultMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[extractionresult.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *ExtractionResultMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *ExtractionResultMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, extractionresult.FieldFields)
}

// SetValidationErrors sets the "validation_errors" field.
func (m *ExtractionResultMutation) SetValidationErrors(jm json.RawMessage) {
	m.validation_errors = &jm
	m.appendvalidation_errors = nil
}

// ValidationErrors returns the value of the "validation_errors" field in the mutation.
func (m *ExtractionResultMutation) ValidationErrors() (r json.RawMessage, exists bool) {
	v := m.validation_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationErrors returns the old "validation_errors" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldValidationErrors(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationErrors: %w", err)
	}
	return oldValue.ValidationErrors, nil
}

// AppendValidationErrors adds jm to the "validation_errors" field.
func (m *ExtractionResultMutation) AppendValidationErrors(jm json.RawMessage) {
	m.appendvalidation_errors = append(m.appendvalidation_errors, jm...)
}

// AppendedValidationErrors returns the list of values that were appended to the "validation_errors" field in this mutation.
func (m *ExtractionResultMutation) AppendedValidationErrors() (json.RawMessage, bool) {
	if len(m.appendvalidation_errors) == 0 {
		return nil, false
	}
	return m.appendvalidation_errors, true
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (m *ExtractionResultMutation) ClearValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	m.clearedFields[extractionresult.FieldValidationErrors] = struct{}{}
}

// ValidationErrorsCleared returns if the "validation_errors" field was cleared in this mutation.
func (m *ExtractionResultMutation) ValidationErrorsCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldValidationErrors]
	return ok
}

// ResetValidationErrors resets all changes to the "validation_errors" field.
func (m *ExtractionResultMutation) ResetValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	delete(m.clearedFields, extractionresult.FieldValidationErrors)
}

// SetStatus sets the "status" field.
func (m *ExtractionResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionResultMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionresult.FieldErrorMessage)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ExtractionResultMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ExtractionResultMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ExtractionResultMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionResultMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionresult.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionResultMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionResultMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractionResultMutation builder.
func (m *ExtractionResultMutation) Where(ps ...predicate.ExtractionResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionResult).
func (m *ExtractionResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.document != nil {
		fields = append(fields, extractionresult.FieldDocumentID)
	}
	if m.classified_type != nil {
		fields = append(fields, extractionresult.FieldClassifiedType)
	}
	if m.overall_confidence != nil {
		fields = append(fields, extractionresult.FieldOverallConfidence)
	}
	if m.raw_text != nil {
		fields = append(fields, extractionresult.FieldRawText)
	}
	if m.fields != nil {
		fields = append(fields, extractionresult.FieldFields)
	}
	if m.validation_errors != nil {
		fields = append(fields, extractionresult.FieldValidationErrors)
	}
	if m.status != nil {
		fields = append(fields, extractionresult.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractionresult.FieldErrorMessage)
	}
	if m.processed_at != nil {
		fields = append(fields, extractionresult.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.DocumentID()
	case extractionresult.FieldClassifiedType:
		return m.ClassifiedType()
	case extractionresult.FieldOverallConfidence:
		return m.OverallConfidence()
	case extractionresult.FieldRawText:
		return m.RawText()
	case extractionresult.FieldFields:
		return m.GetFields()
	case extractionresult.FieldValidationErrors:
		return m.ValidationErrors()
	case extractionresult.FieldStatus:
		return m.Status()
	case extractionresult.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionresult.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionresult.FieldClassifiedType:
		return m.OldClassifiedType(ctx)
	case extractionresult.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case extractionresult.FieldRawText:
		return m.OldRawText(ctx)
	case extractionresult.FieldFields:
		return m.OldFields(ctx)
	case extractionresult.FieldValidationErrors:
		return m.OldValidationErrors(ctx)
	case extractionresult.FieldStatus:
		return m.OldStatus(ctx)
	case extractionresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionresult.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionresult.FieldClassifiedType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassifiedType(v)
		return nil
	case extractionresult.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case extractionresult.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extractionresult.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case extractionresult.FieldValidationErrors:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationErrors(v)
		return nil
	case extractionresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionresult.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionResultMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_confidence != nil {
		fields = append(fields, extractionresult.FieldOverallConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionresult.FieldRawText) {
		fields = append(fields, extractionresult.FieldRawText)
	}
	if m.FieldCleared(extractionresult.FieldFields) {
		fields = append(fields, extractionresult.FieldFields)
	}
	if m.FieldCleared(extractionresult.FieldValidationErrors) {
		fields = append(fields, extractionresult.FieldValidationErrors)
	}
	if m.FieldCleared(extractionresult.FieldErrorMessage) {
		fields = append(fields, extractionresult.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ClearField(name string) error {
	switch name {
	case extractionresult.FieldRawText:
		m.ClearRawText()
		return nil
	case extractionresult.FieldFields:
		m.ClearFields()
		return nil
	case extractionresult.FieldValidationErrors:
		m.ClearValidationErrors()
		return nil
	case extractionresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ResetField(name string) error {
	switch name {
	case extractionresult.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionresult.FieldClassifiedType:
		m.ResetClassifiedType()
		return nil
	case extractionresult.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case extractionresult.FieldRawText:
		m.ResetRawText()
		return nil
	case extractionresult.FieldFields:
		m.ResetFields()
		return nil
	case extractionresult.FieldValidationErrors:
		m.ResetValidationErrors()
		return nil
	case extractionresult.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionresult.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionresult.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionResultMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionresult.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionResultMutation) ClearEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionResultMutation) ResetEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult edge %s", name)
}

// VerificationRecordMutation represents an operation that mutates the VerificationRecord nodes in the graph.
type VerificationRecordMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	status            *string
	score             *float32
	addscore          *float32
	checks            *json.RawMessage
	appendchecks      json.RawMessage
	issues            *json.RawMessage
	appendissues      json.RawMessage
	reviewer_id       *uuid.UUID
	review_notes      *string
	rejection_reason  *string
	corrections       *json.RawMessage
	appendcorrections json.RawMessage
	current           *bool
	created_at        *time.Time
	verified_at       *time.Time
	expires_at        *time.Time
	clearedFields     map[string]struct{}
	document          *uuid.UUID
	cleareddocument   bool
	done              bool
	oldValue          func(context.Context) (*VerificationRecord, error)
	predicates        []predicate.VerificationRecord
}

var _ ent.Mutation = (*VerificationRecordMutation)(nil)

// verificationrecordOption allows management of the mutation configuration using functional options.
type verificationrecordOption func(*VerificationRecordMutation)

// newVerificationRecordMutation creates new mutation for the VerificationRecord entity.
func newVerificationRecordMutation(c config, op Op, opts ...verificationrecordOption) *VerificationRecordMutation {
	m := &VerificationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationRecordID sets the ID field of the mutation.
func withVerificationRecordID(id uuid.UUID) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationRecord
		)
		m.oldValue = func(ctx context.Context) (*VerificationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationRecord sets the old VerificationRecord of the mutation.
func withVerificationRecord(node *VerificationRecord) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		m.oldValue = func(context.Context) (*VerificationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationRecord entities.
func (m *VerificationRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *VerificationRecordMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *VerificationRecordMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *VerificationRecordMutation) ResetDocumentID() {
	m.document = nil
}

// SetStatus sets the "status" field.
func (m *VerificationRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationRecordMutation) ResetStatus() {
	m.status = nil
}

// SetScore sets the "score" field.
func (m *VerificationRecordMutation) SetScore(f float32) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *VerificationRecordMutation) Score() (r float32, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldScore(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *VerificationRecordMutation) AddScore(f float32) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *VerificationRecordMutation) AddedScore() (r float32, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *VerificationRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetChecks sets the "checks" field.
func (m *VerificationRecordMutation) SetChecks(jm json.RawMessage) {
	m.checks = &jm
	m.appendchecks = nil
}

// Checks returns the value of the "checks" field in the mutation.
func (m *VerificationRecordMutation) Checks() (r json.RawMessage, exists bool) {
	v := m.checks
	if v == nil {
		return
	}
	return *v, true
}

// OldChecks returns the old "checks" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldChecks(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecks: %w", err)
	}
	return oldValue.Checks, nil
}

// AppendChecks adds jm to the "checks" field.
func (m *VerificationRecordMutation) AppendChecks(jm json.RawMessage) {
	m.appendchecks = append(m.appendchecks, jm...)
}

// AppendedChecks returns the list of values that were appended to the "checks" field in this mutation.
func (m *VerificationRecordMutation) AppendedChecks() (json.RawMessage, bool) {
	if len(m.appendchecks) == 0 {
		return nil, false
	}
	return m.appendchecks, true
}

// ClearChecks clears the value of the "checks" field.
func (m *VerificationRecordMutation) ClearChecks() {
	m.checks = nil
	m.appendchecks = nil
	m.clearedFields[verificationrecord.FieldChecks] = struct{}{}
}

// ChecksCleared returns if the "checks" field was cleared in this mutation.
func (m *VerificationRecordMutation) ChecksCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldChecks]
	return ok
}

// ResetChecks resets all changes to the "checks" field.
func (m *VerificationRecordMutation) ResetChecks() {
	m.checks = nil
	m.appendchecks = nil
	delete(m.clearedFields, verificationrecord.FieldChecks)
}

// SetIssues sets the "issues" field.
func (m *VerificationRecordMutation) SetIssues(jm json.RawMessage) {
	m.issues = &jm
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *VerificationRecordMutation) Issues() (r json.RawMessage, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldIssues(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds jm to the "issues" field.
func (m *VerificationRecordMutation) AppendIssues(jm json.RawMessage) {
	m.appendissues = append(m.appendissues, jm...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *VerificationRecordMutation) AppendedIssues() (json.RawMessage, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *VerificationRecordMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[verificationrecord.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *VerificationRecordMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *VerificationRecordMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, verificationrecord.FieldIssues)
}

// SetReviewerID sets the "reviewer_id" field.
func (m *VerificationRecordMutation) SetReviewerID(u uuid.UUID) {
	m.reviewer_id = &u
}

// ReviewerID returns the value of the "reviewer_id" field in the mutation.
func (m *VerificationRecordMutation) ReviewerID() (r uuid.UUID, exists bool) {
	v := m.reviewer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerID returns the old "reviewer_id" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldReviewerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerID: %w", err)
	}
	return oldValue.ReviewerID, nil
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (m *VerificationRecordMutation) ClearReviewerID() {
	m.reviewer_id = nil
	m.clearedFields[verificationrecord.FieldReviewerID] = struct{}{}
}

// ReviewerIDCleared returns if the "reviewer_id" field was cleared in this mutation.
func (m *VerificationRecordMutation) ReviewerIDCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldReviewerID]
	return ok
}

// ResetReviewerID resets all changes to the "reviewer_id" field.
func (m *VerificationRecordMutation) ResetReviewerID() {
	m.reviewer_id = nil
	delete(m.clearedFields, verificationrecord.FieldReviewerID)
}

// SetReviewNotes sets the "review_notes" field.
func (m *VerificationRecordMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *VerificationRecordMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldReviewNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *VerificationRecordMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[verificationrecord.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *VerificationRecordMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *VerificationRecordMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, verificationrecord.FieldReviewNotes)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *VerificationRecordMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *VerificationRecordMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *VerificationRecordMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[verificationrecord.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *VerificationRecordMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *VerificationRecordMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, verificationrecord.FieldRejectionReason)
}

// SetCorrections sets the "corrections" field.
func (m *VerificationRecordMutation) SetCorrections(jm json.RawMessage) {
	m.corrections = &jm
	m.appendcorrections = nil
}

// Corrections returns the value of the "corrections" field in the mutation.
func (m *VerificationRecordMutation) Corrections() (r json.RawMessage, exists bool) {
	v := m.corrections
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrections returns the old "corrections" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldCorrections(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrections: %w", err)
	}
	return oldValue.Corrections, nil
}

// AppendCorrections adds jm to the "corrections" field.
func (m *VerificationRecordMutation) AppendCorrections(jm json.RawMessage) {
	m.appendcorrections = append(m.appendcorrections, jm...)
}

// AppendedCorrections returns the list of values that were appended to the "corrections" field in this mutation.
func (m *VerificationRecordMutation) AppendedCorrections() (json.RawMessage, bool) {
	if len(m.appendcorrections) == 0 {
		return nil, false
	}
	return m.appendcorrections, true
}

// ClearCorrections clears the value of the "corrections" field.
func (m *VerificationRecordMutation) ClearCorrections() {
	m.corrections = nil
	m.appendcorrections = nil
	m.clearedFields[verificationrecord.FieldCorrections] = struct{}{}
}

// CorrectionsCleared returns if the "corrections" field was cleared in this mutation.
func (m *VerificationRecordMutation) CorrectionsCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldCorrections]
	return ok
}

// ResetCorrections resets all changes to the "corrections" field.
func (m *VerificationRecordMutation) ResetCorrections() {
	m.corrections = nil
	m.appendcorrections = nil
	delete(m.clearedFields, verificationrecord.FieldCorrections)
}

// SetCurrent sets the "current" field.
func (m *VerificationRecordMutation) SetCurrent(b bool) {
	m.current = &b
}

// Current returns the value of the "current" field in the mutation.
func (m *VerificationRecordMutation) Current() (r bool, exists bool) {
	v := m.current
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrent returns the old "current" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldCurrent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrent: %w", err)
	}
	return oldValue.Current, nil
}

// ResetCurrent resets all changes to the "current" field.
func (m *VerificationRecordMutation) ResetCurrent() {
	m.current = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetVerifiedAt sets the "verified_at" field.
func (m *VerificationRecordMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *VerificationRecordMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *VerificationRecordMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[verificationrecord.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *VerificationRecordMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *VerificationRecordMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, verificationrecord.FieldVerifiedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *VerificationRecordMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *VerificationRecordMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *VerificationRecordMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[verificationrecord.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *VerificationRecordMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *VerificationRecordMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, verificationrecord.FieldExpiresAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *VerificationRecordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[verificationrecord.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *VerificationRecordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *VerificationRecordMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *VerificationRecordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the VerificationRecordMutation builder.
func (m *VerificationRecordMutation) Where(ps ...predicate.VerificationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationRecord).
func (m *VerificationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.document != nil {
		fields = append(fields, verificationrecord.FieldDocumentID)
	}
	if m.status != nil {
		fields = append(fields, verificationrecord.FieldStatus)
	}
	if m.score != nil {
		fields = append(fields, verificationrecord.FieldScore)
	}
	if m.checks != nil {
		fields = append(fields, verificationrecord.FieldChecks)
	}
	if m.issues != nil {
		fields = append(fields, verificationrecord.FieldIssues)
	}
	if m.reviewer_id != nil {
		fields = append(fields, verificationrecord.FieldReviewerID)
	}
	if m.review_notes != nil {
		fields = append(fields, verificationrecord.FieldReviewNotes)
	}
	if m.rejection_reason != nil {
		fields = append(fields, verificationrecord.FieldRejectionReason)
	}
	if m.corrections != nil {
		fields = append(fields, verificationrecord.FieldCorrections)
	}
	if m.current != nil {
		fields = append(fields, verificationrecord.FieldCurrent)
	}
	if m.created_at != nil {
		fields = append(fields, verificationrecord.FieldCreatedAt)
	}
	if m.verified_at != nil {
		fields = append(fields, verificationrecord.FieldVerifiedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, verificationrecord.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationrecord.FieldDocumentID:
		return m.DocumentID()
	case verificationrecord.FieldStatus:
		return m.Status()
	case verificationrecord.FieldScore:
		return m.Score()
	case verificationrecord.FieldChecks:
		return m.Checks()
	case verificationrecord.FieldIssues:
		return m.Issues()
	case verificationrecord.FieldReviewerID:
		return m.ReviewerID()
	case verificationrecord.FieldReviewNotes:
		return m.ReviewNotes()
	case verificationrecord.FieldRejectionReason:
		return m.RejectionReason()
	case verificationrecord.FieldCorrections:
		return m.Corrections()
	case verificationrecord.FieldCurrent:
		return m.Current()
	case verificationrecord.FieldCreatedAt:
		return m.CreatedAt()
	case verificationrecord.FieldVerifiedAt:
		return m.VerifiedAt()
	case verificationrecord.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationrecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case verificationrecord.FieldStatus:
		return m.OldStatus(ctx)
	case verificationrecord.FieldScore:
		return m.OldScore(ctx)
	case verificationrecord.FieldChecks:
		return m.OldChecks(ctx)
	case verificationrecord.FieldIssues:
		return m.OldIssues(ctx)
	case verificationrecord.FieldReviewerID:
		return m.OldReviewerID(ctx)
	case verificationrecord.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case verificationrecord.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case verificationrecord.FieldCorrections:
		return m.OldCorrections(ctx)
	case verificationrecord.FieldCurrent:
		return m.OldCurrent(ctx)
	case verificationrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case verificationrecord.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case verificationrecord.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationrecord.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case verificationrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationrecord.FieldScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case verificationrecord.FieldChecks:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecks(v)
		return nil
	case verificationrecord.FieldIssues:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case verificationrecord.FieldReviewerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerID(v)
		return nil
	case verificationrecord.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case verificationrecord.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case verificationrecord.FieldCorrections:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrections(v)
		return nil
	case verificationrecord.FieldCurrent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrent(v)
		return nil
	case verificationrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case verificationrecord.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case verificationrecord.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationRecordMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, verificationrecord.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationrecord.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationrecord.FieldScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationrecord.FieldChecks) {
		fields = append(fields, verificationrecord.FieldChecks)
	}
	if m.FieldCleared(verificationrecord.FieldIssues) {
		fields = append(fields, verificationrecord.FieldIssues)
	}
	if m.FieldCleared(verificationrecord.FieldReviewerID) {
		fields = append(fields, verificationrecord.FieldReviewerID)
	}
	if m.FieldCleared(verificationrecord.FieldReviewNotes) {
		fields = append(fields, verificationrecord.FieldReviewNotes)
	}
	if m.FieldCleared(verificationrecord.FieldRejectionReason) {
		fields = append(fields, verificationrecord.FieldRejectionReason)
	}
	if m.FieldCleared(verificationrecord.FieldCorrections) {
		fields = append(fields, verificationrecord.FieldCorrections)
	}
	if m.FieldCleared(verificationrecord.FieldVerifiedAt) {
		fields = append(fields, verificationrecord.FieldVerifiedAt)
	}
	if m.FieldCleared(verificationrecord.FieldExpiresAt) {
		fields = append(fields, verificationrecord.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ClearField(name string) error {
	switch name {
	case verificationrecord.FieldChecks:
		m.ClearChecks()
		return nil
	case verificationrecord.FieldIssues:
		m.ClearIssues()
		return nil
	case verificationrecord.FieldReviewerID:
		m.ClearReviewerID()
		return nil
	case verificationrecord.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	case verificationrecord.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	case verificationrecord.FieldCorrections:
		m.ClearCorrections()
		return nil
	case verificationrecord.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	case verificationrecord.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ResetField(name string) error {
	switch name {
	case verificationrecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case verificationrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationrecord.FieldScore:
		m.ResetScore()
		return nil
	case verificationrecord.FieldChecks:
		m.ResetChecks()
		return nil
	case verificationrecord.FieldIssues:
		m.ResetIssues()
		return nil
	case verificationrecord.FieldReviewerID:
		m.ResetReviewerID()
		return nil
	case verificationrecord.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case verificationrecord.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case verificationrecord.FieldCorrections:
		m.ResetCorrections()
		return nil
	case verificationrecord.FieldCurrent:
		m.ResetCurrent()
		return nil
	case verificationrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case verificationrecord.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case verificationrecord.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, verificationrecord.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationrecord.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, verificationrecord.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationrecord.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationRecordMutation) ClearEdge(name string) error {
	switch name {
	case verificationrecord.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationRecordMutation) ResetEdge(name string) error {
	switch name {
	case verificationrecord.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord edge %s", name)
}
