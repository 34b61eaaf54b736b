// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/finaid-tools/docverifier/gen/ent/predicate"
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *DocumentUpdate) SetOwnerID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOwnerID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDeclaredType sets the "declared_type" field.
func (_u *DocumentUpdate) SetDeclaredType(v string) *DocumentUpdate {
	_u.mutation.SetDeclaredType(v)
	return _u
}

// SetNillableDeclaredType sets the "declared_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDeclaredType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDeclaredType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DocumentUpdate) SetStoragePath(v string) *DocumentUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStoragePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v []byte) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdate) SetUploadedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetJobToken sets the "job_token" field.
func (_u *DocumentUpdate) SetJobToken(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetJobToken(v)
	return _u
}

// SetNillableJobToken sets the "job_token" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableJobToken(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetJobToken(*v)
	}
	return _u
}

// ClearJobToken clears the value of the "job_token" field.
func (_u *DocumentUpdate) ClearJobToken() *DocumentUpdate {
	_u.mutation.ClearJobToken()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DocumentUpdate) SetRetryCount(v int) *DocumentUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRetryCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DocumentUpdate) AddRetryCount(v int) *DocumentUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *DocumentUpdate) SetNextRetryAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNextRetryAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *DocumentUpdate) ClearNextRetryAt() *DocumentUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *DocumentUpdate) SetProcessingStartedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingStartedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *DocumentUpdate) ClearProcessingStartedAt() *DocumentUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *DocumentUpdate) SetProcessingCompletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingCompletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *DocumentUpdate) ClearProcessingCompletedAt() *DocumentUpdate {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DocumentUpdate) SetLastError(v string) *DocumentUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLastError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DocumentUpdate) ClearLastError() *DocumentUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *DocumentUpdate) AddResultIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdate) AddResults(v ...*ExtractionResult) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *DocumentUpdate) AddVerificationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *DocumentUpdate) AddVerifications(v ...*VerificationRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdate) ClearResults() *DocumentUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *DocumentUpdate) RemoveResultIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *DocumentUpdate) RemoveResults(v ...*ExtractionResult) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *DocumentUpdate) ClearVerifications() *DocumentUpdate {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *DocumentUpdate) RemoveVerificationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *DocumentUpdate) RemoveVerifications(v ...*VerificationRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.DeclaredType(); ok {
		if err := document.DeclaredTypeValidator(v); err != nil {
			return &ValidationError{Name: "declared_type", err: fmt.Errorf(`ent: validator failed for field "Document.declared_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := document.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Document.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := document.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(document.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DeclaredType(); ok {
		_spec.SetField(document.FieldDeclaredType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.JobToken(); ok {
		_spec.SetField(document.FieldJobToken, field.TypeUUID, value)
	}
	if _u.mutation.JobTokenCleared() {
		_spec.ClearField(document.FieldJobToken, field.TypeUUID)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(document.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(document.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(document.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(document.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(document.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(document.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(document.FieldLastError, field.TypeString)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *DocumentUpdateOne) SetOwnerID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOwnerID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDeclaredType sets the "declared_type" field.
func (_u *DocumentUpdateOne) SetDeclaredType(v string) *DocumentUpdateOne {
	_u.mutation.SetDeclaredType(v)
	return _u
}

// SetNillableDeclaredType sets the "declared_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDeclaredType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDeclaredType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DocumentUpdateOne) SetStoragePath(v string) *DocumentUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStoragePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v []byte) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdateOne) SetUploadedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetJobToken sets the "job_token" field.
func (_u *DocumentUpdateOne) SetJobToken(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetJobToken(v)
	return _u
}

// SetNillableJobToken sets the "job_token" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableJobToken(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetJobToken(*v)
	}
	return _u
}

// ClearJobToken clears the value of the "job_token" field.
func (_u *DocumentUpdateOne) ClearJobToken() *DocumentUpdateOne {
	_u.mutation.ClearJobToken()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DocumentUpdateOne) SetRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRetryCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DocumentUpdateOne) AddRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *DocumentUpdateOne) SetNextRetryAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNextRetryAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *DocumentUpdateOne) ClearNextRetryAt() *DocumentUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *DocumentUpdateOne) SetProcessingStartedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *DocumentUpdateOne) ClearProcessingStartedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *DocumentUpdateOne) SetProcessingCompletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingCompletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *DocumentUpdateOne) ClearProcessingCompletedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DocumentUpdateOne) SetLastError(v string) *DocumentUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLastError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DocumentUpdateOne) ClearLastError() *DocumentUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *DocumentUpdateOne) AddResultIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdateOne) AddResults(v ...*ExtractionResult) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *DocumentUpdateOne) AddVerificationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *DocumentUpdateOne) AddVerifications(v ...*VerificationRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdateOne) ClearResults() *DocumentUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *DocumentUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *DocumentUpdateOne) RemoveResults(v ...*ExtractionResult) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *DocumentUpdateOne) ClearVerifications() *DocumentUpdateOne {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *DocumentUpdateOne) RemoveVerificationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *DocumentUpdateOne) RemoveVerifications(v ...*VerificationRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DeclaredType(); ok {
		if err := document.DeclaredTypeValidator(v); err != nil {
			return &ValidationError{Name: "declared_type", err: fmt.Errorf(`ent: validator failed for field "Document.declared_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := document.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Document.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := document.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(document.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DeclaredType(); ok {
		_spec.SetField(document.FieldDeclaredType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.JobToken(); ok {
		_spec.SetField(document.FieldJobToken, field.TypeUUID, value)
	}
	if _u.mutation.JobTokenCleared() {
		_spec.ClearField(document.FieldJobToken, field.TypeUUID)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(document.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(document.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(document.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(document.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(document.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(document.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(document.FieldLastError, field.TypeString)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VerificationsTable,
			Columns: []string{document.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
