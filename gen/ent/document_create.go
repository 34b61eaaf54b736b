// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *DocumentCreate) SetOwnerID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDeclaredType sets the "declared_type" field.
func (_c *DocumentCreate) SetDeclaredType(v string) *DocumentCreate {
	_c.mutation.SetDeclaredType(v)
	return _c
}

// SetNillableDeclaredType sets the "declared_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDeclaredType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDeclaredType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentCreate) SetStatus(v string) *DocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *DocumentCreate) SetStoragePath(v string) *DocumentCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v []byte) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *DocumentCreate) SetFileExt(v string) *DocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentCreate) SetFileSize(v int) *DocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *DocumentCreate) SetUploadedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetJobToken sets the "job_token" field.
func (_c *DocumentCreate) SetJobToken(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetJobToken(v)
	return _c
}

// SetNillableJobToken sets the "job_token" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableJobToken(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetJobToken(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *DocumentCreate) SetRetryCount(v int) *DocumentCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableRetryCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *DocumentCreate) SetNextRetryAt(v time.Time) *DocumentCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableNextRetryAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_c *DocumentCreate) SetProcessingStartedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessingStartedAt(v)
	return _c
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingStartedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetProcessingStartedAt(*v)
	}
	return _c
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_c *DocumentCreate) SetProcessingCompletedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessingCompletedAt(v)
	return _c
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingCompletedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetProcessingCompletedAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *DocumentCreate) SetLastError(v string) *DocumentCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLastError(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_c *DocumentCreate) AddResultIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_c *DocumentCreate) AddResults(v ...*ExtractionResult) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_c *DocumentCreate) AddVerificationIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddVerificationIDs(ids...)
	return _c
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_c *DocumentCreate) AddVerifications(v ...*VerificationRecord) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerificationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.DeclaredType(); !ok {
		v := document.DefaultDeclaredType
		_c.mutation.SetDeclaredType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := document.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := document.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := document.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Document.owner_id"`)}
	}
	if _, ok := _c.mutation.DeclaredType(); !ok {
		return &ValidationError{Name: "declared_type", err: errors.New(`ent: missing required field "Document.declared_type"`)}
	}
	if v, ok := _c.mutation.DeclaredType(); ok {
		if err := document.DeclaredTypeValidator(v); err != nil {
			return &ValidationError{Name: "declared_type", err: fmt.Errorf(`ent: validator failed for field "Document.declared_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "Document.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := document.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Document.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Document.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Document.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Document.uploaded_at"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Document.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := document.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(document.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DeclaredType(); ok {
		_spec.SetField(document.FieldDeclaredType, field.TypeString, value)
		_node.DeclaredType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.JobToken(); ok {
		_spec.SetField(document.FieldJobToken, field.TypeUUID, value)
		_node.JobToken = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(document.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(document.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
		_node.ProcessingStartedAt = &value
	}
	if value, ok := _c.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(document.FieldProcessingCompletedAt, field.TypeTime, value)
		_node.ProcessingCompletedAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(document.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
