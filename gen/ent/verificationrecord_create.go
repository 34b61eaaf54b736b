// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecordCreate is the builder for creating a VerificationRecord entity.
type VerificationRecordCreate struct {
	config
	mutation *VerificationRecordMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *VerificationRecordCreate) SetDocumentID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationRecordCreate) SetStatus(v string) *VerificationRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableStatus(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *VerificationRecordCreate) SetScore(v float32) *VerificationRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableScore(v *float32) *VerificationRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetChecks sets the "checks" field.
func (_c *VerificationRecordCreate) SetChecks(v json.RawMessage) *VerificationRecordCreate {
	_c.mutation.SetChecks(v)
	return _c
}

// SetIssues sets the "issues" field.
func (_c *VerificationRecordCreate) SetIssues(v json.RawMessage) *VerificationRecordCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetReviewerID sets the "reviewer_id" field.
func (_c *VerificationRecordCreate) SetReviewerID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetReviewerID(v)
	return _c
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableReviewerID(v *uuid.UUID) *VerificationRecordCreate {
	if v != nil {
		_c.SetReviewerID(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *VerificationRecordCreate) SetReviewNotes(v string) *VerificationRecordCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableReviewNotes(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *VerificationRecordCreate) SetRejectionReason(v string) *VerificationRecordCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableRejectionReason(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetCorrections sets the "corrections" field.
func (_c *VerificationRecordCreate) SetCorrections(v json.RawMessage) *VerificationRecordCreate {
	_c.mutation.SetCorrections(v)
	return _c
}

// SetCurrent sets the "current" field.
func (_c *VerificationRecordCreate) SetCurrent(v bool) *VerificationRecordCreate {
	_c.mutation.SetCurrent(v)
	return _c
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableCurrent(v *bool) *VerificationRecordCreate {
	if v != nil {
		_c.SetCurrent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationRecordCreate) SetCreatedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableCreatedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *VerificationRecordCreate) SetVerifiedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableVerifiedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *VerificationRecordCreate) SetExpiresAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableExpiresAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationRecordCreate) SetID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableID(v *uuid.UUID) *VerificationRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *VerificationRecordCreate) SetDocument(v *Document) *VerificationRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_c *VerificationRecordCreate) Mutation() *VerificationRecordMutation {
	return _c.mutation
}

// Save creates the VerificationRecord in the database.
func (_c *VerificationRecordCreate) Save(ctx context.Context) (*VerificationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationRecordCreate) SaveX(ctx context.Context) *VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := verificationrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := verificationrecord.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Current(); !ok {
		v := verificationrecord.DefaultCurrent
		_c.mutation.SetCurrent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationRecordCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "VerificationRecord.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verificationrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "VerificationRecord.score"`)}
	}
	if _, ok := _c.mutation.Current(); !ok {
		return &ValidationError{Name: "current", err: errors.New(`ent: missing required field "VerificationRecord.current"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationRecord.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "VerificationRecord.document"`)}
	}
	return nil
}

func (_c *VerificationRecordCreate) sqlSave(ctx context.Context) (*VerificationRecord, error) {
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

func (_c *VerificationRecordCreate) createSpec() (*VerificationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationrecord.Table, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(verificationrecord.FieldScore, field.TypeFloat32, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Checks(); ok {
		_spec.SetField(verificationrecord.FieldChecks, field.TypeJSON, value)
		_node.Checks = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(verificationrecord.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.ReviewerID(); ok {
		_spec.SetField(verificationrecord.FieldReviewerID, field.TypeUUID, value)
		_node.ReviewerID = &value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(verificationrecord.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = &value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(verificationrecord.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if value, ok := _c.mutation.Corrections(); ok {
		_spec.SetField(verificationrecord.FieldCorrections, field.TypeJSON, value)
		_node.Corrections = value
	}
	if value, ok := _c.mutation.Current(); ok {
		_spec.SetField(verificationrecord.FieldCurrent, field.TypeBool, value)
		_node.Current = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(verificationrecord.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(verificationrecord.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationrecord.DocumentTable,
			Columns: []string{verificationrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationRecordCreateBulk is the builder for creating many VerificationRecord entities in bulk.
type VerificationRecordCreateBulk struct {
	config
	err      error
	builders []*VerificationRecordCreate
}

// Save creates the VerificationRecord entities in the database.
func (_c *VerificationRecordCreateBulk) Save(ctx context.Context) ([]*VerificationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationRecordMutation)
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
func (_c *VerificationRecordCreateBulk) SaveX(ctx context.Context) []*VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
