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
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/google/uuid"
)

// ExtractionResultCreate is the builder for creating a ExtractionResult entity.
type ExtractionResultCreate struct {
	config
	mutation *ExtractionResultMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionResultCreate) SetDocumentID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetClassifiedType sets the "classified_type" field.
func (_c *ExtractionResultCreate) SetClassifiedType(v string) *ExtractionResultCreate {
	_c.mutation.SetClassifiedType(v)
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *ExtractionResultCreate) SetOverallConfidence(v float32) *ExtractionResultCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableOverallConfidence(v *float32) *ExtractionResultCreate {
	if v != nil {
		_c.SetOverallConfidence(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ExtractionResultCreate) SetRawText(v string) *ExtractionResultCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableRawText(v *string) *ExtractionResultCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetFields sets the "fields" field.
func (_c *ExtractionResultCreate) SetFields(v json.RawMessage) *ExtractionResultCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetValidationErrors sets the "validation_errors" field.
func (_c *ExtractionResultCreate) SetValidationErrors(v json.RawMessage) *ExtractionResultCreate {
	_c.mutation.SetValidationErrors(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionResultCreate) SetStatus(v string) *ExtractionResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionResultCreate) SetErrorMessage(v string) *ExtractionResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableErrorMessage(v *string) *ExtractionResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ExtractionResultCreate) SetProcessedAt(v time.Time) *ExtractionResultCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableProcessedAt(v *time.Time) *ExtractionResultCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionResultCreate) SetID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableID(v *uuid.UUID) *ExtractionResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionResultCreate) SetDocument(v *Document) *ExtractionResultCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_c *ExtractionResultCreate) Mutation() *ExtractionResultMutation {
	return _c.mutation
}

// Save creates the ExtractionResult in the database.
func (_c *ExtractionResultCreate) Save(ctx context.Context) (*ExtractionResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionResultCreate) SaveX(ctx context.Context) *ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionResultCreate) defaults() {
	if _, ok := _c.mutation.OverallConfidence(); !ok {
		v := extractionresult.DefaultOverallConfidence
		_c.mutation.SetOverallConfidence(v)
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := extractionresult.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionResultCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionResult.document_id"`)}
	}
	if _, ok := _c.mutation.ClassifiedType(); !ok {
		return &ValidationError{Name: "classified_type", err: errors.New(`ent: missing required field "ExtractionResult.classified_type"`)}
	}
	if v, ok := _c.mutation.ClassifiedType(); ok {
		if err := extractionresult.ClassifiedTypeValidator(v); err != nil {
			return &ValidationError{Name: "classified_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.classified_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallConfidence(); !ok {
		return &ValidationError{Name: "overall_confidence", err: errors.New(`ent: missing required field "ExtractionResult.overall_confidence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "ExtractionResult.processed_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionResult.document"`)}
	}
	return nil
}

func (_c *ExtractionResultCreate) sqlSave(ctx context.Context) (*ExtractionResult, error) {
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

func (_c *ExtractionResultCreate) createSpec() (*ExtractionResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionresult.Table, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClassifiedType(); ok {
		_spec.SetField(extractionresult.FieldClassifiedType, field.TypeString, value)
		_node.ClassifiedType = value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
		_node.OverallConfidence = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(extractionresult.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.ValidationErrors(); ok {
		_spec.SetField(extractionresult.FieldValidationErrors, field.TypeJSON, value)
		_node.ValidationErrors = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(extractionresult.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
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

// ExtractionResultCreateBulk is the builder for creating many ExtractionResult entities in bulk.
type ExtractionResultCreateBulk struct {
	config
	err      error
	builders []*ExtractionResultCreate
}

// Save creates the ExtractionResult entities in the database.
func (_c *ExtractionResultCreateBulk) Save(ctx context.Context) ([]*ExtractionResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionResultMutation)
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
func (_c *ExtractionResultCreateBulk) SaveX(ctx context.Context) []*ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
