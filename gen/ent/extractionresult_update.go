// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/finaid-tools/docverifier/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractionResultUpdate is the builder for updating ExtractionResult entities.
type ExtractionResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdate) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdate) SetDocumentID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetClassifiedType sets the "classified_type" field.
func (_u *ExtractionResultUpdate) SetClassifiedType(v string) *ExtractionResultUpdate {
	_u.mutation.SetClassifiedType(v)
	return _u
}

// SetNillableClassifiedType sets the "classified_type" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableClassifiedType(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetClassifiedType(*v)
	}
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ExtractionResultUpdate) SetOverallConfidence(v float32) *ExtractionResultUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableOverallConfidence(v *float32) *ExtractionResultUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ExtractionResultUpdate) AddOverallConfidence(v float32) *ExtractionResultUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractionResultUpdate) SetRawText(v string) *ExtractionResultUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableRawText(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ExtractionResultUpdate) ClearRawText() *ExtractionResultUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionResultUpdate) SetFields(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionResultUpdate) AppendFields(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionResultUpdate) ClearFields() *ExtractionResultUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractionResultUpdate) SetValidationErrors(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractionResultUpdate) AppendValidationErrors(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractionResultUpdate) ClearValidationErrors() *ExtractionResultUpdate {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionResultUpdate) SetStatus(v string) *ExtractionResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableStatus(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionResultUpdate) SetErrorMessage(v string) *ExtractionResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableErrorMessage(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionResultUpdate) ClearErrorMessage() *ExtractionResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ExtractionResultUpdate) SetProcessedAt(v time.Time) *ExtractionResultUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableProcessedAt(v *time.Time) *ExtractionResultUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) SetDocument(v *Document) *ExtractionResultUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdate) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) ClearDocument() *ExtractionResultUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdate) check() error {
	if v, ok := _u.mutation.ClassifiedType(); ok {
		if err := extractionresult.ClassifiedTypeValidator(v); err != nil {
			return &ValidationError{Name: "classified_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.classified_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	return nil
}

func (_u *ExtractionResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClassifiedType(); ok {
		_spec.SetField(extractionresult.FieldClassifiedType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extractionresult.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(extractionresult.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractionresult.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractionresult.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(extractionresult.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionResultUpdateOne is the builder for updating a single ExtractionResult entity.
type ExtractionResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetClassifiedType sets the "classified_type" field.
func (_u *ExtractionResultUpdateOne) SetClassifiedType(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetClassifiedType(v)
	return _u
}

// SetNillableClassifiedType sets the "classified_type" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableClassifiedType(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetClassifiedType(*v)
	}
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ExtractionResultUpdateOne) SetOverallConfidence(v float32) *ExtractionResultUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableOverallConfidence(v *float32) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ExtractionResultUpdateOne) AddOverallConfidence(v float32) *ExtractionResultUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractionResultUpdateOne) SetRawText(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableRawText(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ExtractionResultUpdateOne) ClearRawText() *ExtractionResultUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionResultUpdateOne) SetFields(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionResultUpdateOne) AppendFields(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionResultUpdateOne) ClearFields() *ExtractionResultUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractionResultUpdateOne) SetValidationErrors(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractionResultUpdateOne) AppendValidationErrors(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractionResultUpdateOne) ClearValidationErrors() *ExtractionResultUpdateOne {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionResultUpdateOne) SetStatus(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableStatus(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionResultUpdateOne) SetErrorMessage(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableErrorMessage(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionResultUpdateOne) ClearErrorMessage() *ExtractionResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ExtractionResultUpdateOne) SetProcessedAt(v time.Time) *ExtractionResultUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableProcessedAt(v *time.Time) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) SetDocument(v *Document) *ExtractionResultUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdateOne) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) ClearDocument() *ExtractionResultUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdateOne) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionResultUpdateOne) Select(field string, fields ...string) *ExtractionResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionResult entity.
func (_u *ExtractionResultUpdateOne) Save(ctx context.Context) (*ExtractionResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) SaveX(ctx context.Context) *ExtractionResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdateOne) check() error {
	if v, ok := _u.mutation.ClassifiedType(); ok {
		if err := extractionresult.ClassifiedTypeValidator(v); err != nil {
			return &ValidationError{Name: "classified_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.classified_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	return nil
}

func (_u *ExtractionResultUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionresult.FieldID)
		for _, f := range fields {
			if !extractionresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionresult.FieldID {
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
	if value, ok := _u.mutation.ClassifiedType(); ok {
		_spec.SetField(extractionresult.FieldClassifiedType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extractionresult.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(extractionresult.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractionresult.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractionresult.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(extractionresult.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
