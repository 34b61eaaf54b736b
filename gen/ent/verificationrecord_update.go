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
	"github.com/finaid-tools/docverifier/gen/ent/predicate"
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecordUpdate is the builder for updating VerificationRecord entities.
type VerificationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdate) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *VerificationRecordUpdate) SetDocumentID(v uuid.UUID) *VerificationRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableDocumentID(v *uuid.UUID) *VerificationRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationRecordUpdate) SetStatus(v string) *VerificationRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableStatus(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *VerificationRecordUpdate) SetScore(v float32) *VerificationRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableScore(v *float32) *VerificationRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *VerificationRecordUpdate) AddScore(v float32) *VerificationRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetChecks sets the "checks" field.
func (_u *VerificationRecordUpdate) SetChecks(v json.RawMessage) *VerificationRecordUpdate {
	_u.mutation.SetChecks(v)
	return _u
}

// AppendChecks appends value to the "checks" field.
func (_u *VerificationRecordUpdate) AppendChecks(v json.RawMessage) *VerificationRecordUpdate {
	_u.mutation.AppendChecks(v)
	return _u
}

// ClearChecks clears the value of the "checks" field.
func (_u *VerificationRecordUpdate) ClearChecks() *VerificationRecordUpdate {
	_u.mutation.ClearChecks()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *VerificationRecordUpdate) SetIssues(v json.RawMessage) *VerificationRecordUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *VerificationRecordUpdate) AppendIssues(v json.RawMessage) *VerificationRecordUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *VerificationRecordUpdate) ClearIssues() *VerificationRecordUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *VerificationRecordUpdate) SetReviewerID(v uuid.UUID) *VerificationRecordUpdate {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableReviewerID(v *uuid.UUID) *VerificationRecordUpdate {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *VerificationRecordUpdate) ClearReviewerID() *VerificationRecordUpdate {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *VerificationRecordUpdate) SetReviewNotes(v string) *VerificationRecordUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableReviewNotes(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *VerificationRecordUpdate) ClearReviewNotes() *VerificationRecordUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *VerificationRecordUpdate) SetRejectionReason(v string) *VerificationRecordUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableRejectionReason(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *VerificationRecordUpdate) ClearRejectionReason() *VerificationRecordUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetCorrections sets the "corrections" field.
func (_u *VerificationRecordUpdate) SetCorrections(v json.RawMessage) *VerificationRecordUpdate {
	_u.mutation.SetCorrections(v)
	return _u
}

// AppendCorrections appends value to the "corrections" field.
func (_u *VerificationRecordUpdate) AppendCorrections(v json.RawMessage) *VerificationRecordUpdate {
	_u.mutation.AppendCorrections(v)
	return _u
}

// ClearCorrections clears the value of the "corrections" field.
func (_u *VerificationRecordUpdate) ClearCorrections() *VerificationRecordUpdate {
	_u.mutation.ClearCorrections()
	return _u
}

// SetCurrent sets the "current" field.
func (_u *VerificationRecordUpdate) SetCurrent(v bool) *VerificationRecordUpdate {
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableCurrent(v *bool) *VerificationRecordUpdate {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationRecordUpdate) SetCreatedAt(v time.Time) *VerificationRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableCreatedAt(v *time.Time) *VerificationRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *VerificationRecordUpdate) SetVerifiedAt(v time.Time) *VerificationRecordUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableVerifiedAt(v *time.Time) *VerificationRecordUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *VerificationRecordUpdate) ClearVerifiedAt() *VerificationRecordUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *VerificationRecordUpdate) SetExpiresAt(v time.Time) *VerificationRecordUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableExpiresAt(v *time.Time) *VerificationRecordUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *VerificationRecordUpdate) ClearExpiresAt() *VerificationRecordUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerificationRecordUpdate) SetDocument(v *Document) *VerificationRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdate) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerificationRecordUpdate) ClearDocument() *VerificationRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.document"`)
	}
	return nil
}

func (_u *VerificationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(verificationrecord.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(verificationrecord.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Checks(); ok {
		_spec.SetField(verificationrecord.FieldChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldChecks, value)
		})
	}
	if _u.mutation.ChecksCleared() {
		_spec.ClearField(verificationrecord.FieldChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(verificationrecord.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(verificationrecord.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(verificationrecord.FieldReviewerID, field.TypeUUID, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(verificationrecord.FieldReviewerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(verificationrecord.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(verificationrecord.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(verificationrecord.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(verificationrecord.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.Corrections(); ok {
		_spec.SetField(verificationrecord.FieldCorrections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldCorrections, value)
		})
	}
	if _u.mutation.CorrectionsCleared() {
		_spec.ClearField(verificationrecord.FieldCorrections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(verificationrecord.FieldCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(verificationrecord.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(verificationrecord.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(verificationrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(verificationrecord.FieldExpiresAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationRecordUpdateOne is the builder for updating a single VerificationRecord entity.
type VerificationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *VerificationRecordUpdateOne) SetDocumentID(v uuid.UUID) *VerificationRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationRecordUpdateOne) SetStatus(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableStatus(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *VerificationRecordUpdateOne) SetScore(v float32) *VerificationRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableScore(v *float32) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *VerificationRecordUpdateOne) AddScore(v float32) *VerificationRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetChecks sets the "checks" field.
func (_u *VerificationRecordUpdateOne) SetChecks(v json.RawMessage) *VerificationRecordUpdateOne {
	_u.mutation.SetChecks(v)
	return _u
}

// AppendChecks appends value to the "checks" field.
func (_u *VerificationRecordUpdateOne) AppendChecks(v json.RawMessage) *VerificationRecordUpdateOne {
	_u.mutation.AppendChecks(v)
	return _u
}

// ClearChecks clears the value of the "checks" field.
func (_u *VerificationRecordUpdateOne) ClearChecks() *VerificationRecordUpdateOne {
	_u.mutation.ClearChecks()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *VerificationRecordUpdateOne) SetIssues(v json.RawMessage) *VerificationRecordUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *VerificationRecordUpdateOne) AppendIssues(v json.RawMessage) *VerificationRecordUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *VerificationRecordUpdateOne) ClearIssues() *VerificationRecordUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *VerificationRecordUpdateOne) SetReviewerID(v uuid.UUID) *VerificationRecordUpdateOne {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableReviewerID(v *uuid.UUID) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *VerificationRecordUpdateOne) ClearReviewerID() *VerificationRecordUpdateOne {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *VerificationRecordUpdateOne) SetReviewNotes(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableReviewNotes(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *VerificationRecordUpdateOne) ClearReviewNotes() *VerificationRecordUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *VerificationRecordUpdateOne) SetRejectionReason(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableRejectionReason(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *VerificationRecordUpdateOne) ClearRejectionReason() *VerificationRecordUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetCorrections sets the "corrections" field.
func (_u *VerificationRecordUpdateOne) SetCorrections(v json.RawMessage) *VerificationRecordUpdateOne {
	_u.mutation.SetCorrections(v)
	return _u
}

// AppendCorrections appends value to the "corrections" field.
func (_u *VerificationRecordUpdateOne) AppendCorrections(v json.RawMessage) *VerificationRecordUpdateOne {
	_u.mutation.AppendCorrections(v)
	return _u
}

// ClearCorrections clears the value of the "corrections" field.
func (_u *VerificationRecordUpdateOne) ClearCorrections() *VerificationRecordUpdateOne {
	_u.mutation.ClearCorrections()
	return _u
}

// SetCurrent sets the "current" field.
func (_u *VerificationRecordUpdateOne) SetCurrent(v bool) *VerificationRecordUpdateOne {
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableCurrent(v *bool) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationRecordUpdateOne) SetCreatedAt(v time.Time) *VerificationRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *VerificationRecordUpdateOne) SetVerifiedAt(v time.Time) *VerificationRecordUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableVerifiedAt(v *time.Time) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *VerificationRecordUpdateOne) ClearVerifiedAt() *VerificationRecordUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *VerificationRecordUpdateOne) SetExpiresAt(v time.Time) *VerificationRecordUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableExpiresAt(v *time.Time) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *VerificationRecordUpdateOne) ClearExpiresAt() *VerificationRecordUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *VerificationRecordUpdateOne) SetDocument(v *Document) *VerificationRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdateOne) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *VerificationRecordUpdateOne) ClearDocument() *VerificationRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdateOne) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationRecordUpdateOne) Select(field string, fields ...string) *VerificationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationRecord entity.
func (_u *VerificationRecordUpdateOne) Save(ctx context.Context) (*VerificationRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) SaveX(ctx context.Context) *VerificationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.document"`)
	}
	return nil
}

func (_u *VerificationRecordUpdateOne) sqlSave(ctx context.Context) (_node *VerificationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationrecord.FieldID)
		for _, f := range fields {
			if !verificationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationrecord.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(verificationrecord.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(verificationrecord.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Checks(); ok {
		_spec.SetField(verificationrecord.FieldChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldChecks, value)
		})
	}
	if _u.mutation.ChecksCleared() {
		_spec.ClearField(verificationrecord.FieldChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(verificationrecord.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(verificationrecord.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(verificationrecord.FieldReviewerID, field.TypeUUID, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(verificationrecord.FieldReviewerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(verificationrecord.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(verificationrecord.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(verificationrecord.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(verificationrecord.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.Corrections(); ok {
		_spec.SetField(verificationrecord.FieldCorrections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldCorrections, value)
		})
	}
	if _u.mutation.CorrectionsCleared() {
		_spec.ClearField(verificationrecord.FieldCorrections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(verificationrecord.FieldCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(verificationrecord.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(verificationrecord.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(verificationrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(verificationrecord.FieldExpiresAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
