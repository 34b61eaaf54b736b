// Code generated by ent, DO NOT EDIT.

package verificationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finaid-tools/docverifier/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldDocumentID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldStatus, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldScore, v))
}

// ReviewerID applies equality check predicate on the "reviewer_id" field. It's identical to ReviewerIDEQ.
func ReviewerID(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewNotes applies equality check predicate on the "review_notes" field. It's identical to ReviewNotesEQ.
func ReviewNotes(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewNotes, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldRejectionReason, v))
}

// Current applies equality check predicate on the "current" field. It's identical to CurrentEQ.
func Current(v bool) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCurrent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldVerifiedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldStatus, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float32) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldScore, v))
}

// ChecksIsNil applies the IsNil predicate on the "checks" field.
func ChecksIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldChecks))
}

// ChecksNotNil applies the NotNil predicate on the "checks" field.
func ChecksNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldChecks))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldIssues))
}

// ReviewerIDEQ applies the EQ predicate on the "reviewer_id" field.
func ReviewerIDEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewerIDNEQ applies the NEQ predicate on the "reviewer_id" field.
func ReviewerIDNEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldReviewerID, v))
}

// ReviewerIDIn applies the In predicate on the "reviewer_id" field.
func ReviewerIDIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldReviewerID, vs...))
}

// ReviewerIDNotIn applies the NotIn predicate on the "reviewer_id" field.
func ReviewerIDNotIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldReviewerID, vs...))
}

// ReviewerIDGT applies the GT predicate on the "reviewer_id" field.
func ReviewerIDGT(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldReviewerID, v))
}

// ReviewerIDGTE applies the GTE predicate on the "reviewer_id" field.
func ReviewerIDGTE(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldReviewerID, v))
}

// ReviewerIDLT applies the LT predicate on the "reviewer_id" field.
func ReviewerIDLT(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldReviewerID, v))
}

// ReviewerIDLTE applies the LTE predicate on the "reviewer_id" field.
func ReviewerIDLTE(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldReviewerID, v))
}

// ReviewerIDIsNil applies the IsNil predicate on the "reviewer_id" field.
func ReviewerIDIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldReviewerID))
}

// ReviewerIDNotNil applies the NotNil predicate on the "reviewer_id" field.
func ReviewerIDNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldReviewerID))
}

// ReviewNotesEQ applies the EQ predicate on the "review_notes" field.
func ReviewNotesEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewNotesNEQ applies the NEQ predicate on the "review_notes" field.
func ReviewNotesNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldReviewNotes, v))
}

// ReviewNotesIn applies the In predicate on the "review_notes" field.
func ReviewNotesIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldReviewNotes, vs...))
}

// ReviewNotesNotIn applies the NotIn predicate on the "review_notes" field.
func ReviewNotesNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldReviewNotes, vs...))
}

// ReviewNotesGT applies the GT predicate on the "review_notes" field.
func ReviewNotesGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldReviewNotes, v))
}

// ReviewNotesGTE applies the GTE predicate on the "review_notes" field.
func ReviewNotesGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldReviewNotes, v))
}

// ReviewNotesLT applies the LT predicate on the "review_notes" field.
func ReviewNotesLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldReviewNotes, v))
}

// ReviewNotesLTE applies the LTE predicate on the "review_notes" field.
func ReviewNotesLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldReviewNotes, v))
}

// ReviewNotesContains applies the Contains predicate on the "review_notes" field.
func ReviewNotesContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldReviewNotes, v))
}

// ReviewNotesHasPrefix applies the HasPrefix predicate on the "review_notes" field.
func ReviewNotesHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldReviewNotes, v))
}

// ReviewNotesHasSuffix applies the HasSuffix predicate on the "review_notes" field.
func ReviewNotesHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldReviewNotes, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldReviewNotes))
}

// ReviewNotesEqualFold applies the EqualFold predicate on the "review_notes" field.
func ReviewNotesEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldReviewNotes, v))
}

// ReviewNotesContainsFold applies the ContainsFold predicate on the "review_notes" field.
func ReviewNotesContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldReviewNotes, v))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldRejectionReason, v))
}

// CorrectionsIsNil applies the IsNil predicate on the "corrections" field.
func CorrectionsIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldCorrections))
}

// CorrectionsNotNil applies the NotNil predicate on the "corrections" field.
func CorrectionsNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldCorrections))
}

// CurrentEQ applies the EQ predicate on the "current" field.
func CurrentEQ(v bool) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCurrent, v))
}

// CurrentNEQ applies the NEQ predicate on the "current" field.
func CurrentNEQ(v bool) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldCurrent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldVerifiedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldExpiresAt))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.NotPredicates(p))
}
