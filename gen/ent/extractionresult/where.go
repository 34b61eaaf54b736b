// Code generated by ent, DO NOT EDIT.

package extractionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finaid-tools/docverifier/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldDocumentID, v))
}

// ClassifiedType applies equality check predicate on the "classified_type" field. It's identical to ClassifiedTypeEQ.
func ClassifiedType(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldClassifiedType, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldOverallConfidence, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldRawText, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldProcessedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldDocumentID, vs...))
}

// ClassifiedTypeEQ applies the EQ predicate on the "classified_type" field.
func ClassifiedTypeEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldClassifiedType, v))
}

// ClassifiedTypeNEQ applies the NEQ predicate on the "classified_type" field.
func ClassifiedTypeNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldClassifiedType, v))
}

// ClassifiedTypeIn applies the In predicate on the "classified_type" field.
func ClassifiedTypeIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldClassifiedType, vs...))
}

// ClassifiedTypeNotIn applies the NotIn predicate on the "classified_type" field.
func ClassifiedTypeNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldClassifiedType, vs...))
}

// ClassifiedTypeGT applies the GT predicate on the "classified_type" field.
func ClassifiedTypeGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldClassifiedType, v))
}

// ClassifiedTypeGTE applies the GTE predicate on the "classified_type" field.
func ClassifiedTypeGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldClassifiedType, v))
}

// ClassifiedTypeLT applies the LT predicate on the "classified_type" field.
func ClassifiedTypeLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldClassifiedType, v))
}

// ClassifiedTypeLTE applies the LTE predicate on the "classified_type" field.
func ClassifiedTypeLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldClassifiedType, v))
}

// ClassifiedTypeContains applies the Contains predicate on the "classified_type" field.
func ClassifiedTypeContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldClassifiedType, v))
}

// ClassifiedTypeHasPrefix applies the HasPrefix predicate on the "classified_type" field.
func ClassifiedTypeHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldClassifiedType, v))
}

// ClassifiedTypeHasSuffix applies the HasSuffix predicate on the "classified_type" field.
func ClassifiedTypeHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldClassifiedType, v))
}

// ClassifiedTypeEqualFold applies the EqualFold predicate on the "classified_type" field.
func ClassifiedTypeEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldClassifiedType, v))
}

// ClassifiedTypeContainsFold applies the ContainsFold predicate on the "classified_type" field.
func ClassifiedTypeContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldClassifiedType, v))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldOverallConfidence, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldRawText, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldFields))
}

// ValidationErrorsIsNil applies the IsNil predicate on the "validation_errors" field.
func ValidationErrorsIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldValidationErrors))
}

// ValidationErrorsNotNil applies the NotNil predicate on the "validation_errors" field.
func ValidationErrorsNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldValidationErrors))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldProcessedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.NotPredicates(p))
}
