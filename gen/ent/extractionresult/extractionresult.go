// Code generated by ent, DO NOT EDIT.

package extractionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionresult type in the database.
	Label = "extraction_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldClassifiedType holds the string denoting the classified_type field in the database.
	FieldClassifiedType = "classified_type"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldValidationErrors holds the string denoting the validation_errors field in the database.
	FieldValidationErrors = "validation_errors"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the extractionresult in the database.
	Table = "extraction_results"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "extraction_results"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for extractionresult fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldClassifiedType,
	FieldOverallConfidence,
	FieldRawText,
	FieldFields,
	FieldValidationErrors,
	FieldStatus,
	FieldErrorMessage,
	FieldProcessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ClassifiedTypeValidator is a validator for the "classified_type" field. It is called by the builders before save.
	ClassifiedTypeValidator func(string) error
	// DefaultOverallConfidence holds the default value on creation for the "overall_confidence" field.
	DefaultOverallConfidence float32
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProcessedAt holds the default value on creation for the "processed_at" field.
	DefaultProcessedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByClassifiedType orders the results by the classified_type field.
func ByClassifiedType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassifiedType, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
