// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/google/uuid"
)

// ExtractionResult is the model entity for the ExtractionResult schema.
type ExtractionResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// ClassifiedType holds the value of the "classified_type" field.
	ClassifiedType string `json:"classified_type,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence float32 `json:"overall_confidence,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields json.RawMessage `json:"fields,omitempty"`
	// ValidationErrors holds the value of the "validation_errors" field.
	ValidationErrors json.RawMessage `json:"validation_errors,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionResultQuery when eager-loading is set.
	Edges        ExtractionResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionResultEdges holds the relations/edges for other nodes in the graph.
type ExtractionResultEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionResultEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionresult.FieldFields, extractionresult.FieldValidationErrors:
			values[i] = new([]byte)
		case extractionresult.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case extractionresult.FieldClassifiedType, extractionresult.FieldRawText, extractionresult.FieldStatus, extractionresult.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extractionresult.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case extractionresult.FieldID, extractionresult.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionResult fields.
func (_m *ExtractionResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionresult.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extractionresult.FieldClassifiedType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classified_type", values[i])
			} else if value.Valid {
				_m.ClassifiedType = value.String
			}
		case extractionresult.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = float32(value.Float64)
			}
		case extractionresult.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case extractionresult.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case extractionresult.FieldValidationErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationErrors); err != nil {
					return fmt.Errorf("unmarshal field validation_errors: %w", err)
				}
			}
		case extractionresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionresult.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionresult.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractionResult entity.
func (_m *ExtractionResult) QueryDocument() *DocumentQuery {
	return NewExtractionResultClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ExtractionResult.
// Note that you need to call ExtractionResult.Unwrap() before calling this method if this ExtractionResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionResult) Update() *ExtractionResultUpdateOne {
	return NewExtractionResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionResult) Unwrap() *ExtractionResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("classified_type=")
	builder.WriteString(_m.ClassifiedType)
	builder.WriteString(", ")
	builder.WriteString("overall_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallConfidence))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("validation_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationErrors))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionResults is a parsable slice of ExtractionResult.
type ExtractionResults []*ExtractionResult
