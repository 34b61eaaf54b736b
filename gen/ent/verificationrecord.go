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
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecord is the model entity for the VerificationRecord schema.
type VerificationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Score holds the value of the "score" field.
	Score float32 `json:"score,omitempty"`
	// Checks holds the value of the "checks" field.
	Checks json.RawMessage `json:"checks,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues json.RawMessage `json:"issues,omitempty"`
	// ReviewerID holds the value of the "reviewer_id" field.
	ReviewerID *uuid.UUID `json:"reviewer_id,omitempty"`
	// ReviewNotes holds the value of the "review_notes" field.
	ReviewNotes *string `json:"review_notes,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason *string `json:"rejection_reason,omitempty"`
	// Corrections holds the value of the "corrections" field.
	Corrections json.RawMessage `json:"corrections,omitempty"`
	// Current holds the value of the "current" field.
	Current bool `json:"current,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationRecordQuery when eager-loading is set.
	Edges        VerificationRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationRecordEdges holds the relations/edges for other nodes in the graph.
type VerificationRecordEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationRecordEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldReviewerID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case verificationrecord.FieldChecks, verificationrecord.FieldIssues, verificationrecord.FieldCorrections:
			values[i] = new([]byte)
		case verificationrecord.FieldCurrent:
			values[i] = new(sql.NullBool)
		case verificationrecord.FieldScore:
			values[i] = new(sql.NullFloat64)
		case verificationrecord.FieldStatus, verificationrecord.FieldReviewNotes, verificationrecord.FieldRejectionReason:
			values[i] = new(sql.NullString)
		case verificationrecord.FieldCreatedAt, verificationrecord.FieldVerifiedAt, verificationrecord.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		case verificationrecord.FieldID, verificationrecord.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationRecord fields.
func (_m *VerificationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationrecord.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case verificationrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case verificationrecord.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = float32(value.Float64)
			}
		case verificationrecord.FieldChecks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Checks); err != nil {
					return fmt.Errorf("unmarshal field checks: %w", err)
				}
			}
		case verificationrecord.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case verificationrecord.FieldReviewerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_id", values[i])
			} else if value.Valid {
				_m.ReviewerID = new(uuid.UUID)
				*_m.ReviewerID = *value.S.(*uuid.UUID)
			}
		case verificationrecord.FieldReviewNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_notes", values[i])
			} else if value.Valid {
				_m.ReviewNotes = new(string)
				*_m.ReviewNotes = value.String
			}
		case verificationrecord.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				_m.RejectionReason = new(string)
				*_m.RejectionReason = value.String
			}
		case verificationrecord.FieldCorrections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field corrections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Corrections); err != nil {
					return fmt.Errorf("unmarshal field corrections: %w", err)
				}
			}
		case verificationrecord.FieldCurrent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field current", values[i])
			} else if value.Valid {
				_m.Current = value.Bool
			}
		case verificationrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case verificationrecord.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		case verificationrecord.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the VerificationRecord entity.
func (_m *VerificationRecord) QueryDocument() *DocumentQuery {
	return NewVerificationRecordClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this VerificationRecord.
// Note that you need to call VerificationRecord.Unwrap() before calling this method if this VerificationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationRecord) Update() *VerificationRecordUpdateOne {
	return NewVerificationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationRecord) Unwrap() *VerificationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Checks))
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	if v := _m.ReviewerID; v != nil {
		builder.WriteString("reviewer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReviewNotes; v != nil {
		builder.WriteString("review_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RejectionReason; v != nil {
		builder.WriteString("rejection_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("corrections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Corrections))
	builder.WriteString(", ")
	builder.WriteString("current=")
	builder.WriteString(fmt.Sprintf("%v", _m.Current))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationRecords is a parsable slice of VerificationRecord.
type VerificationRecords []*VerificationRecord
