// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionResult is the predicate function for extractionresult builders.
type ExtractionResult func(*sql.Selector)

// VerificationRecord is the predicate function for verificationrecord builders.
type VerificationRecord func(*sql.Selector)
