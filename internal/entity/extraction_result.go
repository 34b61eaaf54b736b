package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
)

// ExtractedField is one named value lifted from a document.
type ExtractedField struct {
	Name               string                  `json:"name"`
	Value              string                  `json:"value"`
	DataType           constants.FieldDataType `json:"data_type"`
	Confidence         *float32                `json:"confidence,omitempty"`
	RequiresValidation bool                    `json:"requires_validation"`
}

// ExtractionResult is the one-per-document-per-attempt OCR outcome.
type ExtractionResult struct {
	ID                uuid.UUID              `json:"id"`
	DocumentID        uuid.UUID              `json:"document_id"`
	ClassifiedType    constants.DocumentType `json:"classified_type"`
	OverallConfidence float32                `json:"overall_confidence"`
	RawText           string                 `json:"raw_text,omitempty"`
	Fields            []ExtractedField       `json:"fields,omitempty"`
	ValidationErrors  []string               `json:"validation_errors,omitempty"`
	Status            constants.ResultStatus `json:"status"`
	ErrorMessage      *string                `json:"error_message,omitempty"`
	ProcessedAt       time.Time              `json:"processed_at"`
}

// MeanConfidence returns the arithmetic mean of the confidences of all fields
// that carry one, or 0.0 when none do.
func MeanConfidence(fields []ExtractedField) float32 {
	var sum float64
	var n int
	for _, f := range fields {
		if f.Confidence == nil {
			continue
		}
		sum += float64(*f.Confidence)
		n++
	}
	if n == 0 {
		return 0
	}
	return float32(sum / float64(n))
}
