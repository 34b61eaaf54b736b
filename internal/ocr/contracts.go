package ocr

import (
	"context"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
)

// Result is the engine output for one extraction attempt. Status reports
// engine-level failure distinctly from "completed with low confidence":
// a completed Result may still carry arbitrarily low field confidences.
type Result struct {
	RawText        string
	Fields         []entity.ExtractedField
	ClassifiedType constants.DocumentType
	Status         constants.ResultStatus // COMPLETED or FAILED
	FailureReason  string
}

// Engine turns document bytes into text, fields, and a classification guess.
// Vendor adapters implement this; the pipeline never talks to a vendor
// directly. An error return means the call itself failed (transport, timeout)
// and is treated as transient.
type Engine interface {
	Extract(ctx context.Context, data []byte, expectedType constants.DocumentType) (Result, error)
}
