package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/classify"
	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/templates"
	"github.com/finaid-tools/docverifier/internal/validate"
)

// RuleEngine is a deterministic, template-driven Engine for local runs and
// tests. It treats the document bytes as plain text and lifts fields by
// matching template labels line by line. Vendor OCR adapters replace it in
// production deployments.
type RuleEngine struct {
	classifier *classify.Classifier
	logger     *slog.Logger
}

func NewRuleEngine(logger *slog.Logger) *RuleEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &RuleEngine{classifier: classify.New(logger), logger: logger}
}

func (e *RuleEngine) Extract(_ context.Context, data []byte, expectedType constants.DocumentType) (Result, error) {
	if len(data) == 0 || !utf8.Valid(data) {
		// engine-reported failure, not a transport error
		return Result{
			Status:        constants.ResultFailed,
			FailureReason: "document bytes are not readable text",
		}, nil
	}
	text := string(data)

	cls := e.classifier.Classify(text)
	docType := expectedType
	if docType == constants.TypeUnknown {
		docType = cls.DocumentType
	}

	var fields []entity.ExtractedField
	if tpl, ok := templates.ForType(docType); ok {
		for _, spec := range tpl.Fields {
			value, ok := matchLabel(text, spec.Label)
			if !ok {
				continue
			}
			conf := fieldConfidence(spec, value)
			fields = append(fields, entity.ExtractedField{
				Name:       spec.Name,
				Value:      value,
				DataType:   spec.DataType,
				Confidence: &conf,
			})
		}
	}

	e.logger.Debug("rule engine extraction",
		"expected_type", expectedType, "classified_type", docType,
		"fields", len(fields), "text_bytes", len(text),
	)
	return Result{
		RawText:        text,
		Fields:         fields,
		ClassifiedType: docType,
		Status:         constants.ResultCompleted,
	}, nil
}

// matchLabel finds "Label: value" (or "Label value") on a single line,
// case-insensitive.
func matchLabel(text, label string) (string, bool) {
	re, err := regexp.Compile(`(?im)^\s*` + regexp.QuoteMeta(label) + `\s*[:#]?\s*(.+)$`)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// fieldConfidence scores a lifted value: a label hit starts at 0.7 and a value
// that validates under its declared type adds 0.25.
func fieldConfidence(spec templates.FieldSpec, value string) float32 {
	conf := float32(0.7)
	if validate.Field(spec.DataType, value) == "" {
		conf += 0.25
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// ValidatingEngine decorates an Engine with payload-schema validation; a
// malformed payload is surfaced as an engine failure so the retry path, not
// the review path, handles it.
type ValidatingEngine struct {
	inner  Engine
	logger *slog.Logger
}

func NewValidatingEngine(inner Engine, logger *slog.Logger) *ValidatingEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValidatingEngine{inner: inner, logger: logger}
}

func (e *ValidatingEngine) Extract(ctx context.Context, data []byte, expectedType constants.DocumentType) (Result, error) {
	res, err := e.inner.Extract(ctx, data, expectedType)
	if err != nil || res.Status == constants.ResultFailed {
		return res, err
	}
	if len(res.Fields) == 0 {
		return res, nil
	}
	if err := ValidateFieldsPayload(BuildFieldsJSONSchema(), res.Fields); err != nil {
		e.logger.Error("engine payload rejected", "expected_type", expectedType, "error", err)
		return Result{}, fmt.Errorf("engine payload: %w", err)
	}
	return res, nil
}
