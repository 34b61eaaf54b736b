package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
)

var testThresholds = Thresholds{
	AutoApprove:    0.90,
	Review:         0.80,
	Classification: 0.85,
}

func w2Fields() []entity.ExtractedField {
	return []entity.ExtractedField{
		{Name: "employer_name", Value: "Acme Corp"},
		{Name: "employee_ssn", Value: "123-45-6789"},
		{Name: "wages", Value: "52000.00"},
		{Name: "federal_tax_withheld", Value: "4800.00"},
		{Name: "tax_year", Value: "2024"},
	}
}

func TestEvaluate_AllChecksPassAtAutoApproveBoundary(t *testing.T) {
	// exactly at the threshold: >= must auto-approve
	ev := Evaluate(Input{
		Result: entity.ExtractionResult{
			ClassifiedType:    constants.TypeW2,
			OverallConfidence: 0.90,
			Fields:            w2Fields(),
			Status:            constants.ResultCompleted,
		},
		ClassificationConfidence: 1.0,
	}, testThresholds)

	assert.True(t, ev.AutoApprovable)
	assert.Equal(t, float32(0.90), ev.Score)
	assert.Empty(t, ev.Issues)
	require.Len(t, ev.Checks, 4)
	for _, c := range ev.Checks {
		assert.True(t, c.Passed, c.Name)
	}
}

func TestEvaluate_JustBelowAutoApproveBoundary(t *testing.T) {
	ev := Evaluate(Input{
		Result: entity.ExtractionResult{
			ClassifiedType:    constants.TypeW2,
			OverallConfidence: 0.8999,
			Fields:            w2Fields(),
			Status:            constants.ResultCompleted,
		},
		ClassificationConfidence: 1.0,
	}, testThresholds)

	// above the review threshold so every check passes, yet not auto-approvable
	assert.False(t, ev.AutoApprovable)
	assert.Empty(t, ev.Issues)
}

func TestEvaluate_LowExtractionConfidenceFailsCheck(t *testing.T) {
	ev := Evaluate(Input{
		Result: entity.ExtractionResult{
			ClassifiedType:    constants.TypeW2,
			OverallConfidence: 0.60,
			Fields:            w2Fields(),
		},
		ClassificationConfidence: 1.0,
	}, testThresholds)

	assert.False(t, ev.AutoApprovable)
	assert.NotEmpty(t, ev.Issues)
	var extraction *entity.Check
	for i := range ev.Checks {
		if ev.Checks[i].Name == CheckExtraction {
			extraction = &ev.Checks[i]
		}
	}
	require.NotNil(t, extraction)
	assert.False(t, extraction.Passed)
}

func TestEvaluate_LowClassificationConfidenceBlocksAutoApproval(t *testing.T) {
	ev := Evaluate(Input{
		Result: entity.ExtractionResult{
			ClassifiedType:    constants.TypeW2,
			OverallConfidence: 0.95,
			Fields:            w2Fields(),
		},
		ClassificationConfidence: 0.70,
	}, testThresholds)

	assert.False(t, ev.AutoApprovable)
	assert.Contains(t, ev.Issues[0], "classification confidence")
}

func TestEvaluate_ValidationErrorsBecomeIssues(t *testing.T) {
	ev := Evaluate(Input{
		Result: entity.ExtractionResult{
			ClassifiedType:    constants.TypeW2,
			OverallConfidence: 0.95,
			Fields:            w2Fields(),
			ValidationErrors:  []string{`wages: "abc" is not a valid currency amount`},
		},
		ClassificationConfidence: 1.0,
	}, testThresholds)

	assert.False(t, ev.AutoApprovable)
	assert.Contains(t, ev.Issues, `wages: "abc" is not a valid currency amount`)
}

func TestEvaluate_MissingRequiredFields(t *testing.T) {
	ev := Evaluate(Input{
		Result: entity.ExtractionResult{
			ClassifiedType:    constants.TypeW2,
			OverallConfidence: 0.95,
			Fields: []entity.ExtractedField{
				{Name: "employer_name", Value: "Acme Corp"},
				{Name: "wages", Value: "52000.00"},
			},
		},
		ClassificationConfidence: 1.0,
	}, testThresholds)

	assert.False(t, ev.AutoApprovable)
	assert.Contains(t, ev.Issues, "missing required field: employee_ssn")
	assert.Contains(t, ev.Issues, "missing required field: federal_tax_withheld")
	assert.Contains(t, ev.Issues, "missing required field: tax_year")
}

func TestEvaluate_UntemplatedTypeSkipsRequiredFieldCheck(t *testing.T) {
	ev := Evaluate(Input{
		Result: entity.ExtractionResult{
			ClassifiedType:    constants.TypeOther,
			OverallConfidence: 0.95,
		},
		ClassificationConfidence: 1.0,
	}, testThresholds)

	var required *entity.Check
	for i := range ev.Checks {
		if ev.Checks[i].Name == CheckRequiredFields {
			required = &ev.Checks[i]
		}
	}
	require.NotNil(t, required)
	assert.True(t, required.Passed)
}
