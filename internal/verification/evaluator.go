package verification

import (
	"fmt"
	"strings"

	"github.com/finaid-tools/docverifier/internal/entity"
	"github.com/finaid-tools/docverifier/internal/templates"
)

// Check names recorded on the audit trail.
const (
	CheckClassification = "classification_confidence"
	CheckExtraction     = "extraction_confidence"
	CheckFieldValidity  = "field_validation"
	CheckRequiredFields = "required_fields"
)

// Thresholds are the tunable gates; see PipelineConfig for defaults.
type Thresholds struct {
	AutoApprove    float32
	Review         float32
	Classification float32
}

// Input is everything the evaluator needs from one extraction attempt.
// ClassificationConfidence is 1.0 when the owner declared the type upfront.
type Input struct {
	Result                   entity.ExtractionResult
	ClassificationConfidence float32
}

// Evaluation is the automated-check outcome. AutoApprovable means all checks
// passed, the score clears the auto-approval threshold, and no issues remain.
type Evaluation struct {
	Checks         []entity.Check
	Issues         []string
	Score          float32
	AutoApprovable bool
}

// Evaluate runs the automated checks over an extraction result. The score is
// the overall extraction confidence, so threshold comparisons stay exact.
func Evaluate(in Input, th Thresholds) Evaluation {
	var ev Evaluation
	res := in.Result

	ev.Checks = append(ev.Checks, entity.Check{
		Name:       CheckClassification,
		Passed:     in.ClassificationConfidence >= th.Classification,
		Confidence: in.ClassificationConfidence,
		Detail:     fmt.Sprintf("classified as %s", res.ClassifiedType),
	})
	if in.ClassificationConfidence < th.Classification {
		ev.Issues = append(ev.Issues, fmt.Sprintf("classification confidence %.2f below threshold %.2f", in.ClassificationConfidence, th.Classification))
	}

	ev.Checks = append(ev.Checks, entity.Check{
		Name:       CheckExtraction,
		Passed:     res.OverallConfidence >= th.Review,
		Confidence: res.OverallConfidence,
		Detail:     fmt.Sprintf("%d fields extracted", len(res.Fields)),
	})
	if res.OverallConfidence < th.Review {
		ev.Issues = append(ev.Issues, fmt.Sprintf("extraction confidence %.2f below review threshold %.2f", res.OverallConfidence, th.Review))
	}

	fieldCheck := entity.Check{
		Name:       CheckFieldValidity,
		Passed:     len(res.ValidationErrors) == 0,
		Confidence: 1.0,
	}
	if len(res.ValidationErrors) > 0 {
		fieldCheck.Confidence = 0
		fieldCheck.Detail = strings.Join(res.ValidationErrors, "; ")
		ev.Issues = append(ev.Issues, res.ValidationErrors...)
	}
	ev.Checks = append(ev.Checks, fieldCheck)

	ev.Checks = append(ev.Checks, requiredFieldsCheck(res, &ev.Issues))

	ev.Score = res.OverallConfidence
	ev.AutoApprovable = ev.Score >= th.AutoApprove && len(ev.Issues) == 0 && allPassed(ev.Checks)
	return ev
}

func requiredFieldsCheck(res entity.ExtractionResult, issues *[]string) entity.Check {
	required := templates.RequiredFields(res.ClassifiedType)
	if len(required) == 0 {
		return entity.Check{Name: CheckRequiredFields, Passed: true, Confidence: 1.0, Detail: "no template for type"}
	}
	present := make(map[string]struct{}, len(res.Fields))
	for _, f := range res.Fields {
		present[f.Name] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	check := entity.Check{
		Name:       CheckRequiredFields,
		Passed:     len(missing) == 0,
		Confidence: float32(len(required)-len(missing)) / float32(len(required)),
	}
	if len(missing) > 0 {
		check.Detail = "missing: " + strings.Join(missing, ", ")
		for _, name := range missing {
			*issues = append(*issues, fmt.Sprintf("missing required field: %s", name))
		}
	}
	return check
}

func allPassed(checks []entity.Check) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}
