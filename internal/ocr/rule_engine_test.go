package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
)

const w2Text = `W-2 Wage and Tax Statement
Employer: Acme Corp
Employee SSN: 123-45-6789
Wages, tips, other compensation: 52000.00
Federal income tax withheld: 4800.00
Tax year: 2024`

func TestRuleEngine_ExtractsTemplateFields(t *testing.T) {
	e := NewRuleEngine(nil)
	res, err := e.Extract(context.Background(), []byte(w2Text), constants.TypeW2)
	require.NoError(t, err)

	assert.Equal(t, constants.ResultCompleted, res.Status)
	assert.Equal(t, constants.TypeW2, res.ClassifiedType)
	assert.Equal(t, w2Text, res.RawText)
	require.Len(t, res.Fields, 5)

	byName := map[string]entity.ExtractedField{}
	for _, f := range res.Fields {
		byName[f.Name] = f
	}
	assert.Equal(t, "Acme Corp", byName["employer_name"].Value)
	assert.Equal(t, "123-45-6789", byName["employee_ssn"].Value)
	assert.Equal(t, "52000.00", byName["wages"].Value)
	assert.Equal(t, "2024", byName["tax_year"].Value)

	// a label hit with a validating value scores 0.95
	for name, f := range byName {
		require.NotNil(t, f.Confidence, name)
		assert.InDelta(t, 0.95, *f.Confidence, 0.001, name)
	}
}

func TestRuleEngine_InvalidValueLowersConfidence(t *testing.T) {
	e := NewRuleEngine(nil)
	text := "W-2 Wage and Tax Statement\nWages, tips, other compensation: illegible"
	res, err := e.Extract(context.Background(), []byte(text), constants.TypeW2)
	require.NoError(t, err)

	require.Len(t, res.Fields, 1)
	require.NotNil(t, res.Fields[0].Confidence)
	assert.InDelta(t, 0.70, *res.Fields[0].Confidence, 0.001)
}

func TestRuleEngine_UnknownTypeFallsBackToClassifier(t *testing.T) {
	e := NewRuleEngine(nil)
	res, err := e.Extract(context.Background(), []byte(w2Text), constants.TypeUnknown)
	require.NoError(t, err)
	assert.Equal(t, constants.TypeW2, res.ClassifiedType)
	assert.NotEmpty(t, res.Fields)
}

func TestRuleEngine_UnreadableBytesFailWithoutError(t *testing.T) {
	e := NewRuleEngine(nil)
	for _, data := range [][]byte{nil, {}, {0xff, 0xfe, 0xfd}} {
		res, err := e.Extract(context.Background(), data, constants.TypeW2)
		require.NoError(t, err)
		assert.Equal(t, constants.ResultFailed, res.Status)
		assert.NotEmpty(t, res.FailureReason)
	}
}

func TestRuleEngine_UntemplatedTypeYieldsNoFields(t *testing.T) {
	e := NewRuleEngine(nil)
	res, err := e.Extract(context.Background(), []byte("a handwritten note"), constants.TypeOther)
	require.NoError(t, err)
	assert.Equal(t, constants.ResultCompleted, res.Status)
	assert.Empty(t, res.Fields)
}

func TestValidateFieldsPayload(t *testing.T) {
	schema := BuildFieldsJSONSchema()
	conf := float32(0.9)

	err := ValidateFieldsPayload(schema, []entity.ExtractedField{
		{Name: "wages", Value: "52000", DataType: constants.FieldCurrency, Confidence: &conf},
	})
	assert.NoError(t, err)

	err = ValidateFieldsPayload(schema, []entity.ExtractedField{
		{Name: "wages", Value: "52000", DataType: constants.FieldDataType("made_up")},
	})
	assert.Error(t, err)

	err = ValidateFieldsPayload(schema, []entity.ExtractedField{
		{Name: "", Value: "52000", DataType: constants.FieldCurrency},
	})
	assert.Error(t, err)
}

type scriptedEngine struct {
	res Result
	err error
}

func (s *scriptedEngine) Extract(context.Context, []byte, constants.DocumentType) (Result, error) {
	return s.res, s.err
}

func TestValidatingEngine_RejectsMalformedPayload(t *testing.T) {
	inner := &scriptedEngine{res: Result{
		Status: constants.ResultCompleted,
		Fields: []entity.ExtractedField{
			{Name: "wages", Value: "52000", DataType: constants.FieldDataType("bogus")},
		},
	}}
	e := NewValidatingEngine(inner, nil)

	_, err := e.Extract(context.Background(), []byte("x"), constants.TypeW2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine payload")
}

func TestValidatingEngine_PassesThroughFailuresAndErrors(t *testing.T) {
	failed := &scriptedEngine{res: Result{Status: constants.ResultFailed, FailureReason: "blurred scan"}}
	e := NewValidatingEngine(failed, nil)
	res, err := e.Extract(context.Background(), []byte("x"), constants.TypeW2)
	require.NoError(t, err)
	assert.Equal(t, constants.ResultFailed, res.Status)

	boom := errors.New("vendor timeout")
	e = NewValidatingEngine(&scriptedEngine{err: boom}, nil)
	_, err = e.Extract(context.Background(), []byte("x"), constants.TypeW2)
	assert.ErrorIs(t, err, boom)
}
