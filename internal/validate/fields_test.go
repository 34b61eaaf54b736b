package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
)

func TestField_Currency(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain", "52000", true},
		{"decimal", "52000.50", true},
		{"dollar sign", "$52,000.00", true},
		{"euro sign", "€1.234", true},
		{"negative", "-125.40", true},
		{"spaces", "$ 1 200", true},
		{"letters", "fifty dollars", false},
		{"empty", "", false},
		{"trailing dot", "100.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Field(constants.FieldCurrency, tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestField_Date(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"iso", "2025-06-30", true},
		{"us slashes", "06/30/2025", true},
		{"us short", "6/3/2025", true},
		{"us dashes", "06-30-2025", true},
		{"long form", "June 30, 2025", true},
		{"short month", "Jun 30, 2025", true},
		{"garbage", "yesterday", false},
		{"empty", "", false},
		{"impossible", "2025-13-45", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Field(constants.FieldDate, tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestField_Number(t *testing.T) {
	assert.Empty(t, Field(constants.FieldNumber, "3.85"))
	assert.Empty(t, Field(constants.FieldNumber, "1,234.5"))
	assert.Empty(t, Field(constants.FieldNumber, "-7"))
	assert.NotEmpty(t, Field(constants.FieldNumber, "three"))
	assert.NotEmpty(t, Field(constants.FieldNumber, ""))
}

func TestField_Identifier(t *testing.T) {
	assert.Empty(t, Field(constants.FieldIdentifier, "123-45-6789"))
	assert.Empty(t, Field(constants.FieldIdentifier, "123456789"))
	assert.Empty(t, Field(constants.FieldIdentifier, "123 45 6789"))
	assert.NotEmpty(t, Field(constants.FieldIdentifier, "12345678"))
	assert.NotEmpty(t, Field(constants.FieldIdentifier, "1234567890"))
	assert.NotEmpty(t, Field(constants.FieldIdentifier, "12345678a"))
}

func TestField_Email(t *testing.T) {
	assert.Empty(t, Field(constants.FieldEmail, "student@example.edu"))
	assert.NotEmpty(t, Field(constants.FieldEmail, "not-an-email"))
	assert.NotEmpty(t, Field(constants.FieldEmail, ""))
	// display-name forms are not bare addresses
	assert.NotEmpty(t, Field(constants.FieldEmail, "Jordan <jordan@example.edu>"))
}

func TestField_TextAndUnknownTypesPass(t *testing.T) {
	assert.Empty(t, Field(constants.FieldText, "anything at all"))
	assert.Empty(t, Field(constants.FieldDataType("mystery"), "opaque"))
}

func TestFields_CollectsNamedMessages(t *testing.T) {
	fields := []entity.ExtractedField{
		{Name: "wages", Value: "$52,000.00", DataType: constants.FieldCurrency},
		{Name: "pay_date", Value: "someday", DataType: constants.FieldDate},
		{Name: "gpa", Value: "4.0", DataType: constants.FieldNumber},
		{Name: "employee_ssn", Value: "12-34", DataType: constants.FieldIdentifier},
	}
	msgs := Fields(fields)
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "pay_date: ")
	assert.Contains(t, msgs[1], "employee_ssn: ")
}

func TestFields_AllValidReturnsNil(t *testing.T) {
	fields := []entity.ExtractedField{
		{Name: "wages", Value: "52000", DataType: constants.FieldCurrency},
		{Name: "tax_year", Value: "2024", DataType: constants.FieldNumber},
	}
	assert.Empty(t, Fields(fields))
}
