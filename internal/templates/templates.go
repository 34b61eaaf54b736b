// Package templates describes the expected fields per document type. Templates
// drive the rule-based extraction engine, the payload schema the OCR engine
// output must satisfy, and the required-field verification check.
package templates

import (
	"github.com/finaid-tools/docverifier/constants"
)

// FieldSpec declares one expected field on a document type.
type FieldSpec struct {
	Name     string                  `json:"name"`
	Label    string                  `json:"label"` // human label as printed on the document
	DataType constants.FieldDataType `json:"data_type"`
	Required bool                    `json:"required"`
}

// Template is the extraction contract for one document type.
type Template struct {
	DocumentType constants.DocumentType `json:"document_type"`
	DisplayName  string                 `json:"display_name"`
	Fields       []FieldSpec            `json:"fields"`
}

var registry = map[constants.DocumentType]Template{
	constants.TypeW2: {
		DocumentType: constants.TypeW2,
		DisplayName:  "W-2 Wage and Tax Statement",
		Fields: []FieldSpec{
			{Name: "employer_name", Label: "Employer", DataType: constants.FieldText, Required: true},
			{Name: "employee_ssn", Label: "Employee SSN", DataType: constants.FieldIdentifier, Required: true},
			{Name: "wages", Label: "Wages, tips, other compensation", DataType: constants.FieldCurrency, Required: true},
			{Name: "federal_tax_withheld", Label: "Federal income tax withheld", DataType: constants.FieldCurrency, Required: true},
			{Name: "tax_year", Label: "Tax year", DataType: constants.FieldNumber, Required: true},
		},
	},
	constants.TypeTaxReturn: {
		DocumentType: constants.TypeTaxReturn,
		DisplayName:  "Form 1040 Income Tax Return",
		Fields: []FieldSpec{
			{Name: "filer_name", Label: "Name", DataType: constants.FieldText, Required: true},
			{Name: "filer_ssn", Label: "Social security number", DataType: constants.FieldIdentifier, Required: true},
			{Name: "filing_date", Label: "Filing date", DataType: constants.FieldDate, Required: false},
			{Name: "adjusted_gross_income", Label: "Adjusted gross income", DataType: constants.FieldCurrency, Required: true},
			{Name: "total_tax", Label: "Total tax", DataType: constants.FieldCurrency, Required: true},
		},
	},
	constants.TypeBankStatement: {
		DocumentType: constants.TypeBankStatement,
		DisplayName:  "Bank Statement",
		Fields: []FieldSpec{
			{Name: "account_holder", Label: "Account holder", DataType: constants.FieldText, Required: true},
			{Name: "statement_date", Label: "Statement date", DataType: constants.FieldDate, Required: true},
			{Name: "ending_balance", Label: "Ending balance", DataType: constants.FieldCurrency, Required: true},
			{Name: "contact_email", Label: "Contact email", DataType: constants.FieldEmail, Required: false},
		},
	},
	constants.TypeTranscript: {
		DocumentType: constants.TypeTranscript,
		DisplayName:  "High School Transcript",
		Fields: []FieldSpec{
			{Name: "student_name", Label: "Student", DataType: constants.FieldText, Required: true},
			{Name: "graduation_date", Label: "Graduation date", DataType: constants.FieldDate, Required: false},
			{Name: "gpa", Label: "GPA", DataType: constants.FieldNumber, Required: true},
		},
	},
	constants.TypePayStub: {
		DocumentType: constants.TypePayStub,
		DisplayName:  "Pay Stub",
		Fields: []FieldSpec{
			{Name: "employee_name", Label: "Employee", DataType: constants.FieldText, Required: true},
			{Name: "pay_date", Label: "Pay date", DataType: constants.FieldDate, Required: true},
			{Name: "gross_pay", Label: "Gross pay", DataType: constants.FieldCurrency, Required: true},
			{Name: "net_pay", Label: "Net pay", DataType: constants.FieldCurrency, Required: true},
		},
	},
}

// ForType returns the template for a document type, if one is registered.
// OTHER and UNKNOWN carry no template: extraction is free-form for them.
func ForType(t constants.DocumentType) (Template, bool) {
	tpl, ok := registry[t]
	return tpl, ok
}

// All returns every registered template, for the templates API surface.
func All() []Template {
	out := make([]Template, 0, len(registry))
	for _, t := range DocumentTypesWithTemplates() {
		out = append(out, registry[t])
	}
	return out
}

// DocumentTypesWithTemplates returns template-bearing types in a stable order.
func DocumentTypesWithTemplates() []constants.DocumentType {
	return []constants.DocumentType{
		constants.TypeW2,
		constants.TypeTaxReturn,
		constants.TypeBankStatement,
		constants.TypeTranscript,
		constants.TypePayStub,
	}
}

// RequiredFields lists the required field names for a document type.
func RequiredFields(t constants.DocumentType) []string {
	tpl, ok := registry[t]
	if !ok {
		return nil
	}
	var names []string
	for _, f := range tpl.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}
