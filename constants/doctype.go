package constants

import "strings"

// DocumentType is the declared or classified kind of an uploaded document.
type DocumentType string

const (
	TypeUnknown       DocumentType = "UNKNOWN" // declared type not provided; classifier decides
	TypeW2            DocumentType = "W2"
	TypeTaxReturn     DocumentType = "TAX_RETURN"
	TypeBankStatement DocumentType = "BANK_STATEMENT"
	TypeTranscript    DocumentType = "TRANSCRIPT"
	TypePayStub       DocumentType = "PAY_STUB"
	TypeOther         DocumentType = "OTHER" // classifier fallback, low confidence
)

// DocumentTypes holds every allowed document type value.
var DocumentTypes = []string{
	string(TypeUnknown),
	string(TypeW2),
	string(TypeTaxReturn),
	string(TypeBankStatement),
	string(TypeTranscript),
	string(TypePayStub),
	string(TypeOther),
}

// ParseDocumentType maps a free-form label to a DocumentType, defaulting to UNKNOWN.
func ParseDocumentType(s string) DocumentType {
	v := DocumentType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range DocumentTypes {
		if string(v) == t {
			return v
		}
	}
	return TypeUnknown
}
