package constants

// FieldDataType tags the declared type of an extracted field value.
type FieldDataType string

const (
	FieldCurrency   FieldDataType = "currency"
	FieldDate       FieldDataType = "date"
	FieldNumber     FieldDataType = "number"
	FieldText       FieldDataType = "text"
	FieldIdentifier FieldDataType = "identifier" // SSN-style, 9 digits after stripping separators
	FieldEmail      FieldDataType = "email"
)
