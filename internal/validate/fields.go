// Package validate checks extracted field values against their declared data
// types. Validators are pure: they return a human-readable message or "" and
// never fail on unknown types.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/entity"
)

var (
	reDecimal   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	reSeparator = regexp.MustCompile(`[-\s.]`)
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// validators dispatches by declared data type; adding a document field type
// means adding one entry here.
var validators = map[constants.FieldDataType]func(string) string{
	constants.FieldCurrency:   validateCurrency,
	constants.FieldDate:       validateDate,
	constants.FieldNumber:     validateNumber,
	constants.FieldIdentifier: validateIdentifier,
	constants.FieldEmail:      validateEmail,
	constants.FieldText:       func(string) string { return "" },
}

// Field returns a validation message for value under the declared data type,
// or "" when valid. Unrecognized data types are treated as opaque text.
func Field(dataType constants.FieldDataType, value string) string {
	v, ok := validators[dataType]
	if !ok {
		return ""
	}
	return v(strings.TrimSpace(value))
}

// Fields runs Field over every extracted field and collects messages of the
// form "name: message".
func Fields(fields []entity.ExtractedField) []string {
	var msgs []string
	for _, f := range fields {
		if msg := Field(f.DataType, f.Value); msg != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", f.Name, msg))
		}
	}
	return msgs
}

func validateCurrency(v string) string {
	if v == "" {
		return "currency value is empty"
	}
	s := strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(v)
	if !reDecimal.MatchString(s) {
		return fmt.Sprintf("%q is not a valid currency amount", v)
	}
	return ""
}

func validateDate(v string) string {
	if v == "" {
		return "date value is empty"
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return ""
		}
	}
	return fmt.Sprintf("%q is not a valid date", v)
}

func validateNumber(v string) string {
	if v == "" {
		return "numeric value is empty"
	}
	s := strings.ReplaceAll(v, ",", "")
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Sprintf("%q is not a valid number", v)
	}
	return ""
}

// validateIdentifier accepts SSN-style identifiers: 9 digits once separators
// are stripped.
func validateIdentifier(v string) string {
	s := reSeparator.ReplaceAllString(v, "")
	if len(s) != 9 {
		return fmt.Sprintf("identifier must be 9 digits, got %d", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "identifier must contain only digits"
		}
	}
	return ""
}

func validateEmail(v string) string {
	if v == "" {
		return "email value is empty"
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return fmt.Sprintf("%q is not a valid email address", v)
	}
	return ""
}
