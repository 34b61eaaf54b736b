// Package classify guesses a document type from extracted text using keyword
// signals. It is the fallback when the declared type is UNKNOWN and the OCR
// engine returns no classification of its own.
package classify

import (
	"log/slog"
	"strings"

	"github.com/finaid-tools/docverifier/constants"
)

// signal is one keyword rule: primary keywords identify the type, supporting
// keywords raise confidence when they co-occur.
type signal struct {
	docType    constants.DocumentType
	primary    []string
	supporting []string
	base       float32
}

var signals = []signal{
	{
		docType:    constants.TypeW2,
		primary:    []string{"w-2", "wage and tax statement"},
		supporting: []string{"employer identification", "wages, tips", "federal income tax withheld"},
		base:       0.85,
	},
	{
		docType:    constants.TypeTaxReturn,
		primary:    []string{"form 1040", "1040", "income tax return"},
		supporting: []string{"adjusted gross income", "filing status", "taxable income"},
		base:       0.80,
	},
	{
		docType:    constants.TypeBankStatement,
		primary:    []string{"bank statement", "account summary"},
		supporting: []string{"beginning balance", "ending balance", "deposits"},
		base:       0.80,
	},
	{
		docType:    constants.TypeTranscript,
		primary:    []string{"transcript"},
		supporting: []string{"high school", "gpa", "credits earned", "graduation"},
		base:       0.70,
	},
	{
		docType:    constants.TypePayStub,
		primary:    []string{"pay stub", "earnings statement", "pay period"},
		supporting: []string{"gross pay", "net pay", "year to date"},
		base:       0.80,
	},
}

const supportBoost = 0.05

// Classification is a best-guess type with a confidence in [0,1].
type Classification struct {
	DocumentType constants.DocumentType
	Confidence   float32
}

type Classifier struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{logger: logger}
}

// Classify scans text for type signals and returns the strongest match.
// No signal, or no text at all, yields OTHER with confidence 0; it never
// returns an error.
func (c *Classifier) Classify(text string) Classification {
	if strings.TrimSpace(text) == "" {
		return Classification{DocumentType: constants.TypeOther, Confidence: 0}
	}
	lower := strings.ToLower(text)

	best := Classification{DocumentType: constants.TypeOther, Confidence: 0}
	for _, sig := range signals {
		score := score(lower, sig)
		if score > best.Confidence {
			best = Classification{DocumentType: sig.docType, Confidence: score}
		}
	}
	if best.Confidence > 0 {
		c.logger.Debug("classified document text", "type", best.DocumentType, "confidence", best.Confidence)
	}
	return best
}

func score(lower string, sig signal) float32 {
	matched := false
	for _, kw := range sig.primary {
		if strings.Contains(lower, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return 0
	}
	conf := sig.base
	for _, kw := range sig.supporting {
		if strings.Contains(lower, kw) {
			conf += supportBoost
		}
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
