package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finaid-tools/docverifier/constants"
)

func TestClassify_W2(t *testing.T) {
	c := New(nil)
	text := `Form W-2 Wage and Tax Statement
Employer identification number: 12-3456789
Wages, tips, other compensation: 52000.00
Federal income tax withheld: 4800.00`

	cls := c.Classify(text)
	assert.Equal(t, constants.TypeW2, cls.DocumentType)
	// base 0.85 plus three supporting keyword boosts
	assert.InDelta(t, 1.0, cls.Confidence, 0.001)
}

func TestClassify_BankStatement(t *testing.T) {
	c := New(nil)
	cls := c.Classify("Monthly Bank Statement\nBeginning balance: 100.00\nEnding balance: 250.00")
	assert.Equal(t, constants.TypeBankStatement, cls.DocumentType)
	assert.InDelta(t, 0.90, cls.Confidence, 0.001)
}

func TestClassify_PrimaryKeywordAloneUsesBase(t *testing.T) {
	c := New(nil)
	cls := c.Classify("official transcript")
	assert.Equal(t, constants.TypeTranscript, cls.DocumentType)
	assert.InDelta(t, 0.70, cls.Confidence, 0.001)
}

func TestClassify_NoSignalYieldsOther(t *testing.T) {
	c := New(nil)
	cls := c.Classify("a grocery list: eggs, milk, bread")
	assert.Equal(t, constants.TypeOther, cls.DocumentType)
	assert.Zero(t, cls.Confidence)
}

func TestClassify_EmptyTextYieldsOther(t *testing.T) {
	c := New(nil)
	for _, text := range []string{"", "   ", "\n\t"} {
		cls := c.Classify(text)
		assert.Equal(t, constants.TypeOther, cls.DocumentType)
		assert.Zero(t, cls.Confidence)
	}
}

func TestClassify_StrongestSignalWins(t *testing.T) {
	c := New(nil)
	// transcript primary appears but the W-2 signal scores higher
	text := "W-2 wage and tax statement\nwages, tips\ntranscript attached"
	cls := c.Classify(text)
	assert.Equal(t, constants.TypeW2, cls.DocumentType)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := New(nil)
	cls := c.Classify("PAY STUB\nGROSS PAY: 2100.00")
	assert.Equal(t, constants.TypePayStub, cls.DocumentType)
}
