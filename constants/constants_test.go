package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocumentType(t *testing.T) {
	assert.Equal(t, TypeW2, ParseDocumentType("W2"))
	assert.Equal(t, TypeW2, ParseDocumentType("w2"))
	assert.Equal(t, TypeTaxReturn, ParseDocumentType(" tax_return "))
	assert.Equal(t, TypeUnknown, ParseDocumentType(""))
	assert.Equal(t, TypeUnknown, ParseDocumentType("receipt"))
}

func TestDocumentStatusTerminal(t *testing.T) {
	assert.True(t, DocumentApproved.Terminal())
	assert.True(t, DocumentRejected.Terminal())
	assert.True(t, DocumentExpired.Terminal())
	assert.False(t, DocumentUploaded.Terminal())
	assert.False(t, DocumentProcessing.Terminal())
	assert.False(t, DocumentManualReview.Terminal())
}

func TestVerificationStatusTerminal(t *testing.T) {
	assert.True(t, VerificationApproved.Terminal())
	assert.True(t, VerificationRejected.Terminal())
	assert.True(t, VerificationExpired.Terminal())
	assert.False(t, VerificationPending.Terminal())
	assert.False(t, VerificationManualReview.Terminal())
}

func TestIsAllowedExt(t *testing.T) {
	assert.True(t, IsAllowedExt(".PDF"))
	assert.True(t, IsAllowedExt("txt"))
	assert.True(t, IsAllowedExt(".jpeg"))
	assert.False(t, IsAllowedExt(".docx"))
	assert.False(t, IsAllowedExt(""))
}
