package constants

// DocumentStatus is the canonical status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentUploaded     DocumentStatus = "UPLOADED"      // awaiting pickup (fresh upload or retry-eligible)
	DocumentProcessing   DocumentStatus = "PROCESSING"    // claimed by a worker
	DocumentManualReview DocumentStatus = "MANUAL_REVIEW" // routed to a human reviewer
	DocumentAutoApproved DocumentStatus = "AUTO_APPROVED" // passed automated checks, promotion pending
	DocumentApproved     DocumentStatus = "APPROVED"      // terminal
	DocumentRejected     DocumentStatus = "REJECTED"      // terminal
	DocumentExpired      DocumentStatus = "EXPIRED"       // terminal
)

// Terminal reports whether no further automated transition may occur.
func (s DocumentStatus) Terminal() bool {
	switch s {
	case DocumentApproved, DocumentRejected, DocumentExpired:
		return true
	}
	return false
}

// DocumentStatuses holds every allowed document status value.
var DocumentStatuses = []string{
	string(DocumentUploaded),
	string(DocumentProcessing),
	string(DocumentManualReview),
	string(DocumentAutoApproved),
	string(DocumentApproved),
	string(DocumentRejected),
	string(DocumentExpired),
}

// VerificationStatus is the state-machine state stored on verification_records.
type VerificationStatus string

const (
	VerificationPending      VerificationStatus = "PENDING"
	VerificationInProgress   VerificationStatus = "IN_PROGRESS"
	VerificationAutoApproved VerificationStatus = "AUTO_APPROVED"
	VerificationManualReview VerificationStatus = "MANUAL_REVIEW_REQUIRED"
	VerificationApproved     VerificationStatus = "APPROVED"
	VerificationRejected     VerificationStatus = "REJECTED"
	VerificationExpired      VerificationStatus = "EXPIRED"
)

// Terminal reports whether the record is immutable.
func (s VerificationStatus) Terminal() bool {
	switch s {
	case VerificationApproved, VerificationRejected, VerificationExpired:
		return true
	}
	return false
}

// VerificationStatuses holds every allowed verification status value.
var VerificationStatuses = []string{
	string(VerificationPending),
	string(VerificationInProgress),
	string(VerificationAutoApproved),
	string(VerificationManualReview),
	string(VerificationApproved),
	string(VerificationRejected),
	string(VerificationExpired),
}

// ResultStatus is the per-attempt outcome stored on extraction_results.
type ResultStatus string

const (
	ResultCompleted      ResultStatus = "COMPLETED"
	ResultFailed         ResultStatus = "FAILED"
	ResultRequiresReview ResultStatus = "REQUIRES_REVIEW"
)

// ResultStatuses holds every allowed result status value.
var ResultStatuses = []string{
	string(ResultCompleted),
	string(ResultFailed),
	string(ResultRequiresReview),
}
