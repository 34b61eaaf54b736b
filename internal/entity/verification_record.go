package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
)

// Check is one named automated verification check with its own confidence.
type Check struct {
	Name       string  `json:"name"`
	Passed     bool    `json:"passed"`
	Confidence float32 `json:"confidence"`
	Detail     string  `json:"detail,omitempty"`
}

// VerificationRecord is the approval/rejection audit trail for a document.
type VerificationRecord struct {
	ID              uuid.UUID                    `json:"id"`
	DocumentID      uuid.UUID                    `json:"document_id"`
	Status          constants.VerificationStatus `json:"status"`
	Score           float32                      `json:"score"`
	Checks          []Check                      `json:"checks,omitempty"`
	Issues          []string                     `json:"issues,omitempty"`
	ReviewerID      *uuid.UUID                   `json:"reviewer_id,omitempty"`
	ReviewNotes     *string                      `json:"review_notes,omitempty"`
	RejectionReason *string                      `json:"rejection_reason,omitempty"`
	Corrections     []string                     `json:"corrections,omitempty"`
	Current         bool                         `json:"current"`
	CreatedAt       time.Time                    `json:"created_at"`
	VerifiedAt      *time.Time                   `json:"verified_at,omitempty"`
	ExpiresAt       *time.Time                   `json:"expires_at,omitempty"`
}
