package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID                    uuid.UUID                `json:"id"`
	OwnerID               uuid.UUID                `json:"owner_id"`
	DeclaredType          constants.DocumentType   `json:"declared_type"`
	Status                constants.DocumentStatus `json:"status"`
	StoragePath           string                   `json:"storage_path"`
	ContentHash           []byte                   `json:"content_hash"`
	Filename              string                   `json:"filename"`
	FileExt               string                   `json:"file_ext"`
	FileSize              int                      `json:"file_size"`
	UploadedAt            time.Time                `json:"uploaded_at"`
	JobToken              *uuid.UUID               `json:"job_token,omitempty"`
	RetryCount            int                      `json:"retry_count"`
	NextRetryAt           *time.Time               `json:"next_retry_at,omitempty"`
	ProcessingStartedAt   *time.Time               `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time               `json:"processing_completed_at,omitempty"`
	LastError             *string                  `json:"last_error,omitempty"`
}
