package utils

import (
	"encoding/hex"
	"time"

	v1 "github.com/finaid-tools/docverifier/gen/proto/docverify/v1"
	"github.com/finaid-tools/docverifier/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBDocument(d *entity.Document) *v1.Document {
	return &v1.Document{
		Id:             d.ID.String(),
		OwnerId:        d.OwnerID.String(),
		DeclaredType:   string(d.DeclaredType),
		Status:         string(d.Status),
		Filename:       d.Filename,
		ContentHashHex: hex.EncodeToString(d.ContentHash),
		FileSize:       int64(d.FileSize),
		UploadedAt:     d.UploadedAt.UTC().Format(time.RFC3339),
		RetryCount:     int32(d.RetryCount),
		NextRetryAt:    timeOrEmpty(d.NextRetryAt),
		LastError:      strOrEmpty(d.LastError),
	}
}

func ToPBExtractionResult(r *entity.ExtractionResult) *v1.ExtractionResult {
	fields := make([]*v1.ExtractedField, 0, len(r.Fields))
	for _, f := range r.Fields {
		pb := &v1.ExtractedField{
			Name:               f.Name,
			Value:              f.Value,
			DataType:           string(f.DataType),
			RequiresValidation: f.RequiresValidation,
		}
		if f.Confidence != nil {
			pb.Confidence = *f.Confidence
			pb.HasConfidence = true
		}
		fields = append(fields, pb)
	}
	return &v1.ExtractionResult{
		Id:                r.ID.String(),
		DocumentId:        r.DocumentID.String(),
		ClassifiedType:    string(r.ClassifiedType),
		OverallConfidence: r.OverallConfidence,
		Fields:            fields,
		ValidationErrors:  r.ValidationErrors,
		Status:            string(r.Status),
		ErrorMessage:      strOrEmpty(r.ErrorMessage),
		ProcessedAt:       r.ProcessedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBVerificationRecord(rec *entity.VerificationRecord) *v1.VerificationRecord {
	checks := make([]*v1.Check, 0, len(rec.Checks))
	for _, c := range rec.Checks {
		checks = append(checks, &v1.Check{
			Name:       c.Name,
			Passed:     c.Passed,
			Confidence: c.Confidence,
			Detail:     c.Detail,
		})
	}
	out := &v1.VerificationRecord{
		Id:              rec.ID.String(),
		DocumentId:      rec.DocumentID.String(),
		Status:          string(rec.Status),
		Score:           rec.Score,
		Checks:          checks,
		Issues:          rec.Issues,
		ReviewNotes:     strOrEmpty(rec.ReviewNotes),
		RejectionReason: strOrEmpty(rec.RejectionReason),
		Corrections:     rec.Corrections,
		CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339),
		VerifiedAt:      timeOrEmpty(rec.VerifiedAt),
		ExpiresAt:       timeOrEmpty(rec.ExpiresAt),
	}
	if rec.ReviewerID != nil {
		out.ReviewerId = rec.ReviewerID.String()
	}
	return out
}
