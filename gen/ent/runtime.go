// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finaid-tools/docverifier/db/ent/schema"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescDeclaredType is the schema descriptor for declared_type field.
	documentDescDeclaredType := documentFields[2].Descriptor()
	// document.DefaultDeclaredType holds the default value on creation for the declared_type field.
	document.DefaultDeclaredType = documentDescDeclaredType.Default.(string)
	// document.DeclaredTypeValidator is a validator for the "declared_type" field. It is called by the builders before save.
	document.DeclaredTypeValidator = documentDescDeclaredType.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[3].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[4].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[5].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[6].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[7].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[8].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[9].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescRetryCount is the schema descriptor for retry_count field.
	documentDescRetryCount := documentFields[11].Descriptor()
	// document.DefaultRetryCount holds the default value on creation for the retry_count field.
	document.DefaultRetryCount = documentDescRetryCount.Default.(int)
	// document.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	document.RetryCountValidator = documentDescRetryCount.Validators[0].(func(int) error)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionresultFields := schema.ExtractionResult{}.Fields()
	_ = extractionresultFields
	// extractionresultDescClassifiedType is the schema descriptor for classified_type field.
	extractionresultDescClassifiedType := extractionresultFields[2].Descriptor()
	// extractionresult.ClassifiedTypeValidator is a validator for the "classified_type" field. It is called by the builders before save.
	extractionresult.ClassifiedTypeValidator = extractionresultDescClassifiedType.Validators[0].(func(string) error)
	// extractionresultDescOverallConfidence is the schema descriptor for overall_confidence field.
	extractionresultDescOverallConfidence := extractionresultFields[3].Descriptor()
	// extractionresult.DefaultOverallConfidence holds the default value on creation for the overall_confidence field.
	extractionresult.DefaultOverallConfidence = extractionresultDescOverallConfidence.Default.(float32)
	// extractionresultDescStatus is the schema descriptor for status field.
	extractionresultDescStatus := extractionresultFields[7].Descriptor()
	// extractionresult.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionresult.StatusValidator = extractionresultDescStatus.Validators[0].(func(string) error)
	// extractionresultDescProcessedAt is the schema descriptor for processed_at field.
	extractionresultDescProcessedAt := extractionresultFields[9].Descriptor()
	// extractionresult.DefaultProcessedAt holds the default value on creation for the processed_at field.
	extractionresult.DefaultProcessedAt = extractionresultDescProcessedAt.Default.(func() time.Time)
	// extractionresultDescID is the schema descriptor for id field.
	extractionresultDescID := extractionresultFields[0].Descriptor()
	// extractionresult.DefaultID holds the default value on creation for the id field.
	extractionresult.DefaultID = extractionresultDescID.Default.(func() uuid.UUID)
	verificationrecordFields := schema.VerificationRecord{}.Fields()
	_ = verificationrecordFields
	// verificationrecordDescStatus is the schema descriptor for status field.
	verificationrecordDescStatus := verificationrecordFields[2].Descriptor()
	// verificationrecord.DefaultStatus holds the default value on creation for the status field.
	verificationrecord.DefaultStatus = verificationrecordDescStatus.Default.(string)
	// verificationrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	verificationrecord.StatusValidator = verificationrecordDescStatus.Validators[0].(func(string) error)
	// verificationrecordDescScore is the schema descriptor for score field.
	verificationrecordDescScore := verificationrecordFields[3].Descriptor()
	// verificationrecord.DefaultScore holds the default value on creation for the score field.
	verificationrecord.DefaultScore = verificationrecordDescScore.Default.(float32)
	// verificationrecordDescCurrent is the schema descriptor for current field.
	verificationrecordDescCurrent := verificationrecordFields[10].Descriptor()
	// verificationrecord.DefaultCurrent holds the default value on creation for the current field.
	verificationrecord.DefaultCurrent = verificationrecordDescCurrent.Default.(bool)
	// verificationrecordDescCreatedAt is the schema descriptor for created_at field.
	verificationrecordDescCreatedAt := verificationrecordFields[11].Descriptor()
	// verificationrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationrecord.DefaultCreatedAt = verificationrecordDescCreatedAt.Default.(func() time.Time)
	// verificationrecordDescID is the schema descriptor for id field.
	verificationrecordDescID := verificationrecordFields[0].Descriptor()
	// verificationrecord.DefaultID holds the default value on creation for the id field.
	verificationrecord.DefaultID = verificationrecordDescID.Default.(func() uuid.UUID)
}
