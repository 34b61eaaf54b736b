// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finaid-tools/docverifier/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOwnerID, v))
}

// DeclaredType applies equality check predicate on the "declared_type" field. It's identical to DeclaredTypeEQ.
func DeclaredType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeclaredType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoragePath, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// JobToken applies equality check predicate on the "job_token" field. It's identical to JobTokenEQ.
func JobToken(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldJobToken, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRetryCount, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNextRetryAt, v))
}

// ProcessingStartedAt applies equality check predicate on the "processing_started_at" field. It's identical to ProcessingStartedAtEQ.
func ProcessingStartedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingCompletedAt applies equality check predicate on the "processing_completed_at" field. It's identical to ProcessingCompletedAtEQ.
func ProcessingCompletedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingCompletedAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLastError, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOwnerID, v))
}

// DeclaredTypeEQ applies the EQ predicate on the "declared_type" field.
func DeclaredTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeclaredType, v))
}

// DeclaredTypeNEQ applies the NEQ predicate on the "declared_type" field.
func DeclaredTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDeclaredType, v))
}

// DeclaredTypeIn applies the In predicate on the "declared_type" field.
func DeclaredTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDeclaredType, vs...))
}

// DeclaredTypeNotIn applies the NotIn predicate on the "declared_type" field.
func DeclaredTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDeclaredType, vs...))
}

// DeclaredTypeGT applies the GT predicate on the "declared_type" field.
func DeclaredTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDeclaredType, v))
}

// DeclaredTypeGTE applies the GTE predicate on the "declared_type" field.
func DeclaredTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDeclaredType, v))
}

// DeclaredTypeLT applies the LT predicate on the "declared_type" field.
func DeclaredTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDeclaredType, v))
}

// DeclaredTypeLTE applies the LTE predicate on the "declared_type" field.
func DeclaredTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDeclaredType, v))
}

// DeclaredTypeContains applies the Contains predicate on the "declared_type" field.
func DeclaredTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDeclaredType, v))
}

// DeclaredTypeHasPrefix applies the HasPrefix predicate on the "declared_type" field.
func DeclaredTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDeclaredType, v))
}

// DeclaredTypeHasSuffix applies the HasSuffix predicate on the "declared_type" field.
func DeclaredTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDeclaredType, v))
}

// DeclaredTypeEqualFold applies the EqualFold predicate on the "declared_type" field.
func DeclaredTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDeclaredType, v))
}

// DeclaredTypeContainsFold applies the ContainsFold predicate on the "declared_type" field.
func DeclaredTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDeclaredType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStoragePath, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSize, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// JobTokenEQ applies the EQ predicate on the "job_token" field.
func JobTokenEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldJobToken, v))
}

// JobTokenNEQ applies the NEQ predicate on the "job_token" field.
func JobTokenNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldJobToken, v))
}

// JobTokenIn applies the In predicate on the "job_token" field.
func JobTokenIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldJobToken, vs...))
}

// JobTokenNotIn applies the NotIn predicate on the "job_token" field.
func JobTokenNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldJobToken, vs...))
}

// JobTokenGT applies the GT predicate on the "job_token" field.
func JobTokenGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldJobToken, v))
}

// JobTokenGTE applies the GTE predicate on the "job_token" field.
func JobTokenGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldJobToken, v))
}

// JobTokenLT applies the LT predicate on the "job_token" field.
func JobTokenLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldJobToken, v))
}

// JobTokenLTE applies the LTE predicate on the "job_token" field.
func JobTokenLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldJobToken, v))
}

// JobTokenIsNil applies the IsNil predicate on the "job_token" field.
func JobTokenIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldJobToken))
}

// JobTokenNotNil applies the NotNil predicate on the "job_token" field.
func JobTokenNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldJobToken))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldRetryCount, v))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldNextRetryAt))
}

// ProcessingStartedAtEQ applies the EQ predicate on the "processing_started_at" field.
func ProcessingStartedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtNEQ applies the NEQ predicate on the "processing_started_at" field.
func ProcessingStartedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIn applies the In predicate on the "processing_started_at" field.
func ProcessingStartedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtNotIn applies the NotIn predicate on the "processing_started_at" field.
func ProcessingStartedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtGT applies the GT predicate on the "processing_started_at" field.
func ProcessingStartedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtGTE applies the GTE predicate on the "processing_started_at" field.
func ProcessingStartedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLT applies the LT predicate on the "processing_started_at" field.
func ProcessingStartedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLTE applies the LTE predicate on the "processing_started_at" field.
func ProcessingStartedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIsNil applies the IsNil predicate on the "processing_started_at" field.
func ProcessingStartedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessingStartedAt))
}

// ProcessingStartedAtNotNil applies the NotNil predicate on the "processing_started_at" field.
func ProcessingStartedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessingStartedAt))
}

// ProcessingCompletedAtEQ applies the EQ predicate on the "processing_completed_at" field.
func ProcessingCompletedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtNEQ applies the NEQ predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtIn applies the In predicate on the "processing_completed_at" field.
func ProcessingCompletedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingCompletedAt, vs...))
}

// ProcessingCompletedAtNotIn applies the NotIn predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingCompletedAt, vs...))
}

// ProcessingCompletedAtGT applies the GT predicate on the "processing_completed_at" field.
func ProcessingCompletedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtGTE applies the GTE predicate on the "processing_completed_at" field.
func ProcessingCompletedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtLT applies the LT predicate on the "processing_completed_at" field.
func ProcessingCompletedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtLTE applies the LTE predicate on the "processing_completed_at" field.
func ProcessingCompletedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtIsNil applies the IsNil predicate on the "processing_completed_at" field.
func ProcessingCompletedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessingCompletedAt))
}

// ProcessingCompletedAtNotNil applies the NotNil predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessingCompletedAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLastError, v))
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.ExtractionResult) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerifications applies the HasEdge predicate on the "verifications" edge.
func HasVerifications() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationsWith applies the HasEdge predicate on the "verifications" edge with a given conditions (other predicates).
func HasVerificationsWith(preds ...predicate.VerificationRecord) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newVerificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
