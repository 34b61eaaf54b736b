// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "declared_type", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "job_token", Type: field.TypeUUID, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status_next_retry_at_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3], DocumentsColumns[12], DocumentsColumns[9]},
			},
			{
				Name:    "document_owner_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[5]},
			},
		},
	}
	// ExtractionResultsColumns holds the columns for the "extraction_results" table.
	ExtractionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "classified_type", Type: field.TypeString},
		{Name: "overall_confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionResultsTable holds the schema information for the "extraction_results" table.
	ExtractionResultsTable = &schema.Table{
		Name:       "extraction_results",
		Columns:    ExtractionResultsColumns,
		PrimaryKey: []*schema.Column{ExtractionResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_results_documents_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[9]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionresult_document_id_processed_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[9], ExtractionResultsColumns[8]},
			},
		},
	}
	// VerificationRecordsColumns holds the columns for the "verification_records" table.
	VerificationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "score", Type: field.TypeFloat32, Default: 0},
		{Name: "checks", Type: field.TypeJSON, Nullable: true},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "reviewer_id", Type: field.TypeUUID, Nullable: true},
		{Name: "review_notes", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "corrections", Type: field.TypeJSON, Nullable: true},
		{Name: "current", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// VerificationRecordsTable holds the schema information for the "verification_records" table.
	VerificationRecordsTable = &schema.Table{
		Name:       "verification_records",
		Columns:    VerificationRecordsColumns,
		PrimaryKey: []*schema.Column{VerificationRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_records_documents_verifications",
				Columns:    []*schema.Column{VerificationRecordsColumns[13]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationrecord_document_id_current",
				Unique:  false,
				Columns: []*schema.Column{VerificationRecordsColumns[13], VerificationRecordsColumns[9]},
			},
			{
				Name:    "verificationrecord_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationRecordsColumns[1], VerificationRecordsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionResultsTable,
		VerificationRecordsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionResultsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionResultsTable.Annotation = &entsql.Annotation{
		Table: "extraction_results",
	}
	VerificationRecordsTable.ForeignKeys[0].RefTable = DocumentsTable
	VerificationRecordsTable.Annotation = &entsql.Annotation{
		Table: "verification_records",
	}
}
