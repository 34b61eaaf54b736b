package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("declared_type").Default(string(constants.TypeUnknown)).
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("status").Default(string(constants.DocumentUploaded)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("storage_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
		// processing bookkeeping; job_token is the claim
		field.UUID("job_token", uuid.UUID{}).Optional().Nillable(),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Time("next_retry_at").Optional().Nillable(),
		field.Time("processing_started_at").Optional().Nillable(),
		field.Time("processing_completed_at").Optional().Nillable(),
		field.String("last_error").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("results", ExtractionResult.Type),
		edge.To("verifications", VerificationRecord.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// scheduler selection path
		index.Fields("status", "next_retry_at", "uploaded_at"),
		index.Fields("owner_id", "content_hash").Unique(),
	}
}
