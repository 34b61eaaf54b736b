package schema

import (
	"encoding/json"
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

type ExtractionResult struct{ ent.Schema }

func (ExtractionResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_results"},
	}
}

func (ExtractionResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("classified_type").
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.Float32("overall_confidence").Default(0),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// ordered list of extracted fields, stored as-is
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.JSON("validation_errors", json.RawMessage{}).Optional(),
		field.String("status").
			Validate(utils.EnumValidator(constants.ResultStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("processed_at").Default(time.Now),
	}
}

func (ExtractionResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("results").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ExtractionResult) Indexes() []ent.Index {
	return []ent.Index{
		// latest-result lookup
		index.Fields("document_id", "processed_at"),
	}
}
