package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/db/ent/schema/utils"
)

type VerificationRecord struct{ ent.Schema }

func (VerificationRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_records"},
	}
}

func (VerificationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("status").Default(string(constants.VerificationPending)).
			Validate(utils.EnumValidator(constants.VerificationStatuses...)),
		field.Float32("score").Default(0),
		// ordered pass/fail checks and outstanding issues
		field.JSON("checks", json.RawMessage{}).Optional(),
		field.JSON("issues", json.RawMessage{}).Optional(),
		field.UUID("reviewer_id", uuid.UUID{}).Optional().Nillable(),
		field.String("review_notes").Optional().Nillable(),
		field.String("rejection_reason").Optional().Nillable(),
		field.JSON("corrections", json.RawMessage{}).Optional(),
		field.Bool("current").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("verified_at").Optional().Nillable(),
		field.Time("expires_at").Optional().Nillable(),
	}
}

func (VerificationRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("verifications").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (VerificationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "current"),
		// expiry sweep path
		index.Fields("status", "expires_at"),
	}
}
