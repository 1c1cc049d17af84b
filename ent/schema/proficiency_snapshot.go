package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProficiencySnapshot is the immutable finalized proficiency record for a
// completed session. Written exactly once, at finalization.
type ProficiencySnapshot struct {
	ent.Schema
}

func (ProficiencySnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Session this snapshot seals"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable().
			Comment("Finalization time"),
		field.Float("global_score").
			Immutable().
			Comment("Mean of per-competency scores"),
		field.String("global_level").
			NotEmpty().
			Immutable().
			Comment("Band N0-N5 for the global score"),
		field.JSON("competencies", map[string]any{}).
			Immutable().
			Comment("Per-competency final theta/score/CI as JSON"),
	}
}

func (ProficiencySnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
	}
}
