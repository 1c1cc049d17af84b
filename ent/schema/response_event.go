package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records one graded response within a session.
// Append-only: created once, never mutated.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to AssessmentSession"),
		field.String("item_id").
			NotEmpty().
			Comment("Item that was answered"),
		field.String("item_type").
			NotEmpty().
			Comment("multiple_choice, scenario, prompt_writing, or open_ended"),
		field.String("competency").
			Comment("Competency the item probes; empty for calibration"),
		field.String("raw_answer").
			Comment("The answer as submitted"),
		field.Float("graded_score").
			Comment("Graded score in [0,1]"),
		field.Int64("latency_ms").
			Comment("Milliseconds between issue and submission"),
		field.JSON("flags", []string{}).
			Optional().
			Comment("Quality flags, e.g. tooShort, gradingDegraded"),
		field.Float("theta_after").
			Comment("Competency theta after the update"),
		field.Float("ci_after").
			Comment("Competency CI after the update"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("competency"),
	}
}
