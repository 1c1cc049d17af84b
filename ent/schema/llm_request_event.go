package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one call to the external grading model,
// including failures, for grading-quality audit.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("model").
			NotEmpty().
			Comment("Model that served (or rejected) the request"),
		field.String("purpose").
			NotEmpty().
			Comment("What the call was for, e.g. rubric-grading"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Comment("Request round-trip time"),
		field.Bool("success").
			Comment("Whether the call returned a usable response"),
		field.String("error_message").
			Optional().
			Comment("Error text for failed calls"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
