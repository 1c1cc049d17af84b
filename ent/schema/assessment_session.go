package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentSession is the durable record of one assessment session.
// The status transition is written before the next item is issued, so a
// crashed session can at worst redo its last step.
type AssessmentSession struct {
	ent.Schema
}

func (AssessmentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID of the session"),
		field.String("user_ref").
			Comment("Opaque reference to the assessed user"),
		field.String("status").
			NotEmpty().
			Comment("initializing, active, converged, timed_out, or abandoned"),
		field.String("mode").
			NotEmpty().
			Comment("adaptive or fixed_block"),
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("When the session was created"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("When the session reached a terminal status"),
		field.Int("items_answered").
			Default(0).
			Comment("Count of scored (non-calibration) responses"),
	}
}

func (AssessmentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_ref"),
		index.Fields("status"),
	}
}
