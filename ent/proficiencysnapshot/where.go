// Code generated by ent, DO NOT EDIT.

package proficiencysnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oaz/profiler/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldSessionID, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// GlobalScore applies equality check predicate on the "global_score" field. It's identical to GlobalScoreEQ.
func GlobalScore(v float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldGlobalScore, v))
}

// GlobalLevel applies equality check predicate on the "global_level" field. It's identical to GlobalLevelEQ.
func GlobalLevel(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldGlobalLevel, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLTE(FieldTakenAt, v))
}

// GlobalScoreEQ applies the EQ predicate on the "global_score" field.
func GlobalScoreEQ(v float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldGlobalScore, v))
}

// GlobalScoreNEQ applies the NEQ predicate on the "global_score" field.
func GlobalScoreNEQ(v float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNEQ(FieldGlobalScore, v))
}

// GlobalScoreIn applies the In predicate on the "global_score" field.
func GlobalScoreIn(vs ...float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldIn(FieldGlobalScore, vs...))
}

// GlobalScoreNotIn applies the NotIn predicate on the "global_score" field.
func GlobalScoreNotIn(vs ...float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNotIn(FieldGlobalScore, vs...))
}

// GlobalScoreGT applies the GT predicate on the "global_score" field.
func GlobalScoreGT(v float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGT(FieldGlobalScore, v))
}

// GlobalScoreGTE applies the GTE predicate on the "global_score" field.
func GlobalScoreGTE(v float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGTE(FieldGlobalScore, v))
}

// GlobalScoreLT applies the LT predicate on the "global_score" field.
func GlobalScoreLT(v float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLT(FieldGlobalScore, v))
}

// GlobalScoreLTE applies the LTE predicate on the "global_score" field.
func GlobalScoreLTE(v float64) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLTE(FieldGlobalScore, v))
}

// GlobalLevelEQ applies the EQ predicate on the "global_level" field.
func GlobalLevelEQ(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEQ(FieldGlobalLevel, v))
}

// GlobalLevelNEQ applies the NEQ predicate on the "global_level" field.
func GlobalLevelNEQ(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNEQ(FieldGlobalLevel, v))
}

// GlobalLevelIn applies the In predicate on the "global_level" field.
func GlobalLevelIn(vs ...string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldIn(FieldGlobalLevel, vs...))
}

// GlobalLevelNotIn applies the NotIn predicate on the "global_level" field.
func GlobalLevelNotIn(vs ...string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldNotIn(FieldGlobalLevel, vs...))
}

// GlobalLevelGT applies the GT predicate on the "global_level" field.
func GlobalLevelGT(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGT(FieldGlobalLevel, v))
}

// GlobalLevelGTE applies the GTE predicate on the "global_level" field.
func GlobalLevelGTE(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldGTE(FieldGlobalLevel, v))
}

// GlobalLevelLT applies the LT predicate on the "global_level" field.
func GlobalLevelLT(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLT(FieldGlobalLevel, v))
}

// GlobalLevelLTE applies the LTE predicate on the "global_level" field.
func GlobalLevelLTE(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldLTE(FieldGlobalLevel, v))
}

// GlobalLevelContains applies the Contains predicate on the "global_level" field.
func GlobalLevelContains(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldContains(FieldGlobalLevel, v))
}

// GlobalLevelHasPrefix applies the HasPrefix predicate on the "global_level" field.
func GlobalLevelHasPrefix(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldHasPrefix(FieldGlobalLevel, v))
}

// GlobalLevelHasSuffix applies the HasSuffix predicate on the "global_level" field.
func GlobalLevelHasSuffix(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldHasSuffix(FieldGlobalLevel, v))
}

// GlobalLevelEqualFold applies the EqualFold predicate on the "global_level" field.
func GlobalLevelEqualFold(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldEqualFold(FieldGlobalLevel, v))
}

// GlobalLevelContainsFold applies the ContainsFold predicate on the "global_level" field.
func GlobalLevelContainsFold(v string) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.FieldContainsFold(FieldGlobalLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProficiencySnapshot) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProficiencySnapshot) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProficiencySnapshot) predicate.ProficiencySnapshot {
	return predicate.ProficiencySnapshot(sql.NotPredicates(p))
}
