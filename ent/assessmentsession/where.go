// Code generated by ent, DO NOT EDIT.

package assessmentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oaz/profiler/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldSessionID, v))
}

// UserRef applies equality check predicate on the "user_ref" field. It's identical to UserRefEQ.
func UserRef(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUserRef, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStatus, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldMode, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldFinishedAt, v))
}

// ItemsAnswered applies equality check predicate on the "items_answered" field. It's identical to ItemsAnsweredEQ.
func ItemsAnswered(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldItemsAnswered, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldSessionID, v))
}

// UserRefEQ applies the EQ predicate on the "user_ref" field.
func UserRefEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUserRef, v))
}

// UserRefNEQ applies the NEQ predicate on the "user_ref" field.
func UserRefNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldUserRef, v))
}

// UserRefIn applies the In predicate on the "user_ref" field.
func UserRefIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldUserRef, vs...))
}

// UserRefNotIn applies the NotIn predicate on the "user_ref" field.
func UserRefNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldUserRef, vs...))
}

// UserRefGT applies the GT predicate on the "user_ref" field.
func UserRefGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldUserRef, v))
}

// UserRefGTE applies the GTE predicate on the "user_ref" field.
func UserRefGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldUserRef, v))
}

// UserRefLT applies the LT predicate on the "user_ref" field.
func UserRefLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldUserRef, v))
}

// UserRefLTE applies the LTE predicate on the "user_ref" field.
func UserRefLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldUserRef, v))
}

// UserRefContains applies the Contains predicate on the "user_ref" field.
func UserRefContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldUserRef, v))
}

// UserRefHasPrefix applies the HasPrefix predicate on the "user_ref" field.
func UserRefHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldUserRef, v))
}

// UserRefHasSuffix applies the HasSuffix predicate on the "user_ref" field.
func UserRefHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldUserRef, v))
}

// UserRefEqualFold applies the EqualFold predicate on the "user_ref" field.
func UserRefEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldUserRef, v))
}

// UserRefContainsFold applies the ContainsFold predicate on the "user_ref" field.
func UserRefContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldUserRef, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldStatus, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldMode, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotNull(FieldFinishedAt))
}

// ItemsAnsweredEQ applies the EQ predicate on the "items_answered" field.
func ItemsAnsweredEQ(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldItemsAnswered, v))
}

// ItemsAnsweredNEQ applies the NEQ predicate on the "items_answered" field.
func ItemsAnsweredNEQ(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldItemsAnswered, v))
}

// ItemsAnsweredIn applies the In predicate on the "items_answered" field.
func ItemsAnsweredIn(vs ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldItemsAnswered, vs...))
}

// ItemsAnsweredNotIn applies the NotIn predicate on the "items_answered" field.
func ItemsAnsweredNotIn(vs ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldItemsAnswered, vs...))
}

// ItemsAnsweredGT applies the GT predicate on the "items_answered" field.
func ItemsAnsweredGT(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldItemsAnswered, v))
}

// ItemsAnsweredGTE applies the GTE predicate on the "items_answered" field.
func ItemsAnsweredGTE(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldItemsAnswered, v))
}

// ItemsAnsweredLT applies the LT predicate on the "items_answered" field.
func ItemsAnsweredLT(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldItemsAnswered, v))
}

// ItemsAnsweredLTE applies the LTE predicate on the "items_answered" field.
func ItemsAnsweredLTE(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldItemsAnswered, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.NotPredicates(p))
}
