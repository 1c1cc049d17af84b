// Code generated by ent, DO NOT EDIT.

package assessmentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentsession type in the database.
	Label = "assessment_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserRef holds the string denoting the user_ref field in the database.
	FieldUserRef = "user_ref"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldItemsAnswered holds the string denoting the items_answered field in the database.
	FieldItemsAnswered = "items_answered"
	// Table holds the table name of the assessmentsession in the database.
	Table = "assessment_sessions"
)

// Columns holds all SQL columns for assessmentsession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserRef,
	FieldStatus,
	FieldMode,
	FieldStartedAt,
	FieldFinishedAt,
	FieldItemsAnswered,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultItemsAnswered holds the default value on creation for the "items_answered" field.
	DefaultItemsAnswered int
)

// OrderOption defines the ordering options for the AssessmentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserRef orders the results by the user_ref field.
func ByUserRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRef, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByItemsAnswered orders the results by the items_answered field.
func ByItemsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsAnswered, opts...).ToFunc()
}
