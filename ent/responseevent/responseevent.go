// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the responseevent type in the database.
	Label = "response_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldCompetency holds the string denoting the competency field in the database.
	FieldCompetency = "competency"
	// FieldRawAnswer holds the string denoting the raw_answer field in the database.
	FieldRawAnswer = "raw_answer"
	// FieldGradedScore holds the string denoting the graded_score field in the database.
	FieldGradedScore = "graded_score"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldThetaAfter holds the string denoting the theta_after field in the database.
	FieldThetaAfter = "theta_after"
	// FieldCiAfter holds the string denoting the ci_after field in the database.
	FieldCiAfter = "ci_after"
	// Table holds the table name of the responseevent in the database.
	Table = "response_events"
)

// Columns holds all SQL columns for responseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldItemID,
	FieldItemType,
	FieldCompetency,
	FieldRawAnswer,
	FieldGradedScore,
	FieldLatencyMs,
	FieldFlags,
	FieldThetaAfter,
	FieldCiAfter,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	ItemTypeValidator func(string) error
)

// OrderOption defines the ordering options for the ResponseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByCompetency orders the results by the competency field.
func ByCompetency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetency, opts...).ToFunc()
}

// ByRawAnswer orders the results by the raw_answer field.
func ByRawAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawAnswer, opts...).ToFunc()
}

// ByGradedScore orders the results by the graded_score field.
func ByGradedScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradedScore, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByThetaAfter orders the results by the theta_after field.
func ByThetaAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaAfter, opts...).ToFunc()
}

// ByCiAfter orders the results by the ci_after field.
func ByCiAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCiAfter, opts...).ToFunc()
}
