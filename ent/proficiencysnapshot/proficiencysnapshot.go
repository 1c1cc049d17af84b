// Code generated by ent, DO NOT EDIT.

package proficiencysnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proficiencysnapshot type in the database.
	Label = "proficiency_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// FieldGlobalScore holds the string denoting the global_score field in the database.
	FieldGlobalScore = "global_score"
	// FieldGlobalLevel holds the string denoting the global_level field in the database.
	FieldGlobalLevel = "global_level"
	// FieldCompetencies holds the string denoting the competencies field in the database.
	FieldCompetencies = "competencies"
	// Table holds the table name of the proficiencysnapshot in the database.
	Table = "proficiency_snapshots"
)

// Columns holds all SQL columns for proficiencysnapshot fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTakenAt,
	FieldGlobalScore,
	FieldGlobalLevel,
	FieldCompetencies,
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
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
	// GlobalLevelValidator is a validator for the "global_level" field. It is called by the builders before save.
	GlobalLevelValidator func(string) error
)

// OrderOption defines the ordering options for the ProficiencySnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}

// ByGlobalScore orders the results by the global_score field.
func ByGlobalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlobalScore, opts...).ToFunc()
}

// ByGlobalLevel orders the results by the global_level field.
func ByGlobalLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlobalLevel, opts...).ToFunc()
}
