// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oaz/profiler/ent/proficiencysnapshot"
)

// ProficiencySnapshot is the model entity for the ProficiencySnapshot schema.
type ProficiencySnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session this snapshot seals
	SessionID string `json:"session_id,omitempty"`
	// Finalization time
	TakenAt time.Time `json:"taken_at,omitempty"`
	// Mean of per-competency scores
	GlobalScore float64 `json:"global_score,omitempty"`
	// Band N0-N5 for the global score
	GlobalLevel string `json:"global_level,omitempty"`
	// Per-competency final theta/score/CI as JSON
	Competencies map[string]interface{} `json:"competencies,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProficiencySnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proficiencysnapshot.FieldCompetencies:
			values[i] = new([]byte)
		case proficiencysnapshot.FieldGlobalScore:
			values[i] = new(sql.NullFloat64)
		case proficiencysnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case proficiencysnapshot.FieldSessionID, proficiencysnapshot.FieldGlobalLevel:
			values[i] = new(sql.NullString)
		case proficiencysnapshot.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProficiencySnapshot fields.
func (_m *ProficiencySnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proficiencysnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case proficiencysnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case proficiencysnapshot.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		case proficiencysnapshot.FieldGlobalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field global_score", values[i])
			} else if value.Valid {
				_m.GlobalScore = value.Float64
			}
		case proficiencysnapshot.FieldGlobalLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field global_level", values[i])
			} else if value.Valid {
				_m.GlobalLevel = value.String
			}
		case proficiencysnapshot.FieldCompetencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Competencies); err != nil {
					return fmt.Errorf("unmarshal field competencies: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProficiencySnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ProficiencySnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProficiencySnapshot.
// Note that you need to call ProficiencySnapshot.Unwrap() before calling this method if this ProficiencySnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProficiencySnapshot) Update() *ProficiencySnapshotUpdateOne {
	return NewProficiencySnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProficiencySnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProficiencySnapshot) Unwrap() *ProficiencySnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProficiencySnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProficiencySnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ProficiencySnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("global_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GlobalScore))
	builder.WriteString(", ")
	builder.WriteString("global_level=")
	builder.WriteString(_m.GlobalLevel)
	builder.WriteString(", ")
	builder.WriteString("competencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Competencies))
	builder.WriteByte(')')
	return builder.String()
}

// ProficiencySnapshots is a parsable slice of ProficiencySnapshot.
type ProficiencySnapshots []*ProficiencySnapshot
