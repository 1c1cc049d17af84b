// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oaz/profiler/ent/assessmentsession"
)

// AssessmentSession is the model entity for the AssessmentSession schema.
type AssessmentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the session
	SessionID string `json:"session_id,omitempty"`
	// Opaque reference to the assessed user
	UserRef string `json:"user_ref,omitempty"`
	// initializing, active, converged, timed_out, or abandoned
	Status string `json:"status,omitempty"`
	// adaptive or fixed_block
	Mode string `json:"mode,omitempty"`
	// When the session was created
	StartedAt time.Time `json:"started_at,omitempty"`
	// When the session reached a terminal status
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Count of scored (non-calibration) responses
	ItemsAnswered int `json:"items_answered,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentsession.FieldID, assessmentsession.FieldItemsAnswered:
			values[i] = new(sql.NullInt64)
		case assessmentsession.FieldSessionID, assessmentsession.FieldUserRef, assessmentsession.FieldStatus, assessmentsession.FieldMode:
			values[i] = new(sql.NullString)
		case assessmentsession.FieldStartedAt, assessmentsession.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentSession fields.
func (_m *AssessmentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case assessmentsession.FieldUserRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_ref", values[i])
			} else if value.Valid {
				_m.UserRef = value.String
			}
		case assessmentsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case assessmentsession.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case assessmentsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case assessmentsession.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case assessmentsession.FieldItemsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_answered", values[i])
			} else if value.Valid {
				_m.ItemsAnswered = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentSession.
// Note that you need to call AssessmentSession.Unwrap() before calling this method if this AssessmentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentSession) Update() *AssessmentSessionUpdateOne {
	return NewAssessmentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentSession) Unwrap() *AssessmentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_ref=")
	builder.WriteString(_m.UserRef)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("items_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsAnswered))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentSessions is a parsable slice of AssessmentSession.
type AssessmentSessions []*AssessmentSession
