// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/oaz/profiler/ent/predicate"
	"github.com/oaz/profiler/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdate) SetItemID(v string) *ResponseEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableItemID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ResponseEventUpdate) SetItemType(v string) *ResponseEventUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableItemType(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *ResponseEventUpdate) SetCompetency(v string) *ResponseEventUpdate {
	_u.mutation.SetCompetency(v)
	return _u
}

// SetNillableCompetency sets the "competency" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCompetency(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetCompetency(*v)
	}
	return _u
}

// SetRawAnswer sets the "raw_answer" field.
func (_u *ResponseEventUpdate) SetRawAnswer(v string) *ResponseEventUpdate {
	_u.mutation.SetRawAnswer(v)
	return _u
}

// SetNillableRawAnswer sets the "raw_answer" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableRawAnswer(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetRawAnswer(*v)
	}
	return _u
}

// SetGradedScore sets the "graded_score" field.
func (_u *ResponseEventUpdate) SetGradedScore(v float64) *ResponseEventUpdate {
	_u.mutation.ResetGradedScore()
	_u.mutation.SetGradedScore(v)
	return _u
}

// SetNillableGradedScore sets the "graded_score" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableGradedScore(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetGradedScore(*v)
	}
	return _u
}

// AddGradedScore adds value to the "graded_score" field.
func (_u *ResponseEventUpdate) AddGradedScore(v float64) *ResponseEventUpdate {
	_u.mutation.AddGradedScore(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResponseEventUpdate) SetLatencyMs(v int64) *ResponseEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableLatencyMs(v *int64) *ResponseEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResponseEventUpdate) AddLatencyMs(v int64) *ResponseEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetFlags sets the "flags" field.
func (_u *ResponseEventUpdate) SetFlags(v []string) *ResponseEventUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *ResponseEventUpdate) AppendFlags(v []string) *ResponseEventUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *ResponseEventUpdate) ClearFlags() *ResponseEventUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *ResponseEventUpdate) SetThetaAfter(v float64) *ResponseEventUpdate {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableThetaAfter(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *ResponseEventUpdate) AddThetaAfter(v float64) *ResponseEventUpdate {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetCiAfter sets the "ci_after" field.
func (_u *ResponseEventUpdate) SetCiAfter(v float64) *ResponseEventUpdate {
	_u.mutation.ResetCiAfter()
	_u.mutation.SetCiAfter(v)
	return _u
}

// SetNillableCiAfter sets the "ci_after" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCiAfter(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetCiAfter(*v)
	}
	return _u
}

// AddCiAfter adds value to the "ci_after" field.
func (_u *ResponseEventUpdate) AddCiAfter(v float64) *ResponseEventUpdate {
	_u.mutation.AddCiAfter(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := responseevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(responseevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(responseevent.FieldCompetency, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawAnswer(); ok {
		_spec.SetField(responseevent.FieldRawAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradedScore(); ok {
		_spec.SetField(responseevent.FieldGradedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGradedScore(); ok {
		_spec.AddField(responseevent.FieldGradedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(responseevent.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, responseevent.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(responseevent.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CiAfter(); ok {
		_spec.SetField(responseevent.FieldCiAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCiAfter(); ok {
		_spec.AddField(responseevent.FieldCiAfter, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdateOne) SetItemID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableItemID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ResponseEventUpdateOne) SetItemType(v string) *ResponseEventUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableItemType(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *ResponseEventUpdateOne) SetCompetency(v string) *ResponseEventUpdateOne {
	_u.mutation.SetCompetency(v)
	return _u
}

// SetNillableCompetency sets the "competency" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCompetency(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCompetency(*v)
	}
	return _u
}

// SetRawAnswer sets the "raw_answer" field.
func (_u *ResponseEventUpdateOne) SetRawAnswer(v string) *ResponseEventUpdateOne {
	_u.mutation.SetRawAnswer(v)
	return _u
}

// SetNillableRawAnswer sets the "raw_answer" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableRawAnswer(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetRawAnswer(*v)
	}
	return _u
}

// SetGradedScore sets the "graded_score" field.
func (_u *ResponseEventUpdateOne) SetGradedScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetGradedScore()
	_u.mutation.SetGradedScore(v)
	return _u
}

// SetNillableGradedScore sets the "graded_score" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableGradedScore(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetGradedScore(*v)
	}
	return _u
}

// AddGradedScore adds value to the "graded_score" field.
func (_u *ResponseEventUpdateOne) AddGradedScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddGradedScore(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResponseEventUpdateOne) SetLatencyMs(v int64) *ResponseEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableLatencyMs(v *int64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResponseEventUpdateOne) AddLatencyMs(v int64) *ResponseEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetFlags sets the "flags" field.
func (_u *ResponseEventUpdateOne) SetFlags(v []string) *ResponseEventUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *ResponseEventUpdateOne) AppendFlags(v []string) *ResponseEventUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *ResponseEventUpdateOne) ClearFlags() *ResponseEventUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *ResponseEventUpdateOne) SetThetaAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableThetaAfter(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *ResponseEventUpdateOne) AddThetaAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetCiAfter sets the "ci_after" field.
func (_u *ResponseEventUpdateOne) SetCiAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetCiAfter()
	_u.mutation.SetCiAfter(v)
	return _u
}

// SetNillableCiAfter sets the "ci_after" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCiAfter(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCiAfter(*v)
	}
	return _u
}

// AddCiAfter adds value to the "ci_after" field.
func (_u *ResponseEventUpdateOne) AddCiAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddCiAfter(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := responseevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(responseevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(responseevent.FieldCompetency, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawAnswer(); ok {
		_spec.SetField(responseevent.FieldRawAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradedScore(); ok {
		_spec.SetField(responseevent.FieldGradedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGradedScore(); ok {
		_spec.AddField(responseevent.FieldGradedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(responseevent.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, responseevent.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(responseevent.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CiAfter(); ok {
		_spec.SetField(responseevent.FieldCiAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCiAfter(); ok {
		_spec.AddField(responseevent.FieldCiAfter, field.TypeFloat64, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
