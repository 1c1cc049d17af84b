// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oaz/profiler/ent/assessmentsession"
	"github.com/oaz/profiler/ent/predicate"
)

// AssessmentSessionUpdate is the builder for updating AssessmentSession entities.
type AssessmentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdate) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserRef sets the "user_ref" field.
func (_u *AssessmentSessionUpdate) SetUserRef(v string) *AssessmentSessionUpdate {
	_u.mutation.SetUserRef(v)
	return _u
}

// SetNillableUserRef sets the "user_ref" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableUserRef(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetUserRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdate) SetStatus(v string) *AssessmentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableStatus(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AssessmentSessionUpdate) SetMode(v string) *AssessmentSessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableMode(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AssessmentSessionUpdate) SetFinishedAt(v time.Time) *AssessmentSessionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableFinishedAt(v *time.Time) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AssessmentSessionUpdate) ClearFinishedAt() *AssessmentSessionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetItemsAnswered sets the "items_answered" field.
func (_u *AssessmentSessionUpdate) SetItemsAnswered(v int) *AssessmentSessionUpdate {
	_u.mutation.ResetItemsAnswered()
	_u.mutation.SetItemsAnswered(v)
	return _u
}

// SetNillableItemsAnswered sets the "items_answered" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableItemsAnswered(v *int) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetItemsAnswered(*v)
	}
	return _u
}

// AddItemsAnswered adds value to the "items_answered" field.
func (_u *AssessmentSessionUpdate) AddItemsAnswered(v int) *AssessmentSessionUpdate {
	_u.mutation.AddItemsAnswered(v)
	return _u
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdate) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := assessmentsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserRef(); ok {
		_spec.SetField(assessmentsession.FieldUserRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(assessmentsession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(assessmentsession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(assessmentsession.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ItemsAnswered(); ok {
		_spec.SetField(assessmentsession.FieldItemsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsAnswered(); ok {
		_spec.AddField(assessmentsession.FieldItemsAnswered, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentSessionUpdateOne is the builder for updating a single AssessmentSession entity.
type AssessmentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// SetUserRef sets the "user_ref" field.
func (_u *AssessmentSessionUpdateOne) SetUserRef(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetUserRef(v)
	return _u
}

// SetNillableUserRef sets the "user_ref" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableUserRef(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetUserRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdateOne) SetStatus(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableStatus(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AssessmentSessionUpdateOne) SetMode(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableMode(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AssessmentSessionUpdateOne) SetFinishedAt(v time.Time) *AssessmentSessionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableFinishedAt(v *time.Time) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AssessmentSessionUpdateOne) ClearFinishedAt() *AssessmentSessionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetItemsAnswered sets the "items_answered" field.
func (_u *AssessmentSessionUpdateOne) SetItemsAnswered(v int) *AssessmentSessionUpdateOne {
	_u.mutation.ResetItemsAnswered()
	_u.mutation.SetItemsAnswered(v)
	return _u
}

// SetNillableItemsAnswered sets the "items_answered" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableItemsAnswered(v *int) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetItemsAnswered(*v)
	}
	return _u
}

// AddItemsAnswered adds value to the "items_answered" field.
func (_u *AssessmentSessionUpdateOne) AddItemsAnswered(v int) *AssessmentSessionUpdateOne {
	_u.mutation.AddItemsAnswered(v)
	return _u
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdateOne) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdateOne) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentSessionUpdateOne) Select(field string, fields ...string) *AssessmentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentSession entity.
func (_u *AssessmentSessionUpdateOne) Save(ctx context.Context) (*AssessmentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) SaveX(ctx context.Context) *AssessmentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := assessmentsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentsession.FieldID)
		for _, f := range fields {
			if !assessmentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentsession.FieldID {
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
	if value, ok := _u.mutation.UserRef(); ok {
		_spec.SetField(assessmentsession.FieldUserRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(assessmentsession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(assessmentsession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(assessmentsession.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ItemsAnswered(); ok {
		_spec.SetField(assessmentsession.FieldItemsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsAnswered(); ok {
		_spec.AddField(assessmentsession.FieldItemsAnswered, field.TypeInt, value)
	}
	_node = &AssessmentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
