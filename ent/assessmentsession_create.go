// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oaz/profiler/ent/assessmentsession"
)

// AssessmentSessionCreate is the builder for creating a AssessmentSession entity.
type AssessmentSessionCreate struct {
	config
	mutation *AssessmentSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentSessionCreate) SetSessionID(v string) *AssessmentSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserRef sets the "user_ref" field.
func (_c *AssessmentSessionCreate) SetUserRef(v string) *AssessmentSessionCreate {
	_c.mutation.SetUserRef(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssessmentSessionCreate) SetStatus(v string) *AssessmentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *AssessmentSessionCreate) SetMode(v string) *AssessmentSessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AssessmentSessionCreate) SetStartedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableStartedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AssessmentSessionCreate) SetFinishedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableFinishedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetItemsAnswered sets the "items_answered" field.
func (_c *AssessmentSessionCreate) SetItemsAnswered(v int) *AssessmentSessionCreate {
	_c.mutation.SetItemsAnswered(v)
	return _c
}

// SetNillableItemsAnswered sets the "items_answered" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableItemsAnswered(v *int) *AssessmentSessionCreate {
	if v != nil {
		_c.SetItemsAnswered(*v)
	}
	return _c
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_c *AssessmentSessionCreate) Mutation() *AssessmentSessionMutation {
	return _c.mutation
}

// Save creates the AssessmentSession in the database.
func (_c *AssessmentSessionCreate) Save(ctx context.Context) (*AssessmentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentSessionCreate) SaveX(ctx context.Context) *AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentSessionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := assessmentsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ItemsAnswered(); !ok {
		v := assessmentsession.DefaultItemsAnswered
		_c.mutation.SetItemsAnswered(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserRef(); !ok {
		return &ValidationError{Name: "user_ref", err: errors.New(`ent: missing required field "AssessmentSession.user_ref"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AssessmentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "AssessmentSession.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := assessmentsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AssessmentSession.started_at"`)}
	}
	if _, ok := _c.mutation.ItemsAnswered(); !ok {
		return &ValidationError{Name: "items_answered", err: errors.New(`ent: missing required field "AssessmentSession.items_answered"`)}
	}
	return nil
}

func (_c *AssessmentSessionCreate) sqlSave(ctx context.Context) (*AssessmentSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentSessionCreate) createSpec() (*AssessmentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentsession.Table, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserRef(); ok {
		_spec.SetField(assessmentsession.FieldUserRef, field.TypeString, value)
		_node.UserRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(assessmentsession.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(assessmentsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(assessmentsession.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ItemsAnswered(); ok {
		_spec.SetField(assessmentsession.FieldItemsAnswered, field.TypeInt, value)
		_node.ItemsAnswered = value
	}
	return _node, _spec
}

// AssessmentSessionCreateBulk is the builder for creating many AssessmentSession entities in bulk.
type AssessmentSessionCreateBulk struct {
	config
	err      error
	builders []*AssessmentSessionCreate
}

// Save creates the AssessmentSession entities in the database.
func (_c *AssessmentSessionCreateBulk) Save(ctx context.Context) ([]*AssessmentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentSessionCreateBulk) SaveX(ctx context.Context) []*AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
