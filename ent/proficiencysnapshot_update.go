// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oaz/profiler/ent/predicate"
	"github.com/oaz/profiler/ent/proficiencysnapshot"
)

// ProficiencySnapshotUpdate is the builder for updating ProficiencySnapshot entities.
type ProficiencySnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ProficiencySnapshotMutation
}

// Where appends a list predicates to the ProficiencySnapshotUpdate builder.
func (_u *ProficiencySnapshotUpdate) Where(ps ...predicate.ProficiencySnapshot) *ProficiencySnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ProficiencySnapshotMutation object of the builder.
func (_u *ProficiencySnapshotUpdate) Mutation() *ProficiencySnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProficiencySnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencySnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProficiencySnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencySnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProficiencySnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(proficiencysnapshot.Table, proficiencysnapshot.Columns, sqlgraph.NewFieldSpec(proficiencysnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProficiencySnapshotUpdateOne is the builder for updating a single ProficiencySnapshot entity.
type ProficiencySnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProficiencySnapshotMutation
}

// Mutation returns the ProficiencySnapshotMutation object of the builder.
func (_u *ProficiencySnapshotUpdateOne) Mutation() *ProficiencySnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProficiencySnapshotUpdate builder.
func (_u *ProficiencySnapshotUpdateOne) Where(ps ...predicate.ProficiencySnapshot) *ProficiencySnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProficiencySnapshotUpdateOne) Select(field string, fields ...string) *ProficiencySnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProficiencySnapshot entity.
func (_u *ProficiencySnapshotUpdateOne) Save(ctx context.Context) (*ProficiencySnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencySnapshotUpdateOne) SaveX(ctx context.Context) *ProficiencySnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProficiencySnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencySnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProficiencySnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ProficiencySnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(proficiencysnapshot.Table, proficiencysnapshot.Columns, sqlgraph.NewFieldSpec(proficiencysnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProficiencySnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proficiencysnapshot.FieldID)
		for _, f := range fields {
			if !proficiencysnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proficiencysnapshot.FieldID {
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
	_node = &ProficiencySnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
