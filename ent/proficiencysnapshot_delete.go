// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oaz/profiler/ent/predicate"
	"github.com/oaz/profiler/ent/proficiencysnapshot"
)

// ProficiencySnapshotDelete is the builder for deleting a ProficiencySnapshot entity.
type ProficiencySnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ProficiencySnapshotMutation
}

// Where appends a list predicates to the ProficiencySnapshotDelete builder.
func (_d *ProficiencySnapshotDelete) Where(ps ...predicate.ProficiencySnapshot) *ProficiencySnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProficiencySnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProficiencySnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProficiencySnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(proficiencysnapshot.Table, sqlgraph.NewFieldSpec(proficiencysnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProficiencySnapshotDeleteOne is the builder for deleting a single ProficiencySnapshot entity.
type ProficiencySnapshotDeleteOne struct {
	_d *ProficiencySnapshotDelete
}

// Where appends a list predicates to the ProficiencySnapshotDelete builder.
func (_d *ProficiencySnapshotDeleteOne) Where(ps ...predicate.ProficiencySnapshot) *ProficiencySnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProficiencySnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{proficiencysnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProficiencySnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
