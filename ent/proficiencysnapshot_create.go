// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oaz/profiler/ent/proficiencysnapshot"
)

// ProficiencySnapshotCreate is the builder for creating a ProficiencySnapshot entity.
type ProficiencySnapshotCreate struct {
	config
	mutation *ProficiencySnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ProficiencySnapshotCreate) SetSessionID(v string) *ProficiencySnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *ProficiencySnapshotCreate) SetTakenAt(v time.Time) *ProficiencySnapshotCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *ProficiencySnapshotCreate) SetNillableTakenAt(v *time.Time) *ProficiencySnapshotCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetGlobalScore sets the "global_score" field.
func (_c *ProficiencySnapshotCreate) SetGlobalScore(v float64) *ProficiencySnapshotCreate {
	_c.mutation.SetGlobalScore(v)
	return _c
}

// SetGlobalLevel sets the "global_level" field.
func (_c *ProficiencySnapshotCreate) SetGlobalLevel(v string) *ProficiencySnapshotCreate {
	_c.mutation.SetGlobalLevel(v)
	return _c
}

// SetCompetencies sets the "competencies" field.
func (_c *ProficiencySnapshotCreate) SetCompetencies(v map[string]interface{}) *ProficiencySnapshotCreate {
	_c.mutation.SetCompetencies(v)
	return _c
}

// Mutation returns the ProficiencySnapshotMutation object of the builder.
func (_c *ProficiencySnapshotCreate) Mutation() *ProficiencySnapshotMutation {
	return _c.mutation
}

// Save creates the ProficiencySnapshot in the database.
func (_c *ProficiencySnapshotCreate) Save(ctx context.Context) (*ProficiencySnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProficiencySnapshotCreate) SaveX(ctx context.Context) *ProficiencySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencySnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencySnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProficiencySnapshotCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := proficiencysnapshot.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProficiencySnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProficiencySnapshot.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := proficiencysnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProficiencySnapshot.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "ProficiencySnapshot.taken_at"`)}
	}
	if _, ok := _c.mutation.GlobalScore(); !ok {
		return &ValidationError{Name: "global_score", err: errors.New(`ent: missing required field "ProficiencySnapshot.global_score"`)}
	}
	if _, ok := _c.mutation.GlobalLevel(); !ok {
		return &ValidationError{Name: "global_level", err: errors.New(`ent: missing required field "ProficiencySnapshot.global_level"`)}
	}
	if v, ok := _c.mutation.GlobalLevel(); ok {
		if err := proficiencysnapshot.GlobalLevelValidator(v); err != nil {
			return &ValidationError{Name: "global_level", err: fmt.Errorf(`ent: validator failed for field "ProficiencySnapshot.global_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Competencies(); !ok {
		return &ValidationError{Name: "competencies", err: errors.New(`ent: missing required field "ProficiencySnapshot.competencies"`)}
	}
	return nil
}

func (_c *ProficiencySnapshotCreate) sqlSave(ctx context.Context) (*ProficiencySnapshot, error) {
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

func (_c *ProficiencySnapshotCreate) createSpec() (*ProficiencySnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ProficiencySnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proficiencysnapshot.Table, sqlgraph.NewFieldSpec(proficiencysnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(proficiencysnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(proficiencysnapshot.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.GlobalScore(); ok {
		_spec.SetField(proficiencysnapshot.FieldGlobalScore, field.TypeFloat64, value)
		_node.GlobalScore = value
	}
	if value, ok := _c.mutation.GlobalLevel(); ok {
		_spec.SetField(proficiencysnapshot.FieldGlobalLevel, field.TypeString, value)
		_node.GlobalLevel = value
	}
	if value, ok := _c.mutation.Competencies(); ok {
		_spec.SetField(proficiencysnapshot.FieldCompetencies, field.TypeJSON, value)
		_node.Competencies = value
	}
	return _node, _spec
}

// ProficiencySnapshotCreateBulk is the builder for creating many ProficiencySnapshot entities in bulk.
type ProficiencySnapshotCreateBulk struct {
	config
	err      error
	builders []*ProficiencySnapshotCreate
}

// Save creates the ProficiencySnapshot entities in the database.
func (_c *ProficiencySnapshotCreateBulk) Save(ctx context.Context) ([]*ProficiencySnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProficiencySnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProficiencySnapshotMutation)
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
func (_c *ProficiencySnapshotCreateBulk) SaveX(ctx context.Context) []*ProficiencySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencySnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencySnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
