// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fcetrainer/ent/checkevent"
)

// CheckEventCreate is the builder for creating a CheckEvent entity.
type CheckEventCreate struct {
	config
	mutation *CheckEventMutation
	hooks    []Hook
}

// SetExercise sets the "exercise" field.
func (_c *CheckEventCreate) SetExercise(v string) *CheckEventCreate {
	_c.mutation.SetExercise(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CheckEventCreate) SetScore(v int) *CheckEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *CheckEventCreate) SetTotal(v int) *CheckEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckEventCreate) SetCreatedAt(v time.Time) *CheckEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableCreatedAt(v *time.Time) *CheckEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CheckEventMutation object of the builder.
func (_c *CheckEventCreate) Mutation() *CheckEventMutation {
	return _c.mutation
}

// Save creates the CheckEvent in the database.
func (_c *CheckEventCreate) Save(ctx context.Context) (*CheckEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckEventCreate) SaveX(ctx context.Context) *CheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckEventCreate) check() error {
	if _, ok := _c.mutation.Exercise(); !ok {
		return &ValidationError{Name: "exercise", err: errors.New(`ent: missing required field "CheckEvent.exercise"`)}
	}
	if v, ok := _c.mutation.Exercise(); ok {
		if err := checkevent.ExerciseValidator(v); err != nil {
			return &ValidationError{Name: "exercise", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.exercise": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CheckEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := checkevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "CheckEvent.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := checkevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CheckEvent.created_at"`)}
	}
	return nil
}

func (_c *CheckEventCreate) sqlSave(ctx context.Context) (*CheckEvent, error) {
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

func (_c *CheckEventCreate) createSpec() (*CheckEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkevent.Table, sqlgraph.NewFieldSpec(checkevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Exercise(); ok {
		_spec.SetField(checkevent.FieldExercise, field.TypeString, value)
		_node.Exercise = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(checkevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(checkevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CheckEventCreateBulk is the builder for creating many CheckEvent entities in bulk.
type CheckEventCreateBulk struct {
	config
	err      error
	builders []*CheckEventCreate
}

// Save creates the CheckEvent entities in the database.
func (_c *CheckEventCreateBulk) Save(ctx context.Context) ([]*CheckEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckEventMutation)
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
func (_c *CheckEventCreateBulk) SaveX(ctx context.Context) []*CheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
