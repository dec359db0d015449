// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fcetrainer/ent/showevent"
)

// ShowEventCreate is the builder for creating a ShowEvent entity.
type ShowEventCreate struct {
	config
	mutation *ShowEventMutation
	hooks    []Hook
}

// SetExercise sets the "exercise" field.
func (_c *ShowEventCreate) SetExercise(v string) *ShowEventCreate {
	_c.mutation.SetExercise(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ShowEventCreate) SetTaskID(v int) *ShowEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetShownAt sets the "shown_at" field.
func (_c *ShowEventCreate) SetShownAt(v time.Time) *ShowEventCreate {
	_c.mutation.SetShownAt(v)
	return _c
}

// SetNillableShownAt sets the "shown_at" field if the given value is not nil.
func (_c *ShowEventCreate) SetNillableShownAt(v *time.Time) *ShowEventCreate {
	if v != nil {
		_c.SetShownAt(*v)
	}
	return _c
}

// Mutation returns the ShowEventMutation object of the builder.
func (_c *ShowEventCreate) Mutation() *ShowEventMutation {
	return _c.mutation
}

// Save creates the ShowEvent in the database.
func (_c *ShowEventCreate) Save(ctx context.Context) (*ShowEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShowEventCreate) SaveX(ctx context.Context) *ShowEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShowEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShowEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShowEventCreate) defaults() {
	if _, ok := _c.mutation.ShownAt(); !ok {
		v := showevent.DefaultShownAt()
		_c.mutation.SetShownAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShowEventCreate) check() error {
	if _, ok := _c.mutation.Exercise(); !ok {
		return &ValidationError{Name: "exercise", err: errors.New(`ent: missing required field "ShowEvent.exercise"`)}
	}
	if v, ok := _c.mutation.Exercise(); ok {
		if err := showevent.ExerciseValidator(v); err != nil {
			return &ValidationError{Name: "exercise", err: fmt.Errorf(`ent: validator failed for field "ShowEvent.exercise": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ShowEvent.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := showevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "ShowEvent.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShownAt(); !ok {
		return &ValidationError{Name: "shown_at", err: errors.New(`ent: missing required field "ShowEvent.shown_at"`)}
	}
	return nil
}

func (_c *ShowEventCreate) sqlSave(ctx context.Context) (*ShowEvent, error) {
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

func (_c *ShowEventCreate) createSpec() (*ShowEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ShowEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(showevent.Table, sqlgraph.NewFieldSpec(showevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Exercise(); ok {
		_spec.SetField(showevent.FieldExercise, field.TypeString, value)
		_node.Exercise = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(showevent.FieldTaskID, field.TypeInt, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.ShownAt(); ok {
		_spec.SetField(showevent.FieldShownAt, field.TypeTime, value)
		_node.ShownAt = value
	}
	return _node, _spec
}

// ShowEventCreateBulk is the builder for creating many ShowEvent entities in bulk.
type ShowEventCreateBulk struct {
	config
	err      error
	builders []*ShowEventCreate
}

// Save creates the ShowEvent entities in the database.
func (_c *ShowEventCreateBulk) Save(ctx context.Context) ([]*ShowEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ShowEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShowEventMutation)
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
func (_c *ShowEventCreateBulk) SaveX(ctx context.Context) []*ShowEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShowEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShowEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
