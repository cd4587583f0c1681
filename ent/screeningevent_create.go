// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/acuity/ent/screeningevent"
)

// ScreeningEventCreate is the builder for creating a ScreeningEvent entity.
type ScreeningEventCreate struct {
	config
	mutation *ScreeningEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScreeningEventCreate) SetSequence(v int64) *ScreeningEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScreeningEventCreate) SetTimestamp(v time.Time) *ScreeningEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScreeningEventCreate) SetNillableTimestamp(v *time.Time) *ScreeningEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetScreeningID sets the "screening_id" field.
func (_c *ScreeningEventCreate) SetScreeningID(v string) *ScreeningEventCreate {
	_c.mutation.SetScreeningID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ScreeningEventCreate) SetAction(v string) *ScreeningEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetWordScore sets the "word_score" field.
func (_c *ScreeningEventCreate) SetWordScore(v int) *ScreeningEventCreate {
	_c.mutation.SetWordScore(v)
	return _c
}

// SetNillableWordScore sets the "word_score" field if the given value is not nil.
func (_c *ScreeningEventCreate) SetNillableWordScore(v *int) *ScreeningEventCreate {
	if v != nil {
		_c.SetWordScore(*v)
	}
	return _c
}

// SetMemoryScore sets the "memory_score" field.
func (_c *ScreeningEventCreate) SetMemoryScore(v int) *ScreeningEventCreate {
	_c.mutation.SetMemoryScore(v)
	return _c
}

// SetNillableMemoryScore sets the "memory_score" field if the given value is not nil.
func (_c *ScreeningEventCreate) SetNillableMemoryScore(v *int) *ScreeningEventCreate {
	if v != nil {
		_c.SetMemoryScore(*v)
	}
	return _c
}

// SetReactionMs sets the "reaction_ms" field.
func (_c *ScreeningEventCreate) SetReactionMs(v int) *ScreeningEventCreate {
	_c.mutation.SetReactionMs(v)
	return _c
}

// SetNillableReactionMs sets the "reaction_ms" field if the given value is not nil.
func (_c *ScreeningEventCreate) SetNillableReactionMs(v *int) *ScreeningEventCreate {
	if v != nil {
		_c.SetReactionMs(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ScreeningEventCreate) SetDurationSecs(v int) *ScreeningEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ScreeningEventCreate) SetNillableDurationSecs(v *int) *ScreeningEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the ScreeningEventMutation object of the builder.
func (_c *ScreeningEventCreate) Mutation() *ScreeningEventMutation {
	return _c.mutation
}

// Save creates the ScreeningEvent in the database.
func (_c *ScreeningEventCreate) Save(ctx context.Context) (*ScreeningEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScreeningEventCreate) SaveX(ctx context.Context) *ScreeningEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScreeningEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := screeningevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.WordScore(); !ok {
		v := screeningevent.DefaultWordScore
		_c.mutation.SetWordScore(v)
	}
	if _, ok := _c.mutation.MemoryScore(); !ok {
		v := screeningevent.DefaultMemoryScore
		_c.mutation.SetMemoryScore(v)
	}
	if _, ok := _c.mutation.ReactionMs(); !ok {
		v := screeningevent.DefaultReactionMs
		_c.mutation.SetReactionMs(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := screeningevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScreeningEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScreeningEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScreeningEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ScreeningID(); !ok {
		return &ValidationError{Name: "screening_id", err: errors.New(`ent: missing required field "ScreeningEvent.screening_id"`)}
	}
	if v, ok := _c.mutation.ScreeningID(); ok {
		if err := screeningevent.ScreeningIDValidator(v); err != nil {
			return &ValidationError{Name: "screening_id", err: fmt.Errorf(`ent: validator failed for field "ScreeningEvent.screening_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ScreeningEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := screeningevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ScreeningEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordScore(); !ok {
		return &ValidationError{Name: "word_score", err: errors.New(`ent: missing required field "ScreeningEvent.word_score"`)}
	}
	if _, ok := _c.mutation.MemoryScore(); !ok {
		return &ValidationError{Name: "memory_score", err: errors.New(`ent: missing required field "ScreeningEvent.memory_score"`)}
	}
	if _, ok := _c.mutation.ReactionMs(); !ok {
		return &ValidationError{Name: "reaction_ms", err: errors.New(`ent: missing required field "ScreeningEvent.reaction_ms"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ScreeningEvent.duration_secs"`)}
	}
	return nil
}

func (_c *ScreeningEventCreate) sqlSave(ctx context.Context) (*ScreeningEvent, error) {
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

func (_c *ScreeningEventCreate) createSpec() (*ScreeningEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScreeningEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(screeningevent.Table, sqlgraph.NewFieldSpec(screeningevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(screeningevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(screeningevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ScreeningID(); ok {
		_spec.SetField(screeningevent.FieldScreeningID, field.TypeString, value)
		_node.ScreeningID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(screeningevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.WordScore(); ok {
		_spec.SetField(screeningevent.FieldWordScore, field.TypeInt, value)
		_node.WordScore = value
	}
	if value, ok := _c.mutation.MemoryScore(); ok {
		_spec.SetField(screeningevent.FieldMemoryScore, field.TypeInt, value)
		_node.MemoryScore = value
	}
	if value, ok := _c.mutation.ReactionMs(); ok {
		_spec.SetField(screeningevent.FieldReactionMs, field.TypeInt, value)
		_node.ReactionMs = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(screeningevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// ScreeningEventCreateBulk is the builder for creating many ScreeningEvent entities in bulk.
type ScreeningEventCreateBulk struct {
	config
	err      error
	builders []*ScreeningEventCreate
}

// Save creates the ScreeningEvent entities in the database.
func (_c *ScreeningEventCreateBulk) Save(ctx context.Context) ([]*ScreeningEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScreeningEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScreeningEventMutation)
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
func (_c *ScreeningEventCreateBulk) SaveX(ctx context.Context) []*ScreeningEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
