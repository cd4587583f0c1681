// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/acuity/ent/predicate"
	"github.com/tanmay/acuity/ent/screeningevent"
)

// ScreeningEventUpdate is the builder for updating ScreeningEvent entities.
type ScreeningEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScreeningEventMutation
}

// Where appends a list predicates to the ScreeningEventUpdate builder.
func (_u *ScreeningEventUpdate) Where(ps ...predicate.ScreeningEvent) *ScreeningEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScreeningID sets the "screening_id" field.
func (_u *ScreeningEventUpdate) SetScreeningID(v string) *ScreeningEventUpdate {
	_u.mutation.SetScreeningID(v)
	return _u
}

// SetNillableScreeningID sets the "screening_id" field if the given value is not nil.
func (_u *ScreeningEventUpdate) SetNillableScreeningID(v *string) *ScreeningEventUpdate {
	if v != nil {
		_u.SetScreeningID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ScreeningEventUpdate) SetAction(v string) *ScreeningEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ScreeningEventUpdate) SetNillableAction(v *string) *ScreeningEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWordScore sets the "word_score" field.
func (_u *ScreeningEventUpdate) SetWordScore(v int) *ScreeningEventUpdate {
	_u.mutation.ResetWordScore()
	_u.mutation.SetWordScore(v)
	return _u
}

// SetNillableWordScore sets the "word_score" field if the given value is not nil.
func (_u *ScreeningEventUpdate) SetNillableWordScore(v *int) *ScreeningEventUpdate {
	if v != nil {
		_u.SetWordScore(*v)
	}
	return _u
}

// AddWordScore adds value to the "word_score" field.
func (_u *ScreeningEventUpdate) AddWordScore(v int) *ScreeningEventUpdate {
	_u.mutation.AddWordScore(v)
	return _u
}

// SetMemoryScore sets the "memory_score" field.
func (_u *ScreeningEventUpdate) SetMemoryScore(v int) *ScreeningEventUpdate {
	_u.mutation.ResetMemoryScore()
	_u.mutation.SetMemoryScore(v)
	return _u
}

// SetNillableMemoryScore sets the "memory_score" field if the given value is not nil.
func (_u *ScreeningEventUpdate) SetNillableMemoryScore(v *int) *ScreeningEventUpdate {
	if v != nil {
		_u.SetMemoryScore(*v)
	}
	return _u
}

// AddMemoryScore adds value to the "memory_score" field.
func (_u *ScreeningEventUpdate) AddMemoryScore(v int) *ScreeningEventUpdate {
	_u.mutation.AddMemoryScore(v)
	return _u
}

// SetReactionMs sets the "reaction_ms" field.
func (_u *ScreeningEventUpdate) SetReactionMs(v int) *ScreeningEventUpdate {
	_u.mutation.ResetReactionMs()
	_u.mutation.SetReactionMs(v)
	return _u
}

// SetNillableReactionMs sets the "reaction_ms" field if the given value is not nil.
func (_u *ScreeningEventUpdate) SetNillableReactionMs(v *int) *ScreeningEventUpdate {
	if v != nil {
		_u.SetReactionMs(*v)
	}
	return _u
}

// AddReactionMs adds value to the "reaction_ms" field.
func (_u *ScreeningEventUpdate) AddReactionMs(v int) *ScreeningEventUpdate {
	_u.mutation.AddReactionMs(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ScreeningEventUpdate) SetDurationSecs(v int) *ScreeningEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ScreeningEventUpdate) SetNillableDurationSecs(v *int) *ScreeningEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ScreeningEventUpdate) AddDurationSecs(v int) *ScreeningEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ScreeningEventMutation object of the builder.
func (_u *ScreeningEventUpdate) Mutation() *ScreeningEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScreeningEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScreeningEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningEventUpdate) check() error {
	if v, ok := _u.mutation.ScreeningID(); ok {
		if err := screeningevent.ScreeningIDValidator(v); err != nil {
			return &ValidationError{Name: "screening_id", err: fmt.Errorf(`ent: validator failed for field "ScreeningEvent.screening_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := screeningevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ScreeningEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ScreeningEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningevent.Table, screeningevent.Columns, sqlgraph.NewFieldSpec(screeningevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScreeningID(); ok {
		_spec.SetField(screeningevent.FieldScreeningID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(screeningevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordScore(); ok {
		_spec.SetField(screeningevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordScore(); ok {
		_spec.AddField(screeningevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryScore(); ok {
		_spec.SetField(screeningevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryScore(); ok {
		_spec.AddField(screeningevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReactionMs(); ok {
		_spec.SetField(screeningevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionMs(); ok {
		_spec.AddField(screeningevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(screeningevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(screeningevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScreeningEventUpdateOne is the builder for updating a single ScreeningEvent entity.
type ScreeningEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScreeningEventMutation
}

// SetScreeningID sets the "screening_id" field.
func (_u *ScreeningEventUpdateOne) SetScreeningID(v string) *ScreeningEventUpdateOne {
	_u.mutation.SetScreeningID(v)
	return _u
}

// SetNillableScreeningID sets the "screening_id" field if the given value is not nil.
func (_u *ScreeningEventUpdateOne) SetNillableScreeningID(v *string) *ScreeningEventUpdateOne {
	if v != nil {
		_u.SetScreeningID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ScreeningEventUpdateOne) SetAction(v string) *ScreeningEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ScreeningEventUpdateOne) SetNillableAction(v *string) *ScreeningEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWordScore sets the "word_score" field.
func (_u *ScreeningEventUpdateOne) SetWordScore(v int) *ScreeningEventUpdateOne {
	_u.mutation.ResetWordScore()
	_u.mutation.SetWordScore(v)
	return _u
}

// SetNillableWordScore sets the "word_score" field if the given value is not nil.
func (_u *ScreeningEventUpdateOne) SetNillableWordScore(v *int) *ScreeningEventUpdateOne {
	if v != nil {
		_u.SetWordScore(*v)
	}
	return _u
}

// AddWordScore adds value to the "word_score" field.
func (_u *ScreeningEventUpdateOne) AddWordScore(v int) *ScreeningEventUpdateOne {
	_u.mutation.AddWordScore(v)
	return _u
}

// SetMemoryScore sets the "memory_score" field.
func (_u *ScreeningEventUpdateOne) SetMemoryScore(v int) *ScreeningEventUpdateOne {
	_u.mutation.ResetMemoryScore()
	_u.mutation.SetMemoryScore(v)
	return _u
}

// SetNillableMemoryScore sets the "memory_score" field if the given value is not nil.
func (_u *ScreeningEventUpdateOne) SetNillableMemoryScore(v *int) *ScreeningEventUpdateOne {
	if v != nil {
		_u.SetMemoryScore(*v)
	}
	return _u
}

// AddMemoryScore adds value to the "memory_score" field.
func (_u *ScreeningEventUpdateOne) AddMemoryScore(v int) *ScreeningEventUpdateOne {
	_u.mutation.AddMemoryScore(v)
	return _u
}

// SetReactionMs sets the "reaction_ms" field.
func (_u *ScreeningEventUpdateOne) SetReactionMs(v int) *ScreeningEventUpdateOne {
	_u.mutation.ResetReactionMs()
	_u.mutation.SetReactionMs(v)
	return _u
}

// SetNillableReactionMs sets the "reaction_ms" field if the given value is not nil.
func (_u *ScreeningEventUpdateOne) SetNillableReactionMs(v *int) *ScreeningEventUpdateOne {
	if v != nil {
		_u.SetReactionMs(*v)
	}
	return _u
}

// AddReactionMs adds value to the "reaction_ms" field.
func (_u *ScreeningEventUpdateOne) AddReactionMs(v int) *ScreeningEventUpdateOne {
	_u.mutation.AddReactionMs(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ScreeningEventUpdateOne) SetDurationSecs(v int) *ScreeningEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ScreeningEventUpdateOne) SetNillableDurationSecs(v *int) *ScreeningEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ScreeningEventUpdateOne) AddDurationSecs(v int) *ScreeningEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ScreeningEventMutation object of the builder.
func (_u *ScreeningEventUpdateOne) Mutation() *ScreeningEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScreeningEventUpdate builder.
func (_u *ScreeningEventUpdateOne) Where(ps ...predicate.ScreeningEvent) *ScreeningEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScreeningEventUpdateOne) Select(field string, fields ...string) *ScreeningEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScreeningEvent entity.
func (_u *ScreeningEventUpdateOne) Save(ctx context.Context) (*ScreeningEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningEventUpdateOne) SaveX(ctx context.Context) *ScreeningEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScreeningEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningEventUpdateOne) check() error {
	if v, ok := _u.mutation.ScreeningID(); ok {
		if err := screeningevent.ScreeningIDValidator(v); err != nil {
			return &ValidationError{Name: "screening_id", err: fmt.Errorf(`ent: validator failed for field "ScreeningEvent.screening_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := screeningevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ScreeningEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ScreeningEventUpdateOne) sqlSave(ctx context.Context) (_node *ScreeningEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningevent.Table, screeningevent.Columns, sqlgraph.NewFieldSpec(screeningevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScreeningEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screeningevent.FieldID)
		for _, f := range fields {
			if !screeningevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != screeningevent.FieldID {
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
	if value, ok := _u.mutation.ScreeningID(); ok {
		_spec.SetField(screeningevent.FieldScreeningID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(screeningevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordScore(); ok {
		_spec.SetField(screeningevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordScore(); ok {
		_spec.AddField(screeningevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryScore(); ok {
		_spec.SetField(screeningevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryScore(); ok {
		_spec.AddField(screeningevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReactionMs(); ok {
		_spec.SetField(screeningevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionMs(); ok {
		_spec.AddField(screeningevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(screeningevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(screeningevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &ScreeningEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
