// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanmay/acuity/ent/submissionevent"
)

// SubmissionEventCreate is the builder for creating a SubmissionEvent entity.
type SubmissionEventCreate struct {
	config
	mutation *SubmissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SubmissionEventCreate) SetSequence(v int64) *SubmissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SubmissionEventCreate) SetTimestamp(v time.Time) *SubmissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableTimestamp(v *time.Time) *SubmissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetScreeningID sets the "screening_id" field.
func (_c *SubmissionEventCreate) SetScreeningID(v string) *SubmissionEventCreate {
	_c.mutation.SetScreeningID(v)
	return _c
}

// SetWordScore sets the "word_score" field.
func (_c *SubmissionEventCreate) SetWordScore(v int) *SubmissionEventCreate {
	_c.mutation.SetWordScore(v)
	return _c
}

// SetMemoryScore sets the "memory_score" field.
func (_c *SubmissionEventCreate) SetMemoryScore(v int) *SubmissionEventCreate {
	_c.mutation.SetMemoryScore(v)
	return _c
}

// SetReactionMs sets the "reaction_ms" field.
func (_c *SubmissionEventCreate) SetReactionMs(v int) *SubmissionEventCreate {
	_c.mutation.SetReactionMs(v)
	return _c
}

// SetSpeechAttached sets the "speech_attached" field.
func (_c *SubmissionEventCreate) SetSpeechAttached(v bool) *SubmissionEventCreate {
	_c.mutation.SetSpeechAttached(v)
	return _c
}

// SetNillableSpeechAttached sets the "speech_attached" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableSpeechAttached(v *bool) *SubmissionEventCreate {
	if v != nil {
		_c.SetSpeechAttached(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *SubmissionEventCreate) SetSuccess(v bool) *SubmissionEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *SubmissionEventCreate) SetRiskScore(v float64) *SubmissionEventCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableRiskScore(v *float64) *SubmissionEventCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetRiskCategory sets the "risk_category" field.
func (_c *SubmissionEventCreate) SetRiskCategory(v string) *SubmissionEventCreate {
	_c.mutation.SetRiskCategory(v)
	return _c
}

// SetNillableRiskCategory sets the "risk_category" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableRiskCategory(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetRiskCategory(*v)
	}
	return _c
}

// SetCognitiveRisk sets the "cognitive_risk" field.
func (_c *SubmissionEventCreate) SetCognitiveRisk(v float64) *SubmissionEventCreate {
	_c.mutation.SetCognitiveRisk(v)
	return _c
}

// SetNillableCognitiveRisk sets the "cognitive_risk" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableCognitiveRisk(v *float64) *SubmissionEventCreate {
	if v != nil {
		_c.SetCognitiveRisk(*v)
	}
	return _c
}

// SetSpeechAnalyzed sets the "speech_analyzed" field.
func (_c *SubmissionEventCreate) SetSpeechAnalyzed(v bool) *SubmissionEventCreate {
	_c.mutation.SetSpeechAnalyzed(v)
	return _c
}

// SetNillableSpeechAnalyzed sets the "speech_analyzed" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableSpeechAnalyzed(v *bool) *SubmissionEventCreate {
	if v != nil {
		_c.SetSpeechAnalyzed(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *SubmissionEventCreate) SetLatencyMs(v int64) *SubmissionEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableLatencyMs(v *int64) *SubmissionEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubmissionEventCreate) SetErrorMessage(v string) *SubmissionEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableErrorMessage(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_c *SubmissionEventCreate) Mutation() *SubmissionEventMutation {
	return _c.mutation
}

// Save creates the SubmissionEvent in the database.
func (_c *SubmissionEventCreate) Save(ctx context.Context) (*SubmissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionEventCreate) SaveX(ctx context.Context) *SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := submissionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SpeechAttached(); !ok {
		v := submissionevent.DefaultSpeechAttached
		_c.mutation.SetSpeechAttached(v)
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := submissionevent.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.RiskCategory(); !ok {
		v := submissionevent.DefaultRiskCategory
		_c.mutation.SetRiskCategory(v)
	}
	if _, ok := _c.mutation.CognitiveRisk(); !ok {
		v := submissionevent.DefaultCognitiveRisk
		_c.mutation.SetCognitiveRisk(v)
	}
	if _, ok := _c.mutation.SpeechAnalyzed(); !ok {
		v := submissionevent.DefaultSpeechAnalyzed
		_c.mutation.SetSpeechAnalyzed(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := submissionevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := submissionevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SubmissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SubmissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ScreeningID(); !ok {
		return &ValidationError{Name: "screening_id", err: errors.New(`ent: missing required field "SubmissionEvent.screening_id"`)}
	}
	if v, ok := _c.mutation.ScreeningID(); ok {
		if err := submissionevent.ScreeningIDValidator(v); err != nil {
			return &ValidationError{Name: "screening_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.screening_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordScore(); !ok {
		return &ValidationError{Name: "word_score", err: errors.New(`ent: missing required field "SubmissionEvent.word_score"`)}
	}
	if _, ok := _c.mutation.MemoryScore(); !ok {
		return &ValidationError{Name: "memory_score", err: errors.New(`ent: missing required field "SubmissionEvent.memory_score"`)}
	}
	if _, ok := _c.mutation.ReactionMs(); !ok {
		return &ValidationError{Name: "reaction_ms", err: errors.New(`ent: missing required field "SubmissionEvent.reaction_ms"`)}
	}
	if _, ok := _c.mutation.SpeechAttached(); !ok {
		return &ValidationError{Name: "speech_attached", err: errors.New(`ent: missing required field "SubmissionEvent.speech_attached"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "SubmissionEvent.success"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "SubmissionEvent.risk_score"`)}
	}
	if _, ok := _c.mutation.RiskCategory(); !ok {
		return &ValidationError{Name: "risk_category", err: errors.New(`ent: missing required field "SubmissionEvent.risk_category"`)}
	}
	if _, ok := _c.mutation.CognitiveRisk(); !ok {
		return &ValidationError{Name: "cognitive_risk", err: errors.New(`ent: missing required field "SubmissionEvent.cognitive_risk"`)}
	}
	if _, ok := _c.mutation.SpeechAnalyzed(); !ok {
		return &ValidationError{Name: "speech_analyzed", err: errors.New(`ent: missing required field "SubmissionEvent.speech_analyzed"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "SubmissionEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "SubmissionEvent.error_message"`)}
	}
	return nil
}

func (_c *SubmissionEventCreate) sqlSave(ctx context.Context) (*SubmissionEvent, error) {
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

func (_c *SubmissionEventCreate) createSpec() (*SubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionevent.Table, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(submissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(submissionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ScreeningID(); ok {
		_spec.SetField(submissionevent.FieldScreeningID, field.TypeString, value)
		_node.ScreeningID = value
	}
	if value, ok := _c.mutation.WordScore(); ok {
		_spec.SetField(submissionevent.FieldWordScore, field.TypeInt, value)
		_node.WordScore = value
	}
	if value, ok := _c.mutation.MemoryScore(); ok {
		_spec.SetField(submissionevent.FieldMemoryScore, field.TypeInt, value)
		_node.MemoryScore = value
	}
	if value, ok := _c.mutation.ReactionMs(); ok {
		_spec.SetField(submissionevent.FieldReactionMs, field.TypeInt, value)
		_node.ReactionMs = value
	}
	if value, ok := _c.mutation.SpeechAttached(); ok {
		_spec.SetField(submissionevent.FieldSpeechAttached, field.TypeBool, value)
		_node.SpeechAttached = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(submissionevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(submissionevent.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.RiskCategory(); ok {
		_spec.SetField(submissionevent.FieldRiskCategory, field.TypeString, value)
		_node.RiskCategory = value
	}
	if value, ok := _c.mutation.CognitiveRisk(); ok {
		_spec.SetField(submissionevent.FieldCognitiveRisk, field.TypeFloat64, value)
		_node.CognitiveRisk = value
	}
	if value, ok := _c.mutation.SpeechAnalyzed(); ok {
		_spec.SetField(submissionevent.FieldSpeechAnalyzed, field.TypeBool, value)
		_node.SpeechAnalyzed = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// SubmissionEventCreateBulk is the builder for creating many SubmissionEvent entities in bulk.
type SubmissionEventCreateBulk struct {
	config
	err      error
	builders []*SubmissionEventCreate
}

// Save creates the SubmissionEvent entities in the database.
func (_c *SubmissionEventCreateBulk) Save(ctx context.Context) ([]*SubmissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionEventMutation)
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
func (_c *SubmissionEventCreateBulk) SaveX(ctx context.Context) []*SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
