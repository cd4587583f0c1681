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
	"github.com/tanmay/acuity/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScreeningID sets the "screening_id" field.
func (_u *SubmissionEventUpdate) SetScreeningID(v string) *SubmissionEventUpdate {
	_u.mutation.SetScreeningID(v)
	return _u
}

// SetNillableScreeningID sets the "screening_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableScreeningID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetScreeningID(*v)
	}
	return _u
}

// SetWordScore sets the "word_score" field.
func (_u *SubmissionEventUpdate) SetWordScore(v int) *SubmissionEventUpdate {
	_u.mutation.ResetWordScore()
	_u.mutation.SetWordScore(v)
	return _u
}

// SetNillableWordScore sets the "word_score" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableWordScore(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetWordScore(*v)
	}
	return _u
}

// AddWordScore adds value to the "word_score" field.
func (_u *SubmissionEventUpdate) AddWordScore(v int) *SubmissionEventUpdate {
	_u.mutation.AddWordScore(v)
	return _u
}

// SetMemoryScore sets the "memory_score" field.
func (_u *SubmissionEventUpdate) SetMemoryScore(v int) *SubmissionEventUpdate {
	_u.mutation.ResetMemoryScore()
	_u.mutation.SetMemoryScore(v)
	return _u
}

// SetNillableMemoryScore sets the "memory_score" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableMemoryScore(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetMemoryScore(*v)
	}
	return _u
}

// AddMemoryScore adds value to the "memory_score" field.
func (_u *SubmissionEventUpdate) AddMemoryScore(v int) *SubmissionEventUpdate {
	_u.mutation.AddMemoryScore(v)
	return _u
}

// SetReactionMs sets the "reaction_ms" field.
func (_u *SubmissionEventUpdate) SetReactionMs(v int) *SubmissionEventUpdate {
	_u.mutation.ResetReactionMs()
	_u.mutation.SetReactionMs(v)
	return _u
}

// SetNillableReactionMs sets the "reaction_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableReactionMs(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetReactionMs(*v)
	}
	return _u
}

// AddReactionMs adds value to the "reaction_ms" field.
func (_u *SubmissionEventUpdate) AddReactionMs(v int) *SubmissionEventUpdate {
	_u.mutation.AddReactionMs(v)
	return _u
}

// SetSpeechAttached sets the "speech_attached" field.
func (_u *SubmissionEventUpdate) SetSpeechAttached(v bool) *SubmissionEventUpdate {
	_u.mutation.SetSpeechAttached(v)
	return _u
}

// SetNillableSpeechAttached sets the "speech_attached" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSpeechAttached(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSpeechAttached(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SubmissionEventUpdate) SetSuccess(v bool) *SubmissionEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSuccess(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *SubmissionEventUpdate) SetRiskScore(v float64) *SubmissionEventUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableRiskScore(v *float64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *SubmissionEventUpdate) AddRiskScore(v float64) *SubmissionEventUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskCategory sets the "risk_category" field.
func (_u *SubmissionEventUpdate) SetRiskCategory(v string) *SubmissionEventUpdate {
	_u.mutation.SetRiskCategory(v)
	return _u
}

// SetNillableRiskCategory sets the "risk_category" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableRiskCategory(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetRiskCategory(*v)
	}
	return _u
}

// SetCognitiveRisk sets the "cognitive_risk" field.
func (_u *SubmissionEventUpdate) SetCognitiveRisk(v float64) *SubmissionEventUpdate {
	_u.mutation.ResetCognitiveRisk()
	_u.mutation.SetCognitiveRisk(v)
	return _u
}

// SetNillableCognitiveRisk sets the "cognitive_risk" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableCognitiveRisk(v *float64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetCognitiveRisk(*v)
	}
	return _u
}

// AddCognitiveRisk adds value to the "cognitive_risk" field.
func (_u *SubmissionEventUpdate) AddCognitiveRisk(v float64) *SubmissionEventUpdate {
	_u.mutation.AddCognitiveRisk(v)
	return _u
}

// SetSpeechAnalyzed sets the "speech_analyzed" field.
func (_u *SubmissionEventUpdate) SetSpeechAnalyzed(v bool) *SubmissionEventUpdate {
	_u.mutation.SetSpeechAnalyzed(v)
	return _u
}

// SetNillableSpeechAnalyzed sets the "speech_analyzed" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSpeechAnalyzed(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSpeechAnalyzed(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SubmissionEventUpdate) SetLatencyMs(v int64) *SubmissionEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableLatencyMs(v *int64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SubmissionEventUpdate) AddLatencyMs(v int64) *SubmissionEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionEventUpdate) SetErrorMessage(v string) *SubmissionEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableErrorMessage(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.ScreeningID(); ok {
		if err := submissionevent.ScreeningIDValidator(v); err != nil {
			return &ValidationError{Name: "screening_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.screening_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScreeningID(); ok {
		_spec.SetField(submissionevent.FieldScreeningID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordScore(); ok {
		_spec.SetField(submissionevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordScore(); ok {
		_spec.AddField(submissionevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryScore(); ok {
		_spec.SetField(submissionevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryScore(); ok {
		_spec.AddField(submissionevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReactionMs(); ok {
		_spec.SetField(submissionevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionMs(); ok {
		_spec.AddField(submissionevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeechAttached(); ok {
		_spec.SetField(submissionevent.FieldSpeechAttached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(submissionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(submissionevent.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(submissionevent.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskCategory(); ok {
		_spec.SetField(submissionevent.FieldRiskCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveRisk(); ok {
		_spec.SetField(submissionevent.FieldCognitiveRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCognitiveRisk(); ok {
		_spec.AddField(submissionevent.FieldCognitiveRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpeechAnalyzed(); ok {
		_spec.SetField(submissionevent.FieldSpeechAnalyzed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetScreeningID sets the "screening_id" field.
func (_u *SubmissionEventUpdateOne) SetScreeningID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetScreeningID(v)
	return _u
}

// SetNillableScreeningID sets the "screening_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableScreeningID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetScreeningID(*v)
	}
	return _u
}

// SetWordScore sets the "word_score" field.
func (_u *SubmissionEventUpdateOne) SetWordScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetWordScore()
	_u.mutation.SetWordScore(v)
	return _u
}

// SetNillableWordScore sets the "word_score" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableWordScore(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetWordScore(*v)
	}
	return _u
}

// AddWordScore adds value to the "word_score" field.
func (_u *SubmissionEventUpdateOne) AddWordScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddWordScore(v)
	return _u
}

// SetMemoryScore sets the "memory_score" field.
func (_u *SubmissionEventUpdateOne) SetMemoryScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetMemoryScore()
	_u.mutation.SetMemoryScore(v)
	return _u
}

// SetNillableMemoryScore sets the "memory_score" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableMemoryScore(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetMemoryScore(*v)
	}
	return _u
}

// AddMemoryScore adds value to the "memory_score" field.
func (_u *SubmissionEventUpdateOne) AddMemoryScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddMemoryScore(v)
	return _u
}

// SetReactionMs sets the "reaction_ms" field.
func (_u *SubmissionEventUpdateOne) SetReactionMs(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetReactionMs()
	_u.mutation.SetReactionMs(v)
	return _u
}

// SetNillableReactionMs sets the "reaction_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableReactionMs(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetReactionMs(*v)
	}
	return _u
}

// AddReactionMs adds value to the "reaction_ms" field.
func (_u *SubmissionEventUpdateOne) AddReactionMs(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddReactionMs(v)
	return _u
}

// SetSpeechAttached sets the "speech_attached" field.
func (_u *SubmissionEventUpdateOne) SetSpeechAttached(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetSpeechAttached(v)
	return _u
}

// SetNillableSpeechAttached sets the "speech_attached" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSpeechAttached(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSpeechAttached(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SubmissionEventUpdateOne) SetSuccess(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSuccess(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *SubmissionEventUpdateOne) SetRiskScore(v float64) *SubmissionEventUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableRiskScore(v *float64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *SubmissionEventUpdateOne) AddRiskScore(v float64) *SubmissionEventUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskCategory sets the "risk_category" field.
func (_u *SubmissionEventUpdateOne) SetRiskCategory(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetRiskCategory(v)
	return _u
}

// SetNillableRiskCategory sets the "risk_category" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableRiskCategory(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetRiskCategory(*v)
	}
	return _u
}

// SetCognitiveRisk sets the "cognitive_risk" field.
func (_u *SubmissionEventUpdateOne) SetCognitiveRisk(v float64) *SubmissionEventUpdateOne {
	_u.mutation.ResetCognitiveRisk()
	_u.mutation.SetCognitiveRisk(v)
	return _u
}

// SetNillableCognitiveRisk sets the "cognitive_risk" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableCognitiveRisk(v *float64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetCognitiveRisk(*v)
	}
	return _u
}

// AddCognitiveRisk adds value to the "cognitive_risk" field.
func (_u *SubmissionEventUpdateOne) AddCognitiveRisk(v float64) *SubmissionEventUpdateOne {
	_u.mutation.AddCognitiveRisk(v)
	return _u
}

// SetSpeechAnalyzed sets the "speech_analyzed" field.
func (_u *SubmissionEventUpdateOne) SetSpeechAnalyzed(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetSpeechAnalyzed(v)
	return _u
}

// SetNillableSpeechAnalyzed sets the "speech_analyzed" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSpeechAnalyzed(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSpeechAnalyzed(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SubmissionEventUpdateOne) SetLatencyMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableLatencyMs(v *int64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SubmissionEventUpdateOne) AddLatencyMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionEventUpdateOne) SetErrorMessage(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableErrorMessage(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.ScreeningID(); ok {
		if err := submissionevent.ScreeningIDValidator(v); err != nil {
			return &ValidationError{Name: "screening_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.screening_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
		_spec.SetField(submissionevent.FieldScreeningID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordScore(); ok {
		_spec.SetField(submissionevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordScore(); ok {
		_spec.AddField(submissionevent.FieldWordScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryScore(); ok {
		_spec.SetField(submissionevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryScore(); ok {
		_spec.AddField(submissionevent.FieldMemoryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReactionMs(); ok {
		_spec.SetField(submissionevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionMs(); ok {
		_spec.AddField(submissionevent.FieldReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeechAttached(); ok {
		_spec.SetField(submissionevent.FieldSpeechAttached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(submissionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(submissionevent.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(submissionevent.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskCategory(); ok {
		_spec.SetField(submissionevent.FieldRiskCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveRisk(); ok {
		_spec.SetField(submissionevent.FieldCognitiveRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCognitiveRisk(); ok {
		_spec.AddField(submissionevent.FieldCognitiveRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpeechAnalyzed(); ok {
		_spec.SetField(submissionevent.FieldSpeechAnalyzed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
