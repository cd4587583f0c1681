// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/acuity/ent/predicate"
	"github.com/tanmay/acuity/ent/screeningevent"
	"github.com/tanmay/acuity/ent/submissionevent"
	"github.com/tanmay/acuity/ent/taskevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeScreeningEvent  = "ScreeningEvent"
	TypeSubmissionEvent = "SubmissionEvent"
	TypeTaskEvent       = "TaskEvent"
)

// ScreeningEventMutation represents an operation that mutates the ScreeningEvent nodes in the graph.
type ScreeningEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	screening_id     *string
	action           *string
	word_score       *int
	addword_score    *int
	memory_score     *int
	addmemory_score  *int
	reaction_ms      *int
	addreaction_ms   *int
	duration_secs    *int
	addduration_secs *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ScreeningEvent, error)
	predicates       []predicate.ScreeningEvent
}

var _ ent.Mutation = (*ScreeningEventMutation)(nil)

// screeningeventOption allows management of the mutation configuration using functional options.
type screeningeventOption func(*ScreeningEventMutation)

// newScreeningEventMutation creates new mutation for the ScreeningEvent entity.
func newScreeningEventMutation(c config, op Op, opts ...screeningeventOption) *ScreeningEventMutation {
	m := &ScreeningEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScreeningEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScreeningEventID sets the ID field of the mutation.
func withScreeningEventID(id int) screeningeventOption {
	return func(m *ScreeningEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScreeningEvent
		)
		m.oldValue = func(ctx context.Context) (*ScreeningEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScreeningEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScreeningEvent sets the old ScreeningEvent of the mutation.
func withScreeningEvent(node *ScreeningEvent) screeningeventOption {
	return func(m *ScreeningEventMutation) {
		m.oldValue = func(context.Context) (*ScreeningEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScreeningEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScreeningEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScreeningEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScreeningEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScreeningEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScreeningEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScreeningEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ScreeningEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScreeningEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScreeningEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScreeningEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScreeningEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ScreeningEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetScreeningID sets the "screening_id" field.
func (m *ScreeningEventMutation) SetScreeningID(s string) {
	m.screening_id = &s
}

// ScreeningID returns the value of the "screening_id" field in the mutation.
func (m *ScreeningEventMutation) ScreeningID() (r string, exists bool) {
	v := m.screening_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScreeningID returns the old "screening_id" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldScreeningID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreeningID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreeningID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreeningID: %w", err)
	}
	return oldValue.ScreeningID, nil
}

// ResetScreeningID resets all changes to the "screening_id" field.
func (m *ScreeningEventMutation) ResetScreeningID() {
	m.screening_id = nil
}

// SetAction sets the "action" field.
func (m *ScreeningEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ScreeningEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ScreeningEventMutation) ResetAction() {
	m.action = nil
}

// SetWordScore sets the "word_score" field.
func (m *ScreeningEventMutation) SetWordScore(i int) {
	m.word_score = &i
	m.addword_score = nil
}

// WordScore returns the value of the "word_score" field in the mutation.
func (m *ScreeningEventMutation) WordScore() (r int, exists bool) {
	v := m.word_score
	if v == nil {
		return
	}
	return *v, true
}

// OldWordScore returns the old "word_score" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldWordScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordScore: %w", err)
	}
	return oldValue.WordScore, nil
}

// AddWordScore adds i to the "word_score" field.
func (m *ScreeningEventMutation) AddWordScore(i int) {
	if m.addword_score != nil {
		*m.addword_score += i
	} else {
		m.addword_score = &i
	}
}

// AddedWordScore returns the value that was added to the "word_score" field in this mutation.
func (m *ScreeningEventMutation) AddedWordScore() (r int, exists bool) {
	v := m.addword_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordScore resets all changes to the "word_score" field.
func (m *ScreeningEventMutation) ResetWordScore() {
	m.word_score = nil
	m.addword_score = nil
}

// SetMemoryScore sets the "memory_score" field.
func (m *ScreeningEventMutation) SetMemoryScore(i int) {
	m.memory_score = &i
	m.addmemory_score = nil
}

// MemoryScore returns the value of the "memory_score" field in the mutation.
func (m *ScreeningEventMutation) MemoryScore() (r int, exists bool) {
	v := m.memory_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryScore returns the old "memory_score" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldMemoryScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryScore: %w", err)
	}
	return oldValue.MemoryScore, nil
}

// AddMemoryScore adds i to the "memory_score" field.
func (m *ScreeningEventMutation) AddMemoryScore(i int) {
	if m.addmemory_score != nil {
		*m.addmemory_score += i
	} else {
		m.addmemory_score = &i
	}
}

// AddedMemoryScore returns the value that was added to the "memory_score" field in this mutation.
func (m *ScreeningEventMutation) AddedMemoryScore() (r int, exists bool) {
	v := m.addmemory_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryScore resets all changes to the "memory_score" field.
func (m *ScreeningEventMutation) ResetMemoryScore() {
	m.memory_score = nil
	m.addmemory_score = nil
}

// SetReactionMs sets the "reaction_ms" field.
func (m *ScreeningEventMutation) SetReactionMs(i int) {
	m.reaction_ms = &i
	m.addreaction_ms = nil
}

// ReactionMs returns the value of the "reaction_ms" field in the mutation.
func (m *ScreeningEventMutation) ReactionMs() (r int, exists bool) {
	v := m.reaction_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldReactionMs returns the old "reaction_ms" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldReactionMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactionMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactionMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactionMs: %w", err)
	}
	return oldValue.ReactionMs, nil
}

// AddReactionMs adds i to the "reaction_ms" field.
func (m *ScreeningEventMutation) AddReactionMs(i int) {
	if m.addreaction_ms != nil {
		*m.addreaction_ms += i
	} else {
		m.addreaction_ms = &i
	}
}

// AddedReactionMs returns the value that was added to the "reaction_ms" field in this mutation.
func (m *ScreeningEventMutation) AddedReactionMs() (r int, exists bool) {
	v := m.addreaction_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetReactionMs resets all changes to the "reaction_ms" field.
func (m *ScreeningEventMutation) ResetReactionMs() {
	m.reaction_ms = nil
	m.addreaction_ms = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *ScreeningEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *ScreeningEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the ScreeningEvent entity.
// If the ScreeningEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *ScreeningEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *ScreeningEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *ScreeningEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the ScreeningEventMutation builder.
func (m *ScreeningEventMutation) Where(ps ...predicate.ScreeningEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScreeningEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScreeningEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScreeningEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScreeningEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScreeningEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScreeningEvent).
func (m *ScreeningEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScreeningEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, screeningevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, screeningevent.FieldTimestamp)
	}
	if m.screening_id != nil {
		fields = append(fields, screeningevent.FieldScreeningID)
	}
	if m.action != nil {
		fields = append(fields, screeningevent.FieldAction)
	}
	if m.word_score != nil {
		fields = append(fields, screeningevent.FieldWordScore)
	}
	if m.memory_score != nil {
		fields = append(fields, screeningevent.FieldMemoryScore)
	}
	if m.reaction_ms != nil {
		fields = append(fields, screeningevent.FieldReactionMs)
	}
	if m.duration_secs != nil {
		fields = append(fields, screeningevent.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScreeningEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case screeningevent.FieldSequence:
		return m.Sequence()
	case screeningevent.FieldTimestamp:
		return m.Timestamp()
	case screeningevent.FieldScreeningID:
		return m.ScreeningID()
	case screeningevent.FieldAction:
		return m.Action()
	case screeningevent.FieldWordScore:
		return m.WordScore()
	case screeningevent.FieldMemoryScore:
		return m.MemoryScore()
	case screeningevent.FieldReactionMs:
		return m.ReactionMs()
	case screeningevent.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScreeningEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case screeningevent.FieldSequence:
		return m.OldSequence(ctx)
	case screeningevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case screeningevent.FieldScreeningID:
		return m.OldScreeningID(ctx)
	case screeningevent.FieldAction:
		return m.OldAction(ctx)
	case screeningevent.FieldWordScore:
		return m.OldWordScore(ctx)
	case screeningevent.FieldMemoryScore:
		return m.OldMemoryScore(ctx)
	case screeningevent.FieldReactionMs:
		return m.OldReactionMs(ctx)
	case screeningevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown ScreeningEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case screeningevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case screeningevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case screeningevent.FieldScreeningID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreeningID(v)
		return nil
	case screeningevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case screeningevent.FieldWordScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordScore(v)
		return nil
	case screeningevent.FieldMemoryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryScore(v)
		return nil
	case screeningevent.FieldReactionMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactionMs(v)
		return nil
	case screeningevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown ScreeningEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScreeningEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, screeningevent.FieldSequence)
	}
	if m.addword_score != nil {
		fields = append(fields, screeningevent.FieldWordScore)
	}
	if m.addmemory_score != nil {
		fields = append(fields, screeningevent.FieldMemoryScore)
	}
	if m.addreaction_ms != nil {
		fields = append(fields, screeningevent.FieldReactionMs)
	}
	if m.addduration_secs != nil {
		fields = append(fields, screeningevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScreeningEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case screeningevent.FieldSequence:
		return m.AddedSequence()
	case screeningevent.FieldWordScore:
		return m.AddedWordScore()
	case screeningevent.FieldMemoryScore:
		return m.AddedMemoryScore()
	case screeningevent.FieldReactionMs:
		return m.AddedReactionMs()
	case screeningevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case screeningevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case screeningevent.FieldWordScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordScore(v)
		return nil
	case screeningevent.FieldMemoryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryScore(v)
		return nil
	case screeningevent.FieldReactionMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReactionMs(v)
		return nil
	case screeningevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown ScreeningEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScreeningEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScreeningEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScreeningEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScreeningEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScreeningEventMutation) ResetField(name string) error {
	switch name {
	case screeningevent.FieldSequence:
		m.ResetSequence()
		return nil
	case screeningevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case screeningevent.FieldScreeningID:
		m.ResetScreeningID()
		return nil
	case screeningevent.FieldAction:
		m.ResetAction()
		return nil
	case screeningevent.FieldWordScore:
		m.ResetWordScore()
		return nil
	case screeningevent.FieldMemoryScore:
		m.ResetMemoryScore()
		return nil
	case screeningevent.FieldReactionMs:
		m.ResetReactionMs()
		return nil
	case screeningevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown ScreeningEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScreeningEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScreeningEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScreeningEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScreeningEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScreeningEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScreeningEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScreeningEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScreeningEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScreeningEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScreeningEvent edge %s", name)
}

// SubmissionEventMutation represents an operation that mutates the SubmissionEvent nodes in the graph.
type SubmissionEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	screening_id      *string
	word_score        *int
	addword_score     *int
	memory_score      *int
	addmemory_score   *int
	reaction_ms       *int
	addreaction_ms    *int
	speech_attached   *bool
	success           *bool
	risk_score        *float64
	addrisk_score     *float64
	risk_category     *string
	cognitive_risk    *float64
	addcognitive_risk *float64
	speech_analyzed   *bool
	latency_ms        *int64
	addlatency_ms     *int64
	error_message     *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SubmissionEvent, error)
	predicates        []predicate.SubmissionEvent
}

var _ ent.Mutation = (*SubmissionEventMutation)(nil)

// submissioneventOption allows management of the mutation configuration using functional options.
type submissioneventOption func(*SubmissionEventMutation)

// newSubmissionEventMutation creates new mutation for the SubmissionEvent entity.
func newSubmissionEventMutation(c config, op Op, opts ...submissioneventOption) *SubmissionEventMutation {
	m := &SubmissionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmissionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionEventID sets the ID field of the mutation.
func withSubmissionEventID(id int) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmissionEvent
		)
		m.oldValue = func(ctx context.Context) (*SubmissionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmissionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmissionEvent sets the old SubmissionEvent of the mutation.
func withSubmissionEvent(node *SubmissionEvent) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		m.oldValue = func(context.Context) (*SubmissionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmissionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SubmissionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SubmissionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SubmissionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SubmissionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SubmissionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SubmissionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SubmissionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SubmissionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetScreeningID sets the "screening_id" field.
func (m *SubmissionEventMutation) SetScreeningID(s string) {
	m.screening_id = &s
}

// ScreeningID returns the value of the "screening_id" field in the mutation.
func (m *SubmissionEventMutation) ScreeningID() (r string, exists bool) {
	v := m.screening_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScreeningID returns the old "screening_id" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldScreeningID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreeningID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreeningID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreeningID: %w", err)
	}
	return oldValue.ScreeningID, nil
}

// ResetScreeningID resets all changes to the "screening_id" field.
func (m *SubmissionEventMutation) ResetScreeningID() {
	m.screening_id = nil
}

// SetWordScore sets the "word_score" field.
func (m *SubmissionEventMutation) SetWordScore(i int) {
	m.word_score = &i
	m.addword_score = nil
}

// WordScore returns the value of the "word_score" field in the mutation.
func (m *SubmissionEventMutation) WordScore() (r int, exists bool) {
	v := m.word_score
	if v == nil {
		return
	}
	return *v, true
}

// OldWordScore returns the old "word_score" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldWordScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordScore: %w", err)
	}
	return oldValue.WordScore, nil
}

// AddWordScore adds i to the "word_score" field.
func (m *SubmissionEventMutation) AddWordScore(i int) {
	if m.addword_score != nil {
		*m.addword_score += i
	} else {
		m.addword_score = &i
	}
}

// AddedWordScore returns the value that was added to the "word_score" field in this mutation.
func (m *SubmissionEventMutation) AddedWordScore() (r int, exists bool) {
	v := m.addword_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordScore resets all changes to the "word_score" field.
func (m *SubmissionEventMutation) ResetWordScore() {
	m.word_score = nil
	m.addword_score = nil
}

// SetMemoryScore sets the "memory_score" field.
func (m *SubmissionEventMutation) SetMemoryScore(i int) {
	m.memory_score = &i
	m.addmemory_score = nil
}

// MemoryScore returns the value of the "memory_score" field in the mutation.
func (m *SubmissionEventMutation) MemoryScore() (r int, exists bool) {
	v := m.memory_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryScore returns the old "memory_score" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldMemoryScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryScore: %w", err)
	}
	return oldValue.MemoryScore, nil
}

// AddMemoryScore adds i to the "memory_score" field.
func (m *SubmissionEventMutation) AddMemoryScore(i int) {
	if m.addmemory_score != nil {
		*m.addmemory_score += i
	} else {
		m.addmemory_score = &i
	}
}

// AddedMemoryScore returns the value that was added to the "memory_score" field in this mutation.
func (m *SubmissionEventMutation) AddedMemoryScore() (r int, exists bool) {
	v := m.addmemory_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryScore resets all changes to the "memory_score" field.
func (m *SubmissionEventMutation) ResetMemoryScore() {
	m.memory_score = nil
	m.addmemory_score = nil
}

// SetReactionMs sets the "reaction_ms" field.
func (m *SubmissionEventMutation) SetReactionMs(i int) {
	m.reaction_ms = &i
	m.addreaction_ms = nil
}

// ReactionMs returns the value of the "reaction_ms" field in the mutation.
func (m *SubmissionEventMutation) ReactionMs() (r int, exists bool) {
	v := m.reaction_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldReactionMs returns the old "reaction_ms" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldReactionMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactionMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactionMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactionMs: %w", err)
	}
	return oldValue.ReactionMs, nil
}

// AddReactionMs adds i to the "reaction_ms" field.
func (m *SubmissionEventMutation) AddReactionMs(i int) {
	if m.addreaction_ms != nil {
		*m.addreaction_ms += i
	} else {
		m.addreaction_ms = &i
	}
}

// AddedReactionMs returns the value that was added to the "reaction_ms" field in this mutation.
func (m *SubmissionEventMutation) AddedReactionMs() (r int, exists bool) {
	v := m.addreaction_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetReactionMs resets all changes to the "reaction_ms" field.
func (m *SubmissionEventMutation) ResetReactionMs() {
	m.reaction_ms = nil
	m.addreaction_ms = nil
}

// SetSpeechAttached sets the "speech_attached" field.
func (m *SubmissionEventMutation) SetSpeechAttached(b bool) {
	m.speech_attached = &b
}

// SpeechAttached returns the value of the "speech_attached" field in the mutation.
func (m *SubmissionEventMutation) SpeechAttached() (r bool, exists bool) {
	v := m.speech_attached
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeechAttached returns the old "speech_attached" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSpeechAttached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeechAttached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeechAttached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeechAttached: %w", err)
	}
	return oldValue.SpeechAttached, nil
}

// ResetSpeechAttached resets all changes to the "speech_attached" field.
func (m *SubmissionEventMutation) ResetSpeechAttached() {
	m.speech_attached = nil
}

// SetSuccess sets the "success" field.
func (m *SubmissionEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *SubmissionEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *SubmissionEventMutation) ResetSuccess() {
	m.success = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *SubmissionEventMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *SubmissionEventMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *SubmissionEventMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *SubmissionEventMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *SubmissionEventMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetRiskCategory sets the "risk_category" field.
func (m *SubmissionEventMutation) SetRiskCategory(s string) {
	m.risk_category = &s
}

// RiskCategory returns the value of the "risk_category" field in the mutation.
func (m *SubmissionEventMutation) RiskCategory() (r string, exists bool) {
	v := m.risk_category
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskCategory returns the old "risk_category" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldRiskCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskCategory: %w", err)
	}
	return oldValue.RiskCategory, nil
}

// ResetRiskCategory resets all changes to the "risk_category" field.
func (m *SubmissionEventMutation) ResetRiskCategory() {
	m.risk_category = nil
}

// SetCognitiveRisk sets the "cognitive_risk" field.
func (m *SubmissionEventMutation) SetCognitiveRisk(f float64) {
	m.cognitive_risk = &f
	m.addcognitive_risk = nil
}

// CognitiveRisk returns the value of the "cognitive_risk" field in the mutation.
func (m *SubmissionEventMutation) CognitiveRisk() (r float64, exists bool) {
	v := m.cognitive_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveRisk returns the old "cognitive_risk" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldCognitiveRisk(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveRisk: %w", err)
	}
	return oldValue.CognitiveRisk, nil
}

// AddCognitiveRisk adds f to the "cognitive_risk" field.
func (m *SubmissionEventMutation) AddCognitiveRisk(f float64) {
	if m.addcognitive_risk != nil {
		*m.addcognitive_risk += f
	} else {
		m.addcognitive_risk = &f
	}
}

// AddedCognitiveRisk returns the value that was added to the "cognitive_risk" field in this mutation.
func (m *SubmissionEventMutation) AddedCognitiveRisk() (r float64, exists bool) {
	v := m.addcognitive_risk
	if v == nil {
		return
	}
	return *v, true
}

// ResetCognitiveRisk resets all changes to the "cognitive_risk" field.
func (m *SubmissionEventMutation) ResetCognitiveRisk() {
	m.cognitive_risk = nil
	m.addcognitive_risk = nil
}

// SetSpeechAnalyzed sets the "speech_analyzed" field.
func (m *SubmissionEventMutation) SetSpeechAnalyzed(b bool) {
	m.speech_analyzed = &b
}

// SpeechAnalyzed returns the value of the "speech_analyzed" field in the mutation.
func (m *SubmissionEventMutation) SpeechAnalyzed() (r bool, exists bool) {
	v := m.speech_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeechAnalyzed returns the old "speech_analyzed" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSpeechAnalyzed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeechAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeechAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeechAnalyzed: %w", err)
	}
	return oldValue.SpeechAnalyzed, nil
}

// ResetSpeechAnalyzed resets all changes to the "speech_analyzed" field.
func (m *SubmissionEventMutation) ResetSpeechAnalyzed() {
	m.speech_analyzed = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *SubmissionEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *SubmissionEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *SubmissionEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *SubmissionEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *SubmissionEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SubmissionEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubmissionEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubmissionEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the SubmissionEventMutation builder.
func (m *SubmissionEventMutation) Where(ps ...predicate.SubmissionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmissionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmissionEvent).
func (m *SubmissionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, submissionevent.FieldTimestamp)
	}
	if m.screening_id != nil {
		fields = append(fields, submissionevent.FieldScreeningID)
	}
	if m.word_score != nil {
		fields = append(fields, submissionevent.FieldWordScore)
	}
	if m.memory_score != nil {
		fields = append(fields, submissionevent.FieldMemoryScore)
	}
	if m.reaction_ms != nil {
		fields = append(fields, submissionevent.FieldReactionMs)
	}
	if m.speech_attached != nil {
		fields = append(fields, submissionevent.FieldSpeechAttached)
	}
	if m.success != nil {
		fields = append(fields, submissionevent.FieldSuccess)
	}
	if m.risk_score != nil {
		fields = append(fields, submissionevent.FieldRiskScore)
	}
	if m.risk_category != nil {
		fields = append(fields, submissionevent.FieldRiskCategory)
	}
	if m.cognitive_risk != nil {
		fields = append(fields, submissionevent.FieldCognitiveRisk)
	}
	if m.speech_analyzed != nil {
		fields = append(fields, submissionevent.FieldSpeechAnalyzed)
	}
	if m.latency_ms != nil {
		fields = append(fields, submissionevent.FieldLatencyMs)
	}
	if m.error_message != nil {
		fields = append(fields, submissionevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.Sequence()
	case submissionevent.FieldTimestamp:
		return m.Timestamp()
	case submissionevent.FieldScreeningID:
		return m.ScreeningID()
	case submissionevent.FieldWordScore:
		return m.WordScore()
	case submissionevent.FieldMemoryScore:
		return m.MemoryScore()
	case submissionevent.FieldReactionMs:
		return m.ReactionMs()
	case submissionevent.FieldSpeechAttached:
		return m.SpeechAttached()
	case submissionevent.FieldSuccess:
		return m.Success()
	case submissionevent.FieldRiskScore:
		return m.RiskScore()
	case submissionevent.FieldRiskCategory:
		return m.RiskCategory()
	case submissionevent.FieldCognitiveRisk:
		return m.CognitiveRisk()
	case submissionevent.FieldSpeechAnalyzed:
		return m.SpeechAnalyzed()
	case submissionevent.FieldLatencyMs:
		return m.LatencyMs()
	case submissionevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submissionevent.FieldSequence:
		return m.OldSequence(ctx)
	case submissionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case submissionevent.FieldScreeningID:
		return m.OldScreeningID(ctx)
	case submissionevent.FieldWordScore:
		return m.OldWordScore(ctx)
	case submissionevent.FieldMemoryScore:
		return m.OldMemoryScore(ctx)
	case submissionevent.FieldReactionMs:
		return m.OldReactionMs(ctx)
	case submissionevent.FieldSpeechAttached:
		return m.OldSpeechAttached(ctx)
	case submissionevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case submissionevent.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case submissionevent.FieldRiskCategory:
		return m.OldRiskCategory(ctx)
	case submissionevent.FieldCognitiveRisk:
		return m.OldCognitiveRisk(ctx)
	case submissionevent.FieldSpeechAnalyzed:
		return m.OldSpeechAnalyzed(ctx)
	case submissionevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case submissionevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case submissionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case submissionevent.FieldScreeningID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreeningID(v)
		return nil
	case submissionevent.FieldWordScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordScore(v)
		return nil
	case submissionevent.FieldMemoryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryScore(v)
		return nil
	case submissionevent.FieldReactionMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactionMs(v)
		return nil
	case submissionevent.FieldSpeechAttached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeechAttached(v)
		return nil
	case submissionevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case submissionevent.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case submissionevent.FieldRiskCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskCategory(v)
		return nil
	case submissionevent.FieldCognitiveRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveRisk(v)
		return nil
	case submissionevent.FieldSpeechAnalyzed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeechAnalyzed(v)
		return nil
	case submissionevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case submissionevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	if m.addword_score != nil {
		fields = append(fields, submissionevent.FieldWordScore)
	}
	if m.addmemory_score != nil {
		fields = append(fields, submissionevent.FieldMemoryScore)
	}
	if m.addreaction_ms != nil {
		fields = append(fields, submissionevent.FieldReactionMs)
	}
	if m.addrisk_score != nil {
		fields = append(fields, submissionevent.FieldRiskScore)
	}
	if m.addcognitive_risk != nil {
		fields = append(fields, submissionevent.FieldCognitiveRisk)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, submissionevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.AddedSequence()
	case submissionevent.FieldWordScore:
		return m.AddedWordScore()
	case submissionevent.FieldMemoryScore:
		return m.AddedMemoryScore()
	case submissionevent.FieldReactionMs:
		return m.AddedReactionMs()
	case submissionevent.FieldRiskScore:
		return m.AddedRiskScore()
	case submissionevent.FieldCognitiveRisk:
		return m.AddedCognitiveRisk()
	case submissionevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case submissionevent.FieldWordScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordScore(v)
		return nil
	case submissionevent.FieldMemoryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryScore(v)
		return nil
	case submissionevent.FieldReactionMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReactionMs(v)
		return nil
	case submissionevent.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	case submissionevent.FieldCognitiveRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCognitiveRisk(v)
		return nil
	case submissionevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubmissionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ResetField(name string) error {
	switch name {
	case submissionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case submissionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case submissionevent.FieldScreeningID:
		m.ResetScreeningID()
		return nil
	case submissionevent.FieldWordScore:
		m.ResetWordScore()
		return nil
	case submissionevent.FieldMemoryScore:
		m.ResetMemoryScore()
		return nil
	case submissionevent.FieldReactionMs:
		m.ResetReactionMs()
		return nil
	case submissionevent.FieldSpeechAttached:
		m.ResetSpeechAttached()
		return nil
	case submissionevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case submissionevent.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case submissionevent.FieldRiskCategory:
		m.ResetRiskCategory()
		return nil
	case submissionevent.FieldCognitiveRisk:
		m.ResetCognitiveRisk()
		return nil
	case submissionevent.FieldSpeechAnalyzed:
		m.ResetSpeechAnalyzed()
		return nil
	case submissionevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case submissionevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	screening_id   *string
	task           *string
	score          *int
	addscore       *int
	duration_ms    *int
	addduration_ms *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TaskEvent, error)
	predicates     []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id int) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TaskEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TaskEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TaskEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TaskEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TaskEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TaskEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TaskEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TaskEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetScreeningID sets the "screening_id" field.
func (m *TaskEventMutation) SetScreeningID(s string) {
	m.screening_id = &s
}

// ScreeningID returns the value of the "screening_id" field in the mutation.
func (m *TaskEventMutation) ScreeningID() (r string, exists bool) {
	v := m.screening_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScreeningID returns the old "screening_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldScreeningID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreeningID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreeningID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreeningID: %w", err)
	}
	return oldValue.ScreeningID, nil
}

// ResetScreeningID resets all changes to the "screening_id" field.
func (m *TaskEventMutation) ResetScreeningID() {
	m.screening_id = nil
}

// SetTask sets the "task" field.
func (m *TaskEventMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *TaskEventMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *TaskEventMutation) ResetTask() {
	m.task = nil
}

// SetScore sets the "score" field.
func (m *TaskEventMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TaskEventMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *TaskEventMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TaskEventMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TaskEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *TaskEventMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TaskEventMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TaskEventMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TaskEventMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TaskEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, taskevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, taskevent.FieldTimestamp)
	}
	if m.screening_id != nil {
		fields = append(fields, taskevent.FieldScreeningID)
	}
	if m.task != nil {
		fields = append(fields, taskevent.FieldTask)
	}
	if m.score != nil {
		fields = append(fields, taskevent.FieldScore)
	}
	if m.duration_ms != nil {
		fields = append(fields, taskevent.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldSequence:
		return m.Sequence()
	case taskevent.FieldTimestamp:
		return m.Timestamp()
	case taskevent.FieldScreeningID:
		return m.ScreeningID()
	case taskevent.FieldTask:
		return m.Task()
	case taskevent.FieldScore:
		return m.Score()
	case taskevent.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldSequence:
		return m.OldSequence(ctx)
	case taskevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case taskevent.FieldScreeningID:
		return m.OldScreeningID(ctx)
	case taskevent.FieldTask:
		return m.OldTask(ctx)
	case taskevent.FieldScore:
		return m.OldScore(ctx)
	case taskevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case taskevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case taskevent.FieldScreeningID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreeningID(v)
		return nil
	case taskevent.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case taskevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case taskevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, taskevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, taskevent.FieldScore)
	}
	if m.addduration_ms != nil {
		fields = append(fields, taskevent.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldSequence:
		return m.AddedSequence()
	case taskevent.FieldScore:
		return m.AddedScore()
	case taskevent.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case taskevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case taskevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldSequence:
		m.ResetSequence()
		return nil
	case taskevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case taskevent.FieldScreeningID:
		m.ResetScreeningID()
		return nil
	case taskevent.FieldTask:
		m.ResetTask()
		return nil
	case taskevent.FieldScore:
		m.ResetScore()
		return nil
	case taskevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}
