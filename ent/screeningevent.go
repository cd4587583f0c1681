// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/acuity/ent/screeningevent"
)

// ScreeningEvent is the model entity for the ScreeningEvent schema.
type ScreeningEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in one screening run
	ScreeningID string `json:"screening_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Word-unscramble similarity 0-100 (on end only)
	WordScore int `json:"word_score,omitempty"`
	// Highest memory level repeated 0-9 (on end only)
	MemoryScore int `json:"memory_score,omitempty"`
	// Measured reaction time in ms (on end only)
	ReactionMs int `json:"reaction_ms,omitempty"`
	// Wall-clock length of the run (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScreeningEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case screeningevent.FieldID, screeningevent.FieldSequence, screeningevent.FieldWordScore, screeningevent.FieldMemoryScore, screeningevent.FieldReactionMs, screeningevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case screeningevent.FieldScreeningID, screeningevent.FieldAction:
			values[i] = new(sql.NullString)
		case screeningevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScreeningEvent fields.
func (_m *ScreeningEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case screeningevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case screeningevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case screeningevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case screeningevent.FieldScreeningID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field screening_id", values[i])
			} else if value.Valid {
				_m.ScreeningID = value.String
			}
		case screeningevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case screeningevent.FieldWordScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_score", values[i])
			} else if value.Valid {
				_m.WordScore = int(value.Int64)
			}
		case screeningevent.FieldMemoryScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_score", values[i])
			} else if value.Valid {
				_m.MemoryScore = int(value.Int64)
			}
		case screeningevent.FieldReactionMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reaction_ms", values[i])
			} else if value.Valid {
				_m.ReactionMs = int(value.Int64)
			}
		case screeningevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScreeningEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScreeningEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScreeningEvent.
// Note that you need to call ScreeningEvent.Unwrap() before calling this method if this ScreeningEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScreeningEvent) Update() *ScreeningEventUpdateOne {
	return NewScreeningEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScreeningEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScreeningEvent) Unwrap() *ScreeningEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScreeningEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScreeningEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScreeningEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("screening_id=")
	builder.WriteString(_m.ScreeningID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("word_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordScore))
	builder.WriteString(", ")
	builder.WriteString("memory_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryScore))
	builder.WriteString(", ")
	builder.WriteString("reaction_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReactionMs))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// ScreeningEvents is a parsable slice of ScreeningEvent.
type ScreeningEvents []*ScreeningEvent
