// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/acuity/ent/submissionevent"
)

// SubmissionEvent is the model entity for the SubmissionEvent schema.
type SubmissionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to ScreeningEvent
	ScreeningID string `json:"screening_id,omitempty"`
	// Submitted word-unscramble score
	WordScore int `json:"word_score,omitempty"`
	// Submitted memory level
	MemoryScore int `json:"memory_score,omitempty"`
	// Submitted reaction time
	ReactionMs int `json:"reaction_ms,omitempty"`
	// Whether an audio sample was part of the request
	SpeechAttached bool `json:"speech_attached,omitempty"`
	// Whether the service accepted and answered
	Success bool `json:"success,omitempty"`
	// Verdict risk percentage (on success only)
	RiskScore float64 `json:"risk_score,omitempty"`
	// Verdict category (on success only)
	RiskCategory string `json:"risk_category,omitempty"`
	// Verdict cognitive risk percentage (on success only)
	CognitiveRisk float64 `json:"cognitive_risk,omitempty"`
	// Whether the service used the sample (on success only)
	SpeechAnalyzed bool `json:"speech_analyzed,omitempty"`
	// Round-trip time of the submission request
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Failure description (on failure only)
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubmissionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submissionevent.FieldSpeechAttached, submissionevent.FieldSuccess, submissionevent.FieldSpeechAnalyzed:
			values[i] = new(sql.NullBool)
		case submissionevent.FieldRiskScore, submissionevent.FieldCognitiveRisk:
			values[i] = new(sql.NullFloat64)
		case submissionevent.FieldID, submissionevent.FieldSequence, submissionevent.FieldWordScore, submissionevent.FieldMemoryScore, submissionevent.FieldReactionMs, submissionevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case submissionevent.FieldScreeningID, submissionevent.FieldRiskCategory, submissionevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case submissionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubmissionEvent fields.
func (_m *SubmissionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submissionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submissionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case submissionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case submissionevent.FieldScreeningID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field screening_id", values[i])
			} else if value.Valid {
				_m.ScreeningID = value.String
			}
		case submissionevent.FieldWordScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_score", values[i])
			} else if value.Valid {
				_m.WordScore = int(value.Int64)
			}
		case submissionevent.FieldMemoryScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_score", values[i])
			} else if value.Valid {
				_m.MemoryScore = int(value.Int64)
			}
		case submissionevent.FieldReactionMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reaction_ms", values[i])
			} else if value.Valid {
				_m.ReactionMs = int(value.Int64)
			}
		case submissionevent.FieldSpeechAttached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field speech_attached", values[i])
			} else if value.Valid {
				_m.SpeechAttached = value.Bool
			}
		case submissionevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case submissionevent.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case submissionevent.FieldRiskCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_category", values[i])
			} else if value.Valid {
				_m.RiskCategory = value.String
			}
		case submissionevent.FieldCognitiveRisk:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_risk", values[i])
			} else if value.Valid {
				_m.CognitiveRisk = value.Float64
			}
		case submissionevent.FieldSpeechAnalyzed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field speech_analyzed", values[i])
			} else if value.Valid {
				_m.SpeechAnalyzed = value.Bool
			}
		case submissionevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case submissionevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubmissionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SubmissionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubmissionEvent.
// Note that you need to call SubmissionEvent.Unwrap() before calling this method if this SubmissionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubmissionEvent) Update() *SubmissionEventUpdateOne {
	return NewSubmissionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubmissionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubmissionEvent) Unwrap() *SubmissionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubmissionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubmissionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SubmissionEvent(")
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
	builder.WriteString("word_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordScore))
	builder.WriteString(", ")
	builder.WriteString("memory_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryScore))
	builder.WriteString(", ")
	builder.WriteString("reaction_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReactionMs))
	builder.WriteString(", ")
	builder.WriteString("speech_attached=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeechAttached))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("risk_category=")
	builder.WriteString(_m.RiskCategory)
	builder.WriteString(", ")
	builder.WriteString("cognitive_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.CognitiveRisk))
	builder.WriteString(", ")
	builder.WriteString("speech_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeechAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// SubmissionEvents is a parsable slice of SubmissionEvent.
type SubmissionEvents []*SubmissionEvent
