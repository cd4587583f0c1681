// Code generated by ent, DO NOT EDIT.

package screeningevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the screeningevent type in the database.
	Label = "screening_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldScreeningID holds the string denoting the screening_id field in the database.
	FieldScreeningID = "screening_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldWordScore holds the string denoting the word_score field in the database.
	FieldWordScore = "word_score"
	// FieldMemoryScore holds the string denoting the memory_score field in the database.
	FieldMemoryScore = "memory_score"
	// FieldReactionMs holds the string denoting the reaction_ms field in the database.
	FieldReactionMs = "reaction_ms"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the screeningevent in the database.
	Table = "screening_events"
)

// Columns holds all SQL columns for screeningevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldScreeningID,
	FieldAction,
	FieldWordScore,
	FieldMemoryScore,
	FieldReactionMs,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ScreeningIDValidator is a validator for the "screening_id" field. It is called by the builders before save.
	ScreeningIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultWordScore holds the default value on creation for the "word_score" field.
	DefaultWordScore int
	// DefaultMemoryScore holds the default value on creation for the "memory_score" field.
	DefaultMemoryScore int
	// DefaultReactionMs holds the default value on creation for the "reaction_ms" field.
	DefaultReactionMs int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the ScreeningEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByScreeningID orders the results by the screening_id field.
func ByScreeningID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScreeningID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByWordScore orders the results by the word_score field.
func ByWordScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordScore, opts...).ToFunc()
}

// ByMemoryScore orders the results by the memory_score field.
func ByMemoryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryScore, opts...).ToFunc()
}

// ByReactionMs orders the results by the reaction_ms field.
func ByReactionMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReactionMs, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
