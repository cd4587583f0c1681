// Code generated by ent, DO NOT EDIT.

package submissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the submissionevent type in the database.
	Label = "submission_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldScreeningID holds the string denoting the screening_id field in the database.
	FieldScreeningID = "screening_id"
	// FieldWordScore holds the string denoting the word_score field in the database.
	FieldWordScore = "word_score"
	// FieldMemoryScore holds the string denoting the memory_score field in the database.
	FieldMemoryScore = "memory_score"
	// FieldReactionMs holds the string denoting the reaction_ms field in the database.
	FieldReactionMs = "reaction_ms"
	// FieldSpeechAttached holds the string denoting the speech_attached field in the database.
	FieldSpeechAttached = "speech_attached"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldRiskCategory holds the string denoting the risk_category field in the database.
	FieldRiskCategory = "risk_category"
	// FieldCognitiveRisk holds the string denoting the cognitive_risk field in the database.
	FieldCognitiveRisk = "cognitive_risk"
	// FieldSpeechAnalyzed holds the string denoting the speech_analyzed field in the database.
	FieldSpeechAnalyzed = "speech_analyzed"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the submissionevent in the database.
	Table = "submission_events"
)

// Columns holds all SQL columns for submissionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldScreeningID,
	FieldWordScore,
	FieldMemoryScore,
	FieldReactionMs,
	FieldSpeechAttached,
	FieldSuccess,
	FieldRiskScore,
	FieldRiskCategory,
	FieldCognitiveRisk,
	FieldSpeechAnalyzed,
	FieldLatencyMs,
	FieldErrorMessage,
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
	// DefaultSpeechAttached holds the default value on creation for the "speech_attached" field.
	DefaultSpeechAttached bool
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore float64
	// DefaultRiskCategory holds the default value on creation for the "risk_category" field.
	DefaultRiskCategory string
	// DefaultCognitiveRisk holds the default value on creation for the "cognitive_risk" field.
	DefaultCognitiveRisk float64
	// DefaultSpeechAnalyzed holds the default value on creation for the "speech_analyzed" field.
	DefaultSpeechAnalyzed bool
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int64
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
)

// OrderOption defines the ordering options for the SubmissionEvent queries.
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

// BySpeechAttached orders the results by the speech_attached field.
func BySpeechAttached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeechAttached, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByRiskCategory orders the results by the risk_category field.
func ByRiskCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskCategory, opts...).ToFunc()
}

// ByCognitiveRisk orders the results by the cognitive_risk field.
func ByCognitiveRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveRisk, opts...).ToFunc()
}

// BySpeechAnalyzed orders the results by the speech_analyzed field.
func BySpeechAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeechAnalyzed, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
