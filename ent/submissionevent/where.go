// Code generated by ent, DO NOT EDIT.

package submissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/acuity/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ScreeningID applies equality check predicate on the "screening_id" field. It's identical to ScreeningIDEQ.
func ScreeningID(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldScreeningID, v))
}

// WordScore applies equality check predicate on the "word_score" field. It's identical to WordScoreEQ.
func WordScore(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldWordScore, v))
}

// MemoryScore applies equality check predicate on the "memory_score" field. It's identical to MemoryScoreEQ.
func MemoryScore(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldMemoryScore, v))
}

// ReactionMs applies equality check predicate on the "reaction_ms" field. It's identical to ReactionMsEQ.
func ReactionMs(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldReactionMs, v))
}

// SpeechAttached applies equality check predicate on the "speech_attached" field. It's identical to SpeechAttachedEQ.
func SpeechAttached(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSpeechAttached, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSuccess, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldRiskScore, v))
}

// RiskCategory applies equality check predicate on the "risk_category" field. It's identical to RiskCategoryEQ.
func RiskCategory(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldRiskCategory, v))
}

// CognitiveRisk applies equality check predicate on the "cognitive_risk" field. It's identical to CognitiveRiskEQ.
func CognitiveRisk(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCognitiveRisk, v))
}

// SpeechAnalyzed applies equality check predicate on the "speech_analyzed" field. It's identical to SpeechAnalyzedEQ.
func SpeechAnalyzed(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSpeechAnalyzed, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ScreeningIDEQ applies the EQ predicate on the "screening_id" field.
func ScreeningIDEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldScreeningID, v))
}

// ScreeningIDNEQ applies the NEQ predicate on the "screening_id" field.
func ScreeningIDNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldScreeningID, v))
}

// ScreeningIDIn applies the In predicate on the "screening_id" field.
func ScreeningIDIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldScreeningID, vs...))
}

// ScreeningIDNotIn applies the NotIn predicate on the "screening_id" field.
func ScreeningIDNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldScreeningID, vs...))
}

// ScreeningIDGT applies the GT predicate on the "screening_id" field.
func ScreeningIDGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldScreeningID, v))
}

// ScreeningIDGTE applies the GTE predicate on the "screening_id" field.
func ScreeningIDGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldScreeningID, v))
}

// ScreeningIDLT applies the LT predicate on the "screening_id" field.
func ScreeningIDLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldScreeningID, v))
}

// ScreeningIDLTE applies the LTE predicate on the "screening_id" field.
func ScreeningIDLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldScreeningID, v))
}

// ScreeningIDContains applies the Contains predicate on the "screening_id" field.
func ScreeningIDContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldScreeningID, v))
}

// ScreeningIDHasPrefix applies the HasPrefix predicate on the "screening_id" field.
func ScreeningIDHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldScreeningID, v))
}

// ScreeningIDHasSuffix applies the HasSuffix predicate on the "screening_id" field.
func ScreeningIDHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldScreeningID, v))
}

// ScreeningIDEqualFold applies the EqualFold predicate on the "screening_id" field.
func ScreeningIDEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldScreeningID, v))
}

// ScreeningIDContainsFold applies the ContainsFold predicate on the "screening_id" field.
func ScreeningIDContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldScreeningID, v))
}

// WordScoreEQ applies the EQ predicate on the "word_score" field.
func WordScoreEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldWordScore, v))
}

// WordScoreNEQ applies the NEQ predicate on the "word_score" field.
func WordScoreNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldWordScore, v))
}

// WordScoreIn applies the In predicate on the "word_score" field.
func WordScoreIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldWordScore, vs...))
}

// WordScoreNotIn applies the NotIn predicate on the "word_score" field.
func WordScoreNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldWordScore, vs...))
}

// WordScoreGT applies the GT predicate on the "word_score" field.
func WordScoreGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldWordScore, v))
}

// WordScoreGTE applies the GTE predicate on the "word_score" field.
func WordScoreGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldWordScore, v))
}

// WordScoreLT applies the LT predicate on the "word_score" field.
func WordScoreLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldWordScore, v))
}

// WordScoreLTE applies the LTE predicate on the "word_score" field.
func WordScoreLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldWordScore, v))
}

// MemoryScoreEQ applies the EQ predicate on the "memory_score" field.
func MemoryScoreEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldMemoryScore, v))
}

// MemoryScoreNEQ applies the NEQ predicate on the "memory_score" field.
func MemoryScoreNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldMemoryScore, v))
}

// MemoryScoreIn applies the In predicate on the "memory_score" field.
func MemoryScoreIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldMemoryScore, vs...))
}

// MemoryScoreNotIn applies the NotIn predicate on the "memory_score" field.
func MemoryScoreNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldMemoryScore, vs...))
}

// MemoryScoreGT applies the GT predicate on the "memory_score" field.
func MemoryScoreGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldMemoryScore, v))
}

// MemoryScoreGTE applies the GTE predicate on the "memory_score" field.
func MemoryScoreGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldMemoryScore, v))
}

// MemoryScoreLT applies the LT predicate on the "memory_score" field.
func MemoryScoreLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldMemoryScore, v))
}

// MemoryScoreLTE applies the LTE predicate on the "memory_score" field.
func MemoryScoreLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldMemoryScore, v))
}

// ReactionMsEQ applies the EQ predicate on the "reaction_ms" field.
func ReactionMsEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldReactionMs, v))
}

// ReactionMsNEQ applies the NEQ predicate on the "reaction_ms" field.
func ReactionMsNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldReactionMs, v))
}

// ReactionMsIn applies the In predicate on the "reaction_ms" field.
func ReactionMsIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldReactionMs, vs...))
}

// ReactionMsNotIn applies the NotIn predicate on the "reaction_ms" field.
func ReactionMsNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldReactionMs, vs...))
}

// ReactionMsGT applies the GT predicate on the "reaction_ms" field.
func ReactionMsGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldReactionMs, v))
}

// ReactionMsGTE applies the GTE predicate on the "reaction_ms" field.
func ReactionMsGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldReactionMs, v))
}

// ReactionMsLT applies the LT predicate on the "reaction_ms" field.
func ReactionMsLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldReactionMs, v))
}

// ReactionMsLTE applies the LTE predicate on the "reaction_ms" field.
func ReactionMsLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldReactionMs, v))
}

// SpeechAttachedEQ applies the EQ predicate on the "speech_attached" field.
func SpeechAttachedEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSpeechAttached, v))
}

// SpeechAttachedNEQ applies the NEQ predicate on the "speech_attached" field.
func SpeechAttachedNEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSpeechAttached, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSuccess, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldRiskScore, v))
}

// RiskCategoryEQ applies the EQ predicate on the "risk_category" field.
func RiskCategoryEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldRiskCategory, v))
}

// RiskCategoryNEQ applies the NEQ predicate on the "risk_category" field.
func RiskCategoryNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldRiskCategory, v))
}

// RiskCategoryIn applies the In predicate on the "risk_category" field.
func RiskCategoryIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldRiskCategory, vs...))
}

// RiskCategoryNotIn applies the NotIn predicate on the "risk_category" field.
func RiskCategoryNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldRiskCategory, vs...))
}

// RiskCategoryGT applies the GT predicate on the "risk_category" field.
func RiskCategoryGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldRiskCategory, v))
}

// RiskCategoryGTE applies the GTE predicate on the "risk_category" field.
func RiskCategoryGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldRiskCategory, v))
}

// RiskCategoryLT applies the LT predicate on the "risk_category" field.
func RiskCategoryLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldRiskCategory, v))
}

// RiskCategoryLTE applies the LTE predicate on the "risk_category" field.
func RiskCategoryLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldRiskCategory, v))
}

// RiskCategoryContains applies the Contains predicate on the "risk_category" field.
func RiskCategoryContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldRiskCategory, v))
}

// RiskCategoryHasPrefix applies the HasPrefix predicate on the "risk_category" field.
func RiskCategoryHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldRiskCategory, v))
}

// RiskCategoryHasSuffix applies the HasSuffix predicate on the "risk_category" field.
func RiskCategoryHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldRiskCategory, v))
}

// RiskCategoryEqualFold applies the EqualFold predicate on the "risk_category" field.
func RiskCategoryEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldRiskCategory, v))
}

// RiskCategoryContainsFold applies the ContainsFold predicate on the "risk_category" field.
func RiskCategoryContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldRiskCategory, v))
}

// CognitiveRiskEQ applies the EQ predicate on the "cognitive_risk" field.
func CognitiveRiskEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCognitiveRisk, v))
}

// CognitiveRiskNEQ applies the NEQ predicate on the "cognitive_risk" field.
func CognitiveRiskNEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldCognitiveRisk, v))
}

// CognitiveRiskIn applies the In predicate on the "cognitive_risk" field.
func CognitiveRiskIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldCognitiveRisk, vs...))
}

// CognitiveRiskNotIn applies the NotIn predicate on the "cognitive_risk" field.
func CognitiveRiskNotIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldCognitiveRisk, vs...))
}

// CognitiveRiskGT applies the GT predicate on the "cognitive_risk" field.
func CognitiveRiskGT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldCognitiveRisk, v))
}

// CognitiveRiskGTE applies the GTE predicate on the "cognitive_risk" field.
func CognitiveRiskGTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldCognitiveRisk, v))
}

// CognitiveRiskLT applies the LT predicate on the "cognitive_risk" field.
func CognitiveRiskLT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldCognitiveRisk, v))
}

// CognitiveRiskLTE applies the LTE predicate on the "cognitive_risk" field.
func CognitiveRiskLTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldCognitiveRisk, v))
}

// SpeechAnalyzedEQ applies the EQ predicate on the "speech_analyzed" field.
func SpeechAnalyzedEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSpeechAnalyzed, v))
}

// SpeechAnalyzedNEQ applies the NEQ predicate on the "speech_analyzed" field.
func SpeechAnalyzedNEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSpeechAnalyzed, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.NotPredicates(p))
}
