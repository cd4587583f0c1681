// Code generated by ent, DO NOT EDIT.

package screeningevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/acuity/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ScreeningID applies equality check predicate on the "screening_id" field. It's identical to ScreeningIDEQ.
func ScreeningID(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldScreeningID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldAction, v))
}

// WordScore applies equality check predicate on the "word_score" field. It's identical to WordScoreEQ.
func WordScore(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldWordScore, v))
}

// MemoryScore applies equality check predicate on the "memory_score" field. It's identical to MemoryScoreEQ.
func MemoryScore(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldMemoryScore, v))
}

// ReactionMs applies equality check predicate on the "reaction_ms" field. It's identical to ReactionMsEQ.
func ReactionMs(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldReactionMs, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ScreeningIDEQ applies the EQ predicate on the "screening_id" field.
func ScreeningIDEQ(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldScreeningID, v))
}

// ScreeningIDNEQ applies the NEQ predicate on the "screening_id" field.
func ScreeningIDNEQ(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldScreeningID, v))
}

// ScreeningIDIn applies the In predicate on the "screening_id" field.
func ScreeningIDIn(vs ...string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldScreeningID, vs...))
}

// ScreeningIDNotIn applies the NotIn predicate on the "screening_id" field.
func ScreeningIDNotIn(vs ...string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldScreeningID, vs...))
}

// ScreeningIDGT applies the GT predicate on the "screening_id" field.
func ScreeningIDGT(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldScreeningID, v))
}

// ScreeningIDGTE applies the GTE predicate on the "screening_id" field.
func ScreeningIDGTE(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldScreeningID, v))
}

// ScreeningIDLT applies the LT predicate on the "screening_id" field.
func ScreeningIDLT(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldScreeningID, v))
}

// ScreeningIDLTE applies the LTE predicate on the "screening_id" field.
func ScreeningIDLTE(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldScreeningID, v))
}

// ScreeningIDContains applies the Contains predicate on the "screening_id" field.
func ScreeningIDContains(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldContains(FieldScreeningID, v))
}

// ScreeningIDHasPrefix applies the HasPrefix predicate on the "screening_id" field.
func ScreeningIDHasPrefix(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldHasPrefix(FieldScreeningID, v))
}

// ScreeningIDHasSuffix applies the HasSuffix predicate on the "screening_id" field.
func ScreeningIDHasSuffix(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldHasSuffix(FieldScreeningID, v))
}

// ScreeningIDEqualFold applies the EqualFold predicate on the "screening_id" field.
func ScreeningIDEqualFold(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEqualFold(FieldScreeningID, v))
}

// ScreeningIDContainsFold applies the ContainsFold predicate on the "screening_id" field.
func ScreeningIDContainsFold(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldContainsFold(FieldScreeningID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldContainsFold(FieldAction, v))
}

// WordScoreEQ applies the EQ predicate on the "word_score" field.
func WordScoreEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldWordScore, v))
}

// WordScoreNEQ applies the NEQ predicate on the "word_score" field.
func WordScoreNEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldWordScore, v))
}

// WordScoreIn applies the In predicate on the "word_score" field.
func WordScoreIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldWordScore, vs...))
}

// WordScoreNotIn applies the NotIn predicate on the "word_score" field.
func WordScoreNotIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldWordScore, vs...))
}

// WordScoreGT applies the GT predicate on the "word_score" field.
func WordScoreGT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldWordScore, v))
}

// WordScoreGTE applies the GTE predicate on the "word_score" field.
func WordScoreGTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldWordScore, v))
}

// WordScoreLT applies the LT predicate on the "word_score" field.
func WordScoreLT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldWordScore, v))
}

// WordScoreLTE applies the LTE predicate on the "word_score" field.
func WordScoreLTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldWordScore, v))
}

// MemoryScoreEQ applies the EQ predicate on the "memory_score" field.
func MemoryScoreEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldMemoryScore, v))
}

// MemoryScoreNEQ applies the NEQ predicate on the "memory_score" field.
func MemoryScoreNEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldMemoryScore, v))
}

// MemoryScoreIn applies the In predicate on the "memory_score" field.
func MemoryScoreIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldMemoryScore, vs...))
}

// MemoryScoreNotIn applies the NotIn predicate on the "memory_score" field.
func MemoryScoreNotIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldMemoryScore, vs...))
}

// MemoryScoreGT applies the GT predicate on the "memory_score" field.
func MemoryScoreGT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldMemoryScore, v))
}

// MemoryScoreGTE applies the GTE predicate on the "memory_score" field.
func MemoryScoreGTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldMemoryScore, v))
}

// MemoryScoreLT applies the LT predicate on the "memory_score" field.
func MemoryScoreLT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldMemoryScore, v))
}

// MemoryScoreLTE applies the LTE predicate on the "memory_score" field.
func MemoryScoreLTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldMemoryScore, v))
}

// ReactionMsEQ applies the EQ predicate on the "reaction_ms" field.
func ReactionMsEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldReactionMs, v))
}

// ReactionMsNEQ applies the NEQ predicate on the "reaction_ms" field.
func ReactionMsNEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldReactionMs, v))
}

// ReactionMsIn applies the In predicate on the "reaction_ms" field.
func ReactionMsIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldReactionMs, vs...))
}

// ReactionMsNotIn applies the NotIn predicate on the "reaction_ms" field.
func ReactionMsNotIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldReactionMs, vs...))
}

// ReactionMsGT applies the GT predicate on the "reaction_ms" field.
func ReactionMsGT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldReactionMs, v))
}

// ReactionMsGTE applies the GTE predicate on the "reaction_ms" field.
func ReactionMsGTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldReactionMs, v))
}

// ReactionMsLT applies the LT predicate on the "reaction_ms" field.
func ReactionMsLT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldReactionMs, v))
}

// ReactionMsLTE applies the LTE predicate on the "reaction_ms" field.
func ReactionMsLTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldReactionMs, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScreeningEvent) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScreeningEvent) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScreeningEvent) predicate.ScreeningEvent {
	return predicate.ScreeningEvent(sql.NotPredicates(p))
}
