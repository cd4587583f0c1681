package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records one attempt to submit a screening to the remote
// risk service: the payload that was sent and the outcome that came back.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("screening_id").
			NotEmpty().
			Comment("Links to ScreeningEvent"),
		field.Int("word_score").
			Comment("Submitted word-unscramble score"),
		field.Int("memory_score").
			Comment("Submitted memory level"),
		field.Int("reaction_ms").
			Comment("Submitted reaction time"),
		field.Bool("speech_attached").
			Default(false).
			Comment("Whether an audio sample was part of the request"),
		field.Bool("success").
			Comment("Whether the service accepted and answered"),
		field.Float("risk_score").
			Default(0).
			Comment("Verdict risk percentage (on success only)"),
		field.String("risk_category").
			Default("").
			Comment("Verdict category (on success only)"),
		field.Float("cognitive_risk").
			Default(0).
			Comment("Verdict cognitive risk percentage (on success only)"),
		field.Bool("speech_analyzed").
			Default(false).
			Comment("Whether the service used the sample (on success only)"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round-trip time of the submission request"),
		field.String("error_message").
			Default("").
			Comment("Failure description (on failure only)"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("screening_id"),
		index.Fields("success"),
	}
}
