package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScreeningEvent records screening run lifecycle events (start/end).
type ScreeningEvent struct {
	ent.Schema
}

func (ScreeningEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScreeningEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("screening_id").
			NotEmpty().
			Comment("UUID grouping events in one screening run"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("word_score").
			Default(0).
			Comment("Word-unscramble similarity 0-100 (on end only)"),
		field.Int("memory_score").
			Default(0).
			Comment("Highest memory level repeated 0-9 (on end only)"),
		field.Int("reaction_ms").
			Default(0).
			Comment("Measured reaction time in ms (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock length of the run (on end only)"),
	}
}

func (ScreeningEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("screening_id"),
		index.Fields("action"),
	}
}
