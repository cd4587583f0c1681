package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskEvent records a single task's terminal score within a screening run.
type TaskEvent struct {
	ent.Schema
}

func (TaskEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("screening_id").
			NotEmpty().
			Comment("Links to ScreeningEvent"),
		field.String("task").
			NotEmpty().
			Comment("word, memory or reaction"),
		field.Int("score").
			Comment("Similarity percentage, memory level, or reaction ms"),
		field.Int("duration_ms").
			Default(0).
			Comment("Time the user spent on the task"),
	}
}

func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("screening_id"),
		index.Fields("task"),
	}
}
