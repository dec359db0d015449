package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ShowEvent records that a task was presented. Append-only; insertion order
// (the id column) defines recency for the repetition-avoidance window.
type ShowEvent struct {
	ent.Schema
}

func (ShowEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise").NotEmpty().Immutable(),
		field.Int("task_id").Positive().Immutable(),
		field.Time("shown_at").Default(time.Now).Immutable(),
	}
}

func (ShowEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise"),
		index.Fields("task_id"),
	}
}
