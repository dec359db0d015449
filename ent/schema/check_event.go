package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckEvent records one graded submission for accuracy tracking.
type CheckEvent struct {
	ent.Schema
}

func (CheckEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise").NotEmpty().Immutable(),
		field.Int("score").NonNegative().Immutable(),
		field.Int("total").Positive().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (CheckEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise"),
	}
}
