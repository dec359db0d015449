package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task is one stored exercise item. Rows are immutable once created; the
// payload must satisfy the exercise type's structural contract at write time.
type Task struct {
	ent.Schema
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise").NotEmpty().Immutable(),
		field.Bytes("payload").NotEmpty().Immutable(),
		field.Enum("source").Values("manual", "generated").Default("manual").Immutable(),
		// Set only for transformation tasks.
		field.String("grammar_topic").Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise"),
		index.Fields("exercise", "grammar_topic"),
	}
}
