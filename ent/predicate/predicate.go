// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CheckEvent is the predicate function for checkevent builders.
type CheckEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ShowEvent is the predicate function for showevent builders.
type ShowEvent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
