// Code generated by ent, DO NOT EDIT.

package showevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the showevent type in the database.
	Label = "show_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExercise holds the string denoting the exercise field in the database.
	FieldExercise = "exercise"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldShownAt holds the string denoting the shown_at field in the database.
	FieldShownAt = "shown_at"
	// Table holds the table name of the showevent in the database.
	Table = "show_events"
)

// Columns holds all SQL columns for showevent fields.
var Columns = []string{
	FieldID,
	FieldExercise,
	FieldTaskID,
	FieldShownAt,
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
	// ExerciseValidator is a validator for the "exercise" field. It is called by the builders before save.
	ExerciseValidator func(string) error
	// TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	TaskIDValidator func(int) error
	// DefaultShownAt holds the default value on creation for the "shown_at" field.
	DefaultShownAt func() time.Time
)

// OrderOption defines the ordering options for the ShowEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExercise orders the results by the exercise field.
func ByExercise(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExercise, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByShownAt orders the results by the shown_at field.
func ByShownAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShownAt, opts...).ToFunc()
}
