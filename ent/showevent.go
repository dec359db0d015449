// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fcetrainer/ent/showevent"
)

// ShowEvent is the model entity for the ShowEvent schema.
type ShowEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Exercise holds the value of the "exercise" field.
	Exercise string `json:"exercise,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID int `json:"task_id,omitempty"`
	// ShownAt holds the value of the "shown_at" field.
	ShownAt      time.Time `json:"shown_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShowEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case showevent.FieldID, showevent.FieldTaskID:
			values[i] = new(sql.NullInt64)
		case showevent.FieldExercise:
			values[i] = new(sql.NullString)
		case showevent.FieldShownAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShowEvent fields.
func (_m *ShowEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case showevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case showevent.FieldExercise:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise", values[i])
			} else if value.Valid {
				_m.Exercise = value.String
			}
		case showevent.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = int(value.Int64)
			}
		case showevent.FieldShownAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field shown_at", values[i])
			} else if value.Valid {
				_m.ShownAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShowEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ShowEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ShowEvent.
// Note that you need to call ShowEvent.Unwrap() before calling this method if this ShowEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ShowEvent) Update() *ShowEventUpdateOne {
	return NewShowEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ShowEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ShowEvent) Unwrap() *ShowEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShowEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ShowEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ShowEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exercise=")
	builder.WriteString(_m.Exercise)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("shown_at=")
	builder.WriteString(_m.ShownAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ShowEvents is a parsable slice of ShowEvent.
type ShowEvents []*ShowEvent
