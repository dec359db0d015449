// Code generated by ent, DO NOT EDIT.

package showevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fcetrainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLTE(FieldID, id))
}

// Exercise applies equality check predicate on the "exercise" field. It's identical to ExerciseEQ.
func Exercise(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldExercise, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldTaskID, v))
}

// ShownAt applies equality check predicate on the "shown_at" field. It's identical to ShownAtEQ.
func ShownAt(v time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldShownAt, v))
}

// ExerciseEQ applies the EQ predicate on the "exercise" field.
func ExerciseEQ(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldExercise, v))
}

// ExerciseNEQ applies the NEQ predicate on the "exercise" field.
func ExerciseNEQ(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNEQ(FieldExercise, v))
}

// ExerciseIn applies the In predicate on the "exercise" field.
func ExerciseIn(vs ...string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldIn(FieldExercise, vs...))
}

// ExerciseNotIn applies the NotIn predicate on the "exercise" field.
func ExerciseNotIn(vs ...string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNotIn(FieldExercise, vs...))
}

// ExerciseGT applies the GT predicate on the "exercise" field.
func ExerciseGT(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGT(FieldExercise, v))
}

// ExerciseGTE applies the GTE predicate on the "exercise" field.
func ExerciseGTE(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGTE(FieldExercise, v))
}

// ExerciseLT applies the LT predicate on the "exercise" field.
func ExerciseLT(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLT(FieldExercise, v))
}

// ExerciseLTE applies the LTE predicate on the "exercise" field.
func ExerciseLTE(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLTE(FieldExercise, v))
}

// ExerciseContains applies the Contains predicate on the "exercise" field.
func ExerciseContains(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldContains(FieldExercise, v))
}

// ExerciseHasPrefix applies the HasPrefix predicate on the "exercise" field.
func ExerciseHasPrefix(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldHasPrefix(FieldExercise, v))
}

// ExerciseHasSuffix applies the HasSuffix predicate on the "exercise" field.
func ExerciseHasSuffix(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldHasSuffix(FieldExercise, v))
}

// ExerciseEqualFold applies the EqualFold predicate on the "exercise" field.
func ExerciseEqualFold(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEqualFold(FieldExercise, v))
}

// ExerciseContainsFold applies the ContainsFold predicate on the "exercise" field.
func ExerciseContainsFold(v string) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldContainsFold(FieldExercise, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v int) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLTE(FieldTaskID, v))
}

// ShownAtEQ applies the EQ predicate on the "shown_at" field.
func ShownAtEQ(v time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldEQ(FieldShownAt, v))
}

// ShownAtNEQ applies the NEQ predicate on the "shown_at" field.
func ShownAtNEQ(v time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNEQ(FieldShownAt, v))
}

// ShownAtIn applies the In predicate on the "shown_at" field.
func ShownAtIn(vs ...time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldIn(FieldShownAt, vs...))
}

// ShownAtNotIn applies the NotIn predicate on the "shown_at" field.
func ShownAtNotIn(vs ...time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldNotIn(FieldShownAt, vs...))
}

// ShownAtGT applies the GT predicate on the "shown_at" field.
func ShownAtGT(v time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGT(FieldShownAt, v))
}

// ShownAtGTE applies the GTE predicate on the "shown_at" field.
func ShownAtGTE(v time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldGTE(FieldShownAt, v))
}

// ShownAtLT applies the LT predicate on the "shown_at" field.
func ShownAtLT(v time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLT(FieldShownAt, v))
}

// ShownAtLTE applies the LTE predicate on the "shown_at" field.
func ShownAtLTE(v time.Time) predicate.ShowEvent {
	return predicate.ShowEvent(sql.FieldLTE(FieldShownAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShowEvent) predicate.ShowEvent {
	return predicate.ShowEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShowEvent) predicate.ShowEvent {
	return predicate.ShowEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShowEvent) predicate.ShowEvent {
	return predicate.ShowEvent(sql.NotPredicates(p))
}
