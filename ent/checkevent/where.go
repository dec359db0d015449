// Code generated by ent, DO NOT EDIT.

package checkevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fcetrainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldID, id))
}

// Exercise applies equality check predicate on the "exercise" field. It's identical to ExerciseEQ.
func Exercise(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldExercise, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldScore, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldTotal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// ExerciseEQ applies the EQ predicate on the "exercise" field.
func ExerciseEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldExercise, v))
}

// ExerciseNEQ applies the NEQ predicate on the "exercise" field.
func ExerciseNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldExercise, v))
}

// ExerciseIn applies the In predicate on the "exercise" field.
func ExerciseIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldExercise, vs...))
}

// ExerciseNotIn applies the NotIn predicate on the "exercise" field.
func ExerciseNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldExercise, vs...))
}

// ExerciseGT applies the GT predicate on the "exercise" field.
func ExerciseGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldExercise, v))
}

// ExerciseGTE applies the GTE predicate on the "exercise" field.
func ExerciseGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldExercise, v))
}

// ExerciseLT applies the LT predicate on the "exercise" field.
func ExerciseLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldExercise, v))
}

// ExerciseLTE applies the LTE predicate on the "exercise" field.
func ExerciseLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldExercise, v))
}

// ExerciseContains applies the Contains predicate on the "exercise" field.
func ExerciseContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldExercise, v))
}

// ExerciseHasPrefix applies the HasPrefix predicate on the "exercise" field.
func ExerciseHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldExercise, v))
}

// ExerciseHasSuffix applies the HasSuffix predicate on the "exercise" field.
func ExerciseHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldExercise, v))
}

// ExerciseEqualFold applies the EqualFold predicate on the "exercise" field.
func ExerciseEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldExercise, v))
}

// ExerciseContainsFold applies the ContainsFold predicate on the "exercise" field.
func ExerciseContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldExercise, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldScore, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldTotal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.NotPredicates(p))
}
