// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fcetrainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// Exercise applies equality check predicate on the "exercise" field. It's identical to ExerciseEQ.
func Exercise(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldExercise, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPayload, v))
}

// GrammarTopic applies equality check predicate on the "grammar_topic" field. It's identical to GrammarTopicEQ.
func GrammarTopic(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGrammarTopic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// ExerciseEQ applies the EQ predicate on the "exercise" field.
func ExerciseEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldExercise, v))
}

// ExerciseNEQ applies the NEQ predicate on the "exercise" field.
func ExerciseNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldExercise, v))
}

// ExerciseIn applies the In predicate on the "exercise" field.
func ExerciseIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldExercise, vs...))
}

// ExerciseNotIn applies the NotIn predicate on the "exercise" field.
func ExerciseNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldExercise, vs...))
}

// ExerciseGT applies the GT predicate on the "exercise" field.
func ExerciseGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldExercise, v))
}

// ExerciseGTE applies the GTE predicate on the "exercise" field.
func ExerciseGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldExercise, v))
}

// ExerciseLT applies the LT predicate on the "exercise" field.
func ExerciseLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldExercise, v))
}

// ExerciseLTE applies the LTE predicate on the "exercise" field.
func ExerciseLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldExercise, v))
}

// ExerciseContains applies the Contains predicate on the "exercise" field.
func ExerciseContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldExercise, v))
}

// ExerciseHasPrefix applies the HasPrefix predicate on the "exercise" field.
func ExerciseHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldExercise, v))
}

// ExerciseHasSuffix applies the HasSuffix predicate on the "exercise" field.
func ExerciseHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldExercise, v))
}

// ExerciseEqualFold applies the EqualFold predicate on the "exercise" field.
func ExerciseEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldExercise, v))
}

// ExerciseContainsFold applies the ContainsFold predicate on the "exercise" field.
func ExerciseContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldExercise, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPayload, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSource, vs...))
}

// GrammarTopicEQ applies the EQ predicate on the "grammar_topic" field.
func GrammarTopicEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGrammarTopic, v))
}

// GrammarTopicNEQ applies the NEQ predicate on the "grammar_topic" field.
func GrammarTopicNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldGrammarTopic, v))
}

// GrammarTopicIn applies the In predicate on the "grammar_topic" field.
func GrammarTopicIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldGrammarTopic, vs...))
}

// GrammarTopicNotIn applies the NotIn predicate on the "grammar_topic" field.
func GrammarTopicNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldGrammarTopic, vs...))
}

// GrammarTopicGT applies the GT predicate on the "grammar_topic" field.
func GrammarTopicGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldGrammarTopic, v))
}

// GrammarTopicGTE applies the GTE predicate on the "grammar_topic" field.
func GrammarTopicGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldGrammarTopic, v))
}

// GrammarTopicLT applies the LT predicate on the "grammar_topic" field.
func GrammarTopicLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldGrammarTopic, v))
}

// GrammarTopicLTE applies the LTE predicate on the "grammar_topic" field.
func GrammarTopicLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldGrammarTopic, v))
}

// GrammarTopicContains applies the Contains predicate on the "grammar_topic" field.
func GrammarTopicContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldGrammarTopic, v))
}

// GrammarTopicHasPrefix applies the HasPrefix predicate on the "grammar_topic" field.
func GrammarTopicHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldGrammarTopic, v))
}

// GrammarTopicHasSuffix applies the HasSuffix predicate on the "grammar_topic" field.
func GrammarTopicHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldGrammarTopic, v))
}

// GrammarTopicIsNil applies the IsNil predicate on the "grammar_topic" field.
func GrammarTopicIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldGrammarTopic))
}

// GrammarTopicNotNil applies the NotNil predicate on the "grammar_topic" field.
func GrammarTopicNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldGrammarTopic))
}

// GrammarTopicEqualFold applies the EqualFold predicate on the "grammar_topic" field.
func GrammarTopicEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldGrammarTopic, v))
}

// GrammarTopicContainsFold applies the ContainsFold predicate on the "grammar_topic" field.
func GrammarTopicContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldGrammarTopic, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
