// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/fcetrainer/ent/checkevent"
	"github.com/abhisek/fcetrainer/ent/llmrequestevent"
	"github.com/abhisek/fcetrainer/ent/schema"
	"github.com/abhisek/fcetrainer/ent/showevent"
	"github.com/abhisek/fcetrainer/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkeventFields := schema.CheckEvent{}.Fields()
	_ = checkeventFields
	// checkeventDescExercise is the schema descriptor for exercise field.
	checkeventDescExercise := checkeventFields[0].Descriptor()
	// checkevent.ExerciseValidator is a validator for the "exercise" field. It is called by the builders before save.
	checkevent.ExerciseValidator = checkeventDescExercise.Validators[0].(func(string) error)
	// checkeventDescScore is the schema descriptor for score field.
	checkeventDescScore := checkeventFields[1].Descriptor()
	// checkevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	checkevent.ScoreValidator = checkeventDescScore.Validators[0].(func(int) error)
	// checkeventDescTotal is the schema descriptor for total field.
	checkeventDescTotal := checkeventFields[2].Descriptor()
	// checkevent.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	checkevent.TotalValidator = checkeventDescTotal.Validators[0].(func(int) error)
	// checkeventDescCreatedAt is the schema descriptor for created_at field.
	checkeventDescCreatedAt := checkeventFields[3].Descriptor()
	// checkevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkevent.DefaultCreatedAt = checkeventDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	showeventFields := schema.ShowEvent{}.Fields()
	_ = showeventFields
	// showeventDescExercise is the schema descriptor for exercise field.
	showeventDescExercise := showeventFields[0].Descriptor()
	// showevent.ExerciseValidator is a validator for the "exercise" field. It is called by the builders before save.
	showevent.ExerciseValidator = showeventDescExercise.Validators[0].(func(string) error)
	// showeventDescTaskID is the schema descriptor for task_id field.
	showeventDescTaskID := showeventFields[1].Descriptor()
	// showevent.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	showevent.TaskIDValidator = showeventDescTaskID.Validators[0].(func(int) error)
	// showeventDescShownAt is the schema descriptor for shown_at field.
	showeventDescShownAt := showeventFields[2].Descriptor()
	// showevent.DefaultShownAt holds the default value on creation for the shown_at field.
	showevent.DefaultShownAt = showeventDescShownAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescExercise is the schema descriptor for exercise field.
	taskDescExercise := taskFields[0].Descriptor()
	// task.ExerciseValidator is a validator for the "exercise" field. It is called by the builders before save.
	task.ExerciseValidator = taskDescExercise.Validators[0].(func(string) error)
	// taskDescPayload is the schema descriptor for payload field.
	taskDescPayload := taskFields[1].Descriptor()
	// task.PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	task.PayloadValidator = taskDescPayload.Validators[0].(func([]byte) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[4].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
