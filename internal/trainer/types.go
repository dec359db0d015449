// Package trainer orchestrates practice: picking tasks with repetition
// avoidance, falling back to generation, grading submissions, and keeping
// per-part accuracy history.
package trainer

import (
	"github.com/abhisek/fcetrainer/internal/exam"
)

// Detail is the graded outcome of one item within a task.
type Detail struct {
	Index     int
	UserValue string
	Expected  string
	Correct   bool

	// Attempted is false when the learner left the item blank. Only
	// transformation grading distinguishes blank from wrong.
	Attempted bool

	// Explanation and WordFamily are filled in later by the explanation
	// requester when a provider is available. Best effort, often empty.
	Explanation string
	WordFamily  string
}

// CheckResult is one graded submission.
type CheckResult struct {
	Exercise exam.Exercise
	Score    int
	Total    int
	Details  []Detail

	// TaskIDs are the tasks this result grades: one id for single-task
	// exercises, six for a transformation set.
	TaskIDs []int
}
