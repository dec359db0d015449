package store

import (
	"context"
	"time"

	"github.com/abhisek/fcetrainer/internal/exam"
)

// TaskRepo provides durable task storage with random retrieval.
type TaskRepo interface {
	// Insert persists a new task and returns its assigned id.
	// The payload must already satisfy the exercise's structural contract.
	Insert(ctx context.Context, t *exam.Task) (int, error)

	// Get returns a task by id, or nil if it does not exist.
	Get(ctx context.Context, ex exam.Exercise, id int) (*exam.Task, error)

	// GetMany returns the tasks with the given ids, in the order requested.
	// Missing ids are skipped.
	GetMany(ctx context.Context, ex exam.Exercise, ids []int) ([]*exam.Task, error)

	// RandomExcluding picks one task id uniformly at random among rows of
	// the exercise whose ids are in neither excluded nor equal to
	// extraExclude (pass 0 for no extra exclusion). Returns 0 when the
	// exclusions cover the whole table.
	RandomExcluding(ctx context.Context, ex exam.Exercise, excluded []int, extraExclude int) (int, error)

	// RandomIDs picks up to limit distinct task ids uniformly at random
	// among non-excluded rows of the exercise.
	RandomIDs(ctx context.Context, ex exam.Exercise, excluded []int, limit int) ([]int, error)

	// Recent returns the most recently created tasks of the exercise,
	// newest first, up to limit.
	Recent(ctx context.Context, ex exam.Exercise, limit int) ([]*exam.Task, error)

	// Count returns the number of stored tasks for the exercise.
	Count(ctx context.Context, ex exam.Exercise) (int, error)

	// TransformationPairExists reports whether a transformation task with
	// this exact (sentence1, keyword) pair is already stored.
	TransformationPairExists(ctx context.Context, sentence1, keyword string) (bool, error)
}

// ShowRepo provides the append-only show log.
type ShowRepo interface {
	// Record appends one show event. Durable before returning.
	Record(ctx context.Context, ex exam.Exercise, taskID int) error

	// RecordMany appends one show event per task id, in order.
	RecordMany(ctx context.Context, ex exam.Exercise, taskIDs []int) error

	// RecentShownIDs returns the distinct task ids appearing in the most
	// recent `window` show events for the exercise, most recent first.
	// Recency follows insertion order, not wall-clock time.
	RecentShownIDs(ctx context.Context, ex exam.Exercise, window int) ([]int, error)

	// RecentGrammarTopics returns the distinct grammar topics of the
	// transformation tasks referenced by the most recent show events,
	// most recent first, up to limit. Empty topics are skipped.
	RecentGrammarTopics(ctx context.Context, limit int) ([]string, error)
}

// ExerciseStats aggregates check history for one exercise type.
type ExerciseStats struct {
	Exercise      exam.Exercise
	TotalCorrect  int
	TotalAnswered int
	Attempts      int
	LastAttemptAt time.Time
}

// CheckRepo records graded submissions and aggregates accuracy per exercise.
type CheckRepo interface {
	Record(ctx context.Context, ex exam.Exercise, score, total int) error

	// Stats returns one entry per exercise type in paper order. Exercises
	// with no history have zero counts.
	Stats(ctx context.Context) ([]ExerciseStats, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is one stored LLM call event.
type LLMRequestEventRecord struct {
	ID int
	LLMRequestEventData
	CreatedAt time.Time
}

// LLMUsageStats aggregates recorded LLM calls for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo records and inspects operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMEvents returns the newest events first, up to limit.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}
