package trainer

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/gen"
	"github.com/abhisek/fcetrainer/internal/store"
)

// Explainer enriches a graded result with per-item rationale. Implementations
// are best effort: they fill in what they can and never return an error.
type Explainer interface {
	Enrich(ctx context.Context, tasks []*exam.Task, res *CheckResult)
}

// Service is the practice orchestrator: it resolves the next task for an
// exercise, grades submissions, and records history.
type Service struct {
	tasks  store.TaskRepo
	shows  store.ShowRepo
	checks store.CheckRepo
	picker *Picker

	// synth is nil when no LLM provider is configured; every generation
	// path then short-circuits to stored tasks.
	synth *gen.Synthesizer
	level gen.Level

	// explainer is nil when no provider is configured.
	explainer Explainer

	results *ResultCache
}

// NewService wires the orchestrator. synth and explainer may be nil.
func NewService(tasks store.TaskRepo, shows store.ShowRepo, checks store.CheckRepo, synth *gen.Synthesizer, explainer Explainer, level gen.Level) *Service {
	return &Service{
		tasks:     tasks,
		shows:     shows,
		checks:    checks,
		picker:    NewPicker(tasks, shows),
		synth:     synth,
		level:     level,
		explainer: explainer,
		results:   NewResultCache(ResultCacheCapacity),
	}
}

// GetOrCreate resolves the next task for the exercise: an unseen stored
// task first, a freshly generated one when the store is exhausted and a
// provider is available, then any stored task as the last resort. Returns
// (nil, nil) when nothing can be resolved at all. Every non-nil return has
// exactly one show event recorded.
//
// excludeCurrent, when non-zero, keeps the currently displayed task out of
// the result so "next" always changes the screen.
func (s *Service) GetOrCreate(ctx context.Context, ex exam.Exercise, excludeCurrent int) (*exam.Task, error) {
	if ex == exam.Transformation {
		return nil, fmt.Errorf("transformations are served as sets; use NextTransformationSet")
	}

	id, err := s.picker.Pick(ctx, ex, excludeCurrent)
	if err != nil {
		return nil, err
	}

	if id == 0 && s.synth != nil {
		task, genErr := s.synth.Generate(ctx, ex, s.level)
		if genErr == nil {
			if err := s.shows.Record(ctx, ex, task.ID); err != nil {
				return nil, err
			}
			return task, nil
		}
		// A failed generation degrades to the stored-task fallback.
		fmt.Fprintf(os.Stderr, "warning: generation failed for %s: %v\n", ex, genErr)
	}

	if id == 0 {
		id, err = s.tasks.RandomExcluding(ctx, ex, nil, excludeCurrent)
		if err != nil {
			return nil, err
		}
	}
	if id == 0 {
		return nil, nil
	}

	task, err := s.tasks.Get(ctx, ex, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("picked task %d/%s disappeared", id, ex)
	}
	if err := s.shows.Record(ctx, ex, id); err != nil {
		return nil, err
	}
	return task, nil
}

// Check grades a submission against a single task, records it in the check
// history, and enriches it with explanations when a provider is available.
func (s *Service) Check(ctx context.Context, task *exam.Task, answers []string) (*CheckResult, error) {
	res, err := Grade(task, answers)
	if err != nil {
		return nil, err
	}
	s.finishCheck(ctx, []*exam.Task{task}, res)
	return res, nil
}

// CheckTransformationSet grades a submitted set of transformations.
func (s *Service) CheckTransformationSet(ctx context.Context, tasks []*exam.Task, answers []string) (*CheckResult, error) {
	res, err := GradeTransformationSet(tasks, answers)
	if err != nil {
		return nil, err
	}
	s.finishCheck(ctx, tasks, res)
	return res, nil
}

// finishCheck runs the common post-grading steps: history, explanations.
// Neither is allowed to fail the grade.
func (s *Service) finishCheck(ctx context.Context, tasks []*exam.Task, res *CheckResult) {
	if res.Total > 0 {
		if err := s.checks.Record(ctx, res.Exercise, res.Score, res.Total); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record check: %v\n", err)
		}
	}
	if s.explainer != nil {
		s.explainer.Enrich(ctx, tasks, res)
	}
}

// Stash parks a graded result for a later one-time read and returns its token.
func (s *Service) Stash(res *CheckResult) string {
	return s.results.Put(res)
}

// Retrieve returns a stashed result and discards it.
func (s *Service) Retrieve(token string) (*CheckResult, bool) {
	return s.results.Take(token)
}
