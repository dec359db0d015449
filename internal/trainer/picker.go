package trainer

import (
	"context"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/store"
)

// ShowWindow is the number of most recent show events whose distinct task
// ids are excluded from the next pick.
const ShowWindow = 100

// Picker selects a task id the learner has not seen recently.
type Picker struct {
	tasks  store.TaskRepo
	shows  store.ShowRepo
	window int
}

// NewPicker creates a Picker over the standard exclusion window.
func NewPicker(tasks store.TaskRepo, shows store.ShowRepo) *Picker {
	return &Picker{tasks: tasks, shows: shows, window: ShowWindow}
}

// Pick returns a uniformly random task id for the exercise, excluding the
// distinct ids of the last `window` show events and, when non-zero, the
// currently displayed task. Returns 0 when the exclusions exhaust the
// table; callers fall back rather than treating that as an error.
func (p *Picker) Pick(ctx context.Context, ex exam.Exercise, excludeCurrent int) (int, error) {
	recent, err := p.shows.RecentShownIDs(ctx, ex, p.window)
	if err != nil {
		return 0, err
	}
	return p.tasks.RandomExcluding(ctx, ex, recent, excludeCurrent)
}
