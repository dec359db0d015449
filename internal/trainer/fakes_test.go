package trainer

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/store"
)

type fakeTaskRepo struct {
	mu     sync.Mutex
	nextID int
	tasks  []*exam.Task
}

func (f *fakeTaskRepo) Insert(_ context.Context, t *exam.Task) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	clone := *t
	clone.ID = f.nextID
	f.tasks = append(f.tasks, &clone)
	return clone.ID, nil
}

func (f *fakeTaskRepo) Get(_ context.Context, ex exam.Exercise, id int) (*exam.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id && t.Exercise == ex {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) GetMany(ctx context.Context, ex exam.Exercise, ids []int) ([]*exam.Task, error) {
	var out []*exam.Task
	for _, id := range ids {
		t, _ := f.Get(ctx, ex, id)
		if t != nil {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) RandomExcluding(_ context.Context, ex exam.Exercise, excluded []int, extraExclude int) (int, error) {
	skip := make(map[int]bool)
	for _, id := range excluded {
		skip[id] = true
	}
	skip[extraExclude] = true
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.Exercise == ex && !skip[t.ID] {
			return t.ID, nil
		}
	}
	return 0, nil
}

func (f *fakeTaskRepo) RandomIDs(_ context.Context, ex exam.Exercise, excluded []int, limit int) ([]int, error) {
	skip := make(map[int]bool)
	for _, id := range excluded {
		skip[id] = true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []int
	for _, t := range f.tasks {
		if t.Exercise == ex && !skip[t.ID] {
			out = append(out, t.ID)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Recent(_ context.Context, ex exam.Exercise, limit int) ([]*exam.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*exam.Task
	for i := len(f.tasks) - 1; i >= 0; i-- {
		if f.tasks[i].Exercise == ex {
			out = append(out, f.tasks[i])
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Count(_ context.Context, ex exam.Exercise) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tasks {
		if t.Exercise == ex {
			n++
		}
	}
	return n, nil
}

func (f *fakeTaskRepo) TransformationPairExists(_ context.Context, sentence1, keyword string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s1 := strings.TrimSpace(sentence1)
	kw := strings.ToUpper(strings.TrimSpace(keyword))
	for _, t := range f.tasks {
		if t.Exercise != exam.Transformation {
			continue
		}
		p, err := t.Transformation()
		if err != nil {
			continue
		}
		if strings.TrimSpace(p.Sentence1) == s1 && strings.ToUpper(strings.TrimSpace(p.Keyword)) == kw {
			return true, nil
		}
	}
	return false, nil
}

type fakeShowRepo struct {
	mu     sync.Mutex
	shows  map[exam.Exercise][]int
	topics []string
}

func newFakeShowRepo() *fakeShowRepo {
	return &fakeShowRepo{shows: make(map[exam.Exercise][]int)}
}

func (f *fakeShowRepo) Record(_ context.Context, ex exam.Exercise, taskID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shows[ex] = append(f.shows[ex], taskID)
	return nil
}

func (f *fakeShowRepo) RecordMany(ctx context.Context, ex exam.Exercise, taskIDs []int) error {
	for _, id := range taskIDs {
		if err := f.Record(ctx, ex, id); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeShowRepo) RecentShownIDs(_ context.Context, ex exam.Exercise, window int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.shows[ex]
	if window > 0 && len(events) > window {
		events = events[len(events)-window:]
	}
	seen := make(map[int]bool)
	var ids []int
	for i := len(events) - 1; i >= 0; i-- {
		if !seen[events[i]] {
			seen[events[i]] = true
			ids = append(ids, events[i])
		}
	}
	return ids, nil
}

func (f *fakeShowRepo) RecentGrammarTopics(_ context.Context, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	topics := f.topics
	if limit > 0 && len(topics) > limit {
		topics = topics[:limit]
	}
	return topics, nil
}

func (f *fakeShowRepo) count(ex exam.Exercise) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.shows[ex])
}

type fakeCheckRepo struct {
	mu      sync.Mutex
	records []store.ExerciseStats
}

func (f *fakeCheckRepo) Record(_ context.Context, ex exam.Exercise, score, total int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, store.ExerciseStats{
		Exercise:      ex,
		TotalCorrect:  score,
		TotalAnswered: total,
		Attempts:      1,
		LastAttemptAt: time.Now(),
	})
	return nil
}

func (f *fakeCheckRepo) Stats(_ context.Context) ([]store.ExerciseStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byEx := make(map[exam.Exercise]*store.ExerciseStats)
	for _, r := range f.records {
		agg, ok := byEx[r.Exercise]
		if !ok {
			agg = &store.ExerciseStats{Exercise: r.Exercise}
			byEx[r.Exercise] = agg
		}
		agg.TotalCorrect += r.TotalCorrect
		agg.TotalAnswered += r.TotalAnswered
		agg.Attempts++
		agg.LastAttemptAt = r.LastAttemptAt
	}
	var out []store.ExerciseStats
	for _, ex := range exam.All() {
		if agg, ok := byEx[ex]; ok {
			out = append(out, *agg)
		} else {
			out = append(out, store.ExerciseStats{Exercise: ex})
		}
	}
	return out, nil
}
