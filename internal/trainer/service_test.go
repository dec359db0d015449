package trainer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/gen"
	"github.com/abhisek/fcetrainer/internal/llm"
)

func insertOpenCloze(t *testing.T, tasks *fakeTaskRepo, n int) []int {
	t.Helper()
	var ids []int
	for i := 0; i < n; i++ {
		raw, _ := json.Marshal(exam.OpenClozePayload{
			Text:    fmt.Sprintf("Text %d with a (1)_____ gap.", i),
			Answers: []string{"in"},
		})
		id, err := tasks.Insert(context.Background(), &exam.Task{
			Exercise: exam.OpenCloze, Payload: raw, Source: exam.SourceManual,
		})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	return ids
}

func insertTransformation(t *testing.T, tasks *fakeTaskRepo, answer, topic string) int {
	t.Helper()
	raw, _ := json.Marshal(exam.TransformationPayload{
		Sentence1:    "She started working here three years ago: " + answer + ".",
		Keyword:      strings.ToUpper(strings.Fields(answer)[0]),
		Sentence2:    "She _____ three years.",
		Answer:       answer,
		GrammarTopic: topic,
	})
	id, err := tasks.Insert(context.Background(), &exam.Task{
		Exercise: exam.Transformation, Payload: raw,
		GrammarTopic: topic, Source: exam.SourceManual,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestGetOrCreateRecordsExactlyOneShow(t *testing.T) {
	tasks := &fakeTaskRepo{}
	shows := newFakeShowRepo()
	insertOpenCloze(t, tasks, 3)
	s := NewService(tasks, shows, &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	task, err := s.GetOrCreate(context.Background(), exam.OpenCloze, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task == nil {
		t.Fatal("expected a task")
	}
	if got := shows.count(exam.OpenCloze); got != 1 {
		t.Errorf("show events = %d, want 1", got)
	}
	recent, _ := shows.RecentShownIDs(context.Background(), exam.OpenCloze, ShowWindow)
	if len(recent) != 1 || recent[0] != task.ID {
		t.Errorf("show log = %v, want [%d]", recent, task.ID)
	}
}

func TestGetOrCreateAvoidsRecentlyShown(t *testing.T) {
	tasks := &fakeTaskRepo{}
	shows := newFakeShowRepo()
	ids := insertOpenCloze(t, tasks, 5)
	s := NewService(tasks, shows, &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	seen := make(map[int]bool)
	for i := 0; i < len(ids); i++ {
		task, err := s.GetOrCreate(context.Background(), exam.OpenCloze, 0)
		if err != nil {
			t.Fatal(err)
		}
		if seen[task.ID] {
			t.Fatalf("task %d repeated while unseen tasks remained", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestGetOrCreateFallsBackWhenWindowExhausted(t *testing.T) {
	tasks := &fakeTaskRepo{}
	shows := newFakeShowRepo()
	ids := insertOpenCloze(t, tasks, 2)
	for _, id := range ids {
		_ = shows.Record(context.Background(), exam.OpenCloze, id)
	}
	s := NewService(tasks, shows, &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	task, err := s.GetOrCreate(context.Background(), exam.OpenCloze, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task == nil {
		t.Fatal("expected fallback to a stored task despite exhausted window")
	}
}

func TestGetOrCreateEmptyStoreNoProvider(t *testing.T) {
	s := NewService(&fakeTaskRepo{}, newFakeShowRepo(), &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	task, err := s.GetOrCreate(context.Background(), exam.OpenCloze, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task != nil {
		t.Fatalf("expected no task, got %d", task.ID)
	}
}

func TestGetOrCreateExcludesCurrent(t *testing.T) {
	tasks := &fakeTaskRepo{}
	shows := newFakeShowRepo()
	ids := insertOpenCloze(t, tasks, 2)
	s := NewService(tasks, shows, &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	for i := 0; i < 3; i++ {
		task, err := s.GetOrCreate(context.Background(), exam.OpenCloze, ids[0])
		if err != nil {
			t.Fatal(err)
		}
		if task == nil || task.ID == ids[0] {
			t.Fatalf("iteration %d returned the excluded current task", i)
		}
	}
}

func TestGetOrCreateGeneratesWhenStoreExhausted(t *testing.T) {
	tasks := &fakeTaskRepo{}
	shows := newFakeShowRepo()

	payload := exam.ClozePayload{}
	var b strings.Builder
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "Words (%d)_____ here. ", i)
		payload.Gaps = append(payload.Gaps, exam.ClozeGap{
			Options: []string{"w", "x", "y", "z"}, Correct: 0,
		})
	}
	payload.Text = b.String()
	raw, _ := json.Marshal(payload)

	mock := llm.NewMockProvider(llm.MockResponse{Text: string(raw)})
	synth := gen.New(mock, tasks, shows, gen.DefaultConfig())
	s := NewService(tasks, shows, &fakeCheckRepo{}, synth, nil, gen.LevelB2)

	task, err := s.GetOrCreate(context.Background(), exam.MultipleChoiceCloze, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task == nil {
		t.Fatal("expected generated task")
	}
	if task.Source != exam.SourceGenerated {
		t.Errorf("source = %q, want generated", task.Source)
	}
	if got := shows.count(exam.MultipleChoiceCloze); got != 1 {
		t.Errorf("show events = %d, want 1", got)
	}
}

func TestGetOrCreateRejectsTransformation(t *testing.T) {
	s := NewService(&fakeTaskRepo{}, newFakeShowRepo(), &fakeCheckRepo{}, nil, nil, gen.LevelB2)
	if _, err := s.GetOrCreate(context.Background(), exam.Transformation, 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestCheckRecordsHistory(t *testing.T) {
	tasks := &fakeTaskRepo{}
	checks := &fakeCheckRepo{}
	s := NewService(tasks, newFakeShowRepo(), checks, nil, nil, gen.LevelB2)

	raw, _ := json.Marshal(exam.OpenClozePayload{Answers: []string{"in", "to"}})
	task := &exam.Task{ID: 1, Exercise: exam.OpenCloze, Payload: raw}

	res, err := s.Check(context.Background(), task, []string{"in", "at"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 1 || res.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", res.Score, res.Total)
	}

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, ps := range stats {
		if ps.Exercise == exam.OpenCloze {
			found = true
			if ps.Attempts != 1 || ps.TotalCorrect != 1 || ps.TotalAnswered != 2 {
				t.Errorf("stats = %+v", ps)
			}
			if ps.Percent != 50 {
				t.Errorf("percent = %v, want 50", ps.Percent)
			}
		}
	}
	if !found {
		t.Error("open cloze missing from stats")
	}
}

func TestCheckResultDeliveredThroughCacheOnce(t *testing.T) {
	s := NewService(&fakeTaskRepo{}, newFakeShowRepo(), &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	raw, _ := json.Marshal(exam.OpenClozePayload{Answers: []string{"in"}})
	task := &exam.Task{ID: 1, Exercise: exam.OpenCloze, Payload: raw}

	res, err := s.Check(context.Background(), task, []string{"in"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token := s.Stash(res)
	got, ok := s.Retrieve(token)
	if !ok {
		t.Fatal("stashed result not retrievable")
	}
	if got != res {
		t.Error("retrieved a different result than was stashed")
	}
	if _, ok := s.Retrieve(token); ok {
		t.Error("second read of the same token should miss")
	}
}

func TestNextTransformationSetFromStore(t *testing.T) {
	tasks := &fakeTaskRepo{}
	shows := newFakeShowRepo()
	answers := []string{
		"has been working here",
		"is being repaired now",
		"would rather stay home",
		"was made to apologise",
		"had his car fixed",
		"is supposed to arrive",
		"might have been delayed",
		"used to live there",
	}
	for i, a := range answers {
		insertTransformation(t, tasks, a, fmt.Sprintf("topic %d", i))
	}
	s := NewService(tasks, shows, &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	set, err := s.NextTransformationSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != TransformationSetSize {
		t.Fatalf("set size = %d, want %d", len(set), TransformationSetSize)
	}
	if got := shows.count(exam.Transformation); got != TransformationSetSize {
		t.Errorf("show events = %d, want %d", got, TransformationSetSize)
	}
}

func TestNextTransformationSetPrefersFreshTopics(t *testing.T) {
	tasks := &fakeTaskRepo{}
	shows := newFakeShowRepo()
	// Enough stale-topic tasks to fill the candidate pool, plus fresh ones.
	for i := 0; i < 8; i++ {
		insertTransformation(t, tasks, "has been working here", "passive voice")
	}
	freshA := insertTransformation(t, tasks, "would rather stay home", "preferences")
	freshB := insertTransformation(t, tasks, "is supposed to arrive", "reported speech")
	shows.topics = []string{"passive voice"}
	s := NewService(tasks, shows, &fakeCheckRepo{}, nil, nil, gen.LevelB2)

	set, err := s.NextTransformationSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) == 0 {
		t.Fatal("expected a set")
	}
	fresh := map[int]bool{freshA: true, freshB: true}
	if !fresh[set[0].ID] {
		t.Errorf("first task %d has a recently shown topic; fresh topics should sort first", set[0].ID)
	}
}

func TestNextTransformationSetEmptyStore(t *testing.T) {
	s := NewService(&fakeTaskRepo{}, newFakeShowRepo(), &fakeCheckRepo{}, nil, nil, gen.LevelB2)
	set, err := s.NextTransformationSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %d tasks", len(set))
	}
}
