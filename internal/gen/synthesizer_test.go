package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/llm"
)

// fakeTaskRepo is an in-memory store.TaskRepo for tests.
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

// fakeShowRepo is an in-memory store.ShowRepo for tests.
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

func newTestSynthesizer(tasks *fakeTaskRepo, responses ...llm.MockResponse) (*Synthesizer, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, tasks, newFakeShowRepo(), DefaultConfig()), mock
}

func validClozeJSON(t *testing.T) string {
	t.Helper()
	p := exam.ClozePayload{Text: gapText(8)}
	for i := 0; i < 8; i++ {
		p.Gaps = append(p.Gaps, exam.ClozeGap{
			Options: []string{"stay", "remain", "keep", "hold"},
			Correct: i % 4,
		})
	}
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}

func TestGenerateClozePersistsValidTask(t *testing.T) {
	tasks := &fakeTaskRepo{}
	s, mock := newTestSynthesizer(tasks, llm.MockResponse{
		Text: "Here you go:\n```json\n" + validClozeJSON(t) + "\n```",
	})

	task, err := s.Generate(context.Background(), exam.MultipleChoiceCloze, LevelB2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID == 0 {
		t.Error("task was not persisted")
	}
	if task.Source != exam.SourceGenerated {
		t.Errorf("source = %q, want generated", task.Source)
	}
	p, err := task.Cloze()
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(p.Gaps) != 8 {
		t.Errorf("got %d gaps, want 8", len(p.Gaps))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGenerateClozeRejectsMissingMarkers(t *testing.T) {
	tasks := &fakeTaskRepo{}
	bad := `{"text": "No markers at all.", "gaps": [` +
		strings.TrimSuffix(strings.Repeat(`{"options":["a","b","c","d"],"correct":0},`, 8), ",") + `]}`
	s, _ := newTestSynthesizer(tasks, llm.MockResponse{Text: bad})

	_, err := s.Generate(context.Background(), exam.MultipleChoiceCloze, LevelB2)
	if err == nil {
		t.Fatal("expected error")
	}
	if n, _ := tasks.Count(context.Background(), exam.MultipleChoiceCloze); n != 0 {
		t.Errorf("rejected output was persisted (%d rows)", n)
	}
}

func TestGenerateWordFormationRetriesOnUnchangedStems(t *testing.T) {
	makePayload := func(unchanged int) string {
		p := exam.WordFormationPayload{Text: gapText(8)}
		for i := 0; i < 8; i++ {
			p.Stems = append(p.Stems, "COMPLETE")
			if i < unchanged {
				p.Answers = append(p.Answers, "complete")
			} else {
				p.Answers = append(p.Answers, "completion")
			}
		}
		raw, _ := json.Marshal(p)
		return string(raw)
	}

	tasks := &fakeTaskRepo{}
	s, mock := newTestSynthesizer(tasks,
		llm.MockResponse{Text: makePayload(3)}, // too many unchanged
		llm.MockResponse{Text: makePayload(0)},
	)

	task, err := s.Generate(context.Background(), exam.WordFormation, LevelB2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task == nil || task.ID == 0 {
		t.Fatal("expected persisted task")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerateWordFormationGivesUpAfterAttempts(t *testing.T) {
	tasks := &fakeTaskRepo{}
	s, mock := newTestSynthesizer(tasks,
		llm.MockResponse{Text: "not json"},
		llm.MockResponse{Text: "not json"},
		llm.MockResponse{Text: "not json"},
		llm.MockResponse{Text: "not json"},
	)

	_, err := s.Generate(context.Background(), exam.WordFormation, LevelB2)
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != DefaultConfig().WordFormationAttempts {
		t.Errorf("expected %d calls, got %d", DefaultConfig().WordFormationAttempts, mock.CallCount())
	}
}

func transformationJSON(items ...transformationItem) string {
	raw, _ := json.Marshal(items)
	return string(raw)
}

func TestTransformationBatchFiltersBadItems(t *testing.T) {
	good := func(n int) transformationItem {
		return transformationItem{
			Sentence1:    fmt.Sprintf("Nobody in the group number %d runs faster than Tom.", n),
			Keyword:      "FASTEST",
			Sentence2:    fmt.Sprintf("Tom _____ in group number %d.", n),
			Answer:       "is the fastest runner",
			GrammarTopic: fmt.Sprintf("comparatives %d", n),
		}
	}

	items := []transformationItem{
		good(1),
		{ // keyword missing from answer
			Sentence1: "She started the job in May.", Keyword: "SINCE",
			Sentence2: "She _____ May.", Answer: "has worked from",
			GrammarTopic: "present perfect",
		},
		{ // answer too short
			Sentence1: "Perhaps he forgot the meeting.", Keyword: "MIGHT",
			Sentence2: "He _____ the meeting.", Answer: "might forget",
			GrammarTopic: "modal verbs",
		},
		good(2),
	}

	tasks := &fakeTaskRepo{}
	s, _ := newTestSynthesizer(tasks,
		llm.MockResponse{Text: transformationJSON(items...)},
		llm.MockResponse{Text: "[]"},
	)

	accepted, err := s.GenerateTransformationBatch(context.Background(), LevelB2Plus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accepted) != 2 {
		t.Fatalf("accepted %d items, want 2", len(accepted))
	}
	for _, task := range accepted {
		if task.Exercise != exam.Transformation || task.ID == 0 {
			t.Errorf("bad accepted task: %+v", task)
		}
	}
}

func TestTransformationBatchRejectsRepeatedTopic(t *testing.T) {
	a := transformationItem{
		Sentence1: "They are building a new school here.", Keyword: "BUILT",
		Sentence2: "A new school _____ here.", Answer: "is being built",
		GrammarTopic: "passive voice",
	}
	b := transformationItem{
		Sentence1: "Someone repaired my watch yesterday.", Keyword: "HAD",
		Sentence2: "I _____ yesterday.", Answer: "had my watch repaired",
		GrammarTopic: "Passive Voice",
	}

	tasks := &fakeTaskRepo{}
	s, _ := newTestSynthesizer(tasks,
		llm.MockResponse{Text: transformationJSON(a, b)},
		llm.MockResponse{Text: "[]"},
	)

	accepted, err := s.GenerateTransformationBatch(context.Background(), LevelB2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accepted) != 1 {
		t.Fatalf("accepted %d items, want 1 (topic repeated)", len(accepted))
	}
}

func TestTransformationBatchSkipsNearDuplicates(t *testing.T) {
	existing := exam.TransformationPayload{
		Sentence1: "I have never visited Rome before this trip.",
		Keyword:   "TIME",
		Sentence2: "This is _____ Rome.",
		Answer:    "the first time visiting",
	}
	raw, _ := json.Marshal(existing)
	tasks := &fakeTaskRepo{}
	if _, err := tasks.Insert(context.Background(), &exam.Task{
		Exercise: exam.Transformation, Payload: raw, Source: exam.SourceManual,
	}); err != nil {
		t.Fatal(err)
	}

	dup := transformationItem{
		Sentence1: "I have never visited Rome before this trip!",
		Keyword:   "FIRST",
		Sentence2: "This is _____ to Rome.",
		Answer:    "my first ever visit",
		GrammarTopic: "present perfect",
	}

	s, _ := newTestSynthesizer(tasks,
		llm.MockResponse{Text: transformationJSON(dup)},
		llm.MockResponse{Text: "[]"},
	)

	accepted, err := s.GenerateTransformationBatch(context.Background(), LevelB2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accepted) != 0 {
		t.Fatalf("accepted %d items, want 0 (near duplicate of stored task)", len(accepted))
	}
}
