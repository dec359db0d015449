package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/fcetrainer/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func insertTransformation(t *testing.T, s *Store, sentence1, keyword, topic string) int {
	t.Helper()
	raw, err := json.Marshal(exam.TransformationPayload{
		Sentence1: sentence1,
		Keyword:   keyword,
		Sentence2: "He _____ here.",
		Answer:    "has been",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	id, err := s.TaskRepo().Insert(context.Background(), &exam.Task{
		Exercise:     exam.Transformation,
		Payload:      raw,
		GrammarTopic: topic,
		Source:       exam.SourceManual,
	})
	if err != nil {
		t.Fatalf("insert task: %v", err)
	}
	return id
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTaskInsertAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id := insertTransformation(t, s, "He came here two years ago.", "BEEN", "present perfect")

	got, err := s.TaskRepo().Get(ctx, exam.Transformation, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected task, got nil")
	}
	if got.GrammarTopic != "present perfect" {
		t.Errorf("grammar topic = %q, want %q", got.GrammarTopic, "present perfect")
	}
	p, err := got.Transformation()
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if p.Keyword != "BEEN" {
		t.Errorf("keyword = %q, want BEEN", p.Keyword)
	}

	// Wrong exercise type does not find the row.
	miss, err := s.TaskRepo().Get(ctx, exam.OpenCloze, id)
	if err != nil {
		t.Fatalf("get wrong exercise: %v", err)
	}
	if miss != nil {
		t.Fatal("expected nil for mismatched exercise")
	}
}

func TestGetManyPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := insertTransformation(t, s, "First sentence here.", "ONE", "")
	b := insertTransformation(t, s, "Second sentence here.", "TWO", "")
	c := insertTransformation(t, s, "Third sentence here.", "THREE", "")

	got, err := s.TaskRepo().GetMany(ctx, exam.Transformation, []int{c, a, b, 9999})
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d tasks, want 3", len(got))
	}
	for i, want := range []int{c, a, b} {
		if got[i].ID != want {
			t.Errorf("task %d has id %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestRandomExcluding(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := insertTransformation(t, s, "Alpha sentence here.", "ALPHA", "")
	b := insertTransformation(t, s, "Beta sentence here.", "BETA", "")
	c := insertTransformation(t, s, "Gamma sentence here.", "GAMMA", "")

	// Excluding two of three leaves exactly one candidate.
	id, err := s.TaskRepo().RandomExcluding(ctx, exam.Transformation, []int{a, b}, 0)
	if err != nil {
		t.Fatalf("random excluding: %v", err)
	}
	if id != c {
		t.Errorf("got id %d, want %d", id, c)
	}

	// Excluding everything yields zero.
	id, err = s.TaskRepo().RandomExcluding(ctx, exam.Transformation, []int{a, b}, c)
	if err != nil {
		t.Fatalf("random excluding all: %v", err)
	}
	if id != 0 {
		t.Errorf("got id %d, want 0 when pool is exhausted", id)
	}
}

func TestTransformationPairExists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	insertTransformation(t, s, "She has lived here for years.", "SINCE", "")

	exists, err := s.TaskRepo().TransformationPairExists(ctx, "  She has lived here for years. ", "since")
	if err != nil {
		t.Fatalf("pair exists: %v", err)
	}
	if !exists {
		t.Error("expected pair to exist (trimmed, case-insensitive keyword)")
	}

	exists, err = s.TaskRepo().TransformationPairExists(ctx, "She has lived here for years.", "FOR")
	if err != nil {
		t.Fatalf("pair exists: %v", err)
	}
	if exists {
		t.Error("different keyword should not match")
	}
}

func TestRecentShownIDsDistinctMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	shows := s.ShowRepo()

	for _, id := range []int{1, 2, 1, 3, 2} {
		if err := shows.Record(ctx, exam.OpenCloze, id); err != nil {
			t.Fatalf("record show: %v", err)
		}
	}

	ids, err := shows.RecentShownIDs(ctx, exam.OpenCloze, 100)
	if err != nil {
		t.Fatalf("recent shown ids: %v", err)
	}
	want := []int{2, 3, 1}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestRecentShownIDsRespectsWindow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	shows := s.ShowRepo()

	for id := 1; id <= 10; id++ {
		if err := shows.Record(ctx, exam.ReadingMC, id); err != nil {
			t.Fatalf("record show: %v", err)
		}
	}

	ids, err := shows.RecentShownIDs(ctx, exam.ReadingMC, 3)
	if err != nil {
		t.Fatalf("recent shown ids: %v", err)
	}
	if len(ids) != 3 || ids[0] != 10 || ids[2] != 8 {
		t.Errorf("got %v, want [10 9 8]", ids)
	}
}

func TestRecentGrammarTopics(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := insertTransformation(t, s, "Sentence about modals.", "MIGHT", "modal verbs")
	b := insertTransformation(t, s, "Sentence about passives.", "BUILT", "passive voice")
	c := insertTransformation(t, s, "Another modal sentence.", "SHOULD", "Modal Verbs")

	for _, id := range []int{a, b, c} {
		if err := s.ShowRepo().Record(ctx, exam.Transformation, id); err != nil {
			t.Fatalf("record show: %v", err)
		}
	}

	topics, err := s.ShowRepo().RecentGrammarTopics(ctx, 5)
	if err != nil {
		t.Fatalf("recent grammar topics: %v", err)
	}
	// Most recent first, deduplicated case-insensitively.
	if len(topics) != 2 {
		t.Fatalf("got %v, want 2 distinct topics", topics)
	}
	if topics[0] != "Modal Verbs" || topics[1] != "passive voice" {
		t.Errorf("got %v, want [Modal Verbs, passive voice]", topics)
	}
}

func TestCheckStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	checks := s.CheckRepo()

	if err := checks.Record(ctx, exam.OpenCloze, 6, 8); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := checks.Record(ctx, exam.OpenCloze, 8, 8); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Zero total is dropped.
	if err := checks.Record(ctx, exam.ReadingMC, 0, 0); err != nil {
		t.Fatalf("record zero total: %v", err)
	}

	stats, err := checks.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != len(exam.All()) {
		t.Fatalf("got %d rows, want one per exercise", len(stats))
	}

	byEx := make(map[exam.Exercise]ExerciseStats)
	for _, row := range stats {
		byEx[row.Exercise] = row
	}
	oc := byEx[exam.OpenCloze]
	if oc.Attempts != 2 || oc.TotalCorrect != 14 || oc.TotalAnswered != 16 {
		t.Errorf("open cloze stats = %+v", oc)
	}
	if byEx[exam.ReadingMC].Attempts != 0 {
		t.Error("zero-total check should not count as an attempt")
	}
}

func TestSeedIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := s.TaskRepo().Count(ctx, exam.Transformation)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n == 0 {
		t.Fatal("seed inserted no transformation tasks")
	}

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	again, err := s.TaskRepo().Count(ctx, exam.Transformation)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if again != n {
		t.Errorf("second seed changed count from %d to %d", n, again)
	}
}

func TestSeedPayloadsDecode(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, ex := range exam.All() {
		tasks, err := s.TaskRepo().Recent(ctx, ex, 0)
		if err != nil {
			t.Fatalf("recent %s: %v", ex, err)
		}
		if len(tasks) == 0 {
			t.Errorf("no seed tasks for %s", ex)
			continue
		}
		for _, task := range tasks {
			var decodeErr error
			switch ex {
			case exam.MultipleChoiceCloze:
				_, decodeErr = task.Cloze()
			case exam.OpenCloze:
				_, decodeErr = task.OpenCloze()
			case exam.WordFormation:
				_, decodeErr = task.WordFormation()
			case exam.Transformation:
				_, decodeErr = task.Transformation()
			case exam.ReadingMC:
				_, decodeErr = task.Reading()
			case exam.GappedText:
				_, decodeErr = task.GappedText()
			case exam.MultipleMatching:
				_, decodeErr = task.Matching()
			}
			if decodeErr != nil {
				t.Errorf("%s task %d: %v", ex, task.ID, decodeErr)
			}
		}
	}
}
