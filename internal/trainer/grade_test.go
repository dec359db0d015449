package trainer

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/fcetrainer/internal/exam"
)

func mustTask(t *testing.T, ex exam.Exercise, payload any) *exam.Task {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return &exam.Task{ID: 1, Exercise: ex, Payload: raw, Source: exam.SourceManual}
}

func TestGradeClozeCountsCorrectChoices(t *testing.T) {
	p := exam.ClozePayload{Text: "irrelevant here"}
	correct := []int{1, 2, 0}
	for _, c := range correct {
		p.Gaps = append(p.Gaps, exam.ClozeGap{
			Options: []string{"alpha", "bravo", "charlie", "delta"},
			Correct: c,
		})
	}
	task := mustTask(t, exam.MultipleChoiceCloze, p)

	res, err := Grade(task, []string{"1", "", "0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 2 || res.Total != 3 {
		t.Errorf("score = %d/%d, want 2/3", res.Score, res.Total)
	}
	if !res.Details[0].Correct || res.Details[1].Correct || !res.Details[2].Correct {
		t.Errorf("details = %+v", res.Details)
	}
	if res.Details[1].Attempted {
		t.Error("blank answer marked attempted")
	}
	if res.Details[0].UserValue != "bravo" || res.Details[0].Expected != "bravo" {
		t.Errorf("detail[0] = %+v", res.Details[0])
	}
}

func TestGradeClozeUnparsableIsIncorrectNotError(t *testing.T) {
	p := exam.ClozePayload{
		Gaps: []exam.ClozeGap{{Options: []string{"a", "b", "c", "d"}, Correct: 0}},
	}
	task := mustTask(t, exam.MultipleChoiceCloze, p)

	res, err := Grade(task, []string{"banana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if res.Details[0].Correct {
		t.Error("unparsable answer graded correct")
	}
}

func TestGradeOpenClozeFuzzyBoundary(t *testing.T) {
	p := exam.OpenClozePayload{Answers: []string{"receive", "right"}}
	task := mustTask(t, exam.OpenCloze, p)

	res, err := Grade(task, []string{"recieve", "wrong"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Details[0].Correct {
		t.Error("minor misspelling should still match")
	}
	if res.Details[1].Correct {
		t.Error("different word should not match")
	}
	if res.Score != 1 || res.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", res.Score, res.Total)
	}
}

func TestGradeIsIdempotent(t *testing.T) {
	p := exam.OpenClozePayload{Answers: []string{"in", "to", "for"}}
	task := mustTask(t, exam.OpenCloze, p)
	answers := []string{"in", "at", ""}

	first, err := Grade(task, answers)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Grade(task, answers)
	if err != nil {
		t.Fatal(err)
	}
	if first.Score != second.Score || first.Total != second.Total {
		t.Errorf("grading not stable: %d/%d vs %d/%d",
			first.Score, first.Total, second.Score, second.Total)
	}
}

func TestGradeGappedTextLetters(t *testing.T) {
	p := exam.GappedTextPayload{
		Paragraphs: []string{"Intro.", "GAP1", "GAP2"},
		Sentences:  make([]string, 7),
		Answers:    []int{3, 0},
	}
	task := mustTask(t, exam.GappedText, p)

	res, err := Grade(task, []string{"3", "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
	if res.Details[0].Expected != "D" || res.Details[0].UserValue != "D" {
		t.Errorf("detail[0] = %+v", res.Details[0])
	}
	if res.Details[1].UserValue != "F" {
		t.Errorf("detail[1] user value = %q, want F", res.Details[1].UserValue)
	}
}

func TestGradeMatchingLabelCaseInsensitive(t *testing.T) {
	p := exam.MatchingPayload{
		Sections: []exam.MatchingSection{{ID: "A"}, {ID: "B"}},
		Questions: []exam.MatchingQuestion{
			{Text: "first", Correct: "A"},
			{Text: "second", Correct: "B"},
			{Text: "third", Correct: "A"},
		},
	}
	task := mustTask(t, exam.MultipleMatching, p)

	res, err := Grade(task, []string{"a", "A", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 1 || res.Total != 3 {
		t.Errorf("score = %d/%d, want 1/3", res.Score, res.Total)
	}
	if !res.Details[0].Correct {
		t.Error("lowercase label should match")
	}
	if res.Details[2].Correct {
		t.Error("blank label graded correct")
	}
}

func TestGradeTransformationSetCountsAttemptedOnly(t *testing.T) {
	mk := func(id int, answer string) *exam.Task {
		raw, _ := json.Marshal(exam.TransformationPayload{
			Sentence1: "s1", Keyword: "KW", Sentence2: "x _____ y", Answer: answer,
		})
		return &exam.Task{ID: id, Exercise: exam.Transformation, Payload: raw}
	}
	tasks := []*exam.Task{
		mk(1, "has been living here"),
		mk(2, "is said to be"),
		mk(3, "would rather not go"),
	}

	res, err := GradeTransformationSet(tasks, []string{"has been living here", "", "went home early"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("total = %d, want 2 (blank item excluded)", res.Total)
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
	if res.Details[1].Attempted {
		t.Error("blank item marked attempted")
	}
	if len(res.TaskIDs) != 3 {
		t.Errorf("task ids = %v", res.TaskIDs)
	}
}

func TestGradeWrongExerciseFails(t *testing.T) {
	task := mustTask(t, exam.Transformation, exam.TransformationPayload{})
	if _, err := Grade(task, nil); err == nil {
		t.Fatal("expected error for transformation via Grade")
	}
}
