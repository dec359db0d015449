package explain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/llm"
	"github.com/abhisek/fcetrainer/internal/trainer"
)

func openClozeFixture(t *testing.T) (*exam.Task, *trainer.CheckResult) {
	t.Helper()
	raw, err := json.Marshal(exam.OpenClozePayload{
		Text:    "She lives (1)_____ Madrid and works (2)_____ home.",
		Answers: []string{"in", "from"},
	})
	if err != nil {
		t.Fatal(err)
	}
	task := &exam.Task{ID: 7, Exercise: exam.OpenCloze, Payload: raw}
	res := &trainer.CheckResult{
		Exercise: exam.OpenCloze,
		Details: []trainer.Detail{
			{Index: 0, UserValue: "in", Expected: "in", Correct: true, Attempted: true},
			{Index: 1, UserValue: "at", Expected: "from", Attempted: true},
		},
	}
	return task, res
}

func TestEnrichFillsExplanations(t *testing.T) {
	task, res := openClozeFixture(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `Here you go: ["'in' marks the city as a location.", "'from' pairs with 'works' for remote work."]`,
	})
	New(mock).Enrich(context.Background(), []*exam.Task{task}, res)

	if res.Details[0].Explanation == "" || res.Details[1].Explanation == "" {
		t.Fatalf("explanations missing: %+v", res.Details)
	}
	if !strings.Contains(res.Details[1].Explanation, "from") {
		t.Errorf("detail[1] explanation = %q", res.Details[1].Explanation)
	}
}

func TestEnrichSilentOnProviderError(t *testing.T) {
	task, res := openClozeFixture(t)
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	New(mock).Enrich(context.Background(), []*exam.Task{task}, res)

	for _, d := range res.Details {
		if d.Explanation != "" {
			t.Errorf("explanation set despite provider error: %q", d.Explanation)
		}
	}
}

func TestEnrichSilentOnShortArray(t *testing.T) {
	task, res := openClozeFixture(t)
	mock := llm.NewMockProvider(llm.MockResponse{Text: `["only one"]`})
	New(mock).Enrich(context.Background(), []*exam.Task{task}, res)

	if res.Details[0].Explanation != "" {
		t.Error("short array should be discarded entirely")
	}
}

func TestEnrichTruncatesLongExplanations(t *testing.T) {
	task, res := openClozeFixture(t)
	long := strings.Repeat("very ", 200)
	raw, _ := json.Marshal([]string{long, long})
	mock := llm.NewMockProvider(llm.MockResponse{Text: string(raw)})
	New(mock).Enrich(context.Background(), []*exam.Task{task}, res)

	if got := len([]rune(res.Details[0].Explanation)); got > MaxExplanationLen {
		t.Errorf("explanation length = %d, want <= %d", got, MaxExplanationLen)
	}
}

func TestEnrichWordFormationSetsWordFamily(t *testing.T) {
	raw, err := json.Marshal(exam.WordFormationPayload{
		Text:    "A (1)_____ decision. COMPLETE",
		Stems:   []string{"COMPLETE"},
		Answers: []string{"completely"},
	})
	if err != nil {
		t.Fatal(err)
	}
	task := &exam.Task{ID: 3, Exercise: exam.WordFormation, Payload: raw}
	res := &trainer.CheckResult{
		Exercise: exam.WordFormation,
		Details:  []trainer.Detail{{Index: 0, UserValue: "complete", Expected: "completely", Attempted: true}},
	}

	entries, _ := json.Marshal([]wordFamilyEntry{{
		Explanation: "An adverb is needed to modify the adjective.",
		WordFamily:  "noun: completion ; adjective: complete ; adverb: completely ; verb: complete",
	}})
	mock := llm.NewMockProvider(llm.MockResponse{Text: string(entries)})
	New(mock).Enrich(context.Background(), []*exam.Task{task}, res)

	if res.Details[0].Explanation == "" {
		t.Error("explanation missing")
	}
	if !strings.Contains(res.Details[0].WordFamily, "completion") {
		t.Errorf("word family = %q", res.Details[0].WordFamily)
	}
}

func TestEnrichRequestParameters(t *testing.T) {
	task, res := openClozeFixture(t)
	mock := llm.NewMockProvider(llm.MockResponse{Text: `["a", "b"]`})
	New(mock).Enrich(context.Background(), []*exam.Task{task}, res)

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1 (single attempt)", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Temperature != explainTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, explainTemperature)
	}
	if !strings.Contains(req.Messages[0].Content, "Correct answer: 'from'") {
		t.Error("prompt missing the graded detail")
	}
}
