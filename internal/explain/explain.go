// Package explain asks the LLM for short per-item rationales after grading.
// Everything here is best effort: one attempt, no retry, and any failure
// (provider down, malformed response, wrong array length) leaves the graded
// result untouched. An explanation can never fail a check.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/llm"
	"github.com/abhisek/fcetrainer/internal/trainer"
)

const (
	// MaxExplanationLen caps each explanation shown to the learner.
	MaxExplanationLen = 400

	// MaxWordFamilyLen caps the word-family line for word formation gaps.
	MaxWordFamilyLen = 200

	explainTemperature = 0.3
	explainMaxTokens   = 2048
)

// arraySpan grabs the first complete JSON array from the response text,
// non-greedy so trailing prose after the array doesn't get swallowed.
var arraySpan = regexp.MustCompile(`\[[\s\S]*?\]`)

// Requester implements trainer.Explainer over an LLM provider.
type Requester struct {
	provider llm.Provider
}

// New creates a Requester. Pass a provider without retry middleware:
// explanations are single-attempt.
func New(provider llm.Provider) *Requester {
	return &Requester{provider: provider}
}

// Enrich fills the Explanation (and, for word formation, WordFamily) field
// of each detail in res. On any failure the details stay as they were.
func (r *Requester) Enrich(ctx context.Context, tasks []*exam.Task, res *trainer.CheckResult) {
	if r == nil || r.provider == nil || res == nil || len(tasks) == 0 {
		return
	}
	var err error
	switch res.Exercise {
	case exam.MultipleChoiceCloze:
		err = r.enrichCloze(ctx, tasks[0], res)
	case exam.OpenCloze:
		err = r.enrichOpenCloze(ctx, tasks[0], res)
	case exam.WordFormation:
		err = r.enrichWordFormation(ctx, tasks[0], res)
	case exam.Transformation:
		err = r.enrichTransformations(ctx, tasks, res)
	case exam.ReadingMC:
		err = r.enrichReading(ctx, tasks[0], res)
	case exam.GappedText:
		err = r.enrichGappedText(ctx, tasks[0], res)
	case exam.MultipleMatching:
		err = r.enrichMatching(ctx, tasks[0], res)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: explanations unavailable for %s: %v\n", res.Exercise, err)
	}
}

// complete runs one LLM call and returns the trimmed response text.
func (r *Requester) complete(ctx context.Context, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, "explanations")
	resp, err := r.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   explainMaxTokens,
		Temperature: explainTemperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

// stringArray asks for explanations and decodes a JSON array of at least
// want strings.
func (r *Requester) stringArray(ctx context.Context, prompt string, want int) ([]string, error) {
	text, err := r.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	span := arraySpan.FindString(text)
	if span == "" {
		return nil, fmt.Errorf("no JSON array in response")
	}
	var arr []string
	if err := json.Unmarshal([]byte(span), &arr); err != nil {
		return nil, fmt.Errorf("decode explanations: %w", err)
	}
	if len(arr) < want {
		return nil, fmt.Errorf("got %d explanations, want %d", len(arr), want)
	}
	return arr[:want], nil
}

// truncate bounds s to max runes.
func truncate(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max])
}

// applyStrings writes one truncated explanation per detail.
func applyStrings(res *trainer.CheckResult, arr []string) {
	for i := range res.Details {
		if i < len(arr) {
			res.Details[i].Explanation = truncate(arr[i], MaxExplanationLen)
		}
	}
}

// orBlank renders an empty submission for the prompt.
func orBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(no answer)"
	}
	return s
}

func (r *Requester) enrichCloze(ctx context.Context, task *exam.Task, res *trainer.CheckResult) error {
	p, err := task.Cloze()
	if err != nil {
		return err
	}
	prompt := clozeExplainPrompt(p, res.Details)
	arr, err := r.stringArray(ctx, prompt, len(p.Gaps))
	if err != nil {
		return err
	}
	applyStrings(res, arr)
	return nil
}

func (r *Requester) enrichOpenCloze(ctx context.Context, task *exam.Task, res *trainer.CheckResult) error {
	p, err := task.OpenCloze()
	if err != nil {
		return err
	}
	arr, err := r.stringArray(ctx, openClozeExplainPrompt(p, res.Details), len(p.Answers))
	if err != nil {
		return err
	}
	applyStrings(res, arr)
	return nil
}

// wordFamilyEntry is one gap's enrichment for word formation.
type wordFamilyEntry struct {
	Explanation string `json:"explanation"`
	WordFamily  string `json:"word_family"`
}

func (r *Requester) enrichWordFormation(ctx context.Context, task *exam.Task, res *trainer.CheckResult) error {
	p, err := task.WordFormation()
	if err != nil {
		return err
	}
	text, err := r.complete(ctx, wordFormationExplainPrompt(p, res.Details))
	if err != nil {
		return err
	}
	span := arraySpan.FindString(text)
	if span == "" {
		return fmt.Errorf("no JSON array in response")
	}
	var arr []wordFamilyEntry
	if err := json.Unmarshal([]byte(span), &arr); err != nil {
		return fmt.Errorf("decode explanations: %w", err)
	}
	if len(arr) < len(p.Stems) {
		return fmt.Errorf("got %d entries, want %d", len(arr), len(p.Stems))
	}
	for i := range res.Details {
		if i < len(arr) {
			res.Details[i].Explanation = truncate(arr[i].Explanation, MaxExplanationLen)
			res.Details[i].WordFamily = truncate(arr[i].WordFamily, MaxWordFamilyLen)
		}
	}
	return nil
}

func (r *Requester) enrichTransformations(ctx context.Context, tasks []*exam.Task, res *trainer.CheckResult) error {
	items := make([]*exam.TransformationPayload, 0, len(tasks))
	for _, t := range tasks {
		p, err := t.Transformation()
		if err != nil {
			return err
		}
		items = append(items, p)
	}
	arr, err := r.stringArray(ctx, transformationExplainPrompt(items, res.Details), len(items))
	if err != nil {
		return err
	}
	applyStrings(res, arr)
	return nil
}

func (r *Requester) enrichReading(ctx context.Context, task *exam.Task, res *trainer.CheckResult) error {
	p, err := task.Reading()
	if err != nil {
		return err
	}
	arr, err := r.stringArray(ctx, readingExplainPrompt(p, res.Details), len(p.Questions))
	if err != nil {
		return err
	}
	applyStrings(res, arr)
	return nil
}

func (r *Requester) enrichGappedText(ctx context.Context, task *exam.Task, res *trainer.CheckResult) error {
	p, err := task.GappedText()
	if err != nil {
		return err
	}
	arr, err := r.stringArray(ctx, gappedTextExplainPrompt(p, res.Details), len(p.Answers))
	if err != nil {
		return err
	}
	applyStrings(res, arr)
	return nil
}

func (r *Requester) enrichMatching(ctx context.Context, task *exam.Task, res *trainer.CheckResult) error {
	p, err := task.Matching()
	if err != nil {
		return err
	}
	arr, err := r.stringArray(ctx, matchingExplainPrompt(p, res.Details), len(p.Questions))
	if err != nil {
		return err
	}
	applyStrings(res, arr)
	return nil
}
