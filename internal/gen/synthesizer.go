package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/llm"
	"github.com/abhisek/fcetrainer/internal/store"
)

// Synthesizer generates, validates, and persists new tasks.
type Synthesizer struct {
	provider llm.Provider
	tasks    store.TaskRepo
	shows    store.ShowRepo
	cfg      Config
}

// New creates a Synthesizer. The provider must be non-nil; callers that
// run without an LLM simply don't construct one.
func New(provider llm.Provider, tasks store.TaskRepo, shows store.ShowRepo, cfg Config) *Synthesizer {
	return &Synthesizer{provider: provider, tasks: tasks, shows: shows, cfg: cfg}
}

// Generate produces one new task of the given single-task exercise type.
// Transformations are batch-generated; use GenerateTransformationSet.
func (s *Synthesizer) Generate(ctx context.Context, ex exam.Exercise, level Level) (*exam.Task, error) {
	switch ex {
	case exam.MultipleChoiceCloze:
		return s.generateCloze(ctx, level)
	case exam.OpenCloze:
		return s.generateOpenCloze(ctx, level)
	case exam.WordFormation:
		return s.generateWordFormation(ctx, level)
	case exam.ReadingMC:
		return s.generateReading(ctx)
	case exam.GappedText:
		return s.generateGappedText(ctx)
	case exam.MultipleMatching:
		return s.generateMatching(ctx)
	default:
		return nil, fmt.Errorf("no single-task generator for %s", ex)
	}
}

// complete runs one LLM request and returns the raw completion text.
func (s *Synthesizer) complete(ctx context.Context, spec promptSpec) (string, error) {
	ctx = llm.WithPurpose(ctx, "task-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: spec.prompt}},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: spec.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// persist stores an accepted payload and returns the saved task.
func (s *Synthesizer) persist(ctx context.Context, ex exam.Exercise, payload any, grammarTopic string) (*exam.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", ex, err)
	}
	t := &exam.Task{
		Exercise:     ex,
		Payload:      raw,
		GrammarTopic: grammarTopic,
		Source:       exam.SourceGenerated,
	}
	id, err := s.tasks.Insert(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return t, nil
}

func (s *Synthesizer) generateCloze(ctx context.Context, level Level) (*exam.Task, error) {
	text, err := s.complete(ctx, clozePrompt(level, pickTopic(clozeTopics)))
	if err != nil {
		return nil, err
	}
	doc, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("cloze", clozeSchema, []byte(doc)); err != nil {
		return nil, err
	}

	var raw struct {
		Text string `json:"text"`
		Gaps []struct {
			Options []string `json:"options"`
			Correct int      `json:"correct"`
		} `json:"gaps"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, rejectf("decode", "%v", err)
	}

	p := exam.ClozePayload{Text: strings.TrimSpace(raw.Text)}
	for _, g := range raw.Gaps {
		gap := exam.ClozeGap{Correct: clampChoice(g.Correct)}
		for _, opt := range g.Options {
			gap.Options = append(gap.Options, strings.TrimSpace(opt))
		}
		p.Gaps = append(p.Gaps, gap)
	}
	if verr := validateCloze(&p); verr != nil {
		return nil, verr
	}
	return s.persist(ctx, exam.MultipleChoiceCloze, p, "")
}

func (s *Synthesizer) generateOpenCloze(ctx context.Context, level Level) (*exam.Task, error) {
	text, err := s.complete(ctx, openClozePrompt(level, pickTopic(openClozeTopics)))
	if err != nil {
		return nil, err
	}
	doc, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("open-cloze", openClozeSchema, []byte(doc)); err != nil {
		return nil, err
	}

	var raw exam.OpenClozePayload
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, rejectf("decode", "%v", err)
	}
	p := exam.OpenClozePayload{Text: strings.TrimSpace(raw.Text)}
	for _, a := range raw.Answers {
		p.Answers = append(p.Answers, strings.TrimSpace(a))
	}
	if verr := validateOpenCloze(&p); verr != nil {
		return nil, verr
	}
	return s.persist(ctx, exam.OpenCloze, p, "")
}

// generateWordFormation retries generation a few times: the unchanged-stem
// rule is the hardest constraint for the models to respect.
func (s *Synthesizer) generateWordFormation(ctx context.Context, level Level) (*exam.Task, error) {
	var lastErr error
	for attempt := 0; attempt < s.cfg.WordFormationAttempts; attempt++ {
		task, err := s.wordFormationAttempt(ctx, level)
		if err == nil {
			return task, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (s *Synthesizer) wordFormationAttempt(ctx context.Context, level Level) (*exam.Task, error) {
	text, err := s.complete(ctx, wordFormationPrompt(level, pickTopic(passageTopics)))
	if err != nil {
		return nil, err
	}
	doc, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("word-formation", wordFormationSchema, []byte(doc)); err != nil {
		return nil, err
	}

	var raw exam.WordFormationPayload
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, rejectf("decode", "%v", err)
	}
	p := exam.WordFormationPayload{Text: strings.TrimSpace(raw.Text)}
	for i := range raw.Stems {
		p.Stems = append(p.Stems, strings.ToUpper(strings.TrimSpace(raw.Stems[i])))
		p.Answers = append(p.Answers, strings.TrimSpace(raw.Answers[i]))
	}
	if verr := validateWordFormation(&p, s.cfg.MaxUnchangedStems); verr != nil {
		return nil, verr
	}
	return s.persist(ctx, exam.WordFormation, p, "")
}
