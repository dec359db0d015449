package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/fcetrainer/internal/store"
)

// captureEventRepo records appended LLM request events.
type captureEventRepo struct {
	events []store.LLMRequestEventData
}

func (c *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func (c *captureEventRepo) RecentLLMEvents(context.Context, int) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (c *captureEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

// fixedProvider returns one canned response with a configurable model field.
type fixedProvider struct {
	model string
	err   error
}

func (f fixedProvider) Generate(context.Context, Request) (*Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &Response{
		Text:  "ok",
		Model: f.model,
		Usage: Usage{InputTokens: 10, OutputTokens: 20},
	}, nil
}

func (f fixedProvider) ModelID() string { return "configured-model" }

func TestLogging_RecordsEvent(t *testing.T) {
	events := &captureEventRepo{}
	p := WithLogging(fixedProvider{model: "served-model"}, "openai", events)

	ctx := WithPurpose(context.Background(), "task-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	e := events.events[0]
	if e.Provider != "openai" || e.Purpose != "task-gen" {
		t.Errorf("event = %+v", e)
	}
	if e.Model != "served-model" {
		t.Errorf("model = %q, want the served model", e.Model)
	}
	if e.InputTokens != 10 || e.OutputTokens != 20 || !e.Success {
		t.Errorf("event = %+v", e)
	}
}

func TestLogging_KeepsConfiguredModelWhenResponseOmitsIt(t *testing.T) {
	events := &captureEventRepo{}
	p := WithLogging(fixedProvider{model: ""}, "openai", events)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	if got := events.events[0].Model; got != "configured-model" {
		t.Errorf("model = %q, want %q", got, "configured-model")
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	events := &captureEventRepo{}
	p := WithLogging(fixedProvider{err: errors.New("boom")}, "openai", events)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	e := events.events[0]
	if e.Success || e.ErrorMessage != "boom" {
		t.Errorf("event = %+v", e)
	}
	if e.Model != "configured-model" {
		t.Errorf("model = %q, want %q", e.Model, "configured-model")
	}
}
