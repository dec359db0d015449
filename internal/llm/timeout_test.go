package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for the context to expire and reports its error.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeout_CancelsSlowGenerate(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("generate ran for %v; the deadline did not apply", elapsed)
	}
}

func TestTimeout_FastCallPassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "hello"})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "hello" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("unexpected model id: %s", p.ModelID())
	}
}

func TestTimeout_DisabledWhenZero(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout should return the provider unchanged")
	}
}
