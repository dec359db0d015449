package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/fcetrainer/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry, logging, and request-timeout
// middleware; the timeout spans all retry attempts of a call.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	logged, err := newLoggedProvider(ctx, cfg, events)
	if err != nil {
		return nil, err
	}
	return WithTimeout(WithRetry(logged, cfg.Retry), cfg.Timeout), nil
}

// NewSingleAttemptProvider creates a Provider with logging and the request
// timeout but no retry. Best-effort callers like the explanation requester
// use this: one failed call just means no enrichment.
func NewSingleAttemptProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	logged, err := newLoggedProvider(ctx, cfg, events)
	if err != nil {
		return nil, err
	}
	return WithTimeout(logged, cfg.Timeout), nil
}

func newLoggedProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, cfg.Provider, events), nil
}
