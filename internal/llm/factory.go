package llm

import (
	"context"
	"fmt"

	"github.com/oaz/profiler/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware. eventRepo may be nil to skip logging.
//
// Note that the grading pipeline carries its own attempt budget and
// neutral fallback on top of this transport-level retry.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
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
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller -> retry -> logging -> base.
	if eventRepo != nil {
		base = WithLogging(base, eventRepo)
	}
	return WithRetry(base, cfg.Retry), nil
}
