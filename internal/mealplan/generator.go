package mealplan

import (
	"context"
	"fmt"
)

// Generator sends a prompt to a text-generation service and returns its raw
// text answer.
type Generator interface {
	// Name returns the provider identifier for logging.
	Name() string

	// IsAvailable reports whether a credential is configured.
	IsAvailable() bool

	// Generate returns the service's text for prompt, unmodified.
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator returns the generator for cfg.Provider. A missing API key is
// not an error here; it surfaces as ErrMissingCredential when generating.
func NewGenerator(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIGenerator(cfg), nil
	case ProviderAnthropic:
		return NewAnthropicGenerator(cfg), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
}
