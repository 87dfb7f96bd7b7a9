package mealplan

import (
	"context"
	"log"
	"time"

	"lg/macromate-go-api/internal/macro"
)

// Service guards the generator on credential presence, builds the prompt and
// passes the provider's answer through unmodified. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	gen     Generator
	timeout time.Duration
}

// NewService wraps gen. A non-positive timeout leaves the caller's context
// deadline as the only bound.
func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{gen: gen, timeout: timeout}
}

// Provider returns the generator name, or "" when none is set.
func (s *Service) Provider() string {
	if s.gen == nil {
		return ""
	}
	return s.gen.Name()
}

// Available reports whether Generate can reach a provider at all.
func (s *Service) Available() bool {
	return s.gen != nil && s.gen.IsAvailable()
}

// Generate returns a sample meal plan for the profile and its computed plan.
// Without a credential it fails with ErrMissingCredential before the prompt
// is built. Provider failures are returned as-is.
func (s *Service) Generate(ctx context.Context, p macro.Profile, plan macro.Plan) (string, error) {
	if !s.Available() {
		return "", ErrMissingCredential
	}

	prompt, err := BuildPrompt(p, plan)
	if err != nil {
		return "", err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[mealplan] provider=%s latency_ms=%d error: %v", s.gen.Name(), time.Since(start).Milliseconds(), err)
		return "", err
	}
	log.Printf("[mealplan] provider=%s latency_ms=%d chars=%d", s.gen.Name(), time.Since(start).Milliseconds(), len(text))
	return text, nil
}
