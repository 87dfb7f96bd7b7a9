package mealplan

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// AnthropicGenerator uses the Anthropic Messages API.
type AnthropicGenerator struct {
	apiKey    string
	client    anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropicGenerator builds a generator from cfg. The SDK client is built
// even without a key; IsAvailable gates its use.
func NewAnthropicGenerator(cfg Config) *AnthropicGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithRequestTimeout(cfg.Timeout()),
	}
	if cfg.AnthropicBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.AnthropicBaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}

	return &AnthropicGenerator{
		apiKey:    cfg.AnthropicAPIKey,
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: cfg.MaxTokens,
	}
}

func (g *AnthropicGenerator) Name() string {
	return ProviderAnthropic
}

func (g *AnthropicGenerator) IsAvailable() bool {
	return g.apiKey != ""
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var output string
	for _, block := range resp.Content {
		if block.Type == "text" {
			output += block.Text
		}
	}
	if output == "" {
		return "", ErrEmptyResponse
	}
	return output, nil
}
