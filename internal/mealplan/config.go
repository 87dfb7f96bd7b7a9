package mealplan

import (
	"os"
	"strconv"
	"time"
)

// Provider names accepted by NewGenerator.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds the text-generation settings. API keys are read here and
// nowhere else.
type Config struct {
	Provider  string
	Model     string // empty means the provider default
	TimeoutMs int
	MaxTokens int

	OpenAIAPIKey     string
	OpenAIBaseURL    string
	AnthropicAPIKey  string
	AnthropicBaseURL string // empty means the SDK default
}

// DefaultConfig returns a Config for OpenAI with no credentials.
func DefaultConfig() Config {
	return Config{
		Provider:      ProviderOpenAI,
		TimeoutMs:     30000,
		MaxTokens:     2048,
		OpenAIBaseURL: "https://api.openai.com",
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MACROMATE_LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("MACROMATE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MACROMATE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MACROMATE_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.AnthropicBaseURL = os.Getenv("ANTHROPIC_BASE_URL")

	return cfg
}

// Timeout returns the per-call timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
