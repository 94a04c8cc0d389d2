package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds LLM provider configuration.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter", "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenAIConfig

	// Timeout bounds a single request. Default: 15s.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIConfig also configures OpenRouter, which speaks the same API.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenAIConfig{
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: OpenRouterBaseURL,
		},
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv overlays HANGMAN_* environment variables on the defaults.
// When no provider is named it falls back to the first vendor key found
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY).
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setenv(&cfg.Anthropic.APIKey, "HANGMAN_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "HANGMAN_ANTHROPIC_MODEL")
	setenv(&cfg.OpenAI.APIKey, "HANGMAN_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "HANGMAN_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "HANGMAN_OPENAI_BASE_URL")
	setenv(&cfg.Gemini.APIKey, "HANGMAN_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "HANGMAN_GEMINI_MODEL")
	setenv(&cfg.OpenRouter.APIKey, "HANGMAN_OPENROUTER_API_KEY")
	setenv(&cfg.OpenRouter.Model, "HANGMAN_OPENROUTER_MODEL")

	if p := os.Getenv("HANGMAN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		return cfg
	}

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = "gemini"
		setenv(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = "openai"
		setenv(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = "anthropic"
		setenv(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = "openrouter"
		setenv(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY")
	}
	return cfg
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	case "openrouter":
		key = c.OpenRouter.APIKey
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("an API key is required for the %s provider", c.Provider)
	}
	return nil
}
