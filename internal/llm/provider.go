// Package llm is a thin provider abstraction over hosted language models.
// Hangman uses it as an optional vocabulary source: a single-turn prompt
// asks for one word and the reply is constrained to a JSON schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a structured reply for a single-turn prompt.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is one prompt.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the single user turn.
	Prompt string

	// Schema, when set, constrains the reply to JSON conforming to it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Schema names a JSON Schema definition the reply must satisfy.
type Schema struct {
	// Name is kebab-case, e.g. "hangman-word".
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's reply.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	Usage Usage
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through so full model IDs can be configured.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
