// Package vocab supplies target words for hangman rounds.
package vocab

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/llm"
)

var (
	// ErrEmptyWord is returned when a source answers with no usable word.
	ErrEmptyWord = errors.New("empty word")

	// ErrMalformed is returned when a source's reply cannot be parsed.
	ErrMalformed = errors.New("malformed word response")
)

// Source returns one random word in the requested language.
type Source interface {
	FetchWord(ctx context.Context, lang hangman.Language) (string, error)
}

// Kinds accepted by Config.Kind.
const (
	KindAPI     = "api"
	KindOffline = "offline"
	KindLLM     = "llm"
)

// Config selects and configures a Source.
type Config struct {
	Kind   string
	APIURL string
	LLM    llm.Config
}

// NewFromConfig builds the Source named by cfg.Kind. An empty kind means
// the remote word API.
func NewFromConfig(ctx context.Context, cfg Config, log zerolog.Logger) (Source, error) {
	switch cfg.Kind {
	case "", KindAPI:
		return NewHTTPSource(cfg.APIURL, WithLogger(log)), nil
	case KindOffline:
		return NewEmbeddedSource()
	case KindLLM:
		p, err := llm.NewProvider(ctx, cfg.LLM, log)
		if err != nil {
			return nil, fmt.Errorf("llm word source: %w", err)
		}
		return NewLLMSource(p), nil
	default:
		return nil, fmt.Errorf("unknown word source %q (want api, offline or llm)", cfg.Kind)
	}
}
