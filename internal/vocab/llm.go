package vocab

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/tidwall/gjson"

	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/llm"
)

var wordSchema = &llm.Schema{
	Name:        "hangman-word",
	Description: "A single word for a game of hangman",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{
				"type":        "string",
				"description": "One common noun, lowercase, no spaces",
			},
		},
		"required":             []any{"word"},
		"additionalProperties": false,
	},
}

const wordSystemPrompt = `You choose secret words for a game of hangman.
Answer with exactly one common word between 4 and 10 letters.
No proper nouns, no spaces, no hyphens, no digits.`

var languageNames = map[hangman.Language]string{
	hangman.LanguageEnglish: "English",
	hangman.LanguageItalian: "Italian",
	hangman.LanguageSpanish: "Spanish",
}

// recentLimit bounds how many previous words are sent as exclusions.
const recentLimit = 10

// LLMSource asks a language model for a word.
type LLMSource struct {
	provider llm.Provider

	mu     sync.Mutex
	recent []string
}

func NewLLMSource(p llm.Provider) *LLMSource {
	return &LLMSource{provider: p}
}

func (s *LLMSource) FetchWord(ctx context.Context, lang hangman.Language) (string, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      wordSystemPrompt,
		Prompt:      s.prompt(lang),
		Schema:      wordSchema,
		MaxTokens:   64,
		Temperature: 1.0,
	})
	if err != nil {
		return "", fmt.Errorf("generate word: %w", err)
	}

	word := hangman.NormalizeWord(gjson.GetBytes(resp.Content, "word").String())
	if word == "" {
		return "", ErrEmptyWord
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q is not a single word", ErrMalformed, word)
		}
	}

	s.remember(word)
	return word, nil
}

func (s *LLMSource) prompt(lang hangman.Language) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[hangman.LanguageEnglish]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Give me one random %s word.", name)

	s.mu.Lock()
	if len(s.recent) > 0 {
		fmt.Fprintf(&b, " Do not use any of: %s.", strings.Join(s.recent, ", "))
	}
	s.mu.Unlock()
	return b.String()
}

func (s *LLMSource) remember(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append(s.recent, word)
	if len(s.recent) > recentLimit {
		s.recent = s.recent[len(s.recent)-recentLimit:]
	}
}
