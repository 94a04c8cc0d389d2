package vocab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/abhisek/hangman/internal/hangman"
)

// DefaultAPIURL is the public random word service.
const DefaultAPIURL = "https://random-word-api.herokuapp.com"

const maxBodyBytes = 64 << 10

// HTTPSource fetches words from a random-word-api compatible service:
// GET {base}/word[?lang=it|es] answering ["word"].
type HTTPSource struct {
	base   string
	client *http.Client
	log    zerolog.Logger
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) { s.client = c }
}

func WithLogger(log zerolog.Logger) HTTPOption {
	return func(s *HTTPSource) { s.log = log }
}

// NewHTTPSource returns a source for base, or DefaultAPIURL when base is empty.
func NewHTTPSource(base string, opts ...HTTPOption) *HTTPSource {
	if base == "" {
		base = DefaultAPIURL
	}
	s := &HTTPSource{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the request URL for lang. English takes no query parameter.
func (s *HTTPSource) URL(lang hangman.Language) string {
	u := s.base + "/word"
	if lang == hangman.LanguageItalian || lang == hangman.LanguageSpanish {
		u += "?" + url.Values{"lang": {string(lang)}}.Encode()
	}
	return u
}

func (s *HTTPSource) FetchWord(ctx context.Context, lang hangman.Language) (string, error) {
	target := s.URL(lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build word request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch word: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read word response: %w", err)
	}
	s.log.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("word api")

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("word api: unexpected status %d", resp.StatusCode)
	}
	return parseWordArray(body)
}

// parseWordArray extracts the first element of a JSON array of strings.
func parseWordArray(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return "", fmt.Errorf("%w: expected array, got %s", ErrMalformed, doc.Type)
	}
	first := doc.Get("0")
	if !first.Exists() {
		return "", ErrEmptyWord
	}
	if first.Type != gjson.String {
		return "", fmt.Errorf("%w: first element is %s", ErrMalformed, first.Type)
	}
	word := hangman.NormalizeWord(first.Str)
	if word == "" {
		return "", ErrEmptyWord
	}
	return word, nil
}
