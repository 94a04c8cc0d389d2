package vocab

import (
	"bufio"
	"context"
	"embed"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/abhisek/hangman/internal/hangman"
)

//go:embed words/*.txt
var wordFS embed.FS

// EmbeddedSource picks words from lists compiled into the binary.
type EmbeddedSource struct {
	mu    sync.Mutex
	rng   *rand.Rand
	lists map[hangman.Language][]string
}

// NewEmbeddedSource loads the built-in list for every supported language.
func NewEmbeddedSource() (*EmbeddedSource, error) {
	lists := make(map[hangman.Language][]string, len(hangman.Languages))
	for _, lang := range hangman.Languages {
		words, err := readList("words/" + string(lang) + ".txt")
		if err != nil {
			return nil, fmt.Errorf("load %s word list: %w", lang, err)
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("load %s word list: %w", lang, ErrEmptyWord)
		}
		lists[lang] = words
	}
	return &EmbeddedSource{
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		lists: lists,
	}, nil
}

// Seed makes the picks deterministic.
func (s *EmbeddedSource) Seed(a, b uint64) {
	s.mu.Lock()
	s.rng = rand.New(rand.NewPCG(a, b))
	s.mu.Unlock()
}

// Words returns the list for lang.
func (s *EmbeddedSource) Words(lang hangman.Language) []string {
	return s.lists[lang]
}

func (s *EmbeddedSource) FetchWord(ctx context.Context, lang hangman.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	words, ok := s.lists[lang]
	if !ok {
		return "", fmt.Errorf("no offline words for language %q", lang)
	}
	s.mu.Lock()
	w := words[s.rng.IntN(len(words))]
	s.mu.Unlock()
	return w, nil
}

func readList(name string) ([]string, error) {
	f, err := wordFS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, hangman.NormalizeWord(line))
	}
	return out, sc.Err()
}
