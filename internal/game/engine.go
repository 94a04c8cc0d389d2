// Package game owns the live hangman round: word selection, guesses, the
// round clock and score commits. All mutations are serialized by one mutex.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/hangman/internal/clock"
	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/store"
	"github.com/abhisek/hangman/internal/vocab"
)

// DefaultFetchTimeout bounds a single word fetch.
const DefaultFetchTimeout = 10 * time.Second

// ScoreStore persists the cumulative score.
type ScoreStore interface {
	Load(ctx context.Context) (hangman.Score, error)
	Save(ctx context.Context, score hangman.Score) error
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log.With().Str("component", "game").Logger() }
}

func WithLanguage(lang hangman.Language) Option {
	return func(e *Engine) { e.state.Language = lang }
}

func WithTimeMode(mode hangman.TimeMode) Option {
	return func(e *Engine) { e.state.TimeMode = mode }
}

// WithOnChange registers a callback run after every state change. It is
// called without the engine lock held and may call Snapshot.
func WithOnChange(fn func()) Option {
	return func(e *Engine) { e.onChange = fn }
}

func WithFetchTimeout(d time.Duration) Option {
	return func(e *Engine) { e.fetchTimeout = d }
}

// Engine is the single owner of the application state.
type Engine struct {
	words        vocab.Source
	scores       ScoreStore
	clk          clock.Clock
	log          zerolog.Logger
	fetchTimeout time.Duration

	mu          sync.Mutex
	state       hangman.State
	onChange    func()
	timer       clock.Handle
	cancelFetch context.CancelFunc
	ready       chan struct{}
	paused      bool
	closed      bool
}

// New creates an engine. Call Start to load the score and begin a round.
func New(words vocab.Source, scores ScoreStore, clk clock.Clock, opts ...Option) *Engine {
	e := &Engine{
		words:        words,
		scores:       scores,
		clk:          clk,
		log:          zerolog.Nop(),
		fetchTimeout: DefaultFetchTimeout,
		state: hangman.State{
			Language: hangman.LanguageEnglish,
			TimeMode: hangman.TimeModeNormal,
		},
		ready: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state.Session = hangman.NewSession("", e.state.Language, e.state.TimeMode)
	return e
}

// SetOnChange replaces the change callback.
func (e *Engine) SetOnChange(fn func()) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// Start loads the persisted score once and begins the first round.
// A missing or unreadable score starts from zero.
func (e *Engine) Start(ctx context.Context) {
	score, err := e.scores.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		e.log.Debug().Msg("no saved score")
	case err != nil:
		e.log.Warn().Err(err).Msg("saved score unreadable, starting from zero")
	}
	if err != nil {
		score = hangman.Score{}
	}

	e.mu.Lock()
	e.state.Score = score
	e.mu.Unlock()

	e.StartNewRound(ctx)
}

// StartNewRound discards the current round and fetches a new word in the
// background. Guesses are ignored until the word arrives.
func (e *Engine) StartNewRound(ctx context.Context) {
	e.mu.Lock()
	e.newRoundLocked(ctx)
	fn := e.onChange
	e.mu.Unlock()
	notify(fn)
}

// ChangeLanguage sets the language and starts a new round.
func (e *Engine) ChangeLanguage(ctx context.Context, lang hangman.Language) {
	e.mu.Lock()
	e.state.Language = lang
	e.newRoundLocked(ctx)
	fn := e.onChange
	e.mu.Unlock()
	notify(fn)
}

// ChangeTimeMode sets the time mode and starts a new round.
func (e *Engine) ChangeTimeMode(ctx context.Context, mode hangman.TimeMode) {
	e.mu.Lock()
	e.state.TimeMode = mode
	e.newRoundLocked(ctx)
	fn := e.onChange
	e.mu.Unlock()
	notify(fn)
}

func (e *Engine) newRoundLocked(ctx context.Context) {
	if e.closed {
		return
	}
	e.disarmLocked()
	if e.cancelFetch != nil {
		e.cancelFetch()
	}

	id := uuid.NewString()
	lang := e.state.Language
	e.state.Session = hangman.NewSession(id, lang, e.state.TimeMode)
	e.ready = make(chan struct{})

	fetchCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	e.cancelFetch = cancel

	e.log.Info().
		Str("round", id).
		Str("lang", string(lang)).
		Str("mode", string(e.state.TimeMode)).
		Msg("new round")

	go func() {
		defer cancel()
		word, err := e.words.FetchWord(fetchCtx, lang)
		e.deliver(id, word, err)
	}()
}

// deliver installs a fetched word if round id is still current.
func (e *Engine) deliver(id, word string, err error) {
	e.mu.Lock()
	if e.closed || e.state.Session.RoundID != id {
		e.mu.Unlock()
		e.log.Debug().Str("round", id).Msg("discarding word for a replaced round")
		return
	}

	s := &e.state.Session
	if err != nil {
		e.log.Warn().Err(err).Str("round", id).Msg("word fetch failed, using fallback")
		s.SetWord("", true)
	} else {
		s.SetWord(word, false)
	}
	close(e.ready)
	e.armLocked()
	fn := e.onChange
	e.mu.Unlock()

	notify(fn)
}

// ProcessGuess applies one typed character. Anything other than a single
// letter, repeats, and guesses outside a playable round are ignored.
func (e *Engine) ProcessGuess(ctx context.Context, input string) {
	letter, ok := hangman.NormalizeGuess(input)
	if !ok {
		return
	}

	e.mu.Lock()
	s := &e.state.Session
	if !s.Playable() || s.HasGuessed(letter) {
		e.mu.Unlock()
		return
	}
	if outcome := s.Guess(letter); outcome != hangman.OutcomeNone {
		e.finishLocked(ctx, outcome)
	}
	fn := e.onChange
	e.mu.Unlock()

	notify(fn)
}

func (e *Engine) tick(id string) {
	e.mu.Lock()
	s := &e.state.Session
	if s.RoundID != id || !s.Playable() {
		e.mu.Unlock()
		return
	}
	if outcome := s.Tick(); outcome != hangman.OutcomeNone {
		e.finishLocked(context.Background(), outcome)
	}
	fn := e.onChange
	e.mu.Unlock()

	notify(fn)
}

// finishLocked commits the single score change of a terminal round.
func (e *Engine) finishLocked(ctx context.Context, outcome hangman.Outcome) {
	e.disarmLocked()
	e.state.Score = e.state.Score.Record(outcome)

	s := e.state.Session
	e.log.Info().
		Str("round", s.RoundID).
		Str("status", string(s.Status)).
		Int("errors", s.Errors).
		Int("wins", e.state.Score.Wins).
		Int("losses", e.state.Score.Losses).
		Msg("round over")

	if err := e.scores.Save(ctx, e.state.Score); err != nil {
		e.log.Warn().Err(err).Msg("save score")
	}
}

// ClearScore resets wins and losses to zero and persists them. The
// current round is unaffected.
func (e *Engine) ClearScore(ctx context.Context) error {
	e.mu.Lock()
	e.state.Score = hangman.Score{}
	err := e.scores.Save(ctx, e.state.Score)
	fn := e.onChange
	e.mu.Unlock()

	notify(fn)
	if err != nil {
		e.log.Warn().Err(err).Msg("save cleared score")
		return fmt.Errorf("clear score: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() hangman.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Ready returns a channel closed once the current round has its word.
func (e *Engine) Ready() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// Close stops the round clock and any in-flight fetch.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.disarmLocked()
	if e.cancelFetch != nil {
		e.cancelFetch()
		e.cancelFetch = nil
	}
}

// Pause stops the round clock until Resume. The round and its remaining
// time are kept. Rounds started while paused do not arm their clock.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return
	}
	e.paused = true
	e.disarmLocked()
	e.log.Debug().Str("round", e.state.Session.RoundID).Msg("clock paused")
}

// Resume restarts the round clock if the current round is playable.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.paused {
		return
	}
	e.paused = false
	e.armLocked()
	e.log.Debug().Str("round", e.state.Session.RoundID).Msg("clock resumed")
}

func (e *Engine) armLocked() {
	if e.closed || e.paused || e.timer != nil || !e.state.Session.Playable() {
		return
	}
	id := e.state.Session.RoundID
	e.timer = e.clk.Every(time.Second, func() { e.tick(id) })
}

func (e *Engine) disarmLocked() {
	if e.timer != nil {
		e.timer.Cancel()
		e.timer = nil
	}
}

func notify(fn func()) {
	if fn != nil {
		fn()
	}
}
