package game

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hangman/internal/clock"
	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/store"
)

// sourceFunc adapts a function to vocab.Source.
type sourceFunc func(ctx context.Context, lang hangman.Language) (string, error)

func (f sourceFunc) FetchWord(ctx context.Context, lang hangman.Language) (string, error) {
	return f(ctx, lang)
}

func fixedWord(w string) sourceFunc {
	return func(context.Context, hangman.Language) (string, error) { return w, nil }
}

type memScores struct {
	mu      sync.Mutex
	score   hangman.Score
	loadErr error
	saveErr error
	saves   []hangman.Score
}

func (m *memScores) Load(context.Context) (hangman.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return hangman.Score{}, m.loadErr
	}
	return m.score, nil
}

func (m *memScores) Save(_ context.Context, sc hangman.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, sc)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score = sc
	return nil
}

func (m *memScores) Saves() []hangman.Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]hangman.Score(nil), m.saves...)
}

func waitReady(t *testing.T, e *Engine) {
	t.Helper()
	select {
	case <-e.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("word never arrived")
	}
}

func startEngine(t *testing.T, src sourceFunc, opts ...Option) (*Engine, *clock.Manual, *memScores) {
	t.Helper()
	clk := clock.NewManual()
	scores := &memScores{loadErr: store.ErrNotFound}
	e := New(src, scores, clk, opts...)
	t.Cleanup(e.Close)
	e.Start(context.Background())
	waitReady(t, e)
	return e, clk, scores
}

func guess(e *Engine, letters string) {
	for _, r := range letters {
		e.ProcessGuess(context.Background(), string(r))
	}
}

func TestEngine_Win(t *testing.T) {
	e, clk, scores := startEngine(t, fixedWord("cat"))
	require.Equal(t, 1, clk.Active())

	guess(e, "cat")

	st := e.Snapshot()
	assert.Equal(t, hangman.StatusWon, st.Session.Status)
	assert.Equal(t, hangman.Score{Wins: 1}, st.Score)
	assert.Equal(t, []hangman.Score{{Wins: 1}}, scores.Saves())
	assert.Equal(t, 0, clk.Active(), "timer must stop once the round is won")
}

func TestEngine_LossByErrors(t *testing.T) {
	e, _, scores := startEngine(t, fixedWord("dog"))

	guess(e, "xyzqwe")

	st := e.Snapshot()
	assert.Equal(t, hangman.StatusLost, st.Session.Status)
	assert.Equal(t, hangman.MaxErrors, st.Session.Errors)
	assert.Equal(t, hangman.Score{Losses: 1}, st.Score)

	guess(e, "dogab")
	assert.Equal(t, hangman.StatusLost, e.Snapshot().Session.Status)
	assert.Len(t, scores.Saves(), 1)
}

func TestEngine_CountdownPenaltyAndErrorsCommitOneLoss(t *testing.T) {
	e, _, scores := startEngine(t, fixedWord("dog"), WithTimeMode(hangman.TimeModeCountdown))

	guess(e, "xyzqwe")

	st := e.Snapshot()
	assert.Equal(t, hangman.StatusLost, st.Session.Status)
	assert.Equal(t, 0, st.Session.TimeValue)
	assert.Equal(t, hangman.Score{Losses: 1}, st.Score)
	assert.Len(t, scores.Saves(), 1)
}

func TestEngine_CountdownPenaltyAtTen(t *testing.T) {
	e, clk, _ := startEngine(t, fixedWord("cat"), WithTimeMode(hangman.TimeModeCountdown))

	guess(e, "x")
	assert.Equal(t, 50, e.Snapshot().Session.TimeValue)

	clk.Advance(40 * time.Second)
	require.Equal(t, 10, e.Snapshot().Session.TimeValue)

	guess(e, "z")
	st := e.Snapshot()
	assert.Equal(t, hangman.StatusLost, st.Session.Status)
	assert.Equal(t, 0, st.Session.TimeValue)
	assert.Equal(t, 1, st.Score.Losses)
	assert.Equal(t, 0, clk.Active())
}

func TestEngine_SpeedTimeout(t *testing.T) {
	e, clk, scores := startEngine(t, fixedWord("cat"), WithTimeMode(hangman.TimeModeSpeed))

	clk.Advance(59 * time.Second)
	st := e.Snapshot()
	require.Equal(t, hangman.StatusPlaying, st.Session.Status)
	require.Equal(t, 1, st.Session.TimeValue)

	clk.Advance(time.Second)
	st = e.Snapshot()
	assert.Equal(t, hangman.StatusLost, st.Session.Status)
	assert.Equal(t, 0, st.Session.TimeValue)

	clk.Advance(10 * time.Second)
	assert.Equal(t, 1, e.Snapshot().Score.Losses)
	assert.Len(t, scores.Saves(), 1)
}

func TestEngine_NormalClockCountsUp(t *testing.T) {
	e, clk, _ := startEngine(t, fixedWord("cat"))

	clk.Advance(5 * time.Second)
	assert.Equal(t, 5, e.Snapshot().Session.TimeValue)

	guess(e, "cat")
	clk.Advance(5 * time.Second)
	assert.Equal(t, 5, e.Snapshot().Session.TimeValue, "clock stops after a win")
}

func TestEngine_StaleTimerAfterRestart(t *testing.T) {
	e, clk, _ := startEngine(t, fixedWord("cat"))
	clk.Advance(3 * time.Second)

	e.StartNewRound(context.Background())
	waitReady(t, e)

	assert.Equal(t, 1, clk.Active(), "previous round's timer must be cancelled")
	clk.Advance(time.Second)
	assert.Equal(t, 1, e.Snapshot().Session.TimeValue)
}

func TestEngine_GuessBeforeWordArrives(t *testing.T) {
	release := make(chan struct{})
	src := sourceFunc(func(ctx context.Context, _ hangman.Language) (string, error) {
		<-release
		return "cat", nil
	})

	clk := clock.NewManual()
	e := New(src, &memScores{}, clk)
	defer e.Close()
	e.Start(context.Background())

	guess(e, "c")
	st := e.Snapshot()
	assert.True(t, st.Session.Awaiting)
	assert.Empty(t, st.Session.Guessed)
	assert.Equal(t, 0, clk.Active(), "timer is armed only when the word arrives")

	close(release)
	waitReady(t, e)
	st = e.Snapshot()
	assert.Empty(t, st.Session.Guessed)
	assert.Equal(t, "cat", st.Session.Word)
	assert.Equal(t, 1, clk.Active())
}

func TestEngine_LateFetchDiscarded(t *testing.T) {
	release := make(chan struct{})
	src := sourceFunc(func(_ context.Context, lang hangman.Language) (string, error) {
		if lang == hangman.LanguageEnglish {
			<-release
			return "stale", nil
		}
		return "fresh", nil
	})

	e := New(src, &memScores{}, clock.NewManual(), WithLanguage(hangman.LanguageEnglish))
	defer e.Close()
	e.Start(context.Background())
	first := e.Ready()

	e.ChangeLanguage(context.Background(), hangman.LanguageItalian)
	waitReady(t, e)
	require.Equal(t, "fresh", e.Snapshot().Session.Word)

	close(release)
	assert.Never(t, func() bool {
		return e.Snapshot().Session.Word != "fresh"
	}, 50*time.Millisecond, 5*time.Millisecond)

	select {
	case <-first:
		t.Fatal("replaced round's ready channel must stay open")
	default:
	}
}

func TestEngine_FetchFailureFallsBack(t *testing.T) {
	src := sourceFunc(func(context.Context, hangman.Language) (string, error) {
		return "", errors.New("no network")
	})
	e, _, scores := startEngine(t, src)

	st := e.Snapshot()
	assert.Equal(t, hangman.FallbackWord, st.Session.Word)
	assert.True(t, st.Session.Fallback)
	assert.Empty(t, scores.Saves(), "fetch failure must not touch the score")

	guess(e, "ero")
	assert.Equal(t, hangman.StatusWon, e.Snapshot().Session.Status)
}

func TestEngine_FetchTimeout(t *testing.T) {
	src := sourceFunc(func(ctx context.Context, _ hangman.Language) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	e, _, _ := startEngine(t, src, WithFetchTimeout(10*time.Millisecond))

	assert.Equal(t, hangman.FallbackWord, e.Snapshot().Session.Word)
}

func TestEngine_IgnoredInputs(t *testing.T) {
	e, _, _ := startEngine(t, fixedWord("cat"))

	for _, in := range []string{"", "1", "ab", " ", "-", "é"} {
		e.ProcessGuess(context.Background(), in)
	}
	assert.Empty(t, e.Snapshot().Session.Guessed)

	e.ProcessGuess(context.Background(), "C")
	e.ProcessGuess(context.Background(), "c")
	st := e.Snapshot()
	assert.Equal(t, []string{"c"}, st.Session.GuessedLetters())
	assert.Equal(t, 0, st.Session.Errors)
}

func TestEngine_AccentedWord(t *testing.T) {
	e, _, _ := startEngine(t, fixedWord("Niño"))

	guess(e, "nio")
	st := e.Snapshot()
	assert.Equal(t, "niño", st.Session.Word)
	assert.Equal(t, hangman.StatusWon, st.Session.Status)
}

func TestEngine_ScoreLoad(t *testing.T) {
	tests := []struct {
		name   string
		scores *memScores
		want   hangman.Score
	}{
		{"saved", &memScores{score: hangman.Score{Wins: 3, Losses: 4}}, hangman.Score{Wins: 3, Losses: 4}},
		{"missing", &memScores{loadErr: store.ErrNotFound}, hangman.Score{}},
		{"corrupt", &memScores{loadErr: errors.New("decode score: bad json")}, hangman.Score{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(fixedWord("cat"), tt.scores, clock.NewManual())
			defer e.Close()
			e.Start(context.Background())
			assert.Equal(t, tt.want, e.Snapshot().Score)
		})
	}
}

func TestEngine_ClearScore(t *testing.T) {
	e, _, scores := startEngine(t, fixedWord("cat"))
	guess(e, "cat")
	e.StartNewRound(context.Background())
	waitReady(t, e)
	guess(e, "c")

	require.NoError(t, e.ClearScore(context.Background()))

	st := e.Snapshot()
	assert.Equal(t, hangman.Score{}, st.Score)
	assert.Equal(t, []string{"c"}, st.Session.GuessedLetters(), "clearing the score leaves the round alone")
	saves := scores.Saves()
	assert.Equal(t, hangman.Score{}, saves[len(saves)-1])
}

func TestEngine_ClearScoreSaveError(t *testing.T) {
	clk := clock.NewManual()
	scores := &memScores{saveErr: errors.New("disk full")}
	e := New(fixedWord("cat"), scores, clk)
	defer e.Close()
	e.Start(context.Background())

	assert.Error(t, e.ClearScore(context.Background()))
	assert.Equal(t, hangman.Score{}, e.Snapshot().Score)
}

func TestEngine_ChangeLanguageAndMode(t *testing.T) {
	var mu sync.Mutex
	var asked []hangman.Language
	src := sourceFunc(func(_ context.Context, lang hangman.Language) (string, error) {
		mu.Lock()
		asked = append(asked, lang)
		mu.Unlock()
		return "casa", nil
	})
	e, clk, _ := startEngine(t, src)
	guess(e, "c")

	e.ChangeLanguage(context.Background(), hangman.LanguageItalian)
	waitReady(t, e)
	st := e.Snapshot()
	assert.Equal(t, hangman.LanguageItalian, st.Language)
	assert.Equal(t, hangman.LanguageItalian, st.Session.Language)
	assert.Empty(t, st.Session.Guessed)

	e.ChangeTimeMode(context.Background(), hangman.TimeModeSpeed)
	waitReady(t, e)
	st = e.Snapshot()
	assert.Equal(t, hangman.TimeModeSpeed, st.TimeMode)
	assert.Equal(t, hangman.InitialTime, st.Session.TimeValue)
	assert.Equal(t, 1, clk.Active())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []hangman.Language{
		hangman.LanguageEnglish, hangman.LanguageItalian, hangman.LanguageItalian,
	}, asked)
}

func TestEngine_OnChange(t *testing.T) {
	var e *Engine
	var calls atomic.Int32
	e = New(fixedWord("cat"), &memScores{}, clock.NewManual(), WithOnChange(func() {
		calls.Add(1)
		_ = e.Snapshot()
	}))
	defer e.Close()

	e.Start(context.Background())
	waitReady(t, e)
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	before := calls.Load()
	e.ProcessGuess(context.Background(), "c")
	assert.Equal(t, before+1, calls.Load())

	e.ProcessGuess(context.Background(), "c")
	assert.Equal(t, before+1, calls.Load(), "ignored guesses do not notify")
}

func TestEngine_Close(t *testing.T) {
	e, clk, _ := startEngine(t, fixedWord("cat"))
	e.Close()
	assert.Equal(t, 0, clk.Active())

	e.StartNewRound(context.Background())
	assert.Equal(t, 0, clk.Active())
}

func TestEngine_PauseHoldsClock(t *testing.T) {
	e, clk, scores := startEngine(t, fixedWord("cat"), WithTimeMode(hangman.TimeModeSpeed))
	require.Equal(t, 1, clk.Active())
	clk.Advance(5 * time.Second)

	e.Pause()
	assert.Equal(t, 0, clk.Active())
	clk.Advance(time.Minute)

	st := e.Snapshot()
	assert.Equal(t, hangman.StatusPlaying, st.Session.Status)
	assert.Equal(t, hangman.InitialTime-5, st.Session.TimeValue)
	assert.Empty(t, scores.Saves())

	e.Resume()
	require.Equal(t, 1, clk.Active())
	clk.Advance(time.Second)
	assert.Equal(t, hangman.InitialTime-6, e.Snapshot().Session.TimeValue)

	e.Resume()
	assert.Equal(t, 1, clk.Active(), "resume twice arms one clock")
}

func TestEngine_RoundStartedWhilePausedWaits(t *testing.T) {
	e, clk, _ := startEngine(t, fixedWord("cat"), WithTimeMode(hangman.TimeModeSpeed))
	e.Pause()

	e.ChangeLanguage(context.Background(), hangman.LanguageItalian)
	waitReady(t, e)
	assert.Equal(t, 0, clk.Active())

	e.Resume()
	assert.Equal(t, 1, clk.Active())
}

func TestEngine_ResumeAfterFinishedRound(t *testing.T) {
	e, clk, _ := startEngine(t, fixedWord("cat"))
	guess(e, "cat")
	e.Pause()
	e.Resume()
	assert.Equal(t, 0, clk.Active())
}

func TestEngine_SnapshotIsCopy(t *testing.T) {
	e, _, _ := startEngine(t, fixedWord("cat"))
	st := e.Snapshot()
	st.Session.Guessed['z'] = struct{}{}
	st.Score.Wins = 99

	fresh := e.Snapshot()
	assert.Empty(t, fresh.Session.Guessed)
	assert.Equal(t, 0, fresh.Score.Wins)
}
