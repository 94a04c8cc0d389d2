// Package game is the play screen: gallows, masked word, clock and keyboard.
package game

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/i18n"
	"github.com/abhisek/hangman/internal/scene"
	"github.com/abhisek/hangman/internal/screen"
	"github.com/abhisek/hangman/internal/ui/components"
	"github.com/abhisek/hangman/internal/ui/layout"
	"github.com/abhisek/hangman/internal/ui/theme"
)

const (
	// lowTime is when a countdown clock turns red.
	lowTime = 10

	meterWidth = 30
)

type keyMap struct {
	Restart    key.Binding
	Language   key.Binding
	TimeMode   key.Binding
	ClearScore key.Binding
	Next       key.Binding
}

var keys = keyMap{
	Restart:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^R", "restart")),
	Language:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^L", "lang")),
	TimeMode:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("^T", "mode")),
	ClearScore: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "clear")),
	Next:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "new word")),
}

// GameScreen renders the live round and forwards keystrokes to the engine.
type GameScreen struct {
	game screen.Game
	ctx  context.Context
	err  string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.RoundView = (*GameScreen)(nil)

func New(g screen.Game) *GameScreen {
	return &GameScreen{game: g, ctx: context.Background()}
}

// Init starts a fresh round when the last one is already decided.
func (s *GameScreen) Init() tea.Cmd {
	if s.game.Snapshot().Session.Status.Terminal() {
		s.game.StartNewRound(s.ctx)
	}
	return nil
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	st := s.game.Snapshot()
	switch {
	case key.Matches(kmsg, keys.Restart):
		s.err = ""
		s.game.StartNewRound(s.ctx)
	case key.Matches(kmsg, keys.Language):
		s.game.ChangeLanguage(s.ctx, st.Language.Next())
	case key.Matches(kmsg, keys.TimeMode):
		s.game.ChangeTimeMode(s.ctx, st.TimeMode.Next())
	case key.Matches(kmsg, keys.ClearScore):
		s.err = ""
		if err := s.game.ClearScore(s.ctx); err != nil {
			s.err = err.Error()
		}
	case key.Matches(kmsg, keys.Next):
		if st.Session.Status.Terminal() {
			s.game.StartNewRound(s.ctx)
		}
	case kmsg.Mod&^tea.ModShift == 0 && kmsg.Text != "":
		s.game.ProcessGuess(s.ctx, kmsg.Text)
	}
	return s, nil
}

func (s *GameScreen) View(width, height int) string {
	st := s.game.Snapshot()
	sess := st.Session
	t := i18n.For(st.Language)

	left := theme.Gallows.Render(scene.Render(sess.Errors))

	var right []string
	right = append(right,
		theme.Subtitle.Render(fmt.Sprintf("%s · %s", i18n.LanguageName(st.Language), i18n.TimeModeName(sess.TimeMode))),
		s.timerView(t, sess),
	)
	if sess.TimeMode.CountsDown() {
		right = append(right, components.Meter{
			Value:  sess.TimeValue,
			Max:    hangman.InitialTime,
			Width:  meterWidth,
			Danger: sess.TimeValue <= lowTime,
		}.View())
	}
	right = append(right, components.Meter{
		Label:  "✗",
		Value:  sess.Errors,
		Max:    hangman.MaxErrors,
		Width:  meterWidth,
		Danger: sess.Errors >= hangman.MaxErrors-1,
	}.View())
	right = append(right, "", s.wordView(t, sess))

	switch sess.Status {
	case hangman.StatusWon:
		right = append(right, "", theme.Correct.Render(t.WinMessage))
	case hangman.StatusLost:
		right = append(right, "", theme.Incorrect.Render(fmt.Sprintf("%s: %s", t.LoseMessage, strings.ToUpper(sess.Word))))
	default:
		if !sess.Awaiting {
			right = append(right, "", theme.Body.Render(t.GuessPrompt))
		}
	}
	if sess.Fallback {
		right = append(right, theme.Hint.Render(t.FallbackNote))
	}
	if s.err != "" {
		right = append(right, theme.Incorrect.Render(s.err))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", lipgloss.JoinVertical(lipgloss.Left, right...))

	kb := components.Keyboard{
		State: func(r rune) components.KeyState {
			switch {
			case !sess.HasGuessed(r):
				return components.KeyUnused
			case sess.Missed(r):
				return components.KeyMiss
			default:
				return components.KeyHit
			}
		},
		Disabled: !sess.Playable(),
	}

	sections := []string{top}
	if !layout.IsCompactHeight(height + 6) {
		sections = append(sections, "")
	}
	sections = append(sections, kb.View())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *GameScreen) timerView(t i18n.Strings, sess hangman.Session) string {
	label := fmt.Sprintf("%s: %d %s", t.TimerLabel(sess.TimeMode), sess.TimeValue, t.Seconds)
	if sess.TimeMode.CountsDown() && sess.TimeValue <= lowTime {
		return theme.TimerLow.Render(label)
	}
	return theme.Timer.Render(label)
}

func (s *GameScreen) wordView(t i18n.Strings, sess hangman.Session) string {
	if sess.Awaiting {
		return theme.Hint.Render(t.Loading)
	}
	return theme.Letter.Render(strings.Join(sess.Mask("_"), " "))
}

func (s *GameScreen) ShowsRound() bool { return true }

func (s *GameScreen) Title() string {
	return i18n.For(s.game.Snapshot().Language).Title
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "a-z", Description: "guess"}}
	for _, b := range []key.Binding{keys.Restart, keys.Language, keys.TimeMode, keys.ClearScore} {
		hints = append(hints, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "menu"})
}
