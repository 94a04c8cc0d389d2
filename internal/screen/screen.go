package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/ui/layout"
)

// Screen is one page of the TUI.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// RoundView is implemented by screens that show the live round. The round
// clock runs only while one of them is the active screen.
type RoundView interface {
	ShowsRound() bool
}

// Game is the part of the engine screens drive.
type Game interface {
	Snapshot() hangman.State
	Pause()
	Resume()
	StartNewRound(ctx context.Context)
	ChangeLanguage(ctx context.Context, lang hangman.Language)
	ChangeTimeMode(ctx context.Context, mode hangman.TimeMode)
	ProcessGuess(ctx context.Context, input string)
	ClearScore(ctx context.Context) error
}

// StateChangedMsg is delivered to the active screen whenever the engine
// state changes.
type StateChangedMsg struct{}
