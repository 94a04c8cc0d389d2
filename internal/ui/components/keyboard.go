package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hangman/internal/ui/theme"
)

// KeyState is how a letter has fared this round.
type KeyState int

const (
	KeyUnused KeyState = iota
	KeyHit
	KeyMiss
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Keyboard renders an on-screen QWERTY layout coloured by guess state.
type Keyboard struct {
	// State reports the state of a lowercase letter.
	State func(letter rune) KeyState

	// Disabled dims untried keys once the round is over.
	Disabled bool
}

func (k Keyboard) View() string {
	rows := make([]string, 0, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			keys = append(keys, k.renderKey(r))
		}
		rows = append(rows, strings.Repeat(" ", i*2)+strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (k Keyboard) renderKey(r rune) string {
	label := " " + strings.ToUpper(string(r)) + " "

	state := KeyUnused
	if k.State != nil {
		state = k.State(r)
	}
	switch state {
	case KeyHit:
		return theme.KeyHit.Render(label)
	case KeyMiss:
		return theme.KeyMiss.Render(label)
	}
	if k.Disabled {
		return theme.Hint.Render(label)
	}
	return theme.KeyUnused.Render(label)
}
