// Package picker is a one-question selection screen, used for choosing
// the language and the time mode.
package picker

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hangman/internal/router"
	"github.com/abhisek/hangman/internal/screen"
	"github.com/abhisek/hangman/internal/ui/components"
	"github.com/abhisek/hangman/internal/ui/layout"
	"github.com/abhisek/hangman/internal/ui/theme"
)

// Option is one choice.
type Option struct {
	Label string
	Value string
}

// PickerScreen lists options and calls onPick with the chosen value
// before returning to the previous screen.
type PickerScreen struct {
	title string
	menu  components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New builds a picker with current preselected.
func New(title string, options []Option, current string, onPick func(value string)) *PickerScreen {
	items := make([]components.MenuItem, len(options))
	selected := 0
	for i, opt := range options {
		label := opt.Label
		if opt.Value == current {
			label += "  ✓"
			selected = i
		}
		items[i] = components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				onPick(opt.Value)
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		}
	}

	menu := components.NewMenu(items)
	menu.Selected = selected
	return &PickerScreen{title: title, menu: menu}
}

func (p *PickerScreen) Init() tea.Cmd { return nil }

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	box := theme.Card.Render(
		theme.Title.Render(p.title) + "\n\n" + p.menu.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (p *PickerScreen) Title() string { return p.title }

// Selected returns the highlighted index.
func (p *PickerScreen) Selected() int { return p.menu.Selected }

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
