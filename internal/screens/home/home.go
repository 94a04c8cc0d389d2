package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/i18n"
	"github.com/abhisek/hangman/internal/router"
	"github.com/abhisek/hangman/internal/screen"
	"github.com/abhisek/hangman/internal/screens/game"
	"github.com/abhisek/hangman/internal/screens/picker"
	"github.com/abhisek/hangman/internal/ui/components"
	"github.com/abhisek/hangman/internal/ui/layout"
	"github.com/abhisek/hangman/internal/ui/theme"
)

// Menu positions.
const (
	itemPlay = iota
	itemLanguage
	itemTimeMode
	itemClearScore
	itemQuit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	game screen.Game
	menu components.Menu
	err  string
}

var _ screen.Screen = (*HomeScreen)(nil)

func New(g screen.Game) *HomeScreen {
	h := &HomeScreen{game: g}

	items := make([]components.MenuItem, itemQuit+1)
	items[itemPlay].Action = func() tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: game.New(g)} }
	}
	items[itemLanguage].Action = func() tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: h.languagePicker()} }
	}
	items[itemTimeMode].Action = func() tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: h.timeModePicker()} }
	}
	items[itemClearScore].Action = func() tea.Cmd {
		h.err = ""
		if err := g.ClearScore(context.Background()); err != nil {
			h.err = err.Error()
		}
		return nil
	}
	items[itemQuit].Action = func() tea.Cmd { return tea.Quit }

	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

// refresh relabels the menu in the current language.
func (h *HomeScreen) refresh() {
	st := h.game.Snapshot()
	t := i18n.For(st.Language)
	h.menu.Items[itemPlay].Label = t.Play
	h.menu.Items[itemLanguage].Label = fmt.Sprintf("%s: %s", t.Language, i18n.LanguageName(st.Language))
	h.menu.Items[itemTimeMode].Label = fmt.Sprintf("%s: %s", t.TimeMode, i18n.TimeModeName(st.TimeMode))
	h.menu.Items[itemClearScore].Label = t.ClearScore
	h.menu.Items[itemQuit].Label = t.Quit
}

func (h *HomeScreen) languagePicker() screen.Screen {
	st := h.game.Snapshot()
	opts := make([]picker.Option, len(hangman.Languages))
	for i, lang := range hangman.Languages {
		opts[i] = picker.Option{Label: i18n.LanguageName(lang), Value: string(lang)}
	}
	return picker.New(i18n.For(st.Language).Language, opts, string(st.Language), func(v string) {
		h.game.ChangeLanguage(context.Background(), hangman.Language(v))
	})
}

func (h *HomeScreen) timeModePicker() screen.Screen {
	st := h.game.Snapshot()
	opts := make([]picker.Option, len(hangman.TimeModes))
	for i, mode := range hangman.TimeModes {
		opts[i] = picker.Option{Label: i18n.TimeModeName(mode), Value: string(mode)}
	}
	return picker.New(i18n.For(st.Language).TimeMode, opts, string(st.TimeMode), func(v string) {
		h.game.ChangeTimeMode(context.Background(), hangman.TimeMode(v))
	})
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	h.refresh()
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.game.Snapshot()
	t := i18n.For(st.Language)

	var sections []string
	if !layout.IsCompactHeight(height + 6) {
		sections = append(sections, RenderBanner(width), "")
	}
	sections = append(sections,
		theme.Title.Render(t.Title),
		theme.Subtitle.Render(fmt.Sprintf("%s: %d   %s: %d", t.Wins, st.Score.Wins, t.Losses, st.Score.Losses)),
		theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")),
	)
	if h.err != "" {
		sections = append(sections, theme.Incorrect.Render(h.err))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return i18n.For(h.game.Snapshot().Language).Title
}
