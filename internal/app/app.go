package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hangman/internal/game"
	"github.com/abhisek/hangman/internal/i18n"
	"github.com/abhisek/hangman/internal/router"
	"github.com/abhisek/hangman/internal/screen"
	"github.com/abhisek/hangman/internal/screens/home"
	"github.com/abhisek/hangman/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	game    screen.Game
	changes <-chan struct{}
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen. changes is
// signalled by the engine whenever its state moves.
func newAppModel(g screen.Game, changes <-chan struct{}) AppModel {
	m := AppModel{
		router:  router.New(home.New(g)),
		game:    g,
		changes: changes,
	}
	m.syncClock()
	return m
}

// syncClock runs the round clock only while the board is on screen.
func (m AppModel) syncClock() {
	if v, ok := m.router.Active().(screen.RoundView); ok && v.ShowsRound() {
		m.game.Resume()
		return
	}
	m.game.Pause()
}

// waitForChange blocks until the engine signals, then wakes the UI.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return screen.StateChangedMsg{}
	}
}

func (m AppModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncClock()
	return m, cmd
}

func (m AppModel) update(msg tea.Msg) (AppModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StateChangedMsg:
		return m, tea.Batch(m.router.Update(msg), waitForChange(m.changes))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	st := m.game.Snapshot()
	t := i18n.For(st.Language)

	active := m.router.Active()
	scoreboard := fmt.Sprintf("%s: %d  %s: %d  ", t.Wins, st.Score.Wins, t.Losses, st.Score.Losses)
	header := layout.RenderHeader("HANGMAN", active.Title(), scoreboard, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run wires the engine to the UI, starts the first round and blocks until
// the user quits. The first round's clock waits for the game screen.
func Run(ctx context.Context, eng *game.Engine) error {
	changes := make(chan struct{}, 1)
	eng.SetOnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	model := newAppModel(eng, changes)
	eng.Start(ctx)
	defer eng.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
