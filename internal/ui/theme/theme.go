package theme

import (
	"charm.land/lipgloss/v2"
)

// Chalkboard palette
var (
	Primary   = lipgloss.Color("#FACC15") // Chalk Yellow
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FB923C") // Orange
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#F1F5F9") // Chalk White
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgCard    = lipgloss.Color("#1F2937") // Board
	Border    = lipgloss.Color("#374151") // Frame
	Wood      = lipgloss.Color("#A16207") // Gallows
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Game
var (
	Gallows = lipgloss.NewStyle().
		Foreground(Wood).
		Bold(true)

	Letter = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	KeyUnused = lipgloss.NewStyle().
			Foreground(Text)

	KeyHit = lipgloss.NewStyle().
		Foreground(BgCard).
		Background(Success).
		Bold(true)

	KeyMiss = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)

	Timer = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	TimerLow = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
