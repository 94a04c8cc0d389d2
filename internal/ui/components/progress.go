package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hangman/internal/ui/theme"
)

// Meter is a horizontal bar for a bounded counter such as the round clock
// or the error count.
type Meter struct {
	Label string
	Value int
	Max   int
	Width int

	// Danger switches the fill to the error colour.
	Danger bool
}

// Fraction returns Value/Max clamped to [0, 1].
func (m Meter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	return min(max(float64(m.Value)/float64(m.Max), 0), 1)
}

func (m Meter) View() string {
	var result string
	if m.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", m.Value, m.Max)
	barWidth := max(m.Width-lipgloss.Width(result)-len(count), 4)

	filled := int(float64(barWidth) * m.Fraction())
	empty := barWidth - filled

	fill := theme.Secondary
	if m.Danger {
		fill = theme.Error
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	return result
}
