package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hangman/internal/ui/theme"
)

const bannerArt = ` _   _    _    _   _  ____ __  __    _    _   _
| | | |  / \  | \ | |/ ___|  \/  |  / \  | \ | |
| |_| | / _ \ |  \| | |  _| |\/| | / _ \ |  \| |
|  _  |/ ___ \| |\  | |_| | |  | |/ ___ \| |\  |
|_| |_/_/   \_\_| \_|\____|_|  |_/_/   \_\_| \_|`

const bannerCompact = "H A N G M A N"

// RenderBanner returns the HANGMAN banner in the gallows colour. Narrow
// terminals get the one-line version.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Wood).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
