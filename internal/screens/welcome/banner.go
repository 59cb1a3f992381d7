package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/ui/theme"
)

const bannerArt = `█   █  ███  ████  ████  █   █     █   █  ███  █████ █   █
█   █ █   █ █   █ █   █  █ █      ██ ██ █   █   █   █   █
█████ █████ ████  ████    █       █ █ █ █████   █   █████
█   █ █   █ █     █       █       █   █ █   █   █   █   █
█   █ █   █ █     █       █       █   █ █   █   █   █   █`

const bannerCompact = "H A P P Y   M A T H"

// bannerWidth is the column count of bannerArt.
const bannerWidth = 58

// RenderBanner returns the title banner, or a one-line version when the
// art does not fit in width.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
