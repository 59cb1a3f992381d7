package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/ui/theme"
)

// renderStatsBar renders the lifetime totals in a double-bordered box.
func renderStatsBar(total progress.GameProgress, lang i18n.Language, cw int, compact bool) string {
	problemStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	accuracyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			problemStyle.Render(fmt.Sprintf("Σ%d", total.TotalProblems)),
			accuracyStyle.Render(fmt.Sprintf("✓%.0f%%", total.AccuracyPercentage())),
			streakStyle.Render(fmt.Sprintf("⚡%d", total.StreakCount)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			problemStyle.Render(fmt.Sprintf("Σ %d %s", total.TotalProblems, i18n.Lookup(i18n.KeyProblems, lang))),
			accuracyStyle.Render(fmt.Sprintf("✓ %.0f%% %s", total.AccuracyPercentage(), i18n.Lookup(i18n.KeyAccuracy, lang))),
			streakStyle.Render(fmt.Sprintf("⚡ %d %s", total.StreakCount, i18n.Lookup(i18n.KeyStreak, lang))),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, base.
				Bold(true).
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				BorderForeground(theme.ArcadeYellow).
				Render("▸ "+label))
			continue
		}
		buttons = append(buttons, base.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for small
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+label))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
