// Package progress shows per-game and total statistics.
package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/ui/components"
	"github.com/abhisek/happymath/internal/ui/layout"
	"github.com/abhisek/happymath/internal/ui/theme"
)

// ProgressScreen lists every game type with its level and lifetime
// statistics, followed by the totals.
type ProgressScreen struct {
	env *screen.Env
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(env *screen.Env) *ProgressScreen {
	return &ProgressScreen{env: env}
}

func (s *ProgressScreen) Init() tea.Cmd                          { return nil }
func (s *ProgressScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *ProgressScreen) Title() string {
	return s.env.T(i18n.KeyProgressTitle)
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: s.env.T(i18n.KeyBack)}}
}

const (
	nameWidth = 22
	barWidth  = 16
)

func (s *ProgressScreen) View(width, height int) string {
	lang := s.env.Lang()
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for _, e := range s.env.Progress.Entries() {
		accent := theme.GameColor(e.Type)
		name := lipgloss.NewStyle().Foreground(accent).Bold(true).Width(nameWidth).
			Render(s.env.T(e.Type.TitleKey()))
		bar := components.NewProgressBar("", e.State.Fraction(), false, barWidth).WithColor(accent).View()
		level := s.env.Progress.LevelText(lang, e.Type)
		stats := dim.Render(fmt.Sprintf("%s %d  %s %.0f%%",
			s.env.T(i18n.KeyProblems), e.Progress.TotalProblems,
			s.env.T(i18n.KeyAccuracy), e.Progress.AccuracyPercentage()))

		b.WriteString(name + "  " + bar + "  " + level + "   " + stats + "\n")
	}

	total := s.env.Progress.TotalProgress()
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("%s: %s %d  %s %.0f%%  %s %d  %s %.1fs",
			s.env.T(i18n.KeyTotal),
			s.env.T(i18n.KeyProblems), total.TotalProblems,
			s.env.T(i18n.KeyAccuracy), total.AccuracyPercentage(),
			s.env.T(i18n.KeyStreak), total.StreakCount,
			"⏱", total.AverageResponseTime)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
