// Package placeholder is the "coming soon" screen for sections that are
// not playable yet.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/ui/theme"
)

// PlaceholderScreen shows a section title, its description and a
// coming-soon notice.
type PlaceholderScreen struct {
	env      *screen.Env
	titleKey string
	descKey  string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen from catalog keys.
func New(env *screen.Env, titleKey, descKey string) *PlaceholderScreen {
	return &PlaceholderScreen{env: env, titleKey: titleKey, descKey: descKey}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render(p.env.T(p.descKey)),
		"",
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render("╌╌ "+p.env.T(i18n.KeyComingSoon)+" ╌╌"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *PlaceholderScreen) Title() string {
	return p.env.T(p.titleKey)
}
