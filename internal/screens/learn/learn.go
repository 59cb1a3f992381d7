// Package learn lists the games that can be practiced.
package learn

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/router"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/screens/game"
	"github.com/abhisek/happymath/internal/ui/components"
	"github.com/abhisek/happymath/internal/ui/layout"
	"github.com/abhisek/happymath/internal/ui/theme"
)

const (
	columns   = 2
	tileWidth = 28
)

// LearnScreen is a grid of game tiles.
type LearnScreen struct {
	env      *screen.Env
	games    []gametype.GameType
	selected int
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a LearnScreen over every game type.
func New(env *screen.Env) *LearnScreen {
	return &LearnScreen{env: env, games: gametype.All()}
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	return s.env.T(i18n.KeyLearn)
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: s.env.T(i18n.KeyBack)},
	}
}

// Selected returns the highlighted game type.
func (s *LearnScreen) Selected() gametype.GameType {
	return s.games[s.selected]
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	n := len(s.games)
	switch kmsg.String() {
	case "left", "h":
		if s.selected%columns > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected%columns < columns-1 && s.selected+1 < n {
			s.selected++
		}
	case "up", "k":
		if s.selected-columns >= 0 {
			s.selected -= columns
		}
	case "down", "j":
		if s.selected+columns < n {
			s.selected += columns
		}
	case "enter":
		g := game.New(s.env, s.Selected())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: g} }
	}
	return s, nil
}

func (s *LearnScreen) View(width, height int) string {
	var rows []string
	for start := 0; start < len(s.games); start += columns {
		var cells []string
		for i := start; i < min(start+columns, len(s.games)); i++ {
			cells = append(cells, s.renderTile(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	desc := theme.Subtitle.Render(s.env.T(i18n.KeyPracticeDesc))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join([]string{desc, "", grid}, "\n"))
}

func (s *LearnScreen) renderTile(i int) string {
	g := s.games[i]
	accent := theme.GameColor(g)
	bar := components.NewProgressBar("", s.env.Progress.LevelProgress(g), false, tileWidth-4).
		WithColor(accent).View()
	detail := s.env.Progress.LevelText(s.env.Lang(), g) + "\n" + bar
	return components.Tile(g.Symbol()+"  "+s.env.T(g.TitleKey()), detail, i == s.selected, tileWidth, accent)
}
