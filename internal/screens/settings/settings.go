// Package settings lets the player pick the language and reset progress.
package settings

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/ui/components"
	"github.com/abhisek/happymath/internal/ui/layout"
	"github.com/abhisek/happymath/internal/ui/theme"
)

// SettingsScreen lists the languages followed by a reset entry.
type SettingsScreen struct {
	env       *screen.Env
	languages []i18n.Language
	selected  int

	confirming bool
	notice     string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen with the current language highlighted.
func New(env *screen.Env) *SettingsScreen {
	s := &SettingsScreen{env: env, languages: i18n.Languages()}
	for i, l := range s.languages {
		if l == env.Lang() {
			s.selected = i
		}
	}
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return s.env.T(i18n.KeySettings)
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: s.env.T(i18n.KeyBack)},
	}
}

// resetIndex is the row of the reset entry, after the languages.
func (s *SettingsScreen) resetIndex() int {
	return len(s.languages)
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		s.confirming = false
	case "down", "j":
		if s.selected < s.resetIndex() {
			s.selected++
		}
		s.confirming = false
	case "enter":
		s.activate(context.Background())
	}
	return s, nil
}

func (s *SettingsScreen) activate(ctx context.Context) {
	s.notice = ""
	if s.selected < s.resetIndex() {
		if err := s.env.SetLang(ctx, s.languages[s.selected]); err != nil {
			s.env.Log.Warn("save language", zap.Error(err))
		}
		return
	}

	if !s.confirming {
		s.confirming = true
		return
	}
	s.confirming = false
	s.env.Progress.ResetAll(ctx)
	if s.env.Events != nil {
		if err := s.env.Events.DeleteAnswers(ctx, ""); err != nil {
			s.env.Log.Warn("delete answer history", zap.Error(err))
		}
	}
	s.notice = s.env.T(i18n.KeyResetDone)
}

func (s *SettingsScreen) View(width, height int) string {
	current := s.env.Lang()

	items := make([]components.MenuItem, 0, len(s.languages)+1)
	for _, l := range s.languages {
		item := components.MenuItem{Label: i18n.DisplayName(l, current)}
		if l == current {
			item.Detail = "✓"
		}
		items = append(items, item)
	}
	items = append(items, components.MenuItem{Label: s.env.T(i18n.KeyResetProgress)})
	menu := components.Menu{Items: items, Selected: s.selected}

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.env.T(i18n.KeyLanguage)),
		"",
		menu.View(),
	}
	switch {
	case s.confirming:
		sections = append(sections, theme.Incorrect.Render(s.env.T(i18n.KeyResetConfirm)))
	case s.notice != "":
		sections = append(sections, theme.Correct.Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
