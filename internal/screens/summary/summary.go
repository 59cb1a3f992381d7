// Package summary shows how a finished game went.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/router"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/ui/components"
	"github.com/abhisek/happymath/internal/ui/layout"
	"github.com/abhisek/happymath/internal/ui/theme"
)

// Result is what one game produced.
type Result struct {
	Type       gametype.GameType
	Answered   int
	Correct    int
	StartLevel int
	EndLevel   int
	Elapsed    time.Duration
}

// Accuracy is the share of correct answers in [0, 1].
func (r Result) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}

// SummaryScreen displays a Result.
type SummaryScreen struct {
	env    *screen.Env
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(env *screen.Env, result Result) *SummaryScreen {
	return &SummaryScreen{env: env, result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.env.T(s.result.Type.TitleKey())
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.KeyDone)},
		{Key: "Esc", Description: s.env.T(i18n.KeyBack)},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	lang := s.env.Lang()
	cw := components.ContentWidth(width)

	var b strings.Builder

	headline := s.env.T(i18n.KeyCorrect)
	if r.Accuracy() < 0.5 {
		headline = s.env.T(i18n.KeyTryAgain)
	}
	b.WriteString(layout.Center(theme.Title.Render(headline), cw))
	b.WriteString("\n\n")

	mins := int(r.Elapsed.Minutes())
	secs := int(r.Elapsed.Seconds()) % 60
	stats := fmt.Sprintf("%s: %d     %s: %.0f%%     %d:%02d",
		s.env.T(i18n.KeyProblems), r.Answered,
		s.env.T(i18n.KeyAccuracy), r.Accuracy()*100,
		mins, secs)
	b.WriteString(layout.Center(theme.Body.Render(stats), cw))
	b.WriteString("\n\n")

	level := i18n.Level(lang, r.EndLevel)
	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case r.EndLevel > r.StartLevel:
		level = i18n.Level(lang, r.StartLevel) + "  ▲  " + level
		style = style.Foreground(theme.Success).Bold(true)
	case r.EndLevel < r.StartLevel:
		level = i18n.Level(lang, r.StartLevel) + "  ▼  " + level
		style = style.Foreground(theme.Accent)
	}
	b.WriteString(layout.Center(style.Render(level), cw))

	return components.CabinetFrame(b.String(), width, height, theme.GameColor(r.Type))
}
