// Package history lists recently answered problems.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/store"
	"github.com/abhisek/happymath/internal/ui/layout"
	"github.com/abhisek/happymath/internal/ui/theme"
)

// pageSize is how many events are loaded per filter.
const pageSize = 100

type historyLoadedMsg struct {
	filter   gametype.GameType
	events   []store.AnswerEvent
	sessions int
	err      error
}

// HistoryScreen displays recent answer events, optionally filtered to
// one game type.
type HistoryScreen struct {
	env      *screen.Env
	filter   gametype.GameType // empty = all
	events   []store.AnswerEvent
	sessions int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. env.Events must be set.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{env: env}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	repo, filter := s.env.Events, s.filter
	return func() tea.Msg {
		ctx := context.Background()
		events, err := repo.RecentAnswers(ctx, store.QueryOpts{GameType: filter.String(), Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{filter: filter, err: err}
		}
		n, err := repo.SessionCount(ctx, filter.String())
		return historyLoadedMsg{filter: filter, events: events, sessions: n, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	title := s.env.T(i18n.KeyHistory)
	if s.filter != "" {
		title += " · " + s.env.T(s.filter.TitleKey())
	}
	return title
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: s.env.T(i18n.KeyBack)},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.filter != s.filter {
			return s, nil
		}
		s.loaded = true
		s.offset = 0
		s.events = msg.events
		s.sessions = msg.sessions
		s.errMsg = ""
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.filter = nextFilter(s.filter)
			s.loaded = false
			return s, s.load()
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.events)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

// nextFilter cycles all → addition → … → decimals → all.
func nextFilter(f gametype.GameType) gametype.GameType {
	all := gametype.All()
	if f == "" {
		return all[0]
	}
	for i, g := range all {
		if g == f && i+1 < len(all) {
			return all[i+1]
		}
	}
	return ""
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n…")
	}
	if len(s.events) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n" + s.env.T(i18n.KeyNoHistory))
	}

	var b strings.Builder
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d · %d", len(s.events), s.sessions)))
	b.WriteString("\n\n")

	rows := max(height-3, 1)
	end := min(s.offset+rows, len(s.events))
	for _, e := range s.events[s.offset:end] {
		b.WriteString(layout.Center(s.renderEvent(e), width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) renderEvent(e store.AnswerEvent) string {
	mark := theme.Correct.Render("✓")
	answer := e.ChosenAnswer
	if !e.Correct {
		mark = theme.Incorrect.Render("✗")
		answer = fmt.Sprintf("%s → %s", e.ChosenAnswer, e.CorrectAnswer)
	}

	g, _ := gametype.Parse(e.GameType)
	name := lipgloss.NewStyle().Foreground(theme.GameColor(g)).Width(3).Render(g.Symbol())
	when := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(e.CreatedAt.Local().Format("Jan 02 15:04"))
	level := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(i18n.Level(s.env.Lang(), e.Level))

	return fmt.Sprintf("%s %s  %-16s %-14s %s  %5.1fs  %s",
		mark, name, e.Question, answer, level, float64(e.ResponseMs)/1000, when)
}
