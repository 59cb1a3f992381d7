// Package welcome shows the start-up splash.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/router"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	symbolsEnd   = 800 * time.Millisecond
	totalDur     = 2 * time.Second
)

// symbols light up one at a time before the banner appears.
var symbols = []string{"+", "−", "×", "÷", "<", ">", "½", "0.5"}

type tickMsg time.Time

// WelcomeScreen plays a short splash and then replaces itself with the
// screen built by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	tagline      string
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen showing tagline under the banner.
func New(tagline string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next, tagline: tagline}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// litSymbols is how many symbols are showing at the current time.
func (w *WelcomeScreen) litSymbols() int {
	n := int(w.elapsed * time.Duration(len(symbols)) / symbolsEnd)
	return min(n, len(symbols))
}

func (w *WelcomeScreen) View(width, height int) string {
	colors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true),
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
	}
	lit := make([]string, 0, len(symbols))
	for i, s := range symbols[:w.litSymbols()] {
		lit = append(lit, colors[i%len(colors)].Render(s))
	}

	sections := []string{strings.Join(lit, "   ")}
	if w.elapsed >= symbolsEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
