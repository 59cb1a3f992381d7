package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/ui/theme"
)

// MultiChoice shows the answer options of a problem. Options are picked
// with the arrow keys and Enter, or directly with their number key.
// Revealing the result colors the correct option green and a wrong pick
// red.
type MultiChoice struct {
	Options  []string
	Selected int

	revealed bool
	correct  string
	chosen   string
}

// ChoiceMsg is emitted when the player commits to an option.
type ChoiceMsg struct {
	Value string
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Reveal freezes the selector and highlights the graded result.
func (m *MultiChoice) Reveal(chosen, correct string) {
	m.revealed = true
	m.chosen = chosen
	m.correct = correct
}

// Revealed reports whether the result is showing.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed || len(m.Options) == 0 {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "left", "h":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j", "right", "l":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter", "space":
		return m, m.choose(m.Selected)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if i := int(key[0] - '1'); i < len(m.Options) {
			m.Selected = i
			return m, m.choose(i)
		}
	}
	return m, nil
}

func (m MultiChoice) choose(i int) tea.Cmd {
	v := m.Options[i]
	return func() tea.Msg { return ChoiceMsg{Value: v} }
}

// View renders the options on one row.
func (m MultiChoice) View(width int) string {
	cells := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		label := fmt.Sprintf("%d) %s", i+1, opt)
		style := lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)

		switch {
		case m.revealed && opt == m.correct:
			style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
		case m.revealed && opt == m.chosen:
			style = style.BorderForeground(theme.Error).Foreground(theme.Error).Bold(true)
		case m.revealed:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
		}
		cells = append(cells, style.Render(label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, spaced(cells)...)
	if lipgloss.Width(row) > width {
		row = lipgloss.JoinVertical(lipgloss.Center, cells...)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func spaced(cells []string) []string {
	out := make([]string, 0, 2*len(cells))
	for i, c := range cells {
		if i > 0 {
			out = append(out, strings.Repeat(" ", 2))
		}
		out = append(out, c)
	}
	return out
}
