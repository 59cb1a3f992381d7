package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/ui/theme"
)

// ContentWidth returns the uniform inner width for boxed sections, so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 64)
}

// CabinetFrame wraps content in a double border and centers it in the
// given area.
func CabinetFrame(content string, width, height int, accent color.Color) string {
	if accent == nil {
		accent = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card renders a titled rounded box of width cw.
func Card(title, body string, cw int, accent color.Color) string {
	if accent == nil {
		accent = theme.Border
	}
	head := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Center, head, body))
}

// Tile renders a fixed-width selectable box with a label and a dim
// detail line.
func Tile(label, detail string, selected bool, width int, accent color.Color) string {
	if accent == nil {
		accent = theme.Primary
	}
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		style = style.BorderForeground(accent)
		labelStyle = labelStyle.Foreground(accent).Bold(true)
		label = "▸ " + label
	}
	body := labelStyle.Render(label)
	if detail != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
	}
	return style.Render(body)
}
