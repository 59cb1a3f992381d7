package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/gametype"
)

// Color palette, bright and friendly.
var (
	Primary      = lipgloss.Color("#6366F1") // Indigo
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// gameColors gives each game its own accent on the home grid and the
// in-game header.
var gameColors = map[gametype.GameType]color.Color{
	gametype.Addition:       lipgloss.Color("#3B82F6"),
	gametype.Subtraction:    lipgloss.Color("#22C55E"),
	gametype.Multiplication: lipgloss.Color("#A855F7"),
	gametype.Division:       lipgloss.Color("#F97316"),
	gametype.Comparison:     lipgloss.Color("#EC4899"),
	gametype.Fractions:      lipgloss.Color("#14B8A6"),
	gametype.Decimals:       lipgloss.Color("#EAB308"),
}

// GameColor returns the accent color for a game type.
func GameColor(t gametype.GameType) color.Color {
	if c, ok := gameColors[t]; ok {
		return c
	}
	return Primary
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
