package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default
	MascotCelebrating                      // Doing well overall
	MascotSleepy                           // Nothing played yet
)

const mascotIdle = `╭─────╮
│ ● ● │
│  ◡  │
╰┬───┬╯
 │+−×│`

const mascotCelebrating = `╭─────╮
│ ★ ★ │
│  ▽  │
╰┬───┬╯
\│+−×│/`

const mascotSleepy = `╭─────╮
│ - - │ z
│  ~  │
╰┬───┬╯
 │+−×│`

// celebrateAccuracy and celebrateMinProblems gate the celebrating mascot.
const (
	celebrateAccuracy    = 80.0
	celebrateMinProblems = 10
)

// mascotFor picks the mascot from the lifetime totals.
func mascotFor(total progress.GameProgress) MascotVariant {
	switch {
	case total.TotalProblems == 0:
		return MascotSleepy
	case total.TotalProblems >= celebrateMinProblems && total.AccuracyPercentage() >= celebrateAccuracy:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotSleepy:
		art, fg = mascotSleepy, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
