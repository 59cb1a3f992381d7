package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/problemgen"
	"github.com/abhisek/happymath/internal/session"
	"github.com/abhisek/happymath/internal/ui/components"
	"github.com/abhisek/happymath/internal/ui/layout"
	"github.com/abhisek/happymath/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if !s.state.HasProblem {
		return ""
	}
	accent := theme.GameColor(s.game)
	cw := components.ContentWidth(width)

	sections := []string{
		s.renderLevelBar(cw),
		"",
		s.renderProblem(cw),
		"",
	}
	if s.typing {
		sections = append(sections, s.renderInput(cw))
	} else {
		sections = append(sections, s.choices.View(cw))
		if s.state.Problem.Kind == problemgen.KindComparison {
			sections = append(sections, s.renderLegend(cw))
		}
	}
	sections = append(sections, "", s.renderFeedback(cw))

	return components.CabinetFrame(strings.Join(sections, "\n"), width, height, accent)
}

func (s *GameScreen) renderLevelBar(cw int) string {
	bar := components.NewProgressBar(
		i18n.Level(s.env.Lang(), s.state.Level),
		s.env.Progress.LevelProgress(s.game),
		false, cw,
	).WithColor(theme.GameColor(s.game))
	return bar.View()
}

func (s *GameScreen) renderProblem(cw int) string {
	text := s.state.Problem.Text()
	if s.state.Phase == session.PhaseResolved {
		text = revealedText(s.state.Problem)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Padding(1, 0).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.GameColor(s.game)).
		Foreground(theme.Text).
		Bold(true).
		Render(text)
}

// revealedText fills the answer into the question, e.g. "7 + 5 = 12",
// "3/4 = 0.75" or "9 > 4".
func revealedText(p problemgen.Problem) string {
	if p.Kind == problemgen.KindComparison {
		return strings.Replace(p.Text(), "?", p.AnswerText(), 1)
	}
	return p.Text() + " = " + p.AnswerText()
}

func (s *GameScreen) renderInput(cw int) string {
	return layout.Center(s.input.View(), cw)
}

func (s *GameScreen) renderLegend(cw int) string {
	legend := fmt.Sprintf("%s  %s     %s  %s",
		problemgen.GreaterThan, s.env.T(i18n.KeyGreaterThan),
		problemgen.LessThan, s.env.T(i18n.KeyLessThan))
	return layout.Center(theme.Hint.Render(legend), cw)
}

func (s *GameScreen) renderFeedback(cw int) string {
	if s.state.Phase != session.PhaseResolved {
		return layout.Center(theme.Hint.Render(
			fmt.Sprintf("%d/%d", s.state.CorrectCount, s.state.Answered)), cw)
	}

	var line string
	if s.state.Correct {
		line = theme.Correct.Render(s.env.T(i18n.KeyCorrect))
	} else {
		line = theme.Incorrect.Render(s.env.T(i18n.KeyTryAgain))
	}
	if o := s.state.Outcome; o.LeveledUp() || o.LeveledDown() {
		line += "   " + lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(i18n.Level(s.env.Lang(), o.After.Level))
	}
	return layout.Center(line, cw)
}
