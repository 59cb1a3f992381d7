package session

import (
	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/problemgen"
	"github.com/abhisek/happymath/internal/progress"
)

// Phase represents the current phase of the controller.
type Phase int

const (
	PhaseIdle           Phase = iota // No game running
	PhaseAwaitingAnswer              // A problem is shown and accepts an answer
	PhaseResolved                    // The answer was graded; the next problem is pending
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// State is a point-in-time snapshot of the controller.
type State struct {
	Phase     Phase
	SessionID string
	Type      gametype.GameType
	Level     int

	// HasProblem is false while idle.
	HasProblem bool
	Problem    problemgen.Problem
	Options    []problemgen.Option

	// Selected is the answer given for the current problem; empty until
	// CheckAnswer and cleared when the next problem is shown.
	Selected string
	Correct  bool

	// Outcome is the effect of the last graded answer.
	Outcome progress.Outcome

	Answered     int
	CorrectCount int
}

func (s State) clone() State {
	if s.Options != nil {
		s.Options = append([]problemgen.Option(nil), s.Options...)
	}
	return s
}
