// Package game is the screen where a single game type is played.
package game

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/router"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/screens/summary"
	"github.com/abhisek/happymath/internal/session"
	"github.com/abhisek/happymath/internal/ui/components"
	"github.com/abhisek/happymath/internal/ui/layout"
)

// presentation identifies one rendering of a problem: a new problem or
// its graded result.
type presentation struct {
	phase    session.Phase
	answered int
}

// GameScreen plays one game type through the session controller.
type GameScreen struct {
	env  *screen.Env
	game gametype.GameType

	state      session.State
	shown      presentation
	startLevel int
	startedAt  time.Time
	done       bool

	choices components.MultiChoice
	input   components.TextInput
	typing  bool
}

var (
	_ screen.Screen          = (*GameScreen)(nil)
	_ screen.KeyHintProvider = (*GameScreen)(nil)
	_ screen.StatusProvider  = (*GameScreen)(nil)
	_ screen.BackHandler     = (*GameScreen)(nil)
)

// New creates a GameScreen for t. The game starts on Init.
func New(env *screen.Env, t gametype.GameType) *GameScreen {
	return &GameScreen{
		env:   env,
		game:  t,
		input: components.NewTextInput(env.T(i18n.KeyTypeAnswer), true, 12),
	}
}

func (s *GameScreen) Init() tea.Cmd {
	s.startLevel = s.env.Progress.Level(s.game)
	s.startedAt = time.Now()
	s.apply(s.env.Controller.StartGame(s.game, 0))
	return nil
}

func (s *GameScreen) Title() string {
	return s.env.T(s.game.TitleKey())
}

// Status shows the level and score of the game being played.
func (s *GameScreen) Status() string {
	return s.env.Progress.LevelText(s.env.Lang(), s.game)
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Choices"},
			{Key: "Esc", Description: s.env.T(i18n.KeyDone)},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Pick"},
		{Key: "←→", Description: "Move"},
		{Key: "Tab", Description: "Type"},
		{Key: "Esc", Description: s.env.T(i18n.KeyDone)},
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	switch msg := msg.(type) {
	case screen.SessionStateMsg:
		s.apply(s.env.Controller.State())
		return s, nil

	case components.ChoiceMsg:
		return s, s.submit(msg.Value)

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if s.typing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	awaiting := s.state.Phase == session.PhaseAwaitingAnswer

	switch msg.String() {
	case "tab":
		if !awaiting {
			return nil
		}
		s.typing = !s.typing
		if s.typing {
			s.input.Reset()
			return s.input.Init()
		}
		return nil
	case "enter":
		if s.typing {
			if v := s.input.Value(); v != "" && awaiting {
				return s.submit(v)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	if s.typing {
		s.input, cmd = s.input.Update(msg)
	} else {
		s.choices, cmd = s.choices.Update(msg)
	}
	return cmd
}

// submit grades answer and shows the result.
func (s *GameScreen) submit(answer string) tea.Cmd {
	_, err := s.env.Controller.CheckAnswer(context.Background(), answer)
	if err != nil {
		if !errors.Is(err, session.ErrNotAwaitingAnswer) {
			s.env.Log.Warn("check answer", zap.Error(err))
		}
		return nil
	}
	s.apply(s.env.Controller.State())
	return nil
}

// apply brings the screen in line with a controller snapshot. Repeated
// snapshots of the same presentation are ignored so the selection is
// not lost.
func (s *GameScreen) apply(st session.State) {
	if !st.HasProblem || (s.state.SessionID != "" && st.SessionID != s.state.SessionID) {
		return
	}
	p := presentation{phase: st.Phase, answered: st.Answered}
	s.state = st
	if p == s.shown {
		return
	}
	s.shown = p

	switch st.Phase {
	case session.PhaseAwaitingAnswer:
		texts := make([]string, len(st.Options))
		for i, o := range st.Options {
			texts[i] = o.Text
		}
		s.choices = components.NewMultiChoice(texts)
		s.input.Reset()
	case session.PhaseResolved:
		s.choices.Reveal(st.Selected, st.Problem.AnswerText())
	}
}

// Back stops the game and shows the summary when something was answered.
func (s *GameScreen) Back() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	s.env.Controller.Stop()

	if s.state.Answered == 0 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	result := summary.Result{
		Type:       s.game,
		Answered:   s.state.Answered,
		Correct:    s.state.CorrectCount,
		StartLevel: s.startLevel,
		EndLevel:   s.env.Progress.Level(s.game),
		Elapsed:    time.Since(s.startedAt),
	}
	next := summary.New(s.env, result)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
