// Package app hosts the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/problemgen"
	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/router"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/screens/game"
	"github.com/abhisek/happymath/internal/screens/home"
	"github.com/abhisek/happymath/internal/screens/welcome"
	"github.com/abhisek/happymath/internal/session"
	"github.com/abhisek/happymath/internal/store"
	"github.com/abhisek/happymath/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Progress  *progress.Store
	Generator *problemgen.Generator
	Events    store.EventRepo // optional
	Logger    *zap.Logger

	// Language overrides the saved language for this run when set.
	Language i18n.Language

	// FeedbackDelay is the pause between answering and the next problem.
	FeedbackDelay time.Duration

	// Game starts directly in that game instead of the home screen.
	Game gametype.GameType

	// SkipWelcome hides the start-up splash.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	init   tea.Cmd
	width  int
	height int
}

// newAppModel builds the screen stack for opts.
func newAppModel(env *screen.Env, opts Options) AppModel {
	homeScreen := home.New(env)

	switch {
	case opts.Game != "":
		// Push starts the game right away; Esc leads back home.
		r := router.New(homeScreen)
		return AppModel{env: env, router: r, init: r.Push(game.New(env, opts.Game))}
	case !opts.SkipWelcome:
		w := welcome.New(env.T(i18n.KeyPracticeDesc), func() screen.Screen {
			return homeScreen
		})
		return AppModel{env: env, router: router.New(w), init: w.Init()}
	default:
		return AppModel{env: env, router: router.New(homeScreen), init: homeScreen.Init()}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.init
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.env.Controller.Stop()
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.BackHandler); ok {
				return m, h.Back()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(m.env.T(i18n.KeyAppTitle), title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: m.env.T(i18n.KeyBack)},
			{Key: "Ctrl+C", Description: m.env.T(i18n.KeyExit)},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run builds the session controller and runs the Bubble Tea program
// until the player quits.
func Run(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// The controller calls back from its timer goroutine, so state
	// changes reach the update loop through Program.Send.
	var prog atomic.Pointer[tea.Program]
	notify := func(s session.State) {
		if p := prog.Load(); p != nil {
			go p.Send(screen.SessionStateMsg{State: s})
		}
	}

	delay := opts.FeedbackDelay
	if delay <= 0 {
		delay = session.DefaultFeedbackDelay
	}

	ctrl := session.New(opts.Generator, opts.Progress,
		session.WithEventRepo(opts.Events),
		session.WithLogger(log.Named("session")),
		session.WithFeedbackDelay(delay),
		session.WithOnChange(notify),
	)
	defer ctrl.Stop()

	env := screen.NewEnv(ctx, opts.Progress, ctrl)
	env.Events = opts.Events
	env.Log = log
	if opts.Language != "" {
		env.SetLangForRun(opts.Language)
	}

	p := tea.NewProgram(newAppModel(env, opts), tea.WithContext(ctx))
	prog.Store(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
