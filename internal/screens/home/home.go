// Package home is the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/router"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/screens/history"
	"github.com/abhisek/happymath/internal/screens/learn"
	"github.com/abhisek/happymath/internal/screens/placeholder"
	progressscreen "github.com/abhisek/happymath/internal/screens/progress"
	"github.com/abhisek/happymath/internal/screens/settings"
	"github.com/abhisek/happymath/internal/screens/welcome"
	"github.com/abhisek/happymath/internal/ui/components"
	"github.com/abhisek/happymath/internal/ui/layout"
)

// menuKeys are the catalog keys of the menu entries, in order.
var menuKeys = []string{
	i18n.KeyLearn,
	i18n.KeyProgress,
	i18n.KeyHistory,
	i18n.KeySettings,
	i18n.KeyChampion,
	i18n.KeyExit,
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Action: push(func() screen.Screen { return learn.New(env) })},
		{Action: push(func() screen.Screen { return progressscreen.New(env) })},
		{Action: push(func() screen.Screen { return history.New(env) }), Disabled: env.Events == nil},
		{Action: push(func() screen.Screen { return settings.New(env) })},
		{Action: push(func() screen.Screen {
			return placeholder.New(env, i18n.KeyChampion, i18n.KeyCompeteDesc)
		})},
		{Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return h.env.T(i18n.KeyPracticeDesc)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: h.env.T(i18n.KeyExit)},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// labels returns the enabled menu entries in the current language along
// with the position of the selection among them.
func (h *HomeScreen) labels() ([]string, int) {
	labels := make([]string, 0, len(menuKeys))
	selected := 0
	for i, key := range menuKeys {
		if h.menu.Items[i].Disabled {
			continue
		}
		if i == h.menu.Selected {
			selected = len(labels)
		}
		labels = append(labels, h.env.T(key))
	}
	return labels, selected
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 40 || width < 90
	cw := components.ContentWidth(width)
	total := h.env.Progress.TotalProgress()
	labels, selected := h.labels()

	sections := []string{welcome.RenderBanner(cw)}
	if !compact {
		sections = append(sections, RenderMascot(mascotFor(total)))
	}
	sections = append(sections, renderStatsBar(total, h.env.Lang(), cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(labels, selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(labels, selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height, nil)
}
