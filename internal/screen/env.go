package screen

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/session"
	"github.com/abhisek/happymath/internal/store"
)

// Env holds the services shared by all screens. It is only touched from
// the Bubble Tea update loop.
type Env struct {
	Progress   *progress.Store
	Controller *session.Controller
	Events     store.EventRepo // nil when answer history is unavailable
	Log        *zap.Logger

	lang i18n.Language
}

// NewEnv creates an Env and reads the saved language choice.
func NewEnv(ctx context.Context, p *progress.Store, c *session.Controller) *Env {
	return &Env{
		Progress:   p,
		Controller: c,
		Log:        zap.NewNop(),
		lang:       p.Language(ctx),
	}
}

// Lang returns the selected UI language.
func (e *Env) Lang() i18n.Language {
	return e.lang
}

// SetLang switches the UI language and saves the choice.
func (e *Env) SetLang(ctx context.Context, l i18n.Language) error {
	e.lang = l
	return e.Progress.SetLanguage(ctx, l)
}

// T looks up key in the selected language.
func (e *Env) T(key string) string {
	return i18n.Lookup(key, e.lang)
}

// SessionStateMsg carries a session.Controller state change into the
// update loop.
type SessionStateMsg struct {
	State session.State
}

// SetLangForRun switches the UI language without saving it.
func (e *Env) SetLangForRun(l i18n.Language) {
	e.lang = l
}
