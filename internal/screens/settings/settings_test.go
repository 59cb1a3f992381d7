package settings

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/store"
)

type recordingEvents struct {
	store.EventRepo
	deleted []string
}

func (r *recordingEvents) DeleteAnswers(_ context.Context, gameType string) error {
	r.deleted = append(r.deleted, gameType)
	return nil
}

func newTestSettings(t *testing.T) (*SettingsScreen, *store.MemoryKV, *recordingEvents) {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemoryKV()
	env := screen.NewEnv(ctx, progress.Open(ctx, kv), nil)
	events := &recordingEvents{}
	env.Events = events
	require.NoError(t, env.SetLang(ctx, i18n.English))
	return New(env), kv, events
}

func press(s *SettingsScreen, code rune) {
	s.Update(tea.KeyPressMsg{Code: code})
}

func TestStartsOnCurrentLanguage(t *testing.T) {
	s, _, _ := newTestSettings(t)
	assert.Equal(t, i18n.English, s.languages[s.selected])
}

func TestSelectLanguagePersists(t *testing.T) {
	s, kv, _ := newTestSettings(t)
	press(s, tea.KeyDown) // 中文
	press(s, tea.KeyEnter)

	assert.Equal(t, i18n.Chinese, s.env.Lang())
	reopened := progress.Open(context.Background(), kv)
	assert.Equal(t, i18n.Chinese, reopened.Language(context.Background()))
	assert.Contains(t, s.View(80, 24), "语言")
}

func TestResetNeedsConfirmation(t *testing.T) {
	s, _, events := newTestSettings(t)
	ctx := context.Background()
	s.env.Progress.BeginSession()
	s.env.Progress.RecordAnswer(ctx, gametype.Addition, true)

	for i := 0; i < len(s.languages); i++ {
		press(s, tea.KeyDown)
	}
	require.Equal(t, s.resetIndex(), s.selected)

	press(s, tea.KeyEnter)
	assert.True(t, s.confirming)
	assert.Equal(t, 1, s.env.Progress.Score(gametype.Addition), "first Enter only asks")

	press(s, tea.KeyEnter)
	assert.False(t, s.confirming)
	assert.Equal(t, 0, s.env.Progress.Score(gametype.Addition))
	assert.Equal(t, []string{""}, events.deleted)
	assert.Contains(t, s.View(80, 24), "Progress reset")
}

func TestMovingAwayCancelsConfirmation(t *testing.T) {
	s, _, events := newTestSettings(t)
	s.selected = s.resetIndex()
	press(s, tea.KeyEnter)
	press(s, tea.KeyUp)
	press(s, tea.KeyDown)
	press(s, tea.KeyEnter)

	assert.True(t, s.confirming)
	assert.Empty(t, events.deleted)
}
