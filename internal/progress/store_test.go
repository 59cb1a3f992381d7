package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	"github.com/abhisek/happymath/internal/store"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestOpen_Defaults(t *testing.T) {
	s := Open(context.Background(), store.NewMemoryKV())

	for _, gt := range gametype.All() {
		assert.Equal(t, 1, s.Level(gt), gt)
		assert.Equal(t, 0, s.Score(gt), gt)
		assert.Equal(t, DefaultGameProgress(), s.Progress(gt), gt)
		assert.Zero(t, s.LevelProgress(gt))
	}
}

func TestRecordAnswer_Leveling(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, store.NewMemoryKV())

	var out Outcome
	for i := 0; i < 10; i++ {
		out = s.RecordAnswer(ctx, gametype.Addition, true)
	}
	assert.True(t, out.LeveledUp())
	assert.Equal(t, LevelState{2, 0}, s.State(gametype.Addition))

	out = s.RecordAnswer(ctx, gametype.Addition, false)
	assert.True(t, out.LeveledDown())
	assert.Equal(t, LevelState{1, 9}, s.State(gametype.Addition))

	gp := s.Progress(gametype.Addition)
	assert.Equal(t, 11, gp.TotalProblems)
	assert.Equal(t, 10, gp.CorrectAnswers)
	assert.Equal(t, 0, gp.StreakCount)
	assert.Equal(t, 2, gp.HighestDifficulty)
	assert.Equal(t, 9, gp.HighestScore)

	// Other game types are untouched.
	assert.Equal(t, LevelState{1, 0}, s.State(gametype.Division))
}

func TestRecordAnswer_Timing(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := Open(ctx, store.NewMemoryKV(), WithClock(clock.Now))

	s.BeginSession()
	out := s.RecordAnswer(ctx, gametype.Multiplication, true)
	assert.Zero(t, out.Elapsed, "first answer of a session has no elapsed time")

	clock.Advance(3 * time.Second)
	out = s.RecordAnswer(ctx, gametype.Multiplication, true)
	assert.Equal(t, 3*time.Second, out.Elapsed)

	clock.Advance(5 * time.Second)
	s.RecordAnswer(ctx, gametype.Multiplication, false)

	gp := s.Progress(gametype.Multiplication)
	assert.InDelta(t, 8.0, gp.TimeSpent, 1e-9)
	assert.InDelta(t, 8.0/3.0, gp.AverageResponseTime, 1e-9)
	assert.True(t, gp.LastPlayed.Equal(clock.Now()))

	s.BeginSession()
	clock.Advance(time.Hour)
	out = s.RecordAnswer(ctx, gametype.Multiplication, true)
	assert.Zero(t, out.Elapsed, "new session resets the answer timer")
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	clock := newClock()

	s := Open(ctx, kv, WithClock(clock.Now))
	for i := 0; i < 13; i++ {
		s.RecordAnswer(ctx, gametype.Fractions, i%4 != 0)
		clock.Advance(2 * time.Second)
	}
	want := s.Progress(gametype.Fractions)
	wantState := s.State(gametype.Fractions)

	level, err := kv.GetInt(ctx, "gameLevel_fractions")
	require.NoError(t, err)
	assert.Equal(t, wantState.Level, level)
	score, err := kv.GetInt(ctx, "gameScore_fractions")
	require.NoError(t, err)
	assert.Equal(t, wantState.Score, score)

	reloaded := Open(ctx, kv)
	got := reloaded.Progress(gametype.Fractions)
	assert.Equal(t, wantState, reloaded.State(gametype.Fractions))
	assert.Equal(t, want.TotalProblems, got.TotalProblems)
	assert.Equal(t, want.CorrectAnswers, got.CorrectAnswers)
	assert.Equal(t, want.HighestScore, got.HighestScore)
	assert.Equal(t, want.HighestDifficulty, got.HighestDifficulty)
	assert.Equal(t, want.StreakCount, got.StreakCount)
	assert.Equal(t, want.TimeSpent, got.TimeSpent)
	assert.Equal(t, want.AverageResponseTime, got.AverageResponseTime)
	assert.True(t, want.LastPlayed.Equal(got.LastPlayed))
}

func TestPersistence_SQLite(t *testing.T) {
	ctx := context.Background()
	st, err := store.OpenMemory()
	require.NoError(t, err)
	defer st.Close()

	s := Open(ctx, st.KV())
	s.RecordAnswer(ctx, gametype.Decimals, true)
	s.RecordAnswer(ctx, gametype.Decimals, true)

	reloaded := Open(ctx, st.KV())
	assert.Equal(t, LevelState{1, 2}, reloaded.State(gametype.Decimals))
	assert.Equal(t, 2, reloaded.Progress(gametype.Decimals).CorrectAnswers)
}

func TestOpen_MalformedFallsBack(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(kv *store.MemoryKV)
		warn  bool
	}{
		{
			name: "level below one",
			setup: func(kv *store.MemoryKV) {
				kv.SetInt(ctx, "gameLevel_addition", -2)
			},
		},
		{
			name: "score outside level range",
			setup: func(kv *store.MemoryKV) {
				kv.SetInt(ctx, "gameLevel_addition", 1)
				kv.SetInt(ctx, "gameScore_addition", 10)
			},
		},
		{
			name: "progress not json",
			setup: func(kv *store.MemoryKV) {
				kv.SetBytes(ctx, KeyProgress, []byte("{oops"))
			},
			warn: true,
		},
		{
			name: "progress violates schema",
			setup: func(kv *store.MemoryKV) {
				kv.SetBytes(ctx, KeyProgress, []byte(`{"addition":{"totalProblems":-1}}`))
			},
			warn: true,
		},
		{
			name: "progress has wrong type",
			setup: func(kv *store.MemoryKV) {
				kv.SetBytes(ctx, KeyProgress, []byte(`[1,2,3]`))
			},
			warn: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := store.NewMemoryKV()
			tc.setup(kv)
			core, logs := observer.New(zapcore.WarnLevel)

			s := Open(ctx, kv, WithLogger(zap.New(core)))
			assert.Equal(t, DefaultLevelState(), s.State(gametype.Addition))
			assert.Equal(t, DefaultGameProgress(), s.Progress(gametype.Addition))
			if tc.warn {
				assert.Equal(t, 1, logs.FilterMessage("discarding stored progress").Len())
			}
		})
	}
}

func TestOpen_KeepsValidLevelWithDefaultScore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.SetInt(ctx, "gameLevel_division", 3))
	require.NoError(t, kv.SetInt(ctx, "gameScore_division", 31))

	s := Open(ctx, kv)
	assert.Equal(t, LevelState{3, 0}, s.State(gametype.Division))
}

func TestTotalProgress_TrueMean(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := Open(ctx, store.NewMemoryKV(), WithClock(clock.Now))

	// Addition: 2 answers, 10s total.
	s.RecordAnswer(ctx, gametype.Addition, true)
	clock.Advance(10 * time.Second)
	s.RecordAnswer(ctx, gametype.Addition, true)

	// Subtraction: 2 answers, 2s + 2s.
	clock.Advance(2 * time.Second)
	s.RecordAnswer(ctx, gametype.Subtraction, true)
	clock.Advance(2 * time.Second)
	s.RecordAnswer(ctx, gametype.Subtraction, false)

	total := s.TotalProgress()
	assert.Equal(t, 4, total.TotalProblems)
	assert.Equal(t, 3, total.CorrectAnswers)
	assert.InDelta(t, 14.0, total.TimeSpent, 1e-9)
	assert.InDelta(t, 14.0/4.0, total.AverageResponseTime, 1e-9)
	assert.Equal(t, 2, total.StreakCount)
	assert.Equal(t, 1, total.HighestDifficulty)
	assert.True(t, total.LastPlayed.Equal(clock.Now()))
	assert.InDelta(t, 75.0, total.AccuracyPercentage(), 1e-9)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := Open(ctx, kv)
	for i := 0; i < 12; i++ {
		s.RecordAnswer(ctx, gametype.Comparison, true)
		s.RecordAnswer(ctx, gametype.Decimals, true)
	}

	s.Reset(ctx, gametype.Comparison)
	assert.Equal(t, DefaultLevelState(), s.State(gametype.Comparison))
	assert.Equal(t, DefaultGameProgress(), s.Progress(gametype.Comparison))
	assert.Equal(t, 2, s.Level(gametype.Decimals))

	reloaded := Open(ctx, kv)
	assert.Equal(t, DefaultLevelState(), reloaded.State(gametype.Comparison))
	assert.Equal(t, 2, reloaded.Level(gametype.Decimals))

	s.ResetAll(ctx)
	for _, e := range Open(ctx, kv).Entries() {
		assert.Equal(t, DefaultLevelState(), e.State, e.Type)
		assert.Equal(t, 0, e.Progress.TotalProblems, e.Type)
	}
}

func TestLevelText(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, store.NewMemoryKV())
	for i := 0; i < 15; i++ {
		s.RecordAnswer(ctx, gametype.Division, true)
	}
	assert.Equal(t, "Level 2 • 5/20", s.LevelText(i18n.English, gametype.Division))
	assert.Equal(t, "Cấp 2 • 5/20", s.LevelText(i18n.Vietnamese, gametype.Division))
}

func TestLanguage(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := Open(ctx, kv)

	assert.Equal(t, i18n.System, s.Language(ctx))
	require.NoError(t, s.SetLanguage(ctx, i18n.Chinese))
	assert.Equal(t, i18n.Chinese, Open(ctx, kv).Language(ctx))

	raw, err := kv.GetBytes(ctx, KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "中文", string(raw))
}

type failingKV struct{ *store.MemoryKV }

func (failingKV) SetInt(context.Context, string, int) error     { return errors.New("disk full") }
func (failingKV) SetBytes(context.Context, string, []byte) error { return errors.New("disk full") }

func TestRecordAnswer_PersistFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	s := Open(ctx, failingKV{store.NewMemoryKV()}, WithLogger(zap.New(core)))

	s.RecordAnswer(ctx, gametype.Addition, true)
	assert.Equal(t, 1, s.Score(gametype.Addition), "in-memory state still advances")
	assert.Equal(t, 1, logs.FilterMessage("persist progress").Len())
}
