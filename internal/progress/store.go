// Package progress tracks per-game levels, scores and lifetime statistics
// and keeps them in a key-value store.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
)

// Persistence keys.
const (
	KeyProgress = "gameProgress"
	KeyLanguage = "selectedLanguage"
)

// ScoreKey is the integer key holding t's score.
func ScoreKey(t gametype.GameType) string { return "gameScore_" + t.String() }

// LevelKey is the integer key holding t's level.
func LevelKey(t gametype.GameType) string { return "gameLevel_" + t.String() }

// KV is the persistence the Store needs. Missing keys return an error;
// any error is treated as "no value".
type KV interface {
	GetInt(ctx context.Context, key string) (int, error)
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetInt(ctx context.Context, key string, v int) error
	SetBytes(ctx context.Context, key string, b []byte) error
}

// Store owns every game type's LevelState and GameProgress. Each
// mutation is written through to the KV immediately; write failures are
// logged and otherwise ignored.
type Store struct {
	mu       sync.Mutex
	kv       KV
	log      *zap.Logger
	now      func() time.Time
	levels   map[gametype.GameType]LevelState
	progress map[gametype.GameType]GameProgress

	// lastAnswer is zero until the first answer of a session.
	lastAnswer time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for persistence warnings and level changes.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open loads all state from kv. Missing or malformed values fall back to
// defaults; Open never fails.
func Open(ctx context.Context, kv KV, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		log:      zap.NewNop(),
		now:      time.Now,
		levels:   make(map[gametype.GameType]LevelState),
		progress: make(map[gametype.GameType]GameProgress),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	for _, t := range gametype.All() {
		st := DefaultLevelState()
		if lvl, err := s.kv.GetInt(ctx, LevelKey(t)); err == nil && lvl >= 1 {
			st.Level = lvl
		}
		if sc, err := s.kv.GetInt(ctx, ScoreKey(t)); err == nil && sc >= 0 && sc < PointsRequired(st.Level) {
			st.Score = sc
		}
		s.levels[t] = st
		s.progress[t] = DefaultGameProgress()
	}

	raw, err := s.kv.GetBytes(ctx, KeyProgress)
	if err != nil {
		return
	}
	if err := validateDocument(raw); err != nil {
		s.log.Warn("discarding stored progress", zap.Error(err))
		return
	}
	var doc map[string]GameProgress
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("discarding stored progress", zap.Error(err))
		return
	}
	for id, gp := range doc {
		t, err := gametype.Parse(id)
		if err != nil {
			s.log.Debug("ignoring progress for unknown game type", zap.String("id", id))
			continue
		}
		s.progress[t] = gp
	}
}

// BeginSession forgets the previous answer time, so the first answer of
// the new session adds no elapsed time.
func (s *Store) BeginSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAnswer = time.Time{}
}

// RecordAnswer applies one answer to t's level state and statistics and
// persists both.
func (s *Store) RecordAnswer(ctx context.Context, t gametype.GameType, correct bool) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.levelState(t)
	after := before.Apply(correct)
	s.levels[t] = after

	now := s.now()
	var elapsed time.Duration
	if !s.lastAnswer.IsZero() {
		elapsed = max(0, now.Sub(s.lastAnswer))
	}
	s.lastAnswer = now

	gp := s.gameProgress(t)
	gp.TotalProblems++
	if correct {
		gp.CorrectAnswers++
		gp.StreakCount++
	} else {
		gp.StreakCount = 0
	}
	gp.TimeSpent += elapsed.Seconds()
	gp.AverageResponseTime = gp.TimeSpent / float64(gp.TotalProblems)
	gp.LastPlayed = now.UTC()
	gp.HighestScore = max(gp.HighestScore, after.Score)
	gp.HighestDifficulty = max(gp.HighestDifficulty, after.Level)
	s.progress[t] = gp

	out := Outcome{Type: t, Correct: correct, Before: before, After: after, Elapsed: elapsed}
	if out.LeveledUp() || out.LeveledDown() {
		s.log.Info("level changed",
			zap.String("game", t.String()),
			zap.Int("from", before.Level),
			zap.Int("to", after.Level))
	}

	s.persist(ctx, t)
	return out
}

// Level returns t's current level.
func (s *Store) Level(t gametype.GameType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelState(t).Level
}

// Score returns t's current score.
func (s *Store) Score(t gametype.GameType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelState(t).Score
}

// State returns t's level and score together.
func (s *Store) State(t gametype.GameType) LevelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelState(t)
}

// LevelProgress is the fraction of the current level completed, in [0, 1].
func (s *Store) LevelProgress(t gametype.GameType) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelState(t).Fraction()
}

// Progress returns t's statistics.
func (s *Store) Progress(t gametype.GameType) GameProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameProgress(t)
}

// TotalProgress aggregates statistics across all game types: counts and
// time are summed, highs and lastPlayed take the maximum, and
// averageResponseTime is total time over total problems.
func (s *Store) TotalProgress() GameProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := DefaultGameProgress()
	for _, t := range gametype.All() {
		gp := s.gameProgress(t)
		total.TotalProblems += gp.TotalProblems
		total.CorrectAnswers += gp.CorrectAnswers
		total.TimeSpent += gp.TimeSpent
		total.HighestScore = max(total.HighestScore, gp.HighestScore)
		total.HighestDifficulty = max(total.HighestDifficulty, gp.HighestDifficulty)
		total.StreakCount = max(total.StreakCount, gp.StreakCount)
		if gp.LastPlayed.After(total.LastPlayed) {
			total.LastPlayed = gp.LastPlayed
		}
	}
	if total.TotalProblems > 0 {
		total.AverageResponseTime = total.TimeSpent / float64(total.TotalProblems)
	}
	return total
}

// Entries returns every game type's state in display order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(gametype.All()))
	for _, t := range gametype.All() {
		out = append(out, Entry{Type: t, State: s.levelState(t), Progress: s.gameProgress(t)})
	}
	return out
}

// LevelText formats t's header, e.g. "Level 2 • 5/20".
func (s *Store) LevelText(lang i18n.Language, t gametype.GameType) string {
	st := s.State(t)
	return i18n.LevelScore(lang, st.Level, st.Score, PointsRequired(st.Level))
}

// Reset restores t's defaults and persists them.
func (s *Store) Reset(ctx context.Context, t gametype.GameType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[t] = DefaultLevelState()
	s.progress[t] = DefaultGameProgress()
	s.persist(ctx, t)
}

// ResetAll resets every game type.
func (s *Store) ResetAll(ctx context.Context) {
	for _, t := range gametype.All() {
		s.Reset(ctx, t)
	}
}

// Language returns the persisted UI language, System when unset.
func (s *Store) Language(ctx context.Context) i18n.Language {
	b, err := s.kv.GetBytes(ctx, KeyLanguage)
	if err != nil {
		return i18n.System
	}
	return i18n.ParseLanguage(string(b))
}

// SetLanguage persists the UI language.
func (s *Store) SetLanguage(ctx context.Context, l i18n.Language) error {
	return s.kv.SetBytes(ctx, KeyLanguage, []byte(l))
}

func (s *Store) levelState(t gametype.GameType) LevelState {
	if st, ok := s.levels[t]; ok {
		return st
	}
	return DefaultLevelState()
}

func (s *Store) gameProgress(t gametype.GameType) GameProgress {
	if gp, ok := s.progress[t]; ok {
		return gp
	}
	return DefaultGameProgress()
}

// persist writes t's level, score and the whole progress document.
// Must be called with s.mu held.
func (s *Store) persist(ctx context.Context, t gametype.GameType) {
	st := s.levelState(t)
	err := errors.Join(
		s.kv.SetInt(ctx, ScoreKey(t), st.Score),
		s.kv.SetInt(ctx, LevelKey(t), st.Level),
	)

	doc := make(map[string]GameProgress, len(s.progress))
	for gt, gp := range s.progress {
		doc[gt.String()] = gp
	}
	raw, mErr := json.Marshal(doc)
	if mErr != nil {
		err = errors.Join(err, mErr)
	} else {
		err = errors.Join(err, s.kv.SetBytes(ctx, KeyProgress, raw))
	}

	if err != nil {
		s.log.Warn("persist progress", zap.String("game", t.String()), zap.Error(err))
	}
}
