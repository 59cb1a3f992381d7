// Package session runs one game at a time: it shows a problem, grades
// the answer, reports it to the progress store and moves on to the next
// problem after a short feedback delay.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/problemgen"
	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/store"
)

// DefaultFeedbackDelay is how long the graded answer stays on screen.
const DefaultFeedbackDelay = time.Second

// ErrNotAwaitingAnswer is returned by CheckAnswer outside PhaseAwaitingAnswer.
var ErrNotAwaitingAnswer = errors.New("no problem is awaiting an answer")

// Recorder receives graded answers. *progress.Store implements it.
type Recorder interface {
	BeginSession()
	RecordAnswer(ctx context.Context, t gametype.GameType, correct bool) progress.Outcome
	Level(t gametype.GameType) int
}

// Timer is a pending deferred call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Controller.
type Option func(*Controller)

// WithEventRepo records every graded answer as an answer event.
func WithEventRepo(r store.EventRepo) Option {
	return func(c *Controller) { c.events = r }
}

// WithScheduler replaces time.AfterFunc.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFeedbackDelay sets the pause between grading and the next problem.
func WithFeedbackDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithOnChange registers a listener called with a snapshot after every
// state change. It runs outside the controller lock, possibly on the
// scheduler's goroutine.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller is the game state machine:
//
//	Idle -> AwaitingAnswer -> Resolved -> (delay) -> AwaitingAnswer ...
//
// It is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	gen      *problemgen.Generator
	rec      Recorder
	events   store.EventRepo
	sched    Scheduler
	now      func() time.Time
	log      *zap.Logger
	delay    time.Duration
	onChange func(State)

	history *problemgen.History
	state   State
	shownAt time.Time
	timer   Timer

	// epoch increments on every start and stop; deferred work from an
	// older epoch is dropped.
	epoch uint64
}

// New creates an idle Controller.
func New(gen *problemgen.Generator, rec Recorder, opts ...Option) *Controller {
	c := &Controller{
		gen:     gen,
		rec:     rec,
		sched:   realScheduler{},
		now:     time.Now,
		log:     zap.NewNop(),
		delay:   DefaultFeedbackDelay,
		history: problemgen.NewHistory(),
		state:   State{Phase: PhaseIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartGame begins a new session of type t and shows the first problem.
// A level below 1 means "the player's current level". Any running game
// is replaced.
func (c *Controller) StartGame(t gametype.GameType, level int) State {
	c.mu.Lock()
	c.stopTimerLocked()
	c.epoch++

	if level < 1 {
		level = c.rec.Level(t)
	}
	c.rec.BeginSession()
	c.history.ResetAll()

	c.state = State{
		SessionID: uuid.NewString(),
		Type:      t,
		Level:     level,
	}
	c.showNextLocked()

	c.log.Debug("game started",
		zap.String("session", c.state.SessionID),
		zap.String("game", t.String()),
		zap.Int("level", level))

	snap := c.state.clone()
	c.mu.Unlock()
	c.emit(snap)
	return snap
}

// CheckAnswer grades answer against the current problem, reports it to
// the recorder and schedules the next problem. It returns
// ErrNotAwaitingAnswer, changing nothing, when no problem is awaiting an
// answer.
func (c *Controller) CheckAnswer(ctx context.Context, answer string) (bool, error) {
	c.mu.Lock()
	if c.state.Phase != PhaseAwaitingAnswer || !c.state.HasProblem {
		c.mu.Unlock()
		return false, ErrNotAwaitingAnswer
	}

	p := c.state.Problem
	correct := problemgen.CheckAnswer(answer, p)
	outcome := c.rec.RecordAnswer(ctx, p.Type, correct)
	responseTime := c.now().Sub(c.shownAt)

	c.state.Phase = PhaseResolved
	c.state.Selected = answer
	c.state.Correct = correct
	c.state.Outcome = outcome
	c.state.Answered++
	if correct {
		c.state.CorrectCount++
	}

	if c.events != nil {
		err := c.events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:     c.state.SessionID,
			GameType:      p.Type.String(),
			Level:         p.Level,
			Question:      p.Text(),
			CorrectAnswer: p.AnswerText(),
			ChosenAnswer:  answer,
			Correct:       correct,
			ResponseMs:    responseTime.Milliseconds(),
		})
		if err != nil {
			c.log.Warn("append answer event", zap.Error(err))
		}
	}
	c.log.Debug("answer graded",
		zap.String("question", p.Text()),
		zap.String("answer", answer),
		zap.Bool("correct", correct),
		zap.Duration("response_time", responseTime))

	epoch := c.epoch
	c.timer = c.sched.AfterFunc(c.delay, func() { c.advance(epoch) })

	snap := c.state.clone()
	c.mu.Unlock()
	c.emit(snap)
	return correct, nil
}

// advance shows the next problem if the session that scheduled it is
// still the current one.
func (c *Controller) advance(epoch uint64) {
	c.mu.Lock()
	if epoch != c.epoch || c.state.Phase != PhaseResolved {
		c.mu.Unlock()
		return
	}
	c.timer = nil

	if next := c.state.Outcome.After.Level; next >= 1 && next != c.state.Level {
		c.history.Reset(c.state.Type, c.state.Level)
		c.state.Level = next
	}
	c.showNextLocked()

	snap := c.state.clone()
	c.mu.Unlock()
	c.emit(snap)
}

// Stop ends the current game. A pending next problem is discarded.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state.Phase == PhaseIdle {
		c.mu.Unlock()
		return
	}
	c.stopTimerLocked()
	c.epoch++
	c.state = State{Phase: PhaseIdle}
	snap := c.state.clone()
	c.mu.Unlock()
	c.emit(snap)
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// showNextLocked generates a problem at the current level and waits for
// an answer. Must be called with c.mu held.
func (c *Controller) showNextLocked() {
	p := c.gen.Generate(c.history, c.state.Type, c.state.Level)
	c.state.Problem = p
	c.state.Options = c.gen.Options(p)
	c.state.HasProblem = true
	c.state.Selected = ""
	c.state.Correct = false
	c.state.Phase = PhaseAwaitingAnswer
	c.shownAt = c.now()
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) emit(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
