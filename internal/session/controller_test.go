package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/problemgen"
	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/store"
)

// fakeScheduler queues deferred calls until Fire is called.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []*fakeTimer
	delays  []time.Duration
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{f: f}
	s.pending = append(s.pending, t)
	s.delays = append(s.delays, d)
	return t
}

// Fire runs every queued call, including stopped ones, the way a timer
// that raced with Stop would.
func (s *fakeScheduler) Fire() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, t := range pending {
		t.f()
	}
}

type fakeEvents struct {
	store.EventRepo
	appended []store.AnswerEventData
	err      error
}

func (f *fakeEvents) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	f.appended = append(f.appended, data)
	return f.err
}

type testRig struct {
	ctrl   *Controller
	sched  *fakeScheduler
	rec    *progress.Store
	events *fakeEvents
	states []State
}

func newRig(t *testing.T) *testRig {
	t.Helper()
	r := &testRig{
		sched:  &fakeScheduler{},
		rec:    progress.Open(context.Background(), store.NewMemoryKV()),
		events: &fakeEvents{},
	}
	gen := problemgen.New(rand.New(rand.NewPCG(1, 2)), problemgen.DefaultConfig())
	r.ctrl = New(gen, r.rec,
		WithScheduler(r.sched),
		WithEventRepo(r.events),
		WithOnChange(func(s State) { r.states = append(r.states, s) }),
	)
	return r
}

func wrongAnswer(s State) string {
	for _, o := range s.Options {
		if o.Text != s.Problem.AnswerText() {
			return o.Text
		}
	}
	return "nope"
}

func TestController_StartsIdle(t *testing.T) {
	r := newRig(t)
	s := r.ctrl.State()
	if s.Phase != PhaseIdle || s.HasProblem {
		t.Fatalf("new controller state = %+v, want idle without problem", s)
	}
	if _, err := r.ctrl.CheckAnswer(context.Background(), "1"); !errors.Is(err, ErrNotAwaitingAnswer) {
		t.Fatalf("CheckAnswer while idle: err = %v, want ErrNotAwaitingAnswer", err)
	}
}

func TestController_StartGame(t *testing.T) {
	r := newRig(t)
	s := r.ctrl.StartGame(gametype.Addition, 0)

	if s.Phase != PhaseAwaitingAnswer {
		t.Fatalf("phase = %s, want awaiting-answer", s.Phase)
	}
	if !s.HasProblem || s.Problem.Type != gametype.Addition || s.Level != 1 {
		t.Fatalf("unexpected problem %+v at level %d", s.Problem, s.Level)
	}
	if len(s.Options) != problemgen.OptionCount {
		t.Fatalf("got %d options", len(s.Options))
	}
	if s.SessionID == "" {
		t.Fatal("expected a session ID")
	}
	if len(r.states) != 1 {
		t.Fatalf("listener called %d times, want 1", len(r.states))
	}
}

func TestController_CorrectAnswerFlow(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	first := r.ctrl.StartGame(gametype.Multiplication, 0)

	correct, err := r.ctrl.CheckAnswer(ctx, first.Problem.AnswerText())
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !correct {
		t.Fatal("expected correct")
	}

	s := r.ctrl.State()
	if s.Phase != PhaseResolved || s.Selected != first.Problem.AnswerText() || !s.Correct {
		t.Fatalf("resolved state = %+v", s)
	}
	if r.rec.Score(gametype.Multiplication) != 1 {
		t.Fatalf("score = %d, want 1", r.rec.Score(gametype.Multiplication))
	}
	if len(r.sched.delays) != 1 || r.sched.delays[0] != DefaultFeedbackDelay {
		t.Fatalf("scheduled delays = %v, want [1s]", r.sched.delays)
	}

	// Second answer while resolved is ignored.
	if _, err := r.ctrl.CheckAnswer(ctx, first.Problem.AnswerText()); !errors.Is(err, ErrNotAwaitingAnswer) {
		t.Fatalf("double submit: err = %v", err)
	}
	if r.rec.Score(gametype.Multiplication) != 1 {
		t.Fatal("double submit must not be recorded")
	}

	r.sched.Fire()
	s = r.ctrl.State()
	if s.Phase != PhaseAwaitingAnswer {
		t.Fatalf("after delay phase = %s", s.Phase)
	}
	if s.Selected != "" || s.Correct {
		t.Fatalf("selection not cleared: %+v", s)
	}
	if s.Answered != 1 || s.CorrectCount != 1 {
		t.Fatalf("counters = %d/%d, want 1/1", s.CorrectCount, s.Answered)
	}
}

func TestController_WrongAnswer(t *testing.T) {
	r := newRig(t)
	s := r.ctrl.StartGame(gametype.Subtraction, 0)

	correct, err := r.ctrl.CheckAnswer(context.Background(), wrongAnswer(s))
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if correct {
		t.Fatal("expected wrong")
	}
	if got := r.ctrl.State(); got.Correct || got.Phase != PhaseResolved {
		t.Fatalf("state = %+v", got)
	}
	if p := r.rec.Progress(gametype.Subtraction); p.TotalProblems != 1 || p.CorrectAnswers != 0 {
		t.Fatalf("progress = %+v", p)
	}
}

func TestController_LevelUpUsesNewLevel(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	r.ctrl.StartGame(gametype.Division, 0)

	for i := 0; i < 10; i++ {
		s := r.ctrl.State()
		if _, err := r.ctrl.CheckAnswer(ctx, s.Problem.AnswerText()); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		r.sched.Fire()
	}

	s := r.ctrl.State()
	if s.Level != 2 || s.Problem.Level != 2 {
		t.Fatalf("after level up: state level %d, problem level %d, want 2", s.Level, s.Problem.Level)
	}
	if !s.Outcome.LeveledUp() {
		t.Fatal("last outcome should be a level up")
	}
}

func TestController_StopDropsPendingAdvance(t *testing.T) {
	r := newRig(t)
	s := r.ctrl.StartGame(gametype.Fractions, 0)
	if _, err := r.ctrl.CheckAnswer(context.Background(), s.Problem.AnswerText()); err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}

	r.ctrl.Stop()
	r.sched.Fire()

	got := r.ctrl.State()
	if got.Phase != PhaseIdle || got.HasProblem {
		t.Fatalf("deferred advance mutated a stopped session: %+v", got)
	}
}

func TestController_RestartDropsOldAdvance(t *testing.T) {
	r := newRig(t)
	s := r.ctrl.StartGame(gametype.Addition, 0)
	if _, err := r.ctrl.CheckAnswer(context.Background(), s.Problem.AnswerText()); err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}

	restarted := r.ctrl.StartGame(gametype.Comparison, 0)
	r.sched.Fire()

	got := r.ctrl.State()
	if got.SessionID != restarted.SessionID || got.Problem != restarted.Problem {
		t.Fatalf("old timer replaced the new session's problem")
	}
}

func TestController_AppendsEvents(t *testing.T) {
	r := newRig(t)
	s := r.ctrl.StartGame(gametype.Comparison, 0)
	if _, err := r.ctrl.CheckAnswer(context.Background(), s.Problem.AnswerText()); err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}

	if len(r.events.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(r.events.appended))
	}
	e := r.events.appended[0]
	if e.SessionID != s.SessionID || e.GameType != "comparison" || !e.Correct {
		t.Fatalf("event = %+v", e)
	}
	if e.Question != s.Problem.Text() || e.CorrectAnswer != s.Problem.AnswerText() {
		t.Fatalf("event question/answer = %q/%q", e.Question, e.CorrectAnswer)
	}
}

func TestController_EventErrorDoesNotFailAnswer(t *testing.T) {
	r := newRig(t)
	r.events.err = errors.New("db locked")
	s := r.ctrl.StartGame(gametype.Addition, 0)

	correct, err := r.ctrl.CheckAnswer(context.Background(), s.Problem.AnswerText())
	if err != nil || !correct {
		t.Fatalf("CheckAnswer = %v, %v; want true, nil", correct, err)
	}
}

func TestController_StateIsSnapshot(t *testing.T) {
	r := newRig(t)
	r.ctrl.StartGame(gametype.Addition, 0)

	s := r.ctrl.State()
	s.Options[0].Text = "mutated"
	if r.ctrl.State().Options[0].Text == "mutated" {
		t.Fatal("State must return a copy of the options")
	}
}

func TestController_RealTimer(t *testing.T) {
	changed := make(chan State, 8)
	gen := problemgen.New(rand.New(rand.NewPCG(3, 4)), problemgen.DefaultConfig())
	ctrl := New(gen, progress.Open(context.Background(), store.NewMemoryKV()),
		WithFeedbackDelay(10*time.Millisecond),
		WithOnChange(func(s State) { changed <- s }),
	)

	s := ctrl.StartGame(gametype.Addition, 1)
	<-changed
	if _, err := ctrl.CheckAnswer(context.Background(), s.Problem.AnswerText()); err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	<-changed

	select {
	case next := <-changed:
		if next.Phase != PhaseAwaitingAnswer {
			t.Fatalf("phase after delay = %s", next.Phase)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("next problem was never shown")
	}
}
