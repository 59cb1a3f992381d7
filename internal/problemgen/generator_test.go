package problemgen

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/happymath/internal/gametype"
)

func newTestGenerator(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), DefaultConfig())
}

func TestGenerate_RangesAllTypes(t *testing.T) {
	g := newTestGenerator(1)

	for _, gt := range gametype.All() {
		for level := 1; level <= 8; level++ {
			for i := 0; i < 200; i++ {
				p := g.Generate(nil, gt, level)
				if p.Type != gt || p.Level != level || p.Kind != KindOf(gt) {
					t.Fatalf("%s L%d: got type=%s level=%d kind=%s", gt, level, p.Type, p.Level, p.Kind)
				}
				if err := Validate(p, DefaultConfig().Validators); err != nil {
					t.Fatalf("%s L%d: %q failed validation: %v", gt, level, p.Text(), err)
				}
				if gt.IsBasic() {
					if a := p.Answer(); a < 0 || a > level*10 {
						t.Fatalf("%s L%d: answer %d outside [0, %d]", gt, level, a, level*10)
					}
				}
			}
		}
	}
}

func TestGenerate_Division_Exact(t *testing.T) {
	g := newTestGenerator(2)
	for level := 1; level <= 10; level++ {
		for i := 0; i < 300; i++ {
			p := g.Generate(nil, gametype.Division, level)
			if p.Second < 1 {
				t.Fatalf("divisor %d < 1", p.Second)
			}
			if p.First%p.Second != 0 {
				t.Fatalf("%d mod %d != 0", p.First, p.Second)
			}
		}
	}
}

func TestGenerate_Fraction_Formula(t *testing.T) {
	g := newTestGenerator(3)
	for level := 1; level <= 10; level++ {
		for i := 0; i < 300; i++ {
			p := g.Generate(nil, gametype.Fractions, level)
			if p.Second < 2 || p.Second > min(10, level+2) {
				t.Fatalf("L%d: denominator %d out of range", level, p.Second)
			}
			if got, want := p.Answer(), p.First*100/p.Second; got != want {
				t.Fatalf("%d/%d: answer %d, want %d", p.First, p.Second, got, want)
			}
		}
	}
}

func TestGenerate_Decimal_NeverNegative(t *testing.T) {
	g := newTestGenerator(4)
	var adds, subs int
	for level := 1; level <= 5; level++ {
		for i := 0; i < 500; i++ {
			p := g.Generate(nil, gametype.Decimals, level)
			if p.Answer() < 0 {
				t.Fatalf("negative result for %q", p.Text())
			}
			switch p.Op {
			case OpAdd:
				adds++
			case OpSub:
				subs++
			default:
				t.Fatalf("unexpected op %q", p.Op)
			}
		}
	}
	if adds == 0 || subs == 0 {
		t.Errorf("expected both operations, got add=%d sub=%d", adds, subs)
	}
}

func TestGenerate_AdditionLevel2_SumBound(t *testing.T) {
	g := newTestGenerator(5)
	for i := 0; i < 1000; i++ {
		p := g.Generate(nil, gametype.Addition, 2)
		if p.First+p.Second > 20 {
			t.Fatalf("%d + %d exceeds 20", p.First, p.Second)
		}
		if p.First == 15 && p.Second > 5 {
			t.Fatalf("first=15 must force second <= 5, got %d", p.Second)
		}
	}
}

func TestGenerate_Comparison_NeverEqual(t *testing.T) {
	g := newTestGenerator(6)
	for i := 0; i < 500; i++ {
		p := g.Generate(nil, gametype.Comparison, 1)
		if p.First == p.Second {
			t.Fatalf("equal operands %d", p.First)
		}
		want := LessThan
		if p.First > p.Second {
			want = GreaterThan
		}
		if p.AnswerText() != want {
			t.Fatalf("%s: answer %q, want %q", p.Text(), p.AnswerText(), want)
		}
	}
}

func TestGenerate_LevelBelowOne(t *testing.T) {
	g := newTestGenerator(7)
	p := g.Generate(nil, gametype.Multiplication, 0)
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.First != 1 {
		t.Errorf("level 1 multiplication first factor = %d, want 1", p.First)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)
	for i := 0; i < 50; i++ {
		gt := gametype.All()[i%len(gametype.All())]
		pa := a.Generate(nil, gt, 3)
		pb := b.Generate(nil, gt, 3)
		if pa != pb {
			t.Fatalf("draw %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestGenerate_NoRepeatUntilExhausted(t *testing.T) {
	cfg := DefaultConfig()
	// A generous cap keeps the last draws of a nearly exhausted set from
	// falling back to a repeat by chance.
	cfg.MaxAttempts = 2000
	g := New(rand.New(rand.NewPCG(8, 8)), cfg)
	h := NewHistory()

	// Multiplication at level 1 has exactly 10 distinct answers.
	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		p := g.Generate(h, gametype.Multiplication, 1)
		if seen[p.Answer()] {
			t.Fatalf("draw %d repeated answer %d", i+1, p.Answer())
		}
		seen[p.Answer()] = true
	}
	if !h.Exhausted(gametype.Multiplication, 1) {
		t.Fatal("history should be exhausted after 10 distinct answers")
	}

	// The 11th draw has to repeat and must still be produced.
	p := g.Generate(h, gametype.Multiplication, 1)
	if !seen[p.Answer()] {
		t.Fatalf("11th answer %d was never seen before", p.Answer())
	}
}

func TestGenerate_ResetReenablesCheck(t *testing.T) {
	g := newTestGenerator(9)
	h := NewHistory()
	for i := 0; i < 10; i++ {
		g.Generate(h, gametype.Multiplication, 1)
	}
	h.Reset(gametype.Multiplication, 1)
	if h.Exhausted(gametype.Multiplication, 1) {
		t.Fatal("reset key should not be exhausted")
	}
	g.Generate(h, gametype.Multiplication, 1)
	if got := h.Len(gametype.Multiplication, 1); got != 1 {
		t.Errorf("Len after reset+draw = %d, want 1", got)
	}
}

type rejectAll struct{ calls int }

func (r *rejectAll) Name() string { return "reject-all" }

func (r *rejectAll) Validate(Problem) *ValidationError {
	r.calls++
	return &ValidationError{Validator: r.Name(), Message: "always fails", Retryable: true}
}

func TestGenerate_AttemptCap(t *testing.T) {
	v := &rejectAll{}
	g := New(rand.New(rand.NewPCG(10, 10)), Config{Validators: []Validator{v}, MaxAttempts: 5})

	p := g.Generate(nil, gametype.Addition, 1)
	if p.Type != gametype.Addition {
		t.Fatalf("unexpected type %s", p.Type)
	}
	if v.calls != 4 {
		t.Errorf("validator called %d times, want 4", v.calls)
	}
}

func TestNew_Defaults(t *testing.T) {
	g := New(nil, Config{})
	if g.rng == nil {
		t.Fatal("nil rng should be replaced")
	}
	if g.cfg.MaxAttempts != 100 || g.cfg.MaxDistractorAttempts != 200 {
		t.Errorf("limits = %d/%d, want 100/200", g.cfg.MaxAttempts, g.cfg.MaxDistractorAttempts)
	}
}
