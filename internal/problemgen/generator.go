// Package problemgen generates level-appropriate arithmetic problems and
// the answer options shown alongside them.
package problemgen

import (
	"math/rand/v2"

	"github.com/abhisek/happymath/internal/gametype"
)

// Generator draws problems and distractors from an injected random source.
// Given the same source state it produces the same sequence.
type Generator struct {
	rng *rand.Rand
	cfg Config
}

// New creates a Generator. A nil rng is replaced by a randomly seeded one.
// Zero limits in cfg fall back to DefaultConfig values.
func New(rng *rand.Rand, cfg Config) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	def := DefaultConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.MaxDistractorAttempts <= 0 {
		cfg.MaxDistractorAttempts = def.MaxDistractorAttempts
	}
	return &Generator{rng: rng, cfg: cfg}
}

// Generate returns a problem of type t at level. Draws that fail
// validation or repeat an answer recorded in h are redrawn, up to
// MaxAttempts; after that the last draw is accepted. h may be nil to
// disable the repetition check. The accepted answer is recorded in h.
func (g *Generator) Generate(h *History, t gametype.GameType, level int) Problem {
	if level < 1 {
		level = 1
	}

	var p Problem
	for attempt := 1; ; attempt++ {
		p = g.draw(t, level)
		if attempt >= g.cfg.MaxAttempts {
			break
		}
		if err := Validate(p, g.cfg.Validators); err != nil {
			continue
		}
		if h == nil || !h.Seen(t, level, p.Answer()) {
			break
		}
	}

	if h != nil {
		h.Record(t, level, p.Answer())
	}
	return p
}

// draw produces one candidate that satisfies the per-type range rules.
func (g *Generator) draw(t gametype.GameType, level int) Problem {
	p := Problem{Kind: KindOf(t), Type: t, Level: level}
	limit := MaxResult(level)

	switch t {
	case gametype.Addition:
		for {
			p.First, p.Second = g.intIn(0, limit), g.intIn(0, limit)
			if p.First+p.Second <= limit {
				break
			}
		}

	case gametype.Subtraction:
		for {
			p.First, p.Second = g.intIn(0, limit), g.intIn(0, limit)
			if d := p.First - p.Second; d >= 0 && d <= limit {
				break
			}
		}

	case gametype.Multiplication:
		p.First = g.intIn(1, level)
		p.Second = g.intIn(1, 10)

	case gametype.Division:
		p.Second = g.intIn(1, level)
		p.First = p.Second * g.intIn(1, 10)
		if p.First > limit {
			p.First = limit - limit%p.Second
		}

	case gametype.Comparison:
		for {
			p.First, p.Second = g.intIn(0, limit), g.intIn(0, limit)
			if p.First != p.Second {
				break
			}
		}

	case gametype.Fractions:
		p.Second = g.intIn(2, min(10, level+2))
		p.First = g.intIn(1, level*p.Second)

	case gametype.Decimals:
		units := level * 100
		if g.rng.IntN(2) == 0 {
			p.Op = OpAdd
			p.First = g.intIn(1, units-1)
			p.Second = g.intIn(1, units-p.First)
		} else {
			p.Op = OpSub
			p.First = g.intIn(1, units)
			p.Second = g.intIn(1, p.First)
		}
		p.First = p.First*100 + g.intIn(0, 99)
		p.Second = p.Second*100 + g.intIn(0, 99)
		if p.Op == OpSub && p.Second > p.First {
			p.First, p.Second = p.Second, p.First
		}

	default:
		// Unknown types degrade to addition.
		return g.draw(gametype.Addition, level)
	}
	return p
}

// intIn returns a uniform integer in [lo, hi]. It returns lo when the
// range is empty.
func (g *Generator) intIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
