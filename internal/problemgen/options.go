package problemgen

import (
	"math"

	"github.com/abhisek/happymath/internal/gametype"
)

// OptionCount is the number of answer options for numeric problems.
const OptionCount = 4

// Option is one selectable answer.
type Option struct {
	Value int
	Text  string
}

// Options returns the answer options for p: the correct answer plus
// distinct distractors, shuffled. Comparison problems always get the
// fixed pair ">" then "<".
func (g *Generator) Options(p Problem) []Option {
	if p.Kind == KindComparison {
		return []Option{
			{Value: 1, Text: GreaterThan},
			{Value: 0, Text: LessThan},
		}
	}

	correct := p.Answer()
	lo, hi := distractorBounds(p)
	opts := make([]Option, 0, OptionCount)
	taken := make(map[int]bool, OptionCount)
	add := func(v int) {
		taken[v] = true
		opts = append(opts, Option{Value: v, Text: p.format(v)})
	}
	add(correct)

	for attempt := 0; len(opts) < OptionCount && attempt < g.cfg.MaxDistractorAttempts; attempt++ {
		v, ok := g.distractor(p, correct)
		if !ok || taken[v] {
			continue
		}
		add(v)
	}

	// Deterministic fill for inputs where random search keeps colliding.
	for step := 1; len(opts) < OptionCount; step++ {
		for _, v := range [2]int{correct + step, correct - step} {
			if len(opts) == OptionCount {
				break
			}
			if v < lo || (hi >= lo && v > hi) || taken[v] {
				continue
			}
			add(v)
		}
		if correct+step > hi && correct-step < lo && hi >= lo {
			// Range exhausted; widen upward so the set is always complete.
			hi = -1
		}
	}

	g.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}

// distractor draws one wrong-answer candidate. ok is false when the draw
// must be discarded.
func (g *Generator) distractor(p Problem, correct int) (int, bool) {
	limit := p.MaxResult()

	switch p.Type {
	case gametype.Addition, gametype.Subtraction:
		return clamp(correct+g.offset(5), 0, limit), true
	case gametype.Multiplication:
		return clamp(correct+g.offset(10), 0, limit), true
	case gametype.Division:
		return clamp(correct+g.offset(3), 1, limit), true
	case gametype.Fractions:
		v := correct + g.intIn(1, 5)
		return v, v > 0
	case gametype.Decimals:
		spread := float64(correct) * 0.1
		v := int(math.Trunc(float64(correct) + (g.rng.Float64()*2-1)*spread))
		return v, v >= 0
	}
	return 0, false
}

// offset returns a non-zero integer in [-n, -1] ∪ [1, n].
func (g *Generator) offset(n int) int {
	d := g.intIn(1, n)
	if g.rng.IntN(2) == 0 {
		return -d
	}
	return d
}

// distractorBounds returns the inclusive value range for options of p.
// hi < lo means there is no upper bound.
func distractorBounds(p Problem) (lo, hi int) {
	switch p.Type {
	case gametype.Addition, gametype.Subtraction, gametype.Multiplication:
		return 0, p.MaxResult()
	case gametype.Division:
		return 1, p.MaxResult()
	case gametype.Fractions:
		return 1, -1
	default:
		return 0, -1
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
