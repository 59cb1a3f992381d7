package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/happymath/internal/gametype"
)

// Kind tags the variant a Problem holds.
type Kind int

const (
	// KindBasic covers addition, subtraction, multiplication and division.
	KindBasic Kind = iota
	// KindComparison asks which operand is greater.
	KindComparison
	// KindFraction asks for numerator/denominator as a decimal.
	KindFraction
	// KindDecimal adds or subtracts two numbers with two decimal places.
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindComparison:
		return "comparison"
	case KindFraction:
		return "fraction"
	case KindDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindOf returns the variant used for game type t.
func KindOf(t gametype.GameType) Kind {
	switch t {
	case gametype.Comparison:
		return KindComparison
	case gametype.Fractions:
		return KindFraction
	case gametype.Decimals:
		return KindDecimal
	default:
		return KindBasic
	}
}

// DecimalOp is the operation of a decimal problem.
type DecimalOp string

const (
	OpAdd DecimalOp = "add"
	OpSub DecimalOp = "sub"
)

// Comparison answers.
const (
	GreaterThan = ">"
	LessThan    = "<"
)

// Problem is a single generated question.
//
// Operand meaning depends on Kind:
//   - KindBasic, KindComparison: plain integers
//   - KindFraction: First is the numerator, Second the denominator
//   - KindDecimal: hundredths of a unit (1234 is 12.34)
type Problem struct {
	Kind   Kind
	Type   gametype.GameType
	Level  int
	First  int
	Second int

	// Op is set for KindDecimal only.
	Op DecimalOp
}

// MaxResult is the upper bound for answers of basic problems at p's level.
func (p Problem) MaxResult() int { return MaxResult(p.Level) }

// MaxResult returns level × 10.
func MaxResult(level int) int { return level * 10 }

// Answer returns the correct answer as an integer. Comparison problems
// answer 1 for ">" and 0 for "<". Fractions and decimals are in hundredths.
func (p Problem) Answer() int {
	switch p.Kind {
	case KindComparison:
		if p.First > p.Second {
			return 1
		}
		return 0
	case KindFraction:
		if p.Second == 0 {
			return 0
		}
		return p.First * 100 / p.Second
	case KindDecimal:
		if p.Op == OpSub {
			return p.First - p.Second
		}
		return p.First + p.Second
	}

	switch p.Type {
	case gametype.Subtraction:
		return p.First - p.Second
	case gametype.Multiplication:
		return p.First * p.Second
	case gametype.Division:
		if p.Second == 0 {
			return 0
		}
		return p.First / p.Second
	default:
		return p.First + p.Second
	}
}

// AnswerText returns the canonical answer as displayed on an option.
func (p Problem) AnswerText() string {
	return p.format(p.Answer())
}

// Text returns the question as shown to the player, e.g. "7 + 5".
func (p Problem) Text() string {
	switch p.Kind {
	case KindComparison:
		return fmt.Sprintf("%d ? %d", p.First, p.Second)
	case KindFraction:
		return fmt.Sprintf("%d/%d", p.First, p.Second)
	case KindDecimal:
		sym := "+"
		if p.Op == OpSub {
			sym = "-"
		}
		return fmt.Sprintf("%s %s %s", Hundredths(p.First), sym, Hundredths(p.Second))
	}
	return fmt.Sprintf("%d %s %d", p.First, operatorSymbol(p.Type), p.Second)
}

// format renders an answer value the way options display it.
func (p Problem) format(v int) string {
	switch p.Kind {
	case KindComparison:
		if v == 1 {
			return GreaterThan
		}
		return LessThan
	case KindFraction, KindDecimal:
		return Hundredths(v)
	default:
		return strconv.Itoa(v)
	}
}

// Hundredths formats v/100 with exactly two decimals.
func Hundredths(v int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func operatorSymbol(t gametype.GameType) string {
	switch t {
	case gametype.Subtraction:
		return "-"
	case gametype.Multiplication:
		return "×"
	case gametype.Division:
		return "÷"
	default:
		return "+"
	}
}
