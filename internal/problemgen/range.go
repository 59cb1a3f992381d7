package problemgen

import (
	"fmt"

	"github.com/abhisek/happymath/internal/gametype"
)

// RangeValidator checks operands and answer against the bounds of the
// problem's level.
type RangeValidator struct{}

func (v *RangeValidator) Name() string { return "range" }

func (v *RangeValidator) Validate(p Problem) *ValidationError {
	limit := p.MaxResult()
	ans := p.Answer()

	switch p.Type {
	case gametype.Addition, gametype.Subtraction:
		if p.First < 0 || p.Second < 0 || p.First > limit || p.Second > limit {
			return v.fail(fmt.Sprintf("operands %d, %d outside [0, %d]", p.First, p.Second, limit))
		}
		if ans < 0 || ans > limit {
			return v.fail(fmt.Sprintf("result %d outside [0, %d]", ans, limit))
		}
	case gametype.Multiplication:
		if p.First < 1 || p.First > p.Level || p.Second < 1 || p.Second > 10 {
			return v.fail(fmt.Sprintf("factors %d, %d outside [1, %d] x [1, 10]", p.First, p.Second, p.Level))
		}
	case gametype.Division:
		if p.Second < 1 || p.Second > p.Level {
			return v.fail(fmt.Sprintf("divisor %d outside [1, %d]", p.Second, p.Level))
		}
		if p.First%p.Second != 0 {
			return v.fail(fmt.Sprintf("%d is not divisible by %d", p.First, p.Second))
		}
		if p.First > limit {
			return v.fail(fmt.Sprintf("dividend %d exceeds %d", p.First, limit))
		}
	case gametype.Comparison:
		if p.First < 0 || p.Second < 0 || p.First > limit || p.Second > limit {
			return v.fail(fmt.Sprintf("operands %d, %d outside [0, %d]", p.First, p.Second, limit))
		}
	case gametype.Fractions:
		maxDen := min(10, p.Level+2)
		if p.Second > maxDen {
			return v.fail(fmt.Sprintf("denominator %d exceeds %d", p.Second, maxDen))
		}
		if p.First < 1 || p.First > p.Level*p.Second {
			return v.fail(fmt.Sprintf("numerator %d outside [1, %d]", p.First, p.Level*p.Second))
		}
	case gametype.Decimals:
		if p.First <= 0 || p.Second <= 0 {
			return v.fail("decimal operands must be positive")
		}
		if ans < 0 {
			return v.fail(fmt.Sprintf("negative result %s", Hundredths(ans)))
		}
	}
	return nil
}

func (v *RangeValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
