package problemgen

import (
	"fmt"

	"github.com/abhisek/happymath/internal/gametype"
)

// StructuralValidator checks that the problem is well formed: the kind
// matches the game type and nothing can divide by zero.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p Problem) *ValidationError {
	if !p.Type.Valid() {
		return v.fail(fmt.Sprintf("unknown game type %q", p.Type), false)
	}
	if p.Kind != KindOf(p.Type) {
		return v.fail(fmt.Sprintf("kind %s does not match game type %s", p.Kind, p.Type), false)
	}
	if p.Level < 1 {
		return v.fail("level must be at least 1", false)
	}

	switch p.Kind {
	case KindBasic:
		if p.Type == gametype.Division && p.Second == 0 {
			return v.fail("divisor is zero", true)
		}
	case KindComparison:
		if p.First == p.Second {
			return v.fail("comparison operands are equal", true)
		}
	case KindFraction:
		if p.Second < 2 {
			return v.fail("denominator must be at least 2", true)
		}
	case KindDecimal:
		if p.Op != OpAdd && p.Op != OpSub {
			return v.fail(fmt.Sprintf("unknown decimal operation %q", p.Op), true)
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string, retryable bool) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: retryable}
}
