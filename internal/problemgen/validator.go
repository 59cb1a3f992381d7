package problemgen

import "fmt"

// Validator checks a drawn problem for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "range", "math-check".
	Name() string

	// Validate checks the problem and returns nil if it passes.
	Validate(p Problem) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether redrawing is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs validators in order and returns the first failure.
func Validate(p Problem, validators []Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}
