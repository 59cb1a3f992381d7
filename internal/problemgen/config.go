package problemgen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// drawn problem. They execute in order; the first failure
	// rejects the draw.
	Validators []Validator

	// MaxAttempts bounds the redraws spent on validation failures and
	// repeated answers. The last draw is accepted once it is reached.
	MaxAttempts int

	// MaxDistractorAttempts bounds the random distractor search before
	// the remaining options are filled deterministically.
	MaxDistractorAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&RangeValidator{},
			&MathCheckValidator{},
		},
		MaxAttempts:           100,
		MaxDistractorAttempts: 200,
	}
}
