package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MathCheckValidator independently recomputes the answer from the
// question text, so what the player sees always agrees with the answer
// that will be graded.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p Problem) *ValidationError {
	computed, err := computeAnswer(p.Text())
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot compute %q: %v", p.Text(), err),
			Retryable: true,
		}
	}
	if computed != p.Answer() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d for %q but problem answers %d", computed, p.Text(), p.Answer()),
			Retryable: true,
		}
	}
	return nil
}

var (
	// Decimal arithmetic: "12.34 + 5.06"
	decimalArithRe = regexp.MustCompile(`^(\d+\.\d{2}) ([+\-]) (\d+\.\d{2})$`)

	// Fraction value: "7/4"
	fractionRe = regexp.MustCompile(`^(\d+)/(\d+)$`)

	// Integer arithmetic and comparison: "12 × 3", "7 ? 9"
	intArithRe = regexp.MustCompile(`^(\d+) ([+\-×÷?]) (\d+)$`)
)

var errNotComputable = errors.New("not computable")

// computeAnswer extracts the expression from question text and evaluates it
// the same way Problem.Answer does.
func computeAnswer(text string) (int, error) {
	text = strings.TrimSpace(text)

	if m := decimalArithRe.FindStringSubmatch(text); m != nil {
		a, err := parseHundredths(m[1])
		if err != nil {
			return 0, err
		}
		b, err := parseHundredths(m[3])
		if err != nil {
			return 0, err
		}
		if m[2] == "-" {
			return a - b, nil
		}
		return a + b, nil
	}

	if m := fractionRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		if d == 0 {
			return 0, fmt.Errorf("zero denominator")
		}
		return n * 100 / d, nil
	}

	if m := intArithRe.FindStringSubmatch(text); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[3])
		switch m[2] {
		case "+":
			return a + b, nil
		case "-":
			return a - b, nil
		case "×":
			return a * b, nil
		case "÷":
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return a / b, nil
		case "?":
			if a == b {
				return 0, fmt.Errorf("equal operands")
			}
			if a > b {
				return 1, nil
			}
			return 0, nil
		}
	}

	return 0, errNotComputable
}

// parseHundredths parses a number with up to two decimals into hundredths
// without going through floating point.
func parseHundredths(s string) (int, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		if strings.Trim(frac[2:], "0") != "" {
			return 0, fmt.Errorf("more than two decimals in %q", s)
		}
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.Atoi(whole)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	f, err := strconv.Atoi(frac)
	if err != nil || strings.HasPrefix(frac, "-") || strings.HasPrefix(frac, "+") {
		return 0, fmt.Errorf("invalid decimals in %q", s)
	}
	v := w*100 + f
	if neg {
		v = -v
	}
	return v, nil
}
