package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer compares the player's input against the problem's answer.
// Returns true if the answer is correct.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - For comparison: the symbol must match (">" or "<")
//   - For integers: leading zeros are ignored (e.g., "007" matches "7")
//   - For fractions and decimals: the value is compared in hundredths,
//     so "1.5" matches "1.50"; a fraction "n/d" is also accepted for
//     fraction problems and truncated the same way as the answer
func CheckAnswer(input string, p Problem) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	switch p.Kind {
	case KindComparison:
		return input == p.AnswerText()

	case KindFraction:
		if strings.Contains(input, "/") {
			num, den, err := parseFraction(input)
			if err != nil || den <= 0 {
				return false
			}
			return int(num*100/den) == p.Answer()
		}
		v, err := parseHundredths(input)
		return err == nil && v == p.Answer()

	case KindDecimal:
		v, err := parseHundredths(input)
		return err == nil && v == p.Answer()

	default:
		n, err := strconv.ParseInt(input, 10, 64)
		return err == nil && int(n) == p.Answer()
	}
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}
