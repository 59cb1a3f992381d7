package problemgen

import (
	"testing"

	"github.com/abhisek/happymath/internal/gametype"
)

func TestCheckAnswer_Integer(t *testing.T) {
	p := Problem{Kind: KindBasic, Type: gametype.Multiplication, Level: 5, First: 6, Second: 7}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"43", false},
		{"", false},
		{"abc", false},
		{"42.0", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, p)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 6 × 7) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Comparison(t *testing.T) {
	p := Problem{Kind: KindComparison, Type: gametype.Comparison, Level: 1, First: 9, Second: 2}

	tests := []struct {
		input string
		want  bool
	}{
		{">", true},
		{" > ", true},
		{"<", false},
		{"1", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, p)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 9 ? 2) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Fraction(t *testing.T) {
	// 7/4 = 1.75
	p := Problem{Kind: KindFraction, Type: gametype.Fractions, Level: 2, First: 7, Second: 4}

	tests := []struct {
		input string
		want  bool
	}{
		{"1.75", true},
		{"1.750", true},
		{"7/4", true},
		{"14/8", true},
		{"1.7", false},
		{"7/0", false},
		{"1.751", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, p)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 7/4) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Decimal(t *testing.T) {
	// 12.50 - 3.25 = 9.25
	p := Problem{Kind: KindDecimal, Type: gametype.Decimals, Level: 1, First: 1250, Second: 325, Op: OpSub}

	tests := []struct {
		input string
		want  bool
	}{
		{"9.25", true},
		{"9.250", true},
		{" 9.25", true},
		{"9.2", false},
		{"925", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, p)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, %s) = %v, want %v", tc.input, p.Text(), got, tc.want)
		}
	}
}
