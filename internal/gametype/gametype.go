// Package gametype defines the closed set of arithmetic mini-games.
package gametype

import (
	"errors"
	"fmt"
	"strings"
)

// GameType identifies one mini-game. The string value is stable and is
// used in persistence keys, so it must never change.
type GameType string

const (
	Addition       GameType = "addition"
	Subtraction    GameType = "subtraction"
	Multiplication GameType = "multiplication"
	Division       GameType = "division"
	Comparison     GameType = "comparison"
	Fractions      GameType = "fractions"
	Decimals       GameType = "decimals"
)

// ErrUnknown is returned by Parse for an unrecognized game type.
var ErrUnknown = errors.New("unknown game type")

var all = []GameType{
	Addition,
	Subtraction,
	Multiplication,
	Division,
	Comparison,
	Fractions,
	Decimals,
}

var symbols = map[GameType]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "×",
	Division:       "÷",
	Comparison:     "<>",
	Fractions:      "½",
	Decimals:       ".5",
}

// All returns every game type in display order.
func All() []GameType {
	out := make([]GameType, len(all))
	copy(out, all)
	return out
}

// Parse returns the game type with the given ID (case-insensitive).
func Parse(s string) (GameType, error) {
	id := GameType(strings.ToLower(strings.TrimSpace(s)))
	if id.Valid() {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Valid reports whether t is one of the known game types.
func (t GameType) Valid() bool {
	_, ok := symbols[t]
	return ok
}

// String returns the stable ID.
func (t GameType) String() string { return string(t) }

// Symbol returns the short glyph shown next to the game title.
func (t GameType) Symbol() string { return symbols[t] }

// TitleKey is the localization key for the game title.
func (t GameType) TitleKey() string { return "game." + string(t) + ".title" }

// IsBasic reports whether t produces plain integer problems.
func (t GameType) IsBasic() bool {
	switch t {
	case Addition, Subtraction, Multiplication, Division:
		return true
	}
	return false
}
