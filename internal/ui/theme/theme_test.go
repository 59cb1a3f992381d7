package theme

import (
	"testing"

	"github.com/abhisek/happymath/internal/gametype"
)

func TestGameColorDistinct(t *testing.T) {
	seen := make(map[any]gametype.GameType)
	for _, g := range gametype.All() {
		c := GameColor(g)
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share a color", prev, g)
		}
		seen[c] = g
	}
}

func TestGameColorUnknown(t *testing.T) {
	if GameColor(gametype.GameType("nope")) != Primary {
		t.Error("unknown game type should use the primary color")
	}
}
