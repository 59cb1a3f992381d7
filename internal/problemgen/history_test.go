package problemgen

import (
	"testing"

	"github.com/abhisek/happymath/internal/gametype"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		gt    gametype.GameType
		level int
		want  int
	}{
		{gametype.Addition, 1, 10},
		{gametype.Division, 4, 40},
		{gametype.Decimals, 0, 10},
		{gametype.Comparison, 1, 2},
		{gametype.Comparison, 9, 2},
	}
	for _, tc := range tests {
		if got := Capacity(tc.gt, tc.level); got != tc.want {
			t.Errorf("Capacity(%s, %d) = %d, want %d", tc.gt, tc.level, got, tc.want)
		}
	}
}

func TestHistory_SeenAndExhaust(t *testing.T) {
	h := NewHistory()
	gt := gametype.Comparison

	if h.Seen(gt, 1, 1) {
		t.Fatal("empty history should not report seen")
	}
	h.Record(gt, 1, 1)
	if !h.Seen(gt, 1, 1) {
		t.Fatal("recorded answer should be seen")
	}
	if h.Seen(gt, 2, 1) {
		t.Fatal("keys are per level")
	}

	h.Record(gt, 1, 0)
	if !h.Exhausted(gt, 1) {
		t.Fatal("two comparison answers exhaust the key")
	}
	if h.Seen(gt, 1, 1) {
		t.Fatal("exhausted key disables the check")
	}

	h.ResetAll()
	if h.Len(gt, 1) != 0 {
		t.Fatal("ResetAll should clear every key")
	}
}

func TestHistory_RecordIdempotent(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 5; i++ {
		h.Record(gametype.Addition, 1, 7)
	}
	if got := h.Len(gametype.Addition, 1); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}
