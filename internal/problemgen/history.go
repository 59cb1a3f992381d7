package problemgen

import "github.com/abhisek/happymath/internal/gametype"

type historyKey struct {
	t     gametype.GameType
	level int
}

// History remembers which answers were already produced for each
// (game type, level) pair so the generator can avoid repeats.
//
// A History is owned by a single session and is not safe for concurrent use.
type History struct {
	seen map[historyKey]map[int]struct{}
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{seen: make(map[historyKey]map[int]struct{})}
}

// Capacity is the number of distinct answers tracked for a key before the
// uniqueness check switches off.
func Capacity(t gametype.GameType, level int) int {
	if t == gametype.Comparison {
		return 2
	}
	if level < 1 {
		level = 1
	}
	return level * 10
}

// Seen reports whether answer should be treated as a repeat. Once the key
// is exhausted nothing counts as a repeat.
func (h *History) Seen(t gametype.GameType, level, answer int) bool {
	if h.Exhausted(t, level) {
		return false
	}
	_, ok := h.seen[historyKey{t, level}][answer]
	return ok
}

// Record adds answer to the key's set.
func (h *History) Record(t gametype.GameType, level, answer int) {
	k := historyKey{t, level}
	set, ok := h.seen[k]
	if !ok {
		set = make(map[int]struct{})
		h.seen[k] = set
	}
	set[answer] = struct{}{}
}

// Len returns the number of distinct answers recorded for the key.
func (h *History) Len(t gametype.GameType, level int) int {
	return len(h.seen[historyKey{t, level}])
}

// Exhausted reports whether the key has reached its capacity.
func (h *History) Exhausted(t gametype.GameType, level int) bool {
	return h.Len(t, level) >= Capacity(t, level)
}

// Reset forgets everything recorded for the key.
func (h *History) Reset(t gametype.GameType, level int) {
	delete(h.seen, historyKey{t, level})
}

// ResetAll forgets every key.
func (h *History) ResetAll() {
	clear(h.seen)
}
