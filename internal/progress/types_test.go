package progress

import "testing"

func TestLevelState_Apply(t *testing.T) {
	tests := []struct {
		name    string
		start   LevelState
		correct bool
		want    LevelState
	}{
		{"correct adds point", LevelState{1, 3}, true, LevelState{1, 4}},
		{"level up at threshold", LevelState{1, 9}, true, LevelState{2, 0}},
		{"level 3 threshold is 30", LevelState{3, 29}, true, LevelState{4, 0}},
		{"wrong removes point", LevelState{2, 5}, false, LevelState{2, 4}},
		{"level down lands below threshold", LevelState{2, 0}, false, LevelState{1, 9}},
		{"level 4 down to 3", LevelState{4, 0}, false, LevelState{3, 29}},
		{"floor at level 1", LevelState{1, 0}, false, LevelState{1, 0}},
		{"level 1 score 1 to 0", LevelState{1, 1}, false, LevelState{1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.Apply(tc.correct); got != tc.want {
				t.Errorf("%+v.Apply(%v) = %+v, want %+v", tc.start, tc.correct, got, tc.want)
			}
		})
	}
}

func TestLevelState_TenCorrectThenOneWrong(t *testing.T) {
	s := DefaultLevelState()
	for i := 0; i < 10; i++ {
		s = s.Apply(true)
	}
	if s != (LevelState{2, 0}) {
		t.Fatalf("after 10 correct: %+v, want level 2 score 0", s)
	}
	s = s.Apply(false)
	if s != (LevelState{1, 9}) {
		t.Fatalf("after 1 wrong: %+v, want level 1 score 9", s)
	}
}

func TestLevelState_Fraction(t *testing.T) {
	tests := []struct {
		s    LevelState
		want float64
	}{
		{LevelState{1, 0}, 0},
		{LevelState{1, 5}, 0.5},
		{LevelState{2, 5}, 0.25},
		{LevelState{1, 15}, 1},
		{LevelState{1, -3}, 0},
	}
	for _, tc := range tests {
		if got := tc.s.Fraction(); got != tc.want {
			t.Errorf("%+v.Fraction() = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestGameProgress_Accuracy(t *testing.T) {
	if got := DefaultGameProgress().AccuracyPercentage(); got != 0 {
		t.Errorf("empty accuracy = %v, want 0", got)
	}
	gp := GameProgress{TotalProblems: 8, CorrectAnswers: 6}
	if got := gp.AccuracyPercentage(); got != 75 {
		t.Errorf("accuracy = %v, want 75", got)
	}
}

func TestOutcome_LevelChange(t *testing.T) {
	up := Outcome{Before: LevelState{1, 9}, After: LevelState{2, 0}}
	if !up.LeveledUp() || up.LeveledDown() {
		t.Error("expected level up")
	}
	down := Outcome{Before: LevelState{2, 0}, After: LevelState{1, 9}}
	if down.LeveledUp() || !down.LeveledDown() {
		t.Error("expected level down")
	}
}
