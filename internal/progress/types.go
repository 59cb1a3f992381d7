package progress

import (
	"time"

	"github.com/abhisek/happymath/internal/gametype"
)

// PointsRequired is the score needed to leave level.
func PointsRequired(level int) int {
	return level * 10
}

// LevelState is the player's position within one game type.
type LevelState struct {
	Level int
	Score int
}

// DefaultLevelState is where every game type starts.
func DefaultLevelState() LevelState {
	return LevelState{Level: 1, Score: 0}
}

// Apply returns the state after one answer.
//
// A correct answer adds a point and levels up at PointsRequired(level).
// A wrong answer removes a point and drops a level when the score goes
// negative, landing one point short of the lower level's threshold.
// Level 1 with score 0 is the floor.
func (s LevelState) Apply(correct bool) LevelState {
	if correct {
		s.Score++
		if s.Score >= PointsRequired(s.Level) {
			s.Level++
			s.Score = 0
		}
		return s
	}

	if !(s.Level == 1 && s.Score == 0) {
		s.Score--
		if s.Score < 0 && s.Level > 1 {
			s.Level--
			s.Score = PointsRequired(s.Level) - 1
		}
	}
	if s.Level == 1 && s.Score < 0 {
		s.Score = 0
	}
	return s
}

// Fraction is score / PointsRequired(level), clamped to [0, 1].
func (s LevelState) Fraction() float64 {
	need := PointsRequired(s.Level)
	if need <= 0 {
		return 0
	}
	return min(1.0, max(0.0, float64(s.Score)/float64(need)))
}

// GameProgress holds lifetime statistics for one game type. The JSON
// field names are part of the persisted format.
type GameProgress struct {
	TotalProblems       int       `json:"totalProblems"`
	CorrectAnswers      int       `json:"correctAnswers"`
	HighestScore        int       `json:"highestScore"`
	LastPlayed          time.Time `json:"lastPlayed"`
	HighestDifficulty   int       `json:"highestDifficulty"`
	StreakCount         int       `json:"streakCount"`
	TimeSpent           float64   `json:"timeSpent"`
	AverageResponseTime float64   `json:"averageResponseTime"`
}

// DefaultGameProgress returns zeroed statistics.
func DefaultGameProgress() GameProgress {
	return GameProgress{HighestDifficulty: 1}
}

// AccuracyPercentage is correctAnswers / totalProblems × 100, or 0 before
// the first answer.
func (g GameProgress) AccuracyPercentage() float64 {
	if g.TotalProblems == 0 {
		return 0
	}
	return float64(g.CorrectAnswers) / float64(g.TotalProblems) * 100
}

// Outcome describes the effect of one recorded answer.
type Outcome struct {
	Type    gametype.GameType
	Correct bool
	Before  LevelState
	After   LevelState
	Elapsed time.Duration
}

// LeveledUp reports whether the answer moved the player up a level.
func (o Outcome) LeveledUp() bool { return o.After.Level > o.Before.Level }

// LeveledDown reports whether the answer moved the player down a level.
func (o Outcome) LeveledDown() bool { return o.After.Level < o.Before.Level }

// Entry is one game type's full state, used for listings.
type Entry struct {
	Type     gametype.GameType
	State    LevelState
	Progress GameProgress
}
