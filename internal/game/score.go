package game

import "math"

// Scoring weights. A win banks a floor of 30% of the base points; the rest
// scales with how much of the attempt budget was left unused. Rounds
// slower than two minutes bottom out at a 0.3 time factor, and a win
// streak adds 10% per consecutive win up to double points.
const (
	scoreFloor      = 0.3
	timeFactorFloor = 0.3
	timeFactorSpan  = 120.0 // seconds until the time factor bottoms out
	streakCap       = 10
	streakStep      = 0.1
)

// Score maps a won round and the current win streak to an integer score.
// It is pure and deterministic given its inputs: monotonic in fewer
// attempts used, faster completion and longer streaks.
func Score(r *Round, streak int) int {
	base := float64(r.Difficulty.BasePoints())
	efficiency := float64(r.AttemptsRemaining()) / float64(r.Difficulty.MaxAttempts())
	timeFactor := math.Max(timeFactorFloor, 1.0-r.Elapsed().Seconds()/timeFactorSpan)
	if streak > streakCap {
		streak = streakCap
	}
	if streak < 0 {
		streak = 0
	}
	streakBonus := 1.0 + float64(streak)*streakStep
	return int(math.Floor(base * (scoreFloor + (1-scoreFloor)*efficiency) * timeFactor * streakBonus))
}
