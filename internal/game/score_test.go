package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Worked scenario: Easy (15 attempts, 100 base), 3 guesses used, 10 seconds,
// no streak: floor(100 * (0.3 + 0.7*0.8) * (1 - 10/120) * 1.0) = 78.
func TestScoreWorkedScenario(t *testing.T) {
	clock := quartz.NewMock(t)
	round := NewRoundWithTarget(Classic, Easy, 42, clock)
	require.NoError(t, round.RecordGuess(50))
	require.NoError(t, round.RecordGuess(25))
	clock.Advance(10 * time.Second)
	require.NoError(t, round.RecordGuess(42))
	require.True(t, round.Won())

	assert.Equal(t, 78, Score(round, 0))
}

// More attempts used can never raise the score.
func TestScoreMonotonicInAttempts(t *testing.T) {
	prev := int(^uint(0) >> 1)
	for used := 1; used <= Easy.MaxAttempts(); used++ {
		clock := quartz.NewMock(t)
		round := NewRoundWithTarget(Classic, Easy, 42, clock)
		for i := 1; i < used; i++ {
			require.NoError(t, round.RecordGuess(i))
		}
		require.NoError(t, round.RecordGuess(42))

		score := Score(round, 0)
		assert.LessOrEqual(t, score, prev, "attempts=%d", used)
		prev = score
	}
}

// Slower completion can never raise the score, and the time factor bottoms
// out at 0.3 after two minutes.
func TestScoreMonotonicInTime(t *testing.T) {
	scoreAt := func(elapsed time.Duration) int {
		clock := quartz.NewMock(t)
		round := NewRoundWithTarget(Classic, Easy, 42, clock)
		clock.Advance(elapsed)
		require.NoError(t, round.RecordGuess(42))
		return Score(round, 0)
	}

	prev := int(^uint(0) >> 1)
	for _, secs := range []int{0, 10, 30, 60, 90, 120, 180, 600} {
		score := scoreAt(time.Duration(secs) * time.Second)
		assert.LessOrEqual(t, score, prev, "elapsed=%ds", secs)
		prev = score
	}

	// Past the floor, time stops mattering
	assert.Equal(t, scoreAt(120*time.Second), scoreAt(3600*time.Second))
}

func TestScoreStreakBonus(t *testing.T) {
	winAt := func(streak int) int {
		clock := quartz.NewMock(t)
		round := NewRoundWithTarget(Classic, Medium, 42, clock)
		require.NoError(t, round.RecordGuess(42))
		return Score(round, streak)
	}

	base := winAt(0)
	assert.Greater(t, winAt(1), base)
	assert.Greater(t, winAt(10), winAt(5))
	// Streaks cap at 10: double points, no more
	assert.Equal(t, winAt(10), winAt(11))
	assert.Equal(t, winAt(10), winAt(100))
	assert.Equal(t, 2*base, winAt(10))
	// Negative streaks are clamped
	assert.Equal(t, base, winAt(-3))
}

func TestScorePerfectRound(t *testing.T) {
	clock := quartz.NewMock(t)
	round := NewRoundWithTarget(Classic, Impossible, 42, clock)
	require.NoError(t, round.RecordGuess(42))

	// One guess, zero elapsed, max streak: floor(1000 * (0.3+0.7*2/3) * 1.0 * 2.0)
	assert.Equal(t, 1533, Score(round, 10))
}
