package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/numberduel/internal/search"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// exactFeedback compares AI guesses against the true target, bypassing the
// human trust boundary.
func exactFeedback(round *Round) FeedbackFunc {
	return func(guess int) (search.Feedback, error) {
		return round.Compare(guess), nil
	}
}

func scriptedGuesses(guesses ...int) GuessFunc {
	i := 0
	return func(turn int, r *Round) (int, error) {
		g := guesses[i%len(guesses)]
		i++
		return g, nil
	}
}

// A correct human guess wins immediately; the AI gets no counter-turn.
func TestDuelHumanWinsImmediately(t *testing.T) {
	clock := quartz.NewMock(t)
	round := NewRoundWithTarget(Duel, Hard, 42, clock)

	feedbackCalled := false
	engine := NewDuelEngine(round, testLogger(),
		scriptedGuesses(42),
		func(guess int) (search.Feedback, error) {
			feedbackCalled = true
			return round.Compare(guess), nil
		},
		DuelHooks{})

	result, err := engine.Run()
	require.NoError(t, err)
	assert.Equal(t, DuelHumanWon, result.Outcome)
	assert.True(t, round.Won())
	assert.Empty(t, result.AIGuesses)
	assert.False(t, feedbackCalled, "AI must not act after a human win")
}

// Target 50 is the AI's first midpoint, so the AI wins on the first turn
// pair when the human misses.
func TestDuelAIWins(t *testing.T) {
	clock := quartz.NewMock(t)
	round := NewRoundWithTarget(Duel, Hard, 50, clock)

	engine := NewDuelEngine(round, testLogger(),
		scriptedGuesses(1), exactFeedback(round), DuelHooks{})

	result, err := engine.Run()
	require.NoError(t, err)
	assert.Equal(t, DuelAIWon, result.Outcome)
	assert.Equal(t, []int{50}, result.AIGuesses)
	assert.False(t, round.Won())
}

// Hard gives the human 5 turn pairs; target 100 needs 7 halving guesses, so
// the budget expires first and the duel is a draw. The human's budget is
// the sole clock.
func TestDuelDrawOnBudgetExhaustion(t *testing.T) {
	clock := quartz.NewMock(t)
	round := NewRoundWithTarget(Duel, Hard, 100, clock)

	engine := NewDuelEngine(round, testLogger(),
		scriptedGuesses(1), exactFeedback(round), DuelHooks{})

	result, err := engine.Run()
	require.NoError(t, err)
	assert.Equal(t, DuelDraw, result.Outcome)
	assert.Equal(t, []int{50, 75, 88, 94, 97}, result.AIGuesses)
	assert.Equal(t, 0, round.AttemptsRemaining())
	assert.False(t, round.Won())
}

// Contradictory feedback drives the AI's range empty; the duel must end as
// inconsistent rather than crash or loop.
func TestDuelInconsistentFeedback(t *testing.T) {
	clock := quartz.NewMock(t)
	round := NewRoundWithTarget(Duel, Easy, 42, clock)

	engine := NewDuelEngine(round, testLogger(),
		scriptedGuesses(99),
		func(guess int) (search.Feedback, error) {
			// Always claim the target is lower, which must eventually
			// contradict itself.
			return search.Lower, nil
		},
		DuelHooks{})

	result, err := engine.Run()
	require.NoError(t, err)
	assert.Equal(t, DuelInconsistent, result.Outcome)
	// 50, 25, 12, 6, 3, then 1 empties the range
	assert.Equal(t, []int{50, 25, 12, 6, 3, 1}, result.AIGuesses)
}

func TestDuelHooksFire(t *testing.T) {
	clock := quartz.NewMock(t)
	round := NewRoundWithTarget(Duel, Hard, 100, clock)

	var turns, humanMisses, aiGuesses, aiNarrows int
	engine := NewDuelEngine(round, testLogger(),
		scriptedGuesses(1), exactFeedback(round),
		DuelHooks{
			TurnStarted: func(turn int, r *Round) { turns++ },
			HumanMissed: func(guess int, fb search.Feedback) {
				humanMisses++
				assert.Equal(t, search.Higher, fb)
			},
			AIGuessed:  func(turn, guess int) { aiGuesses++ },
			AINarrowed: func(fb search.Feedback) { aiNarrows++ },
		})

	_, err := engine.Run()
	require.NoError(t, err)
	assert.Equal(t, 5, turns)
	assert.Equal(t, 5, humanMisses)
	assert.Equal(t, 5, aiGuesses)
	assert.Equal(t, 5, aiNarrows)
}

func TestDuelOutcomeString(t *testing.T) {
	assert.Equal(t, "HumanWon", DuelHumanWon.String())
	assert.Equal(t, "AIWon", DuelAIWon.String())
	assert.Equal(t, "Draw", DuelDraw.String())
	assert.Equal(t, "Inconsistent", DuelInconsistent.String())
}
