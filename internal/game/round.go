// Package game holds the round state, difficulty tuning, scoring and the
// duel engine for the number guessing game.
package game

import (
	"errors"
	rand "math/rand/v2"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/numberduel/internal/randutil"
	"github.com/lox/numberduel/internal/search"
)

// The hidden target is always drawn from this inclusive range.
const (
	RangeLow  = 1
	RangeHigh = 100
)

// ErrRoundOver is returned when a guess is recorded after the attempt
// budget has been spent or the round has been won.
var ErrRoundOver = errors.New("round is already over")

// ErrOutOfRange is returned for guesses outside [RangeLow, RangeHigh].
var ErrOutOfRange = errors.New("guess is out of range")

// Round tracks one play of Classic or Duel mode: the hidden target, the
// attempt budget, the guess history and the elapsed wall-clock time.
type Round struct {
	Mode       Mode
	Difficulty Difficulty

	target  int
	history []int
	won     bool

	clock   quartz.Clock
	started time.Time
}

// NewRound draws a target uniformly from [RangeLow, RangeHigh] and starts
// the clock. The rng and clock are injected so tests are deterministic.
func NewRound(mode Mode, difficulty Difficulty, rng *rand.Rand, clock quartz.Clock) *Round {
	return &Round{
		Mode:       mode,
		Difficulty: difficulty,
		target:     randutil.IntInRange(rng, RangeLow, RangeHigh),
		clock:      clock,
		started:    clock.Now(),
	}
}

// NewRoundWithTarget is the test constructor: the target is fixed rather
// than drawn.
func NewRoundWithTarget(mode Mode, difficulty Difficulty, target int, clock quartz.Clock) *Round {
	return &Round{
		Mode:       mode,
		Difficulty: difficulty,
		target:     target,
		clock:      clock,
		started:    clock.Now(),
	}
}

// Target returns the hidden number. Callers must not reveal it until the
// round has ended.
func (r *Round) Target() int {
	return r.target
}

// AttemptsUsed returns how many guesses have been recorded.
func (r *Round) AttemptsUsed() int {
	return len(r.history)
}

// AttemptsRemaining returns the unspent attempt budget, never negative.
func (r *Round) AttemptsRemaining() int {
	return r.Difficulty.MaxAttempts() - len(r.history)
}

// History returns the recorded guesses in order.
func (r *Round) History() []int {
	return r.history
}

// Won reports whether the most recent guess hit the target.
func (r *Round) Won() bool {
	return r.won
}

// Finished reports whether the round has reached a terminal outcome.
func (r *Round) Finished() bool {
	return r.won || r.AttemptsRemaining() <= 0
}

// Elapsed returns wall-clock time since the round started.
func (r *Round) Elapsed() time.Duration {
	return r.clock.Now().Sub(r.started)
}

// Compare returns truthful feedback for a guess against this round's target.
func (r *Round) Compare(guess int) search.Feedback {
	return search.Compare(guess, r.target)
}

// RecordGuess validates the guess, appends it to the history and spends one
// attempt. A correct guess marks the round won.
func (r *Round) RecordGuess(guess int) error {
	if r.Finished() {
		return ErrRoundOver
	}
	if guess < RangeLow || guess > RangeHigh {
		return ErrOutOfRange
	}
	r.history = append(r.history, guess)
	if guess == r.target {
		r.won = true
	}
	return nil
}
