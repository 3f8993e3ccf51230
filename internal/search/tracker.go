// Package search implements the adaptive guessing primitive used by the AI
// side of the game: a binary search over an inclusive integer range, driven
// by qualitative higher/lower feedback.
package search

import (
	"errors"
	"fmt"
	"math"
)

// Feedback is the qualitative response to a guess.
type Feedback int

const (
	// Higher means the target is above the guess.
	Higher Feedback = iota
	// Lower means the target is below the guess.
	Lower
	// Correct means the guess equals the target.
	Correct
)

// String returns the display label for the feedback.
func (f Feedback) String() string {
	switch f {
	case Higher:
		return "Higher"
	case Lower:
		return "Lower"
	case Correct:
		return "Correct"
	default:
		return fmt.Sprintf("Feedback(%d)", int(f))
	}
}

// Compare returns the truthful feedback for a guess against a known target.
func Compare(guess, target int) Feedback {
	switch {
	case guess < target:
		return Higher
	case guess > target:
		return Lower
	default:
		return Correct
	}
}

// ErrExhausted is returned when the remaining range is empty, which can only
// happen when the feedback received so far was contradictory.
var ErrExhausted = errors.New("search range exhausted: feedback was inconsistent")

// Tracker narrows an inclusive [low, high] range toward a hidden target.
// The invariant is low <= high+1; low == high+1 is the exhausted state.
type Tracker struct {
	low  int
	high int
}

// NewTracker returns a tracker covering the inclusive range [low, high].
func NewTracker(low, high int) *Tracker {
	return &Tracker{low: low, high: high}
}

// Bounds returns the current inclusive bounds of the remaining range.
func (t *Tracker) Bounds() (low, high int) {
	return t.low, t.high
}

// Size returns how many candidates remain.
func (t *Tracker) Size() int {
	if t.Exhausted() {
		return 0
	}
	return t.high - t.low + 1
}

// Exhausted reports whether contradictory feedback has emptied the range.
func (t *Tracker) Exhausted() bool {
	return t.low > t.high
}

// NextGuess returns the midpoint of the remaining range, the optimal
// halving guess. Returns ErrExhausted when no candidates remain.
func (t *Tracker) NextGuess() (int, error) {
	if t.Exhausted() {
		return 0, ErrExhausted
	}
	return (t.low + t.high) / 2, nil
}

// Narrow applies feedback for a guess. Higher discards everything at or
// below the guess, Lower everything at or above it; Correct is a no-op
// since the search is over. Returns ErrExhausted if the feedback empties
// the range — the caller must surface that, not swallow it.
func (t *Tracker) Narrow(guess int, feedback Feedback) error {
	switch feedback {
	case Higher:
		t.low = guess + 1
	case Lower:
		t.high = guess - 1
	case Correct:
		return nil
	default:
		return fmt.Errorf("unknown feedback %v", feedback)
	}
	if t.Exhausted() {
		return ErrExhausted
	}
	return nil
}

// OptimalGuesses returns ceil(log2(n)), the worst-case number of halving
// guesses needed to locate any target among n candidates with truthful
// feedback. This is the "theoretical optimum" reported to the player.
func OptimalGuesses(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n))))
}
