package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/numberduel/internal/search"
)

// DuelOutcome is the terminal result of a duel.
type DuelOutcome int

const (
	// DuelHumanWon: the human hit the target first. The AI does not get a
	// counter-turn in that cycle.
	DuelHumanWon DuelOutcome = iota
	// DuelAIWon: the AI's guess hit the target.
	DuelAIWon
	// DuelDraw: the human's attempt budget ran out before either side won.
	// The human's budget is the sole clock for the duel; AI guesses are
	// only capped implicitly by the human's remaining turns.
	DuelDraw
	// DuelInconsistent: the AI's range became empty, which means the
	// feedback it was given contradicted itself. Ends the duel without
	// crashing and without persisting a result.
	DuelInconsistent
)

// String returns the display label for the outcome.
func (o DuelOutcome) String() string {
	switch o {
	case DuelHumanWon:
		return "HumanWon"
	case DuelAIWon:
		return "AIWon"
	case DuelDraw:
		return "Draw"
	case DuelInconsistent:
		return "Inconsistent"
	default:
		return fmt.Sprintf("DuelOutcome(%d)", int(o))
	}
}

// GuessFunc supplies the human's next guess for a turn. Implementations own
// validation and reprompting; an error aborts the duel (e.g. input closed).
type GuessFunc func(turn int, r *Round) (int, error)

// FeedbackFunc supplies feedback for an AI guess. In an automated harness
// this compares against the true target; in interactive play it is reported
// by the human, which is a trust boundary the engine deliberately accepts.
type FeedbackFunc func(guess int) (search.Feedback, error)

// DuelHooks are optional UI notifications fired as the duel progresses.
// Nil hooks are skipped.
type DuelHooks struct {
	// TurnStarted fires at the top of each turn pair.
	TurnStarted func(turn int, r *Round)
	// HumanMissed fires after a wrong human guess, with truthful direction.
	HumanMissed func(guess int, fb search.Feedback)
	// AIGuessed fires when the AI commits to a guess, before feedback.
	AIGuessed func(turn int, guess int)
	// AINarrowed fires after the AI applies non-correct feedback.
	AINarrowed func(fb search.Feedback)
}

// DuelResult captures the terminal state of a finished duel.
type DuelResult struct {
	Outcome   DuelOutcome
	Round     *Round
	AIGuesses []int
}

// DuelEngine alternates human and AI turns against one hidden target. The
// AI side narrows a search tracker from the feedback it receives; the human
// side guesses against the round's own attempt budget.
type DuelEngine struct {
	round    *Round
	tracker  *search.Tracker
	logger   *log.Logger
	guess    GuessFunc
	feedback FeedbackFunc
	hooks    DuelHooks
}

// NewDuelEngine wires a duel over the given round. The guess and feedback
// callbacks must be non-nil; hooks may be zero.
func NewDuelEngine(round *Round, logger *log.Logger, guess GuessFunc, feedback FeedbackFunc, hooks DuelHooks) *DuelEngine {
	return &DuelEngine{
		round:    round,
		tracker:  search.NewTracker(RangeLow, RangeHigh),
		logger:   logger,
		guess:    guess,
		feedback: feedback,
		hooks:    hooks,
	}
}

// Tracker exposes the AI's remaining range, for display.
func (d *DuelEngine) Tracker() *search.Tracker {
	return d.tracker
}

// Run plays turn pairs until one side wins, the human's budget expires
// (draw), or the AI's range is contradicted (inconsistent). Exactly one
// terminal outcome is produced; only callback errors propagate.
func (d *DuelEngine) Run() (*DuelResult, error) {
	result := &DuelResult{Round: d.round}

	turn := 0
	for d.round.AttemptsRemaining() > 0 {
		turn++
		if d.hooks.TurnStarted != nil {
			d.hooks.TurnStarted(turn, d.round)
		}

		humanGuess, err := d.guess(turn, d.round)
		if err != nil {
			return nil, fmt.Errorf("human guess failed: %w", err)
		}
		if err := d.round.RecordGuess(humanGuess); err != nil {
			return nil, fmt.Errorf("recording guess %d: %w", humanGuess, err)
		}
		d.logger.Debug("human guessed", "turn", turn, "guess", humanGuess)

		if d.round.Won() {
			result.Outcome = DuelHumanWon
			d.logger.Debug("duel over", "outcome", result.Outcome, "turns", turn)
			return result, nil
		}
		if d.hooks.HumanMissed != nil {
			d.hooks.HumanMissed(humanGuess, d.round.Compare(humanGuess))
		}

		aiGuess, err := d.tracker.NextGuess()
		if err != nil {
			// Range emptied before the AI could even guess.
			result.Outcome = DuelInconsistent
			d.logger.Debug("duel over", "outcome", result.Outcome, "turns", turn)
			return result, nil
		}
		result.AIGuesses = append(result.AIGuesses, aiGuess)
		if d.hooks.AIGuessed != nil {
			d.hooks.AIGuessed(turn, aiGuess)
		}
		d.logger.Debug("ai guessed", "turn", turn, "guess", aiGuess, "remaining", d.tracker.Size())

		fb, err := d.feedback(aiGuess)
		if err != nil {
			return nil, fmt.Errorf("ai feedback failed: %w", err)
		}
		if fb == search.Correct {
			result.Outcome = DuelAIWon
			d.logger.Debug("duel over", "outcome", result.Outcome, "aiGuesses", len(result.AIGuesses))
			return result, nil
		}
		if err := d.tracker.Narrow(aiGuess, fb); err != nil {
			if errors.Is(err, search.ErrExhausted) {
				result.Outcome = DuelInconsistent
				d.logger.Debug("duel over", "outcome", result.Outcome, "turns", turn)
				return result, nil
			}
			return nil, err
		}
		if d.hooks.AINarrowed != nil {
			d.hooks.AINarrowed(fb)
		}
	}

	result.Outcome = DuelDraw
	d.logger.Debug("duel over", "outcome", result.Outcome, "turns", turn)
	return result, nil
}
