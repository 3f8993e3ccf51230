// Package simulator runs automated rounds of the AI search against known
// targets with exact feedback, to benchmark the guessing strategy and
// verify its worst-case bound.
package simulator

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/numberduel/internal/game"
	"github.com/lox/numberduel/internal/randutil"
	"github.com/lox/numberduel/internal/search"
)

// Config holds configuration for running simulations.
type Config struct {
	Rounds  int
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Results aggregates guess counts across all simulated rounds.
type Results struct {
	Rounds       int
	TotalGuesses int
	MaxGuesses   int
	Optimal      int         // worst-case bound for the range
	WithinBound  int         // rounds solved within the bound
	Histogram    map[int]int // guesses -> round count
}

// MeanGuesses returns the average guesses per round.
func (r *Results) MeanGuesses() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.TotalGuesses) / float64(r.Rounds)
}

// Validate checks that every simulated round respected the binary search
// bound; with truthful feedback that bound can never be exceeded.
func (r *Results) Validate() error {
	if r.MaxGuesses > r.Optimal {
		return fmt.Errorf("worst round used %d guesses, bound is %d", r.MaxGuesses, r.Optimal)
	}
	if r.WithinBound != r.Rounds {
		return fmt.Errorf("only %d of %d rounds within bound", r.WithinBound, r.Rounds)
	}
	return nil
}

// Simulator runs AI search simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 4
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rounds across a worker pool and
// returns the aggregated results. Each worker derives its own rng from the
// base seed so runs are reproducible regardless of scheduling.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	results := &Results{
		Optimal:   search.OptimalGuesses(game.RangeHigh - game.RangeLow + 1),
		Histogram: make(map[int]int),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	perWorker := s.config.Rounds / s.config.Workers
	extra := s.config.Rounds % s.config.Workers

	for w := 0; w < s.config.Workers; w++ {
		rounds := perWorker
		if w < extra {
			rounds++
		}
		if rounds == 0 {
			continue
		}
		seed := s.config.Seed + int64(w)
		g.Go(func() error {
			rng := randutil.New(seed)
			for i := 0; i < rounds; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				target := randutil.IntInRange(rng, game.RangeLow, game.RangeHigh)
				guesses, err := playRound(target)
				if err != nil {
					return fmt.Errorf("target %d: %w", target, err)
				}
				mu.Lock()
				results.Rounds++
				results.TotalGuesses += guesses
				if guesses > results.MaxGuesses {
					results.MaxGuesses = guesses
				}
				if guesses <= results.Optimal {
					results.WithinBound++
				}
				results.Histogram[guesses]++
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := results.Validate(); err != nil {
		return nil, err
	}
	s.config.Logger.Debug("simulation complete",
		"rounds", results.Rounds,
		"mean", results.MeanGuesses(),
		"max", results.MaxGuesses,
		"optimal", results.Optimal)
	return results, nil
}

// playRound runs one full search against a known target with truthful
// feedback and returns the number of guesses needed.
func playRound(target int) (int, error) {
	tracker := search.NewTracker(game.RangeLow, game.RangeHigh)
	for guesses := 1; ; guesses++ {
		guess, err := tracker.NextGuess()
		if err != nil {
			return 0, err
		}
		fb := search.Compare(guess, target)
		if fb == search.Correct {
			return guesses, nil
		}
		if err := tracker.Narrow(guess, fb); err != nil {
			return 0, err
		}
	}
}
