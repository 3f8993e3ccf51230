package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorRespectsSearchBound(t *testing.T) {
	sim := New(Config{
		Rounds:  500,
		Seed:    12345,
		Workers: 4,
		Logger:  log.New(io.Discard),
	})

	results, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 500, results.Rounds)
	assert.Equal(t, 7, results.Optimal)
	assert.LessOrEqual(t, results.MaxGuesses, 7)
	assert.Equal(t, 500, results.WithinBound)
	assert.GreaterOrEqual(t, results.MeanGuesses(), 1.0)
	assert.LessOrEqual(t, results.MeanGuesses(), 7.0)
	require.NoError(t, results.Validate())

	total := 0
	for _, n := range results.Histogram {
		total += n
	}
	assert.Equal(t, 500, total)
}

func TestSimulatorIsReproducible(t *testing.T) {
	run := func() *Results {
		sim := New(Config{Rounds: 100, Seed: 7, Workers: 3, Logger: log.New(io.Discard)})
		results, err := sim.Run(context.Background())
		require.NoError(t, err)
		return results
	}

	first := run()
	second := run()
	assert.Equal(t, first.TotalGuesses, second.TotalGuesses)
	assert.Equal(t, first.Histogram, second.Histogram)
}

func TestSimulatorSingleWorker(t *testing.T) {
	sim := New(Config{Rounds: 10, Seed: 1, Workers: 1, Logger: log.New(io.Discard)})
	results, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, results.Rounds)
}

func TestResultsValidate(t *testing.T) {
	bad := &Results{Rounds: 2, MaxGuesses: 9, Optimal: 7, WithinBound: 1}
	assert.Error(t, bad.Validate())
}
