package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/numberduel/internal/simulator"
	"github.com/lox/numberduel/internal/tui"
)

// SimulateCmd runs automated search rounds to benchmark the AI.
type SimulateCmd struct {
	Rounds  int   `help:"Number of rounds to simulate" default:"10000"`
	Seed    int64 `help:"Base seed for reproducible runs (0 means time-based)"`
	Workers int   `help:"Worker goroutines" default:"4"`
	Debug   bool  `short:"d" help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  logger,
	})
	start := time.Now()
	results, err := sim.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(tui.HeaderStyle.Render("AI SEARCH BENCHMARK"))
	fmt.Printf("  Rounds:        %d (in %s)\n", results.Rounds, elapsed.Round(time.Millisecond))
	fmt.Printf("  Mean guesses:  %.2f\n", results.MeanGuesses())
	fmt.Printf("  Worst round:   %d\n", results.MaxGuesses)
	fmt.Printf("  Optimal bound: %d (ceil(log2(range)))\n", results.Optimal)

	counts := make([]int, 0, len(results.Histogram))
	for g := range results.Histogram {
		counts = append(counts, g)
	}
	sort.Ints(counts)
	fmt.Println("  Distribution:")
	for _, g := range counts {
		n := results.Histogram[g]
		pct := float64(n) / float64(results.Rounds) * 100
		fmt.Printf("    %2d guesses: %6d (%5.1f%%)\n", g, n, pct)
	}
	return nil
}
