package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/numberduel/internal/stats"
	"github.com/lox/numberduel/internal/tui"
)

// StatsCmd prints the persisted aggregate statistics and exits.
type StatsCmd struct {
	Config  string `help:"Path to the HCL config file" default:"numberduel.hcl"`
	DataDir string `help:"Directory for the stats and leaderboard files"`
}

func (c *StatsCmd) Run() error {
	dataDir, err := resolveDataDir(c.Config, c.DataDir)
	if err != nil {
		return err
	}
	logger := log.New(io.Discard)
	store := stats.NewStore(filepath.Join(dataDir, "player_stats.json"), logger)
	fmt.Println(tui.StatsView(store.Load()))
	return nil
}
