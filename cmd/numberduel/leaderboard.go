package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/numberduel/internal/config"
	"github.com/lox/numberduel/internal/leaderboard"
	"github.com/lox/numberduel/internal/tui"
)

// LeaderboardCmd prints the persisted top-20 table and exits.
type LeaderboardCmd struct {
	Config  string `help:"Path to the HCL config file" default:"numberduel.hcl"`
	DataDir string `help:"Directory for the stats and leaderboard files"`
}

func (c *LeaderboardCmd) Run() error {
	dataDir, err := resolveDataDir(c.Config, c.DataDir)
	if err != nil {
		return err
	}
	logger := log.New(io.Discard)
	store := leaderboard.NewStore(filepath.Join(dataDir, "leaderboard.json"), logger)
	fmt.Println(tui.LeaderboardView(store.Load()))
	return nil
}

// resolveDataDir applies the flag > config > default precedence.
func resolveDataDir(configPath, flagDir string) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", err
	}
	return cfg.Data.Dir, nil
}
