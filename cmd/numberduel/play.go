package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/numberduel/internal/config"
	"github.com/lox/numberduel/internal/leaderboard"
	"github.com/lox/numberduel/internal/randutil"
	"github.com/lox/numberduel/internal/session"
	"github.com/lox/numberduel/internal/stats"
	"github.com/lox/numberduel/internal/tui"
)

// PlayCmd runs the interactive session.
type PlayCmd struct {
	Name    string `help:"Player name (skips the name prompt)"`
	Seed    int64  `help:"Random seed for reproducible targets (0 means time-based)"`
	Config  string `help:"Path to the HCL config file" default:"numberduel.hcl"`
	DataDir string `help:"Directory for the stats and leaderboard files"`
	Debug   bool   `short:"d" help:"Write debug logs to numberduel-debug.log"`
	NoClear bool   `help:"Never clear the screen"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	dataDir := cfg.Data.Dir
	if c.DataDir != "" {
		dataDir = c.DataDir
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	playerName := cfg.Player.Name
	if c.Name != "" {
		playerName = c.Name
	}

	// Debug output goes to a file so it never tears the game screen.
	logOut := io.Writer(io.Discard)
	var debugFile *os.File
	if c.Debug {
		debugFile, err = os.OpenFile("numberduel-debug.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			return fmt.Errorf("failed to create debug log: %w", err)
		}
		defer debugFile.Close()
		logOut = debugFile
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	clock := quartz.NewReal()
	logger.Debug("starting session", "seed", seed, "dataDir", dataDir)

	statsStore := stats.NewStore(filepath.Join(dataDir, "player_stats.json"), logger)
	lbStore := leaderboard.NewStore(filepath.Join(dataDir, "leaderboard.json"), logger)

	// Interrupt mid-round: persistence is atomic, so exiting here can never
	// leave a partial stats or leaderboard file behind.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		fmt.Println()
		fmt.Println("  " + tui.AccentStyle.Render("Thanks for playing! See you next time."))
		os.Exit(0)
	}()

	sess := session.New(os.Stdin, os.Stdout, rng, clock, logger, statsStore, lbStore, session.Options{
		PlayerName:        playerName,
		DefaultDifficulty: cfg.Player.DefaultDifficulty,
		TypeDelay:         time.Duration(cfg.UI.TypeDelayMS) * time.Millisecond,
		ClearScreen:       !c.NoClear,
	})
	return sess.Run(ctx)
}
