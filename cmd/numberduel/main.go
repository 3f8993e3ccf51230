package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Play        PlayCmd          `cmd:"" default:"withargs" help:"Play the number guessing game"`
	Leaderboard LeaderboardCmd   `cmd:"" help:"Show the top 20 scores"`
	Stats       StatsCmd         `cmd:"" help:"Show your aggregate statistics"`
	Simulate    SimulateCmd      `cmd:"" help:"Benchmark the AI search strategy"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("numberduel"),
		kong.Description("Number guessing duels against a binary-searching AI"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
