// Package config loads the optional numberduel.hcl configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete on-disk configuration. All blocks are optional;
// a missing file yields DefaultConfig.
type Config struct {
	Player *PlayerSettings `hcl:"player,block"`
	UI     *UISettings     `hcl:"ui,block"`
	Data   *DataSettings   `hcl:"data,block"`
}

// PlayerSettings carries player defaults.
type PlayerSettings struct {
	Name              string `hcl:"name,optional"`
	DefaultDifficulty string `hcl:"default_difficulty,optional"`
}

// UISettings carries display preferences.
type UISettings struct {
	Color       bool `hcl:"color,optional"`
	TypeDelayMS int  `hcl:"type_delay_ms,optional"`
}

// DataSettings controls where the stats and leaderboard files live.
type DataSettings struct {
	Dir string `hcl:"dir,optional"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Player: &PlayerSettings{},
		UI:     &UISettings{Color: true, TypeDelayMS: 20},
		Data:   &DataSettings{Dir: "."},
	}
}

// Load parses the HCL config at filename. A missing file returns defaults;
// a malformed file is an error so typos are not silently ignored.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	// Blocks omitted from the file decode to nil; put the defaults back.
	defaults := DefaultConfig()
	if cfg.Player == nil {
		cfg.Player = defaults.Player
	}
	if cfg.UI == nil {
		cfg.UI = defaults.UI
	}
	if cfg.Data == nil {
		cfg.Data = defaults.Data
	}
	return cfg, nil
}
