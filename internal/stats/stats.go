// Package stats tracks rolling aggregate player statistics across rounds
// and persists them as a single JSON document.
package stats

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/numberduel/internal/fileutil"
	"github.com/lox/numberduel/internal/game"
)

// PlayerStats is the persisted aggregate. BestTime is nil until the first
// win. The JSON field names are the on-disk schema and must not change.
type PlayerStats struct {
	GamesPlayed   int      `json:"games_played"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	TotalGuesses  int      `json:"total_guesses"`
	BestTime      *float64 `json:"best_time"`
	CurrentStreak int      `json:"current_streak"`
	BestStreak    int      `json:"best_streak"`
}

// WinRate returns the win percentage, 0 when no games have been played.
func (s *PlayerStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// AvgGuesses returns the mean guesses per game, 0 when no games played.
func (s *PlayerStats) AvgGuesses() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalGuesses) / float64(s.GamesPlayed)
}

// Validate checks internal consistency of the aggregate.
func (s *PlayerStats) Validate() error {
	if s.Wins+s.Losses != s.GamesPlayed {
		return fmt.Errorf("wins (%d) + losses (%d) != games played (%d)", s.Wins, s.Losses, s.GamesPlayed)
	}
	if s.CurrentStreak > s.BestStreak {
		return fmt.Errorf("current streak (%d) exceeds best streak (%d)", s.CurrentStreak, s.BestStreak)
	}
	return nil
}

// Store loads, mutates and saves PlayerStats at a fixed path. Every
// mutation persists immediately and atomically, so an interrupt between
// rounds never leaves a partial file.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore returns a store persisting to the given path.
func NewStore(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load returns the persisted stats, or a zero value when the file is
// missing, unreadable or malformed. Corruption is logged, never fatal.
func (s *Store) Load() *PlayerStats {
	data, ok, err := fileutil.ReadFileIfExists(s.path)
	if err != nil {
		s.logger.Warn("failed to read stats, starting fresh", "path", s.path, "error", err)
		return &PlayerStats{}
	}
	if !ok {
		return &PlayerStats{}
	}
	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		s.logger.Warn("stats file is malformed, starting fresh", "path", s.path, "error", err)
		return &PlayerStats{}
	}
	return &stats
}

// RecordWin folds a won round into the stats and persists them.
func (s *Store) RecordWin(stats *PlayerStats, round *game.Round) error {
	stats.GamesPlayed++
	stats.Wins++
	stats.TotalGuesses += round.AttemptsUsed()
	stats.CurrentStreak++
	if stats.CurrentStreak > stats.BestStreak {
		stats.BestStreak = stats.CurrentStreak
	}
	elapsed := roundSeconds(round.Elapsed().Seconds())
	if stats.BestTime == nil || elapsed < *stats.BestTime {
		stats.BestTime = &elapsed
	}
	return s.save(stats)
}

// RecordLoss folds a lost round into the stats, resets the streak and
// persists them.
func (s *Store) RecordLoss(stats *PlayerStats, round *game.Round) error {
	stats.GamesPlayed++
	stats.Losses++
	stats.TotalGuesses += round.AttemptsUsed()
	stats.CurrentStreak = 0
	return s.save(stats)
}

func (s *Store) save(stats *PlayerStats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	s.logger.Debug("stats saved", "path", s.path, "games", stats.GamesPlayed)
	return nil
}

// roundSeconds keeps persisted times to two decimal places.
func roundSeconds(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
