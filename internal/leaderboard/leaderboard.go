// Package leaderboard persists the top scores as a JSON list, sorted
// descending and capped at a fixed size.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/numberduel/internal/fileutil"
	"github.com/lox/numberduel/internal/game"
)

// MaxEntries is the retention cap; lower scores beyond it are dropped for
// good on the next save.
const MaxEntries = 20

// Entry is one leaderboard row. The JSON field names are the on-disk
// schema and must not change.
type Entry struct {
	PlayerName  string  `json:"player_name"`
	Score       int     `json:"score"`
	Difficulty  string  `json:"difficulty"`
	Mode        string  `json:"mode"`
	Guesses     int     `json:"guesses"`
	TimeSeconds float64 `json:"time_seconds"`
	Date        string  `json:"date"`
}

// NewEntry builds an immutable row from a won round.
func NewEntry(playerName string, score int, round *game.Round, clock quartz.Clock) Entry {
	secs := round.Elapsed().Seconds()
	return Entry{
		PlayerName:  playerName,
		Score:       score,
		Difficulty:  round.Difficulty.String(),
		Mode:        round.Mode.String(),
		Guesses:     round.AttemptsUsed(),
		TimeSeconds: float64(int(secs*100+0.5)) / 100,
		Date:        clock.Now().Format("2006-01-02"),
	}
}

// Store loads and saves the leaderboard at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore returns a store persisting to the given path.
func NewStore(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load returns the persisted entries, or an empty list when the file is
// missing or malformed. Corruption is logged, never fatal.
func (s *Store) Load() []Entry {
	data, ok, err := fileutil.ReadFileIfExists(s.path)
	if err != nil {
		s.logger.Warn("failed to read leaderboard, starting fresh", "path", s.path, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("leaderboard file is malformed, starting fresh", "path", s.path, "error", err)
		return nil
	}
	return entries
}

// Append adds a new entry, re-sorts descending by score, truncates to
// MaxEntries and persists the result atomically. Returns the saved list.
func (s *Store) Append(entries []Entry, entry Entry) ([]Entry, error) {
	entries = append(entries, entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save leaderboard: %w", err)
	}
	s.logger.Debug("leaderboard saved", "path", s.path, "entries", len(entries))
	return entries, nil
}
