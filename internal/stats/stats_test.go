package stats

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/numberduel/internal/game"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "player_stats.json"), log.New(io.Discard))
}

func wonRound(t *testing.T, clock *quartz.Mock, guesses ...int) *game.Round {
	t.Helper()
	round := game.NewRoundWithTarget(game.Classic, game.Easy, guesses[len(guesses)-1], clock)
	for _, g := range guesses {
		require.NoError(t, round.RecordGuess(g))
	}
	require.True(t, round.Won())
	return round
}

func lostRound(t *testing.T, clock *quartz.Mock) *game.Round {
	t.Helper()
	round := game.NewRoundWithTarget(game.Classic, game.Impossible, 42, clock)
	for _, g := range []int{1, 2, 3} {
		require.NoError(t, round.RecordGuess(g))
	}
	require.True(t, round.Finished())
	require.False(t, round.Won())
	return round
}

func TestLoadMissingFileReturnsZero(t *testing.T) {
	store := testStore(t)
	stats := store.Load()
	assert.Equal(t, &PlayerStats{}, stats)
}

func TestLoadCorruptFileReturnsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path, log.New(io.Discard))
	assert.Equal(t, &PlayerStats{}, store.Load())
}

func TestRecordWin(t *testing.T) {
	store := testStore(t)
	clock := quartz.NewMock(t)
	stats := store.Load()

	round := game.NewRoundWithTarget(game.Classic, game.Easy, 42, clock)
	clock.Advance(10 * time.Second)
	require.NoError(t, round.RecordGuess(42))
	require.NoError(t, store.RecordWin(stats, round))

	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 0, stats.Losses)
	assert.Equal(t, 1, stats.TotalGuesses)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.BestStreak)
	require.NotNil(t, stats.BestTime)
	require.NoError(t, stats.Validate())

	// Persisted immediately: a fresh load sees the same state
	assert.Equal(t, stats, store.Load())
}

func TestRecordLossResetsStreak(t *testing.T) {
	store := testStore(t)
	clock := quartz.NewMock(t)
	stats := store.Load()

	require.NoError(t, store.RecordWin(stats, wonRound(t, clock, 42)))
	require.NoError(t, store.RecordWin(stats, wonRound(t, clock, 50, 42)))
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 2, stats.BestStreak)

	require.NoError(t, store.RecordLoss(stats, lostRound(t, clock)))
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 2, stats.BestStreak)
	assert.Equal(t, 3, stats.GamesPlayed)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1+2+3, stats.TotalGuesses)
	require.NoError(t, stats.Validate())
}

// wins + losses == games_played after any sequence of records.
func TestStatsConsistency(t *testing.T) {
	store := testStore(t)
	clock := quartz.NewMock(t)
	stats := store.Load()

	for i := 0; i < 10; i++ {
		if i%3 == 0 {
			require.NoError(t, store.RecordLoss(stats, lostRound(t, clock)))
		} else {
			require.NoError(t, store.RecordWin(stats, wonRound(t, clock, 42)))
		}
		assert.Equal(t, stats.GamesPlayed, stats.Wins+stats.Losses)
		require.NoError(t, stats.Validate())
	}
}

func TestBestTimeKeepsMinimum(t *testing.T) {
	store := testStore(t)
	clock := quartz.NewMock(t)
	stats := store.Load()

	slow := game.NewRoundWithTarget(game.Classic, game.Easy, 42, clock)
	clock.Advance(30 * time.Second)
	require.NoError(t, slow.RecordGuess(42))
	require.NoError(t, store.RecordWin(stats, slow))
	require.NotNil(t, stats.BestTime)
	assert.InDelta(t, 30.0, *stats.BestTime, 0.01)

	fast := game.NewRoundWithTarget(game.Classic, game.Easy, 42, clock)
	clock.Advance(5 * time.Second)
	require.NoError(t, fast.RecordGuess(42))
	require.NoError(t, store.RecordWin(stats, fast))
	assert.InDelta(t, 5.0, *stats.BestTime, 0.01)

	// A slower win must not regress the best time
	slower := game.NewRoundWithTarget(game.Classic, game.Easy, 42, clock)
	clock.Advance(20 * time.Second)
	require.NoError(t, slower.RecordGuess(42))
	require.NoError(t, store.RecordWin(stats, slower))
	assert.InDelta(t, 5.0, *stats.BestTime, 0.01)
}

func TestDerivedRates(t *testing.T) {
	stats := &PlayerStats{}
	assert.Equal(t, 0.0, stats.WinRate())
	assert.Equal(t, 0.0, stats.AvgGuesses())

	stats = &PlayerStats{GamesPlayed: 4, Wins: 3, Losses: 1, TotalGuesses: 10}
	assert.InDelta(t, 75.0, stats.WinRate(), 0.001)
	assert.InDelta(t, 2.5, stats.AvgGuesses(), 0.001)
}

func TestValidate(t *testing.T) {
	bad := &PlayerStats{GamesPlayed: 3, Wins: 1, Losses: 1}
	assert.Error(t, bad.Validate())

	bad = &PlayerStats{GamesPlayed: 2, Wins: 2, CurrentStreak: 5, BestStreak: 2}
	assert.Error(t, bad.Validate())
}

func TestPersistedSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_stats.json")
	store := NewStore(path, log.New(io.Discard))
	clock := quartz.NewMock(t)
	stats := store.Load()
	require.NoError(t, store.RecordWin(stats, wonRound(t, clock, 42)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, field := range []string{
		`"games_played"`, `"wins"`, `"losses"`, `"total_guesses"`,
		`"best_time"`, `"current_streak"`, `"best_streak"`,
	} {
		assert.Contains(t, string(data), field)
	}
}
