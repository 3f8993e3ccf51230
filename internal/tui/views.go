// Package tui renders the game's terminal output with lipgloss styles.
// Everything here is a pure string renderer so it can be tested without a
// terminal attached.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/numberduel/internal/game"
	"github.com/lox/numberduel/internal/leaderboard"
	"github.com/lox/numberduel/internal/stats"
)

const attemptBarWidth = 30

// Banner renders the program title line.
func Banner() string {
	return TitleStyle.Render(" ◆ Number Duel ◆ ") + "\n" +
		InfoStyle.Render("   guess · race · outsmart the search")
}

// AttemptBar renders the remaining attempt budget as a progress bar.
func AttemptBar(remaining, max int) string {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(attemptBarWidth),
		progress.WithoutPercentage(),
	)
	ratio := 0.0
	if max > 0 {
		ratio = float64(remaining) / float64(max)
	}
	return fmt.Sprintf("%s %s/%d", bar.ViewAs(ratio), HeaderStyle.Render(fmt.Sprintf("%d", remaining)), max)
}

// DifficultyList renders the difficulty menu with star ratings and the
// attempts/points tuning for each level.
func DifficultyList() string {
	colors := []lipgloss.Style{SuccessStyle, WarningStyle, HotStyle, ErrorStyle}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("SELECT DIFFICULTY"))
	b.WriteString("\n")
	for i, d := range game.Difficulties() {
		stars := strings.Repeat("★", i+1) + strings.Repeat("☆", 3-i)
		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			AccentStyle.Render(fmt.Sprintf("[%d]", i+1)),
			colors[i].Render(stars),
			colors[i].Render(fmt.Sprintf("%-10s", d.String())),
			InfoStyle.Render(fmt.Sprintf("(%d attempts, %d base pts)", d.MaxAttempts(), d.BasePoints())),
		))
	}
	return b.String()
}

// HistoryLine renders the last few guesses of a round.
func HistoryLine(history []int, keep int) string {
	if len(history) == 0 {
		return ""
	}
	if len(history) > keep {
		history = history[len(history)-keep:]
	}
	parts := make([]string, len(history))
	for i, g := range history {
		parts[i] = fmt.Sprintf("%d", g)
	}
	return InfoStyle.Render("History: " + strings.Join(parts, ", "))
}

// WinSummary renders the victory box for a won round.
func WinSummary(r *game.Round, score int) string {
	lines := []string{
		SuccessStyle.Render("★  CORRECT!  ★"),
		"",
		fmt.Sprintf("The number was %s", GoldStyle.Render(fmt.Sprintf("%d", r.Target()))),
		fmt.Sprintf("Guesses: %s  ·  Time: %s",
			HeaderStyle.Render(fmt.Sprintf("%d", r.AttemptsUsed())),
			HeaderStyle.Render(FormatTime(r.Elapsed().Seconds()))),
		fmt.Sprintf("Score: %s", GoldStyle.Render(fmt.Sprintf("%d", score))),
	}
	return WinBoxStyle.Render(strings.Join(lines, "\n"))
}

// LossSummary renders the game-over box for a lost round.
func LossSummary(r *game.Round) string {
	lines := []string{
		ErrorStyle.Render("GAME OVER"),
		"",
		fmt.Sprintf("The number was %s", GoldStyle.Render(fmt.Sprintf("%d", r.Target()))),
		fmt.Sprintf("You used all %d attempts", r.Difficulty.MaxAttempts()),
	}
	return LossBoxStyle.Render(strings.Join(lines, "\n"))
}

// DrawSummary renders the duel draw box, revealing the target.
func DrawSummary(target int) string {
	lines := []string{
		WarningStyle.Render("DRAW — TIME'S UP!"),
		"",
		fmt.Sprintf("Neither found the number: %s", GoldStyle.Render(fmt.Sprintf("%d", target))),
	}
	return DrawBoxStyle.Render(strings.Join(lines, "\n"))
}

// InconsistentSummary renders the "something doesn't add up" box shown when
// higher/lower feedback contradicted itself.
func InconsistentSummary() string {
	lines := []string{
		ErrorStyle.Render("Something doesn't add up!"),
		"",
		"The range has been exhausted. Are you sure",
		"you followed the rules? Let's try again!",
	}
	return LossBoxStyle.Render(strings.Join(lines, "\n"))
}

// LeaderboardView renders the top-20 table, with medals for the podium.
func LeaderboardView(entries []leaderboard.Entry) string {
	if len(entries) == 0 {
		return GoldBoxStyle.Render(
			GoldStyle.Render("LEADERBOARD") + "\n\n" +
				InfoStyle.Render("No entries yet. Play a game!"))
	}

	var b strings.Builder
	b.WriteString(GoldStyle.Render(fmt.Sprintf("LEADERBOARD — TOP %d", leaderboard.MaxEntries)))
	b.WriteString("\n\n")
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%4s  %-14s %7s  %-10s %-8s %7s  %8s  %-10s",
		"#", "Player", "Score", "Diff", "Mode", "Guesses", "Time", "Date")))
	b.WriteString("\n")

	medals := map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}
	for i, e := range entries {
		rank := i + 1
		pos := fmt.Sprintf("%4d", rank)
		if m, ok := medals[rank]; ok {
			pos = fmt.Sprintf("%4s", m)
		}
		name := e.PlayerName
		if len(name) > 14 {
			name = name[:14]
		}
		b.WriteString(fmt.Sprintf("%s  %-14s %s  %-10s %-8s %7d  %8s  %-10s\n",
			pos,
			name,
			GoldStyle.Render(fmt.Sprintf("%7d", e.Score)),
			e.Difficulty,
			e.Mode,
			e.Guesses,
			FormatTime(e.TimeSeconds),
			e.Date,
		))
	}
	return GoldBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// StatsView renders the aggregate player statistics.
func StatsView(s *stats.PlayerStats) string {
	if s.GamesPlayed == 0 {
		return BoxStyle.Render(
			AccentStyle.Render("STATISTICS") + "\n\n" +
				InfoStyle.Render("No games played yet!"))
	}

	best := "N/A"
	if s.BestTime != nil {
		best = FormatTime(*s.BestTime)
	}
	winBar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(20),
		progress.WithoutPercentage(),
	)
	winRatio := float64(s.Wins) / float64(s.GamesPlayed)

	lines := []string{
		AccentStyle.Render("YOUR STATISTICS"),
		"",
		fmt.Sprintf("Games Played:   %d", s.GamesPlayed),
		fmt.Sprintf("Wins / Losses:  %s / %s",
			SuccessStyle.Render(fmt.Sprintf("%d", s.Wins)),
			ErrorStyle.Render(fmt.Sprintf("%d", s.Losses))),
		fmt.Sprintf("Win Rate:       %s %s", winBar.ViewAs(winRatio),
			HeaderStyle.Render(fmt.Sprintf("%.1f%%", s.WinRate()))),
		fmt.Sprintf("Avg Guesses:    %.1f", s.AvgGuesses()),
		fmt.Sprintf("Best Time:      %s", best),
		fmt.Sprintf("Current Streak: %s", SuccessStyle.Render(fmt.Sprintf("%d", s.CurrentStreak))),
		fmt.Sprintf("Best Streak:    %s", GoldStyle.Render(fmt.Sprintf("%d", s.BestStreak))),
	}
	return BoxStyle.Render(strings.Join(lines, "\n"))
}
