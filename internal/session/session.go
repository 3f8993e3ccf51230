// Package session runs the interactive menu loop and the three game modes.
// All input is line-oriented; invalid input reprompts without mutating any
// round state.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/numberduel/internal/game"
	"github.com/lox/numberduel/internal/leaderboard"
	"github.com/lox/numberduel/internal/search"
	"github.com/lox/numberduel/internal/stats"
	"github.com/lox/numberduel/internal/tui"
)

// ErrInputClosed is returned when stdin reaches EOF mid-session.
var ErrInputClosed = errors.New("input closed")

var aiThoughts = []string{
	"Recalibrating neural pathways...",
	"Consulting the probability matrix...",
	"Running Bayesian inference...",
	"Analyzing the search space...",
	"Narrowing down possibilities...",
	"Eliminating improbable candidates...",
	"Applying binary search heuristic...",
	"Computing optimal midpoint...",
}

// Options configures a Session.
type Options struct {
	PlayerName        string // pre-set name; prompted for when empty
	DefaultDifficulty string // chosen when the difficulty prompt is left blank
	TypeDelay         time.Duration
	ClearScreen       bool
}

// Session owns the interactive loop and wires rounds to the stores.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger

	statsStore *stats.Store
	lbStore    *leaderboard.Store

	opts       Options
	playerName string
}

// New constructs a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, rng *rand.Rand, clock quartz.Clock, logger *log.Logger, statsStore *stats.Store, lbStore *leaderboard.Store, opts Options) *Session {
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		rng:        rng,
		clock:      clock,
		logger:     logger,
		statsStore: statsStore,
		lbStore:    lbStore,
		opts:       opts,
		playerName: opts.PlayerName,
	}
}

// Run drives the menu loop until the player quits or the context is
// cancelled. It returns nil on a normal quit.
func (s *Session) Run(ctx context.Context) error {
	s.clearScreen()
	fmt.Fprintln(s.out, tui.Banner())
	fmt.Fprintln(s.out)

	if s.playerName == "" {
		name, err := s.promptLine("Enter your name: ")
		if err != nil {
			return err
		}
		if name == "" {
			name = "Anonymous"
		}
		s.playerName = name
	}
	s.logger.Debug("session started", "player", s.playerName)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprintln(s.out)
		choice, err := tui.RunMenu()
		if err != nil {
			return err
		}

		switch choice {
		case tui.ChoiceClassic:
			err = s.playClassic()
		case tui.ChoiceAI:
			err = s.playAI()
		case tui.ChoiceDuel:
			err = s.playDuel()
		case tui.ChoiceLeaderboard:
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, tui.LeaderboardView(s.lbStore.Load()))
		case tui.ChoiceStats:
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, tui.StatsView(s.statsStore.Load()))
		case tui.ChoiceQuit:
			s.typeLine(tui.AccentStyle.Render("Thanks for playing! See you next time."))
			return nil
		}
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				s.typeLine(tui.AccentStyle.Render("Thanks for playing! See you next time."))
				return nil
			}
			return err
		}

		switch choice {
		case tui.ChoiceClassic, tui.ChoiceAI, tui.ChoiceDuel:
			if _, err := s.promptLine("Press Enter to return to the menu... "); err != nil {
				return nil
			}
			s.clearScreen()
			fmt.Fprintln(s.out, tui.Banner())
		}
	}
}

// playClassic runs one round of the human guessing the hidden number.
func (s *Session) playClassic() error {
	difficulty, err := s.promptDifficulty()
	if err != nil {
		return err
	}
	round := game.NewRound(game.Classic, difficulty, s.rng, s.clock)
	s.logger.Debug("classic round started", "difficulty", difficulty, "target", round.Target())

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, tui.BoxStyle.Render(fmt.Sprintf(
		"%s\n\nI'm thinking of a number between %d and %d\nDifficulty: %s  ·  Attempts: %d",
		tui.HeaderStyle.Render("CLASSIC MODE"),
		game.RangeLow, game.RangeHigh,
		difficulty, difficulty.MaxAttempts())))
	fmt.Fprintln(s.out)

	for round.AttemptsRemaining() > 0 {
		fmt.Fprintf(s.out, "  Attempts: %s\n", tui.AttemptBar(round.AttemptsRemaining(), difficulty.MaxAttempts()))
		if line := tui.HistoryLine(round.History(), 5); line != "" {
			fmt.Fprintf(s.out, "  %s\n", line)
		}

		guess, err := s.promptGuess("Your guess: ")
		if err != nil {
			return err
		}
		if err := round.RecordGuess(guess); err != nil {
			return err
		}

		if round.Won() {
			s.finishWin(round)
			return nil
		}
		fmt.Fprintf(s.out, "  %s  %s\n\n",
			tui.DirectionArrow(guess, round.Target()),
			tui.TemperatureGauge(guess, round.Target(), game.RangeLow, game.RangeHigh))
	}

	s.finishLoss(round)
	return nil
}

// playAI has the search engine guess the player's secret number from
// higher/lower/correct responses. Nothing is persisted; the player can lie,
// and a contradiction simply ends the round.
func (s *Session) playAI() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, tui.BoxStyle.Render(fmt.Sprintf(
		"%s\n\nThink of a number between %d and %d.\nThe AI will try to guess it!\n\n%s",
		tui.HeaderStyle.Render("AI MODE"),
		game.RangeLow, game.RangeHigh,
		tui.PromptStyle.Render("Respond: [H]igher  [L]ower  [C]orrect"))))
	if _, err := s.promptLine("Press Enter when you have your number... "); err != nil {
		return err
	}

	tracker := search.NewTracker(game.RangeLow, game.RangeHigh)
	attempts := 0

	for {
		guess, err := tracker.NextGuess()
		if err != nil {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, tui.InconsistentSummary())
			return nil
		}
		attempts++

		s.aiThink()
		low, high := tracker.Bounds()
		fmt.Fprintf(s.out, "\n  %s  %s\n",
			tui.AccentStyle.Render(fmt.Sprintf("Attempt #%d", attempts)),
			tui.InfoStyle.Render(fmt.Sprintf("[Range: %d–%d]", low, high)))
		fmt.Fprintf(s.out, "  AI guesses: %s\n", tui.GoldStyle.Render(fmt.Sprintf("%d", guess)))

		fb, err := s.promptFeedback()
		if err != nil {
			return err
		}
		if fb == search.Correct {
			s.showAIWin(guess, attempts)
			return nil
		}
		if fb == search.Higher {
			fmt.Fprintln(s.out, "  "+tui.SuccessStyle.Render("▲ Going higher..."))
		} else {
			fmt.Fprintln(s.out, "  "+tui.ErrorStyle.Render("▼ Going lower..."))
		}
		if err := tracker.Narrow(guess, fb); err != nil {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, tui.InconsistentSummary())
			return nil
		}
	}
}

func (s *Session) showAIWin(guess, attempts int) {
	optimal := search.OptimalGuesses(game.RangeHigh - game.RangeLow + 1)
	efficiency := "Optimal!"
	if attempts > optimal {
		efficiency = fmt.Sprintf("%d extra guess(es)", attempts-optimal)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, tui.WinBoxStyle.Render(fmt.Sprintf(
		"%s\n\nYour number was %s\nFound in %d guess(es)\nTheoretical optimum: %d guesses (binary search)\n%s",
		tui.ColdStyle.Render("★  AI WINS!  ★"),
		tui.GoldStyle.Render(fmt.Sprintf("%d", guess)),
		attempts, optimal,
		tui.SuccessStyle.Render(efficiency))))
}

// playDuel races the player and the AI against the same hidden number. The
// player reports feedback for the AI's guesses, which is a trust boundary:
// lying can only hurt the AI, or end the duel as inconsistent.
func (s *Session) playDuel() error {
	difficulty, err := s.promptDifficulty()
	if err != nil {
		return err
	}
	round := game.NewRound(game.Duel, difficulty, s.rng, s.clock)
	s.logger.Debug("duel round started", "difficulty", difficulty, "target", round.Target())

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, tui.BoxStyle.Render(fmt.Sprintf(
		"%s\n\nBoth you and the AI are guessing the same number!\nYou alternate turns. First to guess correctly wins.\nAttempts: %d",
		tui.HeaderStyle.Render("DUEL MODE"),
		difficulty.MaxAttempts())))
	fmt.Fprintln(s.out)

	engine := game.NewDuelEngine(round, s.logger,
		func(turn int, r *game.Round) (int, error) {
			return s.promptGuess("Your guess: ")
		},
		func(aiGuess int) (search.Feedback, error) {
			return s.promptFeedback()
		},
		game.DuelHooks{
			TurnStarted: func(turn int, r *game.Round) {
				fmt.Fprintln(s.out, tui.InfoStyle.Render("────────────────────────────────────"))
				fmt.Fprintln(s.out, tui.AccentStyle.Render(fmt.Sprintf("— Round %d —", turn)))
				fmt.Fprintf(s.out, "\n  %s\n", tui.PromptStyle.Render(fmt.Sprintf("%s's turn", s.playerName)))
				fmt.Fprintf(s.out, "  Attempts left: %s\n", tui.AttemptBar(r.AttemptsRemaining(), r.Difficulty.MaxAttempts()))
			},
			HumanMissed: func(guess int, fb search.Feedback) {
				fmt.Fprintf(s.out, "  %s  %s\n",
					tui.DirectionArrow(guess, round.Target()),
					tui.TemperatureGauge(guess, round.Target(), game.RangeLow, game.RangeHigh))
			},
			AIGuessed: func(turn, guess int) {
				fmt.Fprintf(s.out, "\n  %s\n", tui.ErrorStyle.Render("AI's turn"))
				s.aiThink()
				fmt.Fprintf(s.out, "  AI guesses: %s\n", tui.GoldStyle.Render(fmt.Sprintf("%d", guess)))
			},
			AINarrowed: func(fb search.Feedback) {
				if fb == search.Higher {
					fmt.Fprintln(s.out, "  "+tui.SuccessStyle.Render("▲ AI going higher"))
				} else {
					fmt.Fprintln(s.out, "  "+tui.ErrorStyle.Render("▼ AI going lower"))
				}
				fmt.Fprintln(s.out)
			},
		})

	result, err := engine.Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	switch result.Outcome {
	case game.DuelHumanWon:
		fmt.Fprintln(s.out, tui.WinBoxStyle.Render(fmt.Sprintf(
			"%s\n\nThe number was %s\nYou beat the AI in %d round(s)!",
			tui.SuccessStyle.Render("★ YOU WIN THE DUEL! ★"),
			tui.GoldStyle.Render(fmt.Sprintf("%d", round.Target())),
			round.AttemptsUsed())))
		s.finishWin(round)
	case game.DuelAIWon:
		fmt.Fprintln(s.out, tui.LossBoxStyle.Render(fmt.Sprintf(
			"%s\n\nThe number was %s\nAI found it in %d guess(es)\n%s",
			tui.ErrorStyle.Render("AI WINS THE DUEL!"),
			tui.GoldStyle.Render(fmt.Sprintf("%d", round.Target())),
			len(result.AIGuesses),
			tui.InfoStyle.Render("Binary search is powerful!"))))
		s.finishLoss(round)
	case game.DuelDraw:
		fmt.Fprintln(s.out, tui.DrawSummary(round.Target()))
		s.finishLoss(round)
	case game.DuelInconsistent:
		// Not persisted: the feedback contradicted itself, so the round
		// never reached a fair outcome.
		fmt.Fprintln(s.out, tui.InconsistentSummary())
	}
	return nil
}

// finishWin scores a won round, persists stats and the leaderboard entry,
// and renders the summary. The streak used for scoring is the streak going
// into this round.
func (s *Session) finishWin(round *game.Round) {
	playerStats := s.statsStore.Load()
	score := game.Score(round, playerStats.CurrentStreak)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, tui.WinSummary(round, score))
	s.typeLine(tui.SuccessStyle.Render("Congratulations, " + s.playerName + "!"))

	if err := s.statsStore.RecordWin(playerStats, round); err != nil {
		s.logger.Error("failed to record win", "error", err)
	}
	entry := leaderboard.NewEntry(s.playerName, score, round, s.clock)
	if _, err := s.lbStore.Append(s.lbStore.Load(), entry); err != nil {
		s.logger.Error("failed to save leaderboard entry", "error", err)
	}
}

// finishLoss persists the loss and renders the summary. Losses are not
// scored and never reach the leaderboard.
func (s *Session) finishLoss(round *game.Round) {
	if round.Mode == game.Classic {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, tui.LossSummary(round))
	}
	playerStats := s.statsStore.Load()
	if err := s.statsStore.RecordLoss(playerStats, round); err != nil {
		s.logger.Error("failed to record loss", "error", err)
	}
}

// aiThink prints one flavor line to sell the AI's "deliberation".
func (s *Session) aiThink() {
	thought := aiThoughts[s.rng.IntN(len(aiThoughts))]
	fmt.Fprintf(s.out, "  %s\n", tui.InfoStyle.Render(thought))
	if s.opts.TypeDelay > 0 {
		time.Sleep(s.opts.TypeDelay * 3)
	}
}

// typeLine prints a line with a small delay for emphasis.
func (s *Session) typeLine(line string) {
	if s.opts.TypeDelay > 0 {
		time.Sleep(s.opts.TypeDelay)
	}
	fmt.Fprintln(s.out, "  "+line)
}

func (s *Session) clearScreen() {
	if s.opts.ClearScreen {
		termenv.ClearScreen()
	}
}
