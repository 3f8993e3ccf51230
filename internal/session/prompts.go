package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/numberduel/internal/game"
	"github.com/lox/numberduel/internal/search"
	"github.com/lox/numberduel/internal/tui"
)

// promptLine prints a prompt and reads one trimmed line. EOF maps to
// ErrInputClosed so the session can unwind to a clean exit.
func (s *Session) promptLine(prompt string) (string, error) {
	fmt.Fprintf(s.out, "  %s %s", tui.PromptStyle.Render("▸"), prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptGuess reads an integer in [RangeLow, RangeHigh], reprompting on
// anything else without touching round state.
func (s *Session) promptGuess(prompt string) (int, error) {
	for {
		raw, err := s.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		guess, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(s.out, "  "+tui.ErrorStyle.Render("Please enter a valid integer."))
			continue
		}
		if guess < game.RangeLow || guess > game.RangeHigh {
			fmt.Fprintln(s.out, "  "+tui.ErrorStyle.Render(
				fmt.Sprintf("Out of range! Pick a number between %d and %d.", game.RangeLow, game.RangeHigh)))
			continue
		}
		return guess, nil
	}
}

// promptDifficulty shows the difficulty menu and reads a choice. An empty
// line selects the configured default difficulty, when there is one.
func (s *Session) promptDifficulty() (game.Difficulty, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, tui.DifficultyList())
	prompt := "Choice [1-4]: "
	if s.opts.DefaultDifficulty != "" {
		prompt = fmt.Sprintf("Choice [1-4, enter = %s]: ", s.opts.DefaultDifficulty)
	}
	for {
		raw, err := s.promptLine(prompt)
		if err != nil {
			return game.Easy, err
		}
		if raw == "" && s.opts.DefaultDifficulty != "" {
			raw = s.opts.DefaultDifficulty
		}
		difficulty, err := game.ParseDifficulty(raw)
		if err != nil {
			fmt.Fprintln(s.out, "  "+tui.ErrorStyle.Render("Invalid choice. Enter 1-4."))
			continue
		}
		return difficulty, nil
	}
}

// promptFeedback reads a higher/lower/correct response for an AI guess.
func (s *Session) promptFeedback() (search.Feedback, error) {
	for {
		raw, err := s.promptLine("[H]igher / [L]ower / [C]orrect: ")
		if err != nil {
			return search.Correct, err
		}
		switch strings.ToLower(raw) {
		case "h", "higher":
			return search.Higher, nil
		case "l", "lower":
			return search.Lower, nil
		case "c", "correct":
			return search.Correct, nil
		}
		fmt.Fprintln(s.out, "  "+tui.ErrorStyle.Render("Enter H, L, or C."))
	}
}
