package game

import "fmt"

// Mode identifies which game variant a round belongs to.
type Mode int

const (
	// Classic has the human guessing a hidden number.
	Classic Mode = iota
	// AI has the program guessing the human's number from feedback.
	AI
	// Duel races the human and the AI against the same hidden number.
	Duel
)

// String returns the display label, also used in persisted leaderboard rows.
func (m Mode) String() string {
	switch m {
	case Classic:
		return "Classic"
	case AI:
		return "AI"
	case Duel:
		return "Duel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
