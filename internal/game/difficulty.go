package game

import (
	"fmt"
	"strings"
)

// Difficulty selects the attempt budget and the scoring base for a round.
// The tuning pairs are fixed: harder settings trade attempts for points.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Impossible
)

type difficultyInfo struct {
	label       string
	maxAttempts int
	basePoints  int
}

var difficultyTable = [...]difficultyInfo{
	Easy:       {"Easy", 15, 100},
	Medium:     {"Medium", 10, 200},
	Hard:       {"Hard", 5, 400},
	Impossible: {"Impossible", 3, 1000},
}

// Difficulties returns all difficulties in ascending order of challenge.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Impossible}
}

// String returns the display label.
func (d Difficulty) String() string {
	if d < Easy || d > Impossible {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyTable[d].label
}

// MaxAttempts returns the attempt budget for a round at this difficulty.
func (d Difficulty) MaxAttempts() int {
	return difficultyTable[d].maxAttempts
}

// BasePoints returns the scoring base for this difficulty.
func (d Difficulty) BasePoints() int {
	return difficultyTable[d].basePoints
}

// ParseDifficulty accepts a label ("easy") or a menu ordinal ("1"-"4").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy":
		return Easy, nil
	case "2", "medium":
		return Medium, nil
	case "3", "hard":
		return Hard, nil
	case "4", "impossible":
		return Impossible, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}
