package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Difficulty uint8

const (
	DifficultyHard Difficulty = iota
	DifficultyMedium
	DifficultyEasy
)

// weaknessEasy is the chance that an easy engine ignores its best move and
// plays a random legal one instead.
const weaknessEasy = 0.5

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard", "":
		return DifficultyHard, nil
	default:
		return DifficultyHard, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return ""
	}
}

// Weakness returns the probability of playing a random move. Medium and hard
// share the greedy one ply selector.
func (d Difficulty) Weakness() float64 {
	if d == DifficultyEasy {
		return weaknessEasy
	}
	return 0
}
