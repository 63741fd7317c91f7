package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Difficulty - strength of the computer opponent.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

func (that Difficulty) String() string {
	switch that {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(that))
	}
}

func (that Difficulty) IsValid() bool {
	return that >= Easy && that <= Hard
}

// ParseDifficulty - accepts a level name or its menu number.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}
