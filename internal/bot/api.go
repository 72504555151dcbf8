package bot

import (
	"punto/internal/domain"
)

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(round *domain.Round, playerIndex int) (domain.Move, error)
}

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelEasy BotLevel = iota
	BotLevelGood
)

// ParseLevel maps an identity difficulty string to a BotLevel. Unknown values play easy.
func ParseLevel(difficulty string) BotLevel {
	switch difficulty {
	case "medium", "hard":
		return BotLevelGood
	default:
		return BotLevelEasy
	}
}
