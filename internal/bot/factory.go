package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel, rng *rand.Rand) (Brain, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch level {
	case BotLevelEasy:
		return &RandomBot{rng: rng}, nil
	case BotLevelGood:
		return &GreedyBot{Tuning: DefaultTuning}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// NewAgent builds the agent for a bot user, picking its strategy from the identity pool.
func NewAgent(userID string) (*Agent, error) {
	level := BotLevelEasy
	name := userID
	if identity, ok := GetBotConfig(userID); ok {
		level = ParseLevel(identity.Difficulty)
		name = identity.DisplayName
	}
	brain, err := NewBrain(level, nil)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: userID, Name: name, Strategy: brain}, nil
}
