package bot

import (
	"errors"

	"punto/internal/domain"
)

// ErrNotSeated is returned when the agent plays a round it is not part of.
var ErrNotSeated = errors.New("bot is not seated in this round")

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current round.
func (a *Agent) Play(round *domain.Round) (domain.Move, error) {
	idx := round.PlayerIndex(a.ID)
	if idx < 0 {
		return domain.Move{}, ErrNotSeated
	}
	return a.Strategy.CalculateMove(round, idx)
}
