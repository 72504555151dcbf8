package bot

import (
	"errors"
	"math/rand"

	"punto/internal/domain"
)

// ErrNoMove is returned when the player holds no card or no cell accepts it.
var ErrNoMove = errors.New("no legal move")

// RandomBot plays its top card on any legal cell.
type RandomBot struct {
	rng *rand.Rand
}

func (b *RandomBot) CalculateMove(round *domain.Round, playerIndex int) (domain.Move, error) {
	if playerIndex < 0 || playerIndex >= len(round.Players) {
		return domain.Move{}, ErrNoMove
	}
	// Top card first, like a human drawing from the pile; later cards only when it is stuck.
	for _, card := range round.Players[playerIndex].Deck {
		cells := domain.LegalCells(&round.State, card)
		if len(cells) == 0 {
			continue
		}
		cell := cells[b.rng.Intn(len(cells))]
		return domain.Move{Row: cell.Row, Col: cell.Col, Card: card}, nil
	}
	return domain.Move{}, ErrNoMove
}
