package bot

import (
	"punto/internal/domain"
)

// GreedyBot evaluates every legal placement of every distinct card in its deck and
// plays the best one. Ties keep the first candidate in deck and row-major order.
type GreedyBot struct {
	Tuning Tuning
}

func (b *GreedyBot) CalculateMove(round *domain.Round, playerIndex int) (domain.Move, error) {
	if playerIndex < 0 || playerIndex >= len(round.Players) {
		return domain.Move{}, ErrNoMove
	}
	player := round.Players[playerIndex]
	state := &round.State

	var (
		best      domain.Move
		bestScore float64
		found     bool
	)
	seen := make(map[domain.Card]bool, len(player.Deck))
	for _, card := range player.Deck {
		if seen[card] {
			continue
		}
		seen[card] = true
		for _, cell := range domain.LegalCells(state, card) {
			score := b.score(round, player, cell, card)
			if !found || score > bestScore {
				best = domain.Move{Row: cell.Row, Col: cell.Col, Card: card}
				bestScore = score
				found = true
			}
		}
	}
	if !found {
		return domain.Move{}, ErrNoMove
	}
	return best, nil
}

func (b *GreedyBot) score(round *domain.Round, player *domain.Player, cell domain.Position, card domain.Card) float64 {
	board := round.State.Board
	neutral := round.State.Neutral
	winLength := round.State.Rules.WinLength
	t := b.Tuning

	var score float64
	existing := board.At(cell.Row, cell.Col)
	if existing.IsEmpty() {
		score -= t.HighCardPenalty * float64(card.Value)
	} else if !player.Owns(existing.Color) && existing.Color != neutral {
		score += t.BlockWeight * float64(lineThrough(board, cell, existing.Color))
	}

	for _, opponent := range domain.Palette() {
		if player.Owns(opponent) || opponent == neutral || opponent == card.Color {
			continue
		}
		if lineThrough(board, cell, opponent) >= winLength {
			score += t.ThreatBonus
		}
	}

	if card.Color == neutral {
		return score
	}
	run := lineThrough(board, cell, card.Color)
	if run >= winLength {
		score += t.WinBonus
	}
	return score + t.RunWeight*float64(run)
}

// lineThrough returns the longest line of color that would pass through cell if cell
// held that color, over all four orientations.
func lineThrough(board *domain.Board, cell domain.Position, color domain.Color) int {
	longest := 0
	for _, dir := range [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}} {
		n := 1
		for _, sign := range [2]int{1, -1} {
			r, c := cell.Row+sign*dir[0], cell.Col+sign*dir[1]
			for board.IsOccupied(r, c) && board.At(r, c).Color == color {
				n++
				r += sign * dir[0]
				c += sign * dir[1]
			}
		}
		longest = max(longest, n)
	}
	return longest
}
