package domain

// Move is a request to place card at (Row, Col).
type Move struct {
	Row  int
	Col  int
	Card Card
}

// MoveResult reports what an accepted move changed.
type MoveResult struct {
	Placed          Card
	Replaced        Card // card that was covered, empty if the cell was free
	NextPlayerIndex int
	Outcome         *Outcome // set once the round reached a terminal phase
}

// ApplyMove validates and applies a single move for the player at playerIndex.
// Rejected moves leave the round untouched. On acceptance the card leaves the
// player's deck, the board is checked for a winning line, then for deck
// exhaustion, and otherwise the turn passes on.
func ApplyMove(round *Round, playerIndex int, move Move) (MoveResult, error) {
	state := &round.State
	if state.Phase.Terminal() {
		return MoveResult{}, &MoveError{Kind: ErrInvariantViolation, Reason: ReasonRoundOver}
	}
	if playerIndex != state.CurrentPlayerIndex || playerIndex < 0 || playerIndex >= len(round.Players) {
		return MoveResult{}, illegal(ReasonNotYourTurn)
	}
	if !state.Board.IsOnBoard(move.Row, move.Col) {
		return MoveResult{}, malformed(ReasonOutOfBounds)
	}

	player := round.Players[playerIndex]
	deckIdx := IndexOfCard(player.Deck, move.Card)
	if deckIdx < 0 {
		return MoveResult{}, malformed(ReasonCardNotInDeck)
	}
	if err := CanPlace(state, move.Row, move.Col, move.Card); err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{
		Placed:   move.Card,
		Replaced: state.Board.At(move.Row, move.Col),
	}
	state.Board.Place(move.Row, move.Col, move.Card)
	player.Deck = RemoveCardAt(player.Deck, deckIdx)

	winLength := state.Rules.WinLength
	if winLength <= 0 {
		winLength = DefaultRules().WinLength
	}
	if HasRun(state.Board, winLength, state.Neutral) {
		finishRound(round, &Outcome{
			Phase:       PhaseRoundWon,
			Winner:      move.Card.Color,
			WinnerIndex: round.OwnerIndex(move.Card.Color),
		})
		result.Outcome = state.Outcome
		result.NextPlayerIndex = state.CurrentPlayerIndex
		return result, nil
	}

	advance(round, playerIndex, &result)
	return result, nil
}

// Discard drops the top card of a player who cannot place any card of their deck
// and passes the turn on. It is rejected while a legal placement exists.
func Discard(round *Round, playerIndex int) (MoveResult, error) {
	state := &round.State
	if state.Phase.Terminal() {
		return MoveResult{}, &MoveError{Kind: ErrInvariantViolation, Reason: ReasonRoundOver}
	}
	if playerIndex != state.CurrentPlayerIndex || playerIndex < 0 || playerIndex >= len(round.Players) {
		return MoveResult{}, illegal(ReasonNotYourTurn)
	}
	player := round.Players[playerIndex]
	if len(player.Deck) == 0 {
		return MoveResult{}, malformed(ReasonCardNotInDeck)
	}
	if HasPlayableCard(state, player.Deck) {
		return MoveResult{}, illegal(ReasonHasLegalMove)
	}

	player.Deck = RemoveCardAt(player.Deck, 0)
	var result MoveResult
	advance(round, playerIndex, &result)
	return result, nil
}

// HasPlayableCard reports whether any card of deck has at least one legal cell.
func HasPlayableCard(state *GameState, deck []Card) bool {
	tried := make(map[Card]bool, len(deck))
	for _, card := range deck {
		if tried[card] {
			continue
		}
		tried[card] = true
		if len(LegalCells(state, card)) > 0 {
			return true
		}
	}
	return false
}

// advance ends the round on deck exhaustion or hands the turn to the next player.
func advance(round *Round, playerIndex int, result *MoveResult) {
	state := &round.State
	if round.DecksEmpty() {
		counts := CountThrees(state.Board, state.Neutral)
		winner, tied := MostThrees(counts)
		outcome := &Outcome{
			Phase:       PhaseRoundDrawnOut,
			Winner:      winner,
			WinnerIndex: -1,
			ThreeCounts: counts,
			Tied:        tied,
		}
		if winner != ColorNone {
			outcome.WinnerIndex = round.OwnerIndex(winner)
		}
		finishRound(round, outcome)
		result.Outcome = state.Outcome
		result.NextPlayerIndex = state.CurrentPlayerIndex
		return
	}

	state.Turn++
	state.CurrentPlayerIndex = nextPlayerWithCards(round, playerIndex)
	result.NextPlayerIndex = state.CurrentPlayerIndex
}

func finishRound(round *Round, outcome *Outcome) {
	round.State.Phase = outcome.Phase
	round.State.Outcome = outcome
	if outcome.WinnerIndex >= 0 {
		round.Players[outcome.WinnerIndex].Wins++
	}
}

// nextPlayerWithCards walks the seat order from the player after from and returns
// the first one still holding cards. The caller guarantees at least one exists.
func nextPlayerWithCards(round *Round, from int) int {
	n := len(round.Players)
	for step := 1; step <= n; step++ {
		idx := (from + step) % n
		if len(round.Players[idx].Deck) > 0 {
			return idx
		}
	}
	return (from + 1) % n
}
