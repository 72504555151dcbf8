package domain

var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsLegal reports whether a card may be placed at (row, col) given adjacency and span
// constraints. It does not compare card values; see CanPlace.
func IsLegal(state *GameState, row, col int) bool {
	return placementError(state, row, col) == nil
}

// CanPlace runs the full placement check for card at (row, col): board bounds,
// first move, play-area span, adjacency and, on occupied cells, strict value dominance.
func CanPlace(state *GameState, row, col int, card Card) error {
	if !state.Board.IsOnBoard(row, col) {
		return malformed(ReasonOutOfBounds)
	}
	if _, err := NewCard(card.Value, card.Color); err != nil {
		return malformed(ReasonInvalidCard)
	}
	if err := placementError(state, row, col); err != nil {
		return err
	}
	if existing := state.Board.At(row, col); !existing.IsEmpty() && card.Value <= existing.Value {
		return illegal(ReasonValueNotHigher)
	}
	return nil
}

// LegalCells lists every cell card may be placed on this move, in row-major order.
func LegalCells(state *GameState, card Card) []Position {
	var cells []Position
	size := state.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if CanPlace(state, row, col, card) == nil {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}
	return cells
}

func placementError(state *GameState, row, col int) *MoveError {
	board := state.Board
	if !board.IsOnBoard(row, col) {
		return malformed(ReasonOutOfBounds)
	}

	center := board.Center()
	bounds := board.OccupiedBounds()
	if state.Turn == 0 || bounds.Empty() {
		if row != center.Row || col != center.Col {
			return illegal(ReasonFirstMoveNotCenter)
		}
		return nil
	}

	span := state.Rules.MaxSpan
	if span <= 0 {
		span = DefaultMaxSpan
	}
	// Once an axis spans the limit, new cards must stay inside that window.
	if bounds.Height() >= span && (row < bounds.MaxRow-(span-1) || row > bounds.MinRow+(span-1)) {
		return illegal(ReasonOutsidePlayArea)
	}
	if bounds.Width() >= span && (col < bounds.MaxCol-(span-1) || col > bounds.MinCol+(span-1)) {
		return illegal(ReasonOutsidePlayArea)
	}

	if board.IsOccupied(row, col) {
		return nil
	}
	for _, off := range neighbourOffsets {
		if board.IsOccupied(row+off[0], col+off[1]) {
			return nil
		}
	}
	return illegal(ReasonNotAdjacent)
}
