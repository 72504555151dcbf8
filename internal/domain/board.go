package domain

const (
	// DefaultBoardSize is the side length of the reference board.
	DefaultBoardSize = 11
	// DefaultMaxSpan is the widest the occupied area may grow on either axis.
	DefaultMaxSpan = 6
)

// Position addresses a board cell.
type Position struct {
	Row int
	Col int
}

// Bounds is the occupied bounding box of a board. MinRow > MaxRow means empty.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Empty reports whether no cell was occupied when the bounds were computed.
func (b Bounds) Empty() bool {
	return b.MinRow > b.MaxRow
}

// Height is the number of distinct occupied rows spanned.
func (b Bounds) Height() int {
	if b.Empty() {
		return 0
	}
	return b.MaxRow - b.MinRow + 1
}

// Width is the number of distinct occupied columns spanned.
func (b Bounds) Width() int {
	if b.Empty() {
		return 0
	}
	return b.MaxCol - b.MinCol + 1
}

// Board is a square grid of placed cards.
type Board struct {
	size  int
	cells []Card
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	if size <= 0 {
		size = DefaultBoardSize
	}
	return &Board{size: size, cells: make([]Card, size*size)}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Center returns the mandatory first-move cell.
func (b *Board) Center() Position {
	return Position{Row: b.size / 2, Col: b.size / 2}
}

// IsOnBoard reports whether both coordinates are within [0, size).
func (b *Board) IsOnBoard(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// IsOccupied reports whether the cell holds a real card.
func (b *Board) IsOccupied(row, col int) bool {
	return b.IsOnBoard(row, col) && !b.cells[row*b.size+col].IsEmpty()
}

// At returns the card at the cell, or the empty card when off-board.
func (b *Board) At(row, col int) Card {
	if !b.IsOnBoard(row, col) {
		return Card{}
	}
	return b.cells[row*b.size+col]
}

// Place writes card into the cell. Callers validate the move first.
func (b *Board) Place(row, col int, card Card) {
	b.cells[row*b.size+col] = card
}

// OccupiedBounds scans every cell and returns the occupied bounding box.
func (b *Board) OccupiedBounds() Bounds {
	bounds := Bounds{MinRow: b.size, MaxRow: -1, MinCol: b.size, MaxCol: -1}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if !b.IsOccupied(row, col) {
				continue
			}
			bounds.MinRow = min(bounds.MinRow, row)
			bounds.MaxRow = max(bounds.MaxRow, row)
			bounds.MinCol = min(bounds.MinCol, col)
			bounds.MaxCol = max(bounds.MaxCol, col)
		}
	}
	return bounds
}

// OccupiedCount returns the number of cells holding a card.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{size: b.size, cells: make([]Card, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}
