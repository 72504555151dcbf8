package domain

import "testing"

func TestBoardIsOnBoard(t *testing.T) {
	b := NewBoard(DefaultBoardSize)
	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{name: "origin", row: 0, col: 0, want: true},
		{name: "center", row: 5, col: 5, want: true},
		{name: "last cell", row: 10, col: 10, want: true},
		{name: "negative row", row: -1, col: 3, want: false},
		{name: "col past edge", row: 3, col: 11, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsOnBoard(tt.row, tt.col); got != tt.want {
				t.Fatalf("IsOnBoard(%d, %d) = %t, want %t", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestBoardPlaceAndOccupied(t *testing.T) {
	b := NewBoard(DefaultBoardSize)
	if b.IsOccupied(5, 5) {
		t.Fatalf("fresh board should be empty")
	}
	b.Place(5, 5, Card{Value: 7, Color: Red})
	if !b.IsOccupied(5, 5) {
		t.Fatalf("cell (5,5) should be occupied after Place")
	}
	if got := b.At(5, 5); got != (Card{Value: 7, Color: Red}) {
		t.Fatalf("At(5,5) = %v, want red-7", got)
	}
	if b.IsOccupied(-1, 5) {
		t.Fatalf("off-board cells are never occupied")
	}
	if got := b.OccupiedCount(); got != 1 {
		t.Fatalf("OccupiedCount() = %d, want 1", got)
	}
}

func TestBoardCenter(t *testing.T) {
	if got := NewBoard(11).Center(); got != (Position{Row: 5, Col: 5}) {
		t.Fatalf("Center() = %+v, want (5,5)", got)
	}
	if got := NewBoard(7).Center(); got != (Position{Row: 3, Col: 3}) {
		t.Fatalf("Center() = %+v, want (3,3)", got)
	}
}

func TestOccupiedBounds(t *testing.T) {
	b := NewBoard(DefaultBoardSize)
	empty := b.OccupiedBounds()
	if !empty.Empty() {
		t.Fatalf("empty board bounds = %+v, want empty sentinel", empty)
	}
	if empty.Height() != 0 || empty.Width() != 0 {
		t.Fatalf("empty bounds size = %dx%d, want 0x0", empty.Height(), empty.Width())
	}

	b.Place(5, 5, Card{Value: 1, Color: Red})
	b.Place(3, 6, Card{Value: 2, Color: Blue})
	b.Place(6, 2, Card{Value: 3, Color: Green})

	got := b.OccupiedBounds()
	want := Bounds{MinRow: 3, MaxRow: 6, MinCol: 2, MaxCol: 6}
	if got != want {
		t.Fatalf("OccupiedBounds() = %+v, want %+v", got, want)
	}
	if got.Height() != 4 || got.Width() != 5 {
		t.Fatalf("bounds size = %dx%d, want 4x5", got.Height(), got.Width())
	}
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(DefaultBoardSize)
	b.Place(5, 5, Card{Value: 4, Color: Green})
	c := b.Clone()
	c.Place(5, 6, Card{Value: 2, Color: Green})
	if b.IsOccupied(5, 6) {
		t.Fatalf("clone must not share cells with the original")
	}
}
