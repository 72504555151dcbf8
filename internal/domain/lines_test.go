package domain

import "testing"

type placement struct {
	row, col int
	color    Color
}

func boardWith(cells ...placement) *Board {
	b := NewBoard(DefaultBoardSize)
	for i, p := range cells {
		b.Place(p.row, p.col, Card{Value: i%MaxCardValue + 1, Color: p.color})
	}
	return b
}

func line(row, col, dr, dc, n int, color Color) []placement {
	out := make([]placement, n)
	for i := range out {
		out[i] = placement{row: row + dr*i, col: col + dc*i, color: color}
	}
	return out
}

func TestHasRun(t *testing.T) {
	tests := []struct {
		name    string
		cells   []placement
		length  int
		neutral Color
		want    bool
	}{
		{name: "empty board", length: 4, want: false},
		{name: "horizontal four", cells: line(5, 3, 0, 1, 4, Red), length: 4, want: true},
		{name: "vertical four", cells: line(2, 7, 1, 0, 4, Blue), length: 4, want: true},
		{name: "diagonal down-right", cells: line(1, 1, 1, 1, 4, Green), length: 4, want: true},
		{name: "diagonal down-left", cells: line(3, 9, 1, -1, 4, Yellow), length: 4, want: true},
		{name: "three is not enough", cells: line(5, 5, 0, 1, 3, Red), length: 4, want: false},
		{name: "touching right edge", cells: line(0, 7, 0, 1, 4, Red), length: 4, want: true},
		{name: "touching bottom edge", cells: line(7, 10, 1, 0, 4, Red), length: 4, want: true},
		{
			name:   "mixed colors break the run",
			cells:  append(line(5, 3, 0, 1, 2, Red), line(5, 5, 0, 1, 2, Blue)...),
			length: 4,
			want:   false,
		},
		{name: "neutral run ignored", cells: line(5, 3, 0, 1, 4, Yellow), length: 4, neutral: Yellow, want: false},
		{name: "non-neutral run counts", cells: line(5, 3, 0, 1, 4, Red), length: 4, neutral: Yellow, want: true},
		{name: "four short of five", cells: line(5, 3, 0, 1, 4, Red), length: 5, want: false},
		{name: "five in a row", cells: line(5, 3, 0, 1, 5, Red), length: 5, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.cells...)
			if got := HasRun(b, tt.length, tt.neutral); got != tt.want {
				t.Fatalf("HasRun(length=%d, neutral=%v) = %t, want %t", tt.length, tt.neutral, got, tt.want)
			}
		})
	}
}

func TestFindRunColor(t *testing.T) {
	b := boardWith(line(2, 2, 1, 1, 4, Green)...)
	color, ok := FindRun(b, 4, ColorNone)
	if !ok || color != Green {
		t.Fatalf("FindRun() = %v, %t; want green, true", color, ok)
	}
	if _, ok := FindRun(b, 0, ColorNone); ok {
		t.Fatalf("FindRun with length 0 must report no run")
	}
}
