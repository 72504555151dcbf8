package domain

// lineDirections are the four orientations a run can take: horizontal, vertical,
// diagonal down-right and diagonal down-left.
var lineDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// HasRun reports whether the board holds length consecutive same-colored cards in
// any orientation. Runs of the neutral color are ignored; pass ColorNone when the
// round has no neutral color.
func HasRun(board *Board, length int, neutral Color) bool {
	_, ok := FindRun(board, length, neutral)
	return ok
}

// FindRun returns the color of the first qualifying run found.
func FindRun(board *Board, length int, neutral Color) (Color, bool) {
	if length <= 0 {
		return ColorNone, false
	}
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			for _, dir := range lineDirections {
				color, ok := windowColor(board, row, col, dir, length)
				if !ok || (neutral != ColorNone && color == neutral) {
					continue
				}
				return color, true
			}
		}
	}
	return ColorNone, false
}

// windowColor checks the length cells starting at (row, col) along dir and returns
// their shared color when all are occupied by the same color.
func windowColor(board *Board, row, col int, dir [2]int, length int) (Color, bool) {
	first := board.At(row, col)
	if first.IsEmpty() || !first.Color.Valid() {
		return ColorNone, false
	}
	for i := 1; i < length; i++ {
		c := board.At(row+dir[0]*i, col+dir[1]*i)
		if c.IsEmpty() || c.Color != first.Color {
			return ColorNone, false
		}
	}
	return first.Color, true
}
