package domain

// tiebreakWindow is the run length counted by the drawn-out tiebreak.
const tiebreakWindow = 3

// CountThrees counts, per playable non-neutral color, every window of three
// consecutive same-colored cards across all four orientations. Overlapping windows
// are counted separately, so a run of five scores three.
func CountThrees(board *Board, neutral Color) map[Color]int {
	counts := make(map[Color]int, 4)
	for _, c := range Palette() {
		if c != neutral {
			counts[c] = 0
		}
	}

	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			for _, dir := range lineDirections {
				color, ok := windowColor(board, row, col, dir, tiebreakWindow)
				if !ok {
					continue
				}
				if _, counted := counts[color]; counted {
					counts[color]++
				}
			}
		}
	}
	return counts
}

// MostThrees returns the color with the strictly highest count. When the highest
// count is shared it returns ColorNone and the tied colors in palette order.
func MostThrees(counts map[Color]int) (Color, []Color) {
	best := -1
	var leaders []Color
	for _, c := range Palette() {
		n, ok := counts[c]
		if !ok {
			continue
		}
		switch {
		case n > best:
			best = n
			leaders = []Color{c}
		case n == best:
			leaders = append(leaders, c)
		}
	}
	if len(leaders) == 1 {
		return leaders[0], nil
	}
	return ColorNone, leaders
}
