package domain

import "fmt"

// Color identifies the owner of a card. ColorNone marks an empty cell.
type Color int8

const (
	ColorNone Color = iota
	Red
	Blue
	Green
	Yellow
)

var colorNames = map[Color]string{
	ColorNone: "none",
	Red:       "red",
	Blue:      "blue",
	Green:     "green",
	Yellow:    "yellow",
}

// Palette returns the four playable colors in seat order.
func Palette() []Color {
	return []Color{Red, Blue, Green, Yellow}
}

// Valid reports whether c is one of the playable colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int8(c))
}

// ParseColor maps a lowercase color name to its Color. Only playable colors are accepted.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if c != ColorNone && name == s {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", s)
}
