package domain

import (
	"fmt"
	"math/rand"
)

const (
	// MinCardValue and MaxCardValue bound the face value of a real card.
	MinCardValue = 1
	MaxCardValue = 9
	// CopiesPerValue is how many cards of each value a color deck holds.
	CopiesPerValue = 2
)

// Card is a single Punto card. The zero value is the empty cell placeholder.
type Card struct {
	Value int
	Color Color
}

// NewCard validates value and color before building a Card.
func NewCard(value int, color Color) (Card, error) {
	if value < MinCardValue || value > MaxCardValue {
		return Card{}, fmt.Errorf("card value %d out of range %d..%d", value, MinCardValue, MaxCardValue)
	}
	if !color.Valid() {
		return Card{}, fmt.Errorf("card color %v is not playable", color)
	}
	return Card{Value: value, Color: color}, nil
}

// IsEmpty reports whether the card is the empty cell placeholder.
func (c Card) IsEmpty() bool {
	return c.Value <= 0
}

func (c Card) String() string {
	if c.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s-%d", c.Color, c.Value)
}

// NewDeck returns the ordered 18-card deck of a single color.
func NewDeck(color Color) []Card {
	deck := make([]Card, 0, CopiesPerValue*MaxCardValue)
	for i := 0; i < CopiesPerValue; i++ {
		for v := MinCardValue; v <= MaxCardValue; v++ {
			deck = append(deck, Card{Value: v, Color: color})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// IndexOfCard returns the position of the first matching card in deck, or -1.
func IndexOfCard(deck []Card, card Card) int {
	for i, c := range deck {
		if c == card {
			return i
		}
	}
	return -1
}

// RemoveCardAt removes the card at index i and returns the updated deck.
func RemoveCardAt(deck []Card, i int) []Card {
	updated := make([]Card, 0, len(deck)-1)
	updated = append(updated, deck[:i]...)
	return append(updated, deck[i+1:]...)
}
