package domain

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck(Blue)
	if len(deck) != 18 {
		t.Fatalf("deck size = %d, want 18", len(deck))
	}
	seen := make(map[int]int)
	for _, c := range deck {
		if c.Color != Blue {
			t.Fatalf("unexpected color %v in blue deck", c.Color)
		}
		if c.Value < MinCardValue || c.Value > MaxCardValue {
			t.Fatalf("value out of range: %d", c.Value)
		}
		seen[c.Value]++
	}
	for v := MinCardValue; v <= MaxCardValue; v++ {
		if seen[v] != 2 {
			t.Fatalf("value %d appears %d times, want 2", v, seen[v])
		}
	}
}

func TestShuffleDeckKeepsCards(t *testing.T) {
	deck := NewDeck(Red)
	shuffled := ShuffleDeck(deck, rand.New(rand.NewSource(7)))
	if len(shuffled) != len(deck) {
		t.Fatalf("shuffled size = %d, want %d", len(shuffled), len(deck))
	}
	count := func(cards []Card) map[string]int {
		m := make(map[string]int)
		for _, c := range cards {
			m[fmt.Sprint(c)]++
		}
		return m
	}
	want := count(deck)
	for k, n := range count(shuffled) {
		if want[k] != n {
			t.Fatalf("card %s count = %d, want %d", k, n, want[k])
		}
	}
	if deck[0] != (Card{Value: 1, Color: Red}) {
		t.Fatalf("ShuffleDeck must not modify its input")
	}
}

func TestNewCard(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		color   Color
		wantErr bool
	}{
		{name: "valid", value: 9, color: Yellow},
		{name: "zero value", value: 0, color: Red, wantErr: true},
		{name: "value too high", value: 10, color: Red, wantErr: true},
		{name: "no color", value: 3, color: ColorNone, wantErr: true},
		{name: "unknown color", value: 3, color: Color(9), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.value, tt.color)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCard(%d, %v) error = %v, wantErr %t", tt.value, tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestRemoveCardAt(t *testing.T) {
	deck := []Card{{Value: 1, Color: Red}, {Value: 2, Color: Red}, {Value: 3, Color: Red}}
	got := RemoveCardAt(deck, 1)
	if len(got) != 2 || got[0].Value != 1 || got[1].Value != 3 {
		t.Fatalf("RemoveCardAt() = %v, want [red-1 red-3]", got)
	}
	if deck[1].Value != 2 {
		t.Fatalf("RemoveCardAt must not modify its input")
	}
	if IndexOfCard(got, Card{Value: 2, Color: Red}) != -1 {
		t.Fatalf("removed card still found")
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range Palette() {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseColor(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	if _, err := ParseColor("none"); err == nil {
		t.Fatalf("ParseColor(none) should fail")
	}
	if _, err := ParseColor("purple"); err == nil {
		t.Fatalf("ParseColor(purple) should fail")
	}
}
