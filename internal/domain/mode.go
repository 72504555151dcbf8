package domain

import (
	"errors"
	"math/rand"
)

const (
	MinPlayers = 1
	MaxPlayers = 4
)

// ErrUnsupportedPlayerCount is returned for rounds outside 1..4 players.
var ErrUnsupportedPlayerCount = errors.New("unsupported player count")

// AssignColors returns the colors each seat plays with and the neutral color for a
// round of n players:
//
//	1 player:  all four colors
//	2 players: red+blue, green+yellow
//	3 players: one color each, yellow is neutral
//	4 players: one color each
func AssignColors(n int) ([][]Color, Color, error) {
	switch n {
	case 1:
		return [][]Color{{Red, Blue, Green, Yellow}}, ColorNone, nil
	case 2:
		return [][]Color{{Red, Blue}, {Green, Yellow}}, ColorNone, nil
	case 3:
		return [][]Color{{Red}, {Blue}, {Green}}, Yellow, nil
	case 4:
		return [][]Color{{Red}, {Blue}, {Green}, {Yellow}}, ColorNone, nil
	default:
		return nil, ColorNone, ErrUnsupportedPlayerCount
	}
}

// DealDecks builds one shuffled deck per seat. Neutral cards are split evenly
// between the seats.
func DealDecks(colors [][]Color, neutral Color, rng *rand.Rand) [][]Card {
	decks := make([][]Card, len(colors))
	for i, owned := range colors {
		for _, c := range owned {
			decks[i] = append(decks[i], NewDeck(c)...)
		}
	}

	if neutral != ColorNone && len(colors) > 0 {
		neutralCards := ShuffleDeck(NewDeck(neutral), rng)
		share := len(neutralCards) / len(colors)
		for i := range decks {
			decks[i] = append(decks[i], neutralCards[i*share:(i+1)*share]...)
		}
	}

	for i := range decks {
		decks[i] = ShuffleDeck(decks[i], rng)
	}
	return decks
}

// NewRound seats userIDs in order, assigns colors for the player count and deals decks.
func NewRound(id string, userIDs []string, rules Rules, rng *rand.Rand) (*Round, error) {
	colors, neutral, err := AssignColors(len(userIDs))
	if err != nil {
		return nil, err
	}
	decks := DealDecks(colors, neutral, rng)

	round := &Round{
		ID:      id,
		State:   NewGameState(rules, neutral),
		Players: make([]*Player, len(userIDs)),
	}
	for i, userID := range userIDs {
		round.Players[i] = &Player{
			UserID: userID,
			Colors: colors[i],
			Deck:   decks[i],
		}
	}
	return round, nil
}
