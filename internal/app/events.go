package app

import "punto/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventRoundStarted  EventKind = "round_started"
	EventNextCard      EventKind = "next_card"
	EventCardPlaced    EventKind = "card_placed"
	EventCardDiscarded EventKind = "card_discarded"
	EventRoundEnded    EventKind = "round_ended"
	EventRoundAborted  EventKind = "round_aborted"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type SeatSummary struct {
	UserID         string
	Colors         []domain.Color
	CardsRemaining int
	Wins           int
}

type RoundStartedPayload struct {
	RoundID         string
	BoardSize       int
	Neutral         domain.Color
	Players         []SeatSummary
	FirstTurnUserID string
}

// NextCardPayload is sent privately to the player whose turn it is.
type NextCardPayload struct {
	UserID         string
	Card           domain.Card
	CardsRemaining int
}

type CardPlacedPayload struct {
	UserID         string
	Row            int
	Col            int
	Card           domain.Card
	Replaced       domain.Card
	Turn           int
	NextTurnUserID string
}

// CardDiscardedPayload reports a blocked player dropping their top card.
type CardDiscardedPayload struct {
	UserID         string
	Card           domain.Card
	NextTurnUserID string
}

type RoundEndedPayload struct {
	RoundID      string
	Phase        domain.Phase
	Winner       domain.Color
	WinnerUserID string
	ThreeCounts  map[domain.Color]int
	Tied         []domain.Color
	Wins         map[string]int
}

type RoundAbortedPayload struct {
	RoundID string
	UserID  string
}
