package app

import (
	"errors"
	"math/rand"
	"time"

	"punto/internal/domain"

	"github.com/google/uuid"
)

// Service contains Punto use-cases operating on domain state.
type Service struct {
	rng   *rand.Rand
	rules domain.Rules
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, rules domain.Rules) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, rules: rules}
}

var (
	ErrNotOwner       = errors.New("actor is not match owner")
	ErrNotPlaying     = errors.New("no round in progress")
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrTooManyPlayers = errors.New("too many players to start")
	ErrUnknownPlayer  = errors.New("player not found")
	ErrEmptyDeck      = errors.New("player has no cards left")
)

// Rules returns the rules new rounds are created with.
func (s *Service) Rules() domain.Rules {
	return s.rules
}

// StartRound seats the given players, deals their decks and opens a new round.
// playerIDs is in seat order; empty strings are empty seats and are skipped.
// firstUserID, when seated, takes the first turn. wins carries each player's
// tally from earlier rounds.
func (s *Service) StartRound(playerIDs []string, firstUserID string, wins map[string]int) (*domain.Round, []Event, error) {
	var seated []string
	for _, userID := range playerIDs {
		if userID != "" {
			seated = append(seated, userID)
		}
	}
	if len(seated) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	if len(seated) > MaxPlayers {
		return nil, nil, ErrTooManyPlayers
	}

	round, err := domain.NewRound(uuid.NewString(), seated, s.rules, s.rng)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range round.Players {
		p.Wins = wins[p.UserID]
	}
	if idx := round.PlayerIndex(firstUserID); idx >= 0 {
		round.State.CurrentPlayerIndex = idx
	}

	first := round.CurrentPlayer()
	events := []Event{
		{
			Kind: EventRoundStarted,
			Payload: RoundStartedPayload{
				RoundID:         round.ID,
				BoardSize:       round.State.Board.Size(),
				Neutral:         round.State.Neutral,
				Players:         seatSummaries(round),
				FirstTurnUserID: first.UserID,
			},
		},
		nextCardEvent(first),
	}
	return round, events, nil
}

// PlaceCard applies actorUserID's move and emits the resulting events.
func (s *Service) PlaceCard(round *domain.Round, actorUserID string, move domain.Move) ([]Event, error) {
	if round == nil {
		return nil, ErrNotPlaying
	}
	idx := round.PlayerIndex(actorUserID)
	if idx < 0 {
		return nil, ErrUnknownPlayer
	}

	turn := round.State.Turn
	result, err := domain.ApplyMove(round, idx, move)
	if err != nil {
		return nil, err
	}

	placed := CardPlacedPayload{
		UserID:   actorUserID,
		Row:      move.Row,
		Col:      move.Col,
		Card:     result.Placed,
		Replaced: result.Replaced,
		Turn:     turn,
	}
	if result.Outcome != nil {
		return []Event{
			{Kind: EventCardPlaced, Payload: placed},
			roundEndedEvent(round, result.Outcome),
		}, nil
	}

	next := round.Players[result.NextPlayerIndex]
	placed.NextTurnUserID = next.UserID
	return []Event{
		{Kind: EventCardPlaced, Payload: placed},
		nextCardEvent(next),
	}, nil
}

// PlaceTopCard plays the top card of the actor's deck at (row, col), the way the
// table game is played.
func (s *Service) PlaceTopCard(round *domain.Round, actorUserID string, row, col int) ([]Event, error) {
	if round == nil {
		return nil, ErrNotPlaying
	}
	idx := round.PlayerIndex(actorUserID)
	if idx < 0 {
		return nil, ErrUnknownPlayer
	}
	deck := round.Players[idx].Deck
	if len(deck) == 0 {
		return nil, ErrEmptyDeck
	}
	return s.PlaceCard(round, actorUserID, domain.Move{Row: row, Col: col, Card: deck[0]})
}

// DiscardTopCard drops the actor's top card when none of their cards can be placed.
func (s *Service) DiscardTopCard(round *domain.Round, actorUserID string) ([]Event, error) {
	if round == nil {
		return nil, ErrNotPlaying
	}
	idx := round.PlayerIndex(actorUserID)
	if idx < 0 {
		return nil, ErrUnknownPlayer
	}
	deck := round.Players[idx].Deck
	if len(deck) == 0 {
		return nil, ErrEmptyDeck
	}
	dropped := deck[0]

	result, err := domain.Discard(round, idx)
	if err != nil {
		return nil, err
	}
	payload := CardDiscardedPayload{UserID: actorUserID, Card: dropped}
	if result.Outcome != nil {
		return []Event{
			{Kind: EventCardDiscarded, Payload: payload},
			roundEndedEvent(round, result.Outcome),
		}, nil
	}
	next := round.Players[result.NextPlayerIndex]
	payload.NextTurnUserID = next.UserID
	return []Event{
		{Kind: EventCardDiscarded, Payload: payload},
		nextCardEvent(next),
	}, nil
}

// EndRound lets the match owner abandon the current round without a winner.
func (s *Service) EndRound(round *domain.Round, actorUserID, ownerUserID string) ([]Event, error) {
	if round == nil || round.State.Phase.Terminal() {
		return nil, ErrNotPlaying
	}
	if actorUserID != ownerUserID {
		return nil, ErrNotOwner
	}
	return []Event{
		{
			Kind:    EventRoundAborted,
			Payload: RoundAbortedPayload{RoundID: round.ID, UserID: actorUserID},
		},
	}, nil
}

func seatSummaries(round *domain.Round) []SeatSummary {
	out := make([]SeatSummary, 0, len(round.Players))
	for _, p := range round.Players {
		out = append(out, SeatSummary{
			UserID:         p.UserID,
			Colors:         p.Colors,
			CardsRemaining: len(p.Deck),
			Wins:           p.Wins,
		})
	}
	return out
}

func nextCardEvent(p *domain.Player) Event {
	payload := NextCardPayload{UserID: p.UserID, CardsRemaining: len(p.Deck)}
	if len(p.Deck) > 0 {
		payload.Card = p.Deck[0]
	}
	return Event{
		Kind:       EventNextCard,
		Payload:    payload,
		Recipients: []string{p.UserID},
	}
}

func roundEndedEvent(round *domain.Round, outcome *domain.Outcome) Event {
	payload := RoundEndedPayload{
		RoundID:     round.ID,
		Phase:       outcome.Phase,
		Winner:      outcome.Winner,
		ThreeCounts: outcome.ThreeCounts,
		Tied:        outcome.Tied,
		Wins:        make(map[string]int, len(round.Players)),
	}
	if outcome.WinnerIndex >= 0 {
		payload.WinnerUserID = round.Players[outcome.WinnerIndex].UserID
	}
	for _, p := range round.Players {
		payload.Wins[p.UserID] = p.Wins
	}
	return Event{Kind: EventRoundEnded, Payload: payload}
}
