package domain

// Phase is the coordinator state of a round.
type Phase string

const (
	// PhaseAwaitingMove is the only non-terminal phase.
	PhaseAwaitingMove Phase = "awaiting_move"
	// PhaseRoundWon means a color completed a winning line.
	PhaseRoundWon Phase = "round_won"
	// PhaseRoundDrawnOut means every deck ran out and the tiebreak decided the round.
	PhaseRoundDrawnOut Phase = "round_drawn_out"
)

// Terminal reports whether no further moves are accepted.
func (p Phase) Terminal() bool {
	return p == PhaseRoundWon || p == PhaseRoundDrawnOut
}

// Rules holds the tunable constants of a round.
type Rules struct {
	BoardSize int
	MaxSpan   int
	WinLength int
}

// DefaultRules returns the standard Punto rules: 11x11 board, 6x6 play area, four in a row.
func DefaultRules() Rules {
	return Rules{BoardSize: DefaultBoardSize, MaxSpan: DefaultMaxSpan, WinLength: 4}
}

// Player is a participant of a round.
type Player struct {
	UserID string
	Colors []Color // colors this player plays and wins with
	Deck   []Card
	Wins   int
}

// Owns reports whether the player wins with color c.
func (p *Player) Owns(c Color) bool {
	for _, owned := range p.Colors {
		if owned == c {
			return true
		}
	}
	return false
}

// Outcome describes how a round ended.
type Outcome struct {
	Phase       Phase
	Winner      Color // ColorNone on an unresolved tiebreak
	WinnerIndex int   // index into Round.Players, -1 when nobody won
	ThreeCounts map[Color]int
	Tied        []Color
}

// GameState is the per-round state the engine evaluates and mutates.
type GameState struct {
	Board              *Board
	Turn               int
	CurrentPlayerIndex int
	Phase              Phase
	Neutral            Color
	Rules              Rules
	Outcome            *Outcome
}

// NewGameState creates the state for a fresh round.
func NewGameState(rules Rules, neutral Color) GameState {
	return GameState{
		Board:   NewBoard(rules.BoardSize),
		Phase:   PhaseAwaitingMove,
		Neutral: neutral,
		Rules:   rules,
	}
}

// Round bundles a GameState with the players taking part in it.
type Round struct {
	ID      string
	State   GameState
	Players []*Player
}

// PlayerIndex returns the index of the player with the given user id, or -1.
func (r *Round) PlayerIndex(userID string) int {
	for i, p := range r.Players {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}

// CurrentPlayer returns the player whose turn it is.
func (r *Round) CurrentPlayer() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[r.State.CurrentPlayerIndex]
}

// OwnerIndex returns the index of the player winning with color c, or -1.
func (r *Round) OwnerIndex(c Color) int {
	for i, p := range r.Players {
		if p.Owns(c) {
			return i
		}
	}
	return -1
}

// DecksEmpty reports whether no player has a card left.
func (r *Round) DecksEmpty() bool {
	for _, p := range r.Players {
		if len(p.Deck) > 0 {
			return false
		}
	}
	return true
}
