package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is a rejected but well-formed move; the player should be re-prompted.
	ErrIllegalMove = errors.New("illegal move")
	// ErrMalformedInput is a move referencing an off-board cell or a card the player does not hold.
	ErrMalformedInput = errors.New("malformed move")
	// ErrInvariantViolation is a caller error such as playing into a finished round.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Reason codes reported with a MoveError.
const (
	ReasonFirstMoveNotCenter = "first_move_not_center"
	ReasonOutsidePlayArea    = "outside_play_area"
	ReasonNotAdjacent        = "not_adjacent"
	ReasonValueNotHigher     = "value_not_higher"
	ReasonOutOfBounds        = "out_of_bounds"
	ReasonCardNotInDeck      = "card_not_in_deck"
	ReasonInvalidCard        = "invalid_card"
	ReasonNotYourTurn        = "not_your_turn"
	ReasonRoundOver          = "round_over"
	ReasonHasLegalMove       = "has_legal_move"
)

// MoveError describes why a move was rejected.
type MoveError struct {
	Kind   error
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Kind
}

func illegal(reason string) *MoveError {
	return &MoveError{Kind: ErrIllegalMove, Reason: reason}
}

func malformed(reason string) *MoveError {
	return &MoveError{Kind: ErrMalformedInput, Reason: reason}
}

// ReasonOf extracts the reason code from err, or "" when err is not a MoveError.
func ReasonOf(err error) string {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Reason
	}
	return ""
}
