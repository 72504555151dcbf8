package nakama

import (
	"errors"
	"fmt"
	"math"

	"punto/internal/app"
	"punto/internal/domain"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var errBadPayload = errors.New("bad payload")

// placeRequest is a decoded OpPlaceCard message. Card is nil when the client plays its top card.
type placeRequest struct {
	Row  int
	Col  int
	Card *domain.Card
}

func cardToValue(c domain.Card) interface{} {
	if c.IsEmpty() {
		return nil
	}
	return map[string]interface{}{
		"value": c.Value,
		"color": c.Color.String(),
	}
}

func colorsToList(colors []domain.Color) []interface{} {
	out := make([]interface{}, 0, len(colors))
	for _, c := range colors {
		out = append(out, c.String())
	}
	return out
}

func countsToMap(counts map[domain.Color]int) map[string]interface{} {
	out := make(map[string]interface{}, len(counts))
	for c, n := range counts {
		out[c.String()] = n
	}
	return out
}

func winsToMap(wins map[string]int) map[string]interface{} {
	out := make(map[string]interface{}, len(wins))
	for userID, n := range wins {
		out[userID] = n
	}
	return out
}

// eventToMessage maps an app event to its op code and wire payload.
func eventToMessage(ev app.Event) (int64, *structpb.Struct, error) {
	var (
		opCode int64
		fields map[string]interface{}
	)

	switch p := ev.Payload.(type) {
	case app.RoundStartedPayload:
		opCode = OpRoundStarted
		players := make([]interface{}, 0, len(p.Players))
		for _, s := range p.Players {
			players = append(players, map[string]interface{}{
				"user_id":         s.UserID,
				"colors":          colorsToList(s.Colors),
				"cards_remaining": s.CardsRemaining,
				"wins":            s.Wins,
			})
		}
		fields = map[string]interface{}{
			"round_id":           p.RoundID,
			"board_size":         p.BoardSize,
			"neutral":            p.Neutral.String(),
			"players":            players,
			"first_turn_user_id": p.FirstTurnUserID,
		}
	case app.NextCardPayload:
		opCode = OpNextCard
		fields = map[string]interface{}{
			"user_id":         p.UserID,
			"card":            cardToValue(p.Card),
			"cards_remaining": p.CardsRemaining,
		}
	case app.CardPlacedPayload:
		opCode = OpCardPlaced
		fields = map[string]interface{}{
			"user_id":           p.UserID,
			"row":               p.Row,
			"col":               p.Col,
			"card":              cardToValue(p.Card),
			"replaced":          cardToValue(p.Replaced),
			"turn":              p.Turn,
			"next_turn_user_id": p.NextTurnUserID,
		}
	case app.CardDiscardedPayload:
		opCode = OpCardDiscarded
		fields = map[string]interface{}{
			"user_id":           p.UserID,
			"card":              cardToValue(p.Card),
			"next_turn_user_id": p.NextTurnUserID,
		}
	case app.RoundEndedPayload:
		opCode = OpRoundEnded
		fields = map[string]interface{}{
			"round_id":       p.RoundID,
			"phase":          string(p.Phase),
			"winner":         p.Winner.String(),
			"winner_user_id": p.WinnerUserID,
			"three_counts":   countsToMap(p.ThreeCounts),
			"tied":           colorsToList(p.Tied),
			"wins":           winsToMap(p.Wins),
		}
	case app.RoundAbortedPayload:
		opCode = OpRoundAborted
		fields = map[string]interface{}{
			"round_id": p.RoundID,
			"user_id":  p.UserID,
		}
	default:
		return 0, nil, fmt.Errorf("unknown event payload %T for %s", ev.Payload, ev.Kind)
	}

	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s: %w", ev.Kind, err)
	}
	return opCode, payload, nil
}

// decodePlaceRequest reads {"row", "col"} and optionally {"value", "color"} from a
// proto-encoded Struct.
func decodePlaceRequest(data []byte) (placeRequest, error) {
	msg := &structpb.Struct{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return placeRequest{}, fmt.Errorf("%w: %v", errBadPayload, err)
	}
	fields := msg.GetFields()

	row, err := intField(fields, "row")
	if err != nil {
		return placeRequest{}, err
	}
	col, err := intField(fields, "col")
	if err != nil {
		return placeRequest{}, err
	}
	req := placeRequest{Row: row, Col: col}

	if _, ok := fields["value"]; !ok {
		return req, nil
	}
	value, err := intField(fields, "value")
	if err != nil {
		return placeRequest{}, err
	}
	color, err := domain.ParseColor(fields["color"].GetStringValue())
	if err != nil {
		return placeRequest{}, fmt.Errorf("%w: %v", errBadPayload, err)
	}
	req.Card = &domain.Card{Value: value, Color: color}
	return req, nil
}

func intField(fields map[string]*structpb.Value, name string) (int, error) {
	v, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", errBadPayload, name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, fmt.Errorf("%w: %s is not an integer", errBadPayload, name)
	}
	return int(n.NumberValue), nil
}

// errorReason maps a rejection to the stable code sent in OpGameError.
func errorReason(err error) string {
	if reason := domain.ReasonOf(err); reason != "" {
		return reason
	}
	switch {
	case errors.Is(err, app.ErrNotOwner):
		return "not_owner"
	case errors.Is(err, app.ErrNotPlaying):
		return "not_playing"
	case errors.Is(err, app.ErrUnknownPlayer):
		return "not_seated"
	case errors.Is(err, app.ErrEmptyDeck):
		return "empty_deck"
	case errors.Is(err, app.ErrTooFewPlayers):
		return "too_few_players"
	case errors.Is(err, app.ErrTooManyPlayers):
		return "too_many_players"
	case errors.Is(err, errBadPayload):
		return "bad_payload"
	default:
		return "internal"
	}
}
