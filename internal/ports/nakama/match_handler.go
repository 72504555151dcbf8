package nakama

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"punto/internal/app"
	"punto/internal/bot"
	"punto/internal/config"
	"punto/internal/domain"
	"punto/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats                [4]string                   `json:"seats"`      // Array of user IDs, empty string means seat is empty
	OwnerSeat            int                         `json:"owner_seat"` // Seat index of the match owner
	LastWinnerID         string                      `json:"last_winner_id"`
	Tick                 int64                       `json:"tick"`
	Presences            map[string]runtime.Presence `json:"-"` // Map UserId -> Presence for targeted messaging
	App                  *app.Service                `json:"-"`
	Round                *domain.Round               `json:"-"` // nil while in lobby
	Wins                 map[string]int              `json:"wins"`          // rounds won in this match
	LifetimeWins         map[string]int64            `json:"lifetime_wins"` // cached from Stats on join
	BotsEnabled          bool                        `json:"bots_enabled"`
	BotMinDelay          int                         `json:"bot_min_delay"`
	BotMaxDelay          int                         `json:"bot_max_delay"`
	BotAutoFillDelay     int                         `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                       `json:"bot_wait_until"`
	LastSinglePlayerTick int64                       `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent       `json:"-"`
	Stats                ports.StatsPort             `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userID {
			return i
		}
	}
	return -1
}

func (ms *MatchState) ownerID() string {
	if ms.OwnerSeat < 0 || ms.OwnerSeat >= len(ms.Seats) {
		return ""
	}
	return ms.Seats[ms.OwnerSeat]
}

func (ms *MatchState) roundInProgress() bool {
	return ms.Round != nil && !ms.Round.State.Phase.Terminal()
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities(botIdentityPath); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load game config, using standard rules: %v", err)
	}
	cfg := config.GetGameConfig()

	state := &MatchState{
		Tick:         time.Now().Unix(),
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(nil, config.Rules(cfg)),
		OwnerSeat:    -1,
		Wins:         make(map[string]int),
		LifetimeWins: make(map[string]int64),
		Bots:         make(map[string]*bot.Agent),
		Stats:        NewNakamaStatsAdapter(nk),
	}
	if cfg != nil {
		state.BotMinDelay = cfg.BotMinDelaySeconds
		state.BotMaxDelay = cfg.BotMaxDelaySeconds
		state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	applyEnv(state, env)

	return state, 1, mh.label(state, logger)
}

// applyEnv overrides bot settings from the runtime env and fills defaults.
func applyEnv(state *MatchState, env map[string]string) {
	if val, ok := env[envBotsEnabled]; ok {
		state.BotsEnabled = val == "true"
	}
	envInt := func(key string, dst *int) {
		if val, ok := env[key]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				*dst = i
			}
		}
	}
	envInt(envBotMinDelay, &state.BotMinDelay)
	envInt(envBotMaxDelay, &state.BotMaxDelay)
	envInt(envBotAutoFillDelay, &state.BotAutoFillDelay)

	if state.BotMinDelay <= 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay + 2
	}
	if state.BotAutoFillDelay <= 0 {
		state.BotAutoFillDelay = 5
	}
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Reconnects keep their seat.
	if matchState.seatOf(presence.GetUserId()) >= 0 {
		return state, true, ""
	}

	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if !matchState.roundInProgress() {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p

		if matchState.seatOf(userID) >= 0 {
			logger.Debug("MatchJoin: User %s reconnected.", userID)
			mh.loadLifetimeWins(ctx, matchState, logger, userID)
			continue
		}

		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = userID
				assigned = true
				break
			}
		}

		if !assigned && !matchState.roundInProgress() {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, userID, i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = userID
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", userID)
			continue
		}
		mh.loadLifetimeWins(ctx, matchState, logger, userID)
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) loadLifetimeWins(ctx context.Context, state *MatchState, logger runtime.Logger, userID string) {
	if state.Stats == nil || isBotUserId(userID) {
		return
	}
	wins, err := state.Stats.GetWins(ctx, userID)
	if err != nil {
		logger.Warn("MatchJoin: Failed to load wins for %s: %v", userID, err)
		return
	}
	state.LifetimeWins[userID] = wins
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		seat := matchState.seatOf(userID)
		if seat < 0 {
			continue
		}
		matchState.Seats[seat] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", userID, seat)

		// A round cannot continue with a player missing from the turn order.
		if matchState.roundInProgress() && matchState.Round.PlayerIndex(userID) >= 0 {
			logger.Info("MatchLeave: Aborting round %s, player %s left.", matchState.Round.ID, userID)
			mh.broadcastEvent(ctx, matchState, dispatcher, logger, app.Event{
				Kind:    app.EventRoundAborted,
				Payload: app.RoundAbortedPayload{RoundID: matchState.Round.ID, UserID: userID},
			})
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		logger.Debug("MatchLeave: Owner set to seat %d.", newOwnerSeat)
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	// Messages of one tick are applied in arrival order; the turn check rejects the rest.
	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound:
			mh.handleStartRound(ctx, matchState, dispatcher, logger, msg)
		case OpPlaceCard:
			mh.handlePlaceCard(ctx, matchState, dispatcher, logger, msg)
		case OpEndRound:
			mh.handleEndRound(ctx, matchState, dispatcher, logger, msg)
		case OpDiscardCard:
			mh.handleDiscard(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if !state.roundInProgress() {
		mh.autoFillBots(state, dispatcher, logger)
		return
	}

	current := state.Round.CurrentPlayer()
	if current == nil || !isBotUserId(current.UserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s will act at tick %d (current %d)", current.UserID, state.BotWaitUntil, state.Tick)
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[current.UserID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(current.UserID)
		if err != nil {
			logger.Error("processBots: Failed to create agent for %s: %v", current.UserID, err)
			return
		}
		state.Bots[current.UserID] = agent
	}

	var events []app.Event
	move, err := agent.Play(state.Round)
	switch {
	case errors.Is(err, bot.ErrNoMove):
		events, err = state.App.DiscardTopCard(state.Round, current.UserID)
	case err == nil:
		events, err = state.App.PlaceCard(state.Round, current.UserID, move)
	}
	if err != nil {
		logger.Error("processBots: Bot %s failed to act: %v", current.UserID, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// autoFillBots seats bots next to a lone human once they have waited BotAutoFillDelay ticks.
func (mh *matchHandler) autoFillBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.GetHumanPlayerCount() != 1 || state.GetOccupiedSeatCount() >= botFillSeatCount {
		state.LastSinglePlayerTick = 0
		return
	}
	if state.LastSinglePlayerTick == 0 {
		state.LastSinglePlayerTick = state.Tick
		logger.Debug("processBots: Single player detected, starting auto-fill timer.")
		return
	}
	if state.Tick-state.LastSinglePlayerTick < int64(state.BotAutoFillDelay) {
		return
	}

	for i, seat := range state.Seats {
		if state.GetOccupiedSeatCount() >= botFillSeatCount {
			break
		}
		if seat != "" {
			continue
		}
		identity := bot.GetBotIdentity(i)
		state.Seats[i] = identity.UserID

		agent, err := bot.NewAgent(identity.UserID)
		if err != nil {
			logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
		} else {
			state.Bots[identity.UserID] = agent
		}
		logger.Info("processBots: Added bot %s (%s) to seat %d", identity.DisplayName, identity.UserID, i)
	}
	state.LastSinglePlayerTick = 0
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastMatchState(state, dispatcher, logger)
}

// matchSnapshot builds the OpMatchState payload: seats, owner, tallies and, during a
// round, the occupied cells so reconnecting clients can redraw the board.
func matchSnapshot(state *MatchState) (*structpb.Struct, error) {
	players := []interface{}{}
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		displayName := userID
		if p, ok := state.Presences[userID]; ok {
			displayName = p.GetUsername()
		} else if identity, ok := bot.GetBotConfig(userID); ok {
			displayName = identity.DisplayName
		}

		player := map[string]interface{}{
			"user_id":       userID,
			"seat":          i,
			"is_owner":      i == state.OwnerSeat,
			"is_bot":        isBotUserId(userID),
			"display_name":  displayName,
			"wins":          state.Wins[userID],
			"lifetime_wins": state.LifetimeWins[userID],
		}
		if state.Round != nil {
			if idx := state.Round.PlayerIndex(userID); idx >= 0 {
				p := state.Round.Players[idx]
				player["colors"] = colorsToList(p.Colors)
				player["cards_remaining"] = len(p.Deck)
			}
		}
		players = append(players, player)
	}

	seats := make([]interface{}, len(state.Seats))
	for i, s := range state.Seats {
		seats[i] = s
	}
	fields := map[string]interface{}{
		"seats":      seats,
		"owner_seat": state.OwnerSeat,
		"tick":       state.Tick,
		"players":    players,
	}

	if state.Round != nil {
		board := state.Round.State.Board
		cells := []interface{}{}
		for row := 0; row < board.Size(); row++ {
			for col := 0; col < board.Size(); col++ {
				if board.IsOccupied(row, col) {
					cells = append(cells, map[string]interface{}{
						"row":  row,
						"col":  col,
						"card": cardToValue(board.At(row, col)),
					})
				}
			}
		}
		fields["round"] = map[string]interface{}{
			"round_id":     state.Round.ID,
			"phase":        string(state.Round.State.Phase),
			"turn":         state.Round.State.Turn,
			"current_user": state.Round.CurrentPlayer().UserID,
			"neutral":      state.Round.State.Neutral.String(),
			"cells":        cells,
		}
	}
	return structpb.NewStruct(fields)
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot, err := matchSnapshot(state)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to build snapshot: %v", err)
		return
	}
	bytes, err := proto.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to marshal snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

func (mh *matchHandler) handleStartRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartRound: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat < 0 || senderSeat != state.OwnerSeat {
		logger.Warn("StartRound: User %s tried to start a round but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, app.ErrNotOwner)
		return
	}
	if state.roundInProgress() {
		logger.Warn("StartRound: Round %s already in progress.", state.Round.ID)
		return
	}

	round, events, err := state.App.StartRound(state.Seats[:], state.LastWinnerID, state.Wins)
	if err != nil {
		logger.Warn("StartRound: Failed to start round: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, err)
		return
	}
	state.Round = round
	state.BotWaitUntil = 0

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	logger.Info("StartRound: Round %s started with %d players.", round.ID, len(round.Players))
}

func (mh *matchHandler) handlePlaceCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if !state.roundInProgress() {
		logger.Warn("handlePlaceCard: No round in progress.")
		mh.sendError(state, dispatcher, logger, senderID, app.ErrNotPlaying)
		return
	}

	request, err := decodePlaceRequest(msg.GetData())
	if err != nil {
		logger.Warn("handlePlaceCard: Bad request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, err)
		return
	}

	var events []app.Event
	if request.Card == nil {
		events, err = state.App.PlaceTopCard(state.Round, senderID, request.Row, request.Col)
	} else {
		events, err = state.App.PlaceCard(state.Round, senderID, domain.Move{Row: request.Row, Col: request.Col, Card: *request.Card})
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvariantViolation) {
			logger.Error("handlePlaceCard: User %s: %v", senderID, err)
		} else {
			logger.Warn("handlePlaceCard: User %s failed to place at (%d,%d): %v", senderID, request.Row, request.Col, err)
		}
		mh.sendError(state, dispatcher, logger, senderID, err)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleDiscard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if !state.roundInProgress() {
		mh.sendError(state, dispatcher, logger, senderID, app.ErrNotPlaying)
		return
	}
	events, err := state.App.DiscardTopCard(state.Round, senderID)
	if err != nil {
		logger.Warn("handleDiscard: User %s failed to discard: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleEndRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	events, err := state.App.EndRound(state.Round, senderID, state.ownerID())
	if err != nil {
		logger.Warn("handleEndRound: User %s cannot end the round: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// broadcastEvent applies match-level side effects of an app event and dispatches it.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	switch p := ev.Payload.(type) {
	case app.RoundEndedPayload:
		for userID, wins := range p.Wins {
			state.Wins[userID] = wins
		}
		state.LastWinnerID = p.WinnerUserID
		mh.recordRound(ctx, state, logger, p)
		state.Round = nil
		mh.updateLabel(state, dispatcher, logger)
	case app.RoundAbortedPayload:
		state.Round = nil
		mh.updateLabel(state, dispatcher, logger)
	}

	opCode, payload, err := eventToMessage(ev)
	if err != nil {
		logger.Warn("broadcastEvent: %v", err)
		return
	}
	bytes, err := proto.Marshal(payload)
	if err != nil {
		logger.Error("broadcastEvent: Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// Targeted events for absent users (bots) must not fall back to a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

func (mh *matchHandler) recordRound(ctx context.Context, state *MatchState, logger runtime.Logger, p app.RoundEndedPayload) {
	if state.Stats == nil {
		return
	}
	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	records := make([]ports.RoundRecord, 0, len(p.Wins))
	for userID := range p.Wins {
		if isBotUserId(userID) {
			continue
		}
		records = append(records, ports.RoundRecord{
			UserID: userID,
			Won:    userID == p.WinnerUserID,
			Metadata: map[string]interface{}{
				"match_id": matchID,
				"round_id": p.RoundID,
			},
		})
		if userID == p.WinnerUserID {
			state.LifetimeWins[userID]++
		}
	}
	if err := state.Stats.RecordRounds(ctx, records); err != nil {
		logger.Error("recordRound: Failed to record round %s: %v", p.RoundID, err)
	}
}

// sendError sends an OpGameError with a stable reason code to a single user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, cause error) {
	payload, err := structpb.NewStruct(map[string]interface{}{
		"reason":  errorReason(cause),
		"message": cause.Error(),
	})
	if err != nil {
		logger.Error("sendError: Failed to build payload: %v", err)
		return
	}
	bytes, err := proto.Marshal(payload)
	if err != nil {
		logger.Error("sendError: Failed to marshal payload: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: Presence not found for %s", userID)
		return
	}
	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

// label renders the match label queried by quick_match.
func (mh *matchHandler) label(state *MatchState, logger runtime.Logger) string {
	phase := labelStateLobby
	if state.roundInProgress() {
		phase = labelStatePlaying
	}
	label, err := structpb.NewStruct(map[string]interface{}{
		MatchLabelKey_OpenSeats: state.GetOpenSeatsCount(),
		MatchLabelKey_Game:      GameLabel,
		MatchLabelKey_State:     phase,
	})
	if err != nil {
		logger.Error("label: Failed to build label: %v", err)
		return ""
	}
	labelBytes, err := protojson.Marshal(label)
	if err != nil {
		logger.Error("label: Failed to marshal label: %v", err)
		return ""
	}
	return string(labelBytes)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label := mh.label(state, logger)
	if label == "" {
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with grace %d", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
