package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"
	// RpcCreateInvite issues a signed invitation token for the caller's match.
	RpcCreateInvite = "create_invite"
	// RpcRedeemInvite resolves an invitation token to the match it points at.
	RpcRedeemInvite = "redeem_invite"

	// MatchNamePunto is the authoritative match handler name registered with Nakama.
	MatchNamePunto = "punto_match"

	// GameLabel is the value of the "game" key in match labels.
	GameLabel = "punto"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRound  int64 = 1
	OpPlaceCard   int64 = 2
	OpEndRound    int64 = 3
	OpDiscardCard int64 = 4

	// Server -> Client events
	OpMatchState    int64 = 101
	OpRoundStarted  int64 = 103
	OpNextCard      int64 = 104 // send privately
	OpCardPlaced    int64 = 105
	OpCardDiscarded int64 = 106
	OpRoundEnded    int64 = 107
	OpRoundAborted  int64 = 108
	OpGameError     int64 = 109
)

// Match label keys queried by quick_match.
const (
	MatchLabelKey_OpenSeats = "open"
	MatchLabelKey_Game      = "game"
	MatchLabelKey_State     = "state"
)

const (
	labelStateLobby   = "lobby"
	labelStatePlaying = "playing"
)

// Runtime env keys.
const (
	envBotsEnabled      = "punto_bots_enabled"
	envInviteSecret     = "punto_invite_secret"
	envBotMinDelay      = "punto_bot_min_delay_sec"
	envBotMaxDelay      = "punto_bot_max_delay_sec"
	envBotAutoFillDelay = "punto_bot_auto_fill_delay_sec"
)

const (
	gameConfigPath   = "data/game_config.json"
	botIdentityPath  = "data/bot_identities.json"
	inviteIssuer     = "punto"
	botFillSeatCount = 2 // a solo human gets one bot opponent
)
