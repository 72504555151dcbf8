package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"punto/internal/app"
	"punto/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// gRPC status codes used by runtime.NewError.
const (
	codeInvalidArgument = 3
	codeNotFound        = 5
	codeInternal        = 13
	codeUnauthenticated = 16
)

var (
	inviteService   *app.InviteService
	inviteServiceMu sync.Mutex
)

type createInviteRequest struct {
	MatchID string `json:"match_id"`
}

type createInviteResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type redeemInviteRequest struct {
	Token string `json:"token"`
}

type redeemInviteResponse struct {
	MatchID   string `json:"match_id"`
	InviterID string `json:"inviter_id"`
}

// getInviteService builds the invite service from the runtime env on first use.
func getInviteService(ctx context.Context, logger runtime.Logger) *app.InviteService {
	inviteServiceMu.Lock()
	defer inviteServiceMu.Unlock()
	if inviteService != nil {
		return inviteService
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env[envInviteSecret]
	if secret == "" {
		secret = "dev-invite-secret"
		logger.Warn("getInviteService: %s missing from env, using a development secret.", envInviteSecret)
	}
	ttl := time.Duration(config.InviteTTLSeconds()) * time.Second
	inviteService = app.NewInviteService(secret, inviteIssuer, ttl)
	return inviteService
}

// rpcCreateInvite signs a share link token for a live match.
// Payload: {"match_id": "..."}
func rpcCreateInvite(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("No user ID in context", codeUnauthenticated)
	}

	var req createInviteRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.MatchID == "" {
		return "", runtime.NewError("match_id required", codeInvalidArgument)
	}

	match, err := nk.MatchGet(ctx, req.MatchID)
	if err != nil {
		logger.Error("rpcCreateInvite [User:%s]: Failed to get match %s: %v", userID, req.MatchID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	if match == nil {
		return "", runtime.NewError("Match not found", codeNotFound)
	}

	service := getInviteService(ctx, logger)
	token, err := service.CreateInvite(req.MatchID, userID)
	if err != nil {
		logger.Error("rpcCreateInvite [User:%s]: Failed to sign invite: %v", userID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	invite, err := service.ParseInvite(token)
	if err != nil {
		logger.Error("rpcCreateInvite [User:%s]: Issued invite does not verify: %v", userID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.Info("rpcCreateInvite [User:%s]: Invite %s issued for match %s", userID, invite.ID, req.MatchID)
	b, _ := json.Marshal(createInviteResponse{Token: token, ExpiresAt: invite.ExpiresAt.Unix()})
	return string(b), nil
}

// rpcRedeemInvite verifies a token and returns the match to join.
// Payload: {"token": "..."}
func rpcRedeemInvite(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req redeemInviteRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.Token == "" {
		return "", runtime.NewError("token required", codeInvalidArgument)
	}

	invite, err := getInviteService(ctx, logger).ParseInvite(req.Token)
	if err != nil {
		logger.Warn("rpcRedeemInvite [User:%s]: Rejected invite: %v", userID, err)
		return "", runtime.NewError("Invalid or expired invite", codeInvalidArgument)
	}

	match, err := nk.MatchGet(ctx, invite.MatchID)
	if err != nil {
		logger.Error("rpcRedeemInvite [User:%s]: Failed to get match %s: %v", userID, invite.MatchID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	if match == nil {
		return "", runtime.NewError("Match has ended", codeNotFound)
	}

	b, _ := json.Marshal(redeemInviteResponse{MatchID: invite.MatchID, InviterID: invite.InviterID})
	return string(b), nil
}
