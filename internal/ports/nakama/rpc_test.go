package nakama

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"punto/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

func userCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, userID)
	return context.WithValue(ctx, runtime.RUNTIME_CTX_ENV, map[string]string{envInviteSecret: "test-secret"})
}

func TestRpcQuickMatch(t *testing.T) {
	nk := &fakeNakama{}
	raw, err := rpcQuickMatch(userCtx("user-1"), noopLogger{}, nil, nk, "")
	if err != nil {
		t.Fatalf("rpcQuickMatch error: %v", err)
	}
	var resp QuickMatchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Bad response %q: %v", raw, err)
	}
	if !resp.IsNew || resp.MatchID != "created-match" || len(nk.created) != 1 || nk.created[0] != MatchNamePunto {
		t.Fatalf("Expected a new punto match, got %+v (created %v)", resp, nk.created)
	}
	if !strings.Contains(nk.lastQuery, "+label.game:punto") || !strings.Contains(nk.lastQuery, "+label.state:lobby") {
		t.Fatalf("Unexpected query %q", nk.lastQuery)
	}

	nk.matches = map[string]bool{"open-match": true}
	raw, err = rpcQuickMatch(userCtx("user-1"), noopLogger{}, nil, nk, "")
	if err != nil {
		t.Fatalf("rpcQuickMatch error: %v", err)
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Bad response %q: %v", raw, err)
	}
	if resp.IsNew || resp.MatchID != "open-match" {
		t.Fatalf("Expected existing match, got %+v", resp)
	}
}

func TestRpcInviteRoundTrip(t *testing.T) {
	t.Cleanup(func() { inviteService = nil })
	inviteService = nil

	nk := &fakeNakama{matches: map[string]bool{"match-1": true}}

	raw, err := rpcCreateInvite(userCtx("host"), noopLogger{}, nil, nk, `{"match_id":"match-1"}`)
	if err != nil {
		t.Fatalf("rpcCreateInvite error: %v", err)
	}
	var created createInviteResponse
	if err := json.Unmarshal([]byte(raw), &created); err != nil || created.Token == "" {
		t.Fatalf("Bad create response %q: %v", raw, err)
	}

	raw, err = rpcRedeemInvite(userCtx("friend"), noopLogger{}, nil, nk, `{"token":"`+created.Token+`"}`)
	if err != nil {
		t.Fatalf("rpcRedeemInvite error: %v", err)
	}
	var redeemed redeemInviteResponse
	if err := json.Unmarshal([]byte(raw), &redeemed); err != nil {
		t.Fatalf("Bad redeem response %q: %v", raw, err)
	}
	if redeemed.MatchID != "match-1" || redeemed.InviterID != "host" {
		t.Fatalf("Redeemed = %+v", redeemed)
	}

	// Once the match is gone the invite no longer resolves.
	delete(nk.matches, "match-1")
	if _, err := rpcRedeemInvite(userCtx("friend"), noopLogger{}, nil, nk, `{"token":"`+created.Token+`"}`); err == nil {
		t.Fatalf("Expected error for ended match")
	}
}

func TestRpcInviteRejections(t *testing.T) {
	t.Cleanup(func() { inviteService = nil })
	inviteService = app.NewInviteService("test-secret", inviteIssuer, time.Hour)

	nk := &fakeNakama{matches: map[string]bool{"match-1": true}}

	tests := []struct {
		name string
		call func() (string, error)
	}{
		{"CreateWithoutUser", func() (string, error) {
			return rpcCreateInvite(context.Background(), noopLogger{}, nil, nk, `{"match_id":"match-1"}`)
		}},
		{"CreateBadPayload", func() (string, error) {
			return rpcCreateInvite(userCtx("host"), noopLogger{}, nil, nk, `not json`)
		}},
		{"CreateUnknownMatch", func() (string, error) {
			return rpcCreateInvite(userCtx("host"), noopLogger{}, nil, nk, `{"match_id":"nope"}`)
		}},
		{"RedeemGarbage", func() (string, error) {
			return rpcRedeemInvite(userCtx("friend"), noopLogger{}, nil, nk, `{"token":"abc.def.ghi"}`)
		}},
		{"RedeemMissingToken", func() (string, error) {
			return rpcRedeemInvite(userCtx("friend"), noopLogger{}, nil, nk, `{}`)
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := test.call(); err == nil {
				t.Fatalf("Expected error")
			}
		})
	}
}
