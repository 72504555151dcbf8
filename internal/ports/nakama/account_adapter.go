package nakama

import (
	"context"

	"punto/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaAccountAdapter implements ports.AccountPort using Nakama's account API.
type NakamaAccountAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaAccountAdapter creates a new account adapter.
func NewNakamaAccountAdapter(nk runtime.NakamaModule) *NakamaAccountAdapter {
	return &NakamaAccountAdapter{nk: nk}
}

// SetDisplayName leaves the username untouched; Nakama ignores empty fields.
func (a *NakamaAccountAdapter) SetDisplayName(ctx context.Context, userID, displayName string, metadata map[string]interface{}) error {
	return a.nk.AccountUpdateId(ctx, userID, "", metadata, displayName, "", "", "", "")
}

var _ ports.AccountPort = (*NakamaAccountAdapter)(nil)
