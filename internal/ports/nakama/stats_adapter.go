package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"punto/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	statsCollection = "punto_stats"
	statsKey        = "record_v1"

	walletKeyWins   = "wins"
	walletKeyRounds = "rounds"
)

// NakamaStatsAdapter implements ports.StatsPort with Nakama wallet counters and a storage marker.
type NakamaStatsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(nk runtime.NakamaModule) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{nk: nk}
}

// GetWins reads the wins counter from the user's wallet.
func (a *NakamaStatsAdapter) GetWins(ctx context.Context, userID string) (int64, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}

	var wallet map[string]int64
	if err := json.Unmarshal([]byte(account.Wallet), &wallet); err != nil {
		return 0, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}
	return wallet[walletKeyWins], nil
}

// RecordRounds bumps the rounds counter of every record, and the wins counter of winners.
func (a *NakamaStatsAdapter) RecordRounds(ctx context.Context, records []ports.RoundRecord) error {
	for _, record := range records {
		changes := map[string]int64{walletKeyRounds: 1}
		if record.Won {
			changes[walletKeyWins] = 1
		}

		if _, _, err := a.nk.WalletUpdate(ctx, record.UserID, changes, record.Metadata, true); err != nil {
			return fmt.Errorf("failed to record round for user %s: %w", record.UserID, err)
		}
	}
	return nil
}

// InitRecordOnce writes the create-only stats marker and zeroed counters in one update.
func (a *NakamaStatsAdapter) InitRecordOnce(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("userID is required")
	}

	marker := map[string]interface{}{
		"created_at": time.Now().UTC().Format(time.RFC3339),
	}
	value, err := json.Marshal(marker)
	if err != nil {
		return false, fmt.Errorf("failed to marshal stats marker: %w", err)
	}

	storageWrites := []*runtime.StorageWrite{
		{
			Collection:      statsCollection,
			Key:             statsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         "*",
			PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	walletUpdates := []*runtime.WalletUpdate{
		{
			UserID:    userID,
			Changeset: map[string]int64{walletKeyWins: 0, walletKeyRounds: 0},
			Metadata:  map[string]interface{}{"reason": "stats_init"},
		},
	}

	if _, _, err := a.nk.MultiUpdate(ctx, nil, storageWrites, nil, walletUpdates, false); err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return false, nil
		}
		return false, fmt.Errorf("failed to init stats record: %w", err)
	}
	return true, nil
}

var _ ports.StatsPort = (*NakamaStatsAdapter)(nil)
