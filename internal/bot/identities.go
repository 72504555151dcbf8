package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity is one entry of data/bot_identities.json.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy", "medium", "hard"
}

// Level returns the strategy level for this identity.
func (b BotIdentity) Level() BotLevel {
	return ParseLevel(b.Difficulty)
}

var (
	mu            sync.RWMutex
	pool          []BotIdentity
	byUserID      = map[string]BotIdentity{}
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		var identities []BotIdentity
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		mu.Lock()
		defer mu.Unlock()
		pool = identities
		for _, identity := range pool {
			if identity.UserID != "" {
				byUserID[identity.UserID] = identity
			}
		}
	})
	return loadErr
}

// ProvisionBots makes sure every pooled bot has a Nakama account tagged with is_bot.
// Accounts that fail to provision are skipped and logged.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) {
	provisionOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		for i := range pool {
			identity := &pool[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: Failed to authenticate bot %s: %v", identity.Username, err)
				continue
			}
			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot":     true,
				"difficulty": identity.Difficulty,
			}
			if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: Failed to update bot account %s: %v", userID, err)
			}

			byUserID[userID] = *identity
			logger.Info("ProvisionBots: Bot %s (%s) is ready. Difficulty: %s", identity.DisplayName, userID, identity.Difficulty)
		}
	})
}

// GetBotConfig returns the identity registered for userID.
func GetBotConfig(userID string) (BotIdentity, bool) {
	mu.RLock()
	defer mu.RUnlock()
	identity, ok := byUserID[userID]
	return identity, ok
}

// GetBotIdentity returns an identity for a bot by index (mod pool size). With an
// empty pool a synthetic identity is returned so local matches still get opponents.
func GetBotIdentity(index int) BotIdentity {
	mu.RLock()
	defer mu.RUnlock()
	if len(pool) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("bot-%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index),
			Difficulty:  "easy",
		}
	}
	identity := pool[index%len(pool)]
	if identity.UserID == "" {
		// Not provisioned: seat it under a synthetic id.
		identity.UserID = fmt.Sprintf("bot-%d", index)
	}
	return identity
}

// IsBot reports whether the given user ID belongs to the bot pool or is a synthetic bot.
func IsBot(userID string) bool {
	mu.RLock()
	defer mu.RUnlock()
	if _, ok := byUserID[userID]; ok {
		return true
	}
	var n int
	_, err := fmt.Sscanf(userID, "bot-%d", &n)
	return err == nil
}
