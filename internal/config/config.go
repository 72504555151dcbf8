package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"punto/internal/domain"
)

type GameConfig struct {
	BoardSize int `json:"board_size"`
	MaxSpan   int `json:"max_span"`
	// WinLength is the run length that ends a round; 5 plays the long variant.
	WinLength int `json:"win_length"`

	// BotAutoFillDelaySeconds configures how many seconds to wait before adding bots to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	BotMinDelaySeconds      int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds      int `json:"bot_max_delay_seconds"`

	InviteTTLSeconds int `json:"invite_ttl_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		if err := c.Validate(); err != nil {
			loadErr = fmt.Errorf("invalid game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, nil if none was loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// Validate rejects configurations the rules engine cannot play.
func (c *GameConfig) Validate() error {
	if c.BoardSize != 0 && c.BoardSize%2 == 0 {
		return fmt.Errorf("board_size must be odd, got %d", c.BoardSize)
	}
	if c.MaxSpan < 0 || (c.BoardSize > 0 && c.MaxSpan > c.BoardSize) {
		return fmt.Errorf("max_span %d does not fit board_size %d", c.MaxSpan, c.BoardSize)
	}
	if c.WinLength < 0 || (c.MaxSpan > 0 && c.WinLength > c.MaxSpan) {
		return fmt.Errorf("win_length %d does not fit max_span %d", c.WinLength, c.MaxSpan)
	}
	return nil
}

// Rules returns the engine rules for cfg, falling back to the standard rules for unset fields.
func Rules(cfg *GameConfig) domain.Rules {
	rules := domain.DefaultRules()
	if cfg == nil {
		return rules
	}
	if cfg.BoardSize > 0 {
		rules.BoardSize = cfg.BoardSize
	}
	if cfg.MaxSpan > 0 {
		rules.MaxSpan = cfg.MaxSpan
	}
	if cfg.WinLength > 0 {
		rules.WinLength = cfg.WinLength
	}
	return rules
}

// InviteTTLSeconds returns how long invitation tokens stay valid.
func InviteTTLSeconds() int {
	if cfg == nil || cfg.InviteTTLSeconds <= 0 {
		return 3600 // Safe default
	}
	return cfg.InviteTTLSeconds
}
