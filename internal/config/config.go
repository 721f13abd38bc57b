package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds driver-side tuning. Rule values (deck size, the 10-point
// target) are fixed by the game and deliberately not configurable.
type GameConfig struct {
	// TurnDurationSeconds bounds how long the driver waits on a human
	// decision before nudging the client. Zero means wait forever.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotMinDelaySeconds is the minimum simulated thinking time for a bot.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	// BotMaxDelaySeconds is the maximum simulated thinking time for a bot.
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds is how long a lone human waits in the lobby
	// before the remaining seats are filled with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
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
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration with safe defaults applied,
// or pure defaults when no file was loaded.
func GetGameConfig() GameConfig {
	c := GameConfig{}
	if cfg != nil {
		c = *cfg
	}
	if c.BotMinDelaySeconds <= 0 {
		c.BotMinDelaySeconds = 1
	}
	if c.BotMaxDelaySeconds < c.BotMinDelaySeconds {
		c.BotMaxDelaySeconds = c.BotMinDelaySeconds + 2
	}
	if c.BotAutoFillDelaySeconds <= 0 {
		c.BotAutoFillDelaySeconds = 5
	}
	return c
}
