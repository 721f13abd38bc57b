package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// resetGameConfig drops any loaded configuration so each test starts from a
// clean slate regardless of execution order.
func resetGameConfig() {
	cfg = nil
	loadOnce = sync.Once{}
	loadErr = nil
}

func TestGetGameConfigDefaults(t *testing.T) {
	resetGameConfig()

	// No file loaded: pure defaults.
	c := GetGameConfig()
	if c.BotMinDelaySeconds != 1 {
		t.Errorf("expected min delay 1, got %d", c.BotMinDelaySeconds)
	}
	if c.BotMaxDelaySeconds != 3 {
		t.Errorf("expected max delay 3, got %d", c.BotMaxDelaySeconds)
	}
	if c.BotAutoFillDelaySeconds != 5 {
		t.Errorf("expected auto-fill delay 5, got %d", c.BotAutoFillDelaySeconds)
	}
}

func TestLoadGameConfig(t *testing.T) {
	resetGameConfig()

	path := filepath.Join(t.TempDir(), "game_config.json")
	data := `{
		"turn_duration_seconds": 20,
		"bot_min_delay_seconds": 2,
		"bot_max_delay_seconds": 1,
		"bot_auto_fill_delay_seconds": 8
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := LoadGameConfig(path); err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}

	c := GetGameConfig()
	if c.TurnDurationSeconds != 20 {
		t.Errorf("expected turn duration 20, got %d", c.TurnDurationSeconds)
	}
	if c.BotMinDelaySeconds != 2 {
		t.Errorf("expected min delay 2, got %d", c.BotMinDelaySeconds)
	}
	// A max below the min is corrected on read.
	if c.BotMaxDelaySeconds != 4 {
		t.Errorf("expected corrected max delay 4, got %d", c.BotMaxDelaySeconds)
	}
	if c.BotAutoFillDelaySeconds != 8 {
		t.Errorf("expected auto-fill delay 8, got %d", c.BotAutoFillDelaySeconds)
	}
}
