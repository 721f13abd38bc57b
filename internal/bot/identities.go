package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity describes one member of the bot pool.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
}

var (
	botIdentities []BotIdentity
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error

	// poolMu guards the lookup maps. The identity slice itself only changes
	// under the Onces during module init; the maps also grow at match time
	// through the uuid fallback, and matches run on separate goroutines.
	poolMu            sync.RWMutex
	botIDMap          map[string]bool
	botUsernameMap    map[string]string
	botDisplayNameMap map[string]string
)

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		for _, identity := range botIdentities {
			if identity.UserID != "" {
				mapIdentity(identity)
			}
		}
	})
	return loadErr
}

func mapIdentity(identity BotIdentity) {
	poolMu.Lock()
	defer poolMu.Unlock()
	if botIDMap == nil {
		botIDMap = make(map[string]bool)
		botUsernameMap = make(map[string]string)
		botDisplayNameMap = make(map[string]string)
	}
	botIDMap[identity.UserID] = true
	botUsernameMap[identity.UserID] = identity.Username
	botDisplayNameMap[identity.UserID] = identity.DisplayName
}

// ProvisionBots ensures the bot accounts exist in Nakama and carry the
// is_bot metadata so clients can render them distinctly.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		for i := range botIdentities {
			identity := &botIdentities[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: failed to authenticate bot %s: %v", identity.Username, err)
				continue
			}

			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"avatar_index": identity.AvatarIndex,
			}
			if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: failed to update bot account %s: %v", userID, err)
			}

			mapIdentity(*identity)
			logger.Info("ProvisionBots: bot %s (%s) is ready.", identity.DisplayName, userID)
		}
	})
	return nil
}

// GetBotIdentity returns an identity for a bot seat by index, cycling the
// pool. With no pool loaded it fabricates a uuid-backed identity so local
// runs still get distinct bot seats.
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		id := "bot-" + uuid.NewString()
		identity := BotIdentity{
			UserID:      id,
			Username:    fmt.Sprintf("bot%d", index),
			DisplayName: fmt.Sprintf("Computer %d", index),
		}
		mapIdentity(identity)
		return identity
	}
	return botIdentities[index%len(botIdentities)]
}

// GetBotUsername returns the username for a bot ID, or "" if not a bot.
func GetBotUsername(userID string) string {
	poolMu.RLock()
	defer poolMu.RUnlock()
	return botUsernameMap[userID]
}

// GetBotDisplayName returns the display name for a bot ID, falling back to
// the username.
func GetBotDisplayName(userID string) string {
	poolMu.RLock()
	defer poolMu.RUnlock()
	name := botDisplayNameMap[userID]
	if name == "" {
		name = botUsernameMap[userID]
	}
	return name
}

// IsBot reports whether the given user ID belongs to the bot pool.
func IsBot(userID string) bool {
	poolMu.RLock()
	defer poolMu.RUnlock()
	return botIDMap[userID]
}
