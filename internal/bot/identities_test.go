package bot

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"euchre/internal/domain"
)

// resetIdentityPool clears the package-level pool so each test sees a fresh
// load regardless of execution order.
func resetIdentityPool() {
	poolMu.Lock()
	defer poolMu.Unlock()
	botIdentities = nil
	botIDMap = nil
	botUsernameMap = nil
	botDisplayNameMap = nil
	loadOnce = sync.Once{}
	loadErr = nil
}

func TestLoadIdentities(t *testing.T) {
	resetIdentityPool()

	path := filepath.Join(t.TempDir(), "bot_identities.json")
	data := `[
		{"device_id": "dev-1", "user_id": "bot-1", "username": "bot_one", "display_name": "Bot One", "avatar_index": 1},
		{"device_id": "dev-2", "user_id": "bot-2", "username": "bot_two", "display_name": "Bot Two", "avatar_index": 2}
	]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := LoadIdentities(path); err != nil {
		t.Fatalf("LoadIdentities: %v", err)
	}

	if !IsBot("bot-1") || !IsBot("bot-2") {
		t.Error("loaded identities not recognized as bots")
	}
	if IsBot("someone-else") {
		t.Error("unknown user treated as bot")
	}
	if got := GetBotUsername("bot-1"); got != "bot_one" {
		t.Errorf("expected username bot_one, got %q", got)
	}
	if got := GetBotDisplayName("bot-2"); got != "Bot Two" {
		t.Errorf("expected display name Bot Two, got %q", got)
	}

	// The pool cycles by index.
	if got := GetBotIdentity(0).UserID; got != "bot-1" {
		t.Errorf("expected bot-1 at index 0, got %q", got)
	}
	if got := GetBotIdentity(3).UserID; got != "bot-2" {
		t.Errorf("expected pool to cycle, got %q", got)
	}
}

// With no pool loaded, the uuid fallback registers identities in the shared
// lookup maps. Matches run on separate goroutines, so concurrent auto-fills
// hit this path at the same time; run with -race.
func TestGetBotIdentityFallbackConcurrent(t *testing.T) {
	resetIdentityPool()

	const workers = 2
	var ids [workers][]string
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for seat := 0; seat < domain.NumSeats; seat++ {
				ids[w] = append(ids[w], GetBotIdentity(seat).UserID)
			}
		}(w)
	}
	wg.Wait()

	for _, worker := range ids {
		for _, id := range worker {
			if !IsBot(id) {
				t.Errorf("fallback identity %s missing from the pool maps", id)
			}
		}
	}
}
