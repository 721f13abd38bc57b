package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"euchre/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	statsCollection = "stats"
	statsKey        = "euchre"
)

// playerStats is the durable per-user record kept in Nakama storage.
type playerStats struct {
	GamesPlayed   int `json:"games_played"`
	GamesWon      int `json:"games_won"`
	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
}

// NakamaStatsAdapter implements ports.StatsPort using Nakama's storage engine.
type NakamaStatsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(nk runtime.NakamaModule) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{
		nk: nk,
	}
}

// RecordResult folds one finished game into the user's stored totals.
func (a *NakamaStatsAdapter) RecordResult(ctx context.Context, result ports.MatchResult) error {
	reads := []*runtime.StorageRead{{
		Collection: statsCollection,
		Key:        statsKey,
		UserID:     result.UserID,
	}}

	objects, err := a.nk.StorageRead(ctx, reads)
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	var stats playerStats
	version := ""
	if len(objects) > 0 {
		if err := json.Unmarshal([]byte(objects[0].Value), &stats); err != nil {
			return fmt.Errorf("failed to unmarshal stats: %w", err)
		}
		version = objects[0].Version
	}

	stats.GamesPlayed++
	if result.Won {
		stats.GamesWon++
	}
	stats.PointsFor += result.TeamScore
	stats.PointsAgainst += result.OtherTeamScore

	value, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	writes := []*runtime.StorageWrite{{
		Collection:      statsCollection,
		Key:             statsKey,
		UserID:          result.UserID,
		Value:           string(value),
		Version:         version,
		PermissionRead:  1,
		PermissionWrite: 0,
	}}

	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write stats for user %s: %w", result.UserID, err)
	}
	return nil
}
