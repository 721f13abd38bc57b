// Package ports declares the outbound interfaces the application layer
// depends on. Concrete adapters live in subpackages named after the
// hosting runtime.
package ports

import "context"

// MatchResult summarizes one finished game from a single user's side.
type MatchResult struct {
	UserID         string
	Won            bool
	TeamScore      int
	OtherTeamScore int
}

// StatsPort records finished games against durable per-user storage.
type StatsPort interface {
	RecordResult(ctx context.Context, result MatchResult) error
}
