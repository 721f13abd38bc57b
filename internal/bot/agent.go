package bot

import (
	"euchre/internal/domain"
)

// Agent is an autonomous player occupying one bot seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds an agent for the given bot user ID with the standard
// strategy. The display name comes from the identity pool when known.
func NewAgent(userID string) *Agent {
	name := GetBotDisplayName(userID)
	if name == "" {
		name = userID
	}
	return &Agent{
		ID:       userID,
		Name:     name,
		Strategy: NewHeuristicBot(),
	}
}

// PickCard asks the agent for its play in the current trick.
func (a *Agent) PickCard(g *domain.Game, madeTrump bool) (domain.Card, error) {
	hand, err := g.HandAt(g.Turn())
	if err != nil {
		return domain.Card{}, err
	}
	return a.Strategy.PickCard(hand, g.Trump(), g.PlayedCards(), g.Leader(), madeTrump)
}
