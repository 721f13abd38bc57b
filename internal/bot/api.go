package bot

import (
	"euchre/internal/domain"
)

// Brain is the decision interface a bot seat plays through: card selection
// for the current trick plus the two trump decisions.
type Brain interface {
	// PickCard picks the card to play given the seat's hand, the trump
	// suit, the trick slots so far (indexed by hand offset, nil = not yet
	// played), the leader's offset and whether this seat made trump.
	PickCard(hand []domain.Card, trump domain.Suit, played [domain.NumSeats]*domain.Card, leader int, madeTrump bool) (domain.Card, error)

	// OrderUpTrump reports whether the seat wants the turned-up suit as
	// trump in the first bidding round.
	OrderUpTrump(hand []domain.Card, trump domain.Suit) bool

	// BidOnTrump decides whether to name trump in the second bidding round
	// and which suit the hand is strongest in. The suit is returned even
	// when the bot declines, for stick-the-dealer situations.
	BidOnTrump(hand []domain.Card, discounted domain.Suit) (bool, domain.Suit)
}
