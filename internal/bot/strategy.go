package bot

import (
	"errors"

	"euchre/internal/domain"
)

// ErrEmptyHand is returned when a decision is requested for a seat with no
// cards, which indicates a driver sequencing bug.
var ErrEmptyHand = errors.New("cannot pick a card from an empty hand")

// HeuristicBot is the standard computer player. It leads as high as
// possible (trump when it made trump, otherwise offsuit), follows suit
// trying to beat the current trick winner, throws off when its partner
// already has the trick, and as last to act wins as cheaply as it can.
type HeuristicBot struct{}

// NewHeuristicBot returns the standard strategy.
func NewHeuristicBot() *HeuristicBot { return &HeuristicBot{} }

// PickCard implements the card-selection decision tree.
func (b *HeuristicBot) PickCard(hand []domain.Card, trump domain.Suit, played [domain.NumSeats]*domain.Card, leader int, madeTrump bool) (domain.Card, error) {
	if len(hand) == 0 {
		return domain.Card{}, ErrEmptyHand
	}

	// Leading: play as high as possible. Lead trump when this seat made it,
	// otherwise lead the highest offsuit.
	if played[leader] == nil {
		if madeTrump {
			return pickHighestPreferringTrump(hand, trump), nil
		}
		return pickHighestPreferringOffsuit(hand, trump), nil
	}

	ledCard := *played[leader]
	ledSuit := ledCard.Suit
	if ledCard.IsTrump(trump) {
		// A led left bower makes trump the suit to follow.
		ledSuit = trump
	}

	winning := ledCard
	for _, c := range played {
		if c == nil {
			continue
		}
		if c.IsHigherThan(winning, trump) {
			winning = *c
		}
	}

	playedCount := countPlayed(played)
	winningSlot := slotOfCard(played, winning)

	// The partner holds the winning card when it sits two seats before this
	// one in play order: slot 0 with two cards down, slot 1 with three.
	partnerWinning := (playedCount == 2 && winningSlot == 0) ||
		(playedCount == 3 && winningSlot == 1)

	var following []domain.Card
	for _, c := range hand {
		if c.Suit == ledSuit {
			following = append(following, c)
		}
	}

	if len(following) == 0 {
		if playedCount == 3 {
			// Last to act with the partner winning: throw off.
			if partnerWinning {
				return pickThrowaway(hand, trump), nil
			}

			// Last to act, partner losing: cheapest card that still wins.
			var lowestWinning *domain.Card
			for i := range hand {
				c := hand[i]
				if !c.IsHigherThan(winning, trump) {
					continue
				}
				if lowestWinning == nil || !c.IsHigherThan(*lowestWinning, trump) {
					lowestWinning = &hand[i]
				}
			}
			if lowestWinning != nil {
				return *lowestWinning, nil
			}

			// Nothing wins, dump the lowest card.
			return pickThrowaway(hand, trump), nil
		}

		// Cannot follow and not last: contest the trick as high as possible.
		return pickHighestPreferringTrump(hand, trump), nil
	}

	// Last to act with the partner winning: throw off within the led suit.
	if playedCount == 3 && partnerWinning {
		return pickThrowaway(following, trump), nil
	}

	var toPlay *domain.Card
	for i := range following {
		c := following[i]
		if !c.IsHigherThan(winning, trump) {
			continue
		}
		if toPlay == nil {
			toPlay = &following[i]
			continue
		}

		if playedCount == 3 {
			// Last player: the lowest card that still wins is enough.
			if !c.IsHigherThan(*toPlay, trump) {
				toPlay = &following[i]
			}
		} else if c.IsHigherThan(*toPlay, trump) {
			// Otherwise play the highest to help win.
			toPlay = &following[i]
		}
	}
	if toPlay != nil {
		return *toPlay, nil
	}

	// No led-suit card can win; dump the lowest led-suit card.
	return pickThrowaway(following, trump), nil
}

// pickHighestPreferringTrump returns the highest trump card, falling back to
// the highest offsuit when the hand holds no trump.
func pickHighestPreferringTrump(cards []domain.Card, trump domain.Suit) domain.Card {
	var trumpCards []domain.Card
	for _, c := range cards {
		if c.IsTrump(trump) {
			trumpCards = append(trumpCards, c)
		}
	}
	if len(trumpCards) == 0 {
		return pickHighestPreferringOffsuit(cards, trump)
	}

	highest := trumpCards[0]
	for _, c := range trumpCards {
		// IsHigherThan accounts for the bowers.
		if c.IsHigherThan(highest, trump) {
			highest = c
		}
	}
	return highest
}

// pickHighestPreferringOffsuit returns the highest non-trump card by plain
// rank, falling back to the highest trump when the hand is all trump.
func pickHighestPreferringOffsuit(cards []domain.Card, trump domain.Suit) domain.Card {
	var offsuit []domain.Card
	for _, c := range cards {
		if !c.IsTrump(trump) {
			offsuit = append(offsuit, c)
		}
	}
	if len(offsuit) == 0 {
		return pickHighestPreferringTrump(cards, trump)
	}

	highest := offsuit[0]
	for _, c := range offsuit {
		// Plain rank only; no bowers among offsuit cards.
		if c.Rank > highest.Rank {
			highest = c
		}
	}
	return highest
}

// pickThrowaway returns the lowest card: a card replaces the running choice
// only when it is not higher, so ties keep the earlier-scanned card.
func pickThrowaway(cards []domain.Card, trump domain.Suit) domain.Card {
	choice := cards[0]
	for _, c := range cards {
		if !c.IsHigherThan(choice, trump) {
			choice = c
		}
	}
	return choice
}

func countPlayed(played [domain.NumSeats]*domain.Card) int {
	n := 0
	for _, c := range played {
		if c != nil {
			n++
		}
	}
	return n
}

func slotOfCard(played [domain.NumSeats]*domain.Card, target domain.Card) int {
	for i, c := range played {
		if c != nil && *c == target {
			return i
		}
	}
	return -1
}
