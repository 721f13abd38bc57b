package bot

import (
	"euchre/internal/domain"
)

// Hand-strength weights. Plain ranks are worth their base value; trump cards
// get a flat bonus on top, with the bowers pushed above every other trump.
const (
	trumpBonus      = 10
	rightBowerBonus = 9
	leftBowerBonus  = 7

	// minScoreToCallTrump is the hand strength at which the bot is willing
	// to name trump. A hand like right bower + three trump + an offsuit ace
	// clears it; a single bower with junk does not.
	minScoreToCallTrump = 48
)

func rankBaseScore(r domain.Rank) int {
	switch r {
	case domain.Nine:
		return 0
	case domain.Ten:
		return 1
	case domain.Jack:
		return 3
	case domain.Queen:
		return 5
	case domain.King:
		return 6
	case domain.Ace:
		return 8
	default:
		panic("unreachable rank")
	}
}

// ScoreHandForSuit rates how strong the hand would be with the given suit as
// trump. Used for both bidding decisions.
func ScoreHandForSuit(hand []domain.Card, trump domain.Suit) int {
	total := 0
	for _, card := range hand {
		score := rankBaseScore(card.Rank)

		if card.IsTrump(trump) {
			score += trumpBonus
			if card.Rank == domain.Jack {
				if card.Suit == trump {
					score += rightBowerBonus
				} else {
					score += leftBowerBonus
				}
			}
		}

		total += score
	}
	return total
}

// OrderUpTrump accepts the turned-up suit when the hand scores well enough
// with it as trump.
func (b *HeuristicBot) OrderUpTrump(hand []domain.Card, trump domain.Suit) bool {
	return ScoreHandForSuit(hand, trump) >= minScoreToCallTrump
}

// BidOnTrump scores the hand against every suit and returns whether the best
// suit is strong enough to call, along with that suit. The best suit is
// returned either way so a stuck dealer can still name it. The turned-down
// suit stays in candidacy.
func (b *HeuristicBot) BidOnTrump(hand []domain.Card, discounted domain.Suit) (bool, domain.Suit) {
	bestScore := 0
	bestSuit := domain.Hearts
	for s := domain.Hearts; s <= domain.Clubs; s++ {
		if score := ScoreHandForSuit(hand, s); score > bestScore {
			bestScore = score
			bestSuit = s
		}
	}

	return bestScore >= minScoreToCallTrump, bestSuit
}
