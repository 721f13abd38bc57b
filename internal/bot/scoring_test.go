package bot

import (
	"testing"

	"euchre/internal/domain"
)

func TestScoreHandForSuit(t *testing.T) {
	tests := []struct {
		name     string
		hand     []domain.Card
		trump    domain.Suit
		expected int
	}{
		{
			name: "Both bowers and top trump",
			hand: []domain.Card{
				{Rank: domain.Jack, Suit: domain.Hearts},
				{Rank: domain.Jack, Suit: domain.Diamonds},
				{Rank: domain.Ace, Suit: domain.Hearts},
				{Rank: domain.King, Suit: domain.Hearts},
				{Rank: domain.Nine, Suit: domain.Spades},
			},
			trump: domain.Hearts,
			// 22 + 20 + 18 + 16 + 0
			expected: 76,
		},
		{
			name: "No trump at all",
			hand: []domain.Card{
				{Rank: domain.Nine, Suit: domain.Spades},
				{Rank: domain.Ten, Suit: domain.Diamonds},
				{Rank: domain.Queen, Suit: domain.Clubs},
				{Rank: domain.King, Suit: domain.Diamonds},
				{Rank: domain.Nine, Suit: domain.Clubs},
			},
			trump:    domain.Hearts,
			expected: 12,
		},
		{
			name: "Left bower counts toward the other color suit",
			hand: []domain.Card{
				{Rank: domain.Jack, Suit: domain.Diamonds},
			},
			trump: domain.Hearts,
			// 3 base + 10 trump + 7 left bower
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreHandForSuit(tt.hand, tt.trump); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

// Within one trump-status bucket a higher rank always scores higher. The
// bowers form their own bucket above every plain trump.
func TestScoreHandForSuitRankMonotonic(t *testing.T) {
	trump := domain.Hearts

	score := func(c domain.Card) int {
		return ScoreHandForSuit([]domain.Card{c}, trump)
	}

	// Offsuit bucket: spades are black, so the jack carries no bower bonus.
	for r := domain.Nine; r < domain.Ace; r++ {
		lo := score(domain.Card{Rank: r, Suit: domain.Spades})
		hi := score(domain.Card{Rank: r + 1, Suit: domain.Spades})
		if hi <= lo {
			t.Errorf("offsuit %v scored %d, not above %v at %d", r+1, hi, r, lo)
		}
	}

	// Plain trump bucket, skipping the right bower.
	plainTrump := []domain.Rank{domain.Nine, domain.Ten, domain.Queen, domain.King, domain.Ace}
	for i := 0; i < len(plainTrump)-1; i++ {
		lo := score(domain.Card{Rank: plainTrump[i], Suit: trump})
		hi := score(domain.Card{Rank: plainTrump[i+1], Suit: trump})
		if hi <= lo {
			t.Errorf("trump %v scored %d, not above %v at %d", plainTrump[i+1], hi, plainTrump[i], lo)
		}
	}

	right := score(domain.Card{Rank: domain.Jack, Suit: trump})
	left := score(domain.Card{Rank: domain.Jack, Suit: domain.Diamonds})
	topPlain := score(domain.Card{Rank: domain.Ace, Suit: trump})
	if right <= left {
		t.Errorf("right bower %d does not outscore left bower %d", right, left)
	}
	if left <= topPlain {
		t.Errorf("left bower %d does not outscore the trump ace %d", left, topPlain)
	}
}

// A hand holding the right bower scores its trump suit above every offsuit.
func TestScoreHandForSuitTrumpDominates(t *testing.T) {
	trump := domain.Hearts
	hand := []domain.Card{
		{Rank: domain.Jack, Suit: domain.Hearts},
		{Rank: domain.Ace, Suit: domain.Hearts},
		{Rank: domain.King, Suit: domain.Hearts},
		{Rank: domain.Queen, Suit: domain.Spades},
		{Rank: domain.Nine, Suit: domain.Diamonds},
	}

	trumpScore := ScoreHandForSuit(hand, trump)
	for s := domain.Hearts; s <= domain.Clubs; s++ {
		if s == trump {
			continue
		}
		if off := ScoreHandForSuit(hand, s); off >= trumpScore {
			t.Errorf("scoring %v gave %d, not below trump %v at %d", s, off, trump, trumpScore)
		}
	}
}

func TestOrderUpTrump(t *testing.T) {
	b := NewHeuristicBot()

	strong := []domain.Card{
		{Rank: domain.Jack, Suit: domain.Hearts},
		{Rank: domain.Jack, Suit: domain.Diamonds},
		{Rank: domain.Ace, Suit: domain.Hearts},
		{Rank: domain.King, Suit: domain.Hearts},
		{Rank: domain.Nine, Suit: domain.Spades},
	}
	if !b.OrderUpTrump(strong, domain.Hearts) {
		t.Error("expected a two-bower hand to order up")
	}

	weak := []domain.Card{
		{Rank: domain.Nine, Suit: domain.Spades},
		{Rank: domain.Ten, Suit: domain.Diamonds},
		{Rank: domain.Queen, Suit: domain.Clubs},
		{Rank: domain.King, Suit: domain.Diamonds},
		{Rank: domain.Nine, Suit: domain.Clubs},
	}
	if b.OrderUpTrump(weak, domain.Hearts) {
		t.Error("expected a trumpless hand to pass")
	}
}

func TestBidOnTrump(t *testing.T) {
	b := NewHeuristicBot()

	spadeHeavy := []domain.Card{
		{Rank: domain.Jack, Suit: domain.Spades},
		{Rank: domain.Jack, Suit: domain.Clubs},
		{Rank: domain.Ace, Suit: domain.Spades},
		{Rank: domain.King, Suit: domain.Spades},
		{Rank: domain.Nine, Suit: domain.Hearts},
	}
	call, suit := b.BidOnTrump(spadeHeavy, domain.Hearts)
	if !call {
		t.Error("expected a spade-heavy hand to call")
	}
	if suit != domain.Spades {
		t.Errorf("expected Spades, got %v", suit)
	}

	// A weak hand still names its best suit so a stuck dealer can call it.
	weak := []domain.Card{
		{Rank: domain.Nine, Suit: domain.Hearts},
		{Rank: domain.Ten, Suit: domain.Diamonds},
		{Rank: domain.Queen, Suit: domain.Spades},
		{Rank: domain.King, Suit: domain.Clubs},
		{Rank: domain.Nine, Suit: domain.Spades},
	}
	call, suit = b.BidOnTrump(weak, domain.Hearts)
	if call {
		t.Error("expected a weak hand to pass")
	}
	if suit != domain.Spades {
		t.Errorf("expected best suit Spades, got %v", suit)
	}
}
