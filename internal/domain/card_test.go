package domain

import (
	"testing"
)

func TestSameColor(t *testing.T) {
	tests := []struct {
		name     string
		s1, s2   Suit
		expected bool
	}{
		{"Hearts and Diamonds", Hearts, Diamonds, true},
		{"Diamonds and Hearts", Diamonds, Hearts, true},
		{"Spades and Clubs", Spades, Clubs, true},
		{"Clubs and Spades", Clubs, Spades, true},
		{"Same suit", Hearts, Hearts, true},
		{"Hearts and Spades", Hearts, Spades, false},
		{"Diamonds and Clubs", Diamonds, Clubs, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameColor(tt.s1, tt.s2); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsTrump(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		trump    Suit
		expected bool
	}{
		{"Trump suit card", Card{Rank: Nine, Suit: Hearts}, Hearts, true},
		{"Right bower", Card{Rank: Jack, Suit: Hearts}, Hearts, true},
		{"Left bower", Card{Rank: Jack, Suit: Diamonds}, Hearts, true},
		{"Same color non-jack", Card{Rank: Ace, Suit: Diamonds}, Hearts, false},
		{"Off color jack", Card{Rank: Jack, Suit: Spades}, Hearts, false},
		{"Off suit card", Card{Rank: Ace, Suit: Clubs}, Hearts, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.IsTrump(tt.trump); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsHigherThan(t *testing.T) {
	trump := Hearts

	tests := []struct {
		name     string
		card     Card
		other    Card
		expected bool
	}{
		{"Right bower beats left bower", Card{Jack, Hearts}, Card{Jack, Diamonds}, true},
		{"Left bower loses to right bower", Card{Jack, Diamonds}, Card{Jack, Hearts}, false},
		{"Left bower beats ace of trump", Card{Jack, Diamonds}, Card{Ace, Hearts}, true},
		{"Ace of trump loses to left bower", Card{Ace, Hearts}, Card{Jack, Diamonds}, false},
		{"Ace of trump beats king of trump", Card{Ace, Hearts}, Card{King, Hearts}, true},
		{"Lowest trump beats off-suit ace", Card{Nine, Hearts}, Card{Ace, Spades}, true},
		{"Off-suit ace loses to lowest trump", Card{Ace, Spades}, Card{Nine, Hearts}, false},
		{"Higher rank within led suit", Card{Ace, Spades}, Card{King, Spades}, true},
		{"Lower rank within led suit", Card{King, Spades}, Card{Ace, Spades}, false},
		{"Off-suit never beats a different off-suit", Card{Ace, Clubs}, Card{Nine, Spades}, false},
		{"Reverse off-suit also false", Card{Nine, Spades}, Card{Ace, Clubs}, false},
		{"Color mate below jack is not trump", Card{Ace, Diamonds}, Card{Nine, Hearts}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.IsHigherThan(tt.other, trump); got != tt.expected {
				t.Errorf("%v higher than %v: expected %v, got %v", tt.card, tt.other, tt.expected, got)
			}
		})
	}
}
