package bot

import (
	"errors"
	"testing"

	"euchre/internal/domain"
)

func ptr(c domain.Card) *domain.Card { return &c }

func TestPickCard(t *testing.T) {
	trump := domain.Hearts
	hand := []domain.Card{
		{Rank: domain.Ace, Suit: domain.Hearts},
		{Rank: domain.Jack, Suit: domain.Diamonds},
		{Rank: domain.Queen, Suit: domain.Spades},
		{Rank: domain.Queen, Suit: domain.Diamonds},
		{Rank: domain.King, Suit: domain.Hearts},
	}

	tests := []struct {
		name      string
		played    [domain.NumSeats]*domain.Card
		leader    int
		madeTrump bool
		expected  domain.Card
	}{
		{
			name:      "Leads the highest trump after making it",
			madeTrump: true,
			expected:  domain.Card{Rank: domain.Jack, Suit: domain.Diamonds},
		},
		{
			name:     "Leads the highest offsuit otherwise",
			expected: domain.Card{Rank: domain.Queen, Suit: domain.Spades},
		},
		{
			name: "Throws off in the led suit when the partner is winning",
			played: [domain.NumSeats]*domain.Card{
				ptr(domain.Card{Rank: domain.Nine, Suit: domain.Diamonds}),
				ptr(domain.Card{Rank: domain.King, Suit: domain.Diamonds}),
				ptr(domain.Card{Rank: domain.Ten, Suit: domain.Diamonds}),
				nil,
			},
			expected: domain.Card{Rank: domain.Queen, Suit: domain.Diamonds},
		},
		{
			name: "Wins as cheaply as possible when following last",
			played: [domain.NumSeats]*domain.Card{
				ptr(domain.Card{Rank: domain.King, Suit: domain.Diamonds}),
				ptr(domain.Card{Rank: domain.Nine, Suit: domain.Spades}),
				ptr(domain.Card{Rank: domain.Ten, Suit: domain.Diamonds}),
				nil,
			},
			expected: domain.Card{Rank: domain.Jack, Suit: domain.Diamonds},
		},
		{
			name: "Spends the cheapest trump to win when unable to follow",
			played: [domain.NumSeats]*domain.Card{
				ptr(domain.Card{Rank: domain.Ace, Suit: domain.Clubs}),
				ptr(domain.Card{Rank: domain.Nine, Suit: domain.Spades}),
				ptr(domain.Card{Rank: domain.Ten, Suit: domain.Spades}),
				nil,
			},
			expected: domain.Card{Rank: domain.King, Suit: domain.Hearts},
		},
		{
			name: "Contests high when unable to follow mid-trick",
			played: [domain.NumSeats]*domain.Card{
				ptr(domain.Card{Rank: domain.Ace, Suit: domain.Clubs}),
				nil,
				nil,
				nil,
			},
			expected: domain.Card{Rank: domain.Jack, Suit: domain.Diamonds},
		},
		{
			name: "Beats the led card while others still act",
			played: [domain.NumSeats]*domain.Card{
				ptr(domain.Card{Rank: domain.Nine, Suit: domain.Diamonds}),
				nil,
				nil,
				nil,
			},
			expected: domain.Card{Rank: domain.Jack, Suit: domain.Diamonds},
		},
		{
			name: "Dumps the led suit when it cannot win",
			played: [domain.NumSeats]*domain.Card{
				ptr(domain.Card{Rank: domain.Ace, Suit: domain.Spades}),
				nil,
				nil,
				nil,
			},
			expected: domain.Card{Rank: domain.Queen, Suit: domain.Spades},
		},
	}

	b := NewHeuristicBot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.PickCard(hand, trump, tt.played, tt.leader, tt.madeTrump)
			if err != nil {
				t.Fatalf("PickCard: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPickCardLedLeftBower(t *testing.T) {
	trump := domain.Hearts
	// A led left bower means trump is the suit to follow, so the diamond
	// queen cannot follow while hearts can.
	hand := []domain.Card{
		{Rank: domain.Queen, Suit: domain.Diamonds},
		{Rank: domain.Nine, Suit: domain.Hearts},
	}
	played := [domain.NumSeats]*domain.Card{
		ptr(domain.Card{Rank: domain.Jack, Suit: domain.Diamonds}),
		nil,
		nil,
		nil,
	}

	got, err := NewHeuristicBot().PickCard(hand, trump, played, 0, false)
	if err != nil {
		t.Fatalf("PickCard: %v", err)
	}
	expected := domain.Card{Rank: domain.Nine, Suit: domain.Hearts}
	if got != expected {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestPickCardEmptyHand(t *testing.T) {
	var played [domain.NumSeats]*domain.Card
	_, err := NewHeuristicBot().PickCard(nil, domain.Hearts, played, 0, false)
	if !errors.Is(err, ErrEmptyHand) {
		t.Errorf("expected ErrEmptyHand, got %v", err)
	}
}
