package domain

import (
	"crypto/rand"
	"math/big"
)

const (
	// NumSeats is the number of seats at the table.
	NumSeats = 4
	// HandSize is the number of cards dealt to each seat.
	HandSize = 5
	// KittySize is the number of undealt cards left after the deal.
	KittySize = 4
	// DeckSize is the size of the Euchre pack (nine through ace, four suits).
	DeckSize = NumSeats*HandSize + KittySize
)

// NewDeck returns the ordered 24-card Euchre pack.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for r := Nine; r <= Ace; r++ {
		for s := Hearts; s <= Clubs; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck returns a uniformly shuffled copy of the given deck using a
// cryptographically strong random source.
func ShuffleDeck(deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		j := cryptoIntn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// The platform CSPRNG failing is not a recoverable game condition.
		panic(err)
	}
	return int(v.Int64())
}

// DealHands splits a shuffled deck into four five-card hands and the kitty.
// The card at shuffled index i goes to the hand at offset i%4, so hand 0
// belongs to the seat left of the dealer. The last four cards form the kitty
// and the first kitty card is the one turned up for making trump.
func DealHands(deck []Card) ([NumSeats][]Card, [KittySize]Card) {
	var hands [NumSeats][]Card
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}
	for i := 0; i < NumSeats*HandSize; i++ {
		hands[i%NumSeats] = append(hands[i%NumSeats], deck[i])
	}

	var kitty [KittySize]Card
	copy(kitty[:], deck[NumSeats*HandSize:])
	return hands, kitty
}
