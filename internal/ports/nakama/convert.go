package nakama

import (
	"fmt"

	"euchre/internal/domain"
)

// wireCard is the JSON card representation shared by client requests and
// server events. Rank and Suit carry the domain enum values.
type wireCard struct {
	Rank int `json:"rank"`
	Suit int `json:"suit"`
}

func cardToWire(c domain.Card) wireCard {
	return wireCard{Rank: int(c.Rank), Suit: int(c.Suit)}
}

func cardsToWire(cards []domain.Card) []wireCard {
	out := make([]wireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToWire(c))
	}
	return out
}

// playedToWire keeps the slot positions: a nil entry means the seat at that
// hand offset has not played this trick.
func playedToWire(played [domain.NumSeats]*domain.Card) []*wireCard {
	out := make([]*wireCard, domain.NumSeats)
	for i, c := range played {
		if c == nil {
			continue
		}
		w := cardToWire(*c)
		out[i] = &w
	}
	return out
}

func cardFromWire(w wireCard) (domain.Card, error) {
	if w.Rank < int(domain.Nine) || w.Rank > int(domain.Ace) {
		return domain.Card{}, fmt.Errorf("invalid rank %d", w.Rank)
	}
	if w.Suit < int(domain.Hearts) || w.Suit > int(domain.Clubs) {
		return domain.Card{}, fmt.Errorf("invalid suit %d", w.Suit)
	}
	return domain.Card{Rank: domain.Rank(w.Rank), Suit: domain.Suit(w.Suit)}, nil
}

func suitFromWire(s int) (domain.Suit, error) {
	if s < int(domain.Hearts) || s > int(domain.Clubs) {
		return 0, fmt.Errorf("invalid suit %d", s)
	}
	return domain.Suit(s), nil
}
