package domain

// Suit identifies one of the four card suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// String returns the display name of the suit.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	default:
		panic("unreachable suit")
	}
}

// Rank identifies a card rank. The declaration order is the plain-rank
// order from lowest to highest, ignoring trump.
type Rank int

const (
	Nine Rank = iota
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the display name of the rank.
func (r Rank) String() string {
	switch r {
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		panic("unreachable rank")
	}
}

// Card is an immutable playing card value. Two cards are equal iff their
// rank and suit both match.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// SameColor reports whether two suits share a color. Hearts and Diamonds
// are red, Spades and Clubs are black.
func SameColor(s1, s2 Suit) bool {
	return s1 == s2 ||
		(s1 == Hearts && s2 == Diamonds) ||
		(s1 == Diamonds && s2 == Hearts) ||
		(s1 == Spades && s2 == Clubs) ||
		(s1 == Clubs && s2 == Spades)
}

// IsTrump reports whether the card counts as trump: it is of the trump suit,
// or it is the left bower (the jack of the suit sharing trump's color).
func (c Card) IsTrump(trump Suit) bool {
	return c.Suit == trump || (c.Rank == Jack && SameColor(c.Suit, trump))
}

// IsHigherThan compares c against other accounting for trump. The relation is
// anchored on other: other's suit establishes the suit being followed, so
// callers must always pass the currently winning card as other. Two off-suit
// cards of different suits are never higher than each other.
func (c Card) IsHigherThan(other Card, trump Suit) bool {
	if c.IsTrump(trump) && other.IsTrump(trump) {
		// Right bower outranks every other trump.
		if c.Rank == Jack && c.Suit == trump {
			return true
		}
		if other.Rank == Jack && other.Suit == trump {
			return false
		}

		// Left bower outranks the remaining trump.
		if c.Rank == Jack && SameColor(c.Suit, trump) {
			return true
		}
		if other.Rank == Jack && SameColor(other.Suit, trump) {
			return false
		}

		// Bowers are accounted for, plain rank decides.
		return c.Rank > other.Rank
	}

	if c.IsTrump(trump) {
		return true
	}

	if other.IsTrump(trump) {
		return false
	}

	// Off-suit: c must follow other's suit to beat it.
	if c.Suit != other.Suit {
		return false
	}

	return c.Rank > other.Rank
}
