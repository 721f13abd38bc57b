package domain

import "errors"

// Change identifies an observable piece of game state that a mutating
// operation touched. Every mutator returns the tags for the observables it
// altered, in the order they changed, so a driver can refresh its view
// without polling.
type Change int

const (
	ChangeScore Change = iota
	ChangeHands
	ChangeKitty
	ChangeDealer
	ChangeTurn
	ChangePlayedCards
	ChangeTricksPlayed
	ChangeTrickCount
	ChangeTrump
	ChangeCaller
)

// String returns the stable identifier of the changed observable.
func (c Change) String() string {
	switch c {
	case ChangeScore:
		return "score"
	case ChangeHands:
		return "hands"
	case ChangeKitty:
		return "kitty"
	case ChangeDealer:
		return "dealer"
	case ChangeTurn:
		return "turn"
	case ChangePlayedCards:
		return "played_cards"
	case ChangeTricksPlayed:
		return "tricks_played"
	case ChangeTrickCount:
		return "trick_count"
	case ChangeTrump:
		return "trump"
	case ChangeCaller:
		return "caller"
	default:
		panic("unreachable change tag")
	}
}

// Contract violations. The game trusts its driver to call operations only at
// legal points in the state machine; these errors make an illegal sequence
// fail fast instead of corrupting state.
var (
	ErrTrumpAlreadyMade  = errors.New("trump has already been made this hand")
	ErrTrumpNotMade      = errors.New("trump has not been made yet")
	ErrCardNotInHand     = errors.New("card is not in the hand")
	ErrSeatAlreadyPlayed = errors.New("seat has already played this trick")
	ErrTrickIncomplete   = errors.New("trick does not have four played cards")
	ErrBadOffset         = errors.New("hand offset out of range")
)

const (
	// TricksPerHand is the number of tricks in one dealt hand.
	TricksPerHand = 5
	// WinningScore ends the game when either team reaches it.
	WinningScore = 10
	// HumanSeat is the absolute seat the human always occupies.
	HumanSeat = 2
)

// TeamScore holds the two team totals. PlayerTeam covers absolute seats
// 0 and 2, OtherTeam seats 1 and 3.
type TeamScore struct {
	PlayerTeam int
	OtherTeam  int
}

// TrickOutcome reports what resolving a trick led to.
type TrickOutcome struct {
	// WinnerOffset is the hand offset that won the trick.
	WinnerOffset int
	// HandComplete is set when the fifth trick ended the hand and a fresh
	// hand was dealt with the dealer advanced.
	HandComplete bool
	// GameComplete is set when the hand pushed a team to the winning score.
	// A fresh game was dealt and the score reset.
	GameComplete bool
	// FinalScore is the score that ended the game, captured before the
	// reset. Only meaningful when GameComplete is set.
	FinalScore TeamScore
}

// Game is the aggregate root owning all mutable match state. Hands, played
// slots, turn, leader and caller are indexed by hand offset (0 = the seat
// left of the dealer); the dealer is an absolute seat index. All mutation
// goes through the exported operations so trick invariants are enforced in
// one place. The game itself is single threaded; drivers must serialize
// access.
type Game struct {
	score TeamScore

	dealer int
	turn   int
	leader int

	hands  [NumSeats][]Card
	kitty  [KittySize]Card
	played [NumSeats]*Card

	tricksPlayed int
	trickCount   TeamScore

	trump     Suit
	trumpMade bool
	caller    int
}

// NewGame deals a fresh match: shuffled deck, dealer at absolute seat 0,
// offset 0 (left of the dealer) to act first.
func NewGame() *Game {
	g := &Game{}
	g.hands, g.kitty = DealHands(ShuffleDeck(NewDeck()))
	return g
}

// NewGameFromDeal builds a game from a known deal. Intended for tests and
// drivers that manage their own shuffling.
func NewGameFromDeal(hands [NumSeats][]Card, kitty [KittySize]Card, dealer int) *Game {
	g := &Game{dealer: dealer % NumSeats}
	for i := range hands {
		g.hands[i] = append([]Card(nil), hands[i]...)
	}
	g.kitty = kitty
	return g
}

// Score returns the two team totals.
func (g *Game) Score() TeamScore { return g.score }

// Dealer returns the absolute seat of the current dealer.
func (g *Game) Dealer() int { return g.dealer }

// Turn returns the hand offset of the seat to act.
func (g *Game) Turn() int { return g.turn }

// Leader returns the hand offset of the current trick leader.
func (g *Game) Leader() int { return g.leader }

// TricksPlayed returns the number of resolved tricks in the current hand.
func (g *Game) TricksPlayed() int { return g.tricksPlayed }

// TrickCount returns per-team trick totals for the current hand.
func (g *Game) TrickCount() TeamScore { return g.trickCount }

// Trump returns the active trump suit. Only meaningful once IsTrumpMade.
func (g *Game) Trump() Suit { return g.trump }

// IsTrumpMade reports whether trump has been made for the current hand.
func (g *Game) IsTrumpMade() bool { return g.trumpMade }

// Caller returns the hand offset of the seat that named trump.
func (g *Game) Caller() int { return g.caller }

// Kitty returns the four undealt cards.
func (g *Game) Kitty() [KittySize]Card { return g.kitty }

// TurnedUp returns the card proposed as trump in the first bidding round.
func (g *Game) TurnedUp() Card { return g.kitty[0] }

// HumanOffset returns the hand offset of the human seat for the current
// dealer.
func (g *Game) HumanOffset() int { return HandOffset(g.dealer, HumanSeat) }

// HandAt returns a copy of the hand at the given offset.
func (g *Game) HandAt(offset int) ([]Card, error) {
	if offset < 0 || offset >= NumSeats {
		return nil, ErrBadOffset
	}
	return append([]Card(nil), g.hands[offset]...), nil
}

// Hands returns copies of all four hands indexed by offset.
func (g *Game) Hands() [NumSeats][]Card {
	var out [NumSeats][]Card
	for i := range g.hands {
		out[i] = append([]Card(nil), g.hands[i]...)
	}
	return out
}

// PlayedCards returns the trick slots indexed by offset; nil means the seat
// has not played yet.
func (g *Game) PlayedCards() [NumSeats]*Card {
	var out [NumSeats]*Card
	for i, c := range g.played {
		if c != nil {
			card := *c
			out[i] = &card
		}
	}
	return out
}

// MakeTrump names the trump suit on behalf of the caller at the given hand
// offset. This is the single point where trump, the made flag and the caller
// are set, for both the order-up and bid rounds and for human and computer
// callers alike.
func (g *Game) MakeTrump(callerOffset int, trump Suit) ([]Change, error) {
	if callerOffset < 0 || callerOffset >= NumSeats {
		return nil, ErrBadOffset
	}
	if g.trumpMade {
		return nil, ErrTrumpAlreadyMade
	}

	g.trump = trump
	g.trumpMade = true
	g.caller = callerOffset
	return []Change{ChangeTrump, ChangeCaller}, nil
}

// PlayCard plays the given card for the seat whose turn it is: the card
// moves from that hand into the seat's trick slot and the turn advances.
func (g *Game) PlayCard(card Card) ([]Change, error) {
	if !g.trumpMade {
		return nil, ErrTrumpNotMade
	}
	if g.played[g.turn] != nil {
		return nil, ErrSeatAlreadyPlayed
	}

	hand := g.hands[g.turn]
	idx := indexOfCard(hand, card)
	if idx < 0 {
		return nil, ErrCardNotInHand
	}

	g.hands[g.turn] = append(hand[:idx], hand[idx+1:]...)
	played := card
	g.played[g.turn] = &played
	g.turn = (g.turn + 1) % NumSeats

	return []Change{ChangePlayedCards, ChangeHands, ChangeTurn}, nil
}

// AdvanceTrick resolves a complete trick: credits the winner's team, and
// either sets up the next trick with the winner leading, or, after the fifth
// trick, awards hand points and deals the next hand (advancing the dealer).
// When the hand pushes a team to the winning score the whole game restarts
// with the score reset.
func (g *Game) AdvanceTrick() (TrickOutcome, []Change, error) {
	for _, c := range g.played {
		if c == nil {
			return TrickOutcome{}, nil, ErrTrickIncomplete
		}
	}

	winner := g.trickWinner()
	changes := []Change{ChangeTrickCount}

	winnerSeat := SeatFromHandOffset(g.dealer, winner)
	if winnerSeat%2 == 0 {
		g.trickCount.PlayerTeam++
	} else {
		g.trickCount.OtherTeam++
	}

	g.tricksPlayed++
	changes = append(changes, ChangeTricksPlayed)

	outcome := TrickOutcome{WinnerOffset: winner}

	if g.tricksPlayed == TricksPerHand {
		g.awardHandPoints()
		changes = append(changes, ChangeScore)

		outcome.HandComplete = true
		if g.score.PlayerTeam >= WinningScore || g.score.OtherTeam >= WinningScore {
			// Game over: fresh game, fresh score.
			outcome.GameComplete = true
			outcome.FinalScore = g.score
			g.score = TeamScore{}
			changes = append(changes, ChangeScore)
		}

		changes = append(changes, g.nextHand()...)
		return outcome, changes, nil
	}

	// The trick winner leads the next trick.
	g.turn = winner
	g.leader = winner
	g.played = [NumSeats]*Card{}
	changes = append(changes, ChangeTurn, ChangePlayedCards)

	return outcome, changes, nil
}

// trickWinner scans the played slots seeded at the leader's card and returns
// the offset holding the winning card. Slots are scanned in offset order;
// IsHigherThan is always anchored at the running winner.
func (g *Game) trickWinner() int {
	winning := *g.played[g.leader]
	winner := g.leader
	for i, c := range g.played {
		if c.IsHigherThan(winning, g.trump) {
			winning = *c
			winner = i
		}
	}
	return winner
}

// awardHandPoints credits the hand result: 2 for a five-trick sweep,
// otherwise 1 to the calling team for the majority or 2 to the defenders for
// a euchre. The calling team is identified by comparing the caller offset
// shifted by one against the dealer's seat parity; the check is
// order-sensitive and must not be replaced by seat equality.
func (g *Game) awardHandPoints() {
	tc := g.trickCount
	switch {
	case tc.PlayerTeam == TricksPerHand && tc.OtherTeam == 0:
		g.score.PlayerTeam += 2

	case tc.OtherTeam == TricksPerHand && tc.PlayerTeam == 0:
		g.score.OtherTeam += 2

	case tc.PlayerTeam >= 3:
		if (g.caller+1)%2 == g.dealer%2 {
			// The player team called it and made it.
			g.score.PlayerTeam++
		} else {
			// Euchre: the other team called and fell short.
			g.score.PlayerTeam += 2
		}

	case tc.OtherTeam >= 3:
		if (g.caller+1)%2 != g.dealer%2 {
			g.score.OtherTeam++
		} else {
			g.score.OtherTeam += 2
		}
	}
}

// nextHand reshuffles, advances the dealer and resets all per-hand state.
func (g *Game) nextHand() []Change {
	g.dealer = (g.dealer + 1) % NumSeats
	g.turn = 0
	g.leader = 0
	g.hands, g.kitty = DealHands(ShuffleDeck(NewDeck()))
	g.played = [NumSeats]*Card{}
	g.tricksPlayed = 0
	g.trickCount = TeamScore{}
	g.trumpMade = false

	return []Change{
		ChangeDealer,
		ChangeTurn,
		ChangeHands,
		ChangeKitty,
		ChangePlayedCards,
		ChangeTricksPlayed,
		ChangeTrickCount,
	}
}

func indexOfCard(cards []Card, target Card) int {
	for i, c := range cards {
		if c == target {
			return i
		}
	}
	return -1
}
