package app

import (
	"euchre/internal/bot"
	"euchre/internal/domain"
)

// Service contains the Euchre use-cases operating on a domain game. Every
// mutating operation returns the events a driver needs to refresh a view,
// derived from the change tags the domain emits.
type Service struct {
	brain bot.Brain
}

// NewService constructs a Service with the provided brain, defaulting to the
// standard heuristic player.
func NewService(brain bot.Brain) *Service {
	if brain == nil {
		brain = bot.NewHeuristicBot()
	}
	return &Service{brain: brain}
}

// StartMatch deals a fresh game and returns it with a full set of snapshot
// events so a newly-attached driver can render everything.
func (s *Service) StartMatch() (*domain.Game, []Event) {
	g := domain.NewGame()
	events := s.eventsFromChanges(g, []domain.Change{
		domain.ChangeScore,
		domain.ChangeDealer,
		domain.ChangeTurn,
		domain.ChangeHands,
		domain.ChangeKitty,
		domain.ChangePlayedCards,
		domain.ChangeTricksPlayed,
		domain.ChangeTrickCount,
	})
	return g, events
}

// ComputerOrderUp asks the bot at the given offset from the current turn
// whether it wants the turned-up suit as trump in the first bidding round.
// A pass yields a single bid_passed event; an accept makes trump.
func (s *Service) ComputerOrderUp(g *domain.Game, offset int) ([]Event, error) {
	bidder, hand, err := bidderHand(g, offset)
	if err != nil {
		return nil, err
	}

	if !s.brain.OrderUpTrump(hand, g.TurnedUp().Suit) {
		return []Event{{Kind: EventBidPassed, Payload: BidPassedPayload{BidderOffset: bidder, Round: 1}}}, nil
	}

	changes, err := g.MakeTrump(bidder, g.TurnedUp().Suit)
	if err != nil {
		return nil, err
	}
	return s.eventsFromChanges(g, changes), nil
}

// ComputerBidTrump asks the bot at the given offset from the current turn to
// name trump in the second bidding round. Stick the dealer: the bidder at
// offset 3 must call its best suit even when it would rather pass.
func (s *Service) ComputerBidTrump(g *domain.Game, offset int) ([]Event, error) {
	bidder, hand, err := bidderHand(g, offset)
	if err != nil {
		return nil, err
	}

	call, suit := s.brain.BidOnTrump(hand, g.TurnedUp().Suit)
	if !call && offset != domain.NumSeats-1 {
		return []Event{{Kind: EventBidPassed, Payload: BidPassedPayload{BidderOffset: bidder, Round: 2}}}, nil
	}

	changes, err := g.MakeTrump(bidder, suit)
	if err != nil {
		return nil, err
	}
	return s.eventsFromChanges(g, changes), nil
}

// PlayerOrderUp accepts the turned-up suit on behalf of the human. Passing
// is expressed by not calling this operation.
func (s *Service) PlayerOrderUp(g *domain.Game) ([]Event, error) {
	changes, err := g.MakeTrump(g.HumanOffset(), g.TurnedUp().Suit)
	if err != nil {
		return nil, err
	}
	return s.eventsFromChanges(g, changes), nil
}

// PlayerBidTrump names the given suit as trump on behalf of the human in the
// second bidding round. As the stuck dealer the human must call, so drivers
// are required to invoke this for a dealing human who passed round one.
func (s *Service) PlayerBidTrump(g *domain.Game, suit domain.Suit) ([]Event, error) {
	changes, err := g.MakeTrump(g.HumanOffset(), suit)
	if err != nil {
		return nil, err
	}
	return s.eventsFromChanges(g, changes), nil
}

// PlayCard applies the chosen card for the seat whose turn it is and
// reports the resulting view events. Callers decide who picked the card;
// the domain validates the play itself.
func (s *Service) PlayCard(g *domain.Game, card domain.Card) ([]Event, error) {
	changes, err := g.PlayCard(card)
	if err != nil {
		return nil, err
	}
	return s.eventsFromChanges(g, changes), nil
}

// AdvanceTrick resolves a complete trick and reports the outcome alongside
// the view events, including lifecycle markers for hand and game boundaries.
func (s *Service) AdvanceTrick(g *domain.Game) (domain.TrickOutcome, []Event, error) {
	outcome, changes, err := g.AdvanceTrick()
	if err != nil {
		return outcome, nil, err
	}

	events := []Event{{
		Kind:    EventTrickResolved,
		Payload: TrickResolvedPayload{WinnerOffset: outcome.WinnerOffset},
	}}
	events = append(events, s.eventsFromChanges(g, changes)...)

	if outcome.GameComplete {
		events = append(events, Event{
			Kind:    EventGameCompleted,
			Payload: GameCompletedPayload{FinalScore: outcome.FinalScore},
		})
	} else if outcome.HandComplete {
		events = append(events, Event{Kind: EventHandCompleted})
	}

	return outcome, events, nil
}

func bidderHand(g *domain.Game, offset int) (int, []domain.Card, error) {
	if offset < 0 || offset >= domain.NumSeats {
		return 0, nil, domain.ErrBadOffset
	}
	bidder := (g.Turn() + offset) % domain.NumSeats
	hand, err := g.HandAt(bidder)
	if err != nil {
		return 0, nil, err
	}
	return bidder, hand, nil
}

func (s *Service) eventsFromChanges(g *domain.Game, changes []domain.Change) []Event {
	events := make([]Event, 0, len(changes))
	for _, ch := range changes {
		events = append(events, eventFor(g, ch))
	}
	return events
}

func eventFor(g *domain.Game, ch domain.Change) Event {
	switch ch {
	case domain.ChangeScore:
		return Event{Kind: EventScoreChanged, Payload: ScorePayload{Score: g.Score()}}
	case domain.ChangeHands:
		return Event{Kind: EventHandsChanged, Payload: HandsPayload{Hands: g.Hands()}}
	case domain.ChangeKitty:
		return Event{Kind: EventKittyChanged, Payload: KittyPayload{Kitty: g.Kitty(), TurnedUp: g.TurnedUp()}}
	case domain.ChangeDealer:
		return Event{Kind: EventDealerChanged, Payload: DealerPayload{Dealer: g.Dealer(), HumanOffset: g.HumanOffset()}}
	case domain.ChangeTurn:
		return Event{Kind: EventTurnChanged, Payload: TurnPayload{Turn: g.Turn()}}
	case domain.ChangePlayedCards:
		return Event{Kind: EventPlayedCardsChanged, Payload: PlayedCardsPayload{Played: g.PlayedCards()}}
	case domain.ChangeTricksPlayed:
		return Event{Kind: EventTricksPlayedChanged, Payload: TricksPlayedPayload{TricksPlayed: g.TricksPlayed()}}
	case domain.ChangeTrickCount:
		return Event{Kind: EventTrickCountChanged, Payload: TrickCountPayload{TrickCount: g.TrickCount()}}
	case domain.ChangeTrump:
		return Event{Kind: EventTrumpChanged, Payload: TrumpPayload{Trump: g.Trump(), Made: g.IsTrumpMade()}}
	case domain.ChangeCaller:
		return Event{Kind: EventCallerChanged, Payload: CallerPayload{Caller: g.Caller()}}
	default:
		panic("unreachable change tag")
	}
}
