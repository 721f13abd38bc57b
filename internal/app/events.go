package app

import "euchre/internal/domain"

// EventKind identifies which observable changed or which lifecycle point was
// reached. One event is emitted per logically-changed observable.
type EventKind string

const (
	EventScoreChanged        EventKind = "score"
	EventHandsChanged        EventKind = "hands"
	EventKittyChanged        EventKind = "kitty"
	EventDealerChanged       EventKind = "dealer"
	EventTurnChanged         EventKind = "turn"
	EventPlayedCardsChanged  EventKind = "played_cards"
	EventTricksPlayedChanged EventKind = "tricks_played"
	EventTrickCountChanged   EventKind = "trick_count"
	EventTrumpChanged        EventKind = "trump"
	EventCallerChanged       EventKind = "caller"

	// Lifecycle markers for the driver loop.
	EventTrickResolved EventKind = "trick_resolved"
	EventHandCompleted EventKind = "hand_completed"
	EventGameCompleted EventKind = "game_completed"
	EventBidPassed     EventKind = "bid_passed"
)

// Event is an app-level notification with optional targeted recipients.
// Empty Recipients means broadcast.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string
}

type ScorePayload struct {
	Score domain.TeamScore
}

type HandsPayload struct {
	Hands [domain.NumSeats][]domain.Card
}

type KittyPayload struct {
	Kitty    [domain.KittySize]domain.Card
	TurnedUp domain.Card
}

type DealerPayload struct {
	Dealer      int
	HumanOffset int
}

type TurnPayload struct {
	Turn int
}

type PlayedCardsPayload struct {
	Played [domain.NumSeats]*domain.Card
}

type TricksPlayedPayload struct {
	TricksPlayed int
}

type TrickCountPayload struct {
	TrickCount domain.TeamScore
}

type TrumpPayload struct {
	Trump domain.Suit
	Made  bool
}

type CallerPayload struct {
	Caller int
}

type TrickResolvedPayload struct {
	WinnerOffset int
}

type GameCompletedPayload struct {
	FinalScore domain.TeamScore
}

type BidPassedPayload struct {
	BidderOffset int
	Round        int
}
