package nakama

// Client -> server request payloads. All match messages are JSON encoded.

type orderUpRequest struct {
	Accept bool `json:"accept"`
}

type bidTrumpRequest struct {
	Call bool `json:"call"`
	Suit int  `json:"suit"`
}

type playCardRequest struct {
	Card wireCard `json:"card"`
}

// Server -> client event payloads.

type tableStateEvent struct {
	Seats   []seatState `json:"seats"`
	Started bool        `json:"started"`
}

type seatState struct {
	Seat        int    `json:"seat"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsBot       bool   `json:"is_bot"`
}

type scoreEvent struct {
	PlayerTeam int `json:"player_team"`
	OtherTeam  int `json:"other_team"`
}

type handDealtEvent struct {
	Hand   []wireCard `json:"hand"`
	Counts [4]int     `json:"counts"`
}

type kittyEvent struct {
	TurnedUp wireCard `json:"turned_up"`
}

type dealerEvent struct {
	Dealer      int `json:"dealer"`
	HumanOffset int `json:"human_offset"`
}

type turnEvent struct {
	Turn int `json:"turn"`
}

type playedCardsEvent struct {
	Played []*wireCard `json:"played"`
}

type tricksPlayedEvent struct {
	TricksPlayed int `json:"tricks_played"`
}

type trickCountEvent struct {
	PlayerTeam int `json:"player_team"`
	OtherTeam  int `json:"other_team"`
}

type trumpEvent struct {
	Suit int  `json:"suit"`
	Made bool `json:"made"`
}

type callerEvent struct {
	Caller int `json:"caller"`
}

type trickResolvedEvent struct {
	WinnerOffset int `json:"winner_offset"`
}

type handCompletedEvent struct{}

type gameCompletedEvent struct {
	PlayerTeam int `json:"player_team"`
	OtherTeam  int `json:"other_team"`
}

type bidPassedEvent struct {
	BidderOffset int `json:"bidder_offset"`
	Round        int `json:"round"`
}

type bidRequestEvent struct {
	Round    int       `json:"round"`
	TurnedUp *wireCard `json:"turned_up,omitempty"`
	MustCall bool      `json:"must_call"`
}

type gameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
