package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a joinable table.
	RpcQuickMatch = "quick_match"

	// MatchNameEuchre is the authoritative match handler name registered with Nakama.
	MatchNameEuchre = "euchre_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpOrderUp   int64 = 2
	OpBidTrump  int64 = 3
	OpPlayCard  int64 = 4

	// Server -> Client events
	OpTableState    int64 = 100
	OpScoreChanged  int64 = 101
	OpHandDealt     int64 = 102 // send privately
	OpKittyTurnedUp int64 = 103
	OpDealerChanged int64 = 104
	OpTurnChanged   int64 = 105
	OpCardPlayed    int64 = 106
	OpTricksPlayed  int64 = 107
	OpTrickCount    int64 = 108
	OpTrumpMade     int64 = 109
	OpCallerChanged int64 = 110
	OpTrickResolved int64 = 111
	OpHandCompleted int64 = 112
	OpGameCompleted int64 = 113
	OpBidPassed     int64 = 114
	OpBidRequest    int64 = 115 // send privately
	OpGameError     int64 = 120
)
