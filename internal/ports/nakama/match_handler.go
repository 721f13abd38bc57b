package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/config"
	"euchre/internal/domain"
	"euchre/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	phaseLobby   = "lobby"
	phaseBidding = "bidding"
	phasePlaying = "playing"
)

// matchLabel is the indexed JSON label used by the quick-match query.
type matchLabel struct {
	Open  string `json:"open"` // "T" while the human seat is free
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler. Each match hosts exactly one human, seated at the fixed human
// seat, with the remaining seats filled by bots after a short delay.
type MatchState struct {
	Seats            [4]string                   `json:"seats"` // User IDs by absolute seat, "" means empty
	HumanUserID      string                      `json:"human_user_id"`
	Phase            string                      `json:"phase"`
	BidRound         int                         `json:"bid_round"`  // 1 = order up, 2 = name a suit
	BidOffset        int                         `json:"bid_offset"` // Hand offset of the current bidder
	BidPromptSent    bool                        `json:"bid_prompt_sent"`
	Tick             int64                       `json:"tick"`
	HumanJoinedTick  int64                       `json:"human_joined_tick"`
	BotWaitUntil     int64                       `json:"bot_wait_until"` // Tick when the next bot acts
	HumanDueTick     int64                       `json:"human_due_tick"` // Tick when the waiting human gets nudged, 0 = no timer
	TurnDuration     int                         `json:"turn_duration"`
	BotMinDelay      int                         `json:"bot_min_delay"`
	BotMaxDelay      int                         `json:"bot_max_delay"`
	BotAutoFillDelay int                         `json:"bot_auto_fill_delay"`
	Presences        map[string]runtime.Presence `json:"-"`
	Bots             map[string]*bot.Agent       `json:"-"`
	App              *app.Service                `json:"-"`
	Game             *domain.Game                `json:"-"`
	Stats            ports.StatsPort             `json:"-"`
}

func (ms *MatchState) humanSeated() bool {
	return ms.HumanUserID != ""
}

func (ms *MatchState) botsSeated() bool {
	for seat, userID := range ms.Seats {
		if seat == domain.HumanSeat {
			continue
		}
		if userID == "" {
			return false
		}
	}
	return true
}

// humanOffset is the human's hand offset for the current deal.
func (ms *MatchState) humanOffset() int {
	return ms.Game.HumanOffset()
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	state := &MatchState{
		Phase:            phaseLobby,
		Presences:        make(map[string]runtime.Presence),
		Bots:             make(map[string]*bot.Agent),
		App:              app.NewService(nil),
		Stats:            NewNakamaStatsAdapter(nk),
		TurnDuration:     cfg.TurnDurationSeconds,
		BotMinDelay:      cfg.BotMinDelaySeconds,
		BotMaxDelay:      cfg.BotMaxDelaySeconds,
		BotAutoFillDelay: cfg.BotAutoFillDelaySeconds,
	}

	labelBytes, err := json.Marshal(matchLabel{Open: "T", Game: "euchre", Phase: phaseLobby})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A table hosts a single human. Allow the same user back in to rejoin.
	if matchState.humanSeated() && matchState.HumanUserID != presence.GetUserId() {
		return matchState, false, "Match full"
	}

	return matchState, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.HumanUserID == p.GetUserId() {
			logger.Debug("MatchJoin: User %s rejoined.", p.GetUserId())
			continue
		}

		matchState.HumanUserID = p.GetUserId()
		matchState.Seats[domain.HumanSeat] = p.GetUserId()
		matchState.HumanJoinedTick = matchState.Tick
		logger.Info("MatchJoin: User %s seated at %d.", p.GetUserId(), domain.HumanSeat)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastTableState(matchState, dispatcher, logger)

	// A rejoining human needs the current view replayed.
	if matchState.Game != nil {
		mh.broadcastSnapshot(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// MatchLeave terminates the match once its human is gone. Bots have nobody
// left to play for.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		if p.GetUserId() == matchState.HumanUserID {
			logger.Info("MatchLeave: Human %s left, terminating match.", p.GetUserId())
			return nil
		}
	}

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpOrderUp:
			mh.handleOrderUp(ctx, matchState, dispatcher, logger, msg)
		case OpBidTrump:
			mh.handleBidTrump(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.autoFillBots(matchState, dispatcher, logger)
	mh.advanceGame(ctx, matchState, dispatcher, logger)

	return matchState
}

// autoFillBots seats bot players on every non-human seat once the human has
// waited out the auto-fill delay.
func (mh *matchHandler) autoFillBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game != nil || !state.humanSeated() || state.botsSeated() {
		return
	}
	if state.Tick-state.HumanJoinedTick < int64(state.BotAutoFillDelay) {
		return
	}

	for seat := range state.Seats {
		if seat == domain.HumanSeat || state.Seats[seat] != "" {
			continue
		}
		identity := bot.GetBotIdentity(seat)
		state.Seats[seat] = identity.UserID
		state.Bots[identity.UserID] = bot.NewAgent(identity.UserID)
		logger.Info("autoFillBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, seat)
	}

	mh.broadcastTableState(state, dispatcher, logger)
}

// advanceGame drives bidding and bot play forward one step per tick.
func (mh *matchHandler) advanceGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		return
	}

	switch state.Phase {
	case phaseBidding:
		mh.advanceBidding(ctx, state, dispatcher, logger)
	case phasePlaying:
		mh.advancePlaying(ctx, state, dispatcher, logger)
	}
}

func (mh *matchHandler) advanceBidding(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g := state.Game

	if g.IsTrumpMade() {
		mh.enterPlaying(state, dispatcher, logger)
		return
	}

	if state.BidOffset == state.humanOffset() {
		if mh.humanOverdue(state) {
			state.BidPromptSent = false
		}
		mh.promptHumanBid(state, dispatcher, logger)
		return
	}
	state.HumanDueTick = 0

	if !mh.botReady(state, logger) {
		return
	}

	var events []app.Event
	var err error
	if state.BidRound == 1 {
		events, err = state.App.ComputerOrderUp(g, state.BidOffset)
	} else {
		events, err = state.App.ComputerBidTrump(g, state.BidOffset)
	}
	if err != nil {
		logger.Error("advanceBidding: Bot bid at offset %d failed: %v", state.BidOffset, err)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	if g.IsTrumpMade() {
		mh.enterPlaying(state, dispatcher, logger)
		return
	}
	mh.nextBidder(state)
}

func (mh *matchHandler) advancePlaying(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g := state.Game

	if playedCount(g) == domain.NumSeats {
		mh.resolveTrick(ctx, state, dispatcher, logger)
		return
	}

	if g.Turn() == state.humanOffset() {
		state.BotWaitUntil = 0
		if state.HumanDueTick == 0 {
			mh.armHumanTimer(state)
		} else if mh.humanOverdue(state) {
			// Nudge a stalled human by re-sending the turn notice.
			mh.sendToHuman(state, dispatcher, logger, OpTurnChanged, turnEvent{Turn: g.Turn()})
			mh.armHumanTimer(state)
		}
		return
	}
	state.HumanDueTick = 0

	if !mh.botReady(state, logger) {
		return
	}

	seat := domain.SeatFromHandOffset(g.Dealer(), g.Turn())
	agent, exists := state.Bots[state.Seats[seat]]
	if !exists {
		agent = bot.NewAgent(state.Seats[seat])
		state.Bots[agent.ID] = agent
	}
	card, err := agent.PickCard(g, g.Caller() == g.Turn())
	if err != nil {
		logger.Error("advancePlaying: Bot %s pick at offset %d failed: %v", agent.ID, g.Turn(), err)
		return
	}
	events, err := state.App.PlayCard(g, card)
	if err != nil {
		logger.Error("advancePlaying: Bot play at offset %d failed: %v", g.Turn(), err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// botReady applies the configured think delay. It reports true once the
// pending bot action is due, resetting the timer for the next one.
func (mh *matchHandler) botReady(state *MatchState, logger runtime.Logger) bool {
	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("botReady: Next bot action at tick %d (current %d)", state.BotWaitUntil, state.Tick)
		return false
	}
	if state.Tick < state.BotWaitUntil {
		return false
	}
	state.BotWaitUntil = 0
	return true
}

// armHumanTimer starts the nudge countdown for a human decision. A zero
// turn duration disables the timer.
func (mh *matchHandler) armHumanTimer(state *MatchState) {
	if state.TurnDuration <= 0 {
		state.HumanDueTick = 0
		return
	}
	state.HumanDueTick = state.Tick + int64(state.TurnDuration)
}

func (mh *matchHandler) humanOverdue(state *MatchState) bool {
	return state.HumanDueTick != 0 && state.Tick >= state.HumanDueTick
}

func (mh *matchHandler) resolveTrick(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	outcome, events, err := state.App.AdvanceTrick(state.Game)
	if err != nil {
		logger.Error("resolveTrick: %v", err)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	if outcome.GameComplete {
		mh.recordResult(ctx, state, logger, outcome.FinalScore)
	}
	if outcome.HandComplete {
		// The domain already dealt the next hand; bidding starts over.
		mh.enterBidding(state)
	}
}

// recordResult persists the finished game against the human's stats. The
// human sits on the even-seat team.
func (mh *matchHandler) recordResult(ctx context.Context, state *MatchState, logger runtime.Logger, final domain.TeamScore) {
	result := ports.MatchResult{
		UserID:         state.HumanUserID,
		Won:            final.PlayerTeam > final.OtherTeam,
		TeamScore:      final.PlayerTeam,
		OtherTeamScore: final.OtherTeam,
	}
	if err := state.Stats.RecordResult(ctx, result); err != nil {
		logger.Error("recordResult: Failed to record stats for %s: %v", state.HumanUserID, err)
	}
}

func (mh *matchHandler) enterBidding(state *MatchState) {
	state.Phase = phaseBidding
	state.BidRound = 1
	state.BidOffset = 0
	state.BidPromptSent = false
	state.BotWaitUntil = 0
	state.HumanDueTick = 0
}

func (mh *matchHandler) enterPlaying(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	state.Phase = phasePlaying
	state.BidPromptSent = false
	state.BotWaitUntil = 0
	state.HumanDueTick = 0
	mh.updateLabel(state, dispatcher, logger)
}

// nextBidder moves to the following seat, rolling the first bidding round
// over into the second. The second round cannot be exhausted because the
// dealer is stuck.
func (mh *matchHandler) nextBidder(state *MatchState) {
	state.BidPromptSent = false
	state.BidOffset++
	if state.BidOffset == domain.NumSeats {
		state.BidRound = 2
		state.BidOffset = 0
	}
}

// promptHumanBid sends a private bid request once per bidding turn and then
// waits for the client's answer.
func (mh *matchHandler) promptHumanBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.BidPromptSent {
		return
	}
	state.BidPromptSent = true
	mh.armHumanTimer(state)

	prompt := bidRequestEvent{
		Round:    state.BidRound,
		MustCall: state.BidRound == 2 && state.BidOffset == domain.NumSeats-1,
	}
	if state.BidRound == 1 {
		turnedUp := cardToWire(state.Game.TurnedUp())
		prompt.TurnedUp = &turnedUp
	}

	mh.sendToHuman(state, dispatcher, logger, OpBidRequest, prompt)
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if msg.GetUserId() != state.HumanUserID {
		logger.Warn("handleStartGame: Ignoring start from non-seated user %s", msg.GetUserId())
		return
	}
	if state.Game != nil {
		mh.sendError(state, dispatcher, logger, 400, "game already running")
		return
	}
	if !state.botsSeated() {
		mh.sendError(state, dispatcher, logger, 400, "table not filled yet")
		return
	}

	game, events := state.App.StartMatch()
	state.Game = game
	mh.enterBidding(state)
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	logger.Info("handleStartGame: Game started, dealer seat %d.", game.Dealer())
}

func (mh *matchHandler) handleOrderUp(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if !mh.humanMayBid(state, dispatcher, logger, msg, 1) {
		return
	}

	var request orderUpRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleOrderUp: Bad payload from %s: %v", msg.GetUserId(), err)
		return
	}

	if !request.Accept {
		mh.broadcastBidPassed(state, dispatcher, logger)
		mh.nextBidder(state)
		return
	}

	events, err := state.App.PlayerOrderUp(state.Game)
	if err != nil {
		mh.sendError(state, dispatcher, logger, 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	mh.enterPlaying(state, dispatcher, logger)
}

func (mh *matchHandler) handleBidTrump(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if !mh.humanMayBid(state, dispatcher, logger, msg, 2) {
		return
	}

	var request bidTrumpRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleBidTrump: Bad payload from %s: %v", msg.GetUserId(), err)
		return
	}

	if !request.Call {
		if state.BidOffset == domain.NumSeats-1 {
			// Stick the dealer: the last bidder has to call something.
			mh.sendError(state, dispatcher, logger, 400, "dealer must name a suit")
			return
		}
		mh.broadcastBidPassed(state, dispatcher, logger)
		mh.nextBidder(state)
		return
	}

	suit, err := suitFromWire(request.Suit)
	if err != nil {
		mh.sendError(state, dispatcher, logger, 400, err.Error())
		return
	}

	events, err := state.App.PlayerBidTrump(state.Game, suit)
	if err != nil {
		mh.sendError(state, dispatcher, logger, 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	mh.enterPlaying(state, dispatcher, logger)
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if msg.GetUserId() != state.HumanUserID || state.Game == nil {
		return
	}
	if state.Phase != phasePlaying {
		mh.sendError(state, dispatcher, logger, 400, "not in play phase")
		return
	}
	if state.Game.Turn() != state.humanOffset() {
		mh.sendError(state, dispatcher, logger, 400, "not your turn")
		return
	}

	var request playCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCard: Bad payload from %s: %v", msg.GetUserId(), err)
		return
	}

	card, err := cardFromWire(request.Card)
	if err != nil {
		mh.sendError(state, dispatcher, logger, 400, err.Error())
		return
	}

	events, err := state.App.PlayCard(state.Game, card)
	if err != nil {
		logger.Warn("handlePlayCard: User %s failed to play %v: %v", msg.GetUserId(), card, err)
		mh.sendError(state, dispatcher, logger, 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// humanMayBid validates that a bid message is from the seated human, during
// the expected bidding round, on the human's bidding turn.
func (mh *matchHandler) humanMayBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData, round int) bool {
	if msg.GetUserId() != state.HumanUserID || state.Game == nil {
		return false
	}
	if state.Phase != phaseBidding || state.BidRound != round {
		mh.sendError(state, dispatcher, logger, 400, "not your bidding round")
		return false
	}
	if state.BidOffset != state.humanOffset() {
		mh.sendError(state, dispatcher, logger, 400, "not your bid")
		return false
	}
	return true
}

func (mh *matchHandler) broadcastBidPassed(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	payload := bidPassedEvent{BidderOffset: state.BidOffset, Round: state.BidRound}
	mh.broadcast(state, dispatcher, logger, OpBidPassed, payload, nil)
}

// broadcastSnapshot replays the full current view, used when the human
// reconnects mid-game.
func (mh *matchHandler) broadcastSnapshot(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g := state.Game
	for _, ev := range []app.Event{
		{Kind: app.EventScoreChanged, Payload: app.ScorePayload{Score: g.Score()}},
		{Kind: app.EventDealerChanged, Payload: app.DealerPayload{Dealer: g.Dealer(), HumanOffset: g.HumanOffset()}},
		{Kind: app.EventTurnChanged, Payload: app.TurnPayload{Turn: g.Turn()}},
		{Kind: app.EventHandsChanged, Payload: app.HandsPayload{Hands: g.Hands()}},
		{Kind: app.EventKittyChanged, Payload: app.KittyPayload{Kitty: g.Kitty(), TurnedUp: g.TurnedUp()}},
		{Kind: app.EventPlayedCardsChanged, Payload: app.PlayedCardsPayload{Played: g.PlayedCards()}},
		{Kind: app.EventTricksPlayedChanged, Payload: app.TricksPlayedPayload{TricksPlayed: g.TricksPlayed()}},
		{Kind: app.EventTrickCountChanged, Payload: app.TrickCountPayload{TrickCount: g.TrickCount()}},
		{Kind: app.EventTrumpChanged, Payload: app.TrumpPayload{Trump: g.Trump(), Made: g.IsTrumpMade()}},
	} {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	if state.Phase == phaseBidding && state.BidOffset == state.humanOffset() {
		state.BidPromptSent = false
		mh.promptHumanBid(state, dispatcher, logger)
	}
}

func (mh *matchHandler) broadcastTableState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	seats := make([]seatState, 0, domain.NumSeats)
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(userID); name != "" {
			displayName = name
		}

		seats = append(seats, seatState{
			Seat:        i,
			UserID:      userID,
			DisplayName: displayName,
			IsBot:       bot.IsBot(userID),
		})
	}

	payload := tableStateEvent{Seats: seats, Started: state.Game != nil}
	mh.broadcast(state, dispatcher, logger, OpTableState, payload, nil)
}

// broadcastEvent converts an app event to its wire payload and dispatches
// it. Hands stay private to the human; only the turned-up card of the kitty
// is ever exposed.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	g := state.Game

	switch ev.Kind {
	case app.EventScoreChanged:
		p := ev.Payload.(app.ScorePayload)
		mh.broadcast(state, dispatcher, logger, OpScoreChanged, scoreEvent{
			PlayerTeam: p.Score.PlayerTeam,
			OtherTeam:  p.Score.OtherTeam,
		}, nil)

	case app.EventHandsChanged:
		p := ev.Payload.(app.HandsPayload)
		var counts [4]int
		for i, hand := range p.Hands {
			counts[i] = len(hand)
		}
		mh.sendToHuman(state, dispatcher, logger, OpHandDealt, handDealtEvent{
			Hand:   cardsToWire(p.Hands[g.HumanOffset()]),
			Counts: counts,
		})

	case app.EventKittyChanged:
		p := ev.Payload.(app.KittyPayload)
		mh.broadcast(state, dispatcher, logger, OpKittyTurnedUp, kittyEvent{
			TurnedUp: cardToWire(p.TurnedUp),
		}, nil)

	case app.EventDealerChanged:
		p := ev.Payload.(app.DealerPayload)
		mh.broadcast(state, dispatcher, logger, OpDealerChanged, dealerEvent{
			Dealer:      p.Dealer,
			HumanOffset: p.HumanOffset,
		}, nil)

	case app.EventTurnChanged:
		p := ev.Payload.(app.TurnPayload)
		mh.broadcast(state, dispatcher, logger, OpTurnChanged, turnEvent{Turn: p.Turn}, nil)

	case app.EventPlayedCardsChanged:
		p := ev.Payload.(app.PlayedCardsPayload)
		mh.broadcast(state, dispatcher, logger, OpCardPlayed, playedCardsEvent{
			Played: playedToWire(p.Played),
		}, nil)

	case app.EventTricksPlayedChanged:
		p := ev.Payload.(app.TricksPlayedPayload)
		mh.broadcast(state, dispatcher, logger, OpTricksPlayed, tricksPlayedEvent{
			TricksPlayed: p.TricksPlayed,
		}, nil)

	case app.EventTrickCountChanged:
		p := ev.Payload.(app.TrickCountPayload)
		mh.broadcast(state, dispatcher, logger, OpTrickCount, trickCountEvent{
			PlayerTeam: p.TrickCount.PlayerTeam,
			OtherTeam:  p.TrickCount.OtherTeam,
		}, nil)

	case app.EventTrumpChanged:
		p := ev.Payload.(app.TrumpPayload)
		mh.broadcast(state, dispatcher, logger, OpTrumpMade, trumpEvent{
			Suit: int(p.Trump),
			Made: p.Made,
		}, nil)

	case app.EventCallerChanged:
		p := ev.Payload.(app.CallerPayload)
		mh.broadcast(state, dispatcher, logger, OpCallerChanged, callerEvent{Caller: p.Caller}, nil)

	case app.EventTrickResolved:
		p := ev.Payload.(app.TrickResolvedPayload)
		mh.broadcast(state, dispatcher, logger, OpTrickResolved, trickResolvedEvent{
			WinnerOffset: p.WinnerOffset,
		}, nil)

	case app.EventHandCompleted:
		mh.broadcast(state, dispatcher, logger, OpHandCompleted, handCompletedEvent{}, nil)

	case app.EventGameCompleted:
		p := ev.Payload.(app.GameCompletedPayload)
		mh.broadcast(state, dispatcher, logger, OpGameCompleted, gameCompletedEvent{
			PlayerTeam: p.FinalScore.PlayerTeam,
			OtherTeam:  p.FinalScore.OtherTeam,
		}, nil)

	case app.EventBidPassed:
		p := ev.Payload.(app.BidPassedPayload)
		mh.broadcast(state, dispatcher, logger, OpBidPassed, bidPassedEvent{
			BidderOffset: p.BidderOffset,
			Round:        p.Round,
		}, nil)

	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
	}
}

// broadcast JSON-encodes a payload and dispatches it, to everyone when
// recipients is nil.
func (mh *matchHandler) broadcast(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any, recipients []runtime.Presence) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal payload for opcode %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true); err != nil {
		logger.Error("Failed to broadcast opcode %d: %v", opCode, err)
	}
}

// sendToHuman dispatches a payload to the human's presence only. Dropped
// silently while the human is disconnected; the rejoin snapshot covers it.
func (mh *matchHandler) sendToHuman(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any) {
	presence, ok := state.Presences[state.HumanUserID]
	if !ok {
		return
	}
	mh.broadcast(state, dispatcher, logger, opCode, payload, []runtime.Presence{presence})
}

// sendError sends a gameErrorEvent to the human.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, code int, message string) {
	mh.sendToHuman(state, dispatcher, logger, OpGameError, gameErrorEvent{Code: code, Message: message})
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	open := "F"
	if !state.humanSeated() {
		open = "T"
	}
	phase := state.Phase
	if state.Game == nil {
		phase = phaseLobby
	}

	labelBytes, err := json.Marshal(matchLabel{Open: open, Game: "euchre", Phase: phase})
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func playedCount(g *domain.Game) int {
	count := 0
	for _, c := range g.PlayedCards() {
		if c != nil {
			count++
		}
	}
	return count
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
