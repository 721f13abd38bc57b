// Command euchreterm runs a local Euchre table in the terminal: one human
// against three bots, driven directly by the app service.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/domain"
)

type table struct {
	svc  *app.Service
	game *domain.Game
	bots [domain.NumSeats]*bot.Agent // indexed by absolute seat, human slot nil
}

func main() {
	pterm.Print("\n")

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Eu", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chre", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	t := &table{svc: app.NewService(nil)}
	for seat := 0; seat < domain.NumSeats; seat++ {
		if seat == domain.HumanSeat {
			continue
		}
		identity := bot.GetBotIdentity(seat)
		t.bots[seat] = bot.NewAgent(identity.UserID)
	}

	for {
		if err := t.playGame(); err != nil {
			pterm.Error.Printfln("Game aborted: %v", err)
			os.Exit(1)
		}

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another game?").
			Show()
		if !again {
			return
		}
	}
}

// playGame runs hands until one team reaches the winning score.
func (t *table) playGame() error {
	game, _ := t.svc.StartMatch()
	t.game = game

	for {
		t.printScore()
		if err := t.runBidding(); err != nil {
			return err
		}

		outcome, err := t.runHand()
		if err != nil {
			return err
		}
		if outcome.GameComplete {
			t.printGameResult(outcome.FinalScore)
			return nil
		}
	}
}

// runBidding walks both bidding rounds until trump is made. The dealer is
// stuck in round two.
func (t *table) runBidding() error {
	g := t.game
	turnedUp := g.TurnedUp()
	pterm.Info.Printfln("Dealer is %s. Turned up: %s", t.seatName(g.Dealer()), turnedUp)

	for round := 1; round <= 2 && !g.IsTrumpMade(); round++ {
		for offset := 0; offset < domain.NumSeats && !g.IsTrumpMade(); offset++ {
			if offset == g.HumanOffset() {
				if err := t.humanBid(round, offset); err != nil {
					return err
				}
				continue
			}

			var events []app.Event
			var err error
			if round == 1 {
				events, err = t.svc.ComputerOrderUp(g, offset)
			} else {
				events, err = t.svc.ComputerBidTrump(g, offset)
			}
			if err != nil {
				return err
			}
			t.reportBid(events, offset)
		}
	}

	pterm.Success.Printfln("Trump is %s, called by %s.", g.Trump(), t.offsetName(g.Caller()))
	return nil
}

func (t *table) humanBid(round, offset int) error {
	g := t.game
	t.printHand()

	if round == 1 {
		accept, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText(fmt.Sprintf("Order up %s as trump?", g.TurnedUp().Suit)).
			Show()
		if !accept {
			pterm.Println("You pass.")
			return nil
		}
		_, err := t.svc.PlayerOrderUp(g)
		return err
	}

	stuck := offset == domain.NumSeats-1
	options := []string{
		domain.Hearts.String(),
		domain.Diamonds.String(),
		domain.Spades.String(),
		domain.Clubs.String(),
	}
	if !stuck {
		options = append(options, "Pass")
	} else {
		pterm.Info.Println("You are the dealer and must name a suit.")
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Name a trump suit").
		WithOptions(options).
		Show()
	if choice == "Pass" {
		pterm.Println("You pass.")
		return nil
	}

	suit, err := suitByName(choice)
	if err != nil {
		return err
	}
	_, err = t.svc.PlayerBidTrump(g, suit)
	return err
}

func (t *table) reportBid(events []app.Event, offset int) {
	pterm.Println(t.bidSummary(events, offset))
}

// bidSummary describes one bot's bid: a pass, or the trump call that ended
// the bidding.
func (t *table) bidSummary(events []app.Event, offset int) string {
	for _, ev := range events {
		if ev.Kind == app.EventBidPassed {
			return fmt.Sprintf("%s passes.", t.offsetName(offset))
		}
	}
	return fmt.Sprintf("%s calls %s.", t.offsetName(offset), t.game.Trump())
}

// runHand plays five tricks and returns the last trick's outcome.
func (t *table) runHand() (domain.TrickOutcome, error) {
	g := t.game
	var outcome domain.TrickOutcome

	for trick := 0; trick < domain.TricksPerHand; trick++ {
		for plays := 0; plays < domain.NumSeats; plays++ {
			if g.Turn() == g.HumanOffset() {
				if err := t.humanPlay(); err != nil {
					return outcome, err
				}
			} else {
				seat := domain.SeatFromHandOffset(g.Dealer(), g.Turn())
				madeTrump := g.Caller() == g.Turn()
				card, err := t.bots[seat].PickCard(g, madeTrump)
				if err != nil {
					return outcome, err
				}
				if _, err := t.svc.PlayCard(g, card); err != nil {
					return outcome, err
				}
			}
			t.printTrick()
		}

		var err error
		outcome, _, err = t.svc.AdvanceTrick(g)
		if err != nil {
			return outcome, err
		}
		pterm.Info.Printfln("Trick to %s. Tricks: you %d, them %d",
			t.offsetName(outcome.WinnerOffset), g.TrickCount().PlayerTeam, g.TrickCount().OtherTeam)

		if outcome.HandComplete {
			return outcome, nil
		}
	}

	return outcome, nil
}

func (t *table) humanPlay() error {
	g := t.game
	hand, err := g.HandAt(g.HumanOffset())
	if err != nil {
		return err
	}

	options := make([]string, 0, len(hand))
	for _, c := range hand {
		options = append(options, c.String())
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Play a card").
		WithOptions(options).
		Show()

	for _, c := range hand {
		if c.String() == choice {
			_, err := t.svc.PlayCard(g, c)
			return err
		}
	}
	return fmt.Errorf("card %q not in hand", choice)
}

func (t *table) printScore() {
	score := t.game.Score()
	pterm.DefaultSection.Printfln("Score: you %d, them %d", score.PlayerTeam, score.OtherTeam)
}

func (t *table) printHand() {
	hand, err := t.game.HandAt(t.game.HumanOffset())
	if err != nil {
		return
	}
	cards := make([]string, 0, len(hand))
	for _, c := range hand {
		cards = append(cards, c.String())
	}
	pterm.Printfln("Your hand: %v", cards)
}

func (t *table) printTrick() {
	played := t.game.PlayedCards()
	parts := make([]string, 0, domain.NumSeats)
	for i, c := range played {
		if c == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", t.offsetName(i), c))
	}
	pterm.Printfln("On the table: %v", parts)
}

func (t *table) printGameResult(final domain.TeamScore) {
	if final.PlayerTeam > final.OtherTeam {
		pterm.Success.Printfln("You win the game %d to %d!", final.PlayerTeam, final.OtherTeam)
	} else {
		pterm.Error.Printfln("You lose the game %d to %d.", final.OtherTeam, final.PlayerTeam)
	}
}

// offsetName names the seat at a hand offset for the current deal.
func (t *table) offsetName(offset int) string {
	return t.seatName(domain.SeatFromHandOffset(t.game.Dealer(), offset))
}

func (t *table) seatName(seat int) string {
	if seat == domain.HumanSeat {
		return "you"
	}
	return t.bots[seat].Name
}

func suitByName(name string) (domain.Suit, error) {
	for _, s := range []domain.Suit{domain.Hearts, domain.Diamonds, domain.Spades, domain.Clubs} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}
