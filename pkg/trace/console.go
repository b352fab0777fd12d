package trace

import (
	"fmt"
	"github.com/pterm/pterm"
	"io"
	"warsim/pkg/deck"
	"warsim/pkg/war"
)

// Console renders a human-readable trace
type Console struct {
	w         io.Writer
	ShowHands bool
}

// NewConsole returns a console renderer that writes to w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Render writes every draw, round, and the final result
func (c *Console) Render(log *war.GameLog) error {
	if log == nil {
		return ErrNoLog
	}

	var err error
	printf := func(format string, a ...interface{}) {
		if err == nil {
			_, err = fmt.Fprint(c.w, pterm.Sprintfln(format, a...))
		}
	}

	if log.Seed != 0 {
		printf("%s", pterm.Info.Sprintf("Deck %s (seed %d)", log.DeckHash, log.Seed))
	} else {
		printf("%s", pterm.Info.Sprintf("Deck %s", log.DeckHash))
	}

	for _, draw := range log.Draws {
		if draw.DeckEmpty {
			printf("%s", pterm.Warning.Sprintf("%s attempted to draw, but the deck is empty.", draw.Player))
			continue
		}

		printf("%s drew %s.", draw.Player, cardLabel(draw.Card))
	}

	if c.ShowHands {
		for _, hand := range log.Hands {
			printf("%s", pterm.LightCyan(fmt.Sprintf("%s's hand:", hand.Name)))
			for _, label := range hand.Hand {
				printf("  %s", label)
			}

			printf("%s's score: %d", hand.Name, hand.Score)
		}
	}

	for _, round := range log.Rounds {
		for i, card := range round.Cards {
			printf("%s plays: %s", round.Players[i], cardLabel(card))
		}

		if round.IsTie() {
			printf("%s", pterm.LightYellow(roundVerdict(round)))
		} else {
			printf("%s", pterm.LightGreen(roundVerdict(round)))
		}
	}

	if log.Result != nil {
		printf("%s", finalScore(log.Result))
		printf("%s", pterm.Success.Sprint(gameVerdict(log.Result)))
	}

	return err
}

func cardLabel(card *deck.Card) string {
	if card.Suit().IsRed() {
		return pterm.LightRed(card.Label())
	}

	return card.Label()
}
