package war

import (
	"fmt"
	"warsim/pkg/deck"
)

// PlayRound has each player play their first card
// The player with the higher card scores a point. Equal cards are a tie and
// neither score changes.
func (g *Game) PlayRound() (*RoundResult, error) {
	switch g.state {
	case StateDealt, StatePlaying:
	case StateFinished:
		return nil, ErrGameIsOver
	default:
		return nil, fmt.Errorf("%w: cannot play a round while %s", ErrInvalidState, g.state)
	}

	// both hands are checked first so a failure does not discard a card
	for _, p := range g.players {
		if p.HandSize() == 0 {
			return nil, fmt.Errorf("%s: %w", p.Name(), ErrEmptyHand)
		}
	}

	cards := make([]*deck.Card, len(g.players))
	names := make([]string, len(g.players))
	for i, p := range g.players {
		card, err := p.Play()
		if err != nil {
			return nil, err
		}

		cards[i] = card
		names[i] = p.Name()
	}

	g.rounds++
	g.state = StatePlaying

	outcome := compare(cards[0].Value(), cards[1].Value())
	switch outcome {
	case OutcomePlayerOne:
		g.players[0].IncrementScore()
	case OutcomePlayerTwo:
		g.players[1].IncrementScore()
	}

	result := &RoundResult{
		Round:   g.rounds,
		Players: names,
		Cards:   cards,
		Outcome: outcome,
		Winner:  g.winnerName(outcome),
	}

	g.log.addRound(result)
	g.logger.WithField("round", g.rounds).
		WithField("cards", deck.CardsToString(cards)).
		WithField("outcome", outcome.String()).
		Debug("played round")

	if g.rounds >= Rounds {
		g.state = StateFinished
	}

	return result, nil
}
