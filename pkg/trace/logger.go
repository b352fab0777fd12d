package trace

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"warsim/pkg/war"
)

// Logger renders the trace as structured log entries
type Logger struct {
	logger logrus.FieldLogger
}

// NewLogger returns a renderer that writes to logger
func NewLogger(logger logrus.FieldLogger) *Logger {
	return &Logger{logger: logger}
}

// Render logs every draw, round, and the final result at info level
func (l *Logger) Render(log *war.GameLog) error {
	if log == nil {
		return ErrNoLog
	}

	logger := l.logger.WithField("game", log.ID)
	logger.WithField("deckHash", log.DeckHash).WithField("seed", log.Seed).Info("game started")

	for _, draw := range log.Draws {
		entry := logger.WithField("player", draw.Player)
		if draw.DeckEmpty {
			entry.Warn("attempted to draw, but the deck is empty")
			continue
		}

		entry.WithField("card", draw.Card.Label()).Info("drew card")
	}

	for _, hand := range log.Hands {
		logger.WithFields(logrus.Fields{
			"player": hand.Name,
			"hand":   hand.Hand,
			"score":  hand.Score,
		}).Debug("hand")
	}

	for _, round := range log.Rounds {
		fields := logrus.Fields{
			"round":   round.Round,
			"outcome": round.Outcome.String(),
		}

		for i, card := range round.Cards {
			fields[fmt.Sprintf("player%d", i+1)] = round.Players[i]
			fields[fmt.Sprintf("card%d", i+1)] = card.Label()
		}

		if !round.IsTie() {
			fields["winner"] = round.Winner
		}

		logger.WithFields(fields).Info(roundVerdict(round))
	}

	if result := log.Result; result != nil {
		logger.WithFields(logrus.Fields{
			"scores":  result.Scores,
			"outcome": result.Outcome.String(),
			"winner":  result.Winner,
		}).Info(finalScore(result))
		logger.Info(gameVerdict(result))
	}

	return nil
}
