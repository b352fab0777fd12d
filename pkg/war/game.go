package war

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"time"
	"warsim/internal/rng"
	"warsim/pkg/deck"
)

// HandSize is the number of cards dealt to each player
const HandSize = deck.Size / 2

// Rounds is the number of rounds in a game
const Rounds = HandSize

// Game is a game of War
type Game struct {
	id      string
	deck    *deck.Deck
	players []*Player
	state   State
	rounds  int
	log     *GameLog
	logger  logrus.FieldLogger
}

// NewGame returns a new game with an unshuffled deck
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	return NewGameWithDeck(logger, options, deck.New())
}

// NewGameWithDeck returns a new game that deals from d
func NewGameWithDeck(logger logrus.FieldLogger, options Options, d *deck.Deck) (*Game, error) {
	if options.PlayerOne == "" || options.PlayerTwo == "" {
		return nil, ErrInvalidPlayerName
	}

	if options.PlayerOne == options.PlayerTwo {
		return nil, ErrDuplicatePlayerName
	}

	if d == nil {
		return nil, errors.New("deck cannot be nil")
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	players := []*Player{NewPlayer(options.PlayerOne), NewPlayer(options.PlayerTwo)}

	return &Game{
		id:      id,
		deck:    d,
		players: players,
		state:   StateUninitialized,
		logger:  logger.WithField("game", id),
		log: &GameLog{
			ID:        id,
			StartTime: time.Now(),
			Players:   []string{options.PlayerOne, options.PlayerTwo},
			Draws:     make([]*DrawRecord, 0, deck.Size),
			Rounds:    make([]*RoundResult, 0, Rounds),
		},
	}, nil
}

// ID returns the unique identifier of the game
func (g *Game) ID() string {
	return g.id
}

// State returns the current state
func (g *Game) State() State {
	return g.state
}

// Players returns player one and player two
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// RoundsPlayed returns the number of rounds played so far
func (g *Game) RoundsPlayed() int {
	return g.rounds
}

// CardsLeft returns the number of cards remaining in the deck
func (g *Game) CardsLeft() int {
	return g.deck.CardsLeft()
}

// Log returns the game log
func (g *Game) Log() *GameLog {
	return g.log
}

// Shuffle shuffles the deck before it is dealt
func (g *Game) Shuffle(gen rng.Generator) error {
	if g.state != StateUninitialized {
		return fmt.Errorf("%w: cannot shuffle while %s", ErrInvalidState, g.state)
	}

	if seeded, ok := gen.(interface{ Seed() int64 }); ok {
		g.log.Seed = seeded.Seed()
	}

	g.deck.Shuffle(gen)
	g.log.DeckHash = g.deck.HashCode()
	g.logger.WithField("hash", g.log.DeckHash).WithField("seed", g.log.Seed).Debug("shuffled deck")

	return nil
}

// Deal deals HandSize cards to each player, alternating between player one and player two
// A draw from an empty deck is recorded and dealing continues. In that case the
// result is marked incomplete and ErrIncompleteDeal is returned.
func (g *Game) Deal() (*DealResult, error) {
	if g.state != StateUninitialized {
		return nil, fmt.Errorf("%w: cannot deal while %s", ErrInvalidState, g.state)
	}

	if g.log.DeckHash == "" {
		g.log.DeckHash = g.deck.HashCode()
	}

	if want := HandSize * len(g.players); !g.deck.CanDraw(want) {
		g.logger.WithField("cardsLeft", g.deck.CardsLeft()).WithField("want", want).Warn("deck is short, dealing anyway")
	}

	result := &DealResult{
		Draws:    make([]*DrawRecord, 0, deck.Size),
		Complete: true,
	}

	for i := 0; i < HandSize; i++ {
		for _, p := range g.players {
			record := g.drawFor(p)
			if record.DeckEmpty {
				result.Complete = false
			}

			result.Draws = append(result.Draws, record)
		}
	}

	g.state = StateDealt

	g.log.Hands = make([]*PlayerSummary, len(g.players))
	for i, p := range g.players {
		g.log.Hands[i] = p.Describe()
	}

	if !result.Complete {
		g.logger.WithField("cardsLeft", g.deck.CardsLeft()).Warn("deck ran out while dealing")
		return result, ErrIncompleteDeal
	}

	return result, nil
}

func (g *Game) drawFor(p *Player) *DrawRecord {
	record := &DrawRecord{Player: p.Name()}

	card, err := p.DrawFrom(g.deck)
	if err != nil {
		g.logger.WithError(err).WithField("player", p.Name()).Debug("could not draw")
		record.DeckEmpty = true
	} else {
		g.logger.WithField("player", p.Name()).WithField("card", card.String()).Trace("drew card")
		record.Card = card
	}

	g.log.addDraw(record)
	return record
}

// DetermineWinner returns the final scores and which player has the higher score
func (g *Game) DetermineWinner() *Result {
	scores := make([]int, len(g.players))
	names := make([]string, len(g.players))
	for i, p := range g.players {
		scores[i] = p.Score()
		names[i] = p.Name()
	}

	outcome := compare(scores[0], scores[1])
	return &Result{
		Players: names,
		Scores:  scores,
		Outcome: outcome,
		Winner:  g.winnerName(outcome),
	}
}

func (g *Game) winnerName(outcome Outcome) string {
	switch outcome {
	case OutcomePlayerOne:
		return g.players[0].Name()
	case OutcomePlayerTwo:
		return g.players[1].Name()
	}

	return ""
}

// Run plays an entire game: shuffle, deal, play every round, then determine the winner
func (g *Game) Run(gen rng.Generator) (*GameLog, error) {
	if err := g.Shuffle(gen); err != nil {
		return g.log, err
	}

	if _, err := g.Deal(); err != nil {
		return g.log, err
	}

	for i := 0; i < Rounds; i++ {
		if _, err := g.PlayRound(); err != nil {
			return g.log, fmt.Errorf("round %d: %w", i+1, err)
		}
	}

	g.log.Result = g.DetermineWinner()
	g.logger.WithFields(logrus.Fields{
		"scores":  g.log.Result.Scores,
		"outcome": g.log.Result.Outcome.String(),
	}).Debug("game over")

	return g.log, nil
}
