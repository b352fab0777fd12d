package war

import (
	"time"
	"warsim/pkg/deck"
)

// GameLog keeps track of everything that happened in a game
type GameLog struct {
	ID        string           `json:"id"`
	StartTime time.Time        `json:"startTime"`
	Players   []string         `json:"players"`
	Seed      int64            `json:"seed,omitempty"`
	DeckHash  string           `json:"deckHash"`
	Draws     []*DrawRecord    `json:"draws"`
	Hands     []*PlayerSummary `json:"hands"`
	Rounds    []*RoundResult   `json:"rounds"`
	Result    *Result          `json:"result"`
}

// DrawRecord is a single card drawn from the deck while dealing
// If DeckEmpty is true, the player attempted to draw and Card is nil.
type DrawRecord struct {
	Player    string     `json:"player"`
	Card      *deck.Card `json:"card"`
	DeckEmpty bool       `json:"deckEmpty,omitempty"`
}

// DealResult contains every draw made while dealing
type DealResult struct {
	Draws    []*DrawRecord
	Complete bool
}

// RoundResult is the outcome of a single round
// Cards holds player one's card followed by player two's card.
type RoundResult struct {
	Round   int          `json:"round"`
	Players []string     `json:"players"`
	Cards   []*deck.Card `json:"cards"`
	Outcome Outcome      `json:"outcome"`
	Winner  string       `json:"winner,omitempty"`
}

// IsTie returns true if neither card was higher
func (r *RoundResult) IsTie() bool {
	return r.Outcome == OutcomeTie
}

// Result contains the final scores of a game
type Result struct {
	Players []string `json:"players"`
	Scores  []int    `json:"scores"`
	Outcome Outcome  `json:"outcome"`
	Winner  string   `json:"winner,omitempty"`
}

// IsTie returns true if both players finished with the same score
func (r *Result) IsTie() bool {
	return r.Outcome == OutcomeTie
}

func (g *GameLog) addDraw(record *DrawRecord) {
	g.Draws = append(g.Draws, record)
}

func (g *GameLog) addRound(result *RoundResult) {
	g.Rounds = append(g.Rounds, result)
}
