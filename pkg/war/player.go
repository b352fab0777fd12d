package war

import (
	"warsim/pkg/deck"
)

// Player is an individual in the game
type Player struct {
	name  string
	hand  deck.Hand
	score int
}

// PlayerSummary describes a player's hand and score
type PlayerSummary struct {
	Name  string   `json:"name"`
	Hand  []string `json:"hand"`
	Score int      `json:"score"`
}

// NewPlayer returns a new player
func NewPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: make(deck.Hand, 0, HandSize),
	}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Score returns the number of rounds the player has won
func (p *Player) Score() int {
	return p.score
}

// IncrementScore marks the player as winning a round
func (p *Player) IncrementScore() {
	p.score++
}

// HandSize returns the number of cards left in the player's hand
func (p *Player) HandSize() int {
	return p.hand.Len()
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// DrawFrom draws the top card of d into the back of the player's hand
// If the deck is empty, deck.ErrEndOfDeck is returned and the hand is unchanged.
func (p *Player) DrawFrom(d *deck.Deck) (*deck.Card, error) {
	card, err := d.Draw()
	if err != nil {
		return nil, err
	}

	p.hand.AddCard(card)
	return card, nil
}

// Play removes and returns the first card in the player's hand
func (p *Player) Play() (*deck.Card, error) {
	card := p.hand.TakeFirst()
	if card == nil {
		return nil, ErrEmptyHand
	}

	return card, nil
}

// Describe returns a summary of the player's hand and score
func (p *Player) Describe() *PlayerSummary {
	return &PlayerSummary{
		Name:  p.name,
		Hand:  p.hand.Labels(),
		Score: p.score,
	}
}
