package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"warsim/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrDuplicateCard is an error when a deck would contain the same card twice
var ErrDuplicateCard = errors.New("duplicate card in deck")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
type Deck struct {
	cards []*Card
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]*Card, 0, Size)
	for rank := MinRank; rank <= MaxRank; rank++ {
		for _, suit := range Suits {
			cards = append(cards, &Card{
				rank: rank,
				suit: suit,
			})
		}
	}

	return &Deck{cards: cards}
}

// NewFromCards returns a deck with the cards in the order specified
// The first card in the slice is the first card drawn. Every card must be valid and unique.
func NewFromCards(cards []*Card) (*Deck, error) {
	if len(cards) > Size {
		return nil, fmt.Errorf("%w: %d cards", ErrDuplicateCard, len(cards))
	}

	seen := make(map[Card]bool, len(cards))
	for i, card := range cards {
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}

		if seen[*card] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card.Label())
		}

		seen[*card] = true
	}

	cp := make([]*Card, len(cards))
	copy(cp, cards)

	return &Deck{cards: cp}, nil
}

// Shuffle will shuffle the remaining cards in place
// If gen is nil, a cryptographically secure generator is used.
func (d *Deck) Shuffle(gen rng.Generator) {
	if gen == nil {
		gen = rng.Crypto{}
	}

	for j := len(d.cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// Cards returns a shallow copy of the remaining cards, top card first
func (d *Deck) Cards() []*Card {
	return append([]*Card{}, d.cards...)
}
