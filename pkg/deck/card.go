package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidRank is an error when a card is created with a rank outside of 2–14
var ErrInvalidRank = errors.New("rank must be between 2 and 14")

// ErrInvalidSuit is an error when a card is created with an unknown suit
var ErrInvalidSuit = errors.New("unknown suit")

// ErrNilCard is an error when a nil card is used where a card is required
var ErrNilCard = errors.New("card cannot be nil")

// Suit represents a card suit
type Suit int

// suit constants, in deck order
const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// Suits contains every suit in declaration order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the suit name (i.e., "Clubs")
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}

	return fmt.Sprintf("Suit(%d)", int(s))
}

// IsValid returns true if the suit is one of the four suits
func (s Suit) IsValid() bool {
	return s >= Clubs && s <= Spades
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// MarshalText encodes the suit as a lowercase name
func (s Suit) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSuit
	}

	return []byte(strings.ToLower(s.String())), nil
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14

	MinRank = 2
	MaxRank = Ace
)

// Card is an individual playing card
// A card cannot be changed once it's created.
type Card struct {
	rank int
	suit Suit
}

// NewCard returns a new card
func NewCard(rank int, suit Suit) (*Card, error) {
	if err := validate(rank, suit); err != nil {
		return nil, err
	}

	return &Card{rank: rank, suit: suit}, nil
}

// Validate returns an error if the card is nil or was not created by NewCard
func (c *Card) Validate() error {
	if c == nil {
		return ErrNilCard
	}

	return validate(c.rank, c.suit)
}

func validate(rank int, suit Suit) error {
	if rank < MinRank || rank > MaxRank {
		return fmt.Errorf("%w: got %d", ErrInvalidRank, rank)
	}

	if !suit.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}

	return nil
}

// Rank returns the rank of the card
func (c *Card) Rank() int {
	return c.rank
}

// Suit returns the suit of the card
func (c *Card) Suit() Suit {
	return c.suit
}

// Value returns the value used when comparing two cards
func (c *Card) Value() int {
	return c.rank
}

// RankName returns the display name of the rank
func (c *Card) RankName() string {
	switch c.rank {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}

	return strconv.Itoa(c.rank)
}

// Label returns the long form of the card (i.e., "Ace of Spades")
func (c *Card) Label() string {
	return fmt.Sprintf("%s of %s", c.RankName(), c.suit)
}

func (c *Card) String() string {
	var rank string
	switch c.rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.rank)
	}

	var suit string
	switch c.suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

type cardJSON struct {
	Rank  int    `json:"rank"`
	Suit  Suit   `json:"suit"`
	Label string `json:"label"`
}

// MarshalJSON encodes the card with its label
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Rank:  c.rank,
		Suit:  c.suit,
		Label: c.Label(),
	})
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	card, err := NewCard(rank, suit)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
