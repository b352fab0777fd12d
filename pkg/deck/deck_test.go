package deck

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"warsim/internal/rng"
)

// fixedGenerator always returns the same offset from the top of the range
type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	if int(f) < 0 {
		return n - 1
	}

	return int(f)
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())

	cards := d.Cards()
	a.Equal("2c", CardToString(cards[0]))
	a.Equal("2d", CardToString(cards[1]))
	a.Equal("2h", CardToString(cards[2]))
	a.Equal("2s", CardToString(cards[3]))
	a.Equal("3c", CardToString(cards[4]))
	a.Equal("14s", CardToString(cards[51]))

	seen := make(map[string]int)
	for _, card := range cards {
		seen[CardToString(card)]++
	}

	a.Len(seen, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= 14; rank++ {
			card, err := NewCard(rank, suit)
			a.NoError(err)
			a.Equal(1, seen[CardToString(card)], card.Label())
		}
	}

	a.Equal(New().HashCode(), d.HashCode())
}

func TestNewFromCards(t *testing.T) {
	a := assert.New(t)

	d, err := NewFromCards(CardsFromString("14s,2c,3c"))
	a.NoError(err)
	a.Equal("14s,2c,3c", CardsToString(d.Cards()))

	d, err = NewFromCards(CardsFromString("14s,2c,14s"))
	a.Nil(d)
	a.True(errors.Is(err, ErrDuplicateCard))

	d, err = NewFromCards(nil)
	a.NoError(err)
	a.Equal(0, d.CardsLeft())
}

func TestNewFromCards_invalidCards(t *testing.T) {
	a := assert.New(t)

	d, err := NewFromCards([]*Card{{}, CardFromString("2c")})
	a.Nil(d)
	a.True(errors.Is(err, ErrInvalidRank))

	d, err = NewFromCards([]*Card{CardFromString("2c"), {rank: 9}})
	a.Nil(d)
	a.True(errors.Is(err, ErrInvalidSuit))

	d, err = NewFromCards([]*Card{CardFromString("2c"), nil})
	a.Nil(d)
	a.True(errors.Is(err, ErrNilCard))
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}

		if left := deck.CardsLeft(); left != 51-i {
			t.Errorf("expected %d cards left, got %d", 51-i, left)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	for i := 0; i < 3; i++ {
		card, err := deck.Draw()
		if card != nil {
			t.Errorf("expected card to be nil, got %#v", card)
		}

		if err != ErrEndOfDeck {
			t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
		}

		assert.Equal(t, 0, deck.CardsLeft())
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d, _ := NewFromCards(CardsFromString("2c,3c,4c,5c"))
	d.Shuffle(fixedGenerator(0))
	a.Equal("3c,4c,5c,2c", CardsToString(d.Cards()))

	d, _ = NewFromCards(CardsFromString("2c,3c,4c,5c"))
	d.Shuffle(fixedGenerator(-1))
	a.Equal("2c,3c,4c,5c", CardsToString(d.Cards()))

	d1 := New()
	d1.Shuffle(rng.NewSeeded(1))
	d2 := New()
	d2.Shuffle(rng.NewSeeded(1))
	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(New().HashCode(), d1.HashCode())

	d3 := New()
	d3.Shuffle(nil)
	a.Equal(52, d3.CardsLeft())
}

func TestDeck_ShuffleIsPermutation(t *testing.T) {
	a := assert.New(t)
	gen := rng.NewSeeded(99)

	for trial := 0; trial < 50; trial++ {
		d := New()
		d.Shuffle(gen)

		cards := d.Cards()
		a.Len(cards, 52)

		seen := make(map[string]bool)
		for _, card := range cards {
			key := CardToString(card)
			a.False(seen[key], "duplicate %s", key)
			seen[key] = true
		}

		a.Len(seen, 52)
	}

	// partially drawn decks shuffle the remaining cards only
	d := New()
	_, _ = d.Draw()
	_, _ = d.Draw()
	d.Shuffle(gen)
	a.Equal(50, d.CardsLeft())
	for _, card := range d.Cards() {
		a.NotEqual("2c", CardToString(card))
		a.NotEqual("2d", CardToString(card))
	}
}

func TestDeck_ShuffleUniformity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	const trials = 26000
	const expected = float64(trials) / 52

	gen := rng.NewSeeded(2024)
	tracked := []string{"2c", "8h", "14s"}
	positions := make(map[string][]int, len(tracked))
	for _, key := range tracked {
		positions[key] = make([]int, 52)
	}

	for trial := 0; trial < trials; trial++ {
		d := New()
		d.Shuffle(gen)
		for i, card := range d.Cards() {
			if counts, ok := positions[CardToString(card)]; ok {
				counts[i]++
			}
		}
	}

	// 51 degrees of freedom; p < 0.0001 is roughly 95
	for _, key := range tracked {
		chiSquare := 0.0
		for _, observed := range positions[key] {
			diff := float64(observed) - expected
			chiSquare += diff * diff / expected
		}

		assert.Less(t, chiSquare, 100.0, "position distribution for %s is not uniform", key)
	}
}
