package deck

// Hand represents a collection of cards
// The first card is the next card to be played.
type Hand []*Card

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h)
}

// AddCard adds a card to the back of the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// TakeFirst removes and returns the first card in the hand
// Returns nil if the hand is empty
func (h *Hand) TakeFirst() *Card {
	if len(*h) == 0 {
		return nil
	}

	card := (*h)[0]
	(*h)[0] = nil
	*h = (*h)[1:]

	return card
}

// Labels returns the label of each card in order
func (h Hand) Labels() []string {
	labels := make([]string, len(h))
	for i, card := range h {
		labels[i] = card.Label()
	}

	return labels
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
