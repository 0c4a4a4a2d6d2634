package indigo

import "indigo/pkg/deck"

// Table is the face-up pile of played cards
type Table struct {
	cards []deck.Card
}

// Push adds a card on top of the pile
func (t *Table) Push(card deck.Card) {
	t.cards = append(t.cards, card)
}

// Top returns the last card played
func (t *Table) Top() (deck.Card, bool) {
	if len(t.cards) == 0 {
		return deck.Card{}, false
	}

	return t.cards[len(t.cards)-1], true
}

// topCard returns a pointer to a copy of the top card, or nil if the table is empty
func (t *Table) topCard() *deck.Card {
	card, ok := t.Top()
	if !ok {
		return nil
	}

	return &card
}

// Len returns the number of cards on the table
func (t *Table) Len() int {
	return len(t.cards)
}

// Cards returns a copy of the cards on the table, bottom first
func (t *Table) Cards() []deck.Card {
	return append([]deck.Card{}, t.cards...)
}

// IsTrick returns true if the two most recent cards share a rank or a suit
func (t *Table) IsTrick() bool {
	n := len(t.cards)
	if n < 2 {
		return false
	}

	return t.cards[n-1].IsCandidateTo(t.cards[n-2])
}

// ScoringCards returns how many cards on the table are worth a point
func (t *Table) ScoringCards() int {
	return deck.CountScoring(t.cards)
}

// Clear discards every card on the table and returns how many there were
func (t *Table) Clear() int {
	n := len(t.cards)
	t.cards = nil

	return n
}
