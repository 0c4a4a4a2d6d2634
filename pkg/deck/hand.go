package deck

import (
	"fmt"
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// RemoveAt removes and returns the card at index i
func (h *Hand) RemoveAt(i int) Card {
	card := (*h)[i]
	newHand := make(Hand, 0, len(*h)-1)
	newHand = append(newHand, (*h)[:i]...)
	newHand = append(newHand, (*h)[i+1:]...)

	*h = newHand
	return card
}

// IndexOf returns the index of the card or -1 if it isn't in the hand
func (h Hand) IndexOf(card Card) int {
	for i, c := range h {
		if c == card {
			return i
		}
	}

	return -1
}

// Filter returns the cards for which keep returns true
func (h Hand) Filter(keep func(Card) bool) Hand {
	filtered := make(Hand, 0, len(h))
	for _, c := range h {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

// Numbered renders the hand as 1)2♦ 2)3♥ ...
func (h Hand) Numbered() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = fmt.Sprintf("%d)%s", i+1, c)
	}

	return strings.Join(parts, " ")
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
