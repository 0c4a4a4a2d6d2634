package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"indigo/internal/rng"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards in index order.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]Card, Size)
	for i := range cards {
		cards[i] = FromIndex(i)
	}

	return &Deck{Cards: cards}
}

// Shuffle performs a Fisher-Yates shuffle of the remaining cards
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw removes the card at the end of the deck
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
