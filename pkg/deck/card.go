package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
// The order of the constants is the sort order used when grouping a hand by suit
type Suit int

// suit constants
const (
	Diamonds Suit = iota
	Hearts
	Spades
	Clubs
)

var suitSymbols = []string{"♦", "♥", "♠", "♣"}

func (s Suit) String() string {
	if s < Diamonds || s > Clubs {
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}

	return suitSymbols[s]
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// ranksPerSuit is the number of distinct ranks in a suit
const ranksPerSuit = 13

// scoringRank is the lowest rank that is worth a point when won
const scoringRank = 10

var rankNames = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// FromIndex returns the card identified by index, which must be in [0,51]
// The rank is index mod 13 (2 through Ace) and the suit is index div 13
func FromIndex(index int) Card {
	if index < 0 || index >= Size {
		panic(fmt.Sprintf("card index out of range: %d", index))
	}

	return Card{
		Rank: index%ranksPerSuit + 2,
		Suit: Suit(index / ranksPerSuit),
	}
}

// Index is the inverse of FromIndex
func (c Card) Index() int {
	return int(c.Suit)*ranksPerSuit + c.Rank - 2
}

func (c Card) String() string {
	return rankNames[c.Rank-2] + c.Suit.String()
}

// IsCandidateTo returns true if the cards share a rank or a suit
func (c Card) IsCandidateTo(other Card) bool {
	return c.Suit == other.Suit || c.Rank == other.Rank
}

// IsScoring returns true for a ten, face card or ace
func (c Card) IsScoring() bool {
	return c.Rank >= scoringRank
}

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is one of 2-10,J,Q,K,A and suit is one of ♦♥♠♣
func CardFromString(s string) Card {
	for si, symbol := range suitSymbols {
		if !strings.HasSuffix(s, symbol) {
			continue
		}

		rank := strings.ToUpper(strings.TrimSuffix(s, symbol))
		for ri, name := range rankNames {
			if name == rank {
				return Card{Rank: ri + 2, Suit: Suit(si)}
			}
		}
	}

	panic(fmt.Sprintf("could not parse card: %s", s))
}

// CardsFromString will returns a slice of cards from a space separated list
func CardsFromString(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, len(fields))
	for i, card := range fields {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2♦ 3♥ 4♠
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// CountScoring returns how many of the cards are scoring cards
func CountScoring(cards []Card) int {
	n := 0
	for _, card := range cards {
		if card.IsScoring() {
			n++
		}
	}

	return n
}
