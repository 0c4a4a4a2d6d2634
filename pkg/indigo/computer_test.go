package indigo

import (
	"github.com/stretchr/testify/assert"
	"indigo/pkg/deck"
	"testing"
)

func chooseCard(t *testing.T, pick int, hand, top string) string {
	t.Helper()

	var topCard *deck.Card
	if top != "" {
		c := deck.CardFromString(top)
		topCard = &c
	}

	h := deck.Hand(deck.CardsFromString(hand))
	i, err := NewComputerStrategy(fixedGenerator(pick)).ChooseCard(h, topCard)
	assert.NoError(t, err)

	return h[i].String()
}

func TestComputerStrategy_singleCard(t *testing.T) {
	assert.Equal(t, "A♠", chooseCard(t, 0, "A♠", "2♦"))
	assert.Equal(t, "A♠", chooseCard(t, 3, "A♠", ""))
}

func TestComputerStrategy_noCandidates(t *testing.T) {
	a := assert.New(t)

	// empty table, rank 3 is the only group
	a.Equal("3♦", chooseCard(t, 0, "3♦ 3♥ 9♠", ""))
	a.Equal("3♥", chooseCard(t, 1, "3♦ 3♥ 9♠", ""))

	// hearts sort before spades
	a.Equal("9♥", chooseCard(t, 0, "5♠ 9♥ 2♥ K♠ 4♣", ""))
	a.Equal("2♥", chooseCard(t, 1, "5♠ 9♥ 2♥ K♠ 4♣", ""))

	// suit groups win over rank groups
	a.Equal("K♣", chooseCard(t, 0, "5♠ 5♥ K♣ 2♣", ""))

	// nothing matches the seven of clubs
	a.Equal("2♦", chooseCard(t, 0, "2♦ 4♦ 9♠", "7♣"))
	a.Equal("4♦", chooseCard(t, 1, "2♦ 4♦ 9♠", "7♣"))

	// no groups at all
	a.Equal("9♠", chooseCard(t, 2, "2♦ 4♥ 9♠", ""))
	a.Equal("2♦", chooseCard(t, 3, "2♦ 4♥ 9♠", ""))
}

func TestComputerStrategy_candidates(t *testing.T) {
	a := assert.New(t)

	// the five of clubs is the only candidate
	a.Equal("5♣", chooseCard(t, 0, "2♦ 2♥ 5♣", "7♣"))
	a.Equal("5♣", chooseCard(t, 2, "2♦ 2♥ 5♣", "7♣"))

	// two clubs beat the seven of diamonds
	a.Equal("2♣", chooseCard(t, 0, "2♣ 9♣ 7♦ K♥", "7♣"))
	a.Equal("9♣", chooseCard(t, 1, "2♣ 9♣ 7♦ K♥", "7♣"))

	// one club, two sevens
	a.Equal("7♦", chooseCard(t, 0, "7♦ 7♥ 2♣ K♠", "7♣"))
	a.Equal("7♥", chooseCard(t, 1, "7♦ 7♥ 2♣ K♠", "7♣"))

	// one club, one seven
	a.Equal("7♦", chooseCard(t, 0, "7♦ 2♣ K♠ 3♥", "7♣"))
	a.Equal("2♣", chooseCard(t, 1, "7♦ 2♣ K♠ 3♥", "7♣"))
}

func TestComputerStrategy_emptyHand(t *testing.T) {
	_, err := NewComputerStrategy(fixedGenerator(0)).ChooseCard(deck.Hand{}, nil)
	assert.Equal(t, ErrEmptyHand, err)
}
