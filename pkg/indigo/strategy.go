package indigo

import (
	"fmt"

	"indigo/pkg/deck"
)

// PlayStrategy decides which card a player puts on the table
type PlayStrategy interface {
	// ChooseCard returns the index in hand of the card to play
	// top is nil if the table is empty
	ChooseCard(hand deck.Hand, top *deck.Card) (int, error)
}

// InputSource provides choices made by a person
type InputSource interface {
	// Choose returns a number in [min,max]
	// Invalid answers are retried by the source. ErrQuit is returned if the person wants to leave
	Choose(prompt string, min, max int) (int, error)
}

// HumanStrategy lets a person pick the card through an InputSource
type HumanStrategy struct {
	input InputSource
}

// NewHumanStrategy returns a strategy that reads choices from input
func NewHumanStrategy(input InputSource) *HumanStrategy {
	return &HumanStrategy{input: input}
}

// ChooseCard asks for a 1-based position in the hand
func (h *HumanStrategy) ChooseCard(hand deck.Hand, _ *deck.Card) (int, error) {
	choice, err := h.input.Choose(fmt.Sprintf("Choose a card to play (1-%d):", len(hand)), 1, len(hand))
	if err != nil {
		return 0, err
	}

	return choice - 1, nil
}
