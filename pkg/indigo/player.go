package indigo

import (
	"indigo/pkg/deck"
)

// Role identifies which seat a player occupies
type Role string

// roles
const (
	RoleHuman    Role = "Player"
	RoleComputer Role = "Computer"
)

// Player is an individual in the match
type Player struct {
	Role     Role
	strategy PlayStrategy
	hand     deck.Hand
	cardsWon int
	score    int
}

// NewPlayer returns a new player
func NewPlayer(role Role, strategy PlayStrategy) *Player {
	return &Player{
		Role:     role,
		strategy: strategy,
		hand:     make(deck.Hand, 0, handSize),
	}
}

// Hand returns a clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// CardsWon returns how many cards the player has taken
func (p *Player) CardsWon() int {
	return p.cardsWon
}

// Score returns the player's points
func (p *Player) Score() int {
	return p.score
}

// AddCard adds a card to the players hand
func (p *Player) AddCard(card deck.Card) {
	p.hand.AddCard(card)
}

// PlayCard asks the player's strategy for a card and removes it from the hand
// top is nil if the table is empty
func (p *Player) PlayCard(top *deck.Card) (deck.Card, error) {
	if len(p.hand) == 0 {
		return deck.Card{}, ErrEmptyHand
	}

	i, err := p.strategy.ChooseCard(p.hand.Clone(), top)
	if err != nil {
		return deck.Card{}, err
	}

	if i < 0 || i >= len(p.hand) {
		return deck.Card{}, ErrInvalidChoice
	}

	return p.hand.RemoveAt(i), nil
}

// wonCards credits the player with cards taken from the table
func (p *Player) wonCards(count, points int) {
	p.cardsWon += count
	p.score += points
}

func (p *Player) tally() Tally {
	return Tally{
		Score: p.score,
		Cards: p.cardsWon,
	}
}
