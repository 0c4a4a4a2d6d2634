package indigo

import "indigo/pkg/deck"

// Listener is told about everything that happens in a match
type Listener interface {
	// TableDealt is called once the initial cards are on the table
	TableDealt(cards []deck.Card)
	// TurnStarted is called before the player is asked for a card
	TurnStarted(p *Player, table []deck.Card)
	CardPlayed(p *Player, card deck.Card)
	// TrickWon is called after the winner has been credited and the table cleared
	TrickWon(winner, human, computer *Player)
	MatchFinished(result *Result)
}

// NopListener ignores every event
type NopListener struct{}

// TableDealt does nothing
func (NopListener) TableDealt([]deck.Card) {}

// TurnStarted does nothing
func (NopListener) TurnStarted(*Player, []deck.Card) {}

// CardPlayed does nothing
func (NopListener) CardPlayed(*Player, deck.Card) {}

// TrickWon does nothing
func (NopListener) TrickWon(_, _, _ *Player) {}

// MatchFinished does nothing
func (NopListener) MatchFinished(*Result) {}
