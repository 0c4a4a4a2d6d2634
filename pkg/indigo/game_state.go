package indigo

import "indigo/pkg/deck"

// GameState is a point-in-time view of the match
type GameState struct {
	MatchID     string             `json:"matchId"`
	State       State              `json:"state"`
	CardsInDeck int                `json:"cardsInDeck"`
	Table       []deck.Card        `json:"table"`
	CurrentTurn Role               `json:"currentTurn"`
	Players     []*GameStatePlayer `json:"players"`
}

// GameStatePlayer is the state of an individual player
type GameStatePlayer struct {
	Role        Role `json:"role"`
	CardsInHand int  `json:"cardsInHand"`
	CardsWon    int  `json:"cardsWon"`
	Score       int  `json:"score"`
}

// GetGameState returns the current state of the match
func (m *Match) GetGameState() *GameState {
	players := make([]*GameStatePlayer, 0, 2)
	for _, p := range []*Player{m.human, m.computer} {
		players = append(players, &GameStatePlayer{
			Role:        p.Role,
			CardsInHand: len(p.hand),
			CardsWon:    p.cardsWon,
			Score:       p.score,
		})
	}

	return &GameState{
		MatchID:     m.ID,
		State:       m.state,
		CardsInDeck: m.deck.CardsLeft(),
		Table:       m.table.Cards(),
		CurrentTurn: m.current.Role,
		Players:     players,
	}
}

// CardsAccounted returns the cards in the deck, in hands, on the table and already won
// It is always 52 for a consistent match
func (g *GameState) CardsAccounted() int {
	n := g.CardsInDeck + len(g.Table)
	for _, p := range g.Players {
		n += p.CardsInHand + p.CardsWon
	}

	return n
}
