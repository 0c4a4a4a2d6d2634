package indigo

import "indigo/pkg/deck"

// bonusPoints go to the player who took the most cards
const bonusPoints = 3

// Tally is a player's running totals
type Tally struct {
	Score int `json:"score"`
	Cards int `json:"cards"`
}

// Result contain the results from a completed match
type Result struct {
	MatchID     string `json:"matchId"`
	FirstPlayer Role   `json:"firstPlayer"`
	// LastTrickWinner is empty if nobody won a trick
	LastTrickWinner Role `json:"lastTrickWinner"`
	// Remaining are the cards left on the table when the deck ran out
	Remaining   []deck.Card `json:"remaining"`
	RemainingTo Role        `json:"remainingTo"`
	BonusTo     Role        `json:"bonusTo"`
	Human       Tally       `json:"human"`
	Computer    Tally       `json:"computer"`
}

// Winner returns the player with the higher score, or an empty role on a draw
func (r *Result) Winner() Role {
	switch {
	case r.Human.Score > r.Computer.Score:
		return RoleHuman
	case r.Computer.Score > r.Human.Score:
		return RoleComputer
	}

	return ""
}

// bonusWinner returns who gets the bonus for taking the most cards
// On a tie it goes to whoever played first
func bonusWinner(human, computer, first *Player) *Player {
	switch {
	case human.cardsWon > computer.cardsWon:
		return human
	case computer.cardsWon > human.cardsWon:
		return computer
	}

	return first
}
