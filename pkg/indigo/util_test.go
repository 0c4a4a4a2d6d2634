package indigo

import (
	"fmt"
	"indigo/pkg/deck"
)

// fixedGenerator always picks the same position, wrapping on short sets
type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	return int(f) % n
}

// scriptedInput answers with the queued choices and quits once they run out
type scriptedInput struct {
	choices []int
	prompts []string
}

func (s *scriptedInput) Choose(prompt string, min, max int) (int, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.choices) == 0 {
		return 0, ErrQuit
	}

	choice := s.choices[0]
	s.choices = s.choices[1:]
	if choice < min || choice > max {
		return 0, fmt.Errorf("scripted choice %d outside of %d-%d", choice, min, max)
	}

	return choice, nil
}

type strategyFunc func(hand deck.Hand, top *deck.Card) (int, error)

func (f strategyFunc) ChooseCard(hand deck.Hand, top *deck.Card) (int, error) {
	return f(hand, top)
}

// recordingListener keeps a line per event
type recordingListener struct {
	events []string
}

func (r *recordingListener) TableDealt(cards []deck.Card) {
	r.events = append(r.events, "table "+deck.CardsToString(cards))
}

func (r *recordingListener) TurnStarted(p *Player, table []deck.Card) {
	r.events = append(r.events, fmt.Sprintf("turn %s %d", p.Role, len(table)))
}

func (r *recordingListener) CardPlayed(p *Player, card deck.Card) {
	r.events = append(r.events, fmt.Sprintf("play %s %s", p.Role, card))
}

func (r *recordingListener) TrickWon(winner, human, computer *Player) {
	r.events = append(r.events, fmt.Sprintf("won %s %d-%d", winner.Role, human.CardsWon(), computer.CardsWon()))
}

func (r *recordingListener) MatchFinished(result *Result) {
	r.events = append(r.events, fmt.Sprintf("finished %d-%d", result.Human.Score, result.Computer.Score))
}
