package indigo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"indigo/internal/rng"
	"indigo/pkg/deck"
)

const (
	// handSize is how many cards each player gets per deal
	handSize = 6
	// initialTableSize is how many cards are face up before the first turn
	initialTableSize = 4
)

// Match is a game of Indigo between a human and the computer
// All of the match state lives here, so separate matches can run side by side
type Match struct {
	ID string

	deck     *deck.Deck
	table    *Table
	human    *Player
	computer *Player

	first      *Player
	current    *Player
	lastWinner *Player

	state  State
	result *Result

	logger   logrus.FieldLogger
	listener Listener
}

// NewMatch shuffles a new deck and puts the initial cards on the table
func NewMatch(opts Options) (*Match, error) {
	g := opts.Generator
	if g == nil {
		g = rng.Crypto{}
	}

	d := deck.New()
	d.Shuffle(g)

	return newMatch(opts, d)
}

func newMatch(opts Options, d *deck.Deck) (*Match, error) {
	if opts.Human == nil || opts.Computer == nil {
		return nil, ErrMissingStrategy
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	listener := opts.Listener
	if listener == nil {
		listener = NopListener{}
	}

	m := &Match{
		ID:       uuid.New().String(),
		deck:     d,
		table:    &Table{},
		human:    NewPlayer(RoleHuman, opts.Human),
		computer: NewPlayer(RoleComputer, opts.Computer),
		state:    StateDealing,
		listener: listener,
	}

	m.first = m.computer
	if opts.HumanFirst {
		m.first = m.human
	}
	m.current = m.first

	m.logger = logger.WithField("match", m.ID)

	for i := 0; i < initialTableSize; i++ {
		card, err := m.deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("could not deal the table: %w", err)
		}

		m.table.Push(card)
	}

	m.logger.WithFields(logrus.Fields{
		"first": m.first.Role,
		"table": deck.CardsToString(m.table.cards),
	}).Debug("match started")

	m.listener.TableDealt(m.table.Cards())
	return m, nil
}

// State returns the current step of the state machine
func (m *Match) State() State {
	return m.state
}

// Human returns the human player
func (m *Match) Human() *Player {
	return m.human
}

// Computer returns the computer player
func (m *Match) Computer() *Player {
	return m.computer
}

// Result returns the final result
// The second value is false until the match is done
func (m *Match) Result() (*Result, bool) {
	return m.result, m.result != nil
}

// Run steps the match until it is done
// ErrQuit is returned as is when the human leaves; the match is not finalized in that case
func (m *Match) Run(ctx context.Context) (*Result, error) {
	for m.state != StateDone {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := m.Step(); err != nil {
			return nil, err
		}
	}

	return m.result, nil
}

// Step performs a single transition of the state machine
func (m *Match) Step() error {
	switch m.state {
	case StateDealing:
		return m.deal()
	case StateAwaitingPlay:
		return m.play()
	case StateEvaluatingTrick:
		m.evaluateTrick()
		return nil
	case StateFinalizing:
		m.finalize()
		return nil
	case StateDone:
		return ErrMatchOver
	}

	panic(fmt.Sprintf("unknown state: %d", m.state))
}

// deal gives six cards to each player, alternating and starting with the human
// With an empty deck the match moves on to the final accounting
func (m *Match) deal() error {
	if m.deck.CardsLeft() == 0 {
		m.state = StateFinalizing
		return nil
	}

	if len(m.current.hand) != 0 {
		panic("deal() called while the active player still has cards")
	}

	if !m.deck.CanDraw(handSize * 2) {
		return fmt.Errorf("%w: %d left", ErrDeckShort, m.deck.CardsLeft())
	}

	for i := 0; i < handSize; i++ {
		for _, p := range []*Player{m.human, m.computer} {
			card, err := m.deck.Draw()
			if err != nil {
				return fmt.Errorf("could not deal: %w", err)
			}

			p.AddCard(card)
		}
	}

	m.logger.WithField("cardsInDeck", m.deck.CardsLeft()).Debug("dealt")
	m.state = StateAwaitingPlay
	return nil
}

func (m *Match) play() error {
	p := m.current
	m.listener.TurnStarted(p, m.table.Cards())

	card, err := p.PlayCard(m.table.topCard())
	if err != nil {
		if errors.Is(err, ErrQuit) {
			m.logger.WithField("player", p.Role).Debug("quit")
			return err
		}

		return fmt.Errorf("%s could not play: %w", p.Role, err)
	}

	m.table.Push(card)
	m.logger.WithFields(logrus.Fields{
		"player": p.Role,
		"card":   card.String(),
	}).Debug("card played")

	m.listener.CardPlayed(p, card)
	m.state = StateEvaluatingTrick
	return nil
}

func (m *Match) evaluateTrick() {
	p := m.current
	if m.table.IsTrick() {
		m.takeTable(p)
		m.lastWinner = p

		m.logger.WithFields(logrus.Fields{
			"player": p.Role,
			"score":  p.score,
			"cards":  p.cardsWon,
		}).Debug("trick won")

		m.listener.TrickWon(p, m.human, m.computer)
	}

	m.current = m.opponent(p)
	if len(m.current.hand) == 0 {
		m.state = StateDealing
	} else {
		m.state = StateAwaitingPlay
	}
}

// finalize hands the leftover table to the last trick winner and awards the bonus
func (m *Match) finalize() {
	res := &Result{
		MatchID:     m.ID,
		FirstPlayer: m.first.Role,
		Remaining:   m.table.Cards(),
	}

	if m.lastWinner != nil {
		res.LastTrickWinner = m.lastWinner.Role
	}

	if m.table.Len() > 0 {
		taker := m.lastWinner
		if taker == nil {
			taker = m.first
		}

		res.RemainingTo = taker.Role
		m.takeTable(taker)
	}

	bonus := bonusWinner(m.human, m.computer, m.first)
	bonus.score += bonusPoints
	res.BonusTo = bonus.Role

	res.Human = m.human.tally()
	res.Computer = m.computer.tally()
	m.result = res
	m.state = StateDone

	m.logger.WithFields(logrus.Fields{
		"human":    res.Human,
		"computer": res.Computer,
		"bonus":    res.BonusTo,
	}).Debug("match finished")

	m.listener.MatchFinished(res)
}

// takeTable credits p with every card on the table and clears it
func (m *Match) takeTable(p *Player) {
	points := m.table.ScoringCards()
	p.wonCards(m.table.Clear(), points)
}

func (m *Match) opponent(p *Player) *Player {
	if p == m.human {
		return m.computer
	}

	return m.human
}
