package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"indigo/internal/rng"
	"indigo/pkg/deck"
	"indigo/pkg/indigo"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(out, NewLineReader(strings.NewReader(input), out), "exit", true), out
}

func TestConsole_AskPlayFirst(t *testing.T) {
	a := assert.New(t)

	c, out := newTestConsole("maybe\nyes\n")
	first, err := c.AskPlayFirst()
	a.NoError(err)
	a.True(first)
	a.Equal("Play first?\nPlay first?\n", out.String())

	c, _ = newTestConsole("no\n")
	first, err = c.AskPlayFirst()
	a.NoError(err)
	a.False(first)

	c, _ = newTestConsole("exit\n")
	_, err = c.AskPlayFirst()
	a.Equal(indigo.ErrQuit, err)

	c, _ = newTestConsole("")
	_, err = c.AskPlayFirst()
	a.Equal(indigo.ErrQuit, err, "closed input quits")
}

func TestConsole_Choose(t *testing.T) {
	a := assert.New(t)

	c, out := newTestConsole("abc\n0\n7\n-1\n\n 3 \n")
	n, err := c.Choose("Choose a card to play (1-6):", 1, 6)
	a.NoError(err)
	a.Equal(3, n)
	a.Equal(6, strings.Count(out.String(), "Choose a card to play (1-6):\n"))

	c, _ = newTestConsole("9\nexit\n2\n")
	_, err = c.Choose("Choose a card to play (1-6):", 1, 6)
	a.Equal(indigo.ErrQuit, err)
}

func Test_parseChoice(t *testing.T) {
	a := assert.New(t)

	n, ok := parseChoice("6", 1, 6)
	a.True(ok)
	a.Equal(6, n)

	for _, answer := range []string{"", "7", "0", "+1", "1.0", "one", "99999999999999999999"} {
		_, ok := parseChoice(answer, 1, 6)
		a.False(ok, answer)
	}
}

func TestLineReader_Prompt(t *testing.T) {
	a := assert.New(t)

	out := &bytes.Buffer{}
	l := NewLineReader(strings.NewReader("first\r\nlast"), out)

	line, err := l.Prompt("> ")
	a.NoError(err)
	a.Equal("first", line)

	line, err = l.Prompt("")
	a.NoError(err)
	a.Equal("last", line)

	_, err = l.Prompt("")
	a.Error(err)
	a.Equal("> ", out.String())
}

type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	return int(f) % n
}

func TestConsole_listener(t *testing.T) {
	a := assert.New(t)

	c, out := newTestConsole("")
	c.TableDealt(deck.CardsFromString("5♥ 9♦ 3♠ 6♣"))

	human := indigo.NewPlayer(indigo.RoleHuman, nil)
	human.AddCard(deck.CardFromString("6♦"))
	human.AddCard(deck.CardFromString("J♣"))
	computer := indigo.NewPlayer(indigo.RoleComputer, indigo.NewComputerStrategy(fixedGenerator(0)))
	computer.AddCard(deck.CardFromString("Q♣"))

	c.TurnStarted(human, deck.CardsFromString("5♥ 9♦ 3♠ 6♣"))
	c.CardPlayed(human, deck.CardFromString("J♣"))
	c.TrickWon(human, human, computer)
	c.TurnStarted(computer, nil)
	c.CardPlayed(computer, deck.CardFromString("Q♣"))
	c.MatchFinished(&indigo.Result{
		Remaining: deck.CardsFromString("Q♣ 6♦"),
		Human:     indigo.Tally{Score: 5, Cards: 7},
		Computer:  indigo.Tally{Score: 0, Cards: 0},
	})

	a.Equal(`Initial cards on the table: 5♥ 9♦ 3♠ 6♣

4 cards on the table, and the top card is 6♣
Cards in hand: 1)6♦ 2)J♣
Player wins cards
Score: Player 0 - Computer 0
Cards: Player 0 - Computer 0

No cards on the table
Q♣
Computer plays Q♣

2 cards on the table, and the top card is 6♦
Score: Player 5 - Computer 0
Cards: Player 7 - Computer 0
Game Over
`, out.String())

	out.Reset()
	c.MatchFinished(&indigo.Result{})
	a.Equal("No cards on the table\nScore: Player 0 - Computer 0\nCards: Player 0 - Computer 0\nGame Over\n", out.String())
}

func TestConsole_fullMatch(t *testing.T) {
	a := assert.New(t)

	c, out := newTestConsole(strings.Repeat("1\n", 24))
	opts := indigo.DefaultOptions()
	opts.Generator = rng.NewSeeded(11)
	opts.Human = indigo.NewHumanStrategy(c)
	opts.Computer = indigo.NewComputerStrategy(rng.NewSeeded(12))
	opts.Listener = c

	m, err := indigo.NewMatch(opts)
	a.NoError(err)

	res, err := m.Run(context.Background())
	a.NoError(err)
	a.Equal(52, res.Human.Cards+res.Computer.Cards)

	text := out.String()
	a.True(strings.HasPrefix(text, "Initial cards on the table: "))
	a.Equal(24, strings.Count(text, "Choose a card to play"))
	a.Equal(24, strings.Count(text, "Computer plays "))
	a.True(strings.HasSuffix(text, "Game Over\n"))
}

func TestConsole_quitDuringMatch(t *testing.T) {
	c, out := newTestConsole("1\nexit\n")
	opts := indigo.DefaultOptions()
	opts.Generator = rng.NewSeeded(11)
	opts.Human = indigo.NewHumanStrategy(c)
	opts.Computer = indigo.NewComputerStrategy(rng.NewSeeded(12))
	opts.Listener = c

	m, err := indigo.NewMatch(opts)
	assert.NoError(t, err)

	_, err = m.Run(context.Background())
	assert.Equal(t, indigo.ErrQuit, err)
	assert.NotContains(t, out.String(), "Game Over")
}
