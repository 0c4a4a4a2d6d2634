package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"indigo/pkg/deck"
	"indigo/pkg/indigo"
)

type palette struct {
	Header, Info, Win, Prompt, Muted *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		Header: color.New(color.FgWhite, color.Bold),
		Info:   color.New(color.FgCyan),
		Win:    color.New(color.FgGreen, color.Bold),
		Prompt: color.New(color.FgHiWhite),
		Muted:  color.New(color.FgHiBlack),
	}

	if noColor {
		for _, c := range []*color.Color{p.Header, p.Info, p.Win, p.Prompt, p.Muted} {
			c.DisableColor()
		}
	}

	return p
}

// Console is the text interface of a match
// It is the human's InputSource and the match's Listener
type Console struct {
	out       io.Writer
	prompter  Prompter
	quitToken string
	c         palette
}

// New returns a console writing to out and reading through prompter
func New(out io.Writer, prompter Prompter, quitToken string, noColor bool) *Console {
	return &Console{
		out:       out,
		prompter:  prompter,
		quitToken: quitToken,
		c:         newPalette(noColor),
	}
}

// Banner prints the title of the game
func (c *Console) Banner() {
	c.c.Header.Fprintln(c.out, "Indigo Card Game")
}

// GameOver prints the closing line
func (c *Console) GameOver() {
	c.c.Header.Fprintln(c.out, "Game Over")
}

// AskPlayFirst asks until the answer is yes or no
func (c *Console) AskPlayFirst() (bool, error) {
	for {
		c.c.Prompt.Fprintln(c.out, "Play first?")
		answer, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
	}
}

// Choose asks until the answer is a number in [min,max]
func (c *Console) Choose(prompt string, min, max int) (int, error) {
	for {
		c.c.Prompt.Fprintln(c.out, prompt)
		answer, err := c.readLine()
		if err != nil {
			return 0, err
		}

		if n, ok := parseChoice(answer, min, max); ok {
			return n, nil
		}
	}
}

// readLine returns the trimmed answer, or indigo.ErrQuit for the quit token and closed input
func (c *Console) readLine() (string, error) {
	answer, err := c.prompter.Prompt("")
	if err != nil {
		if err == io.EOF || errors.Is(err, liner.ErrPromptAborted) {
			return "", indigo.ErrQuit
		}

		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == c.quitToken {
		return "", indigo.ErrQuit
	}

	return answer, nil
}

func parseChoice(answer string, min, max int) (int, bool) {
	if answer == "" {
		return 0, false
	}

	for _, r := range answer {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < min || n > max {
		return 0, false
	}

	return n, true
}

// TableDealt prints the initial table
func (c *Console) TableDealt(cards []deck.Card) {
	c.c.Info.Fprintf(c.out, "Initial cards on the table: %s\n", deck.CardsToString(cards))
}

// TurnStarted prints the table and the hand of the active player
func (c *Console) TurnStarted(p *indigo.Player, table []deck.Card) {
	fmt.Fprintln(c.out)
	c.printTable(table)

	if p.Role == indigo.RoleHuman {
		fmt.Fprintf(c.out, "Cards in hand: %s\n", p.Hand().Numbered())
	} else {
		c.c.Muted.Fprintln(c.out, p.Hand().String())
	}
}

// CardPlayed announces the computer's card
func (c *Console) CardPlayed(p *indigo.Player, card deck.Card) {
	if p.Role == indigo.RoleComputer {
		fmt.Fprintf(c.out, "%s plays %s\n", p.Role, card)
	}
}

// TrickWon announces the winner and the running totals
func (c *Console) TrickWon(winner, human, computer *indigo.Player) {
	c.c.Win.Fprintf(c.out, "%s wins cards\n", winner.Role)
	c.printTally(
		indigo.Tally{Score: human.Score(), Cards: human.CardsWon()},
		indigo.Tally{Score: computer.Score(), Cards: computer.CardsWon()},
	)
}

// MatchFinished prints the leftover table and the final totals
func (c *Console) MatchFinished(result *indigo.Result) {
	if len(result.Remaining) > 0 {
		fmt.Fprintln(c.out)
	}

	c.printTable(result.Remaining)
	c.printTally(result.Human, result.Computer)
	c.GameOver()
}

func (c *Console) printTable(table []deck.Card) {
	if len(table) == 0 {
		c.c.Info.Fprintln(c.out, "No cards on the table")
		return
	}

	c.c.Info.Fprintf(c.out, "%d cards on the table, and the top card is %s\n", len(table), table[len(table)-1])
}

func (c *Console) printTally(human, computer indigo.Tally) {
	fmt.Fprintf(c.out, "Score: %s %d - %s %d\n", indigo.RoleHuman, human.Score, indigo.RoleComputer, computer.Score)
	fmt.Fprintf(c.out, "Cards: %s %d - %s %d\n", indigo.RoleHuman, human.Cards, indigo.RoleComputer, computer.Cards)
}
