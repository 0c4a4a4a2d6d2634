package simulate

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"indigo/pkg/indigo"
)

// Stats aggregates the results of a simulation
type Stats struct {
	Seed         int64 `json:"seed"`
	Matches      int   `json:"matches"`
	HumanWins    int   `json:"humanWins"`
	ComputerWins int   `json:"computerWins"`
	Draws        int   `json:"draws"`
	// FirstPlayerWins counts matches won by whoever went first
	FirstPlayerWins int          `json:"firstPlayerWins"`
	Human           indigo.Tally `json:"human"`
	Computer        indigo.Tally `json:"computer"`
}

func (s *Stats) add(res *indigo.Result) {
	s.Matches++
	s.Human.Score += res.Human.Score
	s.Human.Cards += res.Human.Cards
	s.Computer.Score += res.Computer.Score
	s.Computer.Cards += res.Computer.Cards

	switch res.Winner() {
	case indigo.RoleHuman:
		s.HumanWins++
	case indigo.RoleComputer:
		s.ComputerWins++
	default:
		s.Draws++
	}

	if res.Winner() == res.FirstPlayer {
		s.FirstPlayerWins++
	}
}

func (s *Stats) average(total int) string {
	if s.Matches == 0 {
		return "0.00"
	}

	return fmt.Sprintf("%.2f", float64(total)/float64(s.Matches))
}

// Render returns the stats as a text table
func (s *Stats) Render() string {
	t := table.NewWriter()
	t.SetTitle("%d matches (seed %d)", s.Matches, s.Seed)
	t.AppendHeader(table.Row{"", indigo.RoleHuman, indigo.RoleComputer})
	t.AppendRows([]table.Row{
		{"Wins", s.HumanWins, s.ComputerWins},
		{"Avg score", s.average(s.Human.Score), s.average(s.Computer.Score)},
		{"Avg cards", s.average(s.Human.Cards), s.average(s.Computer.Cards)},
	})
	t.AppendFooter(table.Row{"Draws", s.Draws, ""})
	t.AppendFooter(table.Row{"First player won", s.FirstPlayerWins, ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	return t.Render()
}
