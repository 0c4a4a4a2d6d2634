package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"indigo/internal/config"
	"indigo/internal/console"
	"indigo/internal/rng"
	"indigo/pkg/indigo"
	"indigo/pkg/simulate"
)

var command = flag.String("c", "play", "specifies the command (play, simulate)")
var seed = flag.Int64("seed", 0, "shuffle seed, overrides the configuration")
var matches = flag.Int("n", 0, "number of matches to simulate, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *seed != 0 {
		cfg.Seed = *seed
	}

	switch *command {
	case "play":
		play(cfg)
	case "simulate":
		simulateMatches(cfg)
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func play(cfg config.Config) {
	prompter, closePrompter := newPrompter()
	defer closePrompter()

	con := console.New(os.Stdout, prompter, cfg.QuitToken, cfg.NoColor)
	con.Banner()

	humanFirst, err := con.AskPlayFirst()
	if err != nil {
		exitOnError(con, closePrompter, err)
		return
	}

	g := generator(cfg.Seed)
	opts := indigo.DefaultOptions()
	opts.HumanFirst = humanFirst
	opts.Human = indigo.NewHumanStrategy(con)
	opts.Computer = indigo.NewComputerStrategy(g)
	opts.Generator = g
	opts.Logger = logrus.StandardLogger()
	opts.Listener = con

	m, err := indigo.NewMatch(opts)
	if err != nil {
		exitOnError(con, closePrompter, err)
		return
	}

	if _, err := m.Run(context.Background()); err != nil {
		exitOnError(con, closePrompter, err)
	}
}

// exitOnError ends the game quietly when the player quit, and fails loudly on anything else
func exitOnError(con *console.Console, closePrompter func(), err error) {
	if errors.Is(err, indigo.ErrQuit) {
		con.GameOver()
		return
	}

	closePrompter()
	logrus.WithError(err).Fatal("the match could not continue")
}

func simulateMatches(cfg config.Config) {
	opts := simulate.DefaultOptions()
	opts.Matches = cfg.Simulation.Matches
	opts.Workers = cfg.Simulation.Workers
	opts.Seed = cfg.Seed
	opts.Logger = logrus.StandardLogger()
	if *matches > 0 {
		opts.Matches = *matches
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := simulate.Run(ctx, opts)
	if err != nil {
		stop()
		logrus.WithError(err).Fatal("simulation failed")
	}

	fmt.Println(stats.Render())
}

// newPrompter uses liner for an interactive terminal and plain line reads otherwise
func newPrompter() (console.Prompter, func()) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return console.NewLineReader(os.Stdin, os.Stdout), func() {}
	}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	closed := false
	return line, func() {
		if !closed {
			closed = true
			_ = line.Close()
		}
	}
}

func generator(seed int64) rng.Generator {
	if seed == 0 {
		return rng.Crypto{}
	}

	return rng.NewSeeded(seed)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
