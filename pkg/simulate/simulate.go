package simulate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"indigo/internal/rng"
	"indigo/pkg/indigo"
)

// ErrCardsNotConserved is returned when a finished match does not account for all 52 cards
var ErrCardsNotConserved = errors.New("cards were lost or duplicated")

// Options are options for a simulation run
type Options struct {
	Matches int
	Workers int
	// Seed makes the run reproducible. 0 picks a random seed
	Seed   int64
	Logger logrus.FieldLogger
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Matches: 1000,
		Workers: 4,
	}
}

// Run plays computer against computer for opts.Matches matches
// The seat called "human" is played by the same heuristic as the computer. Seats alternate going first
func Run(ctx context.Context, opts Options) (*Stats, error) {
	if opts.Matches < 1 {
		return nil, fmt.Errorf("expected at least one match, got %d", opts.Matches)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	seed := rng.NewSeeded(opts.Seed).Seed()
	logger = logger.WithField("seed", seed)
	logger.WithFields(logrus.Fields{
		"matches": opts.Matches,
		"workers": workers,
	}).Info("simulation started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*indigo.Result, opts.Matches)
	jobs := make(chan int)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := playOne(ctx, seed, i, logger)
				if err != nil {
					errs <- fmt.Errorf("match %d: %w", i, err)
					cancel()
					return
				}

				results[i] = res
			}
		}()
	}

feed:
	for i := 0; i < opts.Matches; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &Stats{Seed: seed}
	for _, res := range results {
		stats.add(res)
	}

	logger.WithFields(logrus.Fields{
		"humanWins":    stats.HumanWins,
		"computerWins": stats.ComputerWins,
		"draws":        stats.Draws,
	}).Info("simulation finished")

	return stats, nil
}

// playOne plays match i. Every match derives its own generators from the run seed,
// so the outcome does not depend on which worker plays it
func playOne(ctx context.Context, seed int64, i int, logger logrus.FieldLogger) (*indigo.Result, error) {
	base := seed + int64(i)*3
	opts := indigo.Options{
		HumanFirst: i%2 == 0,
		Human:      indigo.NewComputerStrategy(rng.NewSeeded(base + 1)),
		Computer:   indigo.NewComputerStrategy(rng.NewSeeded(base + 2)),
		Generator:  rng.NewSeeded(base + 3),
		Logger:     logger,
	}

	m, err := indigo.NewMatch(opts)
	if err != nil {
		return nil, err
	}

	res, err := m.Run(ctx)
	if err != nil {
		return nil, err
	}

	if n := m.GetGameState().CardsAccounted(); n != 52 || res.Human.Cards+res.Computer.Cards != 52 {
		return nil, fmt.Errorf("%w: %d accounted, %d won", ErrCardsNotConserved, n, res.Human.Cards+res.Computer.Cards)
	}

	return res, nil
}
