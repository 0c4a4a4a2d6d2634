package indigo

import (
	"github.com/sirupsen/logrus"

	"indigo/internal/rng"
)

// Options are options for creating a new match
type Options struct {
	// HumanFirst is true if the human takes the first turn
	HumanFirst bool
	Human      PlayStrategy
	Computer   PlayStrategy
	// Generator shuffles the deck. Defaults to rng.Crypto
	Generator rng.Generator
	// Logger defaults to a logger that discards everything
	Logger logrus.FieldLogger
	// Listener defaults to NopListener
	Listener Listener
}

// DefaultOptions returns the default options
// The strategies are left for the caller to provide
func DefaultOptions() Options {
	return Options{
		HumanFirst: true,
		Generator:  rng.Crypto{},
		Listener:   NopListener{},
	}
}
