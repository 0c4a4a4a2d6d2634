package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a reproducible generator backed by math/rand
type Seeded struct {
	seed int64
	rand *rand.Rand
}

// NewSeeded returns a generator for the seed
// A seed of 0 picks one from the clock
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Pick returns a uniformly random element of items
// items must not be empty
func Pick[T any](g Generator, items []T) T {
	if len(items) == 0 {
		panic("rng: pick from an empty set")
	}

	return items[g.Intn(len(items))]
}
