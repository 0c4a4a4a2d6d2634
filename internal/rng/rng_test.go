package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

type fixed int

func (f fixed) Intn(n int) int {
	return int(f) % n
}

func TestPick(t *testing.T) {
	a := assert.New(t)
	a.Equal("a", Pick(fixed(0), []string{"a", "b", "c"}))
	a.Equal("c", Pick(fixed(2), []string{"a", "b", "c"}))
	a.Equal(7, Pick(fixed(4), []int{7}))

	a.PanicsWithValue("rng: pick from an empty set", func() {
		Pick(fixed(0), []int{})
	})
}

func TestSeeded(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())
	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(52), s2.Intn(52))
	}

	a.NotEqual(int64(0), NewSeeded(0).Seed())
}
