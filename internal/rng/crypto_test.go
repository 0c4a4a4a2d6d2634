package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[Crypto{}.Intn(4)] = true
	}

	a.Len(found, 4)
	a.False(found[4])
}
