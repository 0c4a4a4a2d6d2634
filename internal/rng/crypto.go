package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand. It is used when no seed is configured
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
