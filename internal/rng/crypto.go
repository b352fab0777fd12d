package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library
// Use it when a shuffle must not be predictable from a seed.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// Intn panics if n <= 0 or if the system random source fails.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
