// Package rng provides the random sources used to shuffle a deck
package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// FromSeed returns a reproducible generator for seed
// A seed of 0 returns a cryptographically secure generator instead.
func FromSeed(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}
