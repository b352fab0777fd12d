package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())

	for i := 0; i < 100; i++ {
		n := s1.Intn(10)
		a.Equal(n, s2.Intn(10))
		a.True(n >= 0 && n < 10)
	}
}

func TestGenerator_implementations(t *testing.T) {
	var _ Generator = Crypto{}
	var _ Generator = NewSeeded(1)
}

func TestFromSeed(t *testing.T) {
	a := assert.New(t)

	a.IsType(Crypto{}, FromSeed(0))

	gen, ok := FromSeed(7).(*Seeded)
	if a.True(ok) {
		a.Equal(int64(7), gen.Seed())
	}
}
