package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"warsim/internal/rng"
)

// sequence returns each value in turn, wrapping around at the end
type sequence struct {
	values []int
	i      int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.i%len(s.values)] % n
	s.i++
	return v
}

func TestGetRandomName(t *testing.T) {
	assert.Equal(t, "Fast Dog", GetRandomName(&sequence{values: []int{0, 0}}))
	assert.Equal(t, "Waiving Lion", GetRandomName(&sequence{values: []int{6, 9}}))
	assert.Equal(t, "Leaping Panda", GetRandomName(&sequence{values: []int{33, 34}}))
}

func TestGetRandomNames(t *testing.T) {
	a := assert.New(t)

	// the second name repeats the first once before changing
	one, two := GetRandomNames(&sequence{values: []int{0, 0, 0, 0, 1, 1}})
	a.Equal("Fast Dog", one)
	a.Equal("Slow Cat", two)

	for seed := int64(1); seed < 20; seed++ {
		one, two = GetRandomNames(rng.NewSeeded(seed))
		a.NotEqual(one, two)
	}
}
