package war

import (
	"fmt"
)

// State is the state of a game
type State int

// game states
const (
	StateUninitialized State = iota
	StateDealt
	StatePlaying
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDealt:
		return "dealt"
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome is the result of a round or of the whole game
type Outcome int

// outcomes
const (
	OutcomeTie Outcome = iota
	OutcomePlayerOne
	OutcomePlayerTwo
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTie:
		return "tie"
	case OutcomePlayerOne:
		return "player one"
	case OutcomePlayerTwo:
		return "player two"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText encodes the outcome as its name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// compare returns the outcome of comparing player one's value against player two's
func compare(one, two int) Outcome {
	switch {
	case one > two:
		return OutcomePlayerOne
	case two > one:
		return OutcomePlayerTwo
	}

	return OutcomeTie
}
