// Package trace renders a game log to an output sink
package trace

import (
	"errors"
	"fmt"
	"warsim/pkg/war"
)

// ErrNoLog is an error when there is nothing to render
var ErrNoLog = errors.New("no game log to render")

// Renderer renders a game log
type Renderer interface {
	Render(log *war.GameLog) error
}

// Output names the available renderers
type Output string

// outputs
const (
	OutputConsole Output = "console"
	OutputLog     Output = "log"
)

// ParseOutput returns the output for the name
func ParseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case OutputConsole, OutputLog:
		return o, nil
	case "":
		return OutputConsole, nil
	}

	return "", fmt.Errorf("unknown output: %s", s)
}

func roundVerdict(round *war.RoundResult) string {
	if round.IsTie() {
		return "It's a tie!"
	}

	return fmt.Sprintf("%s wins the round!", round.Winner)
}

func gameVerdict(result *war.Result) string {
	if result.IsTie() {
		return "It's a tie!"
	}

	return fmt.Sprintf("%s wins the game!", result.Winner)
}

func finalScore(result *war.Result) string {
	return fmt.Sprintf("Final Score - %s: %d, %s: %d",
		result.Players[0], result.Scores[0],
		result.Players[1], result.Scores[1])
}
