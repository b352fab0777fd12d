package war

import (
	"errors"
)

// ErrEmptyHand is an error when a player is asked to play a card with an empty hand
var ErrEmptyHand = errors.New("player has no cards to play")

// ErrInvalidState is an error when an operation is attempted in the wrong game state
var ErrInvalidState = errors.New("operation not allowed in the current game state")

// ErrGameIsOver is an error when a round is attempted after the last round
var ErrGameIsOver = errors.New("game is over")

// ErrIncompleteDeal happens when the deck ran out before every player was dealt a full hand
var ErrIncompleteDeal = errors.New("deal is incomplete")

// ErrInvalidPlayerName is an error when a player does not have a name
var ErrInvalidPlayerName = errors.New("player name cannot be empty")

// ErrDuplicatePlayerName is an error when both players share the same name
var ErrDuplicatePlayerName = errors.New("players must have different names")
