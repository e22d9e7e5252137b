package bots

import (
	"errors"
	"fmt"
	"time"

	"chessMinimax/board"
)

var ErrUnknownBot = errors.New("unknown bot")

// Names lists the bots New can build.
var Names = []string{"minimax", "newborn", "random"}

// New builds a bot by name. depth and timeLimit only apply to minimax.
func New(name string, depth int, timeLimit time.Duration, gen board.Generator) (ChessBot, error) {
	switch name {
	case "minimax":
		return NewMinimaxBot(depth, timeLimit, gen), nil
	case "newborn":
		return NewNewbornBot(gen), nil
	case "random":
		return NewRandomBot(gen), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBot, name)
}
