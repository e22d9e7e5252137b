package bots

import (
	"math/rand"
	"time"

	"chessMinimax/board"
)

// RandomBot plays a uniformly random move.
type RandomBot struct {
	Generator board.Generator
	Rand      *rand.Rand
}

// NewRandomBot returns a RandomBot seeded from the clock.
func NewRandomBot(gen board.Generator) *RandomBot {
	return &RandomBot{
		Generator: gen,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *RandomBot) BestMove(bd board.Board, turn board.TurnState) (Move, error) {
	moves := sideMoves(bd, turn.SideToMove(), b.Generator, b.Rand)
	if len(moves) == 0 {
		return Move{}, ErrNoMoves
	}
	return moves[0], nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}

func sideMoves(bd board.Board, side board.Side, gen board.Generator, rng *rand.Rand) []Move {
	var s Summary
	s.Scan(bd, side, DefaultWeights)
	return GetMoves(bd, &s, side, gen, rng)
}
