package bots

import "chessMinimax/board"

// NewbornBot plays the first move it is offered.
type NewbornBot struct {
	Generator board.Generator
}

func NewNewbornBot(gen board.Generator) *NewbornBot {
	return &NewbornBot{Generator: gen}
}

func (b *NewbornBot) BestMove(bd board.Board, turn board.TurnState) (Move, error) {
	moves := sideMoves(bd, turn.SideToMove(), b.Generator, nil)
	if len(moves) > 0 {
		return moves[0], nil
	}
	return Move{}, ErrNoMoves
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
