package bots

import "chessMinimax/board"

// Weights gives the material value of a piece kind.
type Weights interface {
	WeightOf(k board.Kind) int
}

// PieceWeights is a static material table. Missing kinds weigh 0.
type PieceWeights map[board.Kind]int

func (w PieceWeights) WeightOf(k board.Kind) int {
	return w[k]
}

// DefaultWeights is the classic 1/3/3/5/9 table with a heavy king.
var DefaultWeights = PieceWeights{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   1000,
}
