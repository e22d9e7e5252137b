// Package movegen supplies destination squares for the search engine using
// github.com/notnil/chess as the rules layer.
package movegen

import (
	"log"

	"chessMinimax/board"

	"github.com/notnil/chess"
)

// ChessGenerator asks notnil/chess for the legal moves of a piece. Castling
// rights and en passant are never set, and the four promotion choices of a
// pawn collapse into a single destination.
//
// The last position is cached so consecutive calls for pieces of the same
// board only decode it once. A ChessGenerator is not safe for concurrent use.
type ChessGenerator struct {
	lastFEN string
	moves   map[board.Position][]board.Position
}

func NewChessGenerator() *ChessGenerator {
	return &ChessGenerator{}
}

func (g *ChessGenerator) MovesFor(b board.Board, p board.Piece, from board.Position) []board.Position {
	if p.Empty() {
		return nil
	}
	fen := board.ToFEN(b, p.Side)
	if fen != g.lastFEN {
		g.moves = destinations(fen)
		g.lastFEN = fen
	}
	return g.moves[from]
}

func destinations(fen string) map[board.Position][]board.Position {
	opt, err := chess.FEN(fen)
	if err != nil {
		// board.ToFEN only produces well-formed records
		log.Printf("movegen: %v", err)
		return nil
	}
	pos := chess.NewGame(opt).Position()

	out := make(map[board.Position][]board.Position)
	seen := make(map[[2]chess.Square]bool)
	for _, m := range pos.ValidMoves() {
		key := [2]chess.Square{m.S1(), m.S2()}
		if seen[key] {
			continue
		}
		seen[key] = true
		from := board.FromChessSquare(m.S1())
		out[from] = append(out[from], board.FromChessSquare(m.S2()))
	}
	return out
}
