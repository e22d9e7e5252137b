package bots

import (
	"math/rand"

	"chessMinimax/board"
)

// Square is an occupied square found by a scan.
type Square struct {
	Pos   board.Position
	Piece board.Piece
}

// Summary splits the occupied squares between Side and its opponent and
// tallies their material.
type Summary struct {
	Side          board.Side
	Mine          []Square
	Theirs        []Square
	MyMaterial    int
	TheirMaterial int
}

// Scan walks all 64 squares once. The lists and tallies are reset on every
// call; their backing arrays are reused.
func (s *Summary) Scan(b board.Board, side board.Side, w Weights) {
	s.Side = side
	s.Mine = s.Mine[:0]
	s.Theirs = s.Theirs[:0]
	s.MyMaterial = 0
	s.TheirMaterial = 0

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			pos := board.Position{X: x, Y: y}
			p := b.PieceAt(pos)
			if p.Empty() {
				continue
			}
			if p.Side == side {
				s.MyMaterial += w.WeightOf(p.Kind)
				s.Mine = append(s.Mine, Square{pos, p})
			} else {
				s.TheirMaterial += w.WeightOf(p.Kind)
				s.Theirs = append(s.Theirs, Square{pos, p})
			}
		}
	}
}

// Pieces returns the scanned squares of side.
func (s *Summary) Pieces(side board.Side) []Square {
	if side == s.Side {
		return s.Mine
	}
	return s.Theirs
}

// GetMoves materialises every move of side's pieces on the current board and
// shuffles them with rng. A nil rng keeps generation order.
func GetMoves(b board.Board, s *Summary, side board.Side, gen board.Generator, rng *rand.Rand) []Move {
	moves := make([]Move, 0, 32)
	for _, sq := range s.Pieces(side) {
		p := b.PieceAt(sq.Pos)
		for _, to := range gen.MovesFor(b, p, sq.Pos) {
			moves = append(moves, Move{
				From:     sq.Pos,
				To:       to,
				Piece:    p,
				Captured: b.PieceAt(to),
			})
		}
	}
	if rng != nil {
		// Fisher-Yates
		rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}
	return moves
}
