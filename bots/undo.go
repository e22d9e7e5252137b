package bots

import (
	"errors"

	"chessMinimax/board"
)

var errUndoUnderflow = errors.New("bots: undo with empty stack")

// UndoStack applies moves to a board and takes them back in LIFO order.
type UndoStack struct {
	records []Move
}

// Apply records what currently stands on both squares, then moves the piece.
func (s *UndoStack) Apply(b board.Board, m Move) {
	rec := m
	rec.Piece = b.PieceAt(m.From)
	rec.Captured = b.PieceAt(m.To)
	s.records = append(s.records, rec)

	b.SetPieceAt(m.From, board.NoPiece)
	b.SetPieceAt(m.To, rec.Piece)
}

// Undo restores the squares touched by the most recent Apply. Calling it
// with nothing applied is a broken pairing and panics.
func (s *UndoStack) Undo(b board.Board) Move {
	n := len(s.records)
	if n == 0 {
		panic(errUndoUnderflow)
	}
	rec := s.records[n-1]
	s.records = s.records[:n-1]

	b.SetPieceAt(rec.To, rec.Captured)
	b.SetPieceAt(rec.From, rec.Piece)
	return rec
}

func (s *UndoStack) Len() int {
	return len(s.records)
}
