// bot.go
package bots

import (
	"errors"
	"fmt"

	"chessMinimax/board"
)

// ErrNoMoves is returned when the side to move has no move at all.
var ErrNoMoves = errors.New("no moves available")

// ChessBot is implemented by every move picker. The board is borrowed for the
// duration of the call and handed back unchanged; committing the returned
// move is the caller's job.
type ChessBot interface {
	BestMove(b board.Board, turn board.TurnState) (Move, error)
	Name() string
}

// PositionEvaluator scores the board from the point of view of s.Side using
// the most recent scan.
type PositionEvaluator interface {
	Evaluate(b board.Board, s *Summary) int
}

// Move is a value record of a move. Captured is empty when the destination
// was free at generation time.
type Move struct {
	From     board.Position `json:"from"`
	To       board.Position `json:"to"`
	Piece    board.Piece    `json:"piece"`
	Captured board.Piece    `json:"captured"`
	Score    int            `json:"score"`
}

// IsCapture reports whether the move takes a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.Empty()
}

func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.From, m.To)
}
