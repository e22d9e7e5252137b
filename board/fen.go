package board

import (
	"fmt"

	"github.com/notnil/chess"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var kinds = map[chess.PieceType]Kind{
	chess.Pawn:   Pawn,
	chess.Knight: Knight,
	chess.Bishop: Bishop,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

var pieceTypes = map[Kind]chess.PieceType{
	Pawn:   chess.Pawn,
	Knight: chess.Knight,
	Bishop: chess.Bishop,
	Rook:   chess.Rook,
	Queen:  chess.Queen,
	King:   chess.King,
}

func ChessSquare(p Position) chess.Square {
	return chess.NewSquare(chess.File(p.X), chess.Rank(p.Y))
}

func FromChessSquare(sq chess.Square) Position {
	return Position{X: int(sq.File()), Y: int(sq.Rank())}
}

func ChessColor(s Side) chess.Color {
	if s == White {
		return chess.White
	}
	return chess.Black
}

func FromChessColor(c chess.Color) Side {
	if c == chess.Black {
		return Black
	}
	return White
}

func ChessPiece(p Piece) chess.Piece {
	if p.Empty() {
		return chess.NoPiece
	}
	return chess.NewPiece(pieceTypes[p.Kind], ChessColor(p.Side))
}

func FromChessPiece(p chess.Piece) Piece {
	if p == chess.NoPiece {
		return NoPiece
	}
	return Piece{Kind: kinds[p.Type()], Side: FromChessColor(p.Color())}
}

// FromFEN parses a FEN record into a Grid and the side to move.
func FromFEN(fen string) (*Grid, Side, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, White, fmt.Errorf("parse fen: %w", err)
	}
	pos := chess.NewGame(opt).Position()

	g := NewGrid()
	for sq, p := range pos.Board().SquareMap() {
		g.SetPieceAt(FromChessSquare(sq), FromChessPiece(p))
	}
	return g, FromChessColor(pos.Turn()), nil
}

// ChessBoard converts the occupancy of b into a notnil/chess board.
func ChessBoard(b Board) *chess.Board {
	m := make(map[chess.Square]chess.Piece)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			pos := Position{X: x, Y: y}
			if p := b.PieceAt(pos); !p.Empty() {
				m[ChessSquare(pos)] = ChessPiece(p)
			}
		}
	}
	return chess.NewBoard(m)
}

// ToFEN encodes b with side to move. Castling and en passant are always "-".
func ToFEN(b Board, side Side) string {
	turn := "w"
	if side == Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", ChessBoard(b).String(), turn)
}
