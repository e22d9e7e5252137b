package board

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of files and ranks on the board.
const Size = 8

var ErrBadSquare = errors.New("bad square")

type Side int

const (
	White Side = iota
	Black
)

func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Piece is an immutable value. The zero Piece is an empty square.
type Piece struct {
	Kind Kind `json:"kind"`
	Side Side `json:"side"`
}

var NoPiece = Piece{}

func (p Piece) Empty() bool {
	return p.Kind == None
}

// Letter returns the FEN letter of the piece, upper case for white.
func (p Piece) Letter() string {
	var l string
	switch p.Kind {
	case Pawn:
		l = "p"
	case Knight:
		l = "n"
	case Bishop:
		l = "b"
	case Rook:
		l = "r"
	case Queen:
		l = "q"
	case King:
		l = "k"
	default:
		return "."
	}
	if p.Side == White {
		return strings.ToUpper(l)
	}
	return l
}

// Position is a square: X is the file (0 = a), Y the rank (0 = rank 1).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Valid() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+p.X, p.Y+1)
}

// ParseSquare reads algebraic notation such as "e4".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	p := Position{X: int(s[0] - 'a'), Y: int(s[1] - '1')}
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return p, nil
}

// Board is the mutable square accessor the engine borrows during search.
type Board interface {
	PieceAt(pos Position) Piece
	SetPieceAt(pos Position, p Piece)
}

type TurnState interface {
	SideToMove() Side
}

// Generator produces the geometrically legal destinations of the piece at from.
type Generator interface {
	MovesFor(b Board, p Piece, from Position) []Position
}
