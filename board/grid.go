package board

import "strings"

// Grid is an 8x8 board indexed [y][x]. Grids compare with ==.
type Grid [Size][Size]Piece

func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) PieceAt(pos Position) Piece {
	if !pos.Valid() {
		return NoPiece
	}
	return g[pos.Y][pos.X]
}

func (g *Grid) SetPieceAt(pos Position, p Piece) {
	if !pos.Valid() {
		return
	}
	g[pos.Y][pos.X] = p
}

func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Count returns the number of occupied squares.
func (g *Grid) Count() int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !g[y][x].Empty() {
				n++
			}
		}
	}
	return n
}

// String draws the board with rank 8 on top.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		sb.WriteByte(byte('1' + y))
		sb.WriteByte(' ')
		for x := 0; x < Size; x++ {
			sb.WriteString(g[y][x].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
