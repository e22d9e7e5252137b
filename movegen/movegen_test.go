package movegen

import (
	"testing"

	"chessMinimax/board"
)

func mustFEN(t *testing.T, fen string) *board.Grid {
	t.Helper()
	g, _, err := board.FromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestMovesForStartKnight(t *testing.T) {
	g := mustFEN(t, board.StartFEN)
	gen := NewChessGenerator()

	b1 := board.Position{X: 1, Y: 0}
	got := gen.MovesFor(g, g.PieceAt(b1), b1)
	want := map[board.Position]bool{{X: 0, Y: 2}: true, {X: 2, Y: 2}: true}
	if len(got) != len(want) {
		t.Fatalf("MovesFor(b1) = %v, want a3 and c3", got)
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected destination %v", p)
		}
	}
}

func TestMovesForBlackUsesBlackToMove(t *testing.T) {
	g := mustFEN(t, board.StartFEN)
	gen := NewChessGenerator()

	e7 := board.Position{X: 4, Y: 6}
	got := gen.MovesFor(g, g.PieceAt(e7), e7)
	if len(got) != 2 {
		t.Fatalf("MovesFor(e7) = %v, want e6 and e5", got)
	}
}

func TestMovesForPromotionCollapses(t *testing.T) {
	g := mustFEN(t, "8/4P3/8/8/8/8/k7/6K1 w - - 0 1")
	gen := NewChessGenerator()

	e7 := board.Position{X: 4, Y: 6}
	got := gen.MovesFor(g, g.PieceAt(e7), e7)
	if len(got) != 1 || got[0] != (board.Position{X: 4, Y: 7}) {
		t.Errorf("MovesFor(e7) = %v, want [e8]", got)
	}
}

func TestMovesForEmptySquare(t *testing.T) {
	g := mustFEN(t, board.StartFEN)
	gen := NewChessGenerator()
	if got := gen.MovesFor(g, board.NoPiece, board.Position{X: 4, Y: 4}); got != nil {
		t.Errorf("MovesFor(empty) = %v, want nil", got)
	}
}

func TestMovesForSeesMutations(t *testing.T) {
	g := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	gen := NewChessGenerator()

	a1 := board.Position{X: 0, Y: 0}
	rook := g.PieceAt(a1)
	before := len(gen.MovesFor(g, rook, a1))

	// a blocker on a4 cuts the file short
	g.SetPieceAt(board.Position{X: 0, Y: 3}, board.Piece{Kind: board.Pawn, Side: board.White})
	after := len(gen.MovesFor(g, rook, a1))
	if after >= before {
		t.Errorf("moves after blocking = %d, before = %d", after, before)
	}
}
