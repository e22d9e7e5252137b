package game

import (
	"encoding/json"
	"errors"
	"strings"
	"math/rand"
	"testing"

	"chessMinimax/board"
	"chessMinimax/bots"
	"chessMinimax/movegen"
)

func testBots(gen board.Generator) map[string]bots.ChessBot {
	mm := bots.NewMinimaxBot(2, 0, gen)
	mm.Rand = rand.New(rand.NewSource(1))
	return map[string]bots.ChessBot{
		"minimax": mm,
		"newborn": bots.NewNewbornBot(gen),
		"random":  bots.NewRandomBot(gen),
	}
}

func newTestSession(t *testing.T, fen, bot string) *Session {
	t.Helper()
	gen := movegen.NewChessGenerator()
	s, err := NewSession("test", fen, gen, testBots(gen), bot)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func sq(t *testing.T, s string) board.Position {
	t.Helper()
	p, err := board.ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSessionPlay(t *testing.T) {
	s := newTestSession(t, "", "newborn")

	if _, err := s.Play(sq(t, "e2"), sq(t, "e5")); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("e2e5: %v, want ErrIllegalMove", err)
	}
	if _, err := s.Play(sq(t, "e7"), sq(t, "e5")); !errors.Is(err, ErrNotYourPiece) {
		t.Errorf("e7e5 on white's turn: %v, want ErrNotYourPiece", err)
	}

	m, err := s.Play(sq(t, "e2"), sq(t, "e4"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Piece.Kind != board.Pawn || m.IsCapture() {
		t.Errorf("unexpected move record %+v", m)
	}
	if s.SideToMove() != board.Black {
		t.Error("turn did not pass to black")
	}
	st := s.State()
	if st.FEN != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1" {
		t.Errorf("FEN after e4 = %q", st.FEN)
	}
	if len(st.History) != 1 || st.Outcome != "*" {
		t.Errorf("state %+v", st)
	}
}

func TestStateEncodesEmptyHistory(t *testing.T) {
	s := newTestSession(t, "", "newborn")
	if h := s.History(); h == nil {
		t.Error("History() of a new session is nil")
	}
	data, err := json.Marshal(s.State())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"history":[]`) {
		t.Errorf("state json %s has no empty history array", data)
	}
}

func TestSessionPromotesToQueen(t *testing.T) {
	s := newTestSession(t, "8/4P3/8/8/8/8/k7/6K1 w - - 0 1", "newborn")
	if _, err := s.Play(sq(t, "e7"), sq(t, "e8")); err != nil {
		t.Fatal(err)
	}
	if got := s.Board().PieceAt(sq(t, "e8")); got != (board.Piece{Kind: board.Queen, Side: board.White}) {
		t.Errorf("e8 = %v, want a white queen", got)
	}
}

func TestSessionBotMove(t *testing.T) {
	s := newTestSession(t, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1", "minimax")

	m, err := s.MakeBotMove()
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "d2d5" || m.Score != 5 {
		t.Errorf("bot played %v score %d, want d2d5 score 5", m, m.Score)
	}
	if got := s.Board().PieceAt(sq(t, "d5")); got != (board.Piece{Kind: board.Rook, Side: board.White}) {
		t.Errorf("d5 = %v, want the white rook", got)
	}
	if s.SideToMove() != board.Black {
		t.Error("turn did not pass to black")
	}
}

func TestSessionGameOver(t *testing.T) {
	s := newTestSession(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "minimax")
	if _, err := s.MakeBotMove(); !errors.Is(err, ErrGameOver) {
		t.Errorf("bare kings: %v, want ErrGameOver", err)
	}
}

func TestSessionBots(t *testing.T) {
	s := newTestSession(t, "", "minimax")

	if err := s.SetBot("nobody"); !errors.Is(err, ErrUnknownBot) {
		t.Errorf("SetBot(nobody) = %v", err)
	}
	if got := s.CycleBot(); got != "newborn" {
		t.Errorf("CycleBot() = %q, want newborn", got)
	}
	if got := s.CycleBot(); got != "random" {
		t.Errorf("CycleBot() = %q, want random", got)
	}
	if got := s.CycleBot(); got != "minimax" {
		t.Errorf("CycleBot() = %q, want minimax", got)
	}
	if err := s.SetBot("newborn"); err != nil {
		t.Fatal(err)
	}
	if s.State().Bot != "newborn" {
		t.Errorf("bot = %q, want newborn", s.State().Bot)
	}
}

func TestManager(t *testing.T) {
	gm := NewManager(func() board.Generator { return movegen.NewChessGenerator() }, testBots, "minimax")

	s, err := gm.Create("")
	if err != nil {
		t.Fatal(err)
	}
	got, err := gm.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get(%s) = %v, %v", s.ID, got, err)
	}
	if _, err := gm.Get("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Get(missing) = %v, want ErrGameNotFound", err)
	}
	if _, err := gm.Create("garbage"); err == nil {
		t.Error("Create with a bad FEN succeeded")
	}
	if gm.Len() != 1 {
		t.Errorf("Len() = %d, want 1", gm.Len())
	}
	gm.Remove(s.ID)
	if gm.Len() != 0 {
		t.Errorf("Len() after Remove = %d", gm.Len())
	}
}

func TestRunner(t *testing.T) {
	s := newTestSession(t, "", "newborn")
	gen := movegen.NewChessGenerator()
	r := NewRunner(bots.NewNewbornBot(gen), bots.NewNewbornBot(gen))

	res, err := r.Play(s, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Moves) != 6 {
		t.Errorf("played %d moves, want 6", len(res.Moves))
	}
	for i, m := range res.Moves {
		want := board.White
		if i%2 == 1 {
			want = board.Black
		}
		if m.Piece.Side != want {
			t.Errorf("move %d %v moved a %v piece", i, m, m.Piece.Side)
		}
	}
	if res.Final.ToMove != "white" {
		t.Errorf("after 6 plies %s to move", res.Final.ToMove)
	}
}

func TestRunnerStopsWhenOver(t *testing.T) {
	s := newTestSession(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "newborn")
	gen := movegen.NewChessGenerator()
	r := NewRunner(bots.NewNewbornBot(gen), bots.NewNewbornBot(gen))

	res, err := r.Play(s, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Moves) != 0 {
		t.Errorf("played %d moves in a dead position", len(res.Moves))
	}
}
