package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"chessMinimax/board"
	"chessMinimax/bots"

	"github.com/notnil/chess"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNotYourPiece = errors.New("not your piece")
	ErrUnknownBot   = bots.ErrUnknownBot
	ErrGameOver     = errors.New("game is over")
)

// Session is one live game: the real board, whose turn it is and the bots
// that can be asked to play. Bots only ever see the board while the session
// lock is held, so a search never races a committed move.
type Session struct {
	ID string

	mu         sync.Mutex
	board      *board.Grid
	turn       board.Side
	gen        board.Generator
	bots       map[string]bots.ChessBot
	currentBot string
	history    []bots.Move
}

// State is a snapshot of a session for callers outside the lock.
type State struct {
	ID      string      `json:"id"`
	FEN     string      `json:"fen"`
	ToMove  string      `json:"toMove"`
	Bot     string      `json:"bot"`
	Outcome string      `json:"outcome"`
	Method  string      `json:"method"`
	History []bots.Move `json:"history"`
	Board   string      `json:"board"`
}

type sideToMove board.Side

func (s sideToMove) SideToMove() board.Side { return board.Side(s) }

func NewSession(id, fen string, gen board.Generator, available map[string]bots.ChessBot, defaultBot string) (*Session, error) {
	if fen == "" {
		fen = board.StartFEN
	}
	g, side, err := board.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	if _, ok := available[defaultBot]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBot, defaultBot)
	}
	return &Session{
		ID:         id,
		board:      g,
		turn:       side,
		gen:        gen,
		bots:       available,
		currentBot: defaultBot,
	}, nil
}

func (s *Session) SideToMove() board.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

// Board returns a copy of the live board.
func (s *Session) Board() *board.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

func (s *Session) History() []bots.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyCopy()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, method := s.outcome()
	return State{
		ID:      s.ID,
		FEN:     board.ToFEN(s.board, s.turn),
		ToMove:  s.turn.String(),
		Bot:     s.currentBot,
		Outcome: outcome.String(),
		Method:  method.String(),
		History: s.historyCopy(),
		Board:   s.board.String(),
	}
}

// BotNames lists the selectable bots in a stable order.
func (s *Session) BotNames() []string {
	names := make([]string, 0, len(s.bots))
	for name := range s.bots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Session) SetBot(name string) error {
	if _, ok := s.bots[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBot, name)
	}
	s.mu.Lock()
	s.currentBot = name
	s.mu.Unlock()
	return nil
}

// CycleBot switches to the next bot by name and returns it.
func (s *Session) CycleBot() string {
	names := s.BotNames()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, name := range names {
		if name == s.currentBot {
			s.currentBot = names[(i+1)%len(names)]
			break
		}
	}
	return s.currentBot
}

// Play commits a move from one square to another for the side to move.
func (s *Session) Play(from, to board.Position) (bots.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.findMove(from, to)
	if err != nil {
		return bots.Move{}, err
	}
	s.commit(m)
	return m, nil
}

// MakeBotMove asks the current bot for a move and commits it.
func (s *Session) MakeBotMove() (bots.Move, error) {
	s.mu.Lock()
	bot := s.bots[s.currentBot]
	s.mu.Unlock()
	return s.MoveWith(bot)
}

// MoveWith asks bot for a move on the live board and commits it.
func (s *Session) MoveWith(bot bots.ChessBot) (bots.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if outcome, _ := s.outcome(); outcome != chess.NoOutcome {
		return bots.Move{}, ErrGameOver
	}
	m, err := bot.BestMove(s.board, sideToMove(s.turn))
	if err != nil {
		return bots.Move{}, fmt.Errorf("%s: %w", bot.Name(), err)
	}
	checked, err := s.findMove(m.From, m.To)
	if err != nil {
		return bots.Move{}, fmt.Errorf("%s played %v: %w", bot.Name(), m, err)
	}
	checked.Score = m.Score
	s.commit(checked)
	return checked, nil
}

// Pass hands the turn over without moving.
func (s *Session) Pass() {
	s.mu.Lock()
	s.turn = s.turn.Other()
	s.mu.Unlock()
}

func (s *Session) findMove(from, to board.Position) (bots.Move, error) {
	p := s.board.PieceAt(from)
	if p.Empty() || p.Side != s.turn {
		return bots.Move{}, fmt.Errorf("%w: %v", ErrNotYourPiece, from)
	}
	for _, dest := range s.gen.MovesFor(s.board, p, from) {
		if dest == to {
			return bots.Move{From: from, To: to, Piece: p, Captured: s.board.PieceAt(to)}, nil
		}
	}
	return bots.Move{}, fmt.Errorf("%w: %v%v", ErrIllegalMove, from, to)
}

// commit applies m to the live board. Pawns reaching the last rank become
// queens.
func (s *Session) commit(m bots.Move) {
	p := m.Piece
	if p.Kind == board.Pawn && (m.To.Y == 0 || m.To.Y == board.Size-1) {
		p.Kind = board.Queen
	}
	s.board.SetPieceAt(m.From, board.NoPiece)
	s.board.SetPieceAt(m.To, p)
	s.history = append(s.history, m)
	s.turn = s.turn.Other()
}

// historyCopy is never nil so an empty history encodes as [].
func (s *Session) historyCopy() []bots.Move {
	out := make([]bots.Move, 0, len(s.history))
	return append(out, s.history...)
}

func (s *Session) outcome() (chess.Outcome, chess.Method) {
	opt, err := chess.FEN(board.ToFEN(s.board, s.turn))
	if err != nil {
		return chess.NoOutcome, chess.NoMethod
	}
	g := chess.NewGame(opt)
	return g.Outcome(), g.Method()
}
