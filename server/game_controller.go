package server

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"chessMinimax/board"
	"chessMinimax/bots"

	"github.com/gofiber/fiber/v2"
)

var errBadRequest = errors.New("bad request")

type moveRequest struct {
	FEN   string `json:"fen"`
	Bot   string `json:"bot"`
	Depth int    `json:"depth"`
	Seed  int64  `json:"seed"`
}

type moveResponse struct {
	Move  bots.Move   `json:"move"`
	UCI   string      `json:"uci"`
	Bot   string      `json:"bot"`
	Stats *bots.Stats `json:"stats,omitempty"`
}

type createRequest struct {
	FEN string `json:"fen"`
}

type playRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type botRequest struct {
	Bot string `json:"bot"`
}

func (s *Server) listBots(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"bots":  bots.Names,
		"depth": s.cfg.Depth,
	})
}

// selectMove answers a single position without creating a session.
func (s *Server) selectMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}
	if req.FEN == "" {
		return fail(c, fmt.Errorf("%w: fen is required", errBadRequest))
	}
	if req.Bot == "" {
		req.Bot = "minimax"
	}
	depth := req.Depth
	if depth <= 0 {
		depth = s.cfg.Depth
	}
	if depth > s.cfg.MaxDepth {
		return fail(c, fmt.Errorf("%w: depth %d above %d", errBadRequest, depth, s.cfg.MaxDepth))
	}

	g, side, err := board.FromFEN(req.FEN)
	if err != nil {
		return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}
	bot, err := bots.New(req.Bot, depth, s.cfg.TimeLimit, s.newGen())
	if err != nil {
		return fail(c, err)
	}
	if req.Seed != 0 {
		seed(bot, req.Seed)
	}

	m, err := bot.BestMove(g, turn(side))
	if err != nil {
		return fail(c, err)
	}
	resp := moveResponse{Move: m, UCI: m.String(), Bot: bot.Name()}
	if mm, ok := bot.(*bots.MinimaxBot); ok {
		stats := mm.LastStats()
		resp.Stats = &stats
		log.Printf("%s %s: %s score %d, %d nodes", bot.Name(), side, m, m.Score, stats.Nodes)
	}
	return c.JSON(resp)
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		}
	}
	sess, err := s.games.Create(req.FEN)
	if err != nil {
		return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": sess.ID,
	})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	sess, err := s.games.Get(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sess.State())
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	id := c.Params("gameId")
	if _, err := s.games.Get(id); err != nil {
		return fail(c, err)
	}
	s.games.Remove(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) playMove(c *fiber.Ctx) error {
	sess, err := s.games.Get(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	var req playRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}
	from, err := board.ParseSquare(req.From)
	if err != nil {
		return fail(c, err)
	}
	to, err := board.ParseSquare(req.To)
	if err != nil {
		return fail(c, err)
	}
	if _, err := sess.Play(from, to); err != nil {
		return fail(c, err)
	}
	return c.JSON(sess.State())
}

func (s *Server) botMove(c *fiber.Ctx) error {
	sess, err := s.games.Get(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	var req botRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		}
	}
	if req.Bot != "" {
		if err := sess.SetBot(req.Bot); err != nil {
			return fail(c, err)
		}
	}
	m, err := sess.MakeBotMove()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"move":  m,
		"uci":   m.String(),
		"state": sess.State(),
	})
}

type turn board.Side

func (t turn) SideToMove() board.Side { return board.Side(t) }

func seed(bot bots.ChessBot, n int64) {
	switch b := bot.(type) {
	case *bots.MinimaxBot:
		b.Rand = rand.New(rand.NewSource(n))
	case *bots.RandomBot:
		b.Rand = rand.New(rand.NewSource(n))
	}
}
