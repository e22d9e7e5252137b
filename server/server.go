// Package server exposes move selection and game sessions over HTTP and
// websockets.
package server

import (
	"errors"
	"time"

	"chessMinimax/board"
	"chessMinimax/bots"
	"chessMinimax/game"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

type Config struct {
	AllowOrigins string
	Depth        int
	MaxDepth     int
	TimeLimit    time.Duration
}

type Server struct {
	cfg    Config
	games  *game.Manager
	newGen func() board.Generator
}

func New(cfg Config, games *game.Manager, newGen func() board.Generator) *Server {
	if cfg.Depth <= 0 {
		cfg.Depth = bots.DefaultDepth
	}
	if cfg.MaxDepth < cfg.Depth {
		cfg.MaxDepth = cfg.Depth
	}
	return &Server{cfg: cfg, games: games, newGen: newGen}
}

// App builds the fiber application with all routes.
func (s *Server) App() *fiber.App {
	app := fiber.New()

	if s.cfg.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: s.cfg.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, DELETE, OPTIONS",
		}))
	}

	api := app.Group("/api")
	api.Get("/bots", s.listBots)
	api.Post("/move", s.selectMove)

	games := api.Group("/game")
	games.Post("/", s.createGame)
	games.Get("/:gameId", s.getGame)
	games.Delete("/:gameId", s.deleteGame)
	games.Post("/:gameId/move", s.playMove)
	games.Post("/:gameId/bot", s.botMove)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/game/:gameId", websocket.New(s.handleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return app
}

func (s *Server) Listen(addr string) error {
	return s.App().Listen(addr)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrNotYourPiece),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, bots.ErrNoMoves):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, game.ErrUnknownBot),
		errors.Is(err, board.ErrBadSquare),
		errors.Is(err, errBadRequest):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
