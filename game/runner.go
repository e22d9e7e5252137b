package game

import (
	"errors"
	"log"

	"chessMinimax/board"
	"chessMinimax/bots"
)

// Runner plays two bots against each other on a session.
type Runner struct {
	agents [2]bots.ChessBot
}

// Result records a finished run.
type Result struct {
	Moves   []bots.Move `json:"moves"`
	Final   State       `json:"final"`
	Skipped int         `json:"skipped"`
}

func NewRunner(white, black bots.ChessBot) *Runner {
	return &Runner{agents: [2]bots.ChessBot{white, black}}
}

// Play alternates the bots until the game ends, both sides are stuck in a
// row, or maxPlies moves have been made. A side without moves passes.
func (r *Runner) Play(s *Session, maxPlies int) (Result, error) {
	var res Result
	skips := 0
	for skips < 2 && len(res.Moves) < maxPlies {
		side := s.SideToMove()
		agent := r.agents[0]
		if side == board.Black {
			agent = r.agents[1]
		}

		m, err := s.MoveWith(agent)
		switch {
		case errors.Is(err, ErrGameOver):
			skips = 2
			continue
		case errors.Is(err, bots.ErrNoMoves):
			log.Printf("%s has no moves, passing", side)
			skips++
			res.Skipped++
			s.Pass()
			continue
		case err != nil:
			return res, err
		}

		skips = 0
		res.Moves = append(res.Moves, m)
		log.Printf("%s: %s %v (score %d)", side, agent.Name(), m, m.Score)
	}
	res.Final = s.State()
	return res, nil
}
