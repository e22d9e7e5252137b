package bots

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"chessMinimax/board"
)

// DefaultDepth is the search depth in plies when none is configured.
const DefaultDepth = 3

// MinimaxBot searches a fixed number of plies with alpha-beta, simulating
// moves on the borrowed board and taking each one back before returning.
//
// With Cutoffs off every sibling is still visited and only the bounds are
// threaded down, which picks the same move as the pruned search but costs the
// full tree. A MinimaxBot must not be shared between goroutines.
type MinimaxBot struct {
	Depth     int
	TimeLimit time.Duration
	Cutoffs   bool
	Verbose   bool
	Evaluator PositionEvaluator
	Weights   Weights
	Generator board.Generator
	Rand      *rand.Rand

	stats Stats
}

// Stats describes the last search.
type Stats struct {
	Nodes    int           `json:"nodes"`
	Leaves   int           `json:"leaves"`
	Cutoffs  int           `json:"cutoffs"`
	Elapsed  time.Duration `json:"elapsed"`
	TimedOut bool          `json:"timedOut"`
}

// NewMinimaxBot returns a bot with cutoffs on, material evaluation and a
// clock-seeded move order.
func NewMinimaxBot(depth int, timeLimit time.Duration, gen board.Generator) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		TimeLimit: timeLimit,
		Cutoffs:   true,
		Evaluator: MaterialEvaluator{},
		Weights:   DefaultWeights,
		Generator: gen,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.depth())
}

// LastStats returns the statistics of the most recent GetMove.
func (b *MinimaxBot) LastStats() Stats {
	return b.stats
}

// searchContext lives for exactly one GetMove call.
type searchContext struct {
	board    board.Board
	side     board.Side
	maxDepth int
	best     Move
	stack    UndoStack
	summary  Summary
	start    time.Time
	stats    Stats
}

// GetMove searches from the position on bd with turn's side to move and
// returns the best root move. If the side has no moves the placeholder a1a1
// move with math.MinInt score comes back.
func (b *MinimaxBot) GetMove(bd board.Board, turn board.TurnState) Move {
	sc := &searchContext{
		board:    bd,
		side:     turn.SideToMove(),
		maxDepth: b.depth(),
		best:     Move{Score: math.MinInt},
		start:    time.Now(),
	}

	b.search(sc, sc.maxDepth, math.MinInt, math.MaxInt, true)

	if n := sc.stack.Len(); n != 0 {
		panic(fmt.Sprintf("bots: %d simulated moves left on the board", n))
	}
	sc.stats.Elapsed = time.Since(sc.start)
	b.stats = sc.stats

	if b.Verbose {
		log.Printf("%s: %s to move, best %s score %d, %d nodes in %v",
			b.Name(), sc.side, sc.best, sc.best.Score, sc.stats.Nodes, sc.stats.Elapsed)
	}
	return sc.best
}

// SelectMove is GetMove with ErrNoMoves in place of the placeholder.
func (b *MinimaxBot) SelectMove(bd board.Board, turn board.TurnState) (Move, error) {
	m := b.GetMove(bd, turn)
	if m.Score == math.MinInt {
		return Move{}, ErrNoMoves
	}
	return m, nil
}

func (b *MinimaxBot) BestMove(bd board.Board, turn board.TurnState) (Move, error) {
	return b.SelectMove(bd, turn)
}

func (b *MinimaxBot) search(sc *searchContext, depth, alpha, beta int, maximizing bool) int {
	sc.stats.Nodes++
	sc.summary.Scan(sc.board, sc.side, b.weights())

	if depth == 0 || (depth < sc.maxDepth && b.timeUp(sc)) {
		return b.leaf(sc)
	}

	mover := sc.side
	if !maximizing {
		mover = sc.side.Other()
	}
	moves := GetMoves(sc.board, &sc.summary, mover, b.Generator, b.Rand)
	if len(moves) == 0 {
		return b.leaf(sc)
	}

	if maximizing {
		for _, m := range moves {
			score := b.child(sc, m, depth, alpha, beta, false)
			if score > alpha {
				alpha = score
			}
			if depth == sc.maxDepth && score > sc.best.Score {
				m.Score = score
				sc.best = m
			}
			if b.Cutoffs && alpha >= beta {
				sc.stats.Cutoffs++
				break
			}
		}
		return alpha
	}

	for _, m := range moves {
		score := b.child(sc, m, depth, alpha, beta, true)
		if score < beta {
			beta = score
		}
		if b.Cutoffs && alpha >= beta {
			sc.stats.Cutoffs++
			break
		}
	}
	return beta
}

// child plays m, searches one ply deeper and takes m back on every path out.
func (b *MinimaxBot) child(sc *searchContext, m Move, depth, alpha, beta int, maximizing bool) int {
	sc.stack.Apply(sc.board, m)
	defer sc.stack.Undo(sc.board)
	return b.search(sc, depth-1, alpha, beta, maximizing)
}

func (b *MinimaxBot) leaf(sc *searchContext) int {
	sc.stats.Leaves++
	return b.evaluator().Evaluate(sc.board, &sc.summary)
}

func (b *MinimaxBot) timeUp(sc *searchContext) bool {
	if b.TimeLimit <= 0 || time.Since(sc.start) <= b.TimeLimit {
		return false
	}
	sc.stats.TimedOut = true
	return true
}

func (b *MinimaxBot) depth() int {
	if b.Depth <= 0 {
		return DefaultDepth
	}
	return b.Depth
}

func (b *MinimaxBot) weights() Weights {
	if b.Weights == nil {
		return DefaultWeights
	}
	return b.Weights
}

func (b *MinimaxBot) evaluator() PositionEvaluator {
	if b.Evaluator == nil {
		return MaterialEvaluator{}
	}
	return b.Evaluator
}
