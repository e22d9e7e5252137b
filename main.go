package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"chessMinimax/board"
	"chessMinimax/bots"
	"chessMinimax/game"
	"chessMinimax/movegen"
	"chessMinimax/server"
)

type Config struct {
	FEN       string
	Bot       string
	Depth     int
	Eval      string
	Cutoffs   bool
	Seed      int64
	TimeLimit time.Duration
	SelfPlay  int
	Listen    string
	Origins   string
	Verbose   bool
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.FEN, "fen", board.StartFEN, "position to search")
	flag.StringVar(&cfg.Bot, "bot", "minimax", "bot to ask: minimax, newborn or random")
	flag.IntVar(&cfg.Depth, "depth", bots.DefaultDepth, "search depth in plies")
	flag.StringVar(&cfg.Eval, "eval", "material", "evaluator: material or positional")
	flag.BoolVar(&cfg.Cutoffs, "cutoffs", true, "stop searching siblings once alpha >= beta")
	flag.Int64Var(&cfg.Seed, "seed", 0, "move ordering seed, 0 picks one from the clock")
	flag.DurationVar(&cfg.TimeLimit, "time", 0, "stop expanding nodes after this long, 0 for no limit")
	flag.IntVar(&cfg.SelfPlay, "selfplay", 0, "play this many plies bot against bot from -fen")
	flag.StringVar(&cfg.Listen, "listen", "", "serve the HTTP API on this address, e.g. :3000")
	flag.StringVar(&cfg.Origins, "origins", "http://localhost:5173", "CORS origins for the HTTP API")
	flag.BoolVar(&cfg.Verbose, "v", false, "log every search")
	flag.Parse()
	return cfg
}

func (cfg Config) newBot(name string, gen board.Generator) (bots.ChessBot, error) {
	bot, err := bots.New(name, cfg.Depth, cfg.TimeLimit, gen)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch b := bot.(type) {
	case *bots.MinimaxBot:
		b.Cutoffs = cfg.Cutoffs
		b.Verbose = cfg.Verbose
		b.Rand = rand.New(rand.NewSource(seed))
		if cfg.Eval == "positional" {
			b.Evaluator = bots.PositionalEvaluator{}
		}
	case *bots.RandomBot:
		b.Rand = rand.New(rand.NewSource(seed))
	}
	return bot, nil
}

func (cfg Config) newBots(gen board.Generator) map[string]bots.ChessBot {
	out := make(map[string]bots.ChessBot)
	for _, name := range bots.Names {
		bot, err := cfg.newBot(name, gen)
		if err != nil {
			log.Fatal(err)
		}
		out[name] = bot
	}
	return out
}

func newGen() board.Generator {
	return movegen.NewChessGenerator()
}

func main() {
	cfg := parseFlags()
	if cfg.Eval != "material" && cfg.Eval != "positional" {
		log.Fatalf("unknown evaluator %q", cfg.Eval)
	}

	switch {
	case cfg.Listen != "":
		games := game.NewManager(newGen, cfg.newBots, cfg.Bot)
		srv := server.New(server.Config{
			AllowOrigins: cfg.Origins,
			Depth:        cfg.Depth,
			TimeLimit:    cfg.TimeLimit,
		}, games, newGen)
		log.Fatal(srv.Listen(cfg.Listen))

	case cfg.SelfPlay > 0:
		selfPlay(cfg)

	default:
		if err := selectMove(os.Stdout, cfg); err != nil {
			log.Fatal(err)
		}
	}
}

func selectMove(w io.Writer, cfg Config) error {
	gen := newGen()
	bot, err := cfg.newBot(cfg.Bot, gen)
	if err != nil {
		return err
	}

	s, err := game.NewSession("cli", cfg.FEN, gen, map[string]bots.ChessBot{cfg.Bot: bot}, cfg.Bot)
	if err != nil {
		return err
	}
	fmt.Fprint(w, s.Board())
	fmt.Fprintf(w, "%s to move, asking %s\n", s.SideToMove(), bot.Name())

	m, err := s.MakeBotMove()
	if err != nil {
		return fmt.Errorf("bot move: %w", err)
	}
	fmt.Fprintf(w, "best move %s (%s %s", m, m.Piece.Side, m.Piece.Kind)
	if m.IsCapture() {
		fmt.Fprintf(w, " takes %s", m.Captured.Kind)
	}
	fmt.Fprintf(w, ") score %d\n", m.Score)
	if mm, ok := bot.(*bots.MinimaxBot); ok {
		st := mm.LastStats()
		fmt.Fprintf(w, "%d nodes, %d leaves, %d cutoffs in %v\n", st.Nodes, st.Leaves, st.Cutoffs, st.Elapsed)
	}
	return nil
}

func selfPlay(cfg Config) {
	gen := newGen()
	white, err := cfg.newBot(cfg.Bot, gen)
	if err != nil {
		log.Fatal(err)
	}
	black, err := cfg.newBot(cfg.Bot, gen)
	if err != nil {
		log.Fatal(err)
	}

	s, err := game.NewSession("selfplay", cfg.FEN, gen, map[string]bots.ChessBot{cfg.Bot: white}, cfg.Bot)
	if err != nil {
		log.Fatal(err)
	}
	res, err := game.NewRunner(white, black).Play(s, cfg.SelfPlay)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(res.Final.Board)
	fmt.Printf("%d plies, result %s", len(res.Moves), res.Final.Outcome)
	if res.Final.Method != "NoMethod" {
		fmt.Printf(" (%s)", res.Final.Method)
	}
	fmt.Printf("\nfen %s\n", res.Final.FEN)
}
