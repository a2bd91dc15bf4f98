package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/engine"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	difficulty = flag.String("difficulty", "hard", "engine difficulty: easy, medium or hard")
	seed       = flag.Uint64("seed", 0, "seed for the engine's random moves, 0 picks a fixed default")

	playRun  = flag.Bool("play", false, "play against the engine in the terminal")
	playSide = flag.String("side", "white", "side played by the human in play mode")

	serveRun     = flag.Bool("serve", false, "serve the JSON game API")
	serveAddr    = flag.String("addr", ":3000", "listen address in serve mode")
	serveOrigins = flag.String("cors", "", "allowed CORS origins in serve mode")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "split perft root moves across goroutines")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	selfplayRun   = flag.Bool("selfplay", false, "let the engine play both sides")
	selfplaySteps = flag.Int("selfplay.steps", 100, "maximum number of full moves in selfplay mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	d, err := engine.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}

	switch {
	case *perftDepth > 0:
		return perft(*perftDepth, fen, *perftParallel)
	case *movegenRun:
		return movegen(fen, *movegenDraw)
	case *selfplayRun:
		return selfplay(fen, *selfplaySteps, d, *seed)
	case *playRun:
		side, err := board.ParseSide(*playSide)
		if err != nil {
			return err
		}
		return play(fen, side, d, *seed)
	case *serveRun:
		return serve(*serveAddr, *serveOrigins)
	}

	return runUCI()
}
