package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/daystram/gambit-lite/bench"
	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/engine"
)

var (
	EngineName   = "Gambit Lite"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		debug:         false,
		difficulty:    engine.DifficultyHard,
		seed:          0,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	difficulty    engine.Difficulty
	seed          uint64
	parallelPerft bool
}

// Interface speaks a subset of the UCI protocol. Searches finish within the
// command that started them, so "stop" has nothing to cancel.
type Interface struct {
	in  io.Reader
	out io.Writer
	mu  sync.Mutex

	board   board.Board
	turn    board.Side
	engine  *engine.Engine
	options options
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		options: defaultOptions,
	}
}

// Run reads commands until "quit" or the end of input.
func (i *Interface) Run() error {
	i.reset()

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch args := strings.Fields(cmd); args[0] {
		case "uci":
			i.commandUCI()
		case "ucinewgame":
			i.reset()
		case "isready":
			i.commandReady()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "go":
			i.commandGo(args[1:])
		case "stop":
		case "quit":
			return nil
		default:
			i.println(fmt.Sprintf("info string unknown command: %s", args[0]))
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Difficulty type combo default %s var %s var %s var %s",
		defaultOptions.difficulty, engine.DifficultyEasy, engine.DifficultyMedium, engine.DifficultyHard))
	i.println(fmt.Sprintf("option name Seed type spin default %d min 0 max %d", defaultOptions.seed, uint64(1<<63-1)))
	i.println("uciok")
}

func (i *Interface) commandReady() {
	if i.engine != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.debug = value
	case "difficulty":
		value, err := engine.ParseDifficulty(valueStr)
		if err != nil {
			i.println(fmt.Sprintf("info string %s", err))
			return
		}
		i.options.difficulty = value
		i.engine.SetDifficulty(value)
		return
	case "seed":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil {
			return
		}
		i.options.seed = value
		i.engine.Seed(value)
		return
	default:
		return
	}
	i.newEngine()
}

// commandPosition accepts "startpos" or "fen <fen>", optionally followed by
// "moves" and a list of moves to play from there. An invalid position or move
// leaves the current position untouched.
func (i *Interface) commandPosition(args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	rest := args[1:]
	switch args[0] {
	case "fen":
		end := len(rest)
		for idx, a := range rest {
			if a == "moves" {
				end = idx
				break
			}
		}
		fen = strings.Join(rest[:end], " ")
		rest = rest[end:]
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.println(fmt.Sprintf("info string %s", err))
		return
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, s := range rest[1:] {
			mv, err := b.ParseUCIMove(turn, s)
			if err != nil {
				i.println(fmt.Sprintf("info string %s", err))
				return
			}
			b = b.Apply(mv)
			turn = turn.Opposite()
		}
	}
	i.board, i.turn = b, turn
}

func (i *Interface) commandDraw() {
	i.println(i.board.Draw())
	i.println(fmt.Sprintf("fen: %s", i.board.FEN(i.turn)))
	i.println(i.board.DebugString(i.turn))
}

func (i *Interface) commandGo(args []string) {
	if len(args) > 0 {
		switch mode := args[0]; mode {
		case "perft":
			if len(args) != 2 {
				return
			}
			depth, err := strconv.Atoi(args[1])
			if err != nil || depth < 0 {
				return
			}

			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				for s := range out {
					i.println(s)
				}
				close(done)
			}()

			_, _ = bench.Perft(depth, i.board.FEN(i.turn), i.options.parallelPerft, true, out)
			close(out)
			<-done
			return

		// depth, movetime and the clock are ignored, the search is always one ply
		default:
		}
	}

	bestMove, err := i.engine.Search(i.board, i.turn)
	if err != nil && !errors.Is(err, engine.ErrNoMove) {
		i.println(fmt.Sprintf("info string %s", err))
	}
	i.println(fmt.Sprintf("bestmove %s", bestMove.UCI()))
}

func (i *Interface) reset() {
	i.commandPosition([]string{"startpos"})
	i.newEngine()
}

func (i *Interface) newEngine() {
	i.engine = engine.NewEngine(&engine.EngineConfig{
		Difficulty: i.options.difficulty,
		Seed:       i.options.seed,
		Debug:      i.options.debug,
		Logger:     i.println,
	})
}

func (i *Interface) println(a ...any) {
	i.mu.Lock()
	defer i.mu.Unlock()
	fmt.Fprintln(i.out, a...)
}
