package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/engine"
	"github.com/daystram/gambit-lite/position"
)

var (
	ErrGameOver = errors.New("game is over")
	ErrNotTurn  = errors.New("not this side's turn")
)

// Game is the authoritative record of a single human versus engine game. The
// board is replaced only after a move has been validated. A Game is not safe
// for concurrent use.
type Game struct {
	id        uuid.UUID
	fen       string
	humanSide board.Side
	engine    *engine.Engine

	board     board.Board
	turn      board.Side
	startTurn board.Side
	startMove int
	state     board.State
	history   []board.Move
}

type gameConfig struct {
	fen       string
	humanSide board.Side
	engine    *engine.Engine
}

type Option func(*gameConfig)

func WithFEN(fen string) Option {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

func WithHumanSide(s board.Side) Option {
	return func(cfg *gameConfig) {
		cfg.humanSide = s
	}
}

func WithEngine(e *engine.Engine) Option {
	return func(cfg *gameConfig) {
		cfg.engine = e
	}
}

// New starts a game from the standard position with the human playing White,
// unless overridden by the options.
func New(opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		fen:       board.DefaultStartingPositionFEN,
		humanSide: board.SideWhite,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.humanSide != board.SideWhite && cfg.humanSide != board.SideBlack {
		return nil, fmt.Errorf("invalid human side: %d", cfg.humanSide)
	}
	if cfg.engine == nil {
		cfg.engine = engine.NewEngine(nil)
	}

	g := &Game{
		id:        uuid.New(),
		fen:       cfg.fen,
		humanSide: cfg.humanSide,
		engine:    cfg.engine,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset restores the position the game was created with and clears the
// history. The game keeps its ID.
func (g *Game) Reset() error {
	b, turn, err := board.NewBoard(board.WithFEN(g.fen))
	if err != nil {
		return err
	}
	g.board = b
	g.turn = turn
	g.startTurn = turn
	g.startMove = board.FullMoveClockFromFEN(g.fen)
	g.history = nil
	g.state = b.State(turn)
	return nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) HumanSide() board.Side {
	return g.humanSide
}

func (g *Game) EngineSide() board.Side {
	return g.humanSide.Opposite()
}

func (g *Game) Engine() *engine.Engine {
	return g.engine
}

func (g *Game) State() board.State {
	return g.state
}

// History returns a copy of the moves played so far.
func (g *Game) History() []board.Move {
	mvs := make([]board.Move, len(g.history))
	copy(mvs, g.history)
	return mvs
}

// FullMoveClock returns the number of the move about to be played, counted the
// FEN way from the full move number of the starting position.
func (g *Game) FullMoveClock() int {
	plies := len(g.history)
	if g.startTurn == board.SideBlack {
		plies++
	}
	return plies/2 + g.startMove
}

func (g *Game) FEN() string {
	return board.MarshalFEN(g.board, g.turn, g.FullMoveClock())
}

// LegalMovesFrom returns the legal moves of the piece on from for the side to
// move. It is empty once the game is over.
func (g *Game) LegalMovesFrom(from position.Pos) []board.Move {
	if !g.state.IsRunning() {
		return nil
	}
	return g.board.LegalMovesFrom(g.turn, from)
}

// Play validates and applies a human move. On rejection the game is left
// untouched.
func (g *Game) Play(from, to position.Pos) (board.Move, board.State, error) {
	if !g.state.IsRunning() {
		return board.Move{}, g.state, ErrGameOver
	}
	if g.turn != g.humanSide {
		return board.Move{}, g.state, fmt.Errorf("%w: %s to move", ErrNotTurn, g.turn)
	}
	mv, err := g.board.ValidateMove(g.turn, from, to)
	if err != nil {
		return board.Move{}, g.state, err
	}
	g.apply(mv)
	return mv, g.state, nil
}

// PlayEngine lets the engine choose and apply a move for the side to move.
func (g *Game) PlayEngine() (board.Move, board.State, error) {
	if !g.state.IsRunning() {
		return board.Move{}, g.state, ErrGameOver
	}
	mv, err := g.engine.Search(g.board, g.turn)
	if err != nil {
		return board.Move{}, g.state, err
	}
	g.apply(mv)
	return mv, g.state, nil
}

func (g *Game) apply(mv board.Move) {
	g.board = g.board.Apply(mv)
	g.history = append(g.history, mv)
	g.turn = g.turn.Opposite()
	g.state = g.board.State(g.turn)
}

// PGN returns the move history in numbered algebraic notation, with the final
// check marked as mate when the game ended in checkmate.
func (g *Game) PGN() string {
	builder := strings.Builder{}
	n := g.startMove
	for i, mv := range g.history {
		if i > 0 {
			_, _ = builder.WriteString(" ")
		}
		switch {
		case mv.IsTurn == board.SideWhite:
			_, _ = builder.WriteString(fmt.Sprintf("%d. ", n))
		case i == 0:
			_, _ = builder.WriteString(fmt.Sprintf("%d... ", n))
		}
		nt := mv.Algebra()
		if i == len(g.history)-1 && g.state.IsCheckmate() {
			nt = strings.TrimSuffix(nt, "+") + "#"
		}
		_, _ = builder.WriteString(nt)
		if mv.IsTurn == board.SideBlack {
			n++
		}
	}
	return builder.String()
}
