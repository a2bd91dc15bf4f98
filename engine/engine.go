package engine

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/gambit-lite/board"
)

var ErrNoMove = errors.New("no legal move")

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Difficulty Difficulty
	Seed       uint64
	Debug      bool
	Logger     func(...any)
}

// Engine picks moves with a one ply greedy search: every legal move is played
// on a copy of the board and the resulting position is scored statically. It
// does not look at the opponent's reply.
type Engine struct {
	difficulty Difficulty
	rand       *PseudoRand
	debug      bool
	logger     func(...any)

	nodes       uint32
	elapsedTime time.Duration
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	return &Engine{
		difficulty: cfg.Difficulty,
		rand:       NewPseudoRand(cfg.Seed),
		debug:      cfg.Debug,
		logger:     cfg.Logger,
	}
}

func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

func (e *Engine) Seed(seed uint64) {
	e.rand.Seed(seed)
}

// Search returns the move chosen for turn. When turn has no legal move it
// returns ErrNoMove and the caller decides between checkmate and stalemate.
func (e *Engine) Search(b board.Board, turn board.Side) (board.Move, error) {
	startTime := time.Now()
	mvs := b.GenerateLegalMoves(turn)
	if len(mvs) == 0 {
		return board.Move{}, ErrNoMove
	}

	bestMove, bestScore := e.selectBest(b, turn, mvs)
	e.elapsedTime = time.Since(startTime)

	random := false
	if w := e.difficulty.Weakness(); w > 0 && e.rand.Float64() < w {
		bestMove = mvs[e.rand.Intn(len(mvs))]
		random = true
	}

	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:1 [%s] nodes:%d (%.0fn/s) t:%s random:%v\n    %s",
				formatScoreDebug(bestScore), e.nodes, float64(e.nodes)/((e.elapsedTime + 1).Seconds()), e.elapsedTime, random, bestMove))
	} else {
		e.logger(fmt.Sprintf("info depth 1 score cp %d time %d nodes %d pv %s",
			bestScore, e.elapsedTime.Milliseconds(), e.nodes, bestMove.UCI()))
	}
	return bestMove, nil
}

// selectBest scores each move by the position it leads to. The first move
// found with the highest score wins ties.
func (e *Engine) selectBest(b board.Board, turn board.Side, mvs []board.Move) (board.Move, int32) {
	e.nodes = 0
	bestMove, bestScore := mvs[0], int32(0)
	for i, mv := range mvs {
		e.nodes++
		score := Evaluate(b.Apply(mv), turn)
		if i == 0 || score > bestScore {
			bestMove = mv
			bestScore = score
		}
	}
	return bestMove, bestScore
}

func formatScoreDebug(s int32) string {
	if s > 0 {
		return fmt.Sprintf("+%.1f", float64(s)/10)
	}
	if s < 0 {
		return fmt.Sprintf("%.1f", float64(s)/10)
	}
	return "0"
}
