package httpapi

import (
	"errors"
	"sync"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/engine"
	"github.com/daystram/gambit-lite/game"
	"github.com/daystram/gambit-lite/position"
)

var ErrGameNotFound = errors.New("game not found")

// session serialises access to one game, requests for different games do not
// contend.
type session struct {
	mu   sync.Mutex
	game *game.Game
}

// GameManager keeps every game created through the API in memory.
type GameManager struct {
	games map[string]*session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*session),
	}
}

type CreateOptions struct {
	FEN        string
	HumanSide  board.Side
	Difficulty engine.Difficulty
	Seed       uint64
	Logger     func(...any)
}

// CreateGame starts a new game. When the engine has the first move it is
// played before returning.
func (gm *GameManager) CreateGame(opts CreateOptions) (State, error) {
	gameOpts := []game.Option{
		game.WithHumanSide(orDefault(opts.HumanSide)),
		game.WithEngine(engine.NewEngine(&engine.EngineConfig{
			Difficulty: opts.Difficulty,
			Seed:       opts.Seed,
			Logger:     opts.Logger,
		})),
	}
	if opts.FEN != "" {
		gameOpts = append(gameOpts, game.WithFEN(opts.FEN))
	}
	g, err := game.New(gameOpts...)
	if err != nil {
		return State{}, err
	}

	if g.Turn() != g.HumanSide() && g.State().IsRunning() {
		if _, _, err := g.PlayEngine(); err != nil {
			return State{}, err
		}
	}

	// only a fully created game is visible to other requests
	st := newState(g)
	gm.mu.Lock()
	gm.games[g.ID().String()] = &session{game: g}
	gm.mu.Unlock()
	return st, nil
}

func (gm *GameManager) session(id string) (*session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	s, ok := gm.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (gm *GameManager) GetGameState(id string) (State, error) {
	s, err := gm.session(id)
	if err != nil {
		return State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return newState(s.game), nil
}

func (gm *GameManager) LegalMoves(id string, from position.Pos) ([]MoveView, error) {
	s, err := gm.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return newMoveViews(s.game.LegalMovesFrom(from)), nil
}

// MakeMove plays the human move and, if the game goes on, the engine's reply.
func (gm *GameManager) MakeMove(id string, from, to position.Pos) (MoveResult, error) {
	s, err := gm.session(id)
	if err != nil {
		return MoveResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	mv, st, err := s.game.Play(from, to)
	if err != nil {
		return MoveResult{}, err
	}
	res := MoveResult{Move: newMoveView(mv)}
	if st.IsRunning() {
		reply, _, err := s.game.PlayEngine()
		if err != nil {
			return MoveResult{}, err
		}
		v := newMoveView(reply)
		res.Reply = &v
	}
	res.Game = newState(s.game)
	return res, nil
}

// ResetGame puts the game back to its starting position, replaying the
// engine's opening move when it moves first.
func (gm *GameManager) ResetGame(id string) (State, error) {
	s, err := gm.session(id)
	if err != nil {
		return State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if err := g.Reset(); err != nil {
		return State{}, err
	}
	if g.Turn() != g.HumanSide() && g.State().IsRunning() {
		if _, _, err := g.PlayEngine(); err != nil {
			return State{}, err
		}
	}
	return newState(g), nil
}

func (gm *GameManager) DeleteGame(id string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, ok := gm.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(gm.games, id)
	return nil
}

func orDefault(s board.Side) board.Side {
	if s == board.SideUnknown {
		return board.SideWhite
	}
	return s
}
