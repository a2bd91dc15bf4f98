package httpapi

import (
	"strings"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/game"
	"github.com/daystram/gambit-lite/position"
)

type State struct {
	ID        string     `json:"id"`
	FEN       string     `json:"fen"`
	Board     [8]string  `json:"board"`
	Turn      string     `json:"turn"`
	HumanSide string     `json:"humanSide"`
	State     string     `json:"state"`
	Status    string     `json:"status"`
	IsCheck   bool       `json:"isCheck"`
	IsOver    bool       `json:"isOver"`
	Winner    string     `json:"winner,omitempty"`
	History   []MoveView `json:"history"`
	PGN       string     `json:"pgn"`
}

type MoveView struct {
	From      string `json:"from"`
	To        string `json:"to"`
	UCI       string `json:"uci"`
	Algebra   string `json:"algebra"`
	Side      string `json:"side"`
	Piece     string `json:"piece"`
	IsCapture bool   `json:"isCapture"`
	IsCheck   bool   `json:"isCheck"`
	IsCastle  bool   `json:"isCastle"`
}

type MoveResult struct {
	Move  MoveView  `json:"move"`
	Reply *MoveView `json:"reply"`
	Game  State     `json:"game"`
}

type createRequest struct {
	FEN        string `json:"fen"`
	Side       string `json:"side"`
	Difficulty string `json:"difficulty"`
	Seed       uint64 `json:"seed"`
}

// moveRequest takes either both squares or a single coordinate move.
type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Move string `json:"move"`
}

func newState(g *game.Game) State {
	st := g.State()
	b := g.Board()
	s := State{
		ID:        g.ID().String(),
		FEN:       g.FEN(),
		Turn:      strings.ToLower(g.Turn().String()),
		HumanSide: strings.ToLower(g.HumanSide().String()),
		State:     st.String(),
		Status:    st.Describe(),
		IsCheck:   st.IsCheck(),
		IsOver:    !st.IsRunning(),
		Winner:    strings.ToLower(st.Winner().String()),
		History:   newMoveViews(g.History()),
		PGN:       g.PGN(),
	}
	// rank 8 first, one FEN style row per rank with dots for empty squares
	for row := range s.Board {
		var rank strings.Builder
		for col := 0; col < int(board.Width); col++ {
			c := b.Get(position.NewPos(row, col))
			if c.IsEmpty() {
				_, _ = rank.WriteRune('.')
				continue
			}
			_, _ = rank.WriteString(c.String())
		}
		s.Board[row] = rank.String()
	}
	return s
}

func newMoveView(mv board.Move) MoveView {
	return MoveView{
		From:      mv.From.Notation(),
		To:        mv.To.Notation(),
		UCI:       mv.UCI(),
		Algebra:   mv.Algebra(),
		Side:      strings.ToLower(mv.IsTurn.String()),
		Piece:     mv.Piece.Name(),
		IsCapture: mv.IsCapture,
		IsCheck:   mv.IsCheck,
		IsCastle:  mv.IsCastle != board.CastleDirectionUnknown,
	}
}

func newMoveViews(mvs []board.Move) []MoveView {
	views := make([]MoveView, 0, len(mvs))
	for _, mv := range mvs {
		views = append(views, newMoveView(mv))
	}
	return views
}
