package board

import (
	"fmt"

	"github.com/daystram/gambit-lite/position"
)

// Move is a proposed or applied transition of a single piece. Only moves
// returned by the legal move generator carry the derived flags.
type Move struct {
	From, To position.Pos
	Piece    Piece
	IsTurn   Side

	IsCapture bool
	IsCheck   bool
	IsCastle  CastleDirection
}

func (m Move) IsNull() bool {
	return m.Piece == PieceUnknown
}

func (m Move) Equals(n Move) bool {
	return m.From == n.From && m.To == n.To && m.Piece == n.Piece && m.IsTurn == n.IsTurn
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.IsNull() {
		return "-"
	}
	if m.IsCastle != CastleDirectionUnknown {
		nt := "0-0-0"
		if m.IsCastle.IsRight() {
			nt = "0-0"
		}
		if m.IsCheck {
			nt += "+"
		}
		return nt
	}
	nt := m.Piece.SymbolAlgebra()
	if m.IsCapture {
		if m.Piece == PiecePawn {
			nt += m.From.Col().NotationComponentCol()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsCheck {
		nt += "+"
	}
	return nt
}

func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.Notation() + m.To.Notation()
}

// ParseUCIMove reads a move in coordinate notation, e.g. "e2e4", and validates
// it for s. A trailing promotion letter is rejected since pawns never promote.
func (b Board) ParseUCIMove(s Side, uci string) (Move, error) {
	if len(uci) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, uci)
	}
	from, err := position.NewPosFromNotation(uci[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	to, err := position.NewPosFromNotation(uci[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return b.ValidateMove(s, from, to)
}
