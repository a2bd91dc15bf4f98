package board

import (
	"fmt"

	"github.com/daystram/gambit-lite/position"
)

// IsSquareAttacked reports whether any piece of side by could move to pos by
// its movement pattern, castling excluded. A pawn threatens only the squares it
// could move to right now: an empty square ahead of it, or an enemy piece on a
// forward diagonal.
func (b Board) IsSquareAttacked(pos position.Pos, by Side) bool {
	if !pos.IsValid() {
		return false
	}
	for from := position.Pos(0); from < TotalCells; from++ {
		c := b.cells[from]
		if c.IsEmpty() || c.Side() != by {
			continue
		}
		if b.isPseudoLegal(c, from, pos, false) {
			return true
		}
	}
	return false
}

// IsKingInCheck reports whether the King of s is attacked. A side without a
// King is never in check.
func (b Board) IsKingInCheck(s Side) bool {
	pos, ok := b.FindKing(s)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(pos, s.Opposite())
}

// IsLegalMove reports whether c may move from from to to without leaving its
// own King attacked.
func (b Board) IsLegalMove(c Cell, from, to position.Pos) bool {
	if !b.IsPseudoLegalMove(c, from, to) {
		return false
	}
	return !b.Apply(Move{From: from, To: to, Piece: c.Piece(), IsTurn: c.Side()}).IsKingInCheck(c.Side())
}

// GenerateLegalMoves returns every legal move of s in board scan order, source
// square first, then destination square.
func (b Board) GenerateLegalMoves(s Side) []Move {
	var mvs []Move
	for from := position.Pos(0); from < TotalCells; from++ {
		mvs = append(mvs, b.legalMovesFrom(s, from)...)
	}
	return mvs
}

// LegalMovesFrom returns the legal moves of the piece of s standing on from.
func (b Board) LegalMovesFrom(s Side, from position.Pos) []Move {
	if !from.IsValid() {
		return nil
	}
	return b.legalMovesFrom(s, from)
}

func (b Board) legalMovesFrom(s Side, from position.Pos) []Move {
	c := b.cells[from]
	if c.IsEmpty() || c.Side() != s {
		return nil
	}
	var mvs []Move
	for to := position.Pos(0); to < TotalCells; to++ {
		if !b.IsPseudoLegalMove(c, from, to) {
			continue
		}
		mv := Move{
			From:      from,
			To:        to,
			Piece:     c.Piece(),
			IsTurn:    s,
			IsCapture: !b.cells[to].IsEmpty(),
		}
		if c.Piece() == PieceKing {
			mv.IsCastle = castleDirectionOf(s, from, to)
		}

		// filter moves that leave our King in check
		bb := b.Apply(mv)
		if bb.IsKingInCheck(s) {
			continue
		}

		// flag their King check
		mv.IsCheck = bb.IsKingInCheck(s.Opposite())
		mvs = append(mvs, mv)
	}
	return mvs
}

// HasLegalMove reports whether s has at least one legal move.
func (b Board) HasLegalMove(s Side) bool {
	for from := position.Pos(0); from < TotalCells; from++ {
		c := b.cells[from]
		if c.IsEmpty() || c.Side() != s {
			continue
		}
		for to := position.Pos(0); to < TotalCells; to++ {
			if b.IsLegalMove(c, from, to) {
				return true
			}
		}
	}
	return false
}

// ValidateMove checks a move of s from from to to and returns it with its
// derived flags set. Rejections wrap ErrInvalidMove.
func (b Board) ValidateMove(s Side, from, to position.Pos) (Move, error) {
	if !from.IsValid() || !to.IsValid() {
		return Move{}, fmt.Errorf("%w: square off board", ErrInvalidMove)
	}
	c := b.cells[from]
	if c.IsEmpty() || c.Side() != s {
		return Move{}, fmt.Errorf("%w: no %s piece on %s", ErrInvalidMove, s, from)
	}
	if !b.IsPseudoLegalMove(c, from, to) {
		return Move{}, fmt.Errorf("%w: %s cannot move from %s to %s", ErrInvalidMove, c.Piece(), from, to)
	}
	for _, mv := range b.legalMovesFrom(s, from) {
		if mv.To == to {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s%s leaves the King in check", ErrInvalidMove, from, to)
}

// State classifies the position for s, the side about to move. A side without
// a King has already lost.
func (b Board) State(s Side) State {
	if _, ok := b.FindKing(s); !ok {
		return stateCheckmate(s)
	}
	isCheck := b.IsKingInCheck(s)
	if !b.HasLegalMove(s) {
		if isCheck {
			return stateCheckmate(s)
		}
		return StateStalemate
	}
	if isCheck {
		return stateCheck(s)
	}
	return StateRunning
}
