package engine

import (
	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/position"
)

var (
	scoreMaterial = [6 + 1]int32{
		board.PiecePawn:   10,
		board.PieceKnight: 30,
		board.PieceBishop: 30,
		board.PieceRook:   50,
		board.PieceQueen:  90,
		board.PieceKing:   900,
	}

	// Square bonuses from White's point of view, a8 first. Black reads the
	// same tables mirrored by rank. Only Pawns and Knights get one.
	scorePiecePosition = [6 + 1][64]int32{
		board.PiecePawn: {
			0, 0, 0, 0, 0, 0, 0, 0,
			5, 5, 5, 5, 5, 5, 5, 5,
			1, 1, 2, 3, 3, 2, 1, 1,
			0, 0, 1, 2, 2, 1, 0, 0,
			0, 0, 0, 2, 2, 0, 0, 0,
			0, 0, -1, 0, 0, -1, 0, 0,
			0, 1, 1, -2, -2, 1, 1, 0,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.PieceKnight: {
			-5, -4, -3, -3, -3, -3, -4, -5,
			-4, -2, 0, 0, 0, 0, -2, -4,
			-3, 0, 1, 2, 2, 1, 0, -3,
			-3, 1, 2, 2, 2, 2, 1, -3,
			-3, 0, 2, 2, 2, 2, 0, -3,
			-3, 1, 1, 2, 2, 1, 1, -3,
			-4, -2, 0, 1, 1, 0, -2, -4,
			-5, -4, -3, -3, -3, -3, -4, -5,
		},
	}
)

// Evaluate returns the static score of b. The score is positive when the
// position favours s.
func Evaluate(b board.Board, s board.Side) int32 {
	var score int32
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		c := b.Get(pos)
		if c.IsEmpty() {
			continue
		}
		v := scoreCell(c, pos)
		if c.Side() == s {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

func scoreCell(c board.Cell, pos position.Pos) int32 {
	p := c.Piece()
	if c.Side() == board.SideBlack {
		pos = pos.Mirror()
	}
	return scoreMaterial[p] + scorePiecePosition[p][pos]
}
