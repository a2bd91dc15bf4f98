package board

import "github.com/daystram/gambit-lite/position"

// IsPseudoLegalMove reports whether c, standing on from, may move to to by its
// movement pattern alone. The caller supplies the piece on from; it is not
// re-read. The move may still leave the mover's own King attacked.
//
// Castling is checked here except for the safety of the King's landing square,
// which the legality filter covers when it looks for a King left in check.
func (b Board) IsPseudoLegalMove(c Cell, from, to position.Pos) bool {
	return b.isPseudoLegal(c, from, to, true)
}

// isPseudoLegal is IsPseudoLegalMove with castling optionally disabled. Attack
// detection disables it: a King never threatens a square by castling, and
// evaluating castling there would recurse back into attack detection.
func (b Board) isPseudoLegal(c Cell, from, to position.Pos, withCastle bool) bool {
	if c.IsEmpty() || !from.IsValid() || !to.IsValid() || from == to {
		return false
	}
	s := c.Side()
	target := b.cells[to]
	if !target.IsEmpty() && target.Side() == s {
		return false
	}

	dRow := int(to.Row()) - int(from.Row())
	dCol := int(to.Col()) - int(from.Col())
	switch c.Piece() {
	case PiecePawn:
		dir := s.Forward()
		if dCol == 0 {
			if !target.IsEmpty() {
				return false
			}
			if dRow == dir {
				return true
			}
			return dRow == 2*dir && from.Row() == s.PawnRow() && b.cells[from.Offset(dir, 0)].IsEmpty()
		}
		return abs(dCol) == 1 && dRow == dir && !target.IsEmpty()
	case PieceKnight:
		return (abs(dRow) == 2 && abs(dCol) == 1) || (abs(dRow) == 1 && abs(dCol) == 2)
	case PieceBishop:
		return abs(dRow) == abs(dCol) && b.isPathClear(from, to)
	case PieceRook:
		return (dRow == 0 || dCol == 0) && b.isPathClear(from, to)
	case PieceQueen:
		return (dRow == 0 || dCol == 0 || abs(dRow) == abs(dCol)) && b.isPathClear(from, to)
	case PieceKing:
		if abs(dRow) <= 1 && abs(dCol) <= 1 {
			return true
		}
		if !withCastle {
			return false
		}
		d := castleDirectionOf(s, from, to)
		return d != CastleDirectionUnknown && b.canCastle(d)
	default:
		return false
	}
}

// isPathClear reports whether every square strictly between from and to is
// empty. from and to must share a row, column or diagonal.
func (b Board) isPathClear(from, to position.Pos) bool {
	stepRow := sign(int(to.Row()) - int(from.Row()))
	stepCol := sign(int(to.Col()) - int(from.Col()))
	for pos := from.Offset(stepRow, stepCol); pos != to; pos = pos.Offset(stepRow, stepCol) {
		if !pos.IsValid() {
			return false
		}
		if !b.cells[pos].IsEmpty() {
			return false
		}
	}
	return true
}

// canCastle checks everything about castling in direction d except the
// landing square of the King.
func (b Board) canCastle(d CastleDirection) bool {
	s := d.Side()
	hops := posCastling[d]
	if !b.castleRights.IsAllowed(d) ||
		b.cells[hops.king] != NewCell(s, PieceKing) ||
		b.cells[hops.rook] != NewCell(s, PieceRook) {
		return false
	}
	for _, pos := range hops.between {
		if !b.cells[pos].IsEmpty() {
			return false
		}
	}
	return !b.IsSquareAttacked(hops.king, s.Opposite()) &&
		!b.IsSquareAttacked(hops.pass, s.Opposite())
}

// GeneratePseudoLegalMoves returns every pseudo-legal move of s in board scan
// order. The derived move flags are not set.
func (b Board) GeneratePseudoLegalMoves(s Side) []Move {
	var mvs []Move
	for from := position.Pos(0); from < TotalCells; from++ {
		c := b.cells[from]
		if c.IsEmpty() || c.Side() != s {
			continue
		}
		for to := position.Pos(0); to < TotalCells; to++ {
			if b.IsPseudoLegalMove(c, from, to) {
				mvs = append(mvs, Move{From: from, To: to, Piece: c.Piece(), IsTurn: s})
			}
		}
	}
	return mvs
}
