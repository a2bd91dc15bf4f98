package board

import "github.com/daystram/gambit-lite/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

var maskCastleRights = [5]CastleRights{
	0,
	0b1000, // CastleDirectionWhiteRight
	0b0100, // CastleDirectionWhiteLeft
	0b0010, // CastleDirectionBlackRight
	0b0001, // CastleDirectionBlackLeft
}

// castleSquares holds the fixed squares involved in each castling move.
type castleSquares struct {
	king, kingTo position.Pos
	rook, rookTo position.Pos
	pass         position.Pos   // square the king crosses
	between      []position.Pos // squares that must be empty
}

var posCastling = [5]castleSquares{
	CastleDirectionWhiteRight: {
		king: position.E1, kingTo: position.G1,
		rook: position.H1, rookTo: position.F1,
		pass:    position.F1,
		between: []position.Pos{position.F1, position.G1},
	},
	CastleDirectionWhiteLeft: {
		king: position.E1, kingTo: position.C1,
		rook: position.A1, rookTo: position.D1,
		pass:    position.D1,
		between: []position.Pos{position.B1, position.C1, position.D1},
	},
	CastleDirectionBlackRight: {
		king: position.E8, kingTo: position.G8,
		rook: position.H8, rookTo: position.F8,
		pass:    position.F8,
		between: []position.Pos{position.F8, position.G8},
	},
	CastleDirectionBlackLeft: {
		king: position.E8, kingTo: position.C8,
		rook: position.A8, rookTo: position.D8,
		pass:    position.D8,
		between: []position.Pos{position.B8, position.C8, position.D8},
	},
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteRight, CastleDirectionWhiteLeft:
		return SideWhite
	case CastleDirectionBlackRight, CastleDirectionBlackLeft:
		return SideBlack
	default:
		return SideUnknown
	}
}

// castleDirections returns the king side and queen side directions of s.
func castleDirections(s Side) [2]CastleDirection {
	if s == SideBlack {
		return [2]CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
	}
	return [2]CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
}

// castleDirectionOf reports which castling move a king step from->to would be.
func castleDirectionOf(s Side, from, to position.Pos) CastleDirection {
	for _, d := range castleDirections(s) {
		if posCastling[d].king == from && posCastling[d].kingTo == to {
			return d
		}
	}
	return CastleDirectionUnknown
}

// castleDirectionOfRook reports which castling right the rook home square pos belongs to.
func castleDirectionOfRook(s Side, pos position.Pos) CastleDirection {
	for _, d := range castleDirections(s) {
		if posCastling[d].rook == pos {
			return d
		}
	}
	return CastleDirectionUnknown
}

type CastleRights uint8

// CastleRightsAll grants every castling move.
const CastleRightsAll CastleRights = 0b1111

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}
