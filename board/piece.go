package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// Pieces lists every piece kind in ascending value.
var Pieces = []Piece{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen, PieceKing}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra() string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(SideWhite)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Cell is the content of a single square: empty, or a piece of one side.
// The side is kept in the high nibble and the piece in the low nibble.
type Cell uint8

const CellEmpty Cell = 0

func NewCell(s Side, p Piece) Cell {
	if s == SideUnknown || p == PieceUnknown {
		return CellEmpty
	}
	return Cell(uint8(s)<<4 | uint8(p))
}

func (c Cell) Side() Side {
	return Side(c >> 4)
}

func (c Cell) Piece() Piece {
	return Piece(c & 0x0F)
}

func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return ""
	}
	return c.Piece().SymbolFEN(c.Side())
}

func cellFromFEN(r rune) (Cell, bool) {
	s := SideWhite
	if r >= 'a' && r <= 'z' {
		s = SideBlack
		r &^= 0x20
	}
	var p Piece
	switch r {
	case 'P':
		p = PiecePawn
	case 'N':
		p = PieceKnight
	case 'B':
		p = PieceBishop
	case 'R':
		p = PieceRook
	case 'Q':
		p = PieceQueen
	case 'K':
		p = PieceKing
	default:
		return CellEmpty, false
	}
	return NewCell(s, p), true
}
